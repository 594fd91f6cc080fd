package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// DefaultBackupSuffix replaces the save file's extension to name its backup.
const DefaultBackupSuffix = "_backup.json"

// BackupPath derives the backup location for path: same directory, the
// extension replaced by suffix ("save.json" becomes "save_backup.json").
func BackupPath(path, suffix string) string {
	if suffix == "" {
		suffix = DefaultBackupSuffix
	}
	return strings.TrimSuffix(path, filepath.Ext(path)) + suffix
}

// EnsureBackup copies the bytes currently on disk at path to its backup
// location unless a backup already exists. Only the first call for a path
// writes anything, so the backup always holds the pre-injection save.
func EnsureBackup(path, suffix string) (string, bool, error) {
	backup := BackupPath(path, suffix)

	_, err := os.Lstat(backup)
	if err == nil {
		return backup, false, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return backup, false, fmt.Errorf("checking backup %s: %w", backup, err)
	}

	data, err := readRegular(path)
	if err != nil {
		return backup, false, err
	}

	perm := defaultFileMode
	if info, err := os.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}

	if err := atomicWrite(backup, data, perm); err != nil {
		return backup, false, fmt.Errorf("writing backup %s: %w", backup, err)
	}

	slog.Info("created save backup", "path", backup)
	return backup, true, nil
}
