package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
)

const defaultFileMode fs.FileMode = 0644

// Load reads the save file at path. The inventory section must be present
// but is not parsed until Document.Inventory is called.
func Load(path string) (*Document, error) {
	data, err := readRegular(path)
	if err != nil {
		return nil, err
	}

	doc, err := ParseDocument(data)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}

	raw, ok := doc.Raw(InventoryKey)
	if !ok || !isObject(raw) {
		return nil, fmt.Errorf("loading %s: %w", path, ErrMissingInventory)
	}

	slog.Debug("loaded save", "path", path, "fields", doc.Keys())
	return doc, nil
}

// Save writes the whole document to path, replacing it atomically. The
// existing file's permissions are kept.
func Save(doc *Document, path string) error {
	data, err := doc.Encode()
	if err != nil {
		return fmt.Errorf("encoding document: %w", err)
	}

	perm := defaultFileMode
	if info, err := os.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}

	return atomicWrite(path, data, perm)
}

func readRegular(path string) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("%w: %s: %w", ErrFileNotFound, path, err)
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s is not a regular file", ErrFileNotFound, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return data, nil
}

// atomicWrite writes data to a temp file in the target's directory then
// renames it over the target, so readers see either the old or the new file.
func atomicWrite(path string, data []byte, perm fs.FileMode) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()

	cleanup := func() {
		if removeErr := os.Remove(tmpPath); removeErr != nil && !errors.Is(removeErr, fs.ErrNotExist) {
			slog.Warn("failed to remove temp file", "path", tmpPath, "error", removeErr)
		}
	}

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		cleanup()
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		cleanup()
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, perm); err != nil {
		cleanup()
		return fmt.Errorf("setting temp file mode: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		cleanup()
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
