package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pixil98/go-testutil"
)

func TestBackupPath(t *testing.T) {
	tests := map[string]struct {
		path   string
		suffix string
		exp    string
	}{
		"default suffix": {
			path: filepath.Join("saves", "slot1.json"),
			exp:  filepath.Join("saves", "slot1_backup.json"),
		},
		"custom suffix": {
			path:   "slot1.sav",
			suffix: ".bak",
			exp:    "slot1.bak",
		},
		"no extension": {
			path: "slot1",
			exp:  "slot1_backup.json",
		},
		"dotted directory": {
			path: filepath.Join("my.saves", "slot1.json"),
			exp:  filepath.Join("my.saves", "slot1_backup.json"),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			testutil.AssertEqual(t, "path", BackupPath(tt.path, tt.suffix), tt.exp)
		})
	}
}

func TestEnsureBackup(t *testing.T) {
	tmpDir := t.TempDir()
	original := "{\"Inventory\":{},\r\n  \"Odd\":   1}"
	path := writeSave(t, tmpDir, "save.json", original)

	backup, created, err := EnsureBackup(path, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "created", created, true)
	testutil.AssertEqual(t, "backup path", backup, filepath.Join(tmpDir, "save_backup.json"))

	data, err := os.ReadFile(backup)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "verbatim", string(data), original)

	// A later backup never replaces the first one
	if err := os.WriteFile(path, []byte(`{"Inventory":{"1":{}}}`), 0644); err != nil {
		t.Fatalf("failed to rewrite save: %v", err)
	}
	_, created, err = EnsureBackup(path, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "created again", created, false)

	data, err = os.ReadFile(backup)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "still original", string(data), original)
}

func TestEnsureBackup_MissingSave(t *testing.T) {
	tmpDir := t.TempDir()

	_, created, err := EnsureBackup(filepath.Join(tmpDir, "gone.json"), "")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	testutil.AssertEqual(t, "created", created, false)

	_, err = os.Stat(filepath.Join(tmpDir, "gone_backup.json"))
	if !os.IsNotExist(err) {
		t.Errorf("expected no backup file, got %v", err)
	}
}
