package storage

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pixil98/go-saveinject/internal/inventory"
	"github.com/pixil98/go-testutil"
)

func writeSave(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	tmpDir := t.TempDir()

	tests := map[string]struct {
		path   func(t *testing.T) string
		expErr error
	}{
		"valid save": {
			path: func(t *testing.T) string { return writeSave(t, tmpDir, "valid.json", sampleSave) },
		},
		"missing file": {
			path:   func(t *testing.T) string { return filepath.Join(tmpDir, "nope.json") },
			expErr: ErrFileNotFound,
		},
		"directory": {
			path: func(t *testing.T) string {
				dir := filepath.Join(tmpDir, "dir.json")
				if err := os.Mkdir(dir, 0755); err != nil {
					t.Fatalf("failed to create dir: %v", err)
				}
				return dir
			},
			expErr: ErrFileNotFound,
		},
		"invalid json": {
			path:   func(t *testing.T) string { return writeSave(t, tmpDir, "broken.json", `{"Inventory": `) },
			expErr: ErrInvalidJSON,
		},
		"no inventory": {
			path:   func(t *testing.T) string { return writeSave(t, tmpDir, "empty.json", `{"Gold": 1}`) },
			expErr: ErrMissingInventory,
		},
		"inventory not an object": {
			path:   func(t *testing.T) string { return writeSave(t, tmpDir, "list.json", `{"Inventory": "x"}`) },
			expErr: ErrMissingInventory,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			doc, err := Load(tt.path(t))

			if tt.expErr != nil {
				if !errors.Is(err, tt.expErr) {
					t.Errorf("expected %v, got %v", tt.expErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			testutil.AssertEqual(t, "field count", len(doc.Keys()), 4)
		})
	}
}

func TestSave(t *testing.T) {
	tmpDir := t.TempDir()
	path := writeSave(t, tmpDir, "save.json", sampleSave)
	if err := os.Chmod(path, 0600); err != nil {
		t.Fatalf("failed to chmod: %v", err)
	}

	doc, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	inv, err := doc.Inventory()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	inv.MaxSlotIndex = 40
	if err := doc.SetInventory(inv); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := Save(doc, path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "mode", info.Mode().Perm(), os.FileMode(0600))

	reloaded, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	reinv, err := reloaded.Inventory()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "max slot index", reinv.MaxSlotIndex, 40)

	name, _ := reloaded.Raw("PlayerName")
	testutil.AssertEqual(t, "player name", string(name), `"Ash"`)
	gold, _ := reloaded.Raw("Gold")
	testutil.AssertEqual(t, "gold", string(gold), "120")

	entries, err := os.ReadDir(tmpDir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".tmp") {
			t.Errorf("temp file left behind: %s", e.Name())
		}
	}
}

func TestSave_NewFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fresh.json")

	doc := NewDocument()
	if err := doc.SetInventory(inventory.NewContainer(0)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := Save(doc, path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "mode", info.Mode().Perm(), defaultFileMode)
}

func TestSave_MissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "save.json")

	err := Save(NewDocument(), path)
	testutil.AssertErrorContains(t, err, "creating temp file")
}
