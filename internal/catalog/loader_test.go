package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pixil98/go-testutil"
)

const listCatalog = `[
	{"SourceString": "Wood Log", "PersistenceID": "WoodID", "MaxStackSize": 50},
	{"SourceString": "Bronze Sword", "PersistenceID": "SwordID", "BaseDurability": 100},
	{"SourceString": "Ash Shield", "PersistenceID": "ShieldID", "BaseDurability": 80, "VitalShield": 25},
	{"SourceString": "Amulet", "PersistenceID": "AmuletID"},
	{"SourceString": "   ", "PersistenceID": "BlankID"}
]`

const keyedCatalog = `{
	"Wood Log": {"PersistenceID": "WoodID", "MaxStackSize": 50},
	"Ash Shield": {"PersistenceID": "ShieldID", "BaseDurability": 80, "VitalShield": 0}
}`

func TestLoad(t *testing.T) {
	tests := map[string]struct {
		data     string
		format   Format
		expCount int
		expErr   bool
	}{
		"list format": {
			data:     listCatalog,
			format:   FormatList,
			expCount: 4,
		},
		"keyed format": {
			data:     keyedCatalog,
			format:   FormatKeyed,
			expCount: 2,
		},
		"auto detects list": {
			data:     listCatalog,
			format:   FormatAuto,
			expCount: 4,
		},
		"auto detects keyed": {
			data:     "\xef\xbb\xbf  " + keyedCatalog,
			format:   FormatAuto,
			expCount: 2,
		},
		"wrong explicit format": {
			data:   keyedCatalog,
			format: FormatList,
			expErr: true,
		},
		"invalid json": {
			data:   `[{"SourceString": `,
			format: FormatAuto,
			expErr: true,
		},
		"record missing persistence id": {
			data:   `[{"SourceString": "Wood"}]`,
			format: FormatList,
			expErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			s, err := Load(strings.NewReader(tt.data), tt.format)

			if tt.expErr {
				if err == nil {
					t.Errorf("expected error, got nil")
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			testutil.AssertEqual(t, "count", s.Len(), tt.expCount)
		})
	}
}

func TestLoad_Kinds(t *testing.T) {
	s, err := Load(strings.NewReader(listCatalog), FormatAuto)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := map[string]struct {
		name    string
		expKind Kind
	}{
		"stackable": {name: "Wood Log", expKind: KindStackable},
		"durable":   {name: "Bronze Sword", expKind: KindDurable},
		"shielded":  {name: "Ash Shield", expKind: KindDurable | KindShielded},
		"plain":     {name: "Amulet", expKind: KindPlain},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			rec, ok := s.Lookup(tt.name)
			if !ok {
				t.Fatalf("expected %q in catalog", tt.name)
			}
			testutil.AssertEqual(t, "kind", rec.Kind(), tt.expKind)
		})
	}

	shield, _ := s.Lookup("Ash Shield")
	testutil.AssertEqual(t, "vital shield", shield.Shield.VitalShield, 25)
	testutil.AssertEqual(t, "base durability", shield.Durability.BaseDurability, uint(80))

	wood, _ := s.Lookup("WoodID")
	testutil.AssertEqual(t, "max stack", wood.Stack.MaxStackSize, uint(50))
}

func TestLoadFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "ItemID.txt")
	if err := os.WriteFile(path, []byte(listCatalog), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	s, err := LoadFile(path, FormatAuto)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "count", s.Len(), 4)

	_, err = LoadFile(filepath.Join(tmpDir, "missing.txt"), FormatAuto)
	testutil.AssertErrorContains(t, err, "opening catalog")
}

func TestFormat_UnmarshalText(t *testing.T) {
	tests := map[string]struct {
		text   string
		exp    Format
		expErr bool
	}{
		"empty":   {text: "", exp: FormatAuto},
		"auto":    {text: "auto", exp: FormatAuto},
		"list":    {text: "LIST", exp: FormatList},
		"keyed":   {text: "keyed", exp: FormatKeyed},
		"unknown": {text: "csv", expErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var f Format
			err := f.UnmarshalText([]byte(tt.text))
			if tt.expErr {
				if err == nil {
					t.Errorf("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			testutil.AssertEqual(t, "format", f, tt.exp)
		})
	}
}
