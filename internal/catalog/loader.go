package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
)

// Format selects the on-disk catalog layout.
type Format int

const (
	// FormatAuto sniffs the first JSON token.
	FormatAuto Format = iota
	// FormatList is a JSON array of records carrying their own SourceString.
	FormatList
	// FormatKeyed is a JSON object of display name to record.
	FormatKeyed
)

func (f *Format) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "", "auto":
		*f = FormatAuto
	case "list":
		*f = FormatList
	case "keyed":
		*f = FormatKeyed
	default:
		return fmt.Errorf("unknown catalog format: %s", text)
	}
	return nil
}

func (f Format) String() string {
	switch f {
	case FormatList:
		return "list"
	case FormatKeyed:
		return "keyed"
	default:
		return "auto"
	}
}

type rawItem struct {
	SourceString   string `json:"SourceString,omitempty"`
	PersistenceID  string `json:"PersistenceID"`
	MaxStackSize   *uint  `json:"MaxStackSize,omitempty"`
	BaseDurability *uint  `json:"BaseDurability,omitempty"`
	VitalShield    *int   `json:"VitalShield,omitempty"`
}

func (r rawItem) record(name string) ItemRecord {
	rec := ItemRecord{
		Name:          strings.TrimSpace(name),
		PersistenceID: r.PersistenceID,
	}
	if r.MaxStackSize != nil {
		rec.Stack = &Stackable{MaxStackSize: *r.MaxStackSize}
	}
	if r.BaseDurability != nil {
		rec.Durability = &Durable{BaseDurability: *r.BaseDurability}
	}
	if r.VitalShield != nil {
		rec.Shield = &Shielded{VitalShield: *r.VitalShield}
	}
	return rec
}

// LoadFile reads a catalog file from disk.
func LoadFile(path string, format Format) (*Store, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening catalog: %w", err)
	}

	// Ignoring close error - file is read-only, error is not actionable
	defer func() { _ = file.Close() }()

	s, err := Load(file, format)
	if err != nil {
		return nil, fmt.Errorf("loading catalog %s: %w", path, err)
	}
	return s, nil
}

// Load parses catalog data. Records with a blank display name are skipped.
func Load(r io.Reader, format Format) (*Store, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}

	data = bytes.TrimPrefix(data, utf8BOM)

	if format == FormatAuto {
		format = sniff(data)
	}

	var records []ItemRecord
	switch format {
	case FormatList:
		var raw []rawItem
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("unmarshalling catalog list: %w", err)
		}
		for _, it := range raw {
			if strings.TrimSpace(it.SourceString) == "" {
				continue
			}
			records = append(records, it.record(it.SourceString))
		}

	case FormatKeyed:
		var raw map[string]rawItem
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("unmarshalling keyed catalog: %w", err)
		}
		for name, it := range raw {
			if strings.TrimSpace(name) == "" {
				continue
			}
			records = append(records, it.record(name))
		}

	default:
		return nil, fmt.Errorf("unsupported catalog format: %v", format)
	}

	return NewStore(records)
}

var utf8BOM = []byte("\xef\xbb\xbf")

func sniff(data []byte) Format {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '{' {
		return FormatKeyed
	}
	return FormatList
}
