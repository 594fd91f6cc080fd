package catalog

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/cases"
)

// ErrUnknownItem is returned when an identifier has no catalog record.
var ErrUnknownItem = errors.New("unknown item")

// Catalog is the read-only lookup the injection engine depends on.
type Catalog interface {
	// Lookup resolves a display name or persistence id.
	Lookup(idOrName string) (ItemRecord, bool)
	// All returns every record ordered by display name.
	All() []Entry
	// Search returns the entries whose display name contains substr,
	// ignoring case.
	Search(substr string) []Entry
}

// Entry pairs a display name with its record.
type Entry struct {
	Name   string
	Record ItemRecord
}

// Store is an in-memory Catalog. It is never mutated after NewStore returns
// and may be shared freely.
type Store struct {
	byName  map[string]ItemRecord
	byID    map[string]ItemRecord
	entries []Entry
	folded  []string
}

// fold builds a fresh Caser per call; a Caser is stateful and must not be
// shared between goroutines.
func fold(s string) string {
	return cases.Fold().String(s)
}

// NewStore indexes records by display name and persistence id. Duplicate
// display names are rejected; the first record wins a shared persistence id.
func NewStore(records []ItemRecord) (*Store, error) {
	s := &Store{
		byName: make(map[string]ItemRecord, len(records)),
		byID:   make(map[string]ItemRecord, len(records)),
	}

	for _, r := range records {
		if err := r.Validate(); err != nil {
			return nil, fmt.Errorf("validating item: %w", err)
		}
		if _, ok := s.byName[r.Name]; ok {
			return nil, fmt.Errorf("duplicate item name detected: %s", r.Name)
		}
		s.byName[r.Name] = r
		if _, ok := s.byID[r.PersistenceID]; !ok {
			s.byID[r.PersistenceID] = r
		}
		s.entries = append(s.entries, Entry{Name: r.Name, Record: r})
	}

	slices.SortStableFunc(s.entries, func(a, b Entry) int {
		return strings.Compare(fold(a.Name), fold(b.Name))
	})

	s.folded = make([]string, len(s.entries))
	for i, e := range s.entries {
		s.folded[i] = fold(e.Name)
	}

	return s, nil
}

// Lookup resolves a display name first, then a persistence id.
func (s *Store) Lookup(idOrName string) (ItemRecord, bool) {
	key := strings.TrimSpace(idOrName)
	if r, ok := s.byName[key]; ok {
		return r, true
	}
	r, ok := s.byID[key]
	return r, ok
}

// Resolve is c.Lookup returning ErrUnknownItem for a missing record.
func Resolve(c Catalog, idOrName string) (ItemRecord, error) {
	r, ok := c.Lookup(idOrName)
	if !ok {
		return ItemRecord{}, fmt.Errorf("%w: %q", ErrUnknownItem, idOrName)
	}
	return r, nil
}

func (s *Store) All() []Entry {
	return slices.Clone(s.entries)
}

// Len returns the number of records.
func (s *Store) Len() int {
	return len(s.entries)
}

// Search returns the entries whose display name contains substr, ignoring
// case. An empty substr matches everything.
func (s *Store) Search(substr string) []Entry {
	needle := fold(strings.TrimSpace(substr))
	if needle == "" {
		return s.All()
	}

	var out []Entry
	for i, f := range s.folded {
		if strings.Contains(f, needle) {
			out = append(out, s.entries[i])
		}
	}
	return out
}
