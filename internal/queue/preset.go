package queue

import (
	"fmt"
	"strings"
)

// Preset is a named slot range of the in-game inventory.
type Preset struct {
	Name  string
	Start int
	End   int
}

var presets = []Preset{
	{Name: "main", Start: 8, End: 31},
	{Name: "rune", Start: 32, End: 55},
	{Name: "quest", Start: 56, End: 79},
}

// LookupPreset returns the named range, ignoring case.
func LookupPreset(name string) (Preset, error) {
	for _, p := range presets {
		if strings.EqualFold(p.Name, strings.TrimSpace(name)) {
			return p, nil
		}
	}
	return Preset{}, fmt.Errorf("unknown slot preset: %s", name)
}

// Presets returns every known range.
func Presets() []Preset {
	out := make([]Preset, len(presets))
	copy(out, presets)
	return out
}
