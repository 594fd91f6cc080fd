package inventory

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"slices"
	"strconv"

	"github.com/elliotchance/orderedmap/v2"
)

// MaxSlotIndexKey is the inventory's non-slot bound field.
const MaxSlotIndexKey = "MaxSlotIndex"

// ErrMalformed is returned when an inventory object cannot be interpreted.
var ErrMalformed = errors.New("malformed inventory")

// Container is the inventory subtree of a save: slot entries in ascending
// slot order plus the MaxSlotIndex bound. Slot entries read from disk are
// kept as raw JSON so fields the injector doesn't know survive untouched.
type Container struct {
	slots        *orderedmap.OrderedMap[int, json.RawMessage]
	MaxSlotIndex int

	discarded []string
}

// NewContainer returns an empty container with the given bound.
func NewContainer(maxSlotIndex int) *Container {
	return &Container{
		slots:        orderedmap.NewOrderedMap[int, json.RawMessage](),
		MaxSlotIndex: maxSlotIndex,
	}
}

// ParseContainer reads an inventory object. Keys made only of digits are
// slots; MaxSlotIndex is the bound (0 when absent); anything else is
// discarded and reported by Discarded.
func ParseContainer(raw json.RawMessage) (*Container, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	if fields == nil {
		return nil, fmt.Errorf("%w: inventory is not an object", ErrMalformed)
	}

	c := NewContainer(0)
	entries := map[int]json.RawMessage{}
	canonical := map[int]bool{}

	for k, v := range fields {
		if k == MaxSlotIndexKey {
			bound, err := parseBound(v)
			if err != nil {
				return nil, err
			}
			c.MaxSlotIndex = bound
			continue
		}

		slot, ok := parseSlot(k)
		if !ok {
			c.discarded = append(c.discarded, k)
			continue
		}

		// "7" beats "07" when both are present
		isCanonical := strconv.Itoa(slot) == k
		if _, seen := entries[slot]; seen && !isCanonical {
			continue
		}
		if canonical[slot] {
			continue
		}
		entries[slot] = v
		canonical[slot] = isCanonical
	}

	keys := make([]int, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		c.slots.Set(k, entries[k])
	}

	slices.Sort(c.discarded)
	if len(c.discarded) > 0 {
		slog.Warn("discarding non-slot inventory keys", "keys", c.discarded)
	}

	return c, nil
}

func parseSlot(k string) (int, bool) {
	if k == "" {
		return 0, false
	}
	for _, r := range k {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	slot, err := strconv.Atoi(k)
	if err != nil {
		return 0, false
	}
	return slot, true
}

func parseBound(raw json.RawMessage) (int, error) {
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return 0, fmt.Errorf("%w: %s: %w", ErrMalformed, MaxSlotIndexKey, err)
	}
	if i, err := n.Int64(); err == nil {
		return int(i), nil
	}
	f, err := n.Float64()
	if err != nil || f != math.Trunc(f) {
		return 0, fmt.Errorf("%w: %s %q is not an integer", ErrMalformed, MaxSlotIndexKey, n)
	}
	// math.MaxInt rounds up to 2^63 as a float64
	if f < math.MinInt || f >= math.MaxInt {
		return 0, fmt.Errorf("%w: %s %q is out of range", ErrMalformed, MaxSlotIndexKey, n)
	}
	return int(f), nil
}

// Slots returns the occupied slot indices in ascending order.
func (c *Container) Slots() []int {
	return c.slots.Keys()
}

// Len returns the number of occupied slots.
func (c *Container) Len() int {
	return c.slots.Len()
}

// Entry returns the raw entry stored at slot.
func (c *Container) Entry(slot int) (json.RawMessage, bool) {
	return c.slots.Get(slot)
}

// Occupied reports whether slot holds an entry.
func (c *Container) Occupied(slot int) bool {
	_, ok := c.slots.Get(slot)
	return ok
}

// HighestSlot returns the largest occupied slot, or false when empty.
func (c *Container) HighestSlot() (int, bool) {
	keys := c.slots.Keys()
	if len(keys) == 0 {
		return 0, false
	}
	return slices.Max(keys), true
}

// Discarded returns the non-slot keys dropped while parsing.
func (c *Container) Discarded() []string {
	return slices.Clone(c.discarded)
}

// MarshalJSON writes slots in ascending numeric order followed by
// MaxSlotIndex.
func (c *Container) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	for el := c.slots.Front(); el != nil; el = el.Next() {
		fmt.Fprintf(&buf, "%q:", strconv.Itoa(el.Key))

		var compact bytes.Buffer
		if err := json.Compact(&compact, el.Value); err != nil {
			return nil, fmt.Errorf("slot %d: %w", el.Key, err)
		}
		buf.Write(compact.Bytes())
		buf.WriteByte(',')
	}

	fmt.Fprintf(&buf, "%q:%d}", MaxSlotIndexKey, c.MaxSlotIndex)
	return buf.Bytes(), nil
}

// set stores an entry; callers insert in ascending slot order.
func (c *Container) set(slot int, raw json.RawMessage) {
	c.slots.Set(slot, raw)
}
