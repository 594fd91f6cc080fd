package inventory

import (
	"encoding/json"
	"fmt"
	"slices"

	"github.com/pixil98/go-saveinject/internal/catalog"
	"github.com/pixil98/go-saveinject/internal/queue"
)

// SortRequests orders requests by start slot, keeping queue order for equal
// starts. This is the injection precedence: for a slot claimed more than
// once, the last request in this order wins.
func SortRequests(requests []queue.Request) []queue.Request {
	sorted := slices.Clone(requests)
	slices.SortStableFunc(sorted, func(a, b queue.Request) int {
		return a.Start - b.Start
	})
	return sorted
}

// Conflicts returns the occupied slots of current that fall inside any
// requested range, ascending and without duplicates.
func Conflicts(current *Container, requests []queue.Request) []int {
	var out []int
	for _, slot := range current.Slots() {
		for _, req := range requests {
			if slot >= req.Start && slot <= req.End {
				out = append(out, slot)
				break
			}
		}
	}
	return out
}

// Merge builds the inventory that results from writing requests over
// current. current is not modified. Every request is validated and its item
// resolved before any entry is built, so a bad request fails without side
// effects.
//
// The returned count is the number of distinct slots written.
func Merge(current *Container, requests []queue.Request, items catalog.Catalog, guids GUIDGenerator) (*Container, int, error) {
	sorted := SortRequests(requests)

	records := make([]catalog.ItemRecord, len(sorted))
	for i, req := range sorted {
		if err := req.Validate(); err != nil {
			return nil, 0, err
		}
		rec, err := catalog.Resolve(items, req.Item)
		if err != nil {
			return nil, 0, err
		}
		records[i] = rec
	}

	scratch := map[int]json.RawMessage{}
	for i, req := range sorted {
		for n := range req.Slots() {
			slot := req.Start + n
			entry := NewSlotEntry(guids.Next(), records[i], req)
			raw, err := json.Marshal(entry)
			if err != nil {
				return nil, 0, fmt.Errorf("marshalling slot %d: %w", slot, err)
			}
			scratch[slot] = raw
		}
	}

	keys := current.Slots()
	for slot := range scratch {
		if !current.Occupied(slot) {
			keys = append(keys, slot)
		}
	}
	slices.Sort(keys)

	out := NewContainer(current.MaxSlotIndex)
	out.discarded = current.Discarded()
	for _, slot := range keys {
		if raw, ok := scratch[slot]; ok {
			out.set(slot, raw)
			continue
		}
		raw, _ := current.Entry(slot)
		out.set(slot, raw)
	}

	if highest, ok := out.HighestSlot(); ok && highest > out.MaxSlotIndex {
		out.MaxSlotIndex = highest
	}

	return out, len(scratch), nil
}
