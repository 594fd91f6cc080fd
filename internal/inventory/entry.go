package inventory

import (
	"github.com/pixil98/go-saveinject/internal/catalog"
	"github.com/pixil98/go-saveinject/internal/queue"
)

// SlotEntry is the record stored under an occupied slot index.
type SlotEntry struct {
	GUID        string `json:"GUID"`
	ItemData    string `json:"ItemData"`
	Count       *int   `json:"Count,omitempty"`
	Durability  *int   `json:"Durability,omitempty"`
	VitalShield *int   `json:"VitalShield,omitempty"`
}

// NewSlotEntry builds the entry for one slot of req. Optional fields follow
// the record's kind:
//
//	stackable: Count, when the request asks for a non-zero count
//	durable:   Durability, the requested value or the base durability
//	shielded:  VitalShield, the requested value or the catalog value
//
// A plain item carries only GUID and ItemData.
func NewSlotEntry(guid string, rec catalog.ItemRecord, req queue.Request) SlotEntry {
	e := SlotEntry{
		GUID:     guid,
		ItemData: rec.PersistenceID,
	}

	kind := rec.Kind()

	if kind.Has(catalog.KindStackable) && req.Count != nil && *req.Count != 0 {
		e.Count = intPtr(*req.Count)
	}

	if kind.Has(catalog.KindDurable) {
		d := int(rec.Durability.BaseDurability)
		if req.Durability != nil {
			d = *req.Durability
		}
		e.Durability = intPtr(d)
	}

	if kind.Has(catalog.KindShielded) {
		v := rec.Shield.VitalShield
		if req.VitalShield != nil {
			v = *req.VitalShield
		}
		e.VitalShield = intPtr(v)
	}

	return e
}

func intPtr(i int) *int {
	return &i
}
