package catalog

import (
	"fmt"
	"strings"

	"github.com/pixil98/go-errors"
)

// Kind is a bit set describing which optional attributes an item carries.
// Durable and Shielded may co-occur; the zero value is a plain item.
type Kind uint8

const (
	KindPlain     Kind = 0
	KindStackable Kind = 1 << (iota - 1)
	KindDurable
	KindShielded
)

// Has reports whether every bit in o is set in k.
func (k Kind) Has(o Kind) bool {
	return o != KindPlain && k&o == o
}

func (k Kind) String() string {
	if k == KindPlain {
		return "plain"
	}

	var parts []string
	if k.Has(KindStackable) {
		parts = append(parts, "stackable")
	}
	if k.Has(KindDurable) {
		parts = append(parts, "durable")
	}
	if k.Has(KindShielded) {
		parts = append(parts, "shielded")
	}
	return strings.Join(parts, "+")
}

// Stackable items are written with a Count.
type Stackable struct {
	MaxStackSize uint
}

// Durable items are written with a Durability, defaulting to BaseDurability.
type Durable struct {
	BaseDurability uint
}

// Shielded items are written with the catalog's VitalShield value.
type Shielded struct {
	VitalShield int
}

// ItemRecord is the catalog's immutable description of an item type.
type ItemRecord struct {
	// Name is the display name used for lookup and queue rendering.
	Name string
	// PersistenceID is stored in a slot entry's ItemData field.
	PersistenceID string

	Stack      *Stackable
	Durability *Durable
	Shield     *Shielded
}

// Kind returns the attribute set carried by the record.
func (r ItemRecord) Kind() Kind {
	k := KindPlain
	if r.Stack != nil {
		k |= KindStackable
	}
	if r.Durability != nil {
		k |= KindDurable
	}
	if r.Shield != nil {
		k |= KindShielded
	}
	return k
}

// Validate checks the record is usable by the merge engine.
func (r ItemRecord) Validate() error {
	el := errors.NewErrorList()

	if strings.TrimSpace(r.Name) == "" {
		el.Add(fmt.Errorf("item name is required"))
	}
	if strings.TrimSpace(r.PersistenceID) == "" {
		el.Add(fmt.Errorf("item %q: persistence id is required", r.Name))
	}
	if r.Stack != nil && r.Stack.MaxStackSize == 0 {
		el.Add(fmt.Errorf("item %q: max stack size must be positive", r.Name))
	}

	return el.Err()
}
