package queue

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/pixil98/go-saveinject/internal/catalog"
)

// MaxSlot is the highest slot index a request may name. The game's
// inventories stay far below it.
const MaxSlot = 1<<16 - 1

var (
	ErrInvalidNumericInput = errors.New("inputs must be valid numbers")
	ErrInvalidRange        = errors.New("invalid slot range")
	ErrMissingItem         = errors.New("item is required")
)

// Request asks for one item to be written into every slot of [Start, End].
type Request struct {
	// Item is the catalog display name or persistence id.
	Item  string
	Start int
	End   int

	// Count applies to stackable items only.
	Count *int
	// Durability applies to durable items only; nil means base durability.
	Durability *int
	// VitalShield applies to shielded items only; nil means the catalog value.
	VitalShield *int
}

// Slots returns the number of slots the request covers. It is only
// meaningful for a request that passes Validate.
func (r Request) Slots() int {
	return r.End - r.Start + 1
}

// ValidationError lists every problem found in a request.
type ValidationError struct {
	Problems []error
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Problems))
	for i, p := range e.Problems {
		msgs[i] = p.Error()
	}
	return strings.Join(msgs, "; ")
}

func (e *ValidationError) Unwrap() []error {
	return e.Problems
}

func (e *ValidationError) add(err error) {
	if err != nil {
		e.Problems = append(e.Problems, err)
	}
}

func (e *ValidationError) err() error {
	if len(e.Problems) == 0 {
		return nil
	}
	return e
}

// Validate checks the request's shape. It does not consult the catalog.
func (r Request) Validate() error {
	ve := &ValidationError{}

	if strings.TrimSpace(r.Item) == "" {
		ve.add(ErrMissingItem)
	}
	if r.Start < 0 {
		ve.add(fmt.Errorf("%w: start slot %d is negative", ErrInvalidNumericInput, r.Start))
	}
	if r.End < 0 {
		ve.add(fmt.Errorf("%w: end slot %d is negative", ErrInvalidNumericInput, r.End))
	}
	if r.Start > MaxSlot {
		ve.add(fmt.Errorf("%w: start slot %d is above %d", ErrInvalidNumericInput, r.Start, MaxSlot))
	}
	if r.End > MaxSlot {
		ve.add(fmt.Errorf("%w: end slot %d is above %d", ErrInvalidNumericInput, r.End, MaxSlot))
	}
	if r.Start > r.End {
		ve.add(fmt.Errorf("%w: start %d is after end %d", ErrInvalidRange, r.Start, r.End))
	}
	if r.Count != nil && *r.Count < 0 {
		ve.add(fmt.Errorf("%w: count %d is negative", ErrInvalidNumericInput, *r.Count))
	}
	if r.Durability != nil && *r.Durability < 0 {
		ve.add(fmt.Errorf("%w: durability %d is negative", ErrInvalidNumericInput, *r.Durability))
	}

	return ve.err()
}

// Form is the text a user typed for a request.
type Form struct {
	Item        string
	Start       string
	End         string
	Count       string
	Durability  string
	VitalShield string
}

// ParseRequest converts form input into a request for rec. Count is only
// read for stackable items (blank means 1) and durability only for durable
// items (blank means the base durability). Shielded items carry the
// catalog's vital shield value unless one is typed.
func ParseRequest(rec catalog.ItemRecord, f Form) (Request, error) {
	ve := &ValidationError{}

	req := Request{Item: rec.Name}

	var err error
	req.Start, err = parseInt("start slot", f.Start)
	ve.add(err)
	req.End, err = parseInt("end slot", f.End)
	ve.add(err)

	kind := rec.Kind()
	if kind.Has(catalog.KindStackable) {
		count := 1
		if strings.TrimSpace(f.Count) != "" {
			count, err = parseInt("count", f.Count)
			ve.add(err)
		}
		req.Count = &count
	}
	if kind.Has(catalog.KindDurable) {
		d := int(rec.Durability.BaseDurability)
		if strings.TrimSpace(f.Durability) != "" {
			d, err = parseInt("durability", f.Durability)
			ve.add(err)
		}
		req.Durability = &d
	}
	if kind.Has(catalog.KindShielded) {
		v := rec.Shield.VitalShield
		if strings.TrimSpace(f.VitalShield) != "" {
			v, err = parseInt("vital shield", f.VitalShield)
			ve.add(err)
		}
		req.VitalShield = &v
	}

	if err := ve.err(); err != nil {
		return Request{}, err
	}

	if err := req.Validate(); err != nil {
		return Request{}, err
	}

	return req, nil
}

func parseInt(field, s string) (int, error) {
	i, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q", ErrInvalidNumericInput, field, s)
	}
	return i, nil
}
