package command

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/pixil98/go-errors"
	"github.com/pixil98/go-saveinject/internal/queue"
	"github.com/pixil98/go-saveinject/internal/session"
)

// RequestConfig is one queued injection. Numbers may be given as JSON
// numbers or numeric strings. Preset fills start and end when they are
// omitted.
type RequestConfig struct {
	Item        string      `json:"item"`
	Preset      string      `json:"preset,omitempty"`
	Start       json.Number `json:"start,omitempty"`
	End         json.Number `json:"end,omitempty"`
	Count       json.Number `json:"count,omitempty"`
	Durability  json.Number `json:"durability,omitempty"`
	VitalShield json.Number `json:"vital_shield,omitempty"`
}

func (r *RequestConfig) validate() error {
	el := errors.NewErrorList()

	if r.Item == "" {
		el.Add(fmt.Errorf("item is required"))
	}

	if r.Preset != "" {
		_, err := queue.LookupPreset(r.Preset)
		el.Add(err)
	} else if r.Start == "" {
		el.Add(fmt.Errorf("start or preset is required"))
	}

	return el.Err()
}

func (r *RequestConfig) form() (queue.Form, error) {
	f := queue.Form{
		Item:        r.Item,
		Start:       r.Start.String(),
		End:         r.End.String(),
		Count:       r.Count.String(),
		Durability:  r.Durability.String(),
		VitalShield: r.VitalShield.String(),
	}

	if r.Preset != "" {
		p, err := queue.LookupPreset(r.Preset)
		if err != nil {
			return queue.Form{}, err
		}
		if f.Start == "" {
			f.Start = strconv.Itoa(p.Start)
		}
		if f.End == "" {
			f.End = strconv.Itoa(p.End)
		}
	}

	// a lone start is a single slot
	if f.End == "" {
		f.End = f.Start
	}

	return f, nil
}

// queueRequests adds every configured request to s, reporting every
// rejected one.
func queueRequests(s *session.Session, requests []RequestConfig) error {
	el := errors.NewErrorList()

	for i, r := range requests {
		f, err := r.form()
		if err != nil {
			el.Add(fmt.Errorf("request %d: %w", i, err))
			continue
		}

		if err := s.QueueAddForm(f); err != nil {
			el.Add(fmt.Errorf("request %d (%s): %w", i, r.Item, err))
		}
	}

	return el.Err()
}
