package command

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pixil98/go-saveinject/internal"
	"github.com/pixil98/go-saveinject/internal/catalog"
	"github.com/pixil98/go-saveinject/internal/queue"
)

// collect asks for requests on the terminal until the user declines. A
// rejected request is reported and the user may try again.
func (w *Injector) collect() error {
	for {
		more, err := internal.PromptYN(w.term, "Add an item? [y/n] ")
		if err != nil {
			return err
		}
		if !more {
			return nil
		}

		f, err := w.promptForm()
		if err != nil {
			return err
		}
		if f == nil {
			continue
		}

		err = w.session.QueueAddForm(*f)
		if err != nil {
			w.logger.WithError(err).Warn("request rejected")
			if _, err := fmt.Fprintf(w.term, "Not queued: %v\n", err); err != nil {
				return err
			}
			continue
		}

		pending := w.session.QueueRender()
		if _, err := fmt.Fprintf(w.term, "Queued %s\n", pending[len(pending)-1]); err != nil {
			return err
		}
	}
}

// promptForm picks an item and reads its slots and attributes. It returns
// nil when no item matches the filter.
func (w *Injector) promptForm() (*queue.Form, error) {
	filter, err := internal.Prompt(w.term, "Filter items (blank for all): ")
	if err != nil {
		return nil, err
	}

	matches := w.session.Catalog().Search(filter)
	if len(matches) == 0 {
		_, err := fmt.Fprintf(w.term, "No items match %q.\n", filter)
		return nil, err
	}

	e, err := catalog.NewSelector(matches).Prompt(w.term, "Items:")
	if err != nil {
		return nil, err
	}

	f := &queue.Form{Item: e.Name}

	f.Start, err = internal.Prompt(w.term, fmt.Sprintf("Start slot or preset (%s): ", presetNames()))
	if err != nil {
		return nil, err
	}
	if p, err := queue.LookupPreset(f.Start); err == nil {
		f.Start = strconv.Itoa(p.Start)
		f.End = strconv.Itoa(p.End)
	} else {
		f.End, err = internal.Prompt(w.term, "End slot (blank for start): ")
		if err != nil {
			return nil, err
		}
		if strings.TrimSpace(f.End) == "" {
			f.End = f.Start
		}
	}

	kind := e.Record.Kind()
	if kind.Has(catalog.KindStackable) {
		f.Count, err = internal.Prompt(w.term, fmt.Sprintf("Count (max %d, blank for 1): ", e.Record.Stack.MaxStackSize))
		if err != nil {
			return nil, err
		}
	}
	if kind.Has(catalog.KindDurable) {
		f.Durability, err = internal.Prompt(w.term, fmt.Sprintf("Durability (blank for %d): ", e.Record.Durability.BaseDurability))
		if err != nil {
			return nil, err
		}
	}

	return f, nil
}

func presetNames() string {
	var names []string
	for _, p := range queue.Presets() {
		names = append(names, p.Name)
	}
	return strings.Join(names, ", ")
}
