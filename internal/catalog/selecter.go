package catalog

import (
	"fmt"
	"io"
	"strconv"

	"github.com/pixil98/go-saveinject/internal"
)

const (
	defaultSelectorRowLength = 80
	defaultSelectorRowCount  = 5
)

// Selector is a numbered, column-packed listing of catalog entries used to
// pick an item by number.
type Selector struct {
	options []Entry
	output  []string
}

// NewSelector lists the given entries in order. Pass Store.All or the result
// of Store.Search.
func NewSelector(entries []Entry) *Selector {
	s := &Selector{options: entries}
	s.build()
	return s
}

func (s *Selector) build() {
	// Calculate column width
	colWidth := 1
	for _, v := range s.options {
		l := len(v.Name) + 7 // Plus 7 for number and spacing (nn. <val>  )
		if l > colWidth {
			colWidth = l
		}
	}

	// Fill columns first, left to right, growing past the default row count
	// when the names don't fit across.
	numVals := len(s.options)
	numCols := max(defaultSelectorRowLength/colWidth, 1)
	numRows := max((numVals+numCols-1)/numCols, defaultSelectorRowCount)

	rows := make([]string, numRows)
	for i, v := range s.options {
		rows[i%numRows] += fmt.Sprintf("%2d. %-*s  ", i+1, colWidth-6, v.Name)
	}

	s.output = rows
}

// Rows returns the rendered listing without empty rows.
func (s *Selector) Rows() []string {
	var out []string
	for _, r := range s.output {
		if r != "" {
			out = append(out, r)
		}
	}
	return out
}

// Prompt writes the listing and reads a selection number from rw.
func (s *Selector) Prompt(rw io.ReadWriter, prompt string) (Entry, error) {
	_, err := fmt.Fprintf(rw, "%s\n", prompt)
	if err != nil {
		return Entry{}, err
	}

	for _, str := range s.Rows() {
		_, err = fmt.Fprintf(rw, "%s\n", str)
		if err != nil {
			return Entry{}, err
		}
	}

	selection, err := internal.Prompt(rw, "Make your selection: ", internal.WithValidator(
		func(str string) (bool, string) {
			i, err := strconv.Atoi(str)
			if err != nil {
				return false, "Invalid selection!\n"
			}

			if _, ok := s.Select(i); !ok {
				return false, "Invalid selection!\n"
			}

			return true, ""
		},
	))
	if err != nil {
		return Entry{}, err
	}

	i, err := strconv.Atoi(selection)
	if err != nil {
		return Entry{}, err
	}

	e, _ := s.Select(i)
	return e, nil
}

// Select returns the 1-based i'th entry.
func (s *Selector) Select(i int) (Entry, bool) {
	if i < 1 || i > len(s.options) {
		return Entry{}, false
	}
	return s.options[i-1], true
}
