package session

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pixil98/go-saveinject/internal"
	"github.com/pixil98/go-saveinject/internal/display"
)

// Confirmer decides whether occupied slots may be overwritten.
type Confirmer interface {
	Confirm(conflicts []int) (bool, error)
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(conflicts []int) (bool, error)

func (f ConfirmFunc) Confirm(conflicts []int) (bool, error) {
	return f(conflicts)
}

var (
	AlwaysConfirm Confirmer = ConfirmFunc(func([]int) (bool, error) { return true, nil })
	NeverConfirm  Confirmer = ConfirmFunc(func([]int) (bool, error) { return false, nil })
)

// PromptConfirmer asks on rw before overwriting.
type PromptConfirmer struct {
	rw io.ReadWriter
}

func NewPromptConfirmer(rw io.ReadWriter) *PromptConfirmer {
	return &PromptConfirmer{rw: rw}
}

func (p *PromptConfirmer) Confirm(conflicts []int) (bool, error) {
	msg := fmt.Sprintf("The following slots are already occupied and will be overwritten: %s", FormatSlots(conflicts))
	if _, err := fmt.Fprintln(p.rw, display.Wrap(msg)); err != nil {
		return false, err
	}
	return internal.PromptYN(p.rw, "Continue? [y/n] ")
}

// FormatSlots renders ascending slots with consecutive runs collapsed,
// e.g. "8-10, 14".
func FormatSlots(slots []int) string {
	var parts []string
	for i := 0; i < len(slots); {
		j := i
		for j+1 < len(slots) && slots[j+1] == slots[j]+1 {
			j++
		}
		if i == j {
			parts = append(parts, strconv.Itoa(slots[i]))
		} else {
			parts = append(parts, fmt.Sprintf("%d-%d", slots[i], slots[j]))
		}
		i = j + 1
	}
	return strings.Join(parts, ", ")
}
