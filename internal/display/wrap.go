package display

import (
	"github.com/muesli/reflow/padding"
	"github.com/muesli/reflow/wordwrap"
)

const DefaultWidth = 80

// Wrap word-wraps text to DefaultWidth, preserving ANSI escape sequences.
func Wrap(text string) string {
	return wordwrap.String(text, DefaultWidth)
}

// Pad right-pads s with spaces to width printable cells. Longer strings are
// returned unchanged.
func Pad(s string, width uint) string {
	return padding.String(s, width)
}
