package queue

import (
	"fmt"
	"slices"
	"strings"

	"github.com/pixil98/go-saveinject/internal/display"
)

// columnWidth is the width of the left column in Columns.
const columnWidth = 35

// Queue holds pending requests in the order they were added. Overlapping
// ranges are accepted; precedence is decided when the queue is merged.
type Queue struct {
	requests []Request
}

// Add validates req and appends it.
func (q *Queue) Add(req Request) error {
	if err := req.Validate(); err != nil {
		return err
	}
	q.requests = append(q.requests, req)
	return nil
}

// Clear empties the queue.
func (q *Queue) Clear() {
	q.requests = nil
}

// Len returns the number of queued requests.
func (q *Queue) Len() int {
	return len(q.requests)
}

// Requests returns a copy of the queued requests in insertion order.
func (q *Queue) Requests() []Request {
	return slices.Clone(q.requests)
}

// Render returns one display line per request, in queue order.
func (q *Queue) Render() []string {
	lines := make([]string, len(q.requests))
	for i, r := range q.requests {
		lines[i] = Label(r)
	}
	return lines
}

// Label formats a request as "[start-end] Item (count)".
func Label(r Request) string {
	var sb strings.Builder
	if r.Start == r.End {
		fmt.Fprintf(&sb, "[%d]", r.Start)
	} else {
		fmt.Fprintf(&sb, "[%d-%d]", r.Start, r.End)
	}
	fmt.Fprintf(&sb, " %s", r.Item)
	if r.Count != nil && *r.Count != 0 {
		fmt.Fprintf(&sb, " (%d)", *r.Count)
	}
	return sb.String()
}

// Columns packs lines two per row, the left one padded to a fixed width.
func Columns(lines []string) string {
	var sb strings.Builder
	for i := 0; i < len(lines); i += 2 {
		sb.WriteString(display.Pad(lines[i], columnWidth))
		if i+1 < len(lines) {
			sb.WriteString(lines[i+1])
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
