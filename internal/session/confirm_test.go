package session

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/pixil98/go-saveinject/internal"
	"github.com/pixil98/go-testutil"
)

// mockReadWriter implements io.ReadWriter for testing prompts
type mockReadWriter struct {
	readBuf  *bytes.Buffer
	writeBuf *bytes.Buffer
}

func (m *mockReadWriter) Read(p []byte) (n int, err error) {
	return m.readBuf.Read(p)
}

func (m *mockReadWriter) Write(p []byte) (n int, err error) {
	return m.writeBuf.Write(p)
}

func TestFormatSlots(t *testing.T) {
	tests := map[string]struct {
		slots []int
		exp   string
	}{
		"empty":          {slots: nil, exp: ""},
		"single":         {slots: []int{4}, exp: "4"},
		"run":            {slots: []int{8, 9, 10}, exp: "8-10"},
		"runs and gaps":  {slots: []int{1, 3, 4, 5, 9, 14, 15}, exp: "1, 3-5, 9, 14-15"},
		"no consecutive": {slots: []int{2, 4, 6}, exp: "2, 4, 6"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			testutil.AssertEqual(t, "formatted", FormatSlots(tt.slots), tt.exp)
		})
	}
}

func TestPromptConfirmer(t *testing.T) {
	tests := map[string]struct {
		input  string
		exp    bool
		expErr error
		anyErr bool
	}{
		"yes":             {input: "y\n", exp: true},
		"no":              {input: "NO\n", exp: false},
		"retry then yes":  {input: "maybe\nyes\n", exp: true},
		"too many tries":  {input: "a\nb\nc\n", expErr: internal.ErrTooManyTries},
		"closed terminal": {input: "", anyErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			rw := &mockReadWriter{
				readBuf:  bytes.NewBufferString(tt.input),
				writeBuf: &bytes.Buffer{},
			}

			ok, err := NewPromptConfirmer(rw).Confirm([]int{8, 9, 10, 14})

			if tt.expErr != nil || tt.anyErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if tt.expErr != nil && !errors.Is(err, tt.expErr) {
					t.Errorf("expected %v, got %v", tt.expErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			testutil.AssertEqual(t, "confirmed", ok, tt.exp)

			if !strings.Contains(rw.writeBuf.String(), "8-10, 14") {
				t.Errorf("expected slot list in output, got %q", rw.writeBuf.String())
			}
		})
	}
}
