package storage

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/elliotchance/orderedmap/v2"
	"github.com/pixil98/go-saveinject/internal/inventory"
)

// InventoryKey is the top-level field holding the inventory container.
const InventoryKey = "Inventory"

var (
	ErrFileNotFound     = errors.New("file not found")
	ErrInvalidJSON      = errors.New("invalid JSON format in save file")
	ErrMissingInventory = errors.New("save file has no inventory section")
)

// Document is a save file's top-level object. Fields are kept as raw JSON in
// file order so anything the injector doesn't touch is written back as read.
type Document struct {
	fields *orderedmap.OrderedMap[string, json.RawMessage]
}

// NewDocument returns an empty document.
func NewDocument() *Document {
	return &Document{fields: orderedmap.NewOrderedMap[string, json.RawMessage]()}
}

// ParseDocument reads a top-level JSON object, preserving field order.
func ParseDocument(data []byte) (*Document, error) {
	if !json.Valid(data) {
		return nil, ErrInvalidJSON
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("%w: top level is not an object", ErrInvalidJSON)
	}

	doc := NewDocument()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidJSON, err)
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("%w: unexpected token %v", ErrInvalidJSON, tok)
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("%w: field %q: %w", ErrInvalidJSON, key, err)
		}
		doc.fields.Set(key, raw)
	}

	// closing brace
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("%w: trailing data after object", ErrInvalidJSON)
	}

	return doc, nil
}

// Keys returns the top-level field names in order.
func (d *Document) Keys() []string {
	return d.fields.Keys()
}

// Raw returns a field's JSON.
func (d *Document) Raw(key string) (json.RawMessage, bool) {
	return d.fields.Get(key)
}

// Inventory parses the inventory subtree.
func (d *Document) Inventory() (*inventory.Container, error) {
	raw, ok := d.fields.Get(InventoryKey)
	if !ok || !isObject(raw) {
		return nil, ErrMissingInventory
	}

	c, err := inventory.ParseContainer(raw)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", InventoryKey, err)
	}
	return c, nil
}

// SetInventory replaces the inventory subtree, leaving every other field as
// it was.
func (d *Document) SetInventory(c *inventory.Container) error {
	b, err := c.MarshalJSON()
	if err != nil {
		return fmt.Errorf("marshal field %q: %w", InventoryKey, err)
	}

	d.fields.Set(InventoryKey, json.RawMessage(b))
	return nil
}

// MarshalJSON writes the fields in order.
func (d *Document) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	first := true
	for el := d.fields.Front(); el != nil; el = el.Next() {
		if !first {
			buf.WriteByte(',')
		}
		first = false

		key, err := json.Marshal(el.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(el.Value)
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Encode returns the document indented with four spaces.
func (d *Document) Encode() ([]byte, error) {
	compact, err := d.MarshalJSON()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, compact, "", "    "); err != nil {
		return nil, fmt.Errorf("indenting document: %w", err)
	}
	return buf.Bytes(), nil
}

func isObject(raw json.RawMessage) bool {
	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	return len(trimmed) > 0 && trimmed[0] == '{'
}
