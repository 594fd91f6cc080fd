package inventory

import (
	"encoding/base64"

	"github.com/google/uuid"
)

// GUIDGenerator stamps each synthesized slot entry. Uniqueness is only
// expected within a session; GUIDs already present in a save are not checked.
type GUIDGenerator interface {
	Next() string
}

// UUIDGenerator encodes a random v4 UUID as 22 characters of URL-safe
// base64, the same alphabet and length the game writes.
type UUIDGenerator struct{}

func (UUIDGenerator) Next() string {
	id := uuid.New()
	return base64.RawURLEncoding.EncodeToString(id[:])
}

// GUIDFunc adapts a function to GUIDGenerator.
type GUIDFunc func() string

func (f GUIDFunc) Next() string {
	return f()
}
