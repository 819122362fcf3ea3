// Package uuid wraps github.com/google/uuid with UUIDv7 as the default
// version. Spool and catalog color ids are UUIDv7 so generated ids sort by
// creation time, which gives list queries a stable secondary ordering key.
package uuid

import (
	"github.com/google/uuid"
)

// UUID is aliased from github.com/google/uuid.UUID.
type UUID = uuid.UUID

// Nil is the zero UUID value.
var Nil = uuid.Nil

// New returns a new UUIDv7. Panics if generation fails.
func New() UUID {
	id, err := uuid.NewV7()
	if err != nil {
		panic(err)
	}
	return id
}

// UUID7 returns a new UUIDv7, swallowing generation errors.
func UUID7() UUID {
	id, _ := uuid.NewV7()
	return id
}

// NewRandom returns a new UUIDv7 and any error encountered during generation.
func NewRandom() (UUID, error) {
	return uuid.NewV7()
}

// Parse parses a UUID string.
func Parse(s string) (UUID, error) {
	return uuid.Parse(s)
}

// MustParse parses a UUID string and panics on invalid input.
func MustParse(s string) UUID {
	return uuid.MustParse(s)
}

// IsUUIDv7 reports whether id is a version 7 UUID.
func IsUUIDv7(id UUID) bool {
	return id.Version() == uuid.Version(7)
}

// Compare orders two UUIDv7 values by their byte representation, which for
// v7 matches creation order.
// Returns -1 when a was created before b, 0 when equal, +1 otherwise.
func Compare(a, b UUID) int {
	for i := range a {
		if a[i] < b[i] {
			return -1
		}
		if a[i] > b[i] {
			return 1
		}
	}
	return 0
}
