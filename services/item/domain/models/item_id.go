package models

import (
	"fmt"

	"github.com/google/uuid"
)

const maxItemIDLength = 64

// ItemID is the opaque, server-generated identifier of an Item.
// Generated IDs are UUIDv4 strings; lookups accept any well-formed token so
// that unknown IDs resolve to "not found" rather than "malformed".
type ItemID string

// NewItemID returns a fresh random ItemID.
func NewItemID() ItemID {
	return ItemID(uuid.New().String())
}

// ParseItemID checks that s is a well-formed ItemID: 1 to 64 characters of
// ASCII letters, digits, '-' or '_'.
func ParseItemID(s string) (ItemID, error) {
	if s == "" {
		return "", fmt.Errorf("item id must not be empty")
	}
	if len(s) > maxItemIDLength {
		return "", fmt.Errorf("item id must not exceed %d characters", maxItemIDLength)
	}
	for i := 0; i < len(s); i++ {
		if !isIDChar(s[i]) {
			return "", fmt.Errorf("item id contains invalid character %q", s[i])
		}
	}
	return ItemID(s), nil
}

func isIDChar(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	case c == '-' || c == '_':
		return true
	default:
		return false
	}
}

// String returns the underlying string value.
func (id ItemID) String() string {
	return string(id)
}
