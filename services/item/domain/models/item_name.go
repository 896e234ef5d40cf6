package models

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// MaxItemNameRunes bounds a name's length in characters, not bytes.
const MaxItemNameRunes = 255

// ItemName is the display title of a listing: valid UTF-8, 1 to
// MaxItemNameRunes characters. Content rules live in the domain services.
type ItemName string

// NewItemName checks the structural constraints on s.
func NewItemName(s string) (ItemName, error) {
	switch n := utf8.RuneCountInString(s); {
	case !utf8.ValidString(s):
		return "", errors.New("name must be valid UTF-8")
	case n == 0:
		return "", errors.New("name is required")
	case n > MaxItemNameRunes:
		return "", fmt.Errorf("name must not exceed %d characters, got %d", MaxItemNameRunes, n)
	}
	return ItemName(s), nil
}

func (n ItemName) String() string {
	return string(n)
}
