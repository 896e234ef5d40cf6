package models

import (
	"fmt"
	"strconv"
)

// Inclusive bounds of a valid seller identifier.
const (
	MinSellerID = 111111
	MaxSellerID = 999999
)

// SellerID identifies the owner of an Item. Always within [MinSellerID, MaxSellerID].
type SellerID int64

// NewSellerID constructs a SellerID or returns an error if v is out of range.
func NewSellerID(v int64) (SellerID, error) {
	if v < MinSellerID || v > MaxSellerID {
		return 0, fmt.Errorf("seller id must be between %d and %d, got %d", MinSellerID, MaxSellerID, v)
	}
	return SellerID(v), nil
}

// ParseSellerID parses a base-10 seller id as it appears in a URL path.
// Signs, whitespace and any non-digit are rejected.
func ParseSellerID(s string) (SellerID, error) {
	if s == "" {
		return 0, fmt.Errorf("seller id must not be empty")
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, fmt.Errorf("seller id %q is not an integer", s)
		}
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("seller id %q is not an integer: %w", s, err)
	}
	return NewSellerID(v)
}

// Int64 returns the underlying integer value.
func (id SellerID) Int64() int64 {
	return int64(id)
}
