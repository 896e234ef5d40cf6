package models

import "fmt"

// Price is a non-negative whole amount in the listing currency.
type Price int64

// NewPrice constructs a Price or returns an error if v is negative.
func NewPrice(v int64) (Price, error) {
	if v < 0 {
		return 0, fmt.Errorf("price must not be negative, got %d", v)
	}
	return Price(v), nil
}

// Int64 returns the underlying integer value.
func (p Price) Int64() int64 {
	return int64(p)
}
