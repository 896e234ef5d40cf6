package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the item domain. Use errors.Is() to check these.
var (
	// ErrItemNotFound indicates the requested item does not exist.
	ErrItemNotFound = errors.New("item not found")

	// ErrItemAlreadyExists indicates an item with the same id already exists.
	ErrItemAlreadyExists = errors.New("item already exists")

	// ErrInvalidInput is the root of every request-data validation failure.
	// All errors below wrap it, so errors.Is(err, ErrInvalidInput) matches any of them.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidItemID indicates an empty or structurally malformed item id.
	ErrInvalidItemID = fmt.Errorf("%w: invalid item id", ErrInvalidInput)

	// ErrInvalidSellerID indicates a missing, non-integer or out-of-range seller id.
	ErrInvalidSellerID = fmt.Errorf("%w: invalid seller id", ErrInvalidInput)

	// ErrInvalidItemName indicates the item name violates domain constraints.
	ErrInvalidItemName = fmt.Errorf("%w: invalid item name", ErrInvalidInput)

	// ErrInvalidPrice indicates a missing or negative price.
	ErrInvalidPrice = fmt.Errorf("%w: invalid price", ErrInvalidInput)

	// ErrInvalidStatistics indicates a negative engagement counter.
	ErrInvalidStatistics = fmt.Errorf("%w: invalid statistics", ErrInvalidInput)

	// ErrInvalidEngagement indicates an unknown engagement kind or a zero delta.
	ErrInvalidEngagement = fmt.Errorf("%w: invalid engagement", ErrInvalidInput)
)
