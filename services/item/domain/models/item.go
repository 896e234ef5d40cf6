package models

import (
	"time"
)

// Item is the core aggregate for this bounded context: one classified-ad listing.
type Item struct {
	ID         ItemID
	SellerID   SellerID // several items may share a seller
	Name       ItemName
	Price      Price
	Statistics Statistics
	CreatedAt  time.Time
}

// NewItem constructs a valid Item aggregate with generated ID and current timestamp.
// CreatedAt has microsecond precision, the resolution Postgres stores, so the
// value returned on create is the value every later read returns.
func NewItem(sellerID SellerID, name ItemName, price Price, stats Statistics) *Item {
	return &Item{
		ID:         NewItemID(),
		SellerID:   sellerID,
		Name:       name,
		Price:      price,
		Statistics: stats,
		CreatedAt:  time.Now().UTC().Truncate(time.Microsecond),
	}
}

// WithNewID returns a copy of the item carrying a freshly generated ID.
// Used when the store reports an ID collision.
func (i *Item) WithNewID() *Item {
	cp := *i
	cp.ID = NewItemID()
	return &cp
}
