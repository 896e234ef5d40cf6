package repositories

import (
	"context"

	"github.com/ghuser/itemcatalog/services/item/domain/models"
)

// ItemRepository is the persistence interface for the Item aggregate.
// The domain layer owns this interface; infrastructure implements it.
//
// Every method observes or mutates a single record atomically; callers never
// see an Item without its Statistics.
type ItemRepository interface {
	// Save persists a new Item together with its initial statistics.
	// Returns ErrItemAlreadyExists if the ID is taken.
	Save(ctx context.Context, item *models.Item) error

	// GetByID returns the Item or ErrItemNotFound.
	GetByID(ctx context.Context, id models.ItemID) (*models.Item, error)

	// FindBySellerID returns every Item of the seller. An unknown seller yields
	// an empty, non-nil slice.
	FindBySellerID(ctx context.Context, sellerID models.SellerID) ([]*models.Item, error)

	// GetStatistics returns the current counters of an Item or ErrItemNotFound.
	GetStatistics(ctx context.Context, id models.ItemID) (models.Statistics, error)

	// ApplyEngagement atomically adjusts one counter and returns the result.
	// Returns ErrItemNotFound if the Item does not exist.
	ApplyEngagement(ctx context.Context, id models.ItemID, e models.Engagement) (models.Statistics, error)
}
