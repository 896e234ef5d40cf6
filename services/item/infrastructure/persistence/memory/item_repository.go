// Package memory provides an in-process ItemRepository. State lives in maps
// guarded by a single RWMutex; every read returns copies so callers never
// observe a write in progress. Nothing survives a restart.
package memory

import (
	"context"
	"sort"
	"sync"

	itemdomain "github.com/ghuser/itemcatalog/services/item/domain"
	"github.com/ghuser/itemcatalog/services/item/domain/models"
)

// ItemRepository implements repositories.ItemRepository in memory.
type ItemRepository struct {
	mu       sync.RWMutex
	items    map[models.ItemID]models.Item
	bySeller map[models.SellerID][]models.ItemID
}

// NewItemRepository returns an empty ItemRepository.
func NewItemRepository() *ItemRepository {
	return &ItemRepository{
		items:    make(map[models.ItemID]models.Item),
		bySeller: make(map[models.SellerID][]models.ItemID),
	}
}

// Save stores a copy of item. Returns ErrItemAlreadyExists if the ID is taken.
func (r *ItemRepository) Save(ctx context.Context, item *models.Item) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[item.ID]; ok {
		return itemdomain.ErrItemAlreadyExists
	}
	r.items[item.ID] = *item
	r.bySeller[item.SellerID] = append(r.bySeller[item.SellerID], item.ID)
	return nil
}

// GetByID returns a copy of the stored Item or ErrItemNotFound.
func (r *ItemRepository) GetByID(ctx context.Context, id models.ItemID) (*models.Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[id]
	if !ok {
		return nil, itemdomain.ErrItemNotFound
	}
	return &item, nil
}

// FindBySellerID returns copies of the seller's items, oldest first.
func (r *ItemRepository) FindBySellerID(ctx context.Context, sellerID models.SellerID) ([]*models.Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	ids := r.bySeller[sellerID]
	items := make([]*models.Item, 0, len(ids))
	for _, id := range ids {
		item := r.items[id]
		items = append(items, &item)
	}
	r.mu.RUnlock()

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.Before(items[j].CreatedAt)
	})
	return items, nil
}

// GetStatistics returns the counters of the Item or ErrItemNotFound.
func (r *ItemRepository) GetStatistics(ctx context.Context, id models.ItemID) (models.Statistics, error) {
	if err := ctx.Err(); err != nil {
		return models.Statistics{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[id]
	if !ok {
		return models.Statistics{}, itemdomain.ErrItemNotFound
	}
	return item.Statistics, nil
}

// ApplyEngagement adjusts one counter under the write lock.
func (r *ItemRepository) ApplyEngagement(ctx context.Context, id models.ItemID, e models.Engagement) (models.Statistics, error) {
	if err := ctx.Err(); err != nil {
		return models.Statistics{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[id]
	if !ok {
		return models.Statistics{}, itemdomain.ErrItemNotFound
	}
	item.Statistics = item.Statistics.Apply(e)
	r.items[id] = item
	return item.Statistics, nil
}
