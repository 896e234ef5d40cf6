package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	pkgcache "github.com/ghuser/itemcatalog/pkg/cache"
	"github.com/ghuser/itemcatalog/pkg/logger"
	itemdomain "github.com/ghuser/itemcatalog/services/item/domain"
	domainevents "github.com/ghuser/itemcatalog/services/item/domain/events"
	"github.com/ghuser/itemcatalog/services/item/domain/models"
	"github.com/ghuser/itemcatalog/services/item/domain/repositories"
	domainsvcs "github.com/ghuser/itemcatalog/services/item/domain/services"
)

// maxCreateAttempts bounds id regeneration when the store reports a collision.
const maxCreateAttempts = 3

const cacheWriteTimeout = 2 * time.Second

// CreateItemInput carries the already-decoded fields of a create request.
// Statistics is optional; nil means all counters start at zero.
type CreateItemInput struct {
	SellerID   int64
	Name       string
	Price      int64
	Statistics *StatisticsInput
}

// StatisticsInput is the optional initial engagement snapshot of a new item.
type StatisticsInput struct {
	Likes     int64
	ViewCount int64
	Contacts  int64
}

// ItemService orchestrates creation and retrieval of Items.
// Event publishing is handled by the repository layer (outbox pattern).
// Item attributes are served from Redis when a cache is configured.
type ItemService struct {
	repo    repositories.ItemRepository
	cache   *pkgcache.ItemCache
	log     logger.Logger
	metrics *itemMetrics
}

// NewItemService returns an ItemService wired with the given repository and cache.
// itemCache may be nil.
func NewItemService(repo repositories.ItemRepository, itemCache *pkgcache.ItemCache, log logger.Logger) *ItemService {
	return &ItemService{
		repo:    repo,
		cache:   itemCache,
		log:     log,
		metrics: newItemMetrics(),
	}
}

// Create validates and persists an Item. Fields are checked in the order
// seller, name, price, statistics and the first failure is returned.
func (s *ItemService) Create(ctx context.Context, in CreateItemInput) (*models.Item, error) {
	sellerID, err := models.NewSellerID(in.SellerID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", itemdomain.ErrInvalidSellerID, err)
	}

	name, err := models.NewItemName(in.Name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", itemdomain.ErrInvalidItemName, err)
	}
	if err := domainsvcs.ValidateName(name); err != nil {
		return nil, fmt.Errorf("%w: %w", itemdomain.ErrInvalidItemName, err)
	}

	price, err := models.NewPrice(in.Price)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", itemdomain.ErrInvalidPrice, err)
	}

	var stats models.Statistics
	if in.Statistics != nil {
		stats, err = models.NewStatistics(in.Statistics.Likes, in.Statistics.ViewCount, in.Statistics.Contacts)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", itemdomain.ErrInvalidStatistics, err)
		}
	}

	item := models.NewItem(sellerID, name, price, stats)
	if err := domainsvcs.ValidateItemForCreation(item); err != nil {
		return nil, fmt.Errorf("%w: %w", itemdomain.ErrInvalidInput, err)
	}

	for attempt := 1; ; attempt++ {
		err = s.repo.Save(ctx, item)
		if err == nil {
			break
		}
		if !errors.Is(err, itemdomain.ErrItemAlreadyExists) || attempt == maxCreateAttempts {
			return nil, fmt.Errorf("save item: %w", err)
		}
		s.log.WarnContext(ctx, "item id collision, regenerating", "item_id", item.ID.String(), "attempt", attempt)
		item = item.WithNewID()
	}

	s.metrics.created(ctx)
	return item, nil
}

// GetByID retrieves an Item using a read-through cache:
//  1. Check Redis for the item attributes.
//  2. On cache miss (or cache error), load the item from the repository
//     and warm the cache asynchronously.
//  3. On cache hit, read the current statistics from the repository.
func (s *ItemService) GetByID(ctx context.Context, rawID string) (*models.Item, error) {
	id, err := models.ParseItemID(rawID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", itemdomain.ErrInvalidItemID, err)
	}

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, id.String())
		switch {
		case err == nil:
			stats, err := s.repo.GetStatistics(ctx, id)
			if err != nil {
				return nil, fmt.Errorf("get item statistics: %w", err)
			}
			return fromCached(cached, stats), nil
		case !pkgcache.IsMiss(err):
			s.log.WarnContext(ctx, "item cache read failed", "item_id", id.String(), "error", err)
		}
	}

	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}

	if s.cache != nil {
		go s.warm(item)
	}

	return item, nil
}

// ListBySeller returns every item of the seller, oldest first. A seller
// without items yields an empty, non-nil slice.
func (s *ItemService) ListBySeller(ctx context.Context, rawSellerID string) ([]*models.Item, error) {
	sellerID, err := models.ParseSellerID(rawSellerID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", itemdomain.ErrInvalidSellerID, err)
	}

	items, err := s.repo.FindBySellerID(ctx, sellerID)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	if items == nil {
		items = []*models.Item{}
	}
	return items, nil
}

// GetStatistics returns the engagement counters of an item.
func (s *ItemService) GetStatistics(ctx context.Context, rawID string) (models.Statistics, error) {
	id, err := models.ParseItemID(rawID)
	if err != nil {
		return models.Statistics{}, fmt.Errorf("%w: %w", itemdomain.ErrInvalidItemID, err)
	}

	stats, err := s.repo.GetStatistics(ctx, id)
	if err != nil {
		return models.Statistics{}, fmt.Errorf("get statistics: %w", err)
	}
	return stats, nil
}

// RecordEngagement applies one engagement event to the item's counters and
// returns the updated statistics. Counters never drop below zero.
func (s *ItemService) RecordEngagement(ctx context.Context, event domainevents.EngagementRecordedEvent) (models.Statistics, error) {
	id, err := models.ParseItemID(event.ItemID)
	if err != nil {
		return models.Statistics{}, fmt.Errorf("%w: %w", itemdomain.ErrInvalidItemID, err)
	}
	engagement, err := models.NewEngagement(event.Kind, event.Delta)
	if err != nil {
		return models.Statistics{}, fmt.Errorf("%w: %w", itemdomain.ErrInvalidEngagement, err)
	}

	stats, err := s.repo.ApplyEngagement(ctx, id, engagement)
	if err != nil {
		return models.Statistics{}, fmt.Errorf("apply engagement: %w", err)
	}

	s.metrics.engagementApplied(ctx, engagement.Kind)
	return stats, nil
}

// WarmCache stores the attributes of a newly created item in Redis.
// Used by the worker when it consumes item.created.
func (s *ItemService) WarmCache(ctx context.Context, event domainevents.ItemCreatedEvent) error {
	if s.cache == nil {
		return nil
	}
	return s.cache.Set(ctx, &pkgcache.CachedItem{
		ID:        event.ItemID,
		SellerID:  event.SellerID,
		Name:      event.Name,
		Price:     event.Price,
		CreatedAt: event.OccurredAt,
	})
}

func (s *ItemService) warm(item *models.Item) {
	ctx, cancel := context.WithTimeout(context.Background(), cacheWriteTimeout)
	defer cancel()
	if err := s.cache.Set(ctx, toCached(item)); err != nil {
		s.log.WarnContext(ctx, "item cache write failed", "item_id", item.ID.String(), "error", err)
	}
}

func toCached(item *models.Item) *pkgcache.CachedItem {
	return &pkgcache.CachedItem{
		ID:        item.ID.String(),
		SellerID:  item.SellerID.Int64(),
		Name:      item.Name.String(),
		Price:     item.Price.Int64(),
		CreatedAt: item.CreatedAt,
	}
}

func fromCached(c *pkgcache.CachedItem, stats models.Statistics) *models.Item {
	return &models.Item{
		ID:         models.ItemID(c.ID),
		SellerID:   models.SellerID(c.SellerID),
		Name:       models.ItemName(c.Name),
		Price:      models.Price(c.Price),
		Statistics: stats,
		CreatedAt:  c.CreatedAt,
	}
}
