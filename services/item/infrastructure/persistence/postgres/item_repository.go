package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ghuser/itemcatalog/pkg/database"
	"github.com/ghuser/itemcatalog/pkg/events"
	itemdomain "github.com/ghuser/itemcatalog/services/item/domain"
	domainevents "github.com/ghuser/itemcatalog/services/item/domain/events"
	"github.com/ghuser/itemcatalog/services/item/domain/models"
	"github.com/ghuser/itemcatalog/services/item/infrastructure/persistence/postgres/db"
)

const pgUniqueViolation = "23505"

// ItemRepository implements repositories.ItemRepository against PostgreSQL.
type ItemRepository struct {
	db  *database.Database
	bus *events.EventBus
}

// NewItemRepository returns an ItemRepository backed by the given connection pool
// and event bus. The bus is used to publish ItemCreatedEvents after a successful save.
func NewItemRepository(d *database.Database, bus *events.EventBus) *ItemRepository {
	return &ItemRepository{db: d, bus: bus}
}

// Save persists a new Item and its statistics row and publishes an
// ItemCreatedEvent within the same transaction.
// Returns ErrItemAlreadyExists on unique constraint violations.
func (r *ItemRepository) Save(ctx context.Context, item *models.Item) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		q := db.New(tx)
		if err := q.InsertItem(ctx, db.InsertItemParams{
			ID:        item.ID.String(),
			SellerID:  item.SellerID.Int64(),
			Name:      item.Name.String(),
			Price:     item.Price.Int64(),
			CreatedAt: item.CreatedAt,
		}); err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
				return itemdomain.ErrItemAlreadyExists
			}
			return fmt.Errorf("insert item: %w", err)
		}

		if err := q.InsertItemStatistics(ctx, db.InsertItemStatisticsParams{
			ItemID:    item.ID.String(),
			Likes:     item.Statistics.Likes,
			ViewCount: item.Statistics.ViewCount,
			Contacts:  item.Statistics.Contacts,
		}); err != nil {
			return fmt.Errorf("insert item statistics: %w", err)
		}

		if r.bus != nil {
			if err := r.publishCreated(ctx, tx, item); err != nil {
				return fmt.Errorf("publish item created: %w", err)
			}
		}
		return nil
	})
}

// GetByID retrieves an Item with its statistics. Returns ErrItemNotFound if not found.
func (r *ItemRepository) GetByID(ctx context.Context, id models.ItemID) (*models.Item, error) {
	q := db.New(r.db.DB())
	row, err := q.GetItemByID(ctx, id.String())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, itemdomain.ErrItemNotFound
		}
		return nil, fmt.Errorf("query item: %w", err)
	}
	return rowToItem(db.FindItemsBySellerIDRow(row)), nil
}

// FindBySellerID retrieves every item of the seller, oldest first.
func (r *ItemRepository) FindBySellerID(ctx context.Context, sellerID models.SellerID) ([]*models.Item, error) {
	q := db.New(r.db.DB())

	rows, err := q.FindItemsBySellerID(ctx, sellerID.Int64())
	if err != nil {
		return nil, fmt.Errorf("query items: %w", err)
	}

	items := make([]*models.Item, len(rows))
	for i, row := range rows {
		items[i] = rowToItem(row)
	}
	return items, nil
}

// GetStatistics returns the engagement counters of an item.
func (r *ItemRepository) GetStatistics(ctx context.Context, id models.ItemID) (models.Statistics, error) {
	q := db.New(r.db.DB())
	row, err := q.GetItemStatistics(ctx, id.String())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Statistics{}, itemdomain.ErrItemNotFound
		}
		return models.Statistics{}, fmt.Errorf("query item statistics: %w", err)
	}
	return rowToStatistics(row), nil
}

// ApplyEngagement adjusts one counter with a single UPDATE … RETURNING, so
// concurrent events for the same item never lose increments.
func (r *ItemRepository) ApplyEngagement(ctx context.Context, id models.ItemID, e models.Engagement) (models.Statistics, error) {
	q := db.New(r.db.DB())
	row, err := q.ApplyItemEngagement(ctx, db.ApplyItemEngagementParams{
		Kind:   string(e.Kind),
		Delta:  e.Delta,
		ItemID: id.String(),
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Statistics{}, itemdomain.ErrItemNotFound
		}
		return models.Statistics{}, fmt.Errorf("apply engagement: %w", err)
	}
	return rowToStatistics(row), nil
}

func (r *ItemRepository) publishCreated(ctx context.Context, tx *sql.Tx, item *models.Item) error {
	event := domainevents.ItemCreatedEvent{
		EventID:    uuid.New(),
		Version:    1,
		ItemID:     item.ID.String(),
		SellerID:   item.SellerID.Int64(),
		Name:       item.Name.String(),
		Price:      item.Price.Int64(),
		OccurredAt: item.CreatedAt,
	}
	msg, err := events.NewJSONMessage(event.EventID.String(), event.Version, event)
	if err != nil {
		return err
	}
	return r.bus.PublishTx(ctx, tx, domainevents.TopicItemCreated, msg)
}

// rowToItem maps a joined item+statistics row to a domain models.Item.
func rowToItem(row db.FindItemsBySellerIDRow) *models.Item {
	return &models.Item{
		ID:       models.ItemID(row.ID),
		SellerID: models.SellerID(row.SellerID),
		Name:     models.ItemName(row.Name),
		Price:    models.Price(row.Price),
		Statistics: models.Statistics{
			Likes:     row.Likes,
			ViewCount: row.ViewCount,
			Contacts:  row.Contacts,
		},
		CreatedAt: row.CreatedAt.UTC(),
	}
}

func rowToStatistics(row db.ItemStatistic) models.Statistics {
	return models.Statistics{
		Likes:     row.Likes,
		ViewCount: row.ViewCount,
		Contacts:  row.Contacts,
	}
}
