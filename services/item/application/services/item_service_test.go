package services

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/ghuser/itemcatalog/pkg/logger"
	itemdomain "github.com/ghuser/itemcatalog/services/item/domain"
	domainevents "github.com/ghuser/itemcatalog/services/item/domain/events"
	"github.com/ghuser/itemcatalog/services/item/domain/models"
	"github.com/ghuser/itemcatalog/services/item/infrastructure/persistence/memory"
)

// collidingRepository reports an id collision for the first n saves.
type collidingRepository struct {
	*memory.ItemRepository
	mu         sync.Mutex
	collisions int
	seenIDs    []models.ItemID
}

func (r *collidingRepository) Save(ctx context.Context, item *models.Item) error {
	r.mu.Lock()
	r.seenIDs = append(r.seenIDs, item.ID)
	if r.collisions > 0 {
		r.collisions--
		r.mu.Unlock()
		return itemdomain.ErrItemAlreadyExists
	}
	r.mu.Unlock()
	return r.ItemRepository.Save(ctx, item)
}

func newService() *ItemService {
	return NewItemService(memory.NewItemRepository(), nil, logger.Discard())
}

func validInput() CreateItemInput {
	return CreateItemInput{SellerID: 300000, Name: "X", Price: 1000}
}

func TestCreate_Success(t *testing.T) {
	svc := newService()

	item, err := svc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if item.ID == "" {
		t.Error("expected generated id")
	}
	if item.SellerID != 300000 || item.Name != "X" || item.Price != 1000 {
		t.Errorf("unexpected item: %+v", item)
	}
	if item.Statistics != (models.Statistics{}) {
		t.Errorf("expected zero statistics, got %+v", item.Statistics)
	}
	if item.CreatedAt.IsZero() {
		t.Error("expected createdAt to be set")
	}
}

func TestCreate_ValidationOrder(t *testing.T) {
	tests := []struct {
		name string
		in   CreateItemInput
		want error
	}{
		{"seller below range", CreateItemInput{SellerID: 111110, Name: "X", Price: 1}, itemdomain.ErrInvalidSellerID},
		{"seller above range", CreateItemInput{SellerID: 1000000, Name: "X", Price: 1}, itemdomain.ErrInvalidSellerID},
		{"seller wins over name", CreateItemInput{SellerID: 0, Name: "", Price: -1}, itemdomain.ErrInvalidSellerID},
		{"empty name", CreateItemInput{SellerID: 300000, Name: "", Price: 1}, itemdomain.ErrInvalidItemName},
		{"name wins over price", CreateItemInput{SellerID: 300000, Name: " X", Price: -1}, itemdomain.ErrInvalidItemName},
		{"negative price", CreateItemInput{SellerID: 300000, Name: "X", Price: -1}, itemdomain.ErrInvalidPrice},
		{
			"negative statistics",
			CreateItemInput{SellerID: 300000, Name: "X", Price: 1, Statistics: &StatisticsInput{Contacts: -1}},
			itemdomain.ErrInvalidStatistics,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := memory.NewItemRepository()
			svc := NewItemService(repo, nil, logger.Discard())

			_, err := svc.Create(context.Background(), tt.in)
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
			if !errors.Is(err, itemdomain.ErrInvalidInput) {
				t.Errorf("expected error to wrap ErrInvalidInput: %v", err)
			}
			items, _ := repo.FindBySellerID(context.Background(), models.SellerID(tt.in.SellerID))
			if len(items) != 0 {
				t.Errorf("invalid input must not persist anything, found %d items", len(items))
			}
		})
	}
}

func TestCreate_RetriesOnCollision(t *testing.T) {
	repo := &collidingRepository{ItemRepository: memory.NewItemRepository(), collisions: 2}
	svc := NewItemService(repo, nil, logger.Discard())

	item, err := svc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if len(repo.seenIDs) != 3 {
		t.Fatalf("expected 3 save attempts, got %d", len(repo.seenIDs))
	}
	if repo.seenIDs[0] == repo.seenIDs[1] || repo.seenIDs[1] == repo.seenIDs[2] {
		t.Errorf("expected a fresh id per attempt, got %v", repo.seenIDs)
	}
	if item.ID != repo.seenIDs[2] {
		t.Errorf("returned id %s is not the persisted one %s", item.ID, repo.seenIDs[2])
	}
}

func TestCreate_GivesUpAfterMaxAttempts(t *testing.T) {
	repo := &collidingRepository{ItemRepository: memory.NewItemRepository(), collisions: maxCreateAttempts}
	svc := NewItemService(repo, nil, logger.Discard())

	_, err := svc.Create(context.Background(), validInput())
	if !errors.Is(err, itemdomain.ErrItemAlreadyExists) {
		t.Fatalf("expected ErrItemAlreadyExists, got %v", err)
	}
	if len(repo.seenIDs) != maxCreateAttempts {
		t.Errorf("expected %d attempts, got %d", maxCreateAttempts, len(repo.seenIDs))
	}
}

func TestCreate_ConcurrentIDsAreUnique(t *testing.T) {
	svc := newService()
	const n = 100

	var wg sync.WaitGroup
	ids := make(chan models.ItemID, n)
	for i := range n {
		wg.Add(1)
		go func(seller int64) {
			defer wg.Done()
			item, err := svc.Create(context.Background(), CreateItemInput{SellerID: seller, Name: "X", Price: 1})
			if err != nil {
				t.Errorf("Create: %v", err)
				return
			}
			ids <- item.ID
		}(300000 + int64(i%7))
	}
	wg.Wait()
	close(ids)

	seen := make(map[models.ItemID]bool, n)
	for id := range ids {
		if seen[id] {
			t.Fatalf("duplicate id %s", id)
		}
		seen[id] = true
	}
	if len(seen) != n {
		t.Errorf("expected %d ids, got %d", n, len(seen))
	}
}

func TestGetByID(t *testing.T) {
	svc := newService()
	ctx := context.Background()
	created, err := svc.Create(ctx, validInput())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := svc.GetByID(ctx, created.ID.String())
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if *got != *created {
		t.Errorf("got %+v, want %+v", got, created)
	}

	if _, err := svc.GetByID(ctx, "nonexistent123"); !errors.Is(err, itemdomain.ErrItemNotFound) {
		t.Errorf("expected ErrItemNotFound, got %v", err)
	}
	if _, err := svc.GetByID(ctx, ""); !errors.Is(err, itemdomain.ErrInvalidItemID) {
		t.Errorf("expected ErrInvalidItemID for empty id, got %v", err)
	}
	if _, err := svc.GetByID(ctx, strings.Repeat("a", 65)); !errors.Is(err, itemdomain.ErrInvalidItemID) {
		t.Errorf("expected ErrInvalidItemID for oversized id, got %v", err)
	}
}

func TestListBySeller(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	for _, name := range []string{"A", "B"} {
		if _, err := svc.Create(ctx, CreateItemInput{SellerID: 300000, Name: name, Price: 1}); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}
	if _, err := svc.Create(ctx, CreateItemInput{SellerID: 400000, Name: "C", Price: 1}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	items, err := svc.ListBySeller(ctx, "300000")
	if err != nil {
		t.Fatalf("ListBySeller: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	for _, it := range items {
		if it.SellerID != 300000 {
			t.Errorf("unexpected seller %d", it.SellerID)
		}
	}

	empty, err := svc.ListBySeller(ctx, "555555")
	if err != nil {
		t.Fatalf("ListBySeller: %v", err)
	}
	if empty == nil || len(empty) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", empty)
	}

	for _, raw := range []string{"", "abc", "111110", "1000000", "+300000"} {
		if _, err := svc.ListBySeller(ctx, raw); !errors.Is(err, itemdomain.ErrInvalidSellerID) {
			t.Errorf("ListBySeller(%q): expected ErrInvalidSellerID, got %v", raw, err)
		}
	}
}

func TestGetStatistics(t *testing.T) {
	svc := newService()
	ctx := context.Background()
	in := validInput()
	in.Statistics = &StatisticsInput{Likes: 1, ViewCount: 2, Contacts: 3}
	created, err := svc.Create(ctx, in)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	stats, err := svc.GetStatistics(ctx, created.ID.String())
	if err != nil {
		t.Fatalf("GetStatistics: %v", err)
	}
	if stats != (models.Statistics{Likes: 1, ViewCount: 2, Contacts: 3}) {
		t.Errorf("unexpected statistics %+v", stats)
	}

	if _, err := svc.GetStatistics(ctx, "nonexistent123"); !errors.Is(err, itemdomain.ErrItemNotFound) {
		t.Errorf("expected ErrItemNotFound, got %v", err)
	}
	if _, err := svc.GetStatistics(ctx, ""); !errors.Is(err, itemdomain.ErrInvalidItemID) {
		t.Errorf("expected ErrInvalidItemID, got %v", err)
	}
}

func TestRecordEngagement(t *testing.T) {
	svc := newService()
	ctx := context.Background()
	created, err := svc.Create(ctx, validInput())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	event := func(kind string, delta int64) domainevents.EngagementRecordedEvent {
		return domainevents.EngagementRecordedEvent{
			EventID: uuid.New(),
			Version: 1,
			ItemID:  created.ID.String(),
			Kind:    kind,
			Delta:   delta,
		}
	}

	if _, err := svc.RecordEngagement(ctx, event("view", 5)); err != nil {
		t.Fatalf("RecordEngagement: %v", err)
	}
	stats, err := svc.RecordEngagement(ctx, event("like", -2))
	if err != nil {
		t.Fatalf("RecordEngagement: %v", err)
	}
	if stats.ViewCount != 5 || stats.Likes != 0 {
		t.Errorf("unexpected statistics %+v", stats)
	}

	got, err := svc.GetStatistics(ctx, created.ID.String())
	if err != nil || got != stats {
		t.Errorf("GetStatistics = %+v, %v; want %+v", got, err, stats)
	}

	if _, err := svc.RecordEngagement(ctx, event("share", 1)); !errors.Is(err, itemdomain.ErrInvalidEngagement) {
		t.Errorf("expected ErrInvalidEngagement, got %v", err)
	}
	missing := event("like", 1)
	missing.ItemID = "nonexistent123"
	if _, err := svc.RecordEngagement(ctx, missing); !errors.Is(err, itemdomain.ErrItemNotFound) {
		t.Errorf("expected ErrItemNotFound, got %v", err)
	}
}

func TestWarmCache_NoCacheIsNoop(t *testing.T) {
	svc := newService()
	if err := svc.WarmCache(context.Background(), domainevents.ItemCreatedEvent{ItemID: "abc"}); err != nil {
		t.Fatalf("WarmCache: %v", err)
	}
}

func TestMetrics_ItemsCreated(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	defer mp.Shutdown(context.Background()) //nolint:errcheck
	otel.SetMeterProvider(mp)

	svc := newService()
	ctx := context.Background()
	for range 2 {
		if _, err := svc.Create(ctx, validInput()); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}
	_, _ = svc.Create(ctx, CreateItemInput{SellerID: 1})

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(ctx, &rm); err != nil {
		t.Fatalf("collect: %v", err)
	}
	if got := counterValue(rm, "items.created"); got != 2 {
		t.Errorf("items.created = %d, want 2", got)
	}
}

func TestMetrics_EngagementApplied(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	defer mp.Shutdown(context.Background()) //nolint:errcheck
	otel.SetMeterProvider(mp)

	svc := newService()
	ctx := context.Background()
	created, err := svc.Create(ctx, validInput())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	for _, kind := range []string{"view", "view", "contact", "share"} {
		_, _ = svc.RecordEngagement(ctx, domainevents.EngagementRecordedEvent{
			EventID: uuid.New(), Version: 1, ItemID: created.ID.String(), Kind: kind, Delta: 1,
		})
	}

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(ctx, &rm); err != nil {
		t.Fatalf("collect: %v", err)
	}
	if got := counterValue(rm, "items.engagement.applied"); got != 3 {
		t.Errorf("items.engagement.applied = %d, want 3", got)
	}
}

func counterValue(rm metricdata.ResourceMetrics, name string) int64 {
	var total int64
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != name {
				continue
			}
			if sum, ok := m.Data.(metricdata.Sum[int64]); ok {
				for _, dp := range sum.DataPoints {
					total += dp.Value
				}
			}
		}
	}
	return total
}
