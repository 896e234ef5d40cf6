package main

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"

	"github.com/ghuser/itemcatalog/pkg/events"
	"github.com/ghuser/itemcatalog/pkg/logger"
	itemdomain "github.com/ghuser/itemcatalog/services/item/domain"
	itemEvents "github.com/ghuser/itemcatalog/services/item/domain/events"
	"github.com/ghuser/itemcatalog/services/item/domain/models"
)

type fakeItemService struct {
	warmErr     error
	recordErr   error
	warmed      []itemEvents.ItemCreatedEvent
	engagements []itemEvents.EngagementRecordedEvent
}

func (f *fakeItemService) WarmCache(_ context.Context, evt itemEvents.ItemCreatedEvent) error {
	f.warmed = append(f.warmed, evt)
	return f.warmErr
}

func (f *fakeItemService) RecordEngagement(_ context.Context, evt itemEvents.EngagementRecordedEvent) (models.Statistics, error) {
	f.engagements = append(f.engagements, evt)
	return models.Statistics{Likes: 1}, f.recordErr
}

func jsonMessage(t *testing.T, payload any) *message.Message {
	t.Helper()
	msg, err := events.NewJSONMessage(uuid.NewString(), 1, payload)
	if err != nil {
		t.Fatalf("NewJSONMessage: %v", err)
	}
	return msg
}

func TestHandleItemCreated(t *testing.T) {
	svc := &fakeItemService{}
	h := handleItemCreated(svc, logger.Discard())

	evt := itemEvents.ItemCreatedEvent{EventID: uuid.New(), Version: 1, ItemID: "abc", SellerID: 300000, Name: "X", Price: 1}
	if err := h(context.Background(), jsonMessage(t, evt)); err != nil {
		t.Fatalf("handler: %v", err)
	}
	if len(svc.warmed) != 1 || svc.warmed[0].ItemID != "abc" {
		t.Fatalf("expected cache warm for abc, got %+v", svc.warmed)
	}
}

func TestHandleItemCreated_CacheFailureIsAcked(t *testing.T) {
	svc := &fakeItemService{warmErr: errors.New("redis down")}
	h := handleItemCreated(svc, logger.Discard())

	if err := h(context.Background(), jsonMessage(t, itemEvents.ItemCreatedEvent{ItemID: "abc"})); err != nil {
		t.Fatalf("cache failures must not fail the handler, got %v", err)
	}
}

func TestHandleItemCreated_MalformedPayload(t *testing.T) {
	h := handleItemCreated(&fakeItemService{}, logger.Discard())
	err := h(context.Background(), message.NewMessage("id", []byte("not json")))
	if !errors.Is(err, events.ErrPermanent) {
		t.Fatalf("expected permanent error, got %v", err)
	}
}

func TestHandleEngagement(t *testing.T) {
	tests := []struct {
		name          string
		recordErr     error
		wantErr       bool
		wantPermanent bool
	}{
		{"applied", nil, false, false},
		{"unknown item", fmt.Errorf("apply engagement: %w", itemdomain.ErrItemNotFound), true, true},
		{"invalid kind", fmt.Errorf("%w: unknown kind", itemdomain.ErrInvalidEngagement), true, true},
		{"database down", errors.New("connection refused"), true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeItemService{recordErr: tt.recordErr}
			h := handleEngagement(svc, logger.Discard())

			evt := itemEvents.EngagementRecordedEvent{EventID: uuid.New(), Version: 1, ItemID: "abc", Kind: "like", Delta: 1}
			err := h(context.Background(), jsonMessage(t, evt))

			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if got := errors.Is(err, events.ErrPermanent); got != tt.wantPermanent {
				t.Errorf("permanent = %v, want %v (err %v)", got, tt.wantPermanent, err)
			}
			if len(svc.engagements) != 1 || svc.engagements[0].Kind != "like" {
				t.Errorf("expected one engagement forwarded, got %+v", svc.engagements)
			}
		})
	}
}
