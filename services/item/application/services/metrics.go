package services

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/ghuser/itemcatalog/services/item/domain/models"
)

const meterName = "github.com/ghuser/itemcatalog/services/item"

type itemMetrics struct {
	itemsCreated      metric.Int64Counter
	engagementCounter metric.Int64Counter
}

// newItemMetrics registers the item counters on the global meter provider.
// Instrument creation only fails on invalid names, so errors fall back to
// no-op instruments.
func newItemMetrics() *itemMetrics {
	meter := otel.Meter(meterName)

	created, err := meter.Int64Counter("items.created",
		metric.WithDescription("Items successfully created"),
		metric.WithUnit("{item}"))
	if err != nil {
		otel.Handle(err)
	}
	applied, err := meter.Int64Counter("items.engagement.applied",
		metric.WithDescription("Engagement events applied to item statistics"),
		metric.WithUnit("{event}"))
	if err != nil {
		otel.Handle(err)
	}
	return &itemMetrics{itemsCreated: created, engagementCounter: applied}
}

func (m *itemMetrics) created(ctx context.Context) {
	if m.itemsCreated != nil {
		m.itemsCreated.Add(ctx, 1)
	}
}

func (m *itemMetrics) engagementApplied(ctx context.Context, kind models.EngagementKind) {
	if m.engagementCounter != nil {
		m.engagementCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("kind", string(kind))))
	}
}
