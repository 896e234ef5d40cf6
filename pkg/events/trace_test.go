package events

import (
	"context"
	"testing"

	"github.com/ThreeDotsLabs/watermill/message"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

func TestTraceRoundTrip(t *testing.T) {
	tp := sdktrace.NewTracerProvider()
	defer tp.Shutdown(context.Background()) //nolint:errcheck
	otel.SetTextMapPropagator(propagation.TraceContext{})

	ctx, span := tp.Tracer("test").Start(context.Background(), "create item")
	defer span.End()

	msg := message.NewMessage("id", nil)
	msg.Metadata.Set(MetadataEventID, "evt-1")
	injectTrace(ctx, msg)

	if msg.Metadata.Get("traceparent") == "" {
		t.Fatal("traceparent not written to metadata")
	}
	if msg.Metadata.Get(MetadataEventID) != "evt-1" {
		t.Error("existing metadata overwritten")
	}

	got := trace.SpanContextFromContext(extractTrace(context.Background(), msg))
	if !got.IsValid() {
		t.Fatal("extracted span context is not valid")
	}
	if got.TraceID() != span.SpanContext().TraceID() {
		t.Errorf("trace ID mismatch: want %s, got %s", span.SpanContext().TraceID(), got.TraceID())
	}
}

func TestExtractTrace_NoMetadata(t *testing.T) {
	otel.SetTextMapPropagator(propagation.TraceContext{})
	ctx := extractTrace(context.Background(), message.NewMessage("id", nil))
	if trace.SpanContextFromContext(ctx).IsValid() {
		t.Error("expected no span context")
	}
}
