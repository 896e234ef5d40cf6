package events

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/ghuser/itemcatalog/pkg/logger"
)

// errBuffer is the capacity of the channel returned by Subscribe.
const errBuffer = 100

// Handler processes one message. The context carries the publisher's trace.
type Handler func(ctx context.Context, msg *message.Message) error

type retryPolicy struct {
	attempts  int
	baseDelay time.Duration
}

var defaultRetry = retryPolicy{attempts: 3, baseDelay: time.Second}

// Subscribe consumes topic in the background until ctx is done or the bus is
// closed. Outcome per message:
//
//	nil             Ack
//	Permanent(err)  Ack, logged at warn
//	other error     retried with backoff (1s, 2s); then Nack and err sent on the channel
//
// The returned channel must be drained by the caller. Close waits for
// in-flight handlers.
func (b *EventBus) Subscribe(ctx context.Context, topic string, handler Handler) (<-chan error, error) {
	msgs, err := b.subscriber.Subscribe(ctx, topic)
	if err != nil {
		return nil, fmt.Errorf("events: subscribe to %s: %w", topic, err)
	}

	errCh := make(chan error, errBuffer)
	b.wg.Add(1)
	go func() {
		defer b.wg.Done()
		defer close(errCh)
		for msg := range msgs {
			b.deliver(ctx, topic, msg, handler, errCh)
		}
	}()
	return errCh, nil
}

func (b *EventBus) deliver(ctx context.Context, topic string, msg *message.Message, handler Handler, errCh chan<- error) {
	ctx = extractTrace(ctx, msg)
	err := b.retry.run(ctx, msg, handler, b.log)
	if err == nil {
		msg.Ack()
		return
	}
	if errors.Is(err, ErrPermanent) {
		b.log.WarnContext(ctx, "events: dropping message",
			"topic", topic, "message_uuid", msg.UUID, "event_id", msg.Metadata.Get(MetadataEventID), "error", err)
		msg.Ack()
		return
	}

	msg.Nack()
	select {
	case errCh <- err:
	default:
		b.log.ErrorContext(ctx, "events: error channel full", "topic", topic, "error", err)
	}
}

// run calls handler until it succeeds, fails permanently, ctx ends or the
// attempts are used up. The delay doubles after each failure.
func (p retryPolicy) run(ctx context.Context, msg *message.Message, handler Handler, log logger.Logger) error {
	delay := p.baseDelay
	for attempt := 1; ; attempt++ {
		err := handler(ctx, msg)
		if err == nil || errors.Is(err, ErrPermanent) {
			return err
		}
		if attempt >= p.attempts {
			return fmt.Errorf("events: handler failed after %d attempts: %w", p.attempts, err)
		}

		log.WarnContext(ctx, "events: handler failed, retrying",
			"attempt", attempt, "max_attempts", p.attempts, "next_delay", delay, "error", err)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
		delay *= 2
	}
}
