// Package events provides the PostgreSQL-backed pub/sub EventBus that carries
// item.created and item.engagement messages between the API and the worker.
//
// All instances sharing a service name form one consumer group, so each message
// is processed by a single instance. Handlers should be idempotent: on failure a
// message is retried with exponential backoff and then Nacked. Handlers that
// return an error wrapped with Permanent are not retried; the message is Acked
// and the error is logged.
//
// OTel trace context travels in message metadata, so a trace started by an HTTP
// request continues in the worker that consumes the resulting event.
package events

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	watermillsql "github.com/ThreeDotsLabs/watermill-sql/v3/pkg/sql"
	"github.com/ThreeDotsLabs/watermill/components/forwarder"
	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/ghuser/itemcatalog/pkg/config"
	"github.com/ghuser/itemcatalog/pkg/logger"
)

const (
	shutdownTimeout     = 30 * time.Second
	outboxTopic         = "_item_outbox"
	outboxConsumerGroup = "item-outbox-relay"
)

// EventBus publishes and consumes messages through Watermill's SQL transport,
// which claims rows with FOR UPDATE SKIP LOCKED.
//
// In outbox mode every publish lands in an internal topic first and a relay
// (see StartForwarder) moves it to the real topic. Messages published inside a
// business transaction with PublishTx therefore exist only if that
// transaction commits.
type EventBus struct {
	db         *sql.DB
	log        logger.Logger
	wlog       *slogAdapter
	group      string
	publisher  message.Publisher
	subscriber *watermillsql.Subscriber
	outbox     bool
	fwd        *forwarder.Forwarder
	retry      retryPolicy
	wg         sync.WaitGroup
}

// NewEventBus runs the bus over db, normally database.Database.DB(), and
// publishes directly to target topics. Used by the worker, which only
// consumes. The bus never closes db.
func NewEventBus(db *sql.DB, cfg *config.Config, log logger.Logger) (*EventBus, error) {
	return open(db, cfg, log, false)
}

// NewEventBusWithForwarder is NewEventBus in outbox mode. Call StartForwarder
// once before relying on delivery.
func NewEventBusWithForwarder(db *sql.DB, cfg *config.Config, log logger.Logger) (*EventBus, error) {
	return open(db, cfg, log, true)
}

func open(db *sql.DB, cfg *config.Config, log logger.Logger, outbox bool) (*EventBus, error) {
	if db == nil {
		return nil, errors.New("events: nil database handle")
	}

	b := &EventBus{
		db:     db,
		log:    log,
		wlog:   &slogAdapter{log: log},
		group:  cfg.ServiceName + "-consumer",
		outbox: outbox,
		retry:  defaultRetry,
	}

	pub, err := b.sqlPublisher(db, true)
	if err != nil {
		return nil, err
	}
	b.publisher = b.wrapOutbox(pub)

	if b.subscriber, err = b.sqlSubscriber(b.group); err != nil {
		_ = pub.Close()
		return nil, err
	}
	return b, nil
}

func (b *EventBus) sqlPublisher(db watermillsql.ContextExecutor, initSchema bool) (*watermillsql.Publisher, error) {
	pub, err := watermillsql.NewPublisher(db, watermillsql.PublisherConfig{
		SchemaAdapter:        watermillsql.DefaultPostgreSQLSchema{},
		AutoInitializeSchema: initSchema,
	}, b.wlog)
	if err != nil {
		return nil, fmt.Errorf("events: new publisher: %w", err)
	}
	return pub, nil
}

func (b *EventBus) sqlSubscriber(group string) (*watermillsql.Subscriber, error) {
	sub, err := watermillsql.NewSubscriber(b.db, watermillsql.SubscriberConfig{
		SchemaAdapter:    watermillsql.DefaultPostgreSQLSchema{},
		OffsetsAdapter:   watermillsql.DefaultPostgreSQLOffsetsAdapter{},
		InitializeSchema: true,
		ConsumerGroup:    group,
	}, b.wlog)
	if err != nil {
		return nil, fmt.Errorf("events: new subscriber (%s): %w", group, err)
	}
	return sub, nil
}

func (b *EventBus) wrapOutbox(pub message.Publisher) message.Publisher {
	if !b.outbox {
		return pub
	}
	return forwarder.NewPublisher(pub, forwarder.PublisherConfig{ForwarderTopic: outboxTopic})
}

// StartForwarder runs the outbox relay in the background and returns once it
// is accepting messages. It may be called once, and only in outbox mode.
func (b *EventBus) StartForwarder(ctx context.Context) error {
	switch {
	case !b.outbox:
		return errors.New("events: StartForwarder requires an outbox-mode EventBus")
	case b.fwd != nil:
		return errors.New("events: forwarder already started")
	}

	src, err := b.sqlSubscriber(outboxConsumerGroup)
	if err != nil {
		return err
	}
	dst, err := b.sqlPublisher(b.db, true)
	if err != nil {
		_ = src.Close()
		return err
	}
	fwd, err := forwarder.NewForwarder(src, dst, b.wlog, forwarder.Config{ForwarderTopic: outboxTopic})
	if err != nil {
		_ = dst.Close()
		_ = src.Close()
		return fmt.Errorf("events: new forwarder: %w", err)
	}
	b.fwd = fwd

	b.wg.Add(1)
	go func() {
		defer b.wg.Done()
		b.log.InfoContext(ctx, "events: outbox relay started")
		if err := fwd.Run(ctx); err != nil {
			b.log.ErrorContext(ctx, "events: outbox relay stopped", "error", err)
			return
		}
		b.log.InfoContext(ctx, "events: outbox relay stopped")
	}()

	select {
	case <-fwd.Running():
		return nil
	case <-ctx.Done():
		return fmt.Errorf("events: waiting for outbox relay: %w", ctx.Err())
	}
}

// Publish sends msgs to topic, stamping each with the trace context of ctx.
func (b *EventBus) Publish(ctx context.Context, topic string, msgs ...*message.Message) error {
	return publish(ctx, b.publisher, topic, msgs)
}

// PublishTx publishes msgs as part of tx. Nothing is delivered unless tx
// commits.
func (b *EventBus) PublishTx(ctx context.Context, tx *sql.Tx, topic string, msgs ...*message.Message) error {
	pub, err := b.sqlPublisher(tx, false)
	if err != nil {
		return err
	}
	return publish(ctx, b.wrapOutbox(pub), topic, msgs)
}

func publish(ctx context.Context, pub message.Publisher, topic string, msgs []*message.Message) error {
	for _, msg := range msgs {
		injectTrace(ctx, msg)
	}
	if err := pub.Publish(topic, msgs...); err != nil { //nolint:contextcheck
		return fmt.Errorf("events: publish to %s: %w", topic, err)
	}
	return nil
}

// Ping checks the bus database connection.
func (b *EventBus) Ping(ctx context.Context) error {
	if err := b.db.PingContext(ctx); err != nil {
		return fmt.Errorf("events: ping db: %w", err)
	}
	return nil
}

// Close stops consuming, stops the relay, waits up to 30s for in-flight
// handlers and then releases the publisher. The shared database handle is
// left to its owner.
func (b *EventBus) Close() error {
	if err := b.subscriber.Close(); err != nil {
		return fmt.Errorf("events: close subscriber: %w", err)
	}
	if b.fwd != nil {
		if err := b.fwd.Close(); err != nil {
			return fmt.Errorf("events: close forwarder: %w", err)
		}
	}

	done := make(chan struct{})
	go func() {
		b.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(shutdownTimeout):
		b.log.Error("events: in-flight handlers still running after shutdown timeout")
	}

	if err := b.publisher.Close(); err != nil {
		return fmt.Errorf("events: close publisher: %w", err)
	}
	return nil
}
