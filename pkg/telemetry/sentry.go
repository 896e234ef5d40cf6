package telemetry

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/getsentry/sentry-go"
	sentryhttp "github.com/getsentry/sentry-go/http"

	"github.com/ghuser/itemcatalog/pkg/config"
)

const sentryFlushTimeout = 2 * time.Second

// SetupSentry initializes the Sentry SDK. No-ops if DSN is empty.
// Cancellations are not reported; they come from clients going away or from
// shutdown, not from faults.
func SetupSentry(cfg *config.Config) error {
	if cfg.SentryDSN == "" {
		return nil
	}
	err := sentry.Init(sentry.ClientOptions{
		Dsn:              cfg.SentryDSN,
		Environment:      cfg.Environment,
		Release:          cfg.ServiceName + "@" + cfg.ServiceVersion,
		ServerName:       cfg.ServiceName,
		AttachStacktrace: true,
		TracesSampleRate: cfg.TraceSampling,
		BeforeSend:       dropCancellations,
	})
	if err != nil {
		return fmt.Errorf("sentry init: %w", err)
	}
	return nil
}

func dropCancellations(event *sentry.Event, hint *sentry.EventHint) *sentry.Event {
	if hint != nil && hint.OriginalException != nil && errors.Is(hint.OriginalException, context.Canceled) {
		return nil
	}
	return event
}

// SentryFlush waits briefly for buffered events. Defer it in main.
func SentryFlush() {
	sentry.Flush(sentryFlushTimeout)
}

// SentryMiddleware binds a hub to every request. Panics are re-raised so the
// outer recovery middleware still writes the 500.
func SentryMiddleware() func(http.Handler) http.Handler {
	return sentryhttp.New(sentryhttp.Options{Repanic: true}).Handle
}

// ReportError captures err on the hub bound to ctx, or on the global hub
// outside a request. It does nothing when Sentry is not initialized.
func ReportError(ctx context.Context, err error) {
	hub := sentry.GetHubFromContext(ctx)
	if hub == nil {
		hub = sentry.CurrentHub()
	}
	hub.CaptureException(err)
}
