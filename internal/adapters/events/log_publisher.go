// Package events holds ledger event publishers that need no broker.
package events

import (
	"context"
	"log/slog"

	"github.com/HaroonAzizi/hadaf-accounting/internal/core/domain"
	"github.com/HaroonAzizi/hadaf-accounting/internal/middleware"
)

// LogPublisher writes events to the request logger at debug level. It is
// used when no AMQP broker is configured.
type LogPublisher struct{}

func (LogPublisher) Publish(ctx context.Context, events ...domain.LedgerEvent) error {
	logger := middleware.GetLoggerFromCtx(ctx)
	for _, e := range events {
		logger.DebugContext(ctx, "Ledger event",
			slog.String("kind", string(e.Kind)),
			slog.Int64("transaction_id", e.TransactionID))
	}
	return nil
}
