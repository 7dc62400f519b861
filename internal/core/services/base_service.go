package services

import (
	"context"
	"log/slog"

	"github.com/HaroonAzizi/hadaf-accounting/internal/core/domain"
	portssvc "github.com/HaroonAzizi/hadaf-accounting/internal/core/ports/services"
	"github.com/HaroonAzizi/hadaf-accounting/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct {
	Events portssvc.LedgerEventPublisher
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogWarn logs a warning with consistent formatting
func (s *BaseService) LogWarn(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Warn(msg, keyvals...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// Publish hands committed events to the publisher. Failures are logged and
// never returned: the ledger change is already durable.
func (s *BaseService) Publish(ctx context.Context, events ...domain.LedgerEvent) {
	if s.Events == nil || len(events) == 0 {
		return
	}
	if err := s.Events.Publish(ctx, events...); err != nil {
		s.LogError(ctx, err, "Failed to publish ledger events", slog.Int("count", len(events)))
	}
}
