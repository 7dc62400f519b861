package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/shopspring/decimal"

	"github.com/HaroonAzizi/hadaf-accounting/internal/adapters/database/pgsql"
	"github.com/HaroonAzizi/hadaf-accounting/internal/adapters/database/sqlite"
	"github.com/HaroonAzizi/hadaf-accounting/internal/adapters/events"
	"github.com/HaroonAzizi/hadaf-accounting/internal/adapters/events/amqp"
	portsrepo "github.com/HaroonAzizi/hadaf-accounting/internal/core/ports/repositories"
	portssvc "github.com/HaroonAzizi/hadaf-accounting/internal/core/ports/services"
	"github.com/HaroonAzizi/hadaf-accounting/internal/core/services"
	"github.com/HaroonAzizi/hadaf-accounting/internal/platform/config"
	"github.com/HaroonAzizi/hadaf-accounting/internal/platform/seed"
)

// app bundles what every command needs.
type app struct {
	cfg      *config.Config
	logger   *slog.Logger
	store    portsrepo.Store
	services *portssvc.ServiceContainer
	closers  []func() error
}

// logWriter receives the JSON logs. Commands that print results on stdout
// point it at stderr.
var logWriter io.Writer = os.Stdout

// migrationPolicy tells bootstrap whether to run migrations.
type migrationPolicy int

const (
	migrateIfConfigured migrationPolicy = iota // follow AUTO_MIGRATE
	migrateAlways
	migrateNever
)

// bootstrap loads configuration, sets up logging and opens the store.
func bootstrap(ctx context.Context, policy migrationPolicy) (*app, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger := slog.New(slog.NewJSONHandler(logWriter, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	// Amounts go out as JSON numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true

	store, err := openStore(ctx, cfg)
	if err != nil {
		return nil, err
	}
	a := &app{cfg: cfg, logger: logger, store: store, closers: []func() error{store.Close}}

	if cfg.EnableDBCheck {
		if err := store.Ping(ctx); err != nil {
			a.close()
			return nil, fmt.Errorf("database check: %w", err)
		}
	}

	if policy == migrateAlways || (policy == migrateIfConfigured && cfg.AutoMigrate) {
		logger.Info("Running database migrations", slog.String("driver", cfg.DBDriver))
		if err := store.Migrate(ctx); err != nil {
			a.close()
			return nil, fmt.Errorf("migrate: %w", err)
		}
		logger.Info("Database migrations applied")
	}

	fixtures, err := seed.Load()
	if err != nil {
		a.close()
		return nil, fmt.Errorf("load seed fixtures: %w", err)
	}

	a.services = services.NewServiceContainer(store, fixtures, a.publisher())
	return a, nil
}

func openStore(ctx context.Context, cfg *config.Config) (portsrepo.Store, error) {
	switch cfg.DBDriver {
	case config.DriverPostgres:
		return pgsql.Open(ctx, cfg.DatabaseURL)
	default:
		return sqlite.Open(ctx, cfg.DatabasePath)
	}
}

// publisher connects to AMQP when configured. A broker that cannot be
// reached downgrades to the log publisher.
func (a *app) publisher() portssvc.LedgerEventPublisher {
	if a.cfg.AMQPURL == "" {
		a.logger.Info("AMQP disabled, ledger events are only logged")
		return events.LogPublisher{}
	}

	p, err := amqp.NewPublisher(a.cfg.AMQPURL, a.cfg.AMQPExchange, a.cfg.AMQPQueue)
	if err != nil {
		a.logger.Warn("Failed to initialize AMQP publisher, ledger events are only logged", slog.String("error", err.Error()))
		return events.LogPublisher{}
	}
	a.closers = append(a.closers, p.Close)
	a.logger.Info("AMQP publisher initialized",
		slog.String("exchange", a.cfg.AMQPExchange),
		slog.String("queue", a.cfg.AMQPQueue))
	return p
}

// close releases resources in reverse order of acquisition.
func (a *app) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			a.logger.Error("Error during shutdown", slog.String("error", err.Error()))
		}
	}
}
