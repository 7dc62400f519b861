package services

import (
	"context"
	"fmt"

	portsrepo "github.com/HaroonAzizi/hadaf-accounting/internal/core/ports/repositories"
	portssvc "github.com/HaroonAzizi/hadaf-accounting/internal/core/ports/services"
)

type healthService struct {
	BaseService
	db portsrepo.Pinger
}

// NewHealthService creates a readiness check backed by a database ping.
func NewHealthService(db portsrepo.Pinger) portssvc.HealthSvc {
	return &healthService{db: db}
}

func (s *healthService) Check(ctx context.Context) error {
	if err := s.db.Ping(ctx); err != nil {
		s.LogError(ctx, err, "Database ping failed")
		return fmt.Errorf("database unavailable: %w", err)
	}
	return nil
}
