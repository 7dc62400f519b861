package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/HaroonAzizi/hadaf-accounting/internal/apperrors"
	"github.com/HaroonAzizi/hadaf-accounting/internal/core/domain"
	portsrepo "github.com/HaroonAzizi/hadaf-accounting/internal/core/ports/repositories"
	portssvc "github.com/HaroonAzizi/hadaf-accounting/internal/core/ports/services"
	"github.com/HaroonAzizi/hadaf-accounting/internal/dto"
)

// recurringService implements portssvc.RecurringSvcFacade.
type recurringService struct {
	BaseService
	txManager portsrepo.TransactionManager
	repos     portsrepo.RepositoryProvider
	advancer  portssvc.InstallmentAdvancerSvc
}

// RecurringServiceOption is a functional option for configuring the recurring service
type RecurringServiceOption func(*recurringService)

// WithRecurringEvents sets the publisher of committed ledger events.
func WithRecurringEvents(publisher portssvc.LedgerEventPublisher) RecurringServiceOption {
	return func(s *recurringService) {
		s.Events = publisher
	}
}

// NewRecurringService creates a new recurring template service.
func NewRecurringService(txManager portsrepo.TransactionManager, repos portsrepo.RepositoryProvider, advancer portssvc.InstallmentAdvancerSvc, options ...RecurringServiceOption) portssvc.RecurringSvcFacade {
	svc := &recurringService{
		txManager: txManager,
		repos:     repos,
		advancer:  advancer,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.RecurringSvcFacade = (*recurringService)(nil)

func (s *recurringService) ListRecurring(ctx context.Context) ([]domain.RecurringTemplate, error) {
	templates, err := s.repos.RecurringRepo.ListRecurring(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list recurring templates")
		return nil, fmt.Errorf("failed to list recurring templates: %w", err)
	}
	return templates, nil
}

func (s *recurringService) GetRecurringByID(ctx context.Context, recurringID int64) (*domain.RecurringTemplate, error) {
	template, err := s.repos.RecurringRepo.FindRecurringByID(ctx, recurringID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to get recurring template", slog.Int64("recurring_id", recurringID))
		}
		return nil, err
	}
	return template, nil
}

// CreateRecurring implements portssvc.RecurringWriterSvc.
func (s *recurringService) CreateRecurring(ctx context.Context, req dto.CreateRecurringRequest) (*domain.RecurringTemplate, *domain.Transaction, error) {
	template := domain.RecurringTemplate{
		CategoryID:  req.CategoryID,
		Amount:      req.Amount,
		Currency:    domain.Currency(req.Currency),
		Type:        domain.Direction(req.Type),
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Frequency:   domain.Frequency(req.Frequency),
		NextDueDate: req.NextDueDate,
		IsActive:    true,
	}
	if req.IsActive != nil {
		template.IsActive = *req.IsActive
	}
	if err := validateTemplate(template); err != nil {
		return nil, nil, err
	}
	withInstallment := template.IsActive && (req.CreateInstallment == nil || *req.CreateInstallment)

	var (
		saved       *domain.RecurringTemplate
		installment *domain.Transaction
	)
	err := s.txManager.WithinTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		if err := requireCategory(ctx, repos, template.CategoryID); err != nil {
			return err
		}

		created, err := repos.RecurringRepo.SaveRecurring(ctx, template)
		if err != nil {
			return fmt.Errorf("failed to save recurring template: %w", err)
		}
		saved = created

		if !withInstallment {
			return nil
		}
		installment, _, err = s.advancer.EnsureInstallment(ctx, repos, *created, created.NextDueDate)
		return err
	})
	if err != nil {
		if !isClientError(err) {
			s.LogError(ctx, err, "Failed to create recurring template")
		}
		return nil, nil, err
	}

	s.LogInfo(ctx, "Recurring template created",
		slog.Int64("recurring_id", saved.ID),
		slog.String("frequency", string(saved.Frequency)),
		slog.String("next_due_date", saved.NextDueDate.String()),
		slog.Bool("installment_created", installment != nil))
	if installment != nil {
		s.Publish(ctx, entryEvent(domain.EventInstallmentCreated, *installment))
	}
	return saved, installment, nil
}

// UpdateRecurring implements portssvc.RecurringWriterSvc. The due date only
// moves by closing installments, so a differing next_due_date is rejected.
func (s *recurringService) UpdateRecurring(ctx context.Context, recurringID int64, req dto.UpdateRecurringRequest) (*domain.RecurringTemplate, error) {
	patch, err := recurringPatchFromRequest(req)
	if err != nil {
		return nil, err
	}

	var updated *domain.RecurringTemplate
	err = s.txManager.WithinTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		existing, err := repos.RecurringRepo.LockRecurring(ctx, recurringID)
		if err != nil {
			return err
		}

		if req.NextDueDate != nil && !req.NextDueDate.Equal(existing.NextDueDate) {
			return fmt.Errorf("%w: next_due_date cannot be edited; close the current installment to advance it", apperrors.ErrValidation)
		}
		if patch.CategoryID != nil && *patch.CategoryID != existing.CategoryID {
			if err := requireCategory(ctx, repos, *patch.CategoryID); err != nil {
				return err
			}
		}

		saved, err := repos.RecurringRepo.UpdateRecurring(ctx, patch.Apply(*existing))
		if err != nil {
			return fmt.Errorf("failed to update recurring template: %w", err)
		}
		updated = saved
		return nil
	})
	if err != nil {
		if !isClientError(err) {
			s.LogError(ctx, err, "Failed to update recurring template", slog.Int64("recurring_id", recurringID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Recurring template updated", slog.Int64("recurring_id", recurringID))
	return updated, nil
}

func (s *recurringService) DeleteRecurring(ctx context.Context, recurringID int64) error {
	if err := s.repos.RecurringRepo.DeleteRecurring(ctx, recurringID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete recurring template", slog.Int64("recurring_id", recurringID))
		}
		return err
	}
	s.LogInfo(ctx, "Recurring template deleted", slog.Int64("recurring_id", recurringID))
	return nil
}

// ExecuteRecurring implements portssvc.RecurringWriterSvc.
func (s *recurringService) ExecuteRecurring(ctx context.Context, recurringID int64) (*domain.Execution, error) {
	var result *domain.Execution
	err := s.txManager.WithinTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		template, err := repos.RecurringRepo.LockRecurring(ctx, recurringID)
		if err != nil {
			return err
		}
		if !template.IsActive {
			return fmt.Errorf("%w: template %d", apperrors.ErrInactiveTemplate, recurringID)
		}

		installment, created, err := s.advancer.EnsureInstallment(ctx, repos, *template, template.NextDueDate)
		if err != nil {
			return err
		}
		result = &domain.Execution{Template: *template, Installment: *installment, Created: created}
		return nil
	})
	if err != nil {
		if !isClientError(err) {
			s.LogError(ctx, err, "Failed to execute recurring template", slog.Int64("recurring_id", recurringID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Recurring executed",
		slog.Int64("recurring_id", recurringID),
		slog.Int64("transaction_id", result.Installment.ID),
		slog.String("date", result.Installment.Date.String()),
		slog.Bool("created", result.Created))
	if result.Created {
		s.Publish(ctx, entryEvent(domain.EventInstallmentCreated, result.Installment))
	}
	return result, nil
}

func validateTemplate(t domain.RecurringTemplate) error {
	switch {
	case t.Name == "":
		return fmt.Errorf("%w: name is required", apperrors.ErrValidation)
	case !t.Amount.IsPositive():
		return fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	case !t.Currency.IsValid():
		return fmt.Errorf("%w: unsupported currency %q", apperrors.ErrValidation, t.Currency)
	case !t.Type.IsValid():
		return fmt.Errorf("%w: type must be in or out", apperrors.ErrValidation)
	case !t.Frequency.IsValid():
		return fmt.Errorf("%w: unknown frequency %q", apperrors.ErrValidation, t.Frequency)
	case t.NextDueDate.IsZero():
		return fmt.Errorf("%w: next_due_date is required", apperrors.ErrValidation)
	}
	return nil
}

func recurringPatchFromRequest(req dto.UpdateRecurringRequest) (domain.RecurringPatch, error) {
	patch := domain.RecurringPatch{
		CategoryID:  req.CategoryID,
		Amount:      req.Amount,
		Description: req.Description,
		IsActive:    req.IsActive,
	}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return patch, fmt.Errorf("%w: name cannot be blank", apperrors.ErrValidation)
		}
		patch.Name = &name
	}
	if req.Amount != nil && !req.Amount.IsPositive() {
		return patch, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}
	if req.Currency != nil {
		c := domain.Currency(*req.Currency)
		if !c.IsValid() {
			return patch, fmt.Errorf("%w: unsupported currency %q", apperrors.ErrValidation, c)
		}
		patch.Currency = &c
	}
	if req.Type != nil {
		d := domain.Direction(*req.Type)
		if !d.IsValid() {
			return patch, fmt.Errorf("%w: type must be in or out", apperrors.ErrValidation)
		}
		patch.Type = &d
	}
	if req.Frequency != nil {
		f := domain.Frequency(*req.Frequency)
		if !f.IsValid() {
			return patch, fmt.Errorf("%w: unknown frequency %q", apperrors.ErrValidation, f)
		}
		patch.Frequency = &f
	}
	return patch, nil
}
