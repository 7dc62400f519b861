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

// transactionService implements portssvc.TransactionSvcFacade over the ledger.
type transactionService struct {
	BaseService
	txManager portsrepo.TransactionManager
	repos     portsrepo.RepositoryProvider
	advancer  portssvc.InstallmentAdvancerSvc
}

// TransactionServiceOption is a functional option for configuring the transaction service
type TransactionServiceOption func(*transactionService)

// WithTransactionEvents sets the publisher of committed ledger events.
func WithTransactionEvents(publisher portssvc.LedgerEventPublisher) TransactionServiceOption {
	return func(s *transactionService) {
		s.Events = publisher
	}
}

// NewTransactionService creates a new ledger service. repos must be bound
// outside any transaction; writes open their own unit of work on txManager.
func NewTransactionService(txManager portsrepo.TransactionManager, repos portsrepo.RepositoryProvider, advancer portssvc.InstallmentAdvancerSvc, options ...TransactionServiceOption) portssvc.TransactionSvcFacade {
	svc := &transactionService{
		txManager: txManager,
		repos:     repos,
		advancer:  advancer,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

// ListTransactions implements portssvc.TransactionReaderSvc.
// With a limit, one extra row is fetched to tell whether a next page exists.
func (s *transactionService) ListTransactions(ctx context.Context, filter domain.TransactionFilter) (*portssvc.TransactionPage, error) {
	query := filter
	if filter.Limit > 0 {
		query.Limit = filter.Limit + 1
	}

	items, err := s.repos.TransactionRepo.ListTransactions(ctx, query)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions")
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	page := &portssvc.TransactionPage{Items: items}
	if filter.Limit > 0 && len(items) > filter.Limit {
		page.Items = items[:filter.Limit]
		last := page.Items[len(page.Items)-1]
		page.Next = &domain.LedgerCursor{Date: last.Date, ID: last.ID}
	}
	return page, nil
}

// GetTransactionByID implements portssvc.TransactionReaderSvc.
func (s *transactionService) GetTransactionByID(ctx context.Context, transactionID int64) (*domain.Transaction, error) {
	txn, err := s.repos.TransactionRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to get transaction", slog.Int64("transaction_id", transactionID))
		}
		return nil, err
	}
	return txn, nil
}

// CreateTransaction implements portssvc.TransactionWriterSvc.
func (s *transactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	txn, err := transactionFromRequest(req)
	if err != nil {
		return nil, err
	}

	var frequency *domain.Frequency
	if req.Frequency != nil && *req.Frequency != "" {
		f := domain.Frequency(*req.Frequency)
		if !f.IsValid() {
			return nil, fmt.Errorf("%w: unknown frequency %q", apperrors.ErrValidation, f)
		}
		frequency = &f
	}

	var (
		created *domain.Transaction
		events  []domain.LedgerEvent
	)
	err = s.txManager.WithinTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		if err := requireCategory(ctx, repos, txn.CategoryID); err != nil {
			return err
		}

		if frequency == nil {
			saved, err := repos.TransactionRepo.SaveTransaction(ctx, txn)
			if err != nil {
				return fmt.Errorf("failed to save transaction: %w", err)
			}
			created = saved
			return nil
		}

		saved, extra, err := s.createRecurringEntry(ctx, repos, txn, *frequency)
		if err != nil {
			return err
		}
		created = saved
		events = extra
		return nil
	})
	if err != nil {
		if !isClientError(err) {
			s.LogError(ctx, err, "Failed to create transaction")
		}
		return nil, err
	}

	s.LogInfo(ctx, "Transaction created",
		slog.Int64("transaction_id", created.ID),
		slog.String("status", string(created.Status)),
		slog.Bool("recurring", created.IsInstallment()))
	s.Publish(ctx, events...)
	return created, nil
}

// createRecurringEntry stores txn together with a new template of the given
// frequency. A pending entry becomes the template's current installment; a
// closed entry is history, so the template starts one period later with a
// fresh pending installment.
func (s *transactionService) createRecurringEntry(ctx context.Context, repos portsrepo.RepositoryProvider, txn domain.Transaction, frequency domain.Frequency) (*domain.Transaction, []domain.LedgerEvent, error) {
	template := domain.RecurringTemplate{
		CategoryID:  txn.CategoryID,
		Amount:      txn.Amount,
		Currency:    txn.Currency,
		Type:        txn.Type,
		Name:        txn.Name,
		Description: txn.Description,
		Frequency:   frequency,
		NextDueDate: txn.Date,
		IsActive:    true,
	}
	if txn.Status.IsClosed() {
		next, err := domain.Advance(txn.Date, frequency)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		template.NextDueDate = next
	}

	savedTemplate, err := repos.RecurringRepo.SaveRecurring(ctx, template)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to save recurring template: %w", err)
	}

	txn.RecurringID = &savedTemplate.ID
	saved, err := repos.TransactionRepo.SaveTransaction(ctx, txn)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to save transaction: %w", err)
	}

	if saved.Status == domain.StatusPending {
		return saved, []domain.LedgerEvent{entryEvent(domain.EventInstallmentCreated, *saved)}, nil
	}

	next, created, err := s.advancer.EnsureInstallment(ctx, repos, *savedTemplate, savedTemplate.NextDueDate)
	if err != nil {
		return nil, nil, err
	}
	var events []domain.LedgerEvent
	if created {
		events = append(events, entryEvent(domain.EventInstallmentCreated, *next))
	}
	return saved, events, nil
}

// UpdateTransaction implements portssvc.TransactionWriterSvc.
func (s *transactionService) UpdateTransaction(ctx context.Context, transactionID int64, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	patch, err := transactionPatchFromRequest(req)
	if err != nil {
		return nil, err
	}

	var (
		updated *domain.Transaction
		events  []domain.LedgerEvent
	)
	err = s.txManager.WithinTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		before, err := repos.TransactionRepo.LockTransaction(ctx, transactionID)
		if err != nil {
			return err
		}

		if patch.CategoryID != nil && *patch.CategoryID != before.CategoryID {
			if err := requireCategory(ctx, repos, *patch.CategoryID); err != nil {
				return err
			}
		}

		after := patch.Apply(*before)
		saved, err := repos.TransactionRepo.UpdateTransaction(ctx, after)
		if err != nil {
			return fmt.Errorf("failed to update transaction: %w", err)
		}
		updated = saved

		if before.Status == domain.StatusPending && saved.Status.IsClosed() {
			adv, err := s.advancer.CloseInstallmentAndMaybeAdvance(ctx, repos, *before, *saved)
			if err != nil {
				return err
			}
			events = advancementEvents(*saved, adv)
		}
		return nil
	})
	if err != nil {
		if !isClientError(err) {
			s.LogError(ctx, err, "Failed to update transaction", slog.Int64("transaction_id", transactionID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Transaction updated",
		slog.Int64("transaction_id", updated.ID),
		slog.String("status", string(updated.Status)))
	s.Publish(ctx, events...)
	return updated, nil
}

// DeleteTransaction implements portssvc.TransactionWriterSvc.
func (s *transactionService) DeleteTransaction(ctx context.Context, transactionID int64) error {
	if err := s.repos.TransactionRepo.DeleteTransaction(ctx, transactionID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete transaction", slog.Int64("transaction_id", transactionID))
		}
		return err
	}
	s.LogInfo(ctx, "Transaction deleted", slog.Int64("transaction_id", transactionID))
	return nil
}

func transactionFromRequest(req dto.CreateTransactionRequest) (domain.Transaction, error) {
	txn := domain.Transaction{
		CategoryID:  req.CategoryID,
		Amount:      req.Amount,
		Currency:    domain.Currency(req.Currency),
		Type:        domain.Direction(req.Type),
		Status:      domain.StatusDone,
		Date:        req.Date,
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
	}
	if req.Status != nil {
		txn.Status = domain.TransactionStatus(*req.Status)
	}

	switch {
	case txn.Name == "":
		return txn, fmt.Errorf("%w: name is required", apperrors.ErrValidation)
	case !txn.Amount.IsPositive():
		return txn, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	case !txn.Currency.IsValid():
		return txn, fmt.Errorf("%w: unsupported currency %q", apperrors.ErrValidation, txn.Currency)
	case !txn.Type.IsValid():
		return txn, fmt.Errorf("%w: type must be in or out", apperrors.ErrValidation)
	case !txn.Status.IsValid():
		return txn, fmt.Errorf("%w: unknown status %q", apperrors.ErrValidation, txn.Status)
	case txn.Date.IsZero():
		return txn, fmt.Errorf("%w: date is required", apperrors.ErrValidation)
	}
	return txn, nil
}

func transactionPatchFromRequest(req dto.UpdateTransactionRequest) (domain.TransactionPatch, error) {
	patch := domain.TransactionPatch{
		CategoryID:  req.CategoryID,
		Amount:      req.Amount,
		Date:        req.Date,
		Description: req.Description,
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
	if req.Date != nil && req.Date.IsZero() {
		return patch, fmt.Errorf("%w: date cannot be empty", apperrors.ErrValidation)
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
	if req.Status != nil {
		st := domain.TransactionStatus(*req.Status)
		if !st.IsValid() {
			return patch, fmt.Errorf("%w: unknown status %q", apperrors.ErrValidation, st)
		}
		patch.Status = &st
	}
	return patch, nil
}

// requireCategory fails with apperrors.ErrInvalidCategory when the category is absent.
func requireCategory(ctx context.Context, repos portsrepo.RepositoryProvider, categoryID int64) error {
	ok, err := repos.CategoryRepo.CategoryExists(ctx, categoryID)
	if err != nil {
		return fmt.Errorf("failed to check category %d: %w", categoryID, err)
	}
	if !ok {
		return fmt.Errorf("%w: %d", apperrors.ErrInvalidCategory, categoryID)
	}
	return nil
}

// isClientError reports whether err is a caller mistake rather than a fault.
func isClientError(err error) bool {
	for _, target := range []error{
		apperrors.ErrNotFound,
		apperrors.ErrValidation,
		apperrors.ErrDuplicate,
		apperrors.ErrInvalidCategory,
		apperrors.ErrInvalidParent,
		apperrors.ErrInactiveTemplate,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
