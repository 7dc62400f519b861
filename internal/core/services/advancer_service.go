package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/HaroonAzizi/hadaf-accounting/internal/apperrors"
	"github.com/HaroonAzizi/hadaf-accounting/internal/core/domain"
	portsrepo "github.com/HaroonAzizi/hadaf-accounting/internal/core/ports/repositories"
	portssvc "github.com/HaroonAzizi/hadaf-accounting/internal/core/ports/services"
)

// installmentAdvancer moves a template forward when its current installment closes.
type installmentAdvancer struct {
	BaseService
}

// NewInstallmentAdvancer creates the advancer. It holds no repositories of
// its own; every call works on the provider of the caller's unit of work.
func NewInstallmentAdvancer() portssvc.InstallmentAdvancerSvc {
	return &installmentAdvancer{}
}

var _ portssvc.InstallmentAdvancerSvc = (*installmentAdvancer)(nil)

// CloseInstallmentAndMaybeAdvance implements portssvc.InstallmentAdvancerSvc.
func (a *installmentAdvancer) CloseInstallmentAndMaybeAdvance(ctx context.Context, repos portsrepo.RepositoryProvider, before, after domain.Transaction) (*domain.Advancement, error) {
	result := &domain.Advancement{}

	if before.Status != domain.StatusPending || !after.Status.IsClosed() {
		return result, nil
	}
	if after.RecurringID == nil {
		return result, nil
	}

	template, err := repos.RecurringRepo.LockRecurring(ctx, *after.RecurringID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return result, nil
		}
		return nil, fmt.Errorf("failed to load recurring template %d: %w", *after.RecurringID, err)
	}
	result.Template = template

	// Closing a stale installment leaves the template where it is.
	if !template.IsActive || !before.Date.Equal(template.NextDueDate) {
		a.LogDebug(ctx, "Installment closed without advancing template",
			slog.Int64("transaction_id", after.ID),
			slog.Int64("recurring_id", template.ID),
			slog.String("installment_date", before.Date.String()),
			slog.String("next_due_date", template.NextDueDate.String()),
			slog.Bool("is_active", template.IsActive))
		return result, nil
	}

	next, err := domain.Advance(template.NextDueDate, template.Frequency)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	if err := repos.RecurringRepo.AdvanceNextDueDate(ctx, template.ID, next); err != nil {
		return nil, fmt.Errorf("failed to advance recurring template %d: %w", template.ID, err)
	}
	template.NextDueDate = next

	installment, created, err := a.EnsureInstallment(ctx, repos, *template, next)
	if err != nil {
		return nil, err
	}

	a.LogInfo(ctx, "Recurring template advanced",
		slog.Int64("recurring_id", template.ID),
		slog.String("next_due_date", next.String()),
		slog.Int64("installment_id", installment.ID),
		slog.Bool("installment_created", created))

	result.Advanced = true
	result.NextInstallment = installment
	result.Created = created
	return result, nil
}

// EnsureInstallment implements portssvc.InstallmentAdvancerSvc.
func (a *installmentAdvancer) EnsureInstallment(ctx context.Context, repos portsrepo.RepositoryProvider, template domain.RecurringTemplate, date domain.Date) (*domain.Transaction, bool, error) {
	existing, err := repos.TransactionRepo.FindByTemplateAndDate(ctx, template.ID, date, domain.StatusPending)
	if err != nil {
		return nil, false, fmt.Errorf("failed to look up installment of template %d on %s: %w", template.ID, date, err)
	}
	if existing != nil {
		return existing, false, nil
	}

	created, err := repos.TransactionRepo.SaveTransaction(ctx, template.Installment(date))
	if err != nil {
		return nil, false, fmt.Errorf("failed to create installment of template %d on %s: %w", template.ID, date, err)
	}
	return created, true, nil
}

// advancementEvents lists what a closure produced, for publishing after commit.
func advancementEvents(closed domain.Transaction, adv *domain.Advancement) []domain.LedgerEvent {
	events := []domain.LedgerEvent{entryEvent(domain.EventTransactionClosed, closed)}
	if adv == nil || !adv.Advanced {
		return events
	}

	id := adv.Template.ID
	advanced := newEvent(domain.EventTemplateAdvanced)
	advanced.RecurringID = &id
	advanced.Date = adv.Template.NextDueDate
	if adv.NextInstallment != nil {
		advanced.TransactionID = adv.NextInstallment.ID
	}
	events = append(events, advanced)

	if adv.Created && adv.NextInstallment != nil {
		events = append(events, entryEvent(domain.EventInstallmentCreated, *adv.NextInstallment))
	}
	return events
}

func newEvent(kind domain.LedgerEventKind) domain.LedgerEvent {
	return domain.LedgerEvent{Kind: kind, OccurredAt: time.Now().UTC()}
}

func entryEvent(kind domain.LedgerEventKind, txn domain.Transaction) domain.LedgerEvent {
	ev := newEvent(kind)
	ev.TransactionID = txn.ID
	ev.RecurringID = txn.RecurringID
	ev.Status = txn.Status
	ev.Date = txn.Date
	return ev
}
