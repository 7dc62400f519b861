package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Frequency is the repeat period of a recurring template.
type Frequency string

const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
	FrequencyYearly  Frequency = "yearly"
)

func (f Frequency) IsValid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly, FrequencyYearly:
		return true
	}
	return false
}

// Advance returns the occurrence after d for frequency f.
// Monthly and yearly steps clamp to the last day of the target month, so
// 2026-01-31 monthly is 2026-02-28 and 2024-02-29 yearly is 2025-02-28.
func Advance(d Date, f Frequency) (Date, error) {
	if d.IsZero() {
		return Date{}, fmt.Errorf("advance: empty date")
	}
	switch f {
	case FrequencyDaily:
		return d.AddDays(1), nil
	case FrequencyWeekly:
		return d.AddDays(7), nil
	case FrequencyMonthly:
		return d.AddMonthsClamped(1), nil
	case FrequencyYearly:
		return d.AddMonthsClamped(12), nil
	default:
		return Date{}, fmt.Errorf("advance: unknown frequency %q", f)
	}
}

// RecurringTemplate defines a repeating payment. Installments are ledger
// entries that point back at it through Transaction.RecurringID.
type RecurringTemplate struct {
	ID           int64
	CategoryID   int64
	CategoryName string
	Amount       decimal.Decimal
	Currency     Currency
	Type         Direction
	Name         string
	Description  *string
	Frequency    Frequency
	NextDueDate  Date
	IsActive     bool
	CreatedAt    time.Time
}

// IsDue reports whether the template should be surfaced as due on asOf.
func (r RecurringTemplate) IsDue(asOf Date) bool {
	return r.IsActive && !r.NextDueDate.After(asOf)
}

// Installment builds the pending ledger entry for the given due date.
func (r RecurringTemplate) Installment(date Date) Transaction {
	id := r.ID
	return Transaction{
		CategoryID:  r.CategoryID,
		RecurringID: &id,
		Amount:      r.Amount,
		Currency:    r.Currency,
		Type:        r.Type,
		Status:      StatusPending,
		Date:        date,
		Name:        r.Name,
		Description: r.Description,
	}
}

// RecurringPatch carries the fields of a partial template update. Nil means
// "leave unchanged". NextDueDate is not patchable; it only moves
// through the advancer.
type RecurringPatch struct {
	CategoryID  *int64
	Amount      *decimal.Decimal
	Currency    *Currency
	Type        *Direction
	Name        *string
	Description *string
	Frequency   *Frequency
	IsActive    *bool
}

// Apply merges the patch over r.
func (p RecurringPatch) Apply(r RecurringTemplate) RecurringTemplate {
	if p.CategoryID != nil {
		r.CategoryID = *p.CategoryID
	}
	if p.Amount != nil {
		r.Amount = *p.Amount
	}
	if p.Currency != nil {
		r.Currency = *p.Currency
	}
	if p.Type != nil {
		r.Type = *p.Type
	}
	if p.Name != nil {
		r.Name = *p.Name
	}
	if p.Description != nil {
		r.Description = p.Description
	}
	if p.Frequency != nil {
		r.Frequency = *p.Frequency
	}
	if p.IsActive != nil {
		r.IsActive = *p.IsActive
	}
	return r
}

// Execution is the outcome of executing a template: the pending installment
// for its current due date and whether it had to be created.
type Execution struct {
	Template    RecurringTemplate
	Installment Transaction
	Created     bool
}

// Advancement is the outcome of closing an installment. Advanced is false
// when the closure did not move the template.
type Advancement struct {
	Advanced        bool
	Template        *RecurringTemplate
	NextInstallment *Transaction
	Created         bool
}
