package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Direction tells whether money came in or went out.
type Direction string

const (
	DirectionIn  Direction = "in"
	DirectionOut Direction = "out"
)

func (d Direction) IsValid() bool { return d == DirectionIn || d == DirectionOut }

// TransactionStatus is the lifecycle state of a ledger entry.
type TransactionStatus string

const (
	StatusPending   TransactionStatus = "pending"
	StatusDone      TransactionStatus = "done"
	StatusCancelled TransactionStatus = "cancelled"
)

func (s TransactionStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusDone, StatusCancelled:
		return true
	}
	return false
}

// IsClosed reports whether the status ends a pending installment.
func (s TransactionStatus) IsClosed() bool {
	return s == StatusDone || s == StatusCancelled
}

// Currency is one of the supported ISO codes.
type Currency string

const (
	CurrencyAFN Currency = "AFN"
	CurrencyUSD Currency = "USD"
	CurrencyTRY Currency = "TRY"
	CurrencyEUR Currency = "EUR"
)

// SupportedCurrencies lists the accepted currencies in display order.
var SupportedCurrencies = []Currency{CurrencyAFN, CurrencyUSD, CurrencyTRY, CurrencyEUR}

// CurrencyPrecision is the number of decimals amounts are rounded to on output.
const CurrencyPrecision = 2

func (c Currency) IsValid() bool {
	for _, s := range SupportedCurrencies {
		if c == s {
			return true
		}
	}
	return false
}

// Transaction is a single ledger entry. RecurringID is set for installments
// generated from a recurring template.
type Transaction struct {
	ID           int64
	CategoryID   int64
	CategoryName string
	RecurringID  *int64
	Amount       decimal.Decimal
	Currency     Currency
	Type         Direction
	Status       TransactionStatus
	Date         Date
	Name         string
	Description  *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsInstallment reports whether the entry was spawned by a template.
func (t Transaction) IsInstallment() bool { return t.RecurringID != nil }

// TransactionPatch carries the fields of a partial ledger update.
type TransactionPatch struct {
	CategoryID  *int64
	Amount      *decimal.Decimal
	Currency    *Currency
	Type        *Direction
	Status      *TransactionStatus
	Date        *Date
	Name        *string
	Description *string
}

// Apply merges the patch over t.
func (p TransactionPatch) Apply(t Transaction) Transaction {
	if p.CategoryID != nil {
		t.CategoryID = *p.CategoryID
	}
	if p.Amount != nil {
		t.Amount = *p.Amount
	}
	if p.Currency != nil {
		t.Currency = *p.Currency
	}
	if p.Type != nil {
		t.Type = *p.Type
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
	if p.Date != nil {
		t.Date = *p.Date
	}
	if p.Name != nil {
		t.Name = *p.Name
	}
	if p.Description != nil {
		t.Description = p.Description
	}
	return t
}

// StatusFilter selects ledger entries by status. The zero value means the
// default view, which is done entries only.
type StatusFilter struct {
	Status TransactionStatus
	All    bool
}

// StatusAll is the filter that lifts the status predicate.
var StatusAll = StatusFilter{All: true}

// OnlyStatus filters on a single status.
func OnlyStatus(s TransactionStatus) StatusFilter { return StatusFilter{Status: s} }

// Effective resolves the filter to the status to match; ok is false when
// every status matches.
func (f StatusFilter) Effective() (status TransactionStatus, ok bool) {
	if f.All {
		return "", false
	}
	if f.Status == "" {
		return StatusDone, true
	}
	return f.Status, true
}

// LedgerCursor is the keyset position after which the next page starts,
// under the default (date DESC, id DESC) ordering.
type LedgerCursor struct {
	Date Date
	ID   int64
}

// TransactionFilter narrows a ledger listing.
type TransactionFilter struct {
	CategoryID    *int64
	Type          *Direction
	Status        StatusFilter
	Currency      *Currency
	StartDate     *Date
	EndDate       *Date
	RecurringOnly bool
	// OldestFirst flips the ordering to (date ASC, id ASC).
	OldestFirst bool
	Limit       int
	After       *LedgerCursor
}
