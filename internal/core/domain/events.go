package domain

import "time"

// LedgerEventKind names what happened to the ledger.
type LedgerEventKind string

const (
	EventTransactionClosed  LedgerEventKind = "transaction.closed"
	EventInstallmentCreated LedgerEventKind = "installment.created"
	EventTemplateAdvanced   LedgerEventKind = "template.advanced"
)

// LedgerEvent is emitted after a state change commits.
type LedgerEvent struct {
	Kind          LedgerEventKind
	TransactionID int64
	RecurringID   *int64
	Status        TransactionStatus
	Date          Date
	OccurredAt    time.Time
}
