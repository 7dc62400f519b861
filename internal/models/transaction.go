package models

import (
	"time"

	"github.com/HaroonAzizi/hadaf-accounting/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Transaction is a row of the transactions table joined with its category name.
type Transaction struct {
	ID           int64           `json:"id"`
	CategoryID   int64           `json:"categoryID"`   // FK -> categories.id, cascades on delete
	CategoryName string          `json:"categoryName"` // from the join, not stored
	RecurringID  *int64          `json:"recurringID"`  // FK -> recurring_transactions.id, set null on delete
	Amount       decimal.Decimal `json:"amount"`
	Currency     string          `json:"currency"`
	Type         string          `json:"type"`   // in | out
	Status       string          `json:"status"` // pending | done | cancelled
	Date         domain.Date     `json:"date"`
	Name         string          `json:"name"`
	Description  *string         `json:"description"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}
