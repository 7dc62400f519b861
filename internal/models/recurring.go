package models

import (
	"time"

	"github.com/HaroonAzizi/hadaf-accounting/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RecurringTemplate is a row of the recurring_transactions table joined with its category name.
type RecurringTemplate struct {
	ID           int64           `json:"id"`
	CategoryID   int64           `json:"categoryID"` // FK -> categories.id, cascades on delete
	CategoryName string          `json:"categoryName"`
	Amount       decimal.Decimal `json:"amount"`
	Currency     string          `json:"currency"`
	Type         string          `json:"type"`
	Name         string          `json:"name"`
	Description  *string         `json:"description"`
	Frequency    string          `json:"frequency"` // daily | weekly | monthly | yearly
	NextDueDate  domain.Date     `json:"nextDueDate"`
	IsActive     bool            `json:"isActive"`
	CreatedAt    time.Time       `json:"createdAt"`
}
