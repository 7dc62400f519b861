package dto

import (
	"time"

	"github.com/HaroonAzizi/hadaf-accounting/internal/core/domain"
	"github.com/HaroonAzizi/hadaf-accounting/internal/utils"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the data needed to record a ledger entry.
// A non-empty Frequency also turns the entry into a recurring template.
type CreateTransactionRequest struct {
	CategoryID  int64           `json:"category_id" binding:"required,min=1"`
	Amount      decimal.Decimal `json:"amount" binding:"required,gt=0"`
	Currency    string          `json:"currency" binding:"required,oneof=AFN USD TRY EUR"`
	Type        string          `json:"type" binding:"required,oneof=in out"`
	Status      *string         `json:"status" binding:"omitempty,oneof=pending done cancelled"`
	Date        domain.Date     `json:"date" binding:"required"`
	Name        string          `json:"name" binding:"required,notblank"`
	Description *string         `json:"description"`
	Frequency   *string         `json:"frequency" binding:"omitempty,oneof=daily weekly monthly yearly"`
}

// UpdateTransactionRequest defines a partial update of a ledger entry.
// Moving status from pending to done or cancelled closes an installment.
type UpdateTransactionRequest struct {
	CategoryID  *int64           `json:"category_id" binding:"omitempty,min=1"`
	Amount      *decimal.Decimal `json:"amount" binding:"omitempty,gt=0"`
	Currency    *string          `json:"currency" binding:"omitempty,oneof=AFN USD TRY EUR"`
	Type        *string          `json:"type" binding:"omitempty,oneof=in out"`
	Status      *string          `json:"status" binding:"omitempty,oneof=pending done cancelled"`
	Date        *domain.Date     `json:"date"`
	Name        *string          `json:"name" binding:"omitempty,notblank"`
	Description *string          `json:"description"`
}

// ListTransactionsParams defines the query parameters of the ledger listing.
// Status "all" lifts the default done-only filter.
type ListTransactionsParams struct {
	CategoryID *int64  `form:"categoryId" binding:"omitempty,min=1"`
	Type       *string `form:"type" binding:"omitempty,oneof=in out"`
	Status     *string `form:"status" binding:"omitempty,oneof=pending done cancelled all"`
	Currency   *string `form:"currency" binding:"omitempty,oneof=AFN USD TRY EUR"`
	StartDate  *string `form:"startDate" binding:"omitempty,isodate"`
	EndDate    *string `form:"endDate" binding:"omitempty,isodate"`
	Limit      int     `form:"limit" binding:"omitempty,min=1,max=500"`
	NextToken  *string `form:"nextToken"`
}

// TransactionResponse defines the data returned for a ledger entry.
type TransactionResponse struct {
	ID           int64           `json:"id"`
	CategoryID   int64           `json:"category_id"`
	RecurringID  *int64          `json:"recurring_id"`
	CategoryName string          `json:"category_name"`
	Amount       decimal.Decimal `json:"amount"`
	Currency     string          `json:"currency"`
	Type         string          `json:"type"`
	Status       string          `json:"status"`
	Date         domain.Date     `json:"date"`
	Name         string          `json:"name"`
	Description  *string         `json:"description"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// TransactionCSVHeader is the header line of the CSV export.
var TransactionCSVHeader = []string{"id", "date", "type", "currency", "amount", "name", "description", "category_id", "category_name"}

// TransactionCSVRow is one line of the CSV export.
type TransactionCSVRow struct {
	ID           int64       `csv:"id"`
	Date         domain.Date `csv:"date"`
	Type         string      `csv:"type"`
	Currency     string      `csv:"currency"`
	Amount       string      `csv:"amount"`
	Name         string      `csv:"name"`
	Description  string      `csv:"description"`
	CategoryID   int64       `csv:"category_id"`
	CategoryName string      `csv:"category_name"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO.
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:           t.ID,
		CategoryID:   t.CategoryID,
		RecurringID:  t.RecurringID,
		CategoryName: t.CategoryName,
		Amount:       t.Amount,
		Currency:     string(t.Currency),
		Type:         string(t.Type),
		Status:       string(t.Status),
		Date:         t.Date,
		Name:         t.Name,
		Description:  t.Description,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
}

// ToTransactionResponses converts a slice of domain.Transaction to []TransactionResponse.
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(txns))
	for i := range txns {
		responses[i] = ToTransactionResponse(&txns[i])
	}
	return responses
}

// ToTransactionCSVRows flattens entries for the CSV export.
func ToTransactionCSVRows(txns []domain.Transaction) []TransactionCSVRow {
	rows := make([]TransactionCSVRow, len(txns))
	for i, t := range txns {
		desc := ""
		if t.Description != nil {
			desc = *t.Description
		}
		rows[i] = TransactionCSVRow{
			ID:           t.ID,
			Date:         t.Date,
			Type:         string(t.Type),
			Currency:     string(t.Currency),
			Amount:       utils.FormatAmount(t.Amount),
			Name:         t.Name,
			Description:  desc,
			CategoryID:   t.CategoryID,
			CategoryName: t.CategoryName,
		}
	}
	return rows
}
