package dto

import (
	"time"

	"github.com/HaroonAzizi/hadaf-accounting/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateRecurringRequest defines the data needed to create a recurring template.
// CreateInstallment defaults to true; no installment is created for an
// inactive template.
type CreateRecurringRequest struct {
	CategoryID        int64           `json:"category_id" binding:"required,min=1"`
	Amount            decimal.Decimal `json:"amount" binding:"required,gt=0"`
	Currency          string          `json:"currency" binding:"required,oneof=AFN USD TRY EUR"`
	Type              string          `json:"type" binding:"required,oneof=in out"`
	Name              string          `json:"name" binding:"required,notblank"`
	Description       *string         `json:"description"`
	Frequency         string          `json:"frequency" binding:"required,oneof=daily weekly monthly yearly"`
	NextDueDate       domain.Date     `json:"next_due_date" binding:"required"`
	IsActive          *bool           `json:"is_active"`
	CreateInstallment *bool           `json:"create_installment"`
}

// UpdateRecurringRequest defines a partial update of a template.
// NextDueDate is accepted only when it equals the current due date.
type UpdateRecurringRequest struct {
	CategoryID  *int64           `json:"category_id" binding:"omitempty,min=1"`
	Amount      *decimal.Decimal `json:"amount" binding:"omitempty,gt=0"`
	Currency    *string          `json:"currency" binding:"omitempty,oneof=AFN USD TRY EUR"`
	Type        *string          `json:"type" binding:"omitempty,oneof=in out"`
	Name        *string          `json:"name" binding:"omitempty,notblank"`
	Description *string          `json:"description"`
	Frequency   *string          `json:"frequency" binding:"omitempty,oneof=daily weekly monthly yearly"`
	NextDueDate *domain.Date     `json:"next_due_date"`
	IsActive    *bool            `json:"is_active"`
}

// DueRecurringParams defines the query of the due scan. AsOf defaults to today.
type DueRecurringParams struct {
	AsOf *string `form:"asOf" binding:"omitempty,isodate"`
}

// RecurringResponse defines the data returned for a recurring template.
type RecurringResponse struct {
	ID           int64           `json:"id"`
	CategoryID   int64           `json:"category_id"`
	CategoryName string          `json:"category_name,omitempty"`
	Amount       decimal.Decimal `json:"amount"`
	Currency     string          `json:"currency"`
	Type         string          `json:"type"`
	Name         string          `json:"name"`
	Description  *string         `json:"description"`
	Frequency    string          `json:"frequency"`
	NextDueDate  domain.Date     `json:"next_due_date"`
	IsActive     bool            `json:"is_active"`
	CreatedAt    time.Time       `json:"created_at"`
}

// CreateRecurringResponse is the created template plus its first installment, if any.
type CreateRecurringResponse struct {
	RecurringResponse
	Installment *TransactionResponse `json:"installment,omitempty"`
}

// ExecuteRecurringResponse is the result of executing a template.
// Created is false when an existing pending installment was reused.
type ExecuteRecurringResponse struct {
	Transaction TransactionResponse `json:"transaction"`
	Recurring   RecurringResponse   `json:"recurring"`
	Created     bool                `json:"created"`
}

// ToRecurringResponse converts a domain.RecurringTemplate to RecurringResponse DTO.
func ToRecurringResponse(r *domain.RecurringTemplate) RecurringResponse {
	return RecurringResponse{
		ID:           r.ID,
		CategoryID:   r.CategoryID,
		CategoryName: r.CategoryName,
		Amount:       r.Amount,
		Currency:     string(r.Currency),
		Type:         string(r.Type),
		Name:         r.Name,
		Description:  r.Description,
		Frequency:    string(r.Frequency),
		NextDueDate:  r.NextDueDate,
		IsActive:     r.IsActive,
		CreatedAt:    r.CreatedAt,
	}
}

// ToRecurringResponses converts a slice of templates.
func ToRecurringResponses(rs []domain.RecurringTemplate) []RecurringResponse {
	out := make([]RecurringResponse, len(rs))
	for i := range rs {
		out[i] = ToRecurringResponse(&rs[i])
	}
	return out
}

// ToCreateRecurringResponse converts a template and its optional installment.
func ToCreateRecurringResponse(r *domain.RecurringTemplate, installment *domain.Transaction) CreateRecurringResponse {
	resp := CreateRecurringResponse{RecurringResponse: ToRecurringResponse(r)}
	if installment != nil {
		t := ToTransactionResponse(installment)
		resp.Installment = &t
	}
	return resp
}

// ToExecuteRecurringResponse converts an execution result.
func ToExecuteRecurringResponse(res *domain.Execution) ExecuteRecurringResponse {
	return ExecuteRecurringResponse{
		Transaction: ToTransactionResponse(&res.Installment),
		Recurring:   ToRecurringResponse(&res.Template),
		Created:     res.Created,
	}
}
