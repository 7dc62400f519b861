package mapping

import (
	"github.com/HaroonAzizi/hadaf-accounting/internal/core/domain"
	"github.com/HaroonAzizi/hadaf-accounting/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		ID:           d.ID,
		CategoryID:   d.CategoryID,
		CategoryName: d.CategoryName,
		RecurringID:  d.RecurringID,
		Amount:       d.Amount,
		Currency:     string(d.Currency),
		Type:         string(d.Type),
		Status:       string(d.Status),
		Date:         d.Date,
		Name:         d.Name,
		Description:  d.Description,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		ID:           m.ID,
		CategoryID:   m.CategoryID,
		CategoryName: m.CategoryName,
		RecurringID:  m.RecurringID,
		Amount:       m.Amount,
		Currency:     domain.Currency(m.Currency),
		Type:         domain.Direction(m.Type),
		Status:       domain.TransactionStatus(m.Status),
		Date:         m.Date,
		Name:         m.Name,
		Description:  m.Description,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// ToDomainTransactions converts a slice of model Transactions
func ToDomainTransactions(ms []models.Transaction) []domain.Transaction {
	out := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		out[i] = ToDomainTransaction(m)
	}
	return out
}
