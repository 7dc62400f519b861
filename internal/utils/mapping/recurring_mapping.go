package mapping

import (
	"github.com/HaroonAzizi/hadaf-accounting/internal/core/domain"
	"github.com/HaroonAzizi/hadaf-accounting/internal/models"
)

// ToModelRecurring converts a domain RecurringTemplate to a model RecurringTemplate
func ToModelRecurring(d domain.RecurringTemplate) models.RecurringTemplate {
	return models.RecurringTemplate{
		ID:           d.ID,
		CategoryID:   d.CategoryID,
		CategoryName: d.CategoryName,
		Amount:       d.Amount,
		Currency:     string(d.Currency),
		Type:         string(d.Type),
		Name:         d.Name,
		Description:  d.Description,
		Frequency:    string(d.Frequency),
		NextDueDate:  d.NextDueDate,
		IsActive:     d.IsActive,
		CreatedAt:    d.CreatedAt,
	}
}

// ToDomainRecurring converts a model RecurringTemplate to a domain RecurringTemplate
func ToDomainRecurring(m models.RecurringTemplate) domain.RecurringTemplate {
	return domain.RecurringTemplate{
		ID:           m.ID,
		CategoryID:   m.CategoryID,
		CategoryName: m.CategoryName,
		Amount:       m.Amount,
		Currency:     domain.Currency(m.Currency),
		Type:         domain.Direction(m.Type),
		Name:         m.Name,
		Description:  m.Description,
		Frequency:    domain.Frequency(m.Frequency),
		NextDueDate:  m.NextDueDate,
		IsActive:     m.IsActive,
		CreatedAt:    m.CreatedAt,
	}
}

// ToDomainRecurrings converts a slice of model RecurringTemplates
func ToDomainRecurrings(ms []models.RecurringTemplate) []domain.RecurringTemplate {
	out := make([]domain.RecurringTemplate, len(ms))
	for i, m := range ms {
		out[i] = ToDomainRecurring(m)
	}
	return out
}
