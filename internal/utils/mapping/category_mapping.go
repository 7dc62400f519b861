package mapping

import (
	"github.com/HaroonAzizi/hadaf-accounting/internal/core/domain"
	"github.com/HaroonAzizi/hadaf-accounting/internal/models"
)

// ToModelCategory converts a domain Category to a model Category
func ToModelCategory(d domain.Category) models.Category {
	return models.Category{
		ID:        d.ID,
		Name:      d.Name,
		ParentID:  d.ParentID,
		Type:      string(d.Type),
		CreatedAt: d.CreatedAt,
	}
}

// ToDomainCategory converts a model Category to a domain Category
func ToDomainCategory(m models.Category) domain.Category {
	return domain.Category{
		ID:        m.ID,
		Name:      m.Name,
		ParentID:  m.ParentID,
		Type:      domain.CategoryType(m.Type),
		CreatedAt: m.CreatedAt,
	}
}

// ToDomainCategories converts a slice of model Categories
func ToDomainCategories(ms []models.Category) []domain.Category {
	out := make([]domain.Category, len(ms))
	for i, m := range ms {
		out[i] = ToDomainCategory(m)
	}
	return out
}
