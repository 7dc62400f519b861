package dto

import (
	"time"

	"github.com/HaroonAzizi/hadaf-accounting/internal/core/domain"
)

// CreateCategoryRequest defines the data needed to create a new category.
type CreateCategoryRequest struct {
	Name     string  `json:"name" binding:"required,notblank"`
	ParentID *int64  `json:"parentId" binding:"omitempty,min=1"`
	Type     *string `json:"type" binding:"omitempty,oneof=default custom"`
}

// UpdateCategoryRequest defines the data for renaming or re-parenting a
// category. A JSON null parentId detaches the category from its parent.
type UpdateCategoryRequest struct {
	Name     *string       `json:"name" binding:"omitempty,notblank"`
	ParentID OptionalInt64 `json:"parentId"`
}

// CategoryResponse defines the data returned for a category.
type CategoryResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	ParentID  *int64    `json:"parent_id"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
}

// CategoryTreeNode is a CategoryResponse that always carries its children.
type CategoryTreeNode struct {
	ID        int64              `json:"id"`
	Name      string             `json:"name"`
	ParentID  *int64             `json:"parent_id"`
	Type      string             `json:"type"`
	CreatedAt time.Time          `json:"created_at"`
	Children  []CategoryTreeNode `json:"children"`
}

// CategoryStatsResponse is the per-currency flow of one category.
type CategoryStatsResponse struct {
	Category CategoryResponse `json:"category"`
	FlowResponse
}

// ToCategoryResponse converts a domain.Category to CategoryResponse DTO.
func ToCategoryResponse(c *domain.Category) CategoryResponse {
	return CategoryResponse{
		ID:        c.ID,
		Name:      c.Name,
		ParentID:  c.ParentID,
		Type:      string(c.Type),
		CreatedAt: c.CreatedAt,
	}
}

// ToCategoryTree converts a nested category slice to tree nodes.
func ToCategoryTree(cats []domain.Category) []CategoryTreeNode {
	nodes := make([]CategoryTreeNode, len(cats))
	for i, c := range cats {
		nodes[i] = CategoryTreeNode{
			ID:        c.ID,
			Name:      c.Name,
			ParentID:  c.ParentID,
			Type:      string(c.Type),
			CreatedAt: c.CreatedAt,
			Children:  ToCategoryTree(c.Children),
		}
	}
	return nodes
}

// ToCategoryStatsResponse converts domain stats to the response DTO.
func ToCategoryStatsResponse(s *domain.CategoryStats) CategoryStatsResponse {
	return CategoryStatsResponse{
		Category:     ToCategoryResponse(&s.Category),
		FlowResponse: ToFlowResponse(s.FlowTotals),
	}
}
