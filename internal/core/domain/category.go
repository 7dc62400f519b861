package domain

import (
	"sort"
	"time"
)

// CategoryType distinguishes seeded categories from user-created ones.
type CategoryType string

const (
	CategoryTypeDefault CategoryType = "default"
	CategoryTypeCustom  CategoryType = "custom"
)

// Category groups ledger entries and templates. Deleting a category removes
// its entries, templates and child categories.
type Category struct {
	ID        int64
	Name      string
	ParentID  *int64
	Type      CategoryType
	CreatedAt time.Time
	Children  []Category
}

// CategoryPatch carries the fields of a partial category update. ClearParent
// detaches the category from its parent.
type CategoryPatch struct {
	Name        *string
	ParentID    *int64
	ClearParent bool
}

// BuildCategoryTree nests categories under their parents. Categories whose
// parent is missing become roots. Siblings keep name order.
func BuildCategoryTree(flat []Category) []Category {
	sorted := make([]Category, len(flat))
	copy(sorted, flat)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })

	byID := make(map[int64]Category, len(sorted))
	children := make(map[int64][]int64)
	for _, c := range sorted {
		c.Children = nil
		byID[c.ID] = c
	}
	var roots []int64
	for _, c := range sorted {
		if c.ParentID != nil {
			if _, ok := byID[*c.ParentID]; ok && *c.ParentID != c.ID {
				children[*c.ParentID] = append(children[*c.ParentID], c.ID)
				continue
			}
		}
		roots = append(roots, c.ID)
	}

	var build func(id int64, seen map[int64]bool) Category
	build = func(id int64, seen map[int64]bool) Category {
		node := byID[id]
		seen[id] = true
		for _, childID := range children[id] {
			if seen[childID] {
				continue
			}
			node.Children = append(node.Children, build(childID, seen))
		}
		return node
	}

	seen := make(map[int64]bool, len(sorted))
	out := make([]Category, 0, len(roots))
	for _, id := range roots {
		out = append(out, build(id, seen))
	}
	return out
}
