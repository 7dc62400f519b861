package models

import "time"

// Category is a row of the categories table.
type Category struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	ParentID  *int64    `json:"parentID"` // FK -> categories.id, nullable
	Type      string    `json:"type"`     // default | custom
	CreatedAt time.Time `json:"createdAt"`
}
