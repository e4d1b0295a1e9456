package models

import "time"

// Category groups documents. Deleting a category does not touch its documents.
type Category struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (c Category) EntityID() int { return c.ID }

// CategoryFields is the mutable part of a category.
type CategoryFields struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}
