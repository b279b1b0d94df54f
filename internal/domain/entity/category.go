package entity

import "time"

// Category representa una categoría de productos. ParentID permite jerarquía simple (una sola profundidad útil).
type Category struct {
	ID          string
	Name        string
	Description string
	ParentID    *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
