package domain

import "time"

// Category groups boxes for catalog navigation (e.g. "knives", "tech", "streetwear")
type Category struct {
	ID           int       `json:"category_id" db:"category_id"`
	Name         string    `json:"name" db:"category_name"`
	Slug         string    `json:"slug" db:"slug"`
	Description  string    `json:"description,omitempty" db:"description"`
	DisplayOrder int       `json:"display_order" db:"display_order"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}
