package models

import "time"

// CafeItem is a menu item of the in-house cafe, grouped by free-text
// category (e.g. "drinks", "desserts", "snacks").
type CafeItem struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Price       string    `json:"price"`
	Category    string    `json:"category"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	IsPopular   bool      `json:"isPopular"`
	Order       int       `json:"order"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// InsertCafeItem is the payload for creating a cafe item.
// Category defaults to "drinks" when omitted.
type InsertCafeItem struct {
	Name        string `json:"name"  validate:"required"`
	Description string `json:"description"`
	Price       string `json:"price" validate:"required"`
	Category    string `json:"category"`
	ImageURL    string `json:"imageUrl"`
	IsPopular   bool   `json:"isPopular"`
	Order       int    `json:"order"`
}

// CafeItemUpdate carries the partial fields of an update request.
type CafeItemUpdate struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Price       *string `json:"price"`
	Category    *string `json:"category"`
	ImageURL    *string `json:"imageUrl"`
	IsPopular   *bool   `json:"isPopular"`
	Order       *int    `json:"order"`
}
