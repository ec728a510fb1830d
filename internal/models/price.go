package models

import "time"

// PriceItem is one row of the price table, grouped by free-text category
// (e.g. "daycare", "hotel", "grooming"). Prices are display strings, not
// amounts; the site renders them verbatim.
type PriceItem struct {
	ID          int       `json:"id"`
	Service     string    `json:"service"`
	Category    string    `json:"category"`
	Description string    `json:"description,omitempty"`
	Price       string    `json:"price"`
	Duration    string    `json:"duration,omitempty"`
	Notes       string    `json:"notes,omitempty"`
	IsPopular   bool      `json:"isPopular"`
	Order       int       `json:"order"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// InsertPriceItem is the payload for creating a price item.
type InsertPriceItem struct {
	Service     string `json:"service"  validate:"required"`
	Category    string `json:"category" validate:"required"`
	Description string `json:"description"`
	Price       string `json:"price"    validate:"required"`
	Duration    string `json:"duration"`
	Notes       string `json:"notes"`
	IsPopular   bool   `json:"isPopular"`
	Order       int    `json:"order"`
}

// PriceItemUpdate carries the partial fields of an update request.
type PriceItemUpdate struct {
	Service     *string `json:"service"`
	Category    *string `json:"category"`
	Description *string `json:"description"`
	Price       *string `json:"price"`
	Duration    *string `json:"duration"`
	Notes       *string `json:"notes"`
	IsPopular   *bool   `json:"isPopular"`
	Order       *int    `json:"order"`
}
