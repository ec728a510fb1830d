package models

import "time"

// GroomingService is a grooming package with optional before/after photos.
type GroomingService struct {
	ID             int       `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	BeforeImageURL string    `json:"beforeImageUrl,omitempty"`
	AfterImageURL  string    `json:"afterImageUrl,omitempty"`
	Price          string    `json:"price,omitempty"`
	Duration       string    `json:"duration,omitempty"`
	Order          int       `json:"order"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// InsertGroomingService is the payload for creating a grooming service.
type InsertGroomingService struct {
	Title          string `json:"title"       validate:"required"`
	Description    string `json:"description" validate:"required"`
	BeforeImageURL string `json:"beforeImageUrl"`
	AfterImageURL  string `json:"afterImageUrl"`
	Price          string `json:"price"`
	Duration       string `json:"duration"`
	Order          int    `json:"order"`
}

// GroomingServiceUpdate carries the partial fields of an update request.
type GroomingServiceUpdate struct {
	Title          *string `json:"title"`
	Description    *string `json:"description"`
	BeforeImageURL *string `json:"beforeImageUrl"`
	AfterImageURL  *string `json:"afterImageUrl"`
	Price          *string `json:"price"`
	Duration       *string `json:"duration"`
	Order          *int    `json:"order"`
}
