package models

import "time"

// GalleryImage is a photo in the website gallery. Images are grouped by
// free-text category (e.g. "playtime", "education", "grooming") and listed
// newest first by DateAdded.
type GalleryImage struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	ImageURL    string    `json:"imageUrl"`
	Category    string    `json:"category"`
	Tags        []string  `json:"tags"`
	DateAdded   time.Time `json:"dateAdded"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// InsertGalleryImage is the payload for creating a gallery image.
// Category defaults to "general" and DateAdded to the current time.
type InsertGalleryImage struct {
	Title       string     `json:"title"    validate:"required"`
	Description string     `json:"description"`
	ImageURL    string     `json:"imageUrl" validate:"required"`
	Category    string     `json:"category"`
	Tags        []string   `json:"tags"`
	DateAdded   *time.Time `json:"dateAdded"`
}

// GalleryImageUpdate carries the partial fields of an update request.
type GalleryImageUpdate struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	ImageURL    *string    `json:"imageUrl"`
	Category    *string    `json:"category"`
	Tags        *[]string  `json:"tags"`
	DateAdded   *time.Time `json:"dateAdded"`
}
