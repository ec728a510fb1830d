package models

import "time"

// Review is a customer review. Reviews are submitted unverified; the
// back-office flips IsVerified before they appear on the public site.
type Review struct {
	ID         int    `json:"id"`
	AuthorName string `json:"authorName"`
	DogName    string `json:"dogName,omitempty"`
	Content    string `json:"content"`
	// Rating is a 1-5 star score.
	Rating      int       `json:"rating"`
	IsAnonymous bool      `json:"isAnonymous"`
	IsVerified  bool      `json:"isVerified"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// InsertReview is the payload for submitting a review.
// IsVerified can not be supplied; new reviews always start unverified.
type InsertReview struct {
	AuthorName  string `json:"authorName" validate:"required"`
	DogName     string `json:"dogName"`
	Content     string `json:"content"    validate:"required"`
	Rating      int    `json:"rating"     validate:"required,min=1,max=5"`
	IsAnonymous bool   `json:"isAnonymous"`
	ImageURL    string `json:"imageUrl"`
}

// ReviewUpdate carries the partial fields of an update request.
type ReviewUpdate struct {
	AuthorName  *string `json:"authorName"`
	DogName     *string `json:"dogName"`
	Content     *string `json:"content"`
	Rating      *int    `json:"rating" validate:"omitempty,min=1,max=5"`
	IsAnonymous *bool   `json:"isAnonymous"`
	IsVerified  *bool   `json:"isVerified"`
	ImageURL    *string `json:"imageUrl"`
}
