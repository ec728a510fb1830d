package models

import "time"

// Announcement is a banner notice shown on the website.
// Visibility is a combination of the IsActive flag and the start/end dates:
// an announcement is live while IsActive is set, StartDate has passed and
// EndDate (when present) has not.
type Announcement struct {
	ID int `json:"id"`
	// Title of the banner.
	Title string `json:"title"`
	// Content is the banner body text.
	Content string `json:"content"`
	// IsActive toggles the banner regardless of its date window.
	IsActive bool `json:"isActive"`
	// StartDate is the first day the banner may be shown.
	StartDate time.Time `json:"startDate"`
	// EndDate is the last day the banner may be shown (nil = open ended).
	EndDate *time.Time `json:"endDate,omitempty"`
	// ButtonText is the optional call-to-action label.
	ButtonText string `json:"buttonText,omitempty"`
	// ButtonLink is the optional call-to-action target.
	ButtonLink string     `json:"buttonLink,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

// InsertAnnouncement is the payload for creating an announcement.
// IsActive defaults to true when omitted.
type InsertAnnouncement struct {
	Title      string     `json:"title"   validate:"required"`
	Content    string     `json:"content" validate:"required"`
	IsActive   *bool      `json:"isActive"`
	StartDate  time.Time  `json:"startDate" validate:"required"`
	EndDate    *time.Time `json:"endDate"`
	ButtonText string     `json:"buttonText"`
	ButtonLink string     `json:"buttonLink"`
}

// AnnouncementUpdate carries the partial fields of an update request.
// Only non-nil fields are applied.
type AnnouncementUpdate struct {
	Title      *string    `json:"title"`
	Content    *string    `json:"content"`
	IsActive   *bool      `json:"isActive"`
	StartDate  *time.Time `json:"startDate"`
	EndDate    *time.Time `json:"endDate"`
	ButtonText *string    `json:"buttonText"`
	ButtonLink *string    `json:"buttonLink"`
}
