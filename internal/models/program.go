package models

import "time"

// Program is a daycare program offered by PuppyVill, e.g. an education or
// fitness course. Programs are grouped by free-text category and displayed
// ascending by Order.
type Program struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Benefits    []string  `json:"benefits"`
	Emoji       string    `json:"emoji,omitempty"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	Order       int       `json:"order"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// InsertProgram is the payload for creating a program.
type InsertProgram struct {
	Title       string   `json:"title"       validate:"required"`
	Category    string   `json:"category"    validate:"required"`
	Description string   `json:"description" validate:"required"`
	Benefits    []string `json:"benefits"`
	Emoji       string   `json:"emoji"`
	ImageURL    string   `json:"imageUrl"`
	Order       int      `json:"order"`
}

// ProgramUpdate carries the partial fields of an update request.
type ProgramUpdate struct {
	Title       *string   `json:"title"`
	Category    *string   `json:"category"`
	Description *string   `json:"description"`
	Benefits    *[]string `json:"benefits"`
	Emoji       *string   `json:"emoji"`
	ImageURL    *string   `json:"imageUrl"`
	Order       *int      `json:"order"`
}
