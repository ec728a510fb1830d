package models

import "time"

// MonthlyProgram is a one-off event on the monthly program calendar.
type MonthlyProgram struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Date        time.Time `json:"date"`
	Description string    `json:"description,omitempty"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// InsertMonthlyProgram is the payload for creating a monthly program event.
type InsertMonthlyProgram struct {
	Title       string    `json:"title" validate:"required"`
	Date        time.Time `json:"date"  validate:"required"`
	Description string    `json:"description"`
	ImageURL    string    `json:"imageUrl"`
}

// MonthlyProgramUpdate carries the partial fields of an update request.
type MonthlyProgramUpdate struct {
	Title       *string    `json:"title"`
	Date        *time.Time `json:"date"`
	Description *string    `json:"description"`
	ImageURL    *string    `json:"imageUrl"`
}
