package models

import "time"

// ScheduleItem is one slot of the daily daycare schedule.
type ScheduleItem struct {
	ID int `json:"id"`
	// TimeSlot is the display range, e.g. "09:00 - 10:00".
	TimeSlot    string    `json:"timeSlot"`
	Activity    string    `json:"activity"`
	Description string    `json:"description,omitempty"`
	Icon        string    `json:"icon,omitempty"`
	Order       int       `json:"order"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// InsertScheduleItem is the payload for creating a schedule item.
type InsertScheduleItem struct {
	TimeSlot    string `json:"timeSlot" validate:"required"`
	Activity    string `json:"activity" validate:"required"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Order       int    `json:"order"`
}

// ScheduleItemUpdate carries the partial fields of an update request.
type ScheduleItemUpdate struct {
	TimeSlot    *string `json:"timeSlot"`
	Activity    *string `json:"activity"`
	Description *string `json:"description"`
	Icon        *string `json:"icon"`
	Order       *int    `json:"order"`
}
