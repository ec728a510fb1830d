package models

import "time"

// Admission request statuses. Status starts at pending and is moved by the
// back-office; transitions are not restricted.
const (
	// AdmissionStatusPending is the initial status of every new request.
	AdmissionStatusPending = "pending"
	// AdmissionStatusConfirmed marks a request with an agreed visit date.
	AdmissionStatusConfirmed = "confirmed"
	// AdmissionStatusCompleted marks a finished visit or admission.
	AdmissionStatusCompleted = "completed"
	// AdmissionStatusCancelled marks a request withdrawn by either side.
	AdmissionStatusCancelled = "cancelled"
)

// AdmissionRequest is an inquiry submitted through the website: a tour
// booking, an admission application or a consultation request.
type AdmissionRequest struct {
	ID int `json:"id"`
	// OwnerName is the name of the dog's owner.
	OwnerName string `json:"ownerName"`
	// DogName is the dog's name.
	DogName string `json:"dogName"`
	// Email is the contact address for replies.
	Email string `json:"email"`
	// Phone is the optional contact number.
	Phone string `json:"phone,omitempty"`
	// RequestType is "tour", "admission" or "consultation". Defaults to "tour".
	RequestType string `json:"requestType"`
	// PreferredDate is the visitor's preferred visit day (nil = unspecified).
	PreferredDate *time.Time `json:"preferredDate,omitempty"`
	// PreferredTime is the free-text preferred time of day.
	PreferredTime string `json:"preferredTime,omitempty"`
	// Message is the free-text note attached to the request.
	Message string `json:"message,omitempty"`
	// Status is one of the AdmissionStatus constants. Always "pending" on create.
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// InsertAdmissionRequest is the payload for submitting a request.
// Status can not be supplied; new requests always start as pending.
type InsertAdmissionRequest struct {
	OwnerName     string     `json:"ownerName" validate:"required"`
	DogName       string     `json:"dogName"   validate:"required"`
	Email         string     `json:"email"     validate:"required,email"`
	Phone         string     `json:"phone"`
	RequestType   string     `json:"requestType"`
	PreferredDate *time.Time `json:"preferredDate"`
	PreferredTime string     `json:"preferredTime"`
	Message       string     `json:"message"`
}

// AdmissionRequestUpdate carries the partial fields of an update request.
type AdmissionRequestUpdate struct {
	OwnerName     *string    `json:"ownerName"`
	DogName       *string    `json:"dogName"`
	Email         *string    `json:"email" validate:"omitempty,email"`
	Phone         *string    `json:"phone"`
	RequestType   *string    `json:"requestType"`
	PreferredDate *time.Time `json:"preferredDate"`
	PreferredTime *string    `json:"preferredTime"`
	Message       *string    `json:"message"`
	Status        *string    `json:"status"`
}
