package models

import "time"

// FaqItem is a question/answer pair, grouped by free-text category.
type FaqItem struct {
	ID        int       `json:"id"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	Category  string    `json:"category"`
	Order     int       `json:"order"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// InsertFaqItem is the payload for creating a FAQ item.
// Category defaults to "general" when omitted.
type InsertFaqItem struct {
	Question string `json:"question" validate:"required"`
	Answer   string `json:"answer"   validate:"required"`
	Category string `json:"category"`
	Order    int    `json:"order"`
}

// FaqItemUpdate carries the partial fields of an update request.
type FaqItemUpdate struct {
	Question *string `json:"question"`
	Answer   *string `json:"answer"`
	Category *string `json:"category"`
	Order    *int    `json:"order"`
}
