package models

import "time"

// SiteSettings holds the site-wide configuration shown in the public
// frontend. Exactly one record exists; updates always target it.
type SiteSettings struct {
	ID              int               `json:"id"`
	SiteName        string            `json:"siteName"`
	LogoURL         string            `json:"logoUrl,omitempty"`
	Phone           string            `json:"phone,omitempty"`
	Email           string            `json:"email,omitempty"`
	Address         string            `json:"address,omitempty"`
	BusinessHours   map[string]string `json:"businessHours,omitempty"`
	SocialLinks     map[string]string `json:"socialLinks,omitempty"`
	MetaTitle       string            `json:"metaTitle,omitempty"`
	MetaDescription string            `json:"metaDescription,omitempty"`
	UpdatedAt       time.Time         `json:"updatedAt"`
}

// InsertSiteSettings is the payload for creating the settings record.
type InsertSiteSettings struct {
	SiteName        string            `json:"siteName" validate:"required"`
	LogoURL         string            `json:"logoUrl"`
	Phone           string            `json:"phone"`
	Email           string            `json:"email" validate:"omitempty,email"`
	Address         string            `json:"address"`
	BusinessHours   map[string]string `json:"businessHours"`
	SocialLinks     map[string]string `json:"socialLinks"`
	MetaTitle       string            `json:"metaTitle"`
	MetaDescription string            `json:"metaDescription"`
}

// SiteSettingsUpdate carries the partial fields of an update request.
type SiteSettingsUpdate struct {
	SiteName        *string            `json:"siteName"`
	LogoURL         *string            `json:"logoUrl"`
	Phone           *string            `json:"phone"`
	Email           *string            `json:"email" validate:"omitempty,email"`
	Address         *string            `json:"address"`
	BusinessHours   *map[string]string `json:"businessHours"`
	SocialLinks     *map[string]string `json:"socialLinks"`
	MetaTitle       *string            `json:"metaTitle"`
	MetaDescription *string            `json:"metaDescription"`
}
