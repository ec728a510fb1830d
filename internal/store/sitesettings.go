package store

import (
	"time"

	"github.com/kimjuyoung1127/PuppyVill/internal/models"
)

// GetSiteSettings returns the site settings record. When more than one
// record exists the first-created one wins.
func (s *Store) GetSiteSettings() (models.SiteSettings, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.firstSiteSettings()
}

func (s *Store) firstSiteSettings() (models.SiteSettings, bool) {
	var (
		first models.SiteSettings
		found bool
	)
	for _, settings := range s.siteSettings {
		if !found || settings.ID < first.ID {
			first = settings
			found = true
		}
	}
	return first, found
}

// CreateSiteSettings stores a settings record. Normally called once at
// seed time.
func (s *Store) CreateSiteSettings(in models.InsertSiteSettings) models.SiteSettings {
	s.mu.Lock()
	defer s.mu.Unlock()

	settings := models.SiteSettings{
		ID:              s.nextSiteSettingsID,
		SiteName:        in.SiteName,
		LogoURL:         in.LogoURL,
		Phone:           in.Phone,
		Email:           in.Email,
		Address:         in.Address,
		BusinessHours:   in.BusinessHours,
		SocialLinks:     in.SocialLinks,
		MetaTitle:       in.MetaTitle,
		MetaDescription: in.MetaDescription,
		UpdatedAt:       time.Now(),
	}
	s.nextSiteSettingsID++
	s.siteSettings[settings.ID] = settings
	return settings
}

// UpdateSiteSettings applies the non-nil fields of in to the settings
// record. The id argument is ignored: the update always targets the
// first-created record, since settings are a singleton.
func (s *Store) UpdateSiteSettings(_ int, in models.SiteSettingsUpdate) (models.SiteSettings, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	settings, ok := s.firstSiteSettings()
	if !ok {
		return models.SiteSettings{}, false
	}

	if in.SiteName != nil {
		settings.SiteName = *in.SiteName
	}
	if in.LogoURL != nil {
		settings.LogoURL = *in.LogoURL
	}
	if in.Phone != nil {
		settings.Phone = *in.Phone
	}
	if in.Email != nil {
		settings.Email = *in.Email
	}
	if in.Address != nil {
		settings.Address = *in.Address
	}
	if in.BusinessHours != nil {
		settings.BusinessHours = *in.BusinessHours
	}
	if in.SocialLinks != nil {
		settings.SocialLinks = *in.SocialLinks
	}
	if in.MetaTitle != nil {
		settings.MetaTitle = *in.MetaTitle
	}
	if in.MetaDescription != nil {
		settings.MetaDescription = *in.MetaDescription
	}
	settings.UpdatedAt = time.Now()

	s.siteSettings[settings.ID] = settings
	return settings, true
}
