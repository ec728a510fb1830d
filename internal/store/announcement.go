package store

import (
	"sort"
	"time"

	"github.com/kimjuyoung1127/PuppyVill/internal/models"
)

// GetAnnouncement returns the announcement with the given id.
func (s *Store) GetAnnouncement(id int) (models.Announcement, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.announcements[id]
	return a, ok
}

// GetActiveAnnouncements returns the announcements that are live right now:
// IsActive set, StartDate in the past and EndDate absent or in the future.
// Results are ordered by id.
func (s *Store) GetActiveAnnouncements() []models.Announcement {
	s.mu.RLock()
	defer s.mu.RUnlock()

	now := time.Now()
	out := make([]models.Announcement, 0, len(s.announcements))
	for _, a := range s.announcements {
		if !a.IsActive || a.StartDate.After(now) {
			continue
		}
		if a.EndDate != nil && a.EndDate.Before(now) {
			continue
		}
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// CreateAnnouncement stores a new announcement. IsActive defaults to true
// when the payload omits it.
func (s *Store) CreateAnnouncement(in models.InsertAnnouncement) models.Announcement {
	s.mu.Lock()
	defer s.mu.Unlock()

	isActive := true
	if in.IsActive != nil {
		isActive = *in.IsActive
	}

	now := time.Now()
	a := models.Announcement{
		ID:         s.nextAnnouncementID,
		Title:      in.Title,
		Content:    in.Content,
		IsActive:   isActive,
		StartDate:  in.StartDate,
		EndDate:    in.EndDate,
		ButtonText: in.ButtonText,
		ButtonLink: in.ButtonLink,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	s.nextAnnouncementID++
	s.announcements[a.ID] = a
	return a
}

// UpdateAnnouncement applies the non-nil fields of in to the stored
// announcement and re-stamps UpdatedAt. CreatedAt never changes.
func (s *Store) UpdateAnnouncement(id int, in models.AnnouncementUpdate) (models.Announcement, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.announcements[id]
	if !ok {
		return models.Announcement{}, false
	}

	if in.Title != nil {
		a.Title = *in.Title
	}
	if in.Content != nil {
		a.Content = *in.Content
	}
	if in.IsActive != nil {
		a.IsActive = *in.IsActive
	}
	if in.StartDate != nil {
		a.StartDate = *in.StartDate
	}
	if in.EndDate != nil {
		a.EndDate = in.EndDate
	}
	if in.ButtonText != nil {
		a.ButtonText = *in.ButtonText
	}
	if in.ButtonLink != nil {
		a.ButtonLink = *in.ButtonLink
	}
	a.UpdatedAt = time.Now()

	s.announcements[id] = a
	return a, true
}

// DeleteAnnouncement removes the announcement with the given id. The id is
// not reused by later creates.
func (s *Store) DeleteAnnouncement(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.announcements[id]; !ok {
		return false
	}
	delete(s.announcements, id)
	return true
}
