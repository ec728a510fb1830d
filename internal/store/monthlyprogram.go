package store

import (
	"sort"
	"time"

	"github.com/kimjuyoung1127/PuppyVill/internal/models"
)

// GetMonthlyProgram returns the monthly program with the given id.
func (s *Store) GetMonthlyProgram(id int) (models.MonthlyProgram, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.monthlyPrograms[id]
	return p, ok
}

// GetMonthlyProgramsByMonth returns the events falling in the given calendar
// month, ascending by date, then id.
func (s *Store) GetMonthlyProgramsByMonth(year int, month time.Month) []models.MonthlyProgram {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.MonthlyProgram, 0, len(s.monthlyPrograms))
	for _, p := range s.monthlyPrograms {
		if p.Date.Year() == year && p.Date.Month() == month {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// CreateMonthlyProgram stores a new monthly program event.
func (s *Store) CreateMonthlyProgram(in models.InsertMonthlyProgram) models.MonthlyProgram {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	p := models.MonthlyProgram{
		ID:          s.nextMonthlyProgramID,
		Title:       in.Title,
		Date:        in.Date,
		Description: in.Description,
		ImageURL:    in.ImageURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.nextMonthlyProgramID++
	s.monthlyPrograms[p.ID] = p
	return p
}

// UpdateMonthlyProgram applies the non-nil fields of in to the stored event
// and re-stamps UpdatedAt.
func (s *Store) UpdateMonthlyProgram(id int, in models.MonthlyProgramUpdate) (models.MonthlyProgram, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.monthlyPrograms[id]
	if !ok {
		return models.MonthlyProgram{}, false
	}

	if in.Title != nil {
		p.Title = *in.Title
	}
	if in.Date != nil {
		p.Date = *in.Date
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.ImageURL != nil {
		p.ImageURL = *in.ImageURL
	}
	p.UpdatedAt = time.Now()

	s.monthlyPrograms[id] = p
	return p, true
}

// DeleteMonthlyProgram removes the monthly program with the given id.
func (s *Store) DeleteMonthlyProgram(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.monthlyPrograms[id]; !ok {
		return false
	}
	delete(s.monthlyPrograms, id)
	return true
}
