package store

import (
	"sort"
	"time"

	"github.com/kimjuyoung1127/PuppyVill/internal/models"
)

// GetProgram returns the program with the given id.
func (s *Store) GetProgram(id int) (models.Program, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.programs[id]
	return p, ok
}

// GetAllPrograms returns all programs ascending by Order, then id.
func (s *Store) GetAllPrograms() []models.Program {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Program, 0, len(s.programs))
	for _, p := range s.programs {
		out = append(out, p)
	}
	sortProgramsByOrder(out)
	return out
}

// GetProgramsByCategory returns the programs whose category matches exactly,
// ascending by Order, then id.
func (s *Store) GetProgramsByCategory(category string) []models.Program {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Program, 0, len(s.programs))
	for _, p := range s.programs {
		if p.Category == category {
			out = append(out, p)
		}
	}
	sortProgramsByOrder(out)
	return out
}

func sortProgramsByOrder(programs []models.Program) {
	sort.Slice(programs, func(i, j int) bool {
		if programs[i].Order != programs[j].Order {
			return programs[i].Order < programs[j].Order
		}
		return programs[i].ID < programs[j].ID
	})
}

// CreateProgram stores a new program.
func (s *Store) CreateProgram(in models.InsertProgram) models.Program {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	p := models.Program{
		ID:          s.nextProgramID,
		Title:       in.Title,
		Category:    in.Category,
		Description: in.Description,
		Benefits:    in.Benefits,
		Emoji:       in.Emoji,
		ImageURL:    in.ImageURL,
		Order:       in.Order,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.nextProgramID++
	s.programs[p.ID] = p
	return p
}

// UpdateProgram applies the non-nil fields of in to the stored program and
// re-stamps UpdatedAt.
func (s *Store) UpdateProgram(id int, in models.ProgramUpdate) (models.Program, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.programs[id]
	if !ok {
		return models.Program{}, false
	}

	if in.Title != nil {
		p.Title = *in.Title
	}
	if in.Category != nil {
		p.Category = *in.Category
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.Benefits != nil {
		p.Benefits = *in.Benefits
	}
	if in.Emoji != nil {
		p.Emoji = *in.Emoji
	}
	if in.ImageURL != nil {
		p.ImageURL = *in.ImageURL
	}
	if in.Order != nil {
		p.Order = *in.Order
	}
	p.UpdatedAt = time.Now()

	s.programs[id] = p
	return p, true
}

// DeleteProgram removes the program with the given id.
func (s *Store) DeleteProgram(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.programs[id]; !ok {
		return false
	}
	delete(s.programs, id)
	return true
}
