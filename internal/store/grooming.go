package store

import (
	"sort"
	"time"

	"github.com/kimjuyoung1127/PuppyVill/internal/models"
)

// GetGroomingService returns the grooming service with the given id.
func (s *Store) GetGroomingService(id int) (models.GroomingService, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	svc, ok := s.groomingServices[id]
	return svc, ok
}

// GetAllGroomingServices returns all grooming services ascending by Order,
// then id.
func (s *Store) GetAllGroomingServices() []models.GroomingService {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.GroomingService, 0, len(s.groomingServices))
	for _, svc := range s.groomingServices {
		out = append(out, svc)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Order != out[j].Order {
			return out[i].Order < out[j].Order
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// CreateGroomingService stores a new grooming service.
func (s *Store) CreateGroomingService(in models.InsertGroomingService) models.GroomingService {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	svc := models.GroomingService{
		ID:             s.nextGroomingServiceID,
		Title:          in.Title,
		Description:    in.Description,
		BeforeImageURL: in.BeforeImageURL,
		AfterImageURL:  in.AfterImageURL,
		Price:          in.Price,
		Duration:       in.Duration,
		Order:          in.Order,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	s.nextGroomingServiceID++
	s.groomingServices[svc.ID] = svc
	return svc
}

// UpdateGroomingService applies the non-nil fields of in to the stored
// service and re-stamps UpdatedAt.
func (s *Store) UpdateGroomingService(id int, in models.GroomingServiceUpdate) (models.GroomingService, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	svc, ok := s.groomingServices[id]
	if !ok {
		return models.GroomingService{}, false
	}

	if in.Title != nil {
		svc.Title = *in.Title
	}
	if in.Description != nil {
		svc.Description = *in.Description
	}
	if in.BeforeImageURL != nil {
		svc.BeforeImageURL = *in.BeforeImageURL
	}
	if in.AfterImageURL != nil {
		svc.AfterImageURL = *in.AfterImageURL
	}
	if in.Price != nil {
		svc.Price = *in.Price
	}
	if in.Duration != nil {
		svc.Duration = *in.Duration
	}
	if in.Order != nil {
		svc.Order = *in.Order
	}
	svc.UpdatedAt = time.Now()

	s.groomingServices[id] = svc
	return svc, true
}

// DeleteGroomingService removes the grooming service with the given id.
func (s *Store) DeleteGroomingService(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.groomingServices[id]; !ok {
		return false
	}
	delete(s.groomingServices, id)
	return true
}
