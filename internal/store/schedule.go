package store

import (
	"sort"
	"time"

	"github.com/kimjuyoung1127/PuppyVill/internal/models"
)

// GetScheduleItem returns the schedule item with the given id.
func (s *Store) GetScheduleItem(id int) (models.ScheduleItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.scheduleItems[id]
	return item, ok
}

// GetAllScheduleItems returns the daily schedule ascending by Order, then id.
func (s *Store) GetAllScheduleItems() []models.ScheduleItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.ScheduleItem, 0, len(s.scheduleItems))
	for _, item := range s.scheduleItems {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Order != out[j].Order {
			return out[i].Order < out[j].Order
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// CreateScheduleItem stores a new schedule item.
func (s *Store) CreateScheduleItem(in models.InsertScheduleItem) models.ScheduleItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	item := models.ScheduleItem{
		ID:          s.nextScheduleItemID,
		TimeSlot:    in.TimeSlot,
		Activity:    in.Activity,
		Description: in.Description,
		Icon:        in.Icon,
		Order:       in.Order,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.nextScheduleItemID++
	s.scheduleItems[item.ID] = item
	return item
}

// UpdateScheduleItem applies the non-nil fields of in to the stored item and
// re-stamps UpdatedAt.
func (s *Store) UpdateScheduleItem(id int, in models.ScheduleItemUpdate) (models.ScheduleItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.scheduleItems[id]
	if !ok {
		return models.ScheduleItem{}, false
	}

	if in.TimeSlot != nil {
		item.TimeSlot = *in.TimeSlot
	}
	if in.Activity != nil {
		item.Activity = *in.Activity
	}
	if in.Description != nil {
		item.Description = *in.Description
	}
	if in.Icon != nil {
		item.Icon = *in.Icon
	}
	if in.Order != nil {
		item.Order = *in.Order
	}
	item.UpdatedAt = time.Now()

	s.scheduleItems[id] = item
	return item, true
}

// DeleteScheduleItem removes the schedule item with the given id.
func (s *Store) DeleteScheduleItem(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.scheduleItems[id]; !ok {
		return false
	}
	delete(s.scheduleItems, id)
	return true
}
