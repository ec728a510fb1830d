package store

import (
	"sort"
	"time"

	"github.com/kimjuyoung1127/PuppyVill/internal/models"
)

// GetFaqItem returns the FAQ item with the given id.
func (s *Store) GetFaqItem(id int) (models.FaqItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.faqItems[id]
	return item, ok
}

// GetAllFaqItems returns all FAQ items ascending by Order, then id.
func (s *Store) GetAllFaqItems() []models.FaqItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.FaqItem, 0, len(s.faqItems))
	for _, item := range s.faqItems {
		out = append(out, item)
	}
	sortFaqItemsByOrder(out)
	return out
}

// GetFaqItemsByCategory returns the FAQ items whose category matches
// exactly, ascending by Order, then id.
func (s *Store) GetFaqItemsByCategory(category string) []models.FaqItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.FaqItem, 0, len(s.faqItems))
	for _, item := range s.faqItems {
		if item.Category == category {
			out = append(out, item)
		}
	}
	sortFaqItemsByOrder(out)
	return out
}

func sortFaqItemsByOrder(items []models.FaqItem) {
	sort.Slice(items, func(i, j int) bool {
		if items[i].Order != items[j].Order {
			return items[i].Order < items[j].Order
		}
		return items[i].ID < items[j].ID
	})
}

// CreateFaqItem stores a new FAQ item. Category defaults to "general" when
// the payload omits it.
func (s *Store) CreateFaqItem(in models.InsertFaqItem) models.FaqItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	category := in.Category
	if category == "" {
		category = "general"
	}

	now := time.Now()
	item := models.FaqItem{
		ID:        s.nextFaqItemID,
		Question:  in.Question,
		Answer:    in.Answer,
		Category:  category,
		Order:     in.Order,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.nextFaqItemID++
	s.faqItems[item.ID] = item
	return item
}

// UpdateFaqItem applies the non-nil fields of in to the stored item and
// re-stamps UpdatedAt.
func (s *Store) UpdateFaqItem(id int, in models.FaqItemUpdate) (models.FaqItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.faqItems[id]
	if !ok {
		return models.FaqItem{}, false
	}

	if in.Question != nil {
		item.Question = *in.Question
	}
	if in.Answer != nil {
		item.Answer = *in.Answer
	}
	if in.Category != nil {
		item.Category = *in.Category
	}
	if in.Order != nil {
		item.Order = *in.Order
	}
	item.UpdatedAt = time.Now()

	s.faqItems[id] = item
	return item, true
}

// DeleteFaqItem removes the FAQ item with the given id.
func (s *Store) DeleteFaqItem(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.faqItems[id]; !ok {
		return false
	}
	delete(s.faqItems, id)
	return true
}
