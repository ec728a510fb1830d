package store

import (
	"sort"
	"time"

	"github.com/kimjuyoung1127/PuppyVill/internal/models"
)

// GetPriceItem returns the price item with the given id.
func (s *Store) GetPriceItem(id int) (models.PriceItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.priceItems[id]
	return item, ok
}

// GetAllPriceItems returns the price table ascending by Order, then id.
func (s *Store) GetAllPriceItems() []models.PriceItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.PriceItem, 0, len(s.priceItems))
	for _, item := range s.priceItems {
		out = append(out, item)
	}
	sortPriceItemsByOrder(out)
	return out
}

// GetPriceItemsByCategory returns the price items whose category matches
// exactly, ascending by Order, then id.
func (s *Store) GetPriceItemsByCategory(category string) []models.PriceItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.PriceItem, 0, len(s.priceItems))
	for _, item := range s.priceItems {
		if item.Category == category {
			out = append(out, item)
		}
	}
	sortPriceItemsByOrder(out)
	return out
}

func sortPriceItemsByOrder(items []models.PriceItem) {
	sort.Slice(items, func(i, j int) bool {
		if items[i].Order != items[j].Order {
			return items[i].Order < items[j].Order
		}
		return items[i].ID < items[j].ID
	})
}

// CreatePriceItem stores a new price item.
func (s *Store) CreatePriceItem(in models.InsertPriceItem) models.PriceItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	item := models.PriceItem{
		ID:          s.nextPriceItemID,
		Service:     in.Service,
		Category:    in.Category,
		Description: in.Description,
		Price:       in.Price,
		Duration:    in.Duration,
		Notes:       in.Notes,
		IsPopular:   in.IsPopular,
		Order:       in.Order,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.nextPriceItemID++
	s.priceItems[item.ID] = item
	return item
}

// UpdatePriceItem applies the non-nil fields of in to the stored item and
// re-stamps UpdatedAt.
func (s *Store) UpdatePriceItem(id int, in models.PriceItemUpdate) (models.PriceItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.priceItems[id]
	if !ok {
		return models.PriceItem{}, false
	}

	if in.Service != nil {
		item.Service = *in.Service
	}
	if in.Category != nil {
		item.Category = *in.Category
	}
	if in.Description != nil {
		item.Description = *in.Description
	}
	if in.Price != nil {
		item.Price = *in.Price
	}
	if in.Duration != nil {
		item.Duration = *in.Duration
	}
	if in.Notes != nil {
		item.Notes = *in.Notes
	}
	if in.IsPopular != nil {
		item.IsPopular = *in.IsPopular
	}
	if in.Order != nil {
		item.Order = *in.Order
	}
	item.UpdatedAt = time.Now()

	s.priceItems[id] = item
	return item, true
}

// DeletePriceItem removes the price item with the given id.
func (s *Store) DeletePriceItem(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.priceItems[id]; !ok {
		return false
	}
	delete(s.priceItems, id)
	return true
}
