package store

import (
	"sort"
	"time"

	"github.com/kimjuyoung1127/PuppyVill/internal/models"
)

// GetCafeItem returns the cafe item with the given id.
func (s *Store) GetCafeItem(id int) (models.CafeItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.cafeItems[id]
	return item, ok
}

// GetAllCafeItems returns the cafe menu ascending by Order, then id.
func (s *Store) GetAllCafeItems() []models.CafeItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.CafeItem, 0, len(s.cafeItems))
	for _, item := range s.cafeItems {
		out = append(out, item)
	}
	sortCafeItemsByOrder(out)
	return out
}

// GetCafeItemsByCategory returns the cafe items whose category matches
// exactly, ascending by Order, then id.
func (s *Store) GetCafeItemsByCategory(category string) []models.CafeItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.CafeItem, 0, len(s.cafeItems))
	for _, item := range s.cafeItems {
		if item.Category == category {
			out = append(out, item)
		}
	}
	sortCafeItemsByOrder(out)
	return out
}

func sortCafeItemsByOrder(items []models.CafeItem) {
	sort.Slice(items, func(i, j int) bool {
		if items[i].Order != items[j].Order {
			return items[i].Order < items[j].Order
		}
		return items[i].ID < items[j].ID
	})
}

// CreateCafeItem stores a new cafe item. Category defaults to "drinks" when
// the payload omits it.
func (s *Store) CreateCafeItem(in models.InsertCafeItem) models.CafeItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	category := in.Category
	if category == "" {
		category = "drinks"
	}

	now := time.Now()
	item := models.CafeItem{
		ID:          s.nextCafeItemID,
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Category:    category,
		ImageURL:    in.ImageURL,
		IsPopular:   in.IsPopular,
		Order:       in.Order,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.nextCafeItemID++
	s.cafeItems[item.ID] = item
	return item
}

// UpdateCafeItem applies the non-nil fields of in to the stored item and
// re-stamps UpdatedAt.
func (s *Store) UpdateCafeItem(id int, in models.CafeItemUpdate) (models.CafeItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.cafeItems[id]
	if !ok {
		return models.CafeItem{}, false
	}

	if in.Name != nil {
		item.Name = *in.Name
	}
	if in.Description != nil {
		item.Description = *in.Description
	}
	if in.Price != nil {
		item.Price = *in.Price
	}
	if in.Category != nil {
		item.Category = *in.Category
	}
	if in.ImageURL != nil {
		item.ImageURL = *in.ImageURL
	}
	if in.IsPopular != nil {
		item.IsPopular = *in.IsPopular
	}
	if in.Order != nil {
		item.Order = *in.Order
	}
	item.UpdatedAt = time.Now()

	s.cafeItems[id] = item
	return item, true
}

// DeleteCafeItem removes the cafe item with the given id.
func (s *Store) DeleteCafeItem(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.cafeItems[id]; !ok {
		return false
	}
	delete(s.cafeItems, id)
	return true
}
