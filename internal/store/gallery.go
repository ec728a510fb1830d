package store

import (
	"sort"
	"time"

	"github.com/kimjuyoung1127/PuppyVill/internal/models"
)

// GetGalleryImage returns the gallery image with the given id.
func (s *Store) GetGalleryImage(id int) (models.GalleryImage, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	img, ok := s.galleryImages[id]
	return img, ok
}

// GetAllGalleryImages returns all gallery images newest first by DateAdded.
func (s *Store) GetAllGalleryImages() []models.GalleryImage {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.GalleryImage, 0, len(s.galleryImages))
	for _, img := range s.galleryImages {
		out = append(out, img)
	}
	sortGalleryImagesByDate(out)
	return out
}

// GetGalleryImagesByCategory returns the images whose category matches
// exactly, newest first by DateAdded.
func (s *Store) GetGalleryImagesByCategory(category string) []models.GalleryImage {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.GalleryImage, 0, len(s.galleryImages))
	for _, img := range s.galleryImages {
		if img.Category == category {
			out = append(out, img)
		}
	}
	sortGalleryImagesByDate(out)
	return out
}

func sortGalleryImagesByDate(images []models.GalleryImage) {
	sort.Slice(images, func(i, j int) bool {
		if !images[i].DateAdded.Equal(images[j].DateAdded) {
			return images[i].DateAdded.After(images[j].DateAdded)
		}
		return images[i].ID > images[j].ID
	})
}

// CreateGalleryImage stores a new gallery image. Category defaults to
// "general" and DateAdded to the current time when the payload omits them.
func (s *Store) CreateGalleryImage(in models.InsertGalleryImage) models.GalleryImage {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()

	category := in.Category
	if category == "" {
		category = "general"
	}
	dateAdded := now
	if in.DateAdded != nil {
		dateAdded = *in.DateAdded
	}

	img := models.GalleryImage{
		ID:          s.nextGalleryImageID,
		Title:       in.Title,
		Description: in.Description,
		ImageURL:    in.ImageURL,
		Category:    category,
		Tags:        in.Tags,
		DateAdded:   dateAdded,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.nextGalleryImageID++
	s.galleryImages[img.ID] = img
	return img
}

// UpdateGalleryImage applies the non-nil fields of in to the stored image
// and re-stamps UpdatedAt.
func (s *Store) UpdateGalleryImage(id int, in models.GalleryImageUpdate) (models.GalleryImage, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	img, ok := s.galleryImages[id]
	if !ok {
		return models.GalleryImage{}, false
	}

	if in.Title != nil {
		img.Title = *in.Title
	}
	if in.Description != nil {
		img.Description = *in.Description
	}
	if in.ImageURL != nil {
		img.ImageURL = *in.ImageURL
	}
	if in.Category != nil {
		img.Category = *in.Category
	}
	if in.Tags != nil {
		img.Tags = *in.Tags
	}
	if in.DateAdded != nil {
		img.DateAdded = *in.DateAdded
	}
	img.UpdatedAt = time.Now()

	s.galleryImages[id] = img
	return img, true
}

// DeleteGalleryImage removes the gallery image with the given id.
func (s *Store) DeleteGalleryImage(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.galleryImages[id]; !ok {
		return false
	}
	delete(s.galleryImages, id)
	return true
}
