package store

import (
	"sort"
	"time"

	"github.com/kimjuyoung1127/PuppyVill/internal/models"
)

// GetReview returns the review with the given id.
func (s *Store) GetReview(id int) (models.Review, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.reviews[id]
	return r, ok
}

// GetAllReviews returns all reviews newest first by CreatedAt.
func (s *Store) GetAllReviews() []models.Review {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Review, 0, len(s.reviews))
	for _, r := range s.reviews {
		out = append(out, r)
	}
	sortReviewsByCreated(out)
	return out
}

// GetVerifiedReviews returns only the verified reviews, newest first by
// CreatedAt.
func (s *Store) GetVerifiedReviews() []models.Review {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Review, 0, len(s.reviews))
	for _, r := range s.reviews {
		if r.IsVerified {
			out = append(out, r)
		}
	}
	sortReviewsByCreated(out)
	return out
}

func sortReviewsByCreated(reviews []models.Review) {
	sort.Slice(reviews, func(i, j int) bool {
		if !reviews[i].CreatedAt.Equal(reviews[j].CreatedAt) {
			return reviews[i].CreatedAt.After(reviews[j].CreatedAt)
		}
		return reviews[i].ID > reviews[j].ID
	})
}

// CreateReview stores a new review. IsVerified is always false on create
// regardless of the payload.
func (s *Store) CreateReview(in models.InsertReview) models.Review {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	r := models.Review{
		ID:          s.nextReviewID,
		AuthorName:  in.AuthorName,
		DogName:     in.DogName,
		Content:     in.Content,
		Rating:      in.Rating,
		IsAnonymous: in.IsAnonymous,
		IsVerified:  false,
		ImageURL:    in.ImageURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.nextReviewID++
	s.reviews[r.ID] = r
	return r
}

// UpdateReview applies the non-nil fields of in to the stored review and
// re-stamps UpdatedAt. Flipping IsVerified here is how a review goes live.
func (s *Store) UpdateReview(id int, in models.ReviewUpdate) (models.Review, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.reviews[id]
	if !ok {
		return models.Review{}, false
	}

	if in.AuthorName != nil {
		r.AuthorName = *in.AuthorName
	}
	if in.DogName != nil {
		r.DogName = *in.DogName
	}
	if in.Content != nil {
		r.Content = *in.Content
	}
	if in.Rating != nil {
		r.Rating = *in.Rating
	}
	if in.IsAnonymous != nil {
		r.IsAnonymous = *in.IsAnonymous
	}
	if in.IsVerified != nil {
		r.IsVerified = *in.IsVerified
	}
	if in.ImageURL != nil {
		r.ImageURL = *in.ImageURL
	}
	r.UpdatedAt = time.Now()

	s.reviews[id] = r
	return r, true
}

// DeleteReview removes the review with the given id.
func (s *Store) DeleteReview(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.reviews[id]; !ok {
		return false
	}
	delete(s.reviews, id)
	return true
}
