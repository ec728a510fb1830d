package store

import (
	"sort"
	"time"

	"github.com/kimjuyoung1127/PuppyVill/internal/models"
)

// GetAdmissionRequest returns the admission request with the given id.
func (s *Store) GetAdmissionRequest(id int) (models.AdmissionRequest, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	req, ok := s.admissionRequests[id]
	return req, ok
}

// GetAllAdmissionRequests returns all requests newest first by CreatedAt.
func (s *Store) GetAllAdmissionRequests() []models.AdmissionRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.AdmissionRequest, 0, len(s.admissionRequests))
	for _, req := range s.admissionRequests {
		out = append(out, req)
	}
	sortAdmissionRequestsByCreated(out)
	return out
}

// GetAdmissionRequestsByStatus returns the requests with exactly the given
// status, newest first by CreatedAt.
func (s *Store) GetAdmissionRequestsByStatus(status string) []models.AdmissionRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.AdmissionRequest, 0, len(s.admissionRequests))
	for _, req := range s.admissionRequests {
		if req.Status == status {
			out = append(out, req)
		}
	}
	sortAdmissionRequestsByCreated(out)
	return out
}

func sortAdmissionRequestsByCreated(reqs []models.AdmissionRequest) {
	sort.Slice(reqs, func(i, j int) bool {
		if !reqs[i].CreatedAt.Equal(reqs[j].CreatedAt) {
			return reqs[i].CreatedAt.After(reqs[j].CreatedAt)
		}
		return reqs[i].ID > reqs[j].ID
	})
}

// CreateAdmissionRequest stores a new request. Status is always pending on
// create regardless of the payload; RequestType defaults to "tour".
func (s *Store) CreateAdmissionRequest(in models.InsertAdmissionRequest) models.AdmissionRequest {
	s.mu.Lock()
	defer s.mu.Unlock()

	requestType := in.RequestType
	if requestType == "" {
		requestType = "tour"
	}

	now := time.Now()
	req := models.AdmissionRequest{
		ID:            s.nextAdmissionRequestID,
		OwnerName:     in.OwnerName,
		DogName:       in.DogName,
		Email:         in.Email,
		Phone:         in.Phone,
		RequestType:   requestType,
		PreferredDate: in.PreferredDate,
		PreferredTime: in.PreferredTime,
		Message:       in.Message,
		Status:        models.AdmissionStatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	s.nextAdmissionRequestID++
	s.admissionRequests[req.ID] = req
	return req
}

// UpdateAdmissionRequest applies the non-nil fields of in to the stored
// request and re-stamps UpdatedAt. Status transitions are not restricted.
func (s *Store) UpdateAdmissionRequest(id int, in models.AdmissionRequestUpdate) (models.AdmissionRequest, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	req, ok := s.admissionRequests[id]
	if !ok {
		return models.AdmissionRequest{}, false
	}

	if in.OwnerName != nil {
		req.OwnerName = *in.OwnerName
	}
	if in.DogName != nil {
		req.DogName = *in.DogName
	}
	if in.Email != nil {
		req.Email = *in.Email
	}
	if in.Phone != nil {
		req.Phone = *in.Phone
	}
	if in.RequestType != nil {
		req.RequestType = *in.RequestType
	}
	if in.PreferredDate != nil {
		req.PreferredDate = in.PreferredDate
	}
	if in.PreferredTime != nil {
		req.PreferredTime = *in.PreferredTime
	}
	if in.Message != nil {
		req.Message = *in.Message
	}
	if in.Status != nil {
		req.Status = *in.Status
	}
	req.UpdatedAt = time.Now()

	s.admissionRequests[id] = req
	return req, true
}

// DeleteAdmissionRequest removes the admission request with the given id.
func (s *Store) DeleteAdmissionRequest(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.admissionRequests[id]; !ok {
		return false
	}
	delete(s.admissionRequests, id)
	return true
}
