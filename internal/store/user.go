package store

import (
	"sort"
	"time"

	"github.com/kimjuyoung1127/PuppyVill/internal/models"
)

// GetUser returns the user with the given id.
func (s *Store) GetUser(id int) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	return u, ok
}

// GetUserByUsername looks a user up by username. Usernames are unique.
func (s *Store) GetUserByUsername(username string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Username == username {
			return u, true
		}
	}
	return models.User{}, false
}

// GetAllUsers returns all users ordered by id.
func (s *Store) GetAllUsers() []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// CreateUser stores a new user. The plaintext password from the payload is
// hashed before it is kept; the role defaults to "admin".
func (s *Store) CreateUser(in models.InsertUser) models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	role := in.Role
	if role == "" {
		role = "admin"
	}

	u := models.User{
		ID:        s.nextUserID,
		Username:  in.Username,
		Password:  models.HashPassword(in.Password),
		Name:      in.Name,
		Email:     in.Email,
		Role:      role,
		CreatedAt: time.Now(),
	}
	s.nextUserID++
	s.users[u.ID] = u
	return u
}

// UpdateUser applies the non-nil fields of in to the stored user. A new
// password is hashed before it replaces the old one.
func (s *Store) UpdateUser(id int, in models.UserUpdate) (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return models.User{}, false
	}

	if in.Username != nil {
		u.Username = *in.Username
	}
	if in.Password != nil {
		u.Password = models.HashPassword(*in.Password)
	}
	if in.Name != nil {
		u.Name = *in.Name
	}
	if in.Email != nil {
		u.Email = *in.Email
	}
	if in.Role != nil {
		u.Role = *in.Role
	}

	s.users[id] = u
	return u, true
}
