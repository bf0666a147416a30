package store

import (
	"strings"
	"sync"

	"github.com/harmonylane/studio-admin-api/internal/models"
)

// UserStore owns the staff accounts able to sign in to the admin panel.
type UserStore struct {
	mu    sync.RWMutex
	users []models.User
}

// NewUserStore returns an empty user store.
func NewUserStore() *UserStore {
	return &UserStore{}
}

// Create registers an account. Emails are unique, compared case-insensitively.
func (s *UserStore) Create(user models.User) (models.User, error) {
	if strings.TrimSpace(user.Email) == "" {
		return models.User{}, invalidf("email is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if strings.EqualFold(s.users[i].Email, user.Email) {
			return models.User{}, invalidf("email already registered")
		}
	}
	if user.Status == "" {
		user.Status = models.StudentStatusActive
	}
	if user.JoinedDate == "" {
		user.JoinedDate = today()
	}

	s.users = append(s.users, user)
	return user, nil
}

// FindByEmail returns the account with the given email, case-insensitively.
func (s *UserStore) FindByEmail(email string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.users {
		if strings.EqualFold(s.users[i].Email, email) {
			return s.users[i], nil
		}
	}
	return models.User{}, ErrNotFound
}

// FindByID returns the account with the given id.
func (s *UserStore) FindByID(id string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.indexLocked(id)
	if idx < 0 {
		return models.User{}, ErrNotFound
	}
	return s.users[idx], nil
}

// UpdateProfile replaces the editable profile fields of an account.
func (s *UserStore) UpdateProfile(id string, profile models.UpdateProfileRequest) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexLocked(id)
	if idx < 0 {
		return models.User{}, ErrNotFound
	}

	user := &s.users[idx]
	user.Name = profile.Name
	user.Email = profile.Email
	user.Phone = profile.Phone
	user.Bio = profile.Bio
	user.Address = profile.Address
	user.MusicPreference = profile.MusicPreference
	user.MusicGoals = profile.MusicGoals
	user.AvatarURL = profile.AvatarURL

	return *user, nil
}

// UpdatePassword swaps the stored password hash of an account.
func (s *UserStore) UpdatePassword(id, passwordHash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexLocked(id)
	if idx < 0 {
		return ErrNotFound
	}
	s.users[idx].PasswordHash = passwordHash
	return nil
}

func (s *UserStore) indexLocked(id string) int {
	for i := range s.users {
		if s.users[i].ID == id {
			return i
		}
	}
	return -1
}
