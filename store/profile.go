package store

import (
	"sync"

	"github.com/fastygo/todoclient/domain"
)

// Profile holds the single authenticated user's profile projection.
// No partial-field update is supported; absence of a profile is the
// logged-out/unloaded representation.
type Profile struct {
	mu   sync.RWMutex
	user *domain.UserProfile
}

// NewProfile returns an unloaded profile store.
func NewProfile() *Profile {
	return &Profile{}
}

// SetUser replaces the held profile wholesale. A nil profile marks the
// store unloaded.
func (s *Profile) SetUser(user *domain.UserProfile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if user == nil {
		s.user = nil
		return
	}
	copied := *user
	s.user = &copied
}

// User returns a copy of the held profile, or nil when unloaded.
func (s *Profile) User() *domain.UserProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	copied := *s.user
	return &copied
}

// Clear drops the held profile.
func (s *Profile) Clear() {
	s.SetUser(nil)
}
