package session

import (
	"sync"

	"github.com/meshpay/meshpay-client/internal/domain"
)

// MemStore is an in-process SessionStore for tests.
type MemStore struct {
	mu   sync.Mutex
	user *domain.User
}

func NewMemStore() *MemStore {
	return &MemStore{}
}

func (s *MemStore) SetUser(user domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = &user
	return nil
}

func (s *MemStore) GetUser() *domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

func (s *MemStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
	return nil
}

func (s *MemStore) IsAuthenticated() bool {
	return s.GetUser() != nil
}

func (s *MemStore) IsAdmin() bool {
	return isAdmin(s.GetUser())
}
