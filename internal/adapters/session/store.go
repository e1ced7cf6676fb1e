// Package session persists the signed-in user record, the client's
// stand-in for browser local storage.
package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/meshpay/meshpay-client/internal/domain"
)

// FileStore keeps the session as a single JSON file, written and removed
// wholesale. A missing or malformed file degrades to "no session".
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) SetUser(user domain.User) error {
	rec := domain.Session{User: user, SavedAt: time.Now().UTC()}
	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o600)
}

func (s *FileStore) GetUser() *domain.User {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil
	}
	return decodeUser(data)
}

func (s *FileStore) Clear() error {
	err := os.Remove(s.path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

func (s *FileStore) IsAuthenticated() bool {
	return s.GetUser() != nil
}

func (s *FileStore) IsAdmin() bool {
	return isAdmin(s.GetUser())
}

// decodeUser accepts the canonical {user, savedAt} record and, for
// tolerance, a legacy bare user record.
func decodeUser(data []byte) *domain.User {
	var rec domain.Session
	if err := json.Unmarshal(data, &rec); err == nil && rec.User != (domain.User{}) {
		return &rec.User
	}
	var u domain.User
	if err := json.Unmarshal(data, &u); err == nil && u != (domain.User{}) {
		return &u
	}
	return nil
}

func isAdmin(u *domain.User) bool {
	return u != nil && strings.Contains(u.Email, "admin")
}
