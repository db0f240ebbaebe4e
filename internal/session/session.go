// Package session holds the operator's authenticated session: the
// bearer token and the cached profile returned by OTP verification.
// The two are always read and written together; a session counts as
// authenticated only when both are present.
package session

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/quickbites/admin-cli/internal/config"
	"github.com/quickbites/admin-cli/internal/models"
)

// Store provides read/write access to the current session. Commands
// receive a Store explicitly rather than reaching for package state.
type Store interface {
	Token() string
	User() *models.User
	Authenticated() bool
	Set(token string, user models.User) error
	Clear() error
}

// FileStore persists the session through the application config file.
type FileStore struct {
	mu    sync.Mutex
	token string
	user  *models.User
}

// NewFileStore restores a session from the loaded configuration. A
// token without a profile (or the reverse) is treated as no session.
func NewFileStore() *FileStore {
	s := &FileStore{}

	cfg := config.Get()
	if cfg.Auth.Token == "" || cfg.Auth.User == "" {
		return s
	}

	var user models.User
	if err := json.Unmarshal([]byte(cfg.Auth.User), &user); err != nil {
		return s
	}

	s.token = cfg.Auth.Token
	s.user = &user
	return s
}

// Token returns the current bearer token, or "" when logged out
func (s *FileStore) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// User returns the cached operator profile, or nil when logged out
func (s *FileStore) User() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// Authenticated reports whether both token and profile are held
func (s *FileStore) Authenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token != "" && s.user != nil
}

// Set stores a new session. The token and profile are persisted first;
// in-memory state is only replaced once the write succeeds, so a failed
// save leaves the previous session observable and intact.
func (s *FileStore) Set(token string, user models.User) error {
	if token == "" {
		return fmt.Errorf("session token is empty")
	}

	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("could not serialize user profile: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := config.UpdateAuth(token, string(data)); err != nil {
		return fmt.Errorf("could not save session: %w", err)
	}

	s.token = token
	s.user = &user
	return nil
}

// Clear removes the session from memory and from the config file
func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := config.ClearAuth(); err != nil {
		return fmt.Errorf("could not clear session: %w", err)
	}

	s.token = ""
	s.user = nil
	return nil
}
