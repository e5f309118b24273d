// Package auth persists the bearer token issued by the backend and validates
// its expiry claim. It is the single source of truth for the credential
// across process restarts.
package auth

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// TokenStore is the durable home of the bearer token.
type TokenStore interface {
	// Get reads the persisted token. The boolean is false when no token has
	// been set or it was cleared.
	Get() (string, bool)

	// Set overwrites the persisted token unconditionally.
	Set(token string) error

	// Clear removes the persisted token. Clearing an absent token is not an
	// error.
	Clear() error
}

// FileTokenStore persists the token in a 0600 file, by default under the
// user's ~/.plx directory.
type FileTokenStore struct {
	path string
}

// NewFileTokenStore creates a FileTokenStore at the given path.
func NewFileTokenStore(path string) *FileTokenStore {
	return &FileTokenStore{path: path}
}

// Get reads the token file. Any read failure is treated as an absent token.
func (s *FileTokenStore) Get() (string, bool) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return "", false
	}

	token := strings.TrimSpace(string(data))
	if token == "" {
		return "", false
	}

	return token, true
}

// Set writes the token, creating parent directories as needed.
func (s *FileTokenStore) Set(token string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create token directory: %w", err)
	}

	if err := os.WriteFile(s.path, []byte(token), 0600); err != nil {
		return fmt.Errorf("failed to save token: %w", err)
	}

	return nil
}

// Clear removes the token file. Idempotent.
func (s *FileTokenStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to clear token: %w", err)
	}
	return nil
}
