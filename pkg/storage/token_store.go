package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// TokenStore persists the console session tokens on disk so a session
// survives a gateway restart. Reads go to the file on every call rather
// than an in-memory copy: a login or logout takes effect on the very next
// upstream request with no propagation step.
type TokenStore struct {
	path string
}

type storedTokens struct {
	Access  string `json:"access_token"`
	Refresh string `json:"refresh_token"`
}

// NewTokenStore ensures the parent directory exists and returns a handle.
func NewTokenStore(path string) (*TokenStore, error) {
	if path == "" {
		path = "./.session/tokens.json"
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("create session directory: %w", err)
	}
	return &TokenStore{path: path}, nil
}

// Access returns the persisted access token, or "" when no session exists.
// Any read or decode failure is treated as an absent token.
func (s *TokenStore) Access() string {
	tokens, err := s.read()
	if err != nil {
		return ""
	}
	return tokens.Access
}

// Refresh returns the persisted refresh token. It is written at login but
// the gateway itself never consumes it.
func (s *TokenStore) Refresh() string {
	tokens, err := s.read()
	if err != nil {
		return ""
	}
	return tokens.Refresh
}

// Save persists both tokens atomically via a rename.
func (s *TokenStore) Save(access, refresh string) error {
	data, err := json.Marshal(storedTokens{Access: access, Refresh: refresh})
	if err != nil {
		return fmt.Errorf("encode session tokens: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write session tokens: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("persist session tokens: %w", err)
	}
	return nil
}

// Clear removes the persisted tokens. A missing file is not an error.
func (s *TokenStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("clear session tokens: %w", err)
	}
	return nil
}

func (s *TokenStore) read() (storedTokens, error) {
	var tokens storedTokens
	data, err := os.ReadFile(s.path)
	if err != nil {
		return tokens, err
	}
	if err := json.Unmarshal(data, &tokens); err != nil {
		return storedTokens{}, err
	}
	return tokens, nil
}
