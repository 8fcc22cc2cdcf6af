package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/dmitrijs2005/swingnotes/internal/filex"
)

var ErrNotLoggedIn = errors.New("not logged in, run 'notes login' first")

// TokenStore keeps the current identity token in a single file.
type TokenStore struct {
	path string
}

func NewTokenStore(path string) *TokenStore {
	return &TokenStore{path: path}
}

func (s *TokenStore) Save(token string) error {
	return filex.WriteSecret(s.path, []byte(token))
}

// Load returns ErrNotLoggedIn when no token has been saved.
func (s *TokenStore) Load() (string, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", ErrNotLoggedIn
		}
		return "", fmt.Errorf("read token: %w", err)
	}

	token := strings.TrimSpace(string(b))
	if token == "" {
		return "", ErrNotLoggedIn
	}
	return token, nil
}

func (s *TokenStore) Clear() error {
	return filex.RemoveIfExists(s.path)
}
