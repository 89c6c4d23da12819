package session

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"storefront/internal/confirm"
)

// Store persists the auth token across restarts. An empty path keeps the
// session in memory only.
type Store struct {
	path   string
	token  string
	logger zerolog.Logger
}

// OpenStore loads the persisted token, if any. A missing or unreadable file is
// treated as a signed-out state, never an error.
func OpenStore(path string, logger zerolog.Logger) *Store {
	s := &Store{
		path:   path,
		logger: logger.With().Str("component", "session").Logger(),
	}
	if path == "" {
		return s
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn().Err(err).Str("path", path).Msg("failed to read session file")
		}
		return s
	}
	s.token = strings.TrimSpace(string(data))
	return s
}

// Current returns the session derived from the stored token.
func (s *Store) Current() Session {
	return FromToken(s.token)
}

// SignIn stores a new token.
func (s *Store) SignIn(token string) error {
	s.token = token
	return s.persist()
}

// SignOut clears the stored session after user confirmation. It reports
// whether the sign-out actually happened; a declined confirmation is a no-op.
// A persistence failure keeps the session intact so the caller can surface it.
func (s *Store) SignOut(confirmer confirm.Confirmer) (bool, error) {
	if !confirmer.Confirm("Sign out?") {
		return false, nil
	}

	previous := s.token
	s.token = ""
	if err := s.persist(); err != nil {
		s.token = previous
		return false, fmt.Errorf("failed to sign out: %w", err)
	}

	s.logger.Info().Msg("signed out")
	return true, nil
}

func (s *Store) persist() error {
	if s.path == "" {
		return nil
	}
	if s.token == "" {
		if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
			return err
		}
		return nil
	}
	return os.WriteFile(s.path, []byte(s.token), 0o600)
}
