// Package localstore keeps the anonymous user's cart in process memory, with
// optional persistence to a JSON file across restarts. It is the only cart
// state that exists without a signed-in session; it never syncs anywhere.
package localstore

import (
	"encoding/json"
	"os"
	"sync"

	"github.com/rs/zerolog"

	"storefront/internal/model"
)

// Store is an ordered product-id to cart-line mapping. Insertion order is
// preserved so the cart displays in the order items were added.
type Store struct {
	mu     sync.Mutex
	order  []string
	lines  map[string]model.CartLine
	path   string
	logger zerolog.Logger
}

// Open creates a store, loading previously persisted lines when path is
// non-empty. A missing or corrupt file starts an empty cart, never an error.
func Open(path string, logger zerolog.Logger) *Store {
	s := &Store{
		lines:  make(map[string]model.CartLine),
		path:   path,
		logger: logger.With().Str("component", "localstore").Logger(),
	}
	if path == "" {
		return s
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn().Err(err).Str("path", path).Msg("failed to read cart file")
		}
		return s
	}

	var lines []model.CartLine
	if err := json.Unmarshal(data, &lines); err != nil {
		s.logger.Warn().Err(err).Str("path", path).Msg("discarding corrupt cart file")
		return s
	}

	for _, line := range lines {
		if line.ID == "" || line.Quantity < 1 {
			continue
		}
		s.order = append(s.order, line.ID)
		s.lines[line.ID] = line
	}
	return s
}

// Lines returns the cart contents in insertion order.
func (s *Store) Lines() []model.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := make([]model.CartLine, 0, len(s.order))
	for _, id := range s.order {
		lines = append(lines, s.lines[id])
	}
	return lines
}

// Get returns the line for a product id.
func (s *Store) Get(id string) (model.CartLine, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	line, ok := s.lines[id]
	return line, ok
}

// Upsert inserts or replaces a line. Quantity is clamped to at least 1.
func (s *Store) Upsert(line model.CartLine) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if line.Quantity < 1 {
		line.Quantity = 1
	}
	if _, ok := s.lines[line.ID]; !ok {
		s.order = append(s.order, line.ID)
	}
	s.lines[line.ID] = line
	s.persist()
}

// Remove deletes a single line. Removing an absent id is a no-op.
func (s *Store) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.lines[id]; !ok {
		return
	}
	delete(s.lines, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	s.persist()
}

// Clear empties the cart.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.order = nil
	s.lines = make(map[string]model.CartLine)
	s.persist()
}

// Len returns the number of lines.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.order)
}

// persist writes the current lines to disk. Persistence failures are logged
// and swallowed; the in-memory cart stays usable. Callers hold s.mu.
func (s *Store) persist() {
	if s.path == "" {
		return
	}

	lines := make([]model.CartLine, 0, len(s.order))
	for _, id := range s.order {
		lines = append(lines, s.lines[id])
	}

	data, err := json.Marshal(lines)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to encode cart")
		return
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		s.logger.Warn().Err(err).Str("path", s.path).Msg("failed to persist cart")
	}
}
