package journal

import (
	"context"
	"sync"

	zerr "github.com/KirkDiggler/zodiac-skill-engine/internal/errors"
)

// InMemoryRepository keeps journals in process memory
type InMemoryRepository struct {
	mu      sync.RWMutex
	entries map[string][]Entry
}

// NewInMemoryRepository creates an empty in-memory journal
func NewInMemoryRepository() Repository {
	return &InMemoryRepository{
		entries: make(map[string][]Entry),
	}
}

// Append stores copies of entries
func (r *InMemoryRepository) Append(_ context.Context, gameID string, entries ...*Entry) error {
	if gameID == "" {
		return zerr.InvalidArgument("game ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, e := range entries {
		if e == nil {
			continue
		}
		r.entries[gameID] = append(r.entries[gameID], *e)
	}
	return nil
}

// List returns copies of a game's entries
func (r *InMemoryRepository) List(_ context.Context, gameID string) ([]*Entry, error) {
	if gameID == "" {
		return nil, zerr.InvalidArgument("game ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Entry, 0, len(r.entries[gameID]))
	for _, e := range r.entries[gameID] {
		entry := e
		out = append(out, &entry)
	}
	return out, nil
}
