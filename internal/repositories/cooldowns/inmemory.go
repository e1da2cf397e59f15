package cooldowns

import (
	"context"
	"maps"
	"sync"

	zerr "github.com/KirkDiggler/zodiac-skill-engine/internal/errors"
)

// InMemoryRepository keeps cooldowns in process memory
type InMemoryRepository struct {
	mu        sync.RWMutex
	cooldowns map[string]map[string]int
}

// NewInMemoryRepository creates an empty in-memory repository
func NewInMemoryRepository() Repository {
	return &InMemoryRepository{
		cooldowns: make(map[string]map[string]int),
	}
}

// Get returns the remaining turns of comboID for casterID
func (r *InMemoryRepository) Get(_ context.Context, casterID, comboID string) (int, error) {
	if casterID == "" || comboID == "" {
		return 0, zerr.InvalidArgument("caster ID and combo ID are required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.cooldowns[casterID][comboID], nil
}

// Set stores the remaining turns of comboID for casterID
func (r *InMemoryRepository) Set(_ context.Context, casterID, comboID string, turns int) error {
	if casterID == "" || comboID == "" {
		return zerr.InvalidArgument("caster ID and combo ID are required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if turns <= 0 {
		delete(r.cooldowns[casterID], comboID)
		return nil
	}
	if r.cooldowns[casterID] == nil {
		r.cooldowns[casterID] = make(map[string]int)
	}
	r.cooldowns[casterID][comboID] = turns
	return nil
}

// List returns a copy of the caster's cooldowns
func (r *InMemoryRepository) List(_ context.Context, casterID string) (map[string]int, error) {
	if casterID == "" {
		return nil, zerr.InvalidArgument("caster ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]int, len(r.cooldowns[casterID]))
	maps.Copy(out, r.cooldowns[casterID])
	return out, nil
}

// Tick counts the casters' cooldowns down and drops the finished ones
func (r *InMemoryRepository) Tick(_ context.Context, casterIDs ...string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, casterID := range casterIDs {
		for comboID, turns := range r.cooldowns[casterID] {
			if turns <= 1 {
				delete(r.cooldowns[casterID], comboID)
				continue
			}
			r.cooldowns[casterID][comboID] = turns - 1
		}
	}
	return nil
}
