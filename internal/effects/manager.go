package effects

import (
	"sync"

	"github.com/KirkDiggler/zodiac-skill-engine/internal/zodiac"
)

// Manager holds the status effects of one player in insertion order
type Manager struct {
	mu      sync.RWMutex
	effects []*StatusEffect
}

// NewManager creates an empty manager
func NewManager() *Manager {
	return &Manager{}
}

// AddEffect adds a status effect, applying its stacking rule against
// effects with the same name and source
func (m *Manager) AddEffect(effect *StatusEffect) error {
	if err := effect.Validate(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for i, existing := range m.effects {
		if existing.Name != effect.Name || existing.Source != effect.Source {
			continue
		}
		switch effect.StackingRule {
		case StackingReplace, "":
			m.effects = append(m.effects[:i], m.effects[i+1:]...)
			m.effects = append(m.effects, effect)
			return nil
		case StackingTakeHighest:
			if existing.Magnitude >= effect.Magnitude {
				return nil
			}
			m.effects[i] = effect
			return nil
		case StackingRefresh:
			if effect.RemainingTurns > existing.RemainingTurns {
				existing.RemainingTurns = effect.RemainingTurns
			}
			return nil
		case StackingStack:
			// independent instances
		}
	}

	m.effects = append(m.effects, effect)
	return nil
}

// RemoveEffect removes a status effect by ID
func (m *Manager) RemoveEffect(id string) {
	m.RemoveWhere(func(e *StatusEffect) bool { return e.ID == id })
}

// RemoveWhere drops every effect matching pred and returns how many were removed
func (m *Manager) RemoveWhere(pred func(*StatusEffect) bool) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	kept := m.effects[:0]
	removed := 0
	for _, e := range m.effects {
		if pred(e) {
			removed++
			continue
		}
		kept = append(kept, e)
	}
	m.effects = kept
	return removed
}

// GetActiveEffects returns a copy of the effect list
func (m *Manager) GetActiveEffects() []*StatusEffect {
	m.mu.RLock()
	defer m.mu.RUnlock()

	active := make([]*StatusEffect, 0, len(m.effects))
	for _, e := range m.effects {
		if !e.IsExpired() {
			active = append(active, e)
		}
	}
	return active
}

// Has reports whether an effect of kind is active
func (m *Manager) Has(kind Kind) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, e := range m.effects {
		if e.Kind == kind && !e.IsExpired() {
			return true
		}
	}
	return false
}

// Sum adds the magnitudes of active effects of kind that cover damage
func (m *Manager) Sum(kind Kind, damage zodiac.DamageKind) float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()

	total := 0.0
	for _, e := range m.effects {
		if e.Kind == kind && !e.IsExpired() && e.AppliesTo(damage) {
			total += e.Magnitude
		}
	}
	return total
}

// Len returns the number of tracked effects
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.effects)
}

// ProcessTurnEnd counts every timed effect down by one turn and returns
// the effects that expired
func (m *Manager) ProcessTurnEnd() []*StatusEffect {
	m.mu.Lock()
	defer m.mu.Unlock()

	var expired []*StatusEffect
	kept := m.effects[:0]
	for _, e := range m.effects {
		if !e.Permanent {
			e.RemainingTurns--
		}
		if e.IsExpired() {
			expired = append(expired, e)
			continue
		}
		kept = append(kept, e)
	}
	m.effects = kept
	return expired
}
