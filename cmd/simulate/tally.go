package main

import (
	"sync"

	"github.com/KirkDiggler/zodiac-skill-engine/internal/events"
)

// tally counts combo and cascade events; listeners may run from several
// games at once
type tally struct {
	mu       sync.Mutex
	combos   map[string]int
	cascades map[string]int
}

func newTally() *tally {
	return &tally{
		combos:   make(map[string]int),
		cascades: make(map[string]int),
	}
}

// subscribe registers the tally at statistics priority
func (t *tally) subscribe(bus *events.Bus) {
	listener := &events.ListenerFunc{
		ListenerID:       "simulate-tally",
		ListenerPriority: events.PriorityStatistics,
		Handle:           t.handle,
	}
	bus.Subscribe(events.EventTypeComboFired, listener)
	bus.Subscribe(events.EventTypeCascadeFired, listener)
}

func (t *tally) handle(event events.Event) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	switch e := event.(type) {
	case *events.ComboFiredEvent:
		t.combos[e.ComboID]++
	case *events.CascadeFiredEvent:
		t.cascades[e.CascadeID]++
	}
	return nil
}

func (t *tally) snapshot() (map[string]int, map[string]int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	combos := make(map[string]int, len(t.combos))
	for k, v := range t.combos {
		combos[k] = v
	}
	cascades := make(map[string]int, len(t.cascades))
	for k, v := range t.cascades {
		cascades[k] = v
	}
	return combos, cascades
}
