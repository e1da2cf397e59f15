package dispatch

import (
	"sync"

	"github.com/KirkDiggler/zodiac-skill-engine/internal/skill"
)

// HandlerRegistry maps effect families to handlers
type HandlerRegistry struct {
	mu       sync.RWMutex
	handlers map[skill.Family]Handler
}

// NewHandlerRegistry creates an empty registry
func NewHandlerRegistry() *HandlerRegistry {
	return &HandlerRegistry{
		handlers: make(map[skill.Family]Handler),
	}
}

// Register adds a handler, replacing any handler of the same family
func (r *HandlerRegistry) Register(handler Handler) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.handlers[handler.Family()] = handler
}

// Get returns the handler for kind
func (r *HandlerRegistry) Get(kind skill.Kind) (Handler, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	handler, exists := r.handlers[kind.Family()]
	return handler, exists
}

// List returns the registered families
func (r *HandlerRegistry) List() []skill.Family {
	r.mu.RLock()
	defer r.mu.RUnlock()

	families := make([]skill.Family, 0, len(r.handlers))
	for family := range r.handlers {
		families = append(families, family)
	}
	return families
}
