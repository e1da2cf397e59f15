package events

import (
	"github.com/KirkDiggler/zodiac-skill-engine/internal/skill"
)

// EventType represents the type of resolution event
type EventType string

// Event is the base interface for all resolution events
type Event interface {
	GetType() EventType
	GetGameID() string
	IsCancelled() bool
	Cancel()
}

// BaseEvent provides common implementation for all events
type BaseEvent struct {
	Type      EventType
	GameID    string
	Cancelled bool
}

func (e *BaseEvent) GetType() EventType { return e.Type }
func (e *BaseEvent) GetGameID() string  { return e.GameID }
func (e *BaseEvent) IsCancelled() bool  { return e.Cancelled }
func (e *BaseEvent) Cancel()            { e.Cancelled = true }

// SkillUsedEvent carries every result of one skill use in dispatch order
type SkillUsedEvent struct {
	BaseEvent
	UseID    string
	CasterID string
	SkillID  string
	Results  []*skill.Result
}

// EffectResolvedEvent carries one result, including its presentation hints
type EffectResolvedEvent struct {
	BaseEvent
	UseID    string
	CasterID string
	Result   *skill.Result
}

// ComboFiredEvent is emitted once per combo that fired during a use
type ComboFiredEvent struct {
	BaseEvent
	UseID    string
	CasterID string
	ComboID  string
}

// CascadeFiredEvent is emitted once per cascade bonus of a use
type CascadeFiredEvent struct {
	BaseEvent
	UseID     string
	CasterID  string
	CascadeID string
}

// TurnEndedEvent is emitted after a turn boundary
type TurnEndedEvent struct {
	BaseEvent
	Turn       int
	Expired    map[string][]string
	RulesEnded []string
}
