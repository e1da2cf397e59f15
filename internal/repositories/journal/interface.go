package journal

//go:generate mockgen -destination=mock/mock.go -package=mockjournal -source=interface.go

import (
	"context"
	"time"
)

// Entry is one effect result as recorded for a game's state-change log
type Entry struct {
	ID          string    `json:"id"`
	GameID      string    `json:"game_id"`
	UseID       string    `json:"use_id"`
	CasterID    string    `json:"caster_id"`
	SkillID     string    `json:"skill_id"`
	EffectID    string    `json:"effect_id"`
	Kind        string    `json:"kind"`
	Source      string    `json:"source"`
	OriginID    string    `json:"origin_id,omitempty"`
	TargetIDs   []string  `json:"target_ids"`
	Value       float64   `json:"value"`
	Success     bool      `json:"success"`
	Critical    bool      `json:"critical"`
	Description string    `json:"description"`
	Turn        int       `json:"turn"`
	CreatedAt   time.Time `json:"created_at"`
}

// Repository appends and reads a game's journal
type Repository interface {
	// Append records entries at the end of their game's journal
	Append(ctx context.Context, gameID string, entries ...*Entry) error

	// List returns a game's journal in insertion order
	List(ctx context.Context, gameID string) ([]*Entry, error)
}
