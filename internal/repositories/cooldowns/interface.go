package cooldowns

//go:generate mockgen -destination=mock/mock.go -package=mockcooldowns -source=interface.go

import (
	"context"
)

// Owner scopes a player's cooldowns to one game so player ids may repeat
// across games
func Owner(gameID, playerID string) string {
	if gameID == "" {
		return playerID
	}
	return gameID + ":" + playerID
}

// Repository stores combo cooldowns in elapsed turns per (caster, combo)
type Repository interface {
	// Get returns the remaining turns, 0 when the combo is ready
	Get(ctx context.Context, casterID, comboID string) (int, error)

	// Set stores the remaining turns; zero or less clears the cooldown
	Set(ctx context.Context, casterID, comboID string, turns int) error

	// List returns every active cooldown of a caster
	List(ctx context.Context, casterID string) (map[string]int, error)

	// Tick counts every cooldown of the given casters down by one turn
	Tick(ctx context.Context, casterIDs ...string) error
}
