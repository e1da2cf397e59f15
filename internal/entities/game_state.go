package entities

import (
	"github.com/KirkDiggler/zodiac-skill-engine/internal/zodiac"
)

// GameState is the shared mutable record of one match.
// The engine mutates it in place; callers must not run two resolutions
// against the same GameState at once.
type GameState struct {
	ID            string
	Players       []*Player // turn order
	Board         *Board
	Turn          int
	Season        zodiac.Season
	TimeOfDay     zodiac.TimeOfDay
	Weather       zodiac.Weather
	ActiveElement zodiac.Element
	PendingEvents []string
	Rules         map[string]int // active rule id to remaining turns
}

// NewGameState creates a game on a fresh board
func NewGameState(id string, boardLength int, players ...*Player) *GameState {
	return &GameState{
		ID:      id,
		Players: players,
		Board:   NewBoard(boardLength),
		Rules:   make(map[string]int),
	}
}

// Player looks a player up by id
func (g *GameState) Player(id string) (*Player, bool) {
	for _, p := range g.Players {
		if p.ID == id {
			return p, true
		}
	}
	return nil, false
}

// Others returns every player except id, in turn order
func (g *GameState) Others(id string) []*Player {
	others := make([]*Player, 0, len(g.Players))
	for _, p := range g.Players {
		if p.ID != id {
			others = append(others, p)
		}
	}
	return others
}

// TotalMoney sums every balance in the game
func (g *GameState) TotalMoney() int {
	total := 0
	for _, p := range g.Players {
		total += p.Money
	}
	return total
}

// TickRules counts rule durations down and drops finished rules
func (g *GameState) TickRules() []string {
	var ended []string
	for id, turns := range g.Rules {
		turns--
		if turns <= 0 {
			delete(g.Rules, id)
			ended = append(ended, id)
			continue
		}
		g.Rules[id] = turns
	}
	return ended
}
