package testutils

import (
	"fmt"

	"github.com/KirkDiggler/zodiac-skill-engine/internal/entities"
	"github.com/KirkDiggler/zodiac-skill-engine/internal/zodiac"
)

// TestBoardLength is the board size used by fixtures
const TestBoardLength = 40

// CreateTestPlayer creates a level 1 player with money
func CreateTestPlayer(id string, sign zodiac.Sign, money int) *entities.Player {
	p := entities.NewPlayer(id, "Player "+id, sign)
	p.Money = money
	return p
}

// CreateTestGame creates a game on a standard board
func CreateTestGame(id string, players ...*entities.Player) *entities.GameState {
	return entities.NewGameState(id, TestBoardLength, players...)
}

// CreateNeutralGame creates a game of sign-less players p1..pN holding
// money each. Values cast by sign-less players carry no zodiac terms.
func CreateNeutralGame(id string, money int, n int) *entities.GameState {
	players := make([]*entities.Player, 0, n)
	for i := 1; i <= n; i++ {
		players = append(players, CreateTestPlayer(fmt.Sprintf("p%d", i), zodiac.SignNone, money))
	}
	return CreateTestGame(id, players...)
}
