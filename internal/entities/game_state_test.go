package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/zodiac-skill-engine/internal/zodiac"
)

func TestBoard_Wrap(t *testing.T) {
	board := NewBoard(40)

	tests := []struct {
		in, want int
	}{
		{0, 0},
		{39, 39},
		{40, 0},
		{43, 3},
		{-1, 39},
		{-81, 39},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, board.Wrap(tt.in), "wrap(%d)", tt.in)
	}
}

func TestBoard_Unclaimed(t *testing.T) {
	board := NewBoard(4)
	board.Cells[1].OwnerID = "p1"
	board.Cells[3].OwnerID = "p2"

	assert.Equal(t, []int{0, 2}, board.Unclaimed())
	assert.Equal(t, 2, board.Cell(6).Index)
}

func TestPlayer_Debit(t *testing.T) {
	p := NewPlayer("p1", "Ada", zodiac.SignRat)
	p.Money = 300

	assert.Equal(t, 300, p.Debit(500))
	assert.Equal(t, 0, p.Money)
	assert.Equal(t, 0, p.Debit(10))
	assert.Equal(t, 0, p.Debit(-5))

	p.Credit(50)
	p.Credit(-50)
	assert.Equal(t, 50, p.Money)
}

func TestPlayer_Properties(t *testing.T) {
	p := NewPlayer("p1", "Ada", zodiac.SignOx)
	p.AddProperty(3)
	p.AddProperty(3)
	p.AddProperty(7)

	assert.Equal(t, []int{3, 7}, p.Properties)
	assert.True(t, p.RemoveProperty(3))
	assert.False(t, p.RemoveProperty(3))
	assert.Equal(t, []int{7}, p.Properties)
}

func TestGameState_Lookup(t *testing.T) {
	a := NewPlayer("a", "A", zodiac.SignRat)
	b := NewPlayer("b", "B", zodiac.SignOx)
	game := NewGameState("g1", 40, a, b)

	got, ok := game.Player("b")
	require.True(t, ok)
	assert.Same(t, b, got)

	_, ok = game.Player("zzz")
	assert.False(t, ok)

	others := game.Others("a")
	require.Len(t, others, 1)
	assert.Equal(t, "b", others[0].ID)
}

func TestGameState_TickRules(t *testing.T) {
	game := NewGameState("g1", 10)
	game.Rules["double_rent"] = 2
	game.Rules["no_tax"] = 1

	ended := game.TickRules()
	assert.Equal(t, []string{"no_tax"}, ended)
	assert.Equal(t, 1, game.Rules["double_rent"])
}
