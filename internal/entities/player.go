package entities

import (
	"slices"

	"github.com/KirkDiggler/zodiac-skill-engine/internal/effects"
	"github.com/KirkDiggler/zodiac-skill-engine/internal/zodiac"
)

// Equipment is a held item that adds a flat percentage to outgoing values
type Equipment struct {
	Name  string  `json:"name"`
	Bonus float64 `json:"bonus"`
}

// DiceState is what skills have done to a player's next roll
type DiceState struct {
	Rerolls    int  `json:"rerolls"`
	Modifier   int  `json:"modifier"`
	Controlled int  `json:"controlled"` // forced face for the next roll, 0 when free
	Double     bool `json:"double"`
}

// Player is the live record the engine reads and mutates
type Player struct {
	ID             string
	Name           string
	Zodiac         zodiac.Sign
	Level          int
	Money          int
	Position       int
	Armor          int
	Properties     []int // owned cell indices
	Equipment      []Equipment
	SkillUsage     map[string]int
	SkillCooldowns map[string]int
	Effects        *effects.Manager
	Dice           DiceState
	ExtraTurns     int
	SkippedTurns   int
}

// NewPlayer creates a level 1 player with initialized collections
func NewPlayer(id, name string, sign zodiac.Sign) *Player {
	return &Player{
		ID:             id,
		Name:           name,
		Zodiac:         sign,
		Level:          1,
		SkillUsage:     make(map[string]int),
		SkillCooldowns: make(map[string]int),
		Effects:        effects.NewManager(),
	}
}

// Credit adds amount to the balance
func (p *Player) Credit(amount int) {
	if amount > 0 {
		p.Money += amount
	}
}

// Debit removes up to amount from the balance and returns what was taken.
// The balance never goes below zero.
func (p *Player) Debit(amount int) int {
	if amount <= 0 {
		return 0
	}
	if amount > p.Money {
		amount = p.Money
	}
	p.Money -= amount
	return amount
}

// OwnsProperty reports whether the player owns the cell at index
func (p *Player) OwnsProperty(index int) bool {
	return slices.Contains(p.Properties, index)
}

// AddProperty records ownership of the cell at index
func (p *Player) AddProperty(index int) {
	if !p.OwnsProperty(index) {
		p.Properties = append(p.Properties, index)
	}
}

// RemoveProperty drops ownership of the cell at index
func (p *Player) RemoveProperty(index int) bool {
	i := slices.Index(p.Properties, index)
	if i < 0 {
		return false
	}
	p.Properties = slices.Delete(p.Properties, i, i+1)
	return true
}

// EquipmentBonus sums the bonuses of held equipment
func (p *Player) EquipmentBonus() float64 {
	total := 0.0
	for _, eq := range p.Equipment {
		total += eq.Bonus
	}
	return total
}

// IsImmune reports whether an immunity status is active
func (p *Player) IsImmune() bool {
	return p.Effects != nil && p.Effects.Has(effects.KindImmunity)
}
