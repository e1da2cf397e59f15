package skill

import (
	"context"
	"slices"

	"github.com/KirkDiggler/zodiac-skill-engine/internal/entities"
	"github.com/KirkDiggler/zodiac-skill-engine/internal/zodiac"
)

// Adjustment is an ad-hoc modifier attached to one skill use, such as a
// board event bonus. Percent is a fraction of the base value.
type Adjustment struct {
	Name    string
	Percent float64
	Flat    float64
}

// Context is the environment of one skill use. Chain and combo stages work
// on shallow copies from Derive; the crit counter and budget are shared.
type Context struct {
	Game       *entities.GameState
	Caster     *entities.Player
	Skill      *Definition
	SkillLevel int
	TargetIDs  []string

	InCombo    bool // the use itself is part of a combo sequence
	ComboBonus bool // the effect is a combo bonus
	IsChain    bool
	ChainDepth int

	Season        zodiac.Season
	TimeOfDay     zodiac.TimeOfDay
	Weather       zodiac.Weather
	ActiveElement zodiac.Element

	ConsecutiveCrits   map[string]int // keyed by caster id
	Adjustments        []Adjustment
	GuaranteedCritical bool
	Budget             *Budget
}

// NewContext builds a context from the live game environment
func NewContext(game *entities.GameState, caster *entities.Player, def *Definition, level int) *Context {
	if level < 1 {
		level = 1
	}
	c := &Context{
		Game:             game,
		Caster:           caster,
		Skill:            def,
		SkillLevel:       level,
		ConsecutiveCrits: make(map[string]int),
	}
	if game != nil {
		c.Season = game.Season
		c.TimeOfDay = game.TimeOfDay
		c.Weather = game.Weather
		c.ActiveElement = game.ActiveElement
	}
	return c
}

// Derive returns a shallow copy for a sub-resolution
func (c *Context) Derive() *Context {
	d := *c
	d.TargetIDs = slices.Clone(c.TargetIDs)
	d.Adjustments = slices.Clone(c.Adjustments)
	return &d
}

// CasterZodiac returns the caster's sign, or none
func (c *Context) CasterZodiac() zodiac.Sign {
	if c.Caster == nil {
		return zodiac.SignNone
	}
	return c.Caster.Zodiac
}

// SkillID returns the originating skill id, or empty
func (c *Context) SkillID() string {
	if c.Skill == nil {
		return ""
	}
	return c.Skill.ID
}

// Applier dispatches one effect. The dispatcher, the zodiac overlay and
// anything wrapping them satisfy it.
type Applier interface {
	Apply(ctx context.Context, effect *Effect, rctx *Context) *Result
}

// ApplierFunc adapts a function to Applier
type ApplierFunc func(ctx context.Context, effect *Effect, rctx *Context) *Result

// Apply implements Applier
func (f ApplierFunc) Apply(ctx context.Context, effect *Effect, rctx *Context) *Result {
	return f(ctx, effect, rctx)
}
