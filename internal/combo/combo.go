// Package combo awards bonus effects when related effects succeed together.
package combo

import (
	"context"
	"slices"

	"go.uber.org/zap"

	"github.com/KirkDiggler/zodiac-skill-engine/internal/dice"
	"github.com/KirkDiggler/zodiac-skill-engine/internal/repositories/cooldowns"
	"github.com/KirkDiggler/zodiac-skill-engine/internal/skill"
	"github.com/KirkDiggler/zodiac-skill-engine/internal/zodiac"
)

// DefaultMinMatches is how many triggering results a combo needs
const DefaultMinMatches = 2

// Combo is a bonus granted for a batch of related successes
type Combo struct {
	ID       string
	Name     string
	Triggers []skill.Kind
	Bonus    []*skill.Effect

	// Cooldown is the number of turns before the combo can fire again
	Cooldown int

	// Probability gates the combo once it is eligible; 1 always fires
	Probability float64

	// MinMatches overrides DefaultMinMatches when positive
	MinMatches int

	// Excluded signs never trigger the combo
	Excluded []zodiac.Sign

	// Allowed, when set, lists the only signs that trigger the combo
	Allowed []zodiac.Sign
}

// Permits reports whether a caster of sign may trigger the combo
func (c *Combo) Permits(sign zodiac.Sign) bool {
	if slices.Contains(c.Excluded, sign) {
		return false
	}
	return len(c.Allowed) == 0 || slices.Contains(c.Allowed, sign)
}

// Matches counts the successful results whose kind triggers the combo
func (c *Combo) Matches(results []*skill.Result) int {
	n := 0
	for _, r := range results {
		if r.Success && slices.Contains(c.Triggers, r.Kind) {
			n++
		}
	}
	return n
}

func (c *Combo) minMatches() int {
	if c.MinMatches > 0 {
		return c.MinMatches
	}
	return DefaultMinMatches
}

// Outcome is what one scan produced
type Outcome struct {
	Fired   []string
	Results []*skill.Result
}

// Engine scans result batches for combos
type Engine struct {
	applier   skill.Applier
	cooldowns cooldowns.Repository
	roller    dice.Roller
	logger    *zap.Logger
	combos    []*Combo
}

// Config holds the engine dependencies
type Config struct {
	Applier   skill.Applier
	Cooldowns cooldowns.Repository
	Roller    dice.Roller
	Logger    *zap.Logger

	// Combos replaces the default combos when non-nil
	Combos []*Combo
}

// New creates a combo engine
func New(cfg *Config) *Engine {
	if cfg == nil || cfg.Applier == nil {
		panic("applier is required")
	}
	if cfg.Cooldowns == nil {
		panic("cooldown repository is required")
	}

	e := &Engine{
		applier:   cfg.Applier,
		cooldowns: cfg.Cooldowns,
		roller:    cfg.Roller,
		logger:    cfg.Logger,
		combos:    cfg.Combos,
	}
	if e.roller == nil {
		e.roller = dice.NewRandomRoller()
	}
	if e.logger == nil {
		e.logger = zap.NewNop()
	}
	if e.combos == nil {
		e.combos = Defaults()
	}
	return e
}

// Register appends a combo; combos are scanned in registration order
func (e *Engine) Register(c *Combo) {
	e.combos = append(e.combos, c)
}

// Combos returns the registered combos
func (e *Engine) Combos() []*Combo {
	return e.combos
}

// Scan checks every combo against the batch and dispatches the bonus of
// each one that fires. Problems with one combo never stop the others.
func (e *Engine) Scan(ctx context.Context, results []*skill.Result, rctx *skill.Context) *Outcome {
	out := &Outcome{}
	if rctx == nil || rctx.Caster == nil {
		return out
	}
	casterID := rctx.Caster.ID
	if rctx.Game != nil {
		casterID = cooldowns.Owner(rctx.Game.ID, casterID)
	}

	for _, c := range e.combos {
		if !c.Permits(rctx.Caster.Zodiac) || c.Matches(results) < c.minMatches() {
			continue
		}

		remaining, err := e.cooldowns.Get(ctx, casterID, c.ID)
		if err != nil {
			e.logger.Warn("failed to read combo cooldown",
				zap.String("combo", c.ID),
				zap.String("caster_id", casterID),
				zap.Error(err))
			continue
		}
		if remaining > 0 || !dice.Chance(e.roller, c.Probability) {
			continue
		}

		if err := e.cooldowns.Set(ctx, casterID, c.ID, c.Cooldown); err != nil {
			e.logger.Warn("failed to start combo cooldown",
				zap.String("combo", c.ID),
				zap.String("caster_id", casterID),
				zap.Error(err))
			continue
		}

		out.Fired = append(out.Fired, c.ID)
		e.logger.Debug("combo fired",
			zap.String("combo", c.ID),
			zap.String("caster_id", casterID),
			zap.Int("cooldown", c.Cooldown))

		derived := rctx.Derive()
		derived.ComboBonus = true
		for _, bonus := range c.Bonus {
			if !rctx.Budget.Take() {
				e.logger.Warn("effect budget exhausted, dropping combo bonus", zap.String("combo", c.ID))
				return out
			}
			effect := bonus.Clone()
			effect.ID = c.ID + ":" + bonus.ID

			r := e.applier.Apply(ctx, effect, derived)
			r.Source = skill.SourceCombo
			r.OriginID = c.ID
			out.Results = append(out.Results, r)
		}
	}
	return out
}
