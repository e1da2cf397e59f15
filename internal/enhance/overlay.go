// Package enhance layers zodiac flavor over dispatched results.
package enhance

import (
	"context"
	"fmt"
	"math"
	"slices"

	"go.uber.org/zap"

	"github.com/KirkDiggler/zodiac-skill-engine/internal/dice"
	"github.com/KirkDiggler/zodiac-skill-engine/internal/effects"
	"github.com/KirkDiggler/zodiac-skill-engine/internal/skill"
	"github.com/KirkDiggler/zodiac-skill-engine/internal/zodiac"
)

// harmonyBuff is the percentage of the buff a compatible pair may grant
const harmonyBuff = 5.0

// Overlay wraps an applier and scales its successful results by the
// caster's sign. It never touches game state; follow-up behavior is
// expressed as secondary effects on the result.
type Overlay struct {
	next      skill.Applier
	tables    *zodiac.Tables
	roller    dice.Roller
	logger    *zap.Logger
	enhancers map[zodiac.Sign][]*Enhancer
}

// Config holds the overlay dependencies
type Config struct {
	Next   skill.Applier
	Tables *zodiac.Tables
	Roller dice.Roller
	Logger *zap.Logger

	// Enhancers replaces the default per-sign enhancers when set
	Enhancers map[zodiac.Sign][]*Enhancer
}

// New creates an overlay around cfg.Next
func New(cfg *Config) *Overlay {
	if cfg == nil || cfg.Next == nil {
		panic("wrapped applier is required")
	}
	if cfg.Tables == nil {
		panic("zodiac tables are required")
	}

	o := &Overlay{
		next:      cfg.Next,
		tables:    cfg.Tables,
		roller:    cfg.Roller,
		logger:    cfg.Logger,
		enhancers: cfg.Enhancers,
	}
	if o.roller == nil {
		o.roller = dice.NewRandomRoller()
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}
	if o.enhancers == nil {
		o.enhancers = Defaults()
	}
	return o
}

// Register adds an enhancer for sign
func (o *Overlay) Register(sign zodiac.Sign, e *Enhancer) {
	o.enhancers[sign] = append(o.enhancers[sign], e)
}

// Apply implements skill.Applier
func (o *Overlay) Apply(ctx context.Context, effect *skill.Effect, rctx *skill.Context) *skill.Result {
	r := o.next.Apply(ctx, effect, rctx)
	if r == nil || !r.Success || rctx == nil {
		return r
	}

	sign := rctx.CasterZodiac()
	if sign == zodiac.SignNone {
		return r
	}

	for _, e := range o.enhancers[sign] {
		if !e.Matches(r.Kind) || !dice.Chance(o.roller, e.Probability) {
			continue
		}
		bonus, ok := o.bonus(e, effect, r)
		if !ok {
			continue
		}
		if e.Multiplier > 0 {
			r.ActualValue *= e.Multiplier
		}
		r.Secondary = append(r.Secondary, bonus...)
		r.Description = fmt.Sprintf("%s [%s]", r.Description, e.Name)
		o.logger.Debug("enhancer fired",
			zap.String("sign", string(sign)),
			zap.String("enhancer", e.Name),
			zap.String("effect_id", r.EffectID))
	}

	r.ActualValue *= o.tables.SeasonalMultiplier(sign, rctx.Season)

	harmony := false
	for _, id := range r.TargetIDs {
		if rctx.Caster != nil && id == rctx.Caster.ID {
			continue
		}
		target, ok := rctx.Game.Player(id)
		if !ok {
			continue
		}
		r.ActualValue *= o.tables.InteractionMultiplier(sign, target.Zodiac)

		if !harmony && o.tables.Relation(sign, target.Zodiac) == zodiac.RelationCompatible &&
			dice.Chance(o.roller, o.tables.Interactions.HarmonyChance) {
			harmony = true
			r.Secondary = append(r.Secondary, harmonyEffect(effect, target.ID))
		}
	}

	r.ActualValue = math.Max(0, math.Round(r.ActualValue))
	return r
}

// bonus runs the enhancer's Bonus hook. A panicking hook skips the
// enhancer and leaves the result as the handler reported it.
func (o *Overlay) bonus(e *Enhancer, effect *skill.Effect, r *skill.Result) (out []*skill.Effect, ok bool) {
	defer func() {
		if p := recover(); p != nil {
			o.logger.Error("enhancer panicked",
				zap.String("enhancer", e.Name),
				zap.String("effect_id", r.EffectID),
				zap.Any("panic", p))
			out, ok = nil, false
		}
	}()
	if e.Bonus == nil {
		return nil, true
	}
	return e.Bonus(effect, r), true
}

func harmonyEffect(effect *skill.Effect, partnerID string) *skill.Effect {
	return &skill.Effect{
		ID:         effect.ID + ":harmony:" + partnerID,
		Kind:       skill.KindStatusBuff,
		Target:     skill.TargetSelf,
		Value:      harmonyBuff,
		Duration:   1,
		Name:       "harmony",
		StatusKind: effects.KindBuff,
		Modifiers:  fixedModifiers(),
	}
}

// fixedModifiers disables the random parts of a calculation
func fixedModifiers() skill.Modifiers {
	return skill.Modifiers{CritChance: skill.Float(0), Randomness: skill.Float(0)}
}

// Enhancer is one sign-specific bonus behavior
type Enhancer struct {
	Name  string
	Kinds []skill.Kind

	// Probability gates the bonus; 1 or more always fires
	Probability float64

	// Multiplier scales the reported value when positive
	Multiplier float64

	// Bonus returns secondary effects to queue
	Bonus func(effect *skill.Effect, r *skill.Result) []*skill.Effect
}

// Matches reports whether the enhancer reacts to kind
func (e *Enhancer) Matches(kind skill.Kind) bool {
	return slices.Contains(e.Kinds, kind)
}
