// Package chain expands results into decaying follow-up effects.
package chain

import (
	"context"
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/KirkDiggler/zodiac-skill-engine/internal/skill"
	"github.com/KirkDiggler/zodiac-skill-engine/internal/zodiac"
)

// Reaction is a follow-up effect triggered by a single result
type Reaction struct {
	ID       string
	Name     string
	Template *skill.Effect

	// Trigger decides whether the reaction follows r. rctx is the context
	// r was resolved in, so chain depth, caster and season are visible.
	Trigger func(r *skill.Result, rctx *skill.Context) bool

	// MaxDepth bounds how many times the reaction expands from one trigger
	MaxDepth int

	// Decay multiplies the template value once per depth level
	Decay float64

	// ZodiacBonus scales the follow-up for casters of the listed signs
	ZodiacBonus map[zodiac.Sign]float64
}

// Effect builds the follow-up for depth: the template value times
// Decay^depth times the caster's zodiac bonus
func (r *Reaction) Effect(depth int, sign zodiac.Sign) *skill.Effect {
	decay := r.Decay
	if decay <= 0 {
		decay = 1
	}
	factor := math.Pow(decay, float64(depth))
	if bonus, ok := r.ZodiacBonus[sign]; ok && bonus > 0 {
		factor *= bonus
	}

	e := r.Template.Scaled(factor)
	e.ID = fmt.Sprintf("%s:%s:%d", r.ID, r.Template.ID, depth)
	if e.Name == "" {
		e.Name = r.Name
	}
	return e
}

// Engine runs registered reactions through an applier
type Engine struct {
	applier   skill.Applier
	reactions []*Reaction
	logger    *zap.Logger
}

// Config holds the engine dependencies
type Config struct {
	Applier skill.Applier
	Logger  *zap.Logger

	// Reactions replaces the default reactions when non-nil
	Reactions []*Reaction
}

// New creates a chain engine
func New(cfg *Config) *Engine {
	if cfg == nil || cfg.Applier == nil {
		panic("applier is required")
	}

	e := &Engine{
		applier:   cfg.Applier,
		reactions: cfg.Reactions,
		logger:    cfg.Logger,
	}
	if e.reactions == nil {
		e.reactions = Defaults()
	}
	if e.logger == nil {
		e.logger = zap.NewNop()
	}
	return e
}

// Register appends a reaction
func (e *Engine) Register(r *Reaction) {
	e.reactions = append(e.reactions, r)
}

// Reactions returns the registered reactions in order
func (e *Engine) Reactions() []*Reaction {
	return e.reactions
}

// Expand dispatches every reaction triggered by result and recursively
// expands what they produce. The original result is not included.
func (e *Engine) Expand(ctx context.Context, result *skill.Result, rctx *skill.Context, depth int) []*skill.Result {
	if result == nil || rctx == nil {
		return nil
	}

	var out []*skill.Result
	for _, reaction := range e.reactions {
		if depth >= reaction.MaxDepth || reaction.Template == nil || !e.triggered(reaction, result, rctx) {
			continue
		}
		if !rctx.Budget.Take() {
			e.logger.Warn("effect budget exhausted, dropping chain reaction",
				zap.String("reaction", reaction.ID),
				zap.Int("depth", depth))
			return out
		}

		derived := rctx.Derive()
		derived.IsChain = true
		derived.ChainDepth = depth + 1
		derived.TargetIDs = append([]string(nil), result.TargetIDs...)

		effect := reaction.Effect(depth, rctx.CasterZodiac())
		r := e.applier.Apply(ctx, effect, derived)
		r.Source = skill.SourceChain
		r.OriginID = reaction.ID
		r.ChainDepth = depth + 1
		out = append(out, r)

		e.logger.Debug("chain reaction",
			zap.String("reaction", reaction.ID),
			zap.Int("depth", depth+1),
			zap.Bool("success", r.Success),
			zap.Float64("value", r.ActualValue))

		out = append(out, e.Expand(ctx, r, derived, depth+1)...)
	}
	return out
}

// triggered guards the predicate so a faulty reaction cannot abort the batch
func (e *Engine) triggered(reaction *Reaction, result *skill.Result, rctx *skill.Context) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("chain trigger panicked", zap.String("reaction", reaction.ID), zap.Any("panic", r))
			ok = false
		}
	}()
	return reaction.Trigger != nil && reaction.Trigger(result, rctx)
}
