// Package dispatch turns declared skill effects into state changes.
package dispatch

import (
	"context"

	"go.uber.org/zap"

	"github.com/KirkDiggler/zodiac-skill-engine/internal/calculator"
	"github.com/KirkDiggler/zodiac-skill-engine/internal/dice"
	"github.com/KirkDiggler/zodiac-skill-engine/internal/entities"
	zerr "github.com/KirkDiggler/zodiac-skill-engine/internal/errors"
	"github.com/KirkDiggler/zodiac-skill-engine/internal/skill"
	"github.com/KirkDiggler/zodiac-skill-engine/internal/uuid"
)

// maxSecondaryDepth bounds how far ApplyMany follows secondary effects
// queued by other secondary effects
const maxSecondaryDepth = 3

// Dispatcher applies single effects through the family handlers
type Dispatcher struct {
	calc     *calculator.Calculator
	roller   dice.Roller
	ids      uuid.Generator
	logger   *zap.Logger
	registry *HandlerRegistry
}

// Config holds the dispatcher dependencies
type Config struct {
	Calculator *calculator.Calculator
	Roller     dice.Roller
	IDs        uuid.Generator
	Logger     *zap.Logger
}

// New creates a dispatcher with every built-in family registered
func New(cfg *Config) *Dispatcher {
	if cfg == nil || cfg.Calculator == nil {
		panic("calculator is required")
	}

	d := &Dispatcher{
		calc:     cfg.Calculator,
		roller:   cfg.Roller,
		ids:      cfg.IDs,
		logger:   cfg.Logger,
		registry: NewHandlerRegistry(),
	}
	if d.roller == nil {
		d.roller = dice.NewRandomRoller()
	}
	if d.ids == nil {
		d.ids = uuid.NewGoogleUUIDGenerator()
	}
	if d.logger == nil {
		d.logger = zap.NewNop()
	}

	d.registry.Register(&moneyHandler{})
	d.registry.Register(&positionHandler{})
	d.registry.Register(&statusHandler{})
	d.registry.Register(&diceHandler{})
	d.registry.Register(&propertyHandler{})
	d.registry.Register(&skillMetaHandler{})
	d.registry.Register(&turnHandler{})
	d.registry.Register(&ruleHandler{})

	return d
}

// RegisterHandler replaces the handler of a family
func (d *Dispatcher) RegisterHandler(handler Handler) {
	d.registry.Register(handler)
}

// Apply dispatches one effect. It never panics and never returns nil:
// every problem becomes a failed result.
func (d *Dispatcher) Apply(ctx context.Context, effect *skill.Effect, rctx *skill.Context) (result *skill.Result) {
	defer func() {
		if r := recover(); r != nil {
			d.logger.Error("effect handler panicked",
				zap.String("effect_id", effectID(effect)),
				zap.Any("panic", r))
			result = skill.Failed(effect, "internal error applying effect: %v", r)
		}
	}()

	if effect == nil {
		return skill.Failed(nil, "effect is nil")
	}
	if rctx == nil || rctx.Game == nil {
		return skill.Failed(effect, "no game state")
	}
	if rctx.Caster == nil {
		return skill.Failed(effect, "caster not found")
	}
	if _, ok := rctx.Game.Player(rctx.Caster.ID); !ok {
		return skill.Failed(effect, "caster %s not found", rctx.Caster.ID)
	}

	handler, ok := d.registry.Get(effect.Kind)
	if !ok {
		d.logger.Warn("unknown effect kind",
			zap.String("effect_id", effect.ID),
			zap.String("kind", string(effect.Kind)))
		return skill.Failed(effect, "unknown effect kind %q", effect.Kind)
	}

	targets, err := d.resolveTargets(effect, rctx)
	if err != nil {
		return skill.Failed(effect, "%s", err.Error())
	}

	if effect.Kind.Hostile() {
		targets, ok = filterImmune(rctx.Caster, targets)
		if !ok {
			return skill.Failed(effect, "every target is immune")
		}
	}

	if len(targets) == 0 {
		r := &skill.Result{Success: true, TargetIDs: []string{}, Description: "no targets available"}
		return d.finish(r, effect, rctx)
	}

	act := &Action{
		Effect:  effect,
		Context: rctx,
		Targets: targets,
		calc:    d.calc,
		roller:  d.roller,
		ids:     d.ids,
	}

	r, err := handler.Apply(ctx, act)
	if err != nil {
		d.logger.Debug("effect rejected",
			zap.String("effect_id", effect.ID),
			zap.String("kind", string(effect.Kind)),
			zap.String("code", string(zerr.GetCode(err))),
			zap.Error(err))
		return skill.Failed(effect, "%s", err.Error())
	}
	if r == nil {
		return skill.Failed(effect, "handler produced no result")
	}

	return d.finish(r, effect, rctx)
}

// ApplyMany dispatches effects in order and flattens the secondary effects
// they queue
func (d *Dispatcher) ApplyMany(ctx context.Context, effects []*skill.Effect, rctx *skill.Context) []*skill.Result {
	return ApplyMany(ctx, d, effects, rctx)
}

// ApplyMany folds single dispatch through applier. Secondary effects are
// dispatched right after the result that queued them and count against
// the context budget.
func ApplyMany(ctx context.Context, applier skill.Applier, effects []*skill.Effect, rctx *skill.Context) []*skill.Result {
	results := make([]*skill.Result, 0, len(effects))
	for _, effect := range effects {
		results = append(results, applyWithSecondary(ctx, applier, effect, rctx, 0)...)
	}
	return results
}

func applyWithSecondary(ctx context.Context, applier skill.Applier, effect *skill.Effect, rctx *skill.Context, depth int) []*skill.Result {
	r := applier.Apply(ctx, effect, rctx)
	if depth > 0 {
		r.Source = skill.SourceSecondary
	}
	out := []*skill.Result{r}

	if depth >= maxSecondaryDepth {
		return out
	}
	for _, next := range r.Secondary {
		if !rctx.Budget.Take() {
			break
		}
		out = append(out, applyWithSecondary(ctx, applier, next, rctx, depth+1)...)
	}
	return out
}

func (d *Dispatcher) finish(r *skill.Result, effect *skill.Effect, rctx *skill.Context) *skill.Result {
	r.Kind = effect.Kind
	r.EffectID = effect.ID
	r.Animation = effect.Animation
	r.Sounds = effect.Sounds
	r.ChainDepth = rctx.ChainDepth
	if r.Source == "" {
		switch {
		case rctx.ComboBonus:
			r.Source = skill.SourceCombo
		case rctx.IsChain:
			r.Source = skill.SourceChain
		default:
			r.Source = skill.SourcePrimary
		}
	}
	if r.TargetIDs == nil {
		r.TargetIDs = []string{}
	}
	return r
}

// resolveTargets turns the effect's targeting mode into players. Explicit
// context targets win over the mode for the multi-target modes, which is
// how chain reactions aim at the players of the result that triggered them.
func (d *Dispatcher) resolveTargets(effect *skill.Effect, rctx *skill.Context) ([]*entities.Player, error) {
	game := rctx.Game
	caster := rctx.Caster

	mode := effect.Target
	if mode == "" {
		mode = skill.TargetSelf
		if effect.TargetID != "" {
			mode = skill.TargetSingle
		}
	}

	switch mode {
	case skill.TargetSelf:
		return []*entities.Player{caster}, nil

	case skill.TargetSingle:
		id := effect.TargetID
		if id == "" && len(rctx.TargetIDs) > 0 {
			id = rctx.TargetIDs[0]
		}
		if id == "" {
			return nil, zerr.InvalidArgument("single-target effect has no target")
		}
		p, ok := game.Player(id)
		if !ok {
			return nil, zerr.NotFoundf("target %s not found", id)
		}
		return []*entities.Player{p}, nil

	case skill.TargetAll, skill.TargetOthers:
		if len(rctx.TargetIDs) > 0 {
			return lookup(game, rctx.TargetIDs, mode == skill.TargetOthers, caster.ID)
		}
		if mode == skill.TargetOthers {
			return game.Others(caster.ID), nil
		}
		return append([]*entities.Player(nil), game.Players...), nil

	case skill.TargetRandom:
		others := game.Others(caster.ID)
		if len(others) == 0 {
			return nil, nil
		}
		return []*entities.Player{others[d.roller.Intn(len(others))]}, nil

	default:
		return nil, zerr.Validationf("unknown target mode %q", mode)
	}
}

func lookup(game *entities.GameState, ids []string, skipCaster bool, casterID string) ([]*entities.Player, error) {
	players := make([]*entities.Player, 0, len(ids))
	for _, id := range ids {
		if skipCaster && id == casterID {
			continue
		}
		p, ok := game.Player(id)
		if !ok {
			return nil, zerr.NotFoundf("target %s not found", id)
		}
		players = append(players, p)
	}
	return players, nil
}

// filterImmune drops immune targets other than the caster. It reports false
// when every target was dropped.
func filterImmune(caster *entities.Player, targets []*entities.Player) ([]*entities.Player, bool) {
	if len(targets) == 0 {
		return targets, true
	}
	kept := make([]*entities.Player, 0, len(targets))
	for _, t := range targets {
		if t.ID != caster.ID && t.IsImmune() {
			continue
		}
		kept = append(kept, t)
	}
	return kept, len(kept) > 0
}

func effectID(effect *skill.Effect) string {
	if effect == nil {
		return ""
	}
	return effect.ID
}
