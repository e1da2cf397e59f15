package dispatch

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/zodiac-skill-engine/internal/calculator"
	"github.com/KirkDiggler/zodiac-skill-engine/internal/dice"
	"github.com/KirkDiggler/zodiac-skill-engine/internal/effects"
	"github.com/KirkDiggler/zodiac-skill-engine/internal/entities"
	zerr "github.com/KirkDiggler/zodiac-skill-engine/internal/errors"
	"github.com/KirkDiggler/zodiac-skill-engine/internal/skill"
	"github.com/KirkDiggler/zodiac-skill-engine/internal/uuid"
)

// Handler applies every effect kind of one family.
// Handlers mutate the resolved targets and report what they did; returning
// an error turns the dispatch into a failed result.
type Handler interface {
	// Family is the registry key of the handler
	Family() skill.Family

	// Apply performs the effect against act.Targets
	Apply(ctx context.Context, act *Action) (*skill.Result, error)
}

// Action is one effect bound to its resolved targets
type Action struct {
	Effect  *skill.Effect
	Context *skill.Context
	Targets []*entities.Player

	calc   *calculator.Calculator
	roller dice.Roller
	ids    uuid.Generator
}

// Caster returns the acting player
func (a *Action) Caster() *entities.Player {
	return a.Context.Caster
}

// Board returns the game board, which may be nil
func (a *Action) Board() *entities.Board {
	if a.Context.Game == nil {
		return nil
	}
	return a.Context.Game.Board
}

// Calculate sizes the effect against the resolved targets
func (a *Action) Calculate() (*calculator.Outcome, error) {
	return a.calc.Calculate(a.Effect, a.Context, a.Targets)
}

// Count returns the declared value as a whole count of at least one
func (a *Action) Count() int {
	n := int(a.Effect.Value)
	if n < 0 {
		n = -n
	}
	if n < 1 {
		n = 1
	}
	return n
}

// Turns returns the declared duration of at least one turn
func (a *Action) Turns() int {
	if a.Effect.Duration < 1 {
		return 1
	}
	return a.Effect.Duration
}

// Direction is -1 for a negative declared value, else 1
func (a *Action) Direction() int {
	if a.Effect.Value < 0 {
		return -1
	}
	return 1
}

// NewStatus builds a status effect owned by this action's source
func (a *Action) NewStatus(kind effects.Kind, magnitude float64) *effects.StatusEffect {
	name := a.Effect.Name
	if name == "" {
		name = string(a.Effect.Kind)
	}

	source := effects.SourceSkill
	switch {
	case a.Context.ComboBonus:
		source = effects.SourceCombo
	case a.Context.IsChain:
		source = effects.SourceChain
	}

	return effects.NewBuilder(a.ids, kind, name).
		WithSource(source, a.Context.SkillID()).
		WithMagnitude(magnitude).
		WithTurns(a.Turns()).
		Build()
}

// AddStatus gives every target its own status of kind. All statuses are
// built and validated before the first target changes.
func (a *Action) AddStatus(targets []*entities.Player, kind effects.Kind, magnitude float64) error {
	statuses := make([]*effects.StatusEffect, len(targets))
	for i, t := range targets {
		if t.Effects == nil {
			return zerr.Newf(zerr.CodeInternal, "player %s has no status list", t.ID)
		}
		status := a.NewStatus(kind, magnitude)
		if err := status.Validate(); err != nil {
			return zerr.WrapWithCode(err, zerr.CodeValidation, fmt.Sprintf("invalid %s status", kind))
		}
		statuses[i] = status
	}

	for i, t := range targets {
		if err := t.Effects.AddEffect(statuses[i]); err != nil {
			return zerr.Wrapf(err, "adding %s to %s", kind, t.ID)
		}
	}
	return nil
}

// Succeed builds a successful result for the affected players.
// out may be nil for effects that carry no magnitude.
func (a *Action) Succeed(value float64, out *calculator.Outcome, affected []*entities.Player, format string, args ...any) *skill.Result {
	ids := make([]string, 0, len(affected))
	for _, p := range affected {
		ids = append(ids, p.ID)
	}

	r := &skill.Result{
		Success:     true,
		ActualValue: value,
		TargetIDs:   ids,
		Description: fmt.Sprintf(format, args...),
	}
	if out != nil {
		r.IsCritical = out.IsCritical
		r.ResistanceApplied = out.ResistanceApplied
		r.Breakdown = out.Breakdown
		r.DamageKind = out.DamageKind
		r.Element = out.Element
	}
	return r
}
