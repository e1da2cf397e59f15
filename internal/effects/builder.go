package effects

import (
	"github.com/KirkDiggler/zodiac-skill-engine/internal/uuid"
	"github.com/KirkDiggler/zodiac-skill-engine/internal/zodiac"
)

// Builder helps create status effects
type Builder struct {
	effect *StatusEffect
}

// NewBuilder starts a one-turn effect of kind with an id from gen
func NewBuilder(gen uuid.Generator, kind Kind, name string) *Builder {
	return &Builder{
		effect: &StatusEffect{
			ID:             gen.New(),
			Kind:           kind,
			Name:           name,
			RemainingTurns: 1,
			StackingRule:   StackingReplace,
		},
	}
}

// WithSource sets the effect source
func (b *Builder) WithSource(source Source, sourceID string) *Builder {
	b.effect.Source = source
	b.effect.SourceID = sourceID
	return b
}

// WithMagnitude sets the strength of the effect
func (b *Builder) WithMagnitude(magnitude float64) *Builder {
	b.effect.Magnitude = magnitude
	return b
}

// WithDamageKind limits the effect to one damage kind
func (b *Builder) WithDamageKind(kind zodiac.DamageKind) *Builder {
	b.effect.DamageKind = kind
	return b
}

// WithTurns sets the duration; zero or less makes it one turn
func (b *Builder) WithTurns(turns int) *Builder {
	if turns < 1 {
		turns = 1
	}
	b.effect.RemainingTurns = turns
	return b
}

// Permanent makes the effect last until removed
func (b *Builder) Permanent() *Builder {
	b.effect.Permanent = true
	return b
}

// WithStackingRule sets how this effect stacks
func (b *Builder) WithStackingRule(rule StackingRule) *Builder {
	b.effect.StackingRule = rule
	return b
}

// Build returns the effect
func (b *Builder) Build() *StatusEffect {
	return b.effect
}
