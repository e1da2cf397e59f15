package skill

import (
	"slices"

	"github.com/KirkDiggler/zodiac-skill-engine/internal/effects"
	"github.com/KirkDiggler/zodiac-skill-engine/internal/zodiac"
)

// DefaultScalingFactor is the per-level growth of a skill effect
const DefaultScalingFactor = 1.1

// Modifiers tune how the calculator sizes an effect. Nil pointers and zero
// values fall back to engine defaults.
type Modifiers struct {
	ScalingFactor float64           `yaml:"scaling_factor"`
	CritChance    *float64          `yaml:"crit_chance"`
	CritDamage    float64           `yaml:"crit_damage"`
	Randomness    *float64          `yaml:"randomness"`
	Element       zodiac.Element    `yaml:"element"`
	DamageKind    zodiac.DamageKind `yaml:"damage_kind"`
}

// Float returns a pointer to v for optional modifier fields
func Float(v float64) *float64 {
	return &v
}

// Effect declares one unit of intent. Effects are treated as immutable:
// combos and chains work on copies made by Scaled.
type Effect struct {
	ID          string       `yaml:"id"`
	Kind        Kind         `yaml:"kind"`
	Target      TargetMode   `yaml:"target"`
	TargetID    string       `yaml:"target_id"`
	Value       float64      `yaml:"value"`
	ValueSource ValueSource  `yaml:"value_source"`
	Duration    int          `yaml:"duration"`
	Name        string       `yaml:"name"`
	StatusKind  effects.Kind `yaml:"status_kind"`
	EventID     string       `yaml:"event_id"`
	Destination *int         `yaml:"destination"`
	Modifiers   Modifiers    `yaml:"modifiers"`
	Animation   string       `yaml:"animation"`
	Sounds      []string     `yaml:"sounds"`
}

// Clone returns a deep copy
func (e *Effect) Clone() *Effect {
	c := *e
	c.Sounds = slices.Clone(e.Sounds)
	if e.Destination != nil {
		d := *e.Destination
		c.Destination = &d
	}
	if e.Modifiers.CritChance != nil {
		c.Modifiers.CritChance = Float(*e.Modifiers.CritChance)
	}
	if e.Modifiers.Randomness != nil {
		c.Modifiers.Randomness = Float(*e.Modifiers.Randomness)
	}
	return &c
}

// Scaled returns a copy whose declared value is multiplied by factor
func (e *Effect) Scaled(factor float64) *Effect {
	c := e.Clone()
	c.Value *= factor
	return c
}

// WithTarget returns a copy aimed at a single player
func (e *Effect) WithTarget(id string) *Effect {
	c := e.Clone()
	c.Target = TargetSingle
	c.TargetID = id
	return c
}

// Definition is the skill a player uses; the skill manager owns its
// cooldown and experience bookkeeping
type Definition struct {
	ID          string      `yaml:"id"`
	Name        string      `yaml:"name"`
	Zodiac      zodiac.Sign `yaml:"zodiac"`
	Enhancement int         `yaml:"enhancement"`
	Effects     []*Effect   `yaml:"effects"`
}
