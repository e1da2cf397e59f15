package effects

import (
	"fmt"

	"github.com/KirkDiggler/zodiac-skill-engine/internal/zodiac"
)

// Source represents what created a status effect
type Source string

const (
	SourceSkill    Source = "skill"
	SourceCombo    Source = "combo"
	SourceChain    Source = "chain"
	SourceCascade  Source = "cascade"
	SourceEnhancer Source = "enhancer"
	SourceRule     Source = "rule"
)

// Kind is what a status effect does while it is active
type Kind string

const (
	KindBuff               Kind = "buff"        // raises outgoing values by Magnitude
	KindDebuff             Kind = "debuff"      // lowers outgoing values by Magnitude
	KindImmunity           Kind = "immunity"    // blocks hostile effects from other players
	KindResistance         Kind = "resistance"  // lowers incoming values of DamageKind
	KindVulnerability      Kind = "vulnerability"
	KindCritBoost          Kind = "crit_boost"
	KindPositionLock       Kind = "position_lock"
	KindSkillSeal          Kind = "skill_seal"
	KindDiscount           Kind = "discount"
	KindRentBonus          Kind = "rent_bonus"
	KindPropertyProtection Kind = "property_protection"
)

// Hostile reports whether the kind is something a cleanse removes
func (k Kind) Hostile() bool {
	switch k {
	case KindDebuff, KindVulnerability, KindPositionLock, KindSkillSeal:
		return true
	}
	return false
}

// StackingRule defines how effects with the same name and source combine
type StackingRule string

const (
	StackingReplace     StackingRule = "replace"      // New effect replaces old
	StackingStack       StackingRule = "stack"        // Effects add together
	StackingTakeHighest StackingRule = "take_highest" // Only the larger magnitude survives
	StackingRefresh     StackingRule = "refresh"      // Keep the old magnitude, reset its turns
)

// StatusEffect is one timed modifier on a player
type StatusEffect struct {
	ID             string
	Kind           Kind
	Name           string
	Source         Source
	SourceID       string // skill, combo or reaction id that created it
	Magnitude      float64
	DamageKind     zodiac.DamageKind // empty applies to every kind
	RemainingTurns int
	Permanent      bool
	StackingRule   StackingRule
}

// Validate reports whether the effect can be added to a manager
func (e *StatusEffect) Validate() error {
	if e == nil {
		return fmt.Errorf("effect cannot be nil")
	}
	if e.ID == "" {
		return fmt.Errorf("effect must have an ID")
	}
	if !e.Permanent && e.RemainingTurns <= 0 {
		return fmt.Errorf("effect %s must last at least one turn", e.ID)
	}
	return nil
}

// AppliesTo reports whether the effect covers values of kind
func (e *StatusEffect) AppliesTo(kind zodiac.DamageKind) bool {
	return e.DamageKind == "" || e.DamageKind == kind
}

// IsExpired reports whether a timed effect has run out of turns
func (e *StatusEffect) IsExpired() bool {
	return !e.Permanent && e.RemainingTurns <= 0
}
