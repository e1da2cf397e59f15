// Package calculator sizes skill effects. A calculation is a pure function
// of the effect, the resolution context and the targets; only the critical
// roll and the variance term draw from the injected roller.
package calculator

import (
	"math"

	"github.com/KirkDiggler/zodiac-skill-engine/internal/dice"
	"github.com/KirkDiggler/zodiac-skill-engine/internal/effects"
	"github.com/KirkDiggler/zodiac-skill-engine/internal/entities"
	zerr "github.com/KirkDiggler/zodiac-skill-engine/internal/errors"
	"github.com/KirkDiggler/zodiac-skill-engine/internal/skill"
	"github.com/KirkDiggler/zodiac-skill-engine/internal/zodiac"
)

const (
	DefaultCritChance        = 0.05
	BaseCritMultiplier       = 2.0
	GuaranteedCritMultiplier = 2.5
	CritStreakDecay          = 0.8
	DefaultRandomness        = 0.10

	masteryPerUse       = 0.01
	masteryCap          = 0.5
	affinityBonus       = 0.10
	enhancementPerLevel = 0.05
	comboBonus          = 0.25
	comboBonusFinal     = 1.2
	activeElementBonus  = 0.15
	seasonalBonus       = 0.30
	conflictPenalty     = 0.10
	armorPerPoint       = 0.01
)

// Outcome is the sized value of one effect
type Outcome struct {
	Value             float64
	Breakdown         *skill.Breakdown
	IsCritical        bool
	ResistanceApplied bool
	DamageKind        zodiac.DamageKind
	Element           zodiac.Element
}

// Calculator sizes effects against the static tables
type Calculator struct {
	tables *zodiac.Tables
	roller dice.Roller
}

// Config holds the calculator dependencies
type Config struct {
	Tables *zodiac.Tables
	Roller dice.Roller
}

// New creates a calculator
func New(cfg *Config) *Calculator {
	if cfg == nil || cfg.Tables == nil {
		panic("zodiac tables are required")
	}

	roller := cfg.Roller
	if roller == nil {
		roller = dice.NewRandomRoller()
	}

	return &Calculator{tables: cfg.Tables, roller: roller}
}

// Calculate runs the value pipeline for effect against targets
func (c *Calculator) Calculate(effect *skill.Effect, rctx *skill.Context, targets []*entities.Player) (*Outcome, error) {
	if effect == nil || rctx == nil || rctx.Caster == nil {
		return nil, zerr.InvalidArgument("effect, context and caster are required")
	}
	if !finite(effect.Value) {
		return nil, zerr.Validationf("effect %s has a non-finite value", effect.ID)
	}
	for _, adj := range rctx.Adjustments {
		if !finite(adj.Percent) || !finite(adj.Flat) {
			return nil, zerr.Validationf("modifier %q is not a finite number", adj.Name).
				WithMeta("effect_id", effect.ID)
		}
	}

	caster := rctx.Caster
	casterSign := caster.Zodiac
	damageKind := c.damageKind(effect)
	element := c.element(effect, rctx)
	opponents := opponentsOf(caster, targets)
	b := &skill.Breakdown{CriticalMultiplier: 1, FinalMultiplier: 1}

	// 1. base
	base := c.baseValue(effect, caster, targets)
	b.Base = base

	// 2. level scaling; later percentages use the scaled base
	factor := effect.Modifiers.ScalingFactor
	if factor <= 0 {
		factor = skill.DefaultScalingFactor
	}
	scaled := base * math.Pow(factor, float64(rctx.SkillLevel-1))
	b.LevelScaling = scaled - base

	// 3. attributes
	b.PrimaryAttribute = scaled * float64(caster.Level) / 10
	if rctx.Skill != nil && rctx.Skill.Zodiac != zodiac.SignNone && rctx.Skill.Zodiac == casterSign {
		b.SecondaryAttribute = scaled * affinityBonus
	}

	// 4. mastery
	if id := rctx.SkillID(); id != "" {
		b.Mastery = scaled * math.Min(float64(caster.SkillUsage[id])*masteryPerUse, masteryCap)
	}
	if rctx.Skill != nil {
		b.Enhancement = scaled * float64(rctx.Skill.Enhancement) * enhancementPerLevel
	}

	// 5. combo
	if rctx.InCombo {
		b.ComboBonus = scaled * comboBonus
	}
	if rctx.ComboBonus {
		b.FinalMultiplier *= comboBonusFinal
	}

	// 6. elemental synergy
	if len(targets) > 0 {
		delta := 0.0
		for _, t := range targets {
			delta += c.tables.Multiplier(element, c.tables.ElementOf(t.Zodiac)) - 1
		}
		b.ZodiacSynergy = scaled * delta / float64(len(targets))
	}
	if casterElement := c.tables.ElementOf(casterSign); casterElement != zodiac.ElementNeutral && casterElement == rctx.ActiveElement {
		b.ZodiacSynergy += scaled * activeElementBonus
	}

	// 7. season
	if trait, ok := c.tables.Trait(casterSign); ok && rctx.Season != zodiac.SeasonNone && trait.FavorableSeason == rctx.Season {
		b.SeasonalBonus = scaled * seasonalBonus
	}

	// 8. opposite sign
	for _, t := range opponents {
		if c.tables.IsOpposite(casterSign, t.Zodiac) {
			b.ZodiacConflict = -scaled * conflictPenalty
			break
		}
	}

	// 9. equipment, status and temporary bonuses
	b.EquipmentBonus = scaled * caster.EquipmentBonus()
	if caster.Effects != nil {
		b.StatusBonus = scaled * (caster.Effects.Sum(effects.KindBuff, damageKind) - caster.Effects.Sum(effects.KindDebuff, damageKind))
	}
	for _, adj := range rctx.Adjustments {
		b.TemporaryBonus += scaled*adj.Percent + adj.Flat
	}

	// 10. resistance, vulnerability, armor
	resistanceApplied := false
	if len(opponents) > 0 {
		var resist, vuln, armor float64
		for _, t := range opponents {
			resist += c.tables.Resistance(t.Zodiac, damageKind)
			if t.Effects != nil {
				resist += t.Effects.Sum(effects.KindResistance, damageKind)
				vuln += t.Effects.Sum(effects.KindVulnerability, damageKind)
			}
			armor += float64(t.Armor)
		}
		n := float64(len(opponents))
		if resist > 0 {
			b.TargetResistance = -scaled * resist / n
			resistanceApplied = true
		}
		b.Vulnerability = scaled * vuln / n
		if damageKind == zodiac.DamagePhysical {
			b.ArmorReduction = -scaled * armorPerPoint * armor / n
		}
	}

	// 11. critical
	isCrit, multiplier := c.rollCritical(effect, rctx, damageKind)
	b.CriticalMultiplier = multiplier
	if rctx.ConsecutiveCrits == nil {
		rctx.ConsecutiveCrits = make(map[string]int)
	}
	if isCrit {
		rctx.ConsecutiveCrits[caster.ID]++
	} else {
		rctx.ConsecutiveCrits[caster.ID] = 0
	}

	// 12. variance
	randomness := DefaultRandomness
	if effect.Modifiers.Randomness != nil {
		randomness = *effect.Modifiers.Randomness
	}
	if randomness > 0 {
		b.RandomVariation = scaled * randomness * (2*c.roller.Float64() - 1)
	}

	// 13. environment
	b.EnvironmentalFactor = scaled * (c.tables.TimeOfDayDelta(rctx.TimeOfDay) + c.tables.WeatherDelta(rctx.Weather))

	// 14. total, cap, round, floor
	value := b.Subtotal() * b.CriticalMultiplier * b.FinalMultiplier
	if limit := c.tables.Cap(damageKind); limit > 0 && value > limit {
		b.CappingReduction = value - limit
		value = limit
	}
	value = math.Max(0, math.Round(value))

	return &Outcome{
		Value:             value,
		Breakdown:         b,
		IsCritical:        isCrit,
		ResistanceApplied: resistanceApplied,
		DamageKind:        damageKind,
		Element:           element,
	}, nil
}

func (c *Calculator) rollCritical(effect *skill.Effect, rctx *skill.Context, damageKind zodiac.DamageKind) (bool, float64) {
	trait, _ := c.tables.Trait(rctx.Caster.Zodiac)

	multiplier := math.Max(BaseCritMultiplier, effect.Modifiers.CritDamage)
	multiplier += trait.CritDamageBonus

	if rctx.GuaranteedCritical {
		return true, math.Max(multiplier, GuaranteedCritMultiplier)
	}

	chance := DefaultCritChance
	if effect.Modifiers.CritChance != nil {
		chance = *effect.Modifiers.CritChance
	}
	chance += trait.CritChanceBonus
	if streak := rctx.ConsecutiveCrits[rctx.Caster.ID]; streak > 1 {
		chance *= math.Pow(CritStreakDecay, float64(streak-1))
	}
	if rctx.Caster.Effects != nil {
		chance += rctx.Caster.Effects.Sum(effects.KindCritBoost, damageKind)
	}

	if c.roller.Float64() < chance {
		return true, multiplier
	}
	return false, 1
}

func (c *Calculator) baseValue(effect *skill.Effect, caster *entities.Player, targets []*entities.Player) float64 {
	declared := math.Abs(effect.Value)

	switch effect.ValueSource {
	case skill.ValueCasterMoneyPercent:
		return declared / 100 * float64(caster.Money)
	case skill.ValueTargetMoneyPercent:
		if len(targets) == 0 {
			return 0
		}
		total := 0
		for _, t := range targets {
			total += t.Money
		}
		return declared / 100 * float64(total) / float64(len(targets))
	case skill.ValuePropertyCount:
		return declared * float64(len(caster.Properties))
	default:
		return declared
	}
}

func (c *Calculator) damageKind(effect *skill.Effect) zodiac.DamageKind {
	if effect.Modifiers.DamageKind != "" {
		return effect.Modifiers.DamageKind
	}
	return effect.Kind.DamageKind()
}

// element resolves the effect element: explicit override, then the
// caster's sign, then the season
func (c *Calculator) element(effect *skill.Effect, rctx *skill.Context) zodiac.Element {
	if effect.Modifiers.Element != "" {
		return effect.Modifiers.Element
	}
	if el := c.tables.ElementOf(rctx.CasterZodiac()); el != zodiac.ElementNeutral {
		return el
	}
	return c.tables.SeasonElement(rctx.Season)
}

func opponentsOf(caster *entities.Player, targets []*entities.Player) []*entities.Player {
	out := make([]*entities.Player, 0, len(targets))
	for _, t := range targets {
		if t.ID != caster.ID {
			out = append(out, t)
		}
	}
	return out
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
