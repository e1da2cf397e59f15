package enhance

import (
	"math"

	"github.com/KirkDiggler/zodiac-skill-engine/internal/skill"
	"github.com/KirkDiggler/zodiac-skill-engine/internal/zodiac"
)

// Defaults returns one enhancer per sign
func Defaults() map[zodiac.Sign][]*Enhancer {
	return map[zodiac.Sign][]*Enhancer{
		zodiac.SignRat: {{
			Name:        "hidden_hoard",
			Kinds:       []skill.Kind{skill.KindMoneySteal},
			Probability: 0.3,
			Bonus: func(effect *skill.Effect, r *skill.Result) []*skill.Effect {
				return selfEffect(effect, "hidden_hoard", skill.KindMoneyGain, math.Round(r.ActualValue*0.1))
			},
		}},
		zodiac.SignOx: {{
			Name:        "steady_harvest",
			Kinds:       []skill.Kind{skill.KindMoneyGain},
			Probability: 1,
			Multiplier:  1.15,
		}},
		zodiac.SignTiger: {{
			Name:        "fierce_strike",
			Kinds:       []skill.Kind{skill.KindMoneyLoss, skill.KindStatusDebuff},
			Probability: 0.25,
			Multiplier:  1.2,
		}},
		zodiac.SignRabbit: {{
			Name:        "lucky_hop",
			Kinds:       []skill.Kind{skill.KindPositionMove},
			Probability: 0.3,
			Bonus: func(effect *skill.Effect, _ *skill.Result) []*skill.Effect {
				return selfEffect(effect, "lucky_hop", skill.KindDiceReroll, 1)
			},
		}},
		zodiac.SignDragon: {{
			Name:        "imperial_favor",
			Kinds:       []skill.Kind{skill.KindMoneyGain},
			Probability: 0.2,
			Multiplier:  1.5,
		}},
		zodiac.SignSnake: {{
			Name:        "patient_coil",
			Kinds:       []skill.Kind{skill.KindStatusDebuff},
			Probability: 1,
			Bonus: func(effect *skill.Effect, _ *skill.Result) []*skill.Effect {
				return selfEffect(effect, "patient_coil", skill.KindSkillCooldownReduce, 1)
			},
		}},
		zodiac.SignHorse: {{
			Name:        "gallop",
			Kinds:       []skill.Kind{skill.KindPositionMove},
			Probability: 1,
			Multiplier:  1.2,
		}},
		zodiac.SignGoat: {{
			Name:        "gentle_grace",
			Kinds:       []skill.Kind{skill.KindStatusCleanse},
			Probability: 1,
			Bonus: func(effect *skill.Effect, _ *skill.Result) []*skill.Effect {
				return selfEffect(effect, "gentle_grace", skill.KindStatusBuff, 5)
			},
		}},
		zodiac.SignMonkey: {{
			Name: "trickster",
			Kinds: []skill.Kind{
				skill.KindDiceReroll, skill.KindDiceModify, skill.KindDiceControl, skill.KindDiceDouble,
			},
			Probability: 0.3,
			Bonus: func(effect *skill.Effect, _ *skill.Result) []*skill.Effect {
				return selfEffect(effect, "trickster", skill.KindDiceDouble, 1)
			},
		}},
		zodiac.SignRooster: {{
			Name:        "proud_estate",
			Kinds:       []skill.Kind{skill.KindPropertyBonus},
			Probability: 1,
			Multiplier:  1.25,
		}},
		zodiac.SignDog: {{
			Name:        "loyal_guard",
			Kinds:       []skill.Kind{skill.KindPropertyProtection},
			Probability: 0.4,
			Bonus: func(effect *skill.Effect, _ *skill.Result) []*skill.Effect {
				return selfEffect(effect, "loyal_guard", skill.KindStatusImmunity, 1)
			},
		}},
		zodiac.SignPig: {{
			Name:        "abundance",
			Kinds:       []skill.Kind{skill.KindMoneyGain},
			Probability: 0.2,
			Bonus: func(effect *skill.Effect, _ *skill.Result) []*skill.Effect {
				return selfEffect(effect, "abundance", skill.KindMoneyGain, 50)
			},
		}},
	}
}

func selfEffect(origin *skill.Effect, name string, kind skill.Kind, value float64) []*skill.Effect {
	if value <= 0 {
		return nil
	}
	return []*skill.Effect{{
		ID:        origin.ID + ":" + name,
		Kind:      kind,
		Target:    skill.TargetSelf,
		Value:     value,
		Duration:  1,
		Name:      name,
		Modifiers: fixedModifiers(),
	}}
}
