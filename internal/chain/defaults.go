package chain

import (
	"github.com/KirkDiggler/zodiac-skill-engine/internal/skill"
	"github.com/KirkDiggler/zodiac-skill-engine/internal/zodiac"
)

// wealthRippleThreshold is the gain that starts a wealth ripple
const wealthRippleThreshold = 500

func fixed() skill.Modifiers {
	return skill.Modifiers{CritChance: skill.Float(0), Randomness: skill.Float(0)}
}

// Defaults returns the built-in reactions
func Defaults() []*Reaction {
	return []*Reaction{
		{
			ID:   "wealth_ripple",
			Name: "Wealth Ripple",
			Trigger: func(r *skill.Result, _ *skill.Context) bool {
				return r.Success && r.Kind == skill.KindMoneyGain && r.ActualValue >= wealthRippleThreshold
			},
			Template: &skill.Effect{
				ID:        "ripple",
				Kind:      skill.KindMoneyGain,
				Target:    skill.TargetSelf,
				Value:     100,
				Modifiers: fixed(),
			},
			MaxDepth: 3,
			Decay:    0.7,
			ZodiacBonus: map[zodiac.Sign]float64{
				zodiac.SignDragon: 1.3,
				zodiac.SignPig:    1.2,
			},
		},
		{
			ID:   "aftershock",
			Name: "Aftershock",
			Trigger: func(r *skill.Result, _ *skill.Context) bool {
				return r.Success && r.IsCritical && len(r.TargetIDs) > 0 &&
					(r.Kind == skill.KindMoneyLoss || r.Kind == skill.KindMoneySteal)
			},
			Template: &skill.Effect{
				ID:     "shock",
				Kind:   skill.KindMoneyLoss,
				Target: skill.TargetOthers,
				Value:  150,
			},
			MaxDepth: 2,
			Decay:    0.5,
			ZodiacBonus: map[zodiac.Sign]float64{
				zodiac.SignTiger: 1.2,
			},
		},
		{
			ID:   "momentum",
			Name: "Momentum",
			Trigger: func(r *skill.Result, _ *skill.Context) bool {
				return r.Success && r.Kind == skill.KindPositionMove && r.ActualValue > 0
			},
			Template: &skill.Effect{
				ID:        "push",
				Kind:      skill.KindDiceModify,
				Target:    skill.TargetSelf,
				Value:     1,
				Modifiers: fixed(),
			},
			MaxDepth: 2,
			Decay:    0.5,
			ZodiacBonus: map[zodiac.Sign]float64{
				zodiac.SignHorse: 1.5,
			},
		},
	}
}
