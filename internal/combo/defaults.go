package combo

import (
	"github.com/KirkDiggler/zodiac-skill-engine/internal/effects"
	"github.com/KirkDiggler/zodiac-skill-engine/internal/skill"
	"github.com/KirkDiggler/zodiac-skill-engine/internal/zodiac"
)

// Defaults returns the built-in combos
func Defaults() []*Combo {
	return []*Combo{
		{
			ID:   "golden_touch",
			Name: "Golden Touch",
			Triggers: []skill.Kind{
				skill.KindMoneyGain, skill.KindMoneyLoss, skill.KindMoneySteal, skill.KindMoneyTransfer,
			},
			Bonus: []*skill.Effect{
				{ID: "windfall", Kind: skill.KindMoneyGain, Target: skill.TargetSelf, Value: 200},
			},
			Cooldown:    3,
			Probability: 0.5,
		},
		{
			ID:   "wanderer",
			Name: "Wanderer",
			Triggers: []skill.Kind{
				skill.KindPositionMove, skill.KindPositionTeleport, skill.KindPositionSwap, skill.KindPositionLock,
			},
			Bonus: []*skill.Effect{
				{ID: "second_wind", Kind: skill.KindTurnExtra, Target: skill.TargetSelf, Value: 1},
			},
			Cooldown:    4,
			Probability: 0.4,
		},
		{
			ID:   "iron_wall",
			Name: "Iron Wall",
			Triggers: []skill.Kind{
				skill.KindStatusBuff, skill.KindStatusImmunity, skill.KindPropertyProtection,
			},
			Bonus: []*skill.Effect{
				{
					ID:         "bulwark",
					Kind:       skill.KindStatusBuff,
					Target:     skill.TargetSelf,
					Value:      15,
					Duration:   2,
					Name:       "bulwark",
					StatusKind: effects.KindResistance,
				},
			},
			Cooldown:    3,
			Probability: 0.5,
		},
		{
			ID:   "fortune_wheel",
			Name: "Fortune Wheel",
			Triggers: []skill.Kind{
				skill.KindDiceReroll, skill.KindDiceModify, skill.KindDiceControl, skill.KindDiceDouble,
			},
			Bonus: []*skill.Effect{
				{ID: "jackpot", Kind: skill.KindMoneyGain, Target: skill.TargetSelf, Value: 150},
			},
			Cooldown:    3,
			Probability: 0.5,
		},
		{
			ID:   "landlord",
			Name: "Landlord",
			Triggers: []skill.Kind{
				skill.KindPropertyDiscount, skill.KindPropertyBonus, skill.KindPropertyProtection, skill.KindPropertyConfiscate,
			},
			Bonus: []*skill.Effect{
				{ID: "rent_day", Kind: skill.KindPropertyBonus, Target: skill.TargetSelf, Value: 20, Duration: 2},
			},
			Cooldown:    4,
			Probability: 0.6,
			Allowed:     []zodiac.Sign{zodiac.SignOx, zodiac.SignDog, zodiac.SignPig, zodiac.SignDragon},
		},
	}
}
