package resolution

import (
	"github.com/KirkDiggler/zodiac-skill-engine/internal/effects"
	"github.com/KirkDiggler/zodiac-skill-engine/internal/skill"
)

const (
	grandSuccessThreshold  = 3
	criticalStormThreshold = 2
	bigValueThreshold      = 2000.0

	grandSuccessBuff    = 10 // percent
	grandSuccessTurns   = 2
	criticalStormPerHit = 100
)

type cascade struct {
	id     string
	effect *skill.Effect
}

func cascadeModifiers() skill.Modifiers {
	return skill.Modifiers{CritChance: skill.Float(0), Randomness: skill.Float(0)}
}

// cascades inspects the settled batch and returns at most one bonus per
// rule, in a fixed order
func cascades(results []*skill.Result) []cascade {
	var out []cascade

	if skill.Succeeded(results) >= grandSuccessThreshold {
		out = append(out, cascade{
			id: "grand_success",
			effect: &skill.Effect{
				ID:         "cascade:grand_success",
				Kind:       skill.KindStatusBuff,
				Target:     skill.TargetSelf,
				Value:      grandSuccessBuff,
				Duration:   grandSuccessTurns,
				Name:       "grand_success",
				StatusKind: effects.KindBuff,
				Modifiers:  cascadeModifiers(),
			},
		})
	}

	if crits := skill.Criticals(results); crits >= criticalStormThreshold {
		out = append(out, cascade{
			id: "critical_storm",
			effect: &skill.Effect{
				ID:        "cascade:critical_storm",
				Kind:      skill.KindMoneyGain,
				Target:    skill.TargetSelf,
				Value:     float64(criticalStormPerHit * crits),
				Modifiers: cascadeModifiers(),
			},
		})
	}

	if skill.Peak(results) > bigValueThreshold {
		out = append(out, cascade{
			id: "big_value",
			effect: &skill.Effect{
				ID:        "cascade:big_value",
				Kind:      skill.KindDiceReroll,
				Target:    skill.TargetSelf,
				Value:     1,
				Modifiers: cascadeModifiers(),
			},
		})
	}

	return out
}
