package dispatch

import (
	"context"

	"github.com/KirkDiggler/zodiac-skill-engine/internal/effects"
	zerr "github.com/KirkDiggler/zodiac-skill-engine/internal/errors"
	"github.com/KirkDiggler/zodiac-skill-engine/internal/skill"
)

type statusHandler struct{}

func (h *statusHandler) Family() skill.Family {
	return skill.FamilyStatus
}

func (h *statusHandler) Apply(_ context.Context, act *Action) (*skill.Result, error) {
	switch act.Effect.Kind {
	case skill.KindStatusBuff, skill.KindStatusDebuff:
		kind := act.Effect.StatusKind
		if kind == "" {
			kind = effects.KindBuff
			if act.Effect.Kind == skill.KindStatusDebuff {
				kind = effects.KindDebuff
			}
		}

		out, err := act.Calculate()
		if err != nil {
			return nil, err
		}
		// declared values are percentages
		magnitude := out.Value / 100
		if err := act.AddStatus(act.Targets, kind, magnitude); err != nil {
			return nil, err
		}
		return act.Succeed(out.Value, out, act.Targets, "applied %s %.0f%% for %d turns", kind, out.Value, act.Turns()), nil

	case skill.KindStatusImmunity:
		if err := act.AddStatus(act.Targets, effects.KindImmunity, 1); err != nil {
			return nil, err
		}
		return act.Succeed(float64(act.Turns()), nil, act.Targets, "immune for %d turns", act.Turns()), nil

	case skill.KindStatusCleanse:
		removed := 0
		for _, t := range act.Targets {
			removed += t.Effects.RemoveWhere(func(e *effects.StatusEffect) bool {
				return e.Kind.Hostile()
			})
		}
		return act.Succeed(float64(removed), nil, act.Targets, "cleansed %d effects", removed), nil
	}

	return nil, zerr.Unimplementedf("status handler cannot apply %s", act.Effect.Kind)
}
