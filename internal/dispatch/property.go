package dispatch

import (
	"context"

	"github.com/KirkDiggler/zodiac-skill-engine/internal/effects"
	"github.com/KirkDiggler/zodiac-skill-engine/internal/entities"
	zerr "github.com/KirkDiggler/zodiac-skill-engine/internal/errors"
	"github.com/KirkDiggler/zodiac-skill-engine/internal/skill"
)

type propertyHandler struct{}

func (h *propertyHandler) Family() skill.Family {
	return skill.FamilyProperty
}

func (h *propertyHandler) Apply(_ context.Context, act *Action) (*skill.Result, error) {
	switch act.Effect.Kind {
	case skill.KindPropertyDiscount, skill.KindPropertyBonus:
		kind := effects.KindDiscount
		if act.Effect.Kind == skill.KindPropertyBonus {
			kind = effects.KindRentBonus
		}
		out, err := act.Calculate()
		if err != nil {
			return nil, err
		}
		if err := act.AddStatus(act.Targets, kind, out.Value/100); err != nil {
			return nil, err
		}
		return act.Succeed(out.Value, out, act.Targets, "%s %.0f%% for %d turns", kind, out.Value, act.Turns()), nil

	case skill.KindPropertyProtection:
		if err := act.AddStatus(act.Targets, effects.KindPropertyProtection, 1); err != nil {
			return nil, err
		}
		return act.Succeed(float64(act.Turns()), nil, act.Targets, "properties protected for %d turns", act.Turns()), nil

	case skill.KindPropertyConfiscate:
		return h.confiscate(act)
	}

	return nil, zerr.Unimplementedf("property handler cannot apply %s", act.Effect.Kind)
}

// confiscate moves up to Count cells from each unprotected target to the
// caster, earliest acquired first
func (h *propertyHandler) confiscate(act *Action) (*skill.Result, error) {
	board := act.Board()
	if board == nil {
		return nil, zerr.InvalidArgument("game has no board")
	}

	caster := act.Caster()
	limit := act.Count()
	taken := 0
	affected := make([]*entities.Player, 0, len(act.Targets))

	for _, t := range act.Targets {
		if t.ID == caster.ID || t.Effects.Has(effects.KindPropertyProtection) {
			continue
		}
		affected = append(affected, t)

		owned := append([]int(nil), t.Properties...)
		for i := 0; i < len(owned) && i < limit; i++ {
			index := owned[i]
			t.RemoveProperty(index)
			caster.AddProperty(index)
			if cell := board.Cell(index); cell != nil {
				cell.OwnerID = caster.ID
			}
			taken++
		}
	}

	if len(affected) == 0 {
		return nil, zerr.Validationf("no target can lose properties")
	}
	return act.Succeed(float64(taken), nil, affected, "confiscated %d properties", taken), nil
}
