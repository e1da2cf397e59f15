package dispatch

import (
	"context"

	zerr "github.com/KirkDiggler/zodiac-skill-engine/internal/errors"
	"github.com/KirkDiggler/zodiac-skill-engine/internal/skill"
)

const dieFaces = 6

type diceHandler struct{}

func (h *diceHandler) Family() skill.Family {
	return skill.FamilyDice
}

func (h *diceHandler) Apply(_ context.Context, act *Action) (*skill.Result, error) {
	switch act.Effect.Kind {
	case skill.KindDiceReroll:
		n := act.Count()
		for _, t := range act.Targets {
			t.Dice.Rerolls += n
		}
		return act.Succeed(float64(n), nil, act.Targets, "granted %d rerolls", n), nil

	case skill.KindDiceModify:
		out, err := act.Calculate()
		if err != nil {
			return nil, err
		}
		delta := int(out.Value) * act.Direction()
		for _, t := range act.Targets {
			t.Dice.Modifier += delta
		}
		return act.Succeed(out.Value, out, act.Targets, "next roll %+d", delta), nil

	case skill.KindDiceControl:
		face := int(act.Effect.Value)
		if face < 1 || face > dieFaces {
			return nil, zerr.Validationf("controlled face %d is outside 1-%d", face, dieFaces)
		}
		for _, t := range act.Targets {
			t.Dice.Controlled = face
		}
		return act.Succeed(float64(face), nil, act.Targets, "next roll fixed at %d", face), nil

	case skill.KindDiceDouble:
		for _, t := range act.Targets {
			t.Dice.Double = true
		}
		return act.Succeed(1, nil, act.Targets, "next roll doubled"), nil
	}

	return nil, zerr.Unimplementedf("dice handler cannot apply %s", act.Effect.Kind)
}
