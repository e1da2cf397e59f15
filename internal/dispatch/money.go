package dispatch

import (
	"context"

	"github.com/KirkDiggler/zodiac-skill-engine/internal/effects"
	"github.com/KirkDiggler/zodiac-skill-engine/internal/entities"
	zerr "github.com/KirkDiggler/zodiac-skill-engine/internal/errors"
	"github.com/KirkDiggler/zodiac-skill-engine/internal/skill"
)

// stealMomentum is the self buff a critical steal queues
const stealMomentum = 10.0

type moneyHandler struct{}

func (h *moneyHandler) Family() skill.Family {
	return skill.FamilyMoney
}

func (h *moneyHandler) Apply(_ context.Context, act *Action) (*skill.Result, error) {
	out, err := act.Calculate()
	if err != nil {
		return nil, err
	}
	amount := int(out.Value)
	caster := act.Caster()

	switch act.Effect.Kind {
	case skill.KindMoneyGain:
		for _, t := range act.Targets {
			t.Credit(amount)
		}
		return act.Succeed(float64(amount), out, act.Targets, "gained %d", amount), nil

	case skill.KindMoneyLoss:
		lost := 0
		for _, t := range act.Targets {
			lost += t.Debit(amount)
		}
		return act.Succeed(float64(lost), out, act.Targets, "lost %d", lost), nil

	case skill.KindMoneySteal:
		stolen := 0
		victims := make([]*entities.Player, 0, len(act.Targets))
		for _, t := range act.Targets {
			if t.ID == caster.ID {
				continue
			}
			stolen += t.Debit(amount)
			victims = append(victims, t)
		}
		caster.Credit(stolen)

		r := act.Succeed(float64(stolen), out, victims, "stole %d", stolen)
		if out.IsCritical && stolen > 0 {
			r.Secondary = append(r.Secondary, &skill.Effect{
				ID:         act.Effect.ID + ":momentum",
				Kind:       skill.KindStatusBuff,
				Target:     skill.TargetSelf,
				Value:      stealMomentum,
				Duration:   1,
				Name:       "steal_momentum",
				StatusKind: effects.KindBuff,
				Modifiers:  skill.Modifiers{CritChance: skill.Float(0), Randomness: skill.Float(0)},
			})
		}
		return r, nil

	case skill.KindMoneyTransfer:
		recipients := make([]*entities.Player, 0, len(act.Targets))
		for _, t := range act.Targets {
			if t.ID != caster.ID {
				recipients = append(recipients, t)
			}
		}
		need := amount * len(recipients)
		if need > caster.Money {
			return nil, zerr.Insufficientf("transfer needs %d but caster holds %d", need, caster.Money).
				WithMeta("caster_id", caster.ID)
		}
		caster.Debit(need)
		for _, t := range recipients {
			t.Credit(amount)
		}
		return act.Succeed(float64(need), out, recipients, "transferred %d to %d players", amount, len(recipients)), nil
	}

	return nil, zerr.Unimplementedf("money handler cannot apply %s", act.Effect.Kind)
}
