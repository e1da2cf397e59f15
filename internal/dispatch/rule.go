package dispatch

import (
	"context"

	zerr "github.com/KirkDiggler/zodiac-skill-engine/internal/errors"
	"github.com/KirkDiggler/zodiac-skill-engine/internal/skill"
)

type ruleHandler struct{}

func (h *ruleHandler) Family() skill.Family {
	return skill.FamilyRule
}

func (h *ruleHandler) Apply(_ context.Context, act *Action) (*skill.Result, error) {
	game := act.Context.Game
	id := act.Effect.EventID
	if id == "" {
		return nil, zerr.Validationf("%s needs an event id", act.Effect.Kind)
	}

	switch act.Effect.Kind {
	case skill.KindEventTrigger:
		game.PendingEvents = append(game.PendingEvents, id)
		return act.Succeed(1, nil, act.Targets, "queued event %s", id), nil

	case skill.KindRuleChange:
		if game.Rules == nil {
			game.Rules = make(map[string]int)
		}
		game.Rules[id] = act.Turns()
		return act.Succeed(float64(act.Turns()), nil, act.Targets, "rule %s active for %d turns", id, act.Turns()), nil
	}

	return nil, zerr.Unimplementedf("rule handler cannot apply %s", act.Effect.Kind)
}
