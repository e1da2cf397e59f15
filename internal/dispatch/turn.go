package dispatch

import (
	"context"

	zerr "github.com/KirkDiggler/zodiac-skill-engine/internal/errors"
	"github.com/KirkDiggler/zodiac-skill-engine/internal/skill"
)

type turnHandler struct{}

func (h *turnHandler) Family() skill.Family {
	return skill.FamilyTurnMeta
}

func (h *turnHandler) Apply(_ context.Context, act *Action) (*skill.Result, error) {
	n := act.Count()

	switch act.Effect.Kind {
	case skill.KindTurnExtra:
		for _, t := range act.Targets {
			t.ExtraTurns += n
		}
		return act.Succeed(float64(n), nil, act.Targets, "%d extra turns", n), nil

	case skill.KindTurnSkip:
		for _, t := range act.Targets {
			t.SkippedTurns += n
		}
		return act.Succeed(float64(n), nil, act.Targets, "%d turns skipped", n), nil
	}

	return nil, zerr.Unimplementedf("turn handler cannot apply %s", act.Effect.Kind)
}
