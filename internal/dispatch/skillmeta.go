package dispatch

import (
	"context"

	"github.com/KirkDiggler/zodiac-skill-engine/internal/effects"
	zerr "github.com/KirkDiggler/zodiac-skill-engine/internal/errors"
	"github.com/KirkDiggler/zodiac-skill-engine/internal/skill"
)

type skillMetaHandler struct{}

func (h *skillMetaHandler) Family() skill.Family {
	return skill.FamilySkillMeta
}

func (h *skillMetaHandler) Apply(_ context.Context, act *Action) (*skill.Result, error) {
	switch act.Effect.Kind {
	case skill.KindSkillCooldownReduce:
		n := act.Count()
		for _, t := range act.Targets {
			for id, turns := range t.SkillCooldowns {
				t.SkillCooldowns[id] = max(0, turns-n)
			}
		}
		return act.Succeed(float64(n), nil, act.Targets, "cooldowns reduced by %d", n), nil

	case skill.KindSkillCooldownReset:
		reset := 0
		for _, t := range act.Targets {
			for id, turns := range t.SkillCooldowns {
				if turns > 0 {
					reset++
				}
				t.SkillCooldowns[id] = 0
			}
		}
		return act.Succeed(float64(reset), nil, act.Targets, "reset %d cooldowns", reset), nil

	case skill.KindSkillSeal:
		if err := act.AddStatus(act.Targets, effects.KindSkillSeal, 1); err != nil {
			return nil, err
		}
		return act.Succeed(float64(act.Turns()), nil, act.Targets, "skills sealed for %d turns", act.Turns()), nil

	case skill.KindSkillMasteryBoost:
		id := act.Context.SkillID()
		if id == "" {
			id = act.Effect.Name
		}
		if id == "" {
			return nil, zerr.InvalidArgument("mastery boost needs a skill")
		}
		n := act.Count()
		for _, t := range act.Targets {
			if t.SkillUsage == nil {
				t.SkillUsage = make(map[string]int)
			}
			t.SkillUsage[id] += n
		}
		return act.Succeed(float64(n), nil, act.Targets, "mastery of %s +%d", id, n), nil
	}

	return nil, zerr.Unimplementedf("skill handler cannot apply %s", act.Effect.Kind)
}
