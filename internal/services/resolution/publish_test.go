package resolution

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/zodiac-skill-engine/internal/combo"
	"github.com/KirkDiggler/zodiac-skill-engine/internal/events"
	"github.com/KirkDiggler/zodiac-skill-engine/internal/skill"
	"github.com/KirkDiggler/zodiac-skill-engine/internal/testutils"
)

func TestPublish(t *testing.T) {
	ctx := context.Background()
	bus := events.NewBus(nil)

	var got []events.EventType
	listener := &events.ListenerFunc{
		ListenerID: "recorder",
		Handle:     func(e events.Event) error {
			assert.Equal(t, "g1", e.GetGameID())
			got = append(got, e.GetType())
			return nil
		},
	}
	for _, et := range []events.EventType{
		events.EventTypeSkillUsed, events.EventTypeEffectResolved, events.EventTypeComboFired,
		events.EventTypeCascadeFired, events.EventTypeTurnEnded,
	} {
		bus.Subscribe(et, listener)
	}

	svc := isolated(t, &ServiceConfig{
		Events: bus,
		Combos: []*combo.Combo{{
			ID:          "pair",
			Triggers:    []skill.Kind{skill.KindMoneyGain},
			Bonus:       []*skill.Effect{fixed("bonus", skill.KindMoneyGain, skill.TargetSelf, 10)},
			Cooldown:    1,
			Probability: 1,
		}},
	})
	register(t, svc, testutils.CreateNeutralGame("g1", 100, 2))

	_, err := svc.UseSkill(ctx, use("p1",
		fixed("a", skill.KindMoneyGain, skill.TargetSelf, 10),
		fixed("b", skill.KindMoneyGain, skill.TargetSelf, 10),
	))
	require.NoError(t, err)

	_, err = svc.EndTurn(ctx, "g1")
	require.NoError(t, err)

	// two gains, the combo bonus and the grand success buff
	assert.Equal(t, []events.EventType{
		events.EventTypeSkillUsed,
		events.EventTypeEffectResolved,
		events.EventTypeEffectResolved,
		events.EventTypeEffectResolved,
		events.EventTypeEffectResolved,
		events.EventTypeComboFired,
		events.EventTypeCascadeFired,
		events.EventTypeTurnEnded,
	}, got)
}

func TestPublish_ListenerFailureIsTolerated(t *testing.T) {
	bus := events.NewBus(nil)
	bus.Subscribe(events.EventTypeSkillUsed, &events.ListenerFunc{
		ListenerID: "broken",
		Handle:     func(events.Event) error { return errors.New("renderer offline") },
	})

	svc := isolated(t, &ServiceConfig{Events: bus})
	register(t, svc, testutils.CreateNeutralGame("g1", 100, 2))

	out, err := svc.UseSkill(context.Background(), use("p1", fixed("a", skill.KindMoneyGain, skill.TargetSelf, 10)))
	require.NoError(t, err)
	assert.Equal(t, 1, out.Successes)
}
