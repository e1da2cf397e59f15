package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/zodiac-skill-engine/internal/dice"
	"github.com/KirkDiggler/zodiac-skill-engine/internal/events"
	"github.com/KirkDiggler/zodiac-skill-engine/internal/repositories/journal"
	"github.com/KirkDiggler/zodiac-skill-engine/internal/services/resolution"
	"github.com/KirkDiggler/zodiac-skill-engine/internal/skill"
	"github.com/KirkDiggler/zodiac-skill-engine/internal/testutils"
)

func TestNewProvider_InMemoryDefaults(t *testing.T) {
	ctx := context.Background()
	store := journal.NewInMemoryRepository()
	bus := events.NewBus(nil)

	used := 0
	bus.Subscribe(events.EventTypeSkillUsed, &events.ListenerFunc{
		ListenerID: "counter",
		Handle:     func(events.Event) error {
			used++
			return nil
		},
	})

	provider := NewProvider(&ProviderConfig{
		Roller:            dice.NewSeededRoller(1),
		JournalRepository: store,
		EventBus:          bus,
	})
	require.NotNil(t, provider.ResolutionService)

	svc := provider.ResolutionService
	require.NoError(t, svc.RegisterGame(ctx, testutils.CreateNeutralGame("g1", 100, 2)))

	out, err := svc.UseSkill(ctx, &resolution.UseSkillInput{
		GameID:   "g1",
		CasterID: "p1",
		Skill: &skill.Definition{ID: "tip", Effects: []*skill.Effect{
			{ID: "tip", Kind: skill.KindTurnExtra, Target: skill.TargetSelf, Value: 1},
		}},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Results)

	entries, err := store.List(ctx, "g1")
	require.NoError(t, err)
	assert.Len(t, entries, len(out.Results))
	assert.Equal(t, 1, used)
}
