package effects

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/zodiac-skill-engine/internal/zodiac"
)

func TestManager_AddEffect(t *testing.T) {
	t.Run("adds simple effect", func(t *testing.T) {
		manager := NewManager()
		err := manager.AddEffect(&StatusEffect{ID: "fx_1", Name: "Fortune", Kind: KindBuff, RemainingTurns: 2})
		require.NoError(t, err)

		active := manager.GetActiveEffects()
		require.Len(t, active, 1)
		assert.Equal(t, "Fortune", active[0].Name)
	})

	t.Run("rejects effect without ID", func(t *testing.T) {
		manager := NewManager()
		assert.Error(t, manager.AddEffect(&StatusEffect{Name: "No ID", RemainingTurns: 1}))
		assert.Error(t, manager.AddEffect(nil))
	})

	t.Run("rejects zero duration", func(t *testing.T) {
		manager := NewManager()
		assert.Error(t, manager.AddEffect(&StatusEffect{ID: "x", Name: "Blink"}))
	})

	t.Run("handles stacking replace", func(t *testing.T) {
		manager := NewManager()
		require.NoError(t, manager.AddEffect(&StatusEffect{ID: "a", Name: "Guard", Source: SourceSkill, RemainingTurns: 1, StackingRule: StackingReplace}))
		require.NoError(t, manager.AddEffect(&StatusEffect{ID: "b", Name: "Guard", Source: SourceSkill, RemainingTurns: 1, StackingRule: StackingReplace}))

		active := manager.GetActiveEffects()
		require.Len(t, active, 1)
		assert.Equal(t, "b", active[0].ID)
	})

	t.Run("handles stacking stack", func(t *testing.T) {
		manager := NewManager()
		for i := 0; i < 3; i++ {
			require.NoError(t, manager.AddEffect(&StatusEffect{
				ID:             fmt.Sprintf("luck_%d", i),
				Name:           "Luck",
				Kind:           KindBuff,
				Magnitude:      0.1,
				RemainingTurns: 1,
				StackingRule:   StackingStack,
			}))
		}

		assert.Len(t, manager.GetActiveEffects(), 3)
		assert.InDelta(t, 0.3, manager.Sum(KindBuff, zodiac.DamageFinancial), 1e-9)
	})

	t.Run("take highest keeps the stronger effect", func(t *testing.T) {
		manager := NewManager()
		require.NoError(t, manager.AddEffect(&StatusEffect{ID: "a", Name: "Ward", Magnitude: 0.3, RemainingTurns: 1, StackingRule: StackingTakeHighest}))
		require.NoError(t, manager.AddEffect(&StatusEffect{ID: "b", Name: "Ward", Magnitude: 0.1, RemainingTurns: 1, StackingRule: StackingTakeHighest}))
		require.NoError(t, manager.AddEffect(&StatusEffect{ID: "c", Name: "Ward", Magnitude: 0.5, RemainingTurns: 1, StackingRule: StackingTakeHighest}))

		active := manager.GetActiveEffects()
		require.Len(t, active, 1)
		assert.Equal(t, "c", active[0].ID)
	})

	t.Run("refresh extends duration", func(t *testing.T) {
		manager := NewManager()
		require.NoError(t, manager.AddEffect(&StatusEffect{ID: "a", Name: "Lock", RemainingTurns: 1, StackingRule: StackingRefresh}))
		require.NoError(t, manager.AddEffect(&StatusEffect{ID: "b", Name: "Lock", RemainingTurns: 3, StackingRule: StackingRefresh}))

		active := manager.GetActiveEffects()
		require.Len(t, active, 1)
		assert.Equal(t, "a", active[0].ID)
		assert.Equal(t, 3, active[0].RemainingTurns)
	})
}

func TestManager_Sum(t *testing.T) {
	manager := NewManager()
	require.NoError(t, manager.AddEffect(&StatusEffect{ID: "1", Name: "r1", Kind: KindResistance, Magnitude: 0.2, DamageKind: zodiac.DamageFinancial, RemainingTurns: 1}))
	require.NoError(t, manager.AddEffect(&StatusEffect{ID: "2", Name: "r2", Kind: KindResistance, Magnitude: 0.1, RemainingTurns: 1}))
	require.NoError(t, manager.AddEffect(&StatusEffect{ID: "3", Name: "r3", Kind: KindResistance, Magnitude: 0.4, DamageKind: zodiac.DamagePhysical, RemainingTurns: 1}))

	assert.InDelta(t, 0.3, manager.Sum(KindResistance, zodiac.DamageFinancial), 1e-9)
	assert.InDelta(t, 0.5, manager.Sum(KindResistance, zodiac.DamagePhysical), 1e-9)
	assert.Zero(t, manager.Sum(KindBuff, zodiac.DamagePhysical))
}

func TestManager_RemoveWhere(t *testing.T) {
	manager := NewManager()
	require.NoError(t, manager.AddEffect(&StatusEffect{ID: "1", Name: "weak", Kind: KindDebuff, RemainingTurns: 2}))
	require.NoError(t, manager.AddEffect(&StatusEffect{ID: "2", Name: "seal", Kind: KindSkillSeal, RemainingTurns: 2}))
	require.NoError(t, manager.AddEffect(&StatusEffect{ID: "3", Name: "luck", Kind: KindBuff, RemainingTurns: 2}))

	removed := manager.RemoveWhere(func(e *StatusEffect) bool { return e.Kind.Hostile() })
	assert.Equal(t, 2, removed)
	assert.True(t, manager.Has(KindBuff))
	assert.False(t, manager.Has(KindDebuff))

	manager.RemoveEffect("3")
	assert.Equal(t, 0, manager.Len())
}

func TestManager_ProcessTurnEnd(t *testing.T) {
	manager := NewManager()
	require.NoError(t, manager.AddEffect(&StatusEffect{ID: "short", Name: "short", RemainingTurns: 1}))
	require.NoError(t, manager.AddEffect(&StatusEffect{ID: "long", Name: "long", RemainingTurns: 2}))
	require.NoError(t, manager.AddEffect(&StatusEffect{ID: "aura", Name: "aura", Permanent: true}))

	expired := manager.ProcessTurnEnd()
	require.Len(t, expired, 1)
	assert.Equal(t, "short", expired[0].ID)
	assert.Equal(t, 2, manager.Len())

	expired = manager.ProcessTurnEnd()
	require.Len(t, expired, 1)
	assert.Equal(t, "long", expired[0].ID)

	active := manager.GetActiveEffects()
	require.Len(t, active, 1)
	assert.Equal(t, "aura", active[0].ID)
}
