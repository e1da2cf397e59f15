package skill

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/zodiac-skill-engine/internal/entities"
	"github.com/KirkDiggler/zodiac-skill-engine/internal/zodiac"
)

func TestKind_Classification(t *testing.T) {
	tests := []struct {
		kind    Kind
		family  Family
		damage  zodiac.DamageKind
		hostile bool
	}{
		{KindMoneySteal, FamilyMoney, zodiac.DamageFinancial, true},
		{KindMoneyGain, FamilyMoney, zodiac.DamageFinancial, false},
		{KindStatusDebuff, FamilyStatus, zodiac.DamageSocial, true},
		{KindPositionTeleport, FamilyPosition, zodiac.DamageTemporal, false},
		{KindSkillSeal, FamilySkillMeta, zodiac.DamageMagical, true},
		{KindDiceDouble, FamilyDice, zodiac.DamagePhysical, false},
		{KindPropertyConfiscate, FamilyProperty, zodiac.DamagePhysical, true},
		{KindTurnSkip, FamilyTurnMeta, zodiac.DamagePhysical, true},
		{KindRuleChange, FamilyRule, zodiac.DamagePhysical, false},
		{Kind("mystery"), FamilyUnknown, zodiac.DamagePhysical, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			assert.Equal(t, tt.family, tt.kind.Family())
			assert.Equal(t, tt.damage, tt.kind.DamageKind())
			assert.Equal(t, tt.hostile, tt.kind.Hostile())
		})
	}
}

func TestEffect_ScaledDoesNotMutate(t *testing.T) {
	dest := 5
	original := &Effect{
		ID:          "e1",
		Kind:        KindMoneyGain,
		Value:       100,
		Destination: &dest,
		Sounds:      []string{"coin"},
		Modifiers:   Modifiers{CritChance: Float(0.2)},
	}

	scaled := original.Scaled(0.5)
	*scaled.Destination = 9
	*scaled.Modifiers.CritChance = 0.9
	scaled.Sounds[0] = "thud"

	assert.Equal(t, 50.0, scaled.Value)
	assert.Equal(t, 100.0, original.Value)
	assert.Equal(t, 5, *original.Destination)
	assert.Equal(t, 0.2, *original.Modifiers.CritChance)
	assert.Equal(t, "coin", original.Sounds[0])

	targeted := original.WithTarget("p2")
	assert.Equal(t, TargetSingle, targeted.Target)
	assert.Equal(t, "p2", targeted.TargetID)
}

func TestContext_Derive(t *testing.T) {
	game := entities.NewGameState("g", 40)
	game.Season = zodiac.SeasonWinter
	game.TimeOfDay = zodiac.TimeNight
	caster := entities.NewPlayer("c", "C", zodiac.SignPig)

	rctx := NewContext(game, caster, &Definition{ID: "s1"}, 0)
	rctx.TargetIDs = []string{"a"}
	rctx.Budget = NewBudget(3)

	assert.Equal(t, 1, rctx.SkillLevel)
	assert.Equal(t, zodiac.SeasonWinter, rctx.Season)
	assert.Equal(t, zodiac.SignPig, rctx.CasterZodiac())
	assert.Equal(t, "s1", rctx.SkillID())

	derived := rctx.Derive()
	derived.IsChain = true
	derived.TargetIDs[0] = "b"
	derived.ConsecutiveCrits["c"] = 2
	require.True(t, derived.Budget.Take())

	assert.False(t, rctx.IsChain)
	assert.Equal(t, "a", rctx.TargetIDs[0])
	assert.Equal(t, 2, rctx.ConsecutiveCrits["c"])
	assert.Equal(t, 1, rctx.Budget.Used())
}

func TestBudget(t *testing.T) {
	b := NewBudget(2)
	assert.True(t, b.Take())
	assert.True(t, b.Take())
	assert.False(t, b.Take())
	assert.Equal(t, 2, b.Used())
	assert.Equal(t, 1, b.Truncated())

	var unlimited *Budget
	assert.True(t, unlimited.Take())
	assert.True(t, NewBudget(0).Take())
}

func TestResultAggregates(t *testing.T) {
	results := []*Result{
		{Success: true, IsCritical: true, ActualValue: 300},
		{Success: true, ActualValue: 900},
		{Success: false, IsCritical: true, ActualValue: 5000},
	}

	assert.Equal(t, 2, Succeeded(results))
	assert.Equal(t, 1, Criticals(results))
	assert.Equal(t, 900.0, Peak(results))

	failed := Failed(&Effect{ID: "x", Kind: KindTurnSkip}, "no target %s", "p9")
	assert.False(t, failed.Success)
	assert.Equal(t, KindTurnSkip, failed.Kind)
	assert.Equal(t, "no target p9", failed.Description)
	assert.Empty(t, failed.TargetIDs)
}
