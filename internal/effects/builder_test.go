package effects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/zodiac-skill-engine/internal/uuid/mocks"
	"github.com/KirkDiggler/zodiac-skill-engine/internal/zodiac"
)

func TestBuilder(t *testing.T) {
	ctrl := gomock.NewController(t)
	gen := mocks.NewMockGenerator(ctrl)
	gen.EXPECT().New().Return("fx-123")

	effect := NewBuilder(gen, KindResistance, "Stone Skin").
		WithSource(SourceSkill, "ox_guard").
		WithMagnitude(0.25).
		WithDamageKind(zodiac.DamagePhysical).
		WithTurns(3).
		WithStackingRule(StackingTakeHighest).
		Build()

	assert.Equal(t, "fx-123", effect.ID)
	assert.Equal(t, KindResistance, effect.Kind)
	assert.Equal(t, SourceSkill, effect.Source)
	assert.Equal(t, "ox_guard", effect.SourceID)
	assert.Equal(t, 0.25, effect.Magnitude)
	assert.Equal(t, 3, effect.RemainingTurns)
	assert.True(t, effect.AppliesTo(zodiac.DamagePhysical))
	assert.False(t, effect.AppliesTo(zodiac.DamageFinancial))
}

func TestBuilder_Defaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	gen := mocks.NewMockGenerator(ctrl)
	gen.EXPECT().New().Return("fx-1").Times(2)

	effect := NewBuilder(gen, KindBuff, "Blink").WithTurns(0).Build()
	assert.Equal(t, 1, effect.RemainingTurns)
	assert.Equal(t, StackingReplace, effect.StackingRule)
	assert.True(t, effect.AppliesTo(zodiac.DamageSocial))

	aura := NewBuilder(gen, KindBuff, "Aura").Permanent().Build()
	assert.False(t, aura.IsExpired())
}
