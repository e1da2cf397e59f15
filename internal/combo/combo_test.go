package combo

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/zodiac-skill-engine/internal/dice"
	"github.com/KirkDiggler/zodiac-skill-engine/internal/entities"
	"github.com/KirkDiggler/zodiac-skill-engine/internal/repositories/cooldowns"
	mockcooldowns "github.com/KirkDiggler/zodiac-skill-engine/internal/repositories/cooldowns/mock"
	"github.com/KirkDiggler/zodiac-skill-engine/internal/skill"
	"github.com/KirkDiggler/zodiac-skill-engine/internal/zodiac"
)

type recordingApplier struct {
	applied []*skill.Effect
	ctxs    []*skill.Context
}

func (a *recordingApplier) Apply(_ context.Context, effect *skill.Effect, rctx *skill.Context) *skill.Result {
	a.applied = append(a.applied, effect)
	a.ctxs = append(a.ctxs, rctx)
	return &skill.Result{
		Success:     true,
		Kind:        effect.Kind,
		EffectID:    effect.ID,
		ActualValue: effect.Value,
		TargetIDs:   []string{rctx.Caster.ID},
	}
}

func moneyCombo() *Combo {
	return &Combo{
		ID:          "pair",
		Triggers:    []skill.Kind{skill.KindMoneyGain, skill.KindMoneySteal},
		Bonus:       []*skill.Effect{{ID: "bonus", Kind: skill.KindMoneyGain, Target: skill.TargetSelf, Value: 50}},
		Cooldown:    2,
		Probability: 1,
	}
}

func success(kind skill.Kind) *skill.Result {
	return &skill.Result{Success: true, Kind: kind}
}

func newContext(sign zodiac.Sign) *skill.Context {
	caster := entities.NewPlayer("caster", "Caster", sign)
	game := entities.NewGameState("g1", 40, caster)
	rctx := skill.NewContext(game, caster, &skill.Definition{ID: "s1"}, 1)
	rctx.Budget = skill.NewBudget(0)
	return rctx
}

func TestScan_FiresOnceThenCoolsDown(t *testing.T) {
	ctx := context.Background()
	repo := cooldowns.NewInMemoryRepository()
	applier := &recordingApplier{}
	engine := New(&Config{
		Applier:   applier,
		Cooldowns: repo,
		Roller:    dice.NewScriptedRoller(),
		Combos:    []*Combo{moneyCombo()},
	})

	batch := []*skill.Result{success(skill.KindMoneyGain), success(skill.KindMoneySteal)}
	rctx := newContext(zodiac.SignRat)

	out := engine.Scan(ctx, batch, rctx)
	assert.Equal(t, []string{"pair"}, out.Fired)
	require.Len(t, out.Results, 1)

	r := out.Results[0]
	assert.Equal(t, skill.SourceCombo, r.Source)
	assert.Equal(t, "pair", r.OriginID)
	assert.Equal(t, "pair:bonus", r.EffectID)
	assert.True(t, applier.ctxs[0].ComboBonus)
	assert.False(t, rctx.ComboBonus, "scan must not mutate the caller's context")

	remaining, err := repo.Get(ctx, "g1:caster", "pair")
	require.NoError(t, err)
	assert.Equal(t, 2, remaining)

	// cooling down
	out = engine.Scan(ctx, batch, rctx)
	assert.Empty(t, out.Fired)
	assert.Empty(t, out.Results)

	require.NoError(t, repo.Tick(ctx, "g1:caster"))
	require.NoError(t, repo.Tick(ctx, "g1:caster"))

	out = engine.Scan(ctx, batch, rctx)
	assert.Equal(t, []string{"pair"}, out.Fired)
	assert.Len(t, applier.applied, 2)
}

func TestScan_NeedsTwoSuccessfulMatches(t *testing.T) {
	testCases := []struct {
		name  string
		batch []*skill.Result
	}{
		{
			name:  "single match",
			batch: []*skill.Result{success(skill.KindMoneyGain), success(skill.KindDiceReroll)},
		},
		{
			name:  "failed results do not count",
			batch: []*skill.Result{success(skill.KindMoneyGain), {Success: false, Kind: skill.KindMoneySteal}},
		},
		{
			name:  "empty batch",
			batch: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			applier := &recordingApplier{}
			engine := New(&Config{
				Applier:   applier,
				Cooldowns: cooldowns.NewInMemoryRepository(),
				Combos:    []*Combo{moneyCombo()},
			})

			out := engine.Scan(context.Background(), tc.batch, newContext(zodiac.SignRat))
			assert.Empty(t, out.Fired)
			assert.Empty(t, applier.applied)
		})
	}
}

func TestScan_SignRestrictions(t *testing.T) {
	batch := []*skill.Result{success(skill.KindMoneyGain), success(skill.KindMoneyGain)}

	excluded := moneyCombo()
	excluded.Excluded = []zodiac.Sign{zodiac.SignRat}

	allowed := moneyCombo()
	allowed.ID = "allowed"
	allowed.Allowed = []zodiac.Sign{zodiac.SignOx}

	engine := New(&Config{
		Applier:   &recordingApplier{},
		Cooldowns: cooldowns.NewInMemoryRepository(),
		Combos:    []*Combo{excluded, allowed},
	})

	out := engine.Scan(context.Background(), batch, newContext(zodiac.SignRat))
	assert.Empty(t, out.Fired)

	out = engine.Scan(context.Background(), batch, newContext(zodiac.SignOx))
	assert.Equal(t, []string{"pair", "allowed"}, out.Fired)
}

func TestScan_ProbabilityGate(t *testing.T) {
	ctx := context.Background()
	repo := cooldowns.NewInMemoryRepository()
	gated := moneyCombo()
	gated.Probability = 0.5

	engine := New(&Config{
		Applier:   &recordingApplier{},
		Cooldowns: repo,
		Roller:    dice.NewScriptedRoller().QueueFloats(0.9, 0.1),
		Combos:    []*Combo{gated},
	})
	batch := []*skill.Result{success(skill.KindMoneyGain), success(skill.KindMoneySteal)}

	out := engine.Scan(ctx, batch, newContext(zodiac.SignRat))
	assert.Empty(t, out.Fired)

	// a missed roll does not start the cooldown
	remaining, err := repo.Get(ctx, "g1:caster", "pair")
	require.NoError(t, err)
	assert.Zero(t, remaining)

	out = engine.Scan(ctx, batch, newContext(zodiac.SignRat))
	assert.Equal(t, []string{"pair"}, out.Fired)
}

func TestScan_RepositoryErrorSkipsOnlyThatCombo(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mockcooldowns.NewMockRepository(ctrl)

	broken := moneyCombo()
	broken.ID = "broken"
	working := moneyCombo()

	repo.EXPECT().Get(gomock.Any(), "g1:caster", "broken").Return(0, errors.New("connection refused"))
	repo.EXPECT().Get(gomock.Any(), "g1:caster", "pair").Return(0, nil)
	repo.EXPECT().Set(gomock.Any(), "g1:caster", "pair", 2).Return(nil)

	engine := New(&Config{
		Applier:   &recordingApplier{},
		Cooldowns: repo,
		Combos:    []*Combo{broken, working},
	})

	batch := []*skill.Result{success(skill.KindMoneyGain), success(skill.KindMoneySteal)}
	out := engine.Scan(context.Background(), batch, newContext(zodiac.SignRat))

	assert.Equal(t, []string{"pair"}, out.Fired)
	require.Len(t, out.Results, 1)
	assert.Equal(t, "pair", out.Results[0].OriginID)
}

func TestScan_SetFailureDoesNotFire(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mockcooldowns.NewMockRepository(ctrl)
	applier := &recordingApplier{}

	repo.EXPECT().Get(gomock.Any(), "g1:caster", "pair").Return(0, nil)
	repo.EXPECT().Set(gomock.Any(), "g1:caster", "pair", 2).Return(errors.New("read only replica"))

	engine := New(&Config{
		Applier:   applier,
		Cooldowns: repo,
		Combos:    []*Combo{moneyCombo()},
	})

	batch := []*skill.Result{success(skill.KindMoneyGain), success(skill.KindMoneyGain)}
	out := engine.Scan(context.Background(), batch, newContext(zodiac.SignRat))

	assert.Empty(t, out.Fired)
	assert.Empty(t, applier.applied)
}

func TestScan_RespectsBudget(t *testing.T) {
	twoBonuses := moneyCombo()
	twoBonuses.Bonus = append(twoBonuses.Bonus, &skill.Effect{ID: "extra", Kind: skill.KindTurnExtra, Target: skill.TargetSelf, Value: 1})

	engine := New(&Config{
		Applier:   &recordingApplier{},
		Cooldowns: cooldowns.NewInMemoryRepository(),
		Combos:    []*Combo{twoBonuses},
	})

	rctx := newContext(zodiac.SignRat)
	rctx.Budget = skill.NewBudget(1)

	batch := []*skill.Result{success(skill.KindMoneyGain), success(skill.KindMoneyGain)}
	out := engine.Scan(context.Background(), batch, rctx)

	assert.Len(t, out.Results, 1)
	assert.Equal(t, 1, rctx.Budget.Truncated())
}

func TestDefaults(t *testing.T) {
	combos := Defaults()
	ids := make(map[string]bool)
	for _, c := range combos {
		assert.False(t, ids[c.ID], "duplicate combo %s", c.ID)
		ids[c.ID] = true

		assert.NotEmpty(t, c.Triggers, c.ID)
		assert.NotEmpty(t, c.Bonus, c.ID)
		assert.Positive(t, c.Cooldown, c.ID)
		assert.Greater(t, c.Probability, 0.0, c.ID)
		assert.LessOrEqual(t, c.Probability, 1.0, c.ID)
	}

	for _, id := range []string{"golden_touch", "wanderer", "iron_wall", "fortune_wheel", "landlord"} {
		assert.True(t, ids[id], id)
	}

	landlord := combos[len(combos)-1]
	assert.True(t, landlord.Permits(zodiac.SignOx))
	assert.False(t, landlord.Permits(zodiac.SignRat))
}

func TestNew_RequiresDependencies(t *testing.T) {
	assert.Panics(t, func() { New(nil) })
	assert.Panics(t, func() { New(&Config{Applier: &recordingApplier{}}) })
}
