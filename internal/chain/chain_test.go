package chain

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/zodiac-skill-engine/internal/entities"
	"github.com/KirkDiggler/zodiac-skill-engine/internal/skill"
	"github.com/KirkDiggler/zodiac-skill-engine/internal/zodiac"
)

// recorder reports every effect as a success worth its declared value
type recorder struct {
	effects  []*skill.Effect
	contexts []*skill.Context
}

func (r *recorder) Apply(_ context.Context, effect *skill.Effect, rctx *skill.Context) *skill.Result {
	r.effects = append(r.effects, effect)
	r.contexts = append(r.contexts, rctx)
	return &skill.Result{
		Success:     true,
		Kind:        effect.Kind,
		EffectID:    effect.ID,
		ActualValue: effect.Value,
		TargetIDs:   rctx.TargetIDs,
	}
}

func newContext(sign zodiac.Sign) *skill.Context {
	caster := entities.NewPlayer("caster", "Caster", sign)
	return skill.NewContext(entities.NewGameState("g", 40, caster), caster, nil, 1)
}

func echo(maxDepth int, decay float64) *Reaction {
	return &Reaction{
		ID:       "echo",
		Trigger:  func(r *skill.Result, _ *skill.Context) bool { return r.Success },
		Template: &skill.Effect{ID: "e", Kind: skill.KindMoneyGain, Target: skill.TargetSelf, Value: 100},
		MaxDepth: maxDepth,
		Decay:    decay,
	}
}

func TestReaction_MonotonicDecay(t *testing.T) {
	r := echo(5, 0.7)
	r.ZodiacBonus = map[zodiac.Sign]float64{zodiac.SignDragon: 1.3}

	for k := 0; k < 4; k++ {
		cur := r.Effect(k, zodiac.SignRat)
		next := r.Effect(k+1, zodiac.SignRat)
		assert.InDelta(t, 0.7*cur.Value, next.Value, 1e-9, "depth %d", k)
	}

	assert.InDelta(t, 130.0, r.Effect(0, zodiac.SignDragon).Value, 1e-9)
	assert.Equal(t, 100.0, r.Template.Value, "template is not mutated")
	assert.Equal(t, "echo:e:2", r.Effect(2, zodiac.SignNone).ID)
}

func TestExpand_ChainBound(t *testing.T) {
	rec := &recorder{}
	e := New(&Config{Applier: rec, Reactions: []*Reaction{echo(3, 0.5)}})

	trigger := &skill.Result{Success: true, Kind: skill.KindMoneyGain, ActualValue: 100}
	results := e.Expand(context.Background(), trigger, newContext(zodiac.SignNone), 0)

	require.Len(t, results, 3)
	for i, r := range results {
		assert.Equal(t, skill.SourceChain, r.Source)
		assert.Equal(t, "echo", r.OriginID)
		assert.Equal(t, i+1, r.ChainDepth)
		assert.True(t, rec.contexts[i].IsChain)
		assert.Equal(t, i+1, rec.contexts[i].ChainDepth)
	}
	assert.Equal(t, []float64{100, 50, 25}, []float64{results[0].ActualValue, results[1].ActualValue, results[2].ActualValue})
}

func TestExpand_StartsAtDepth(t *testing.T) {
	rec := &recorder{}
	e := New(&Config{Applier: rec, Reactions: []*Reaction{echo(3, 0.5)}})

	results := e.Expand(context.Background(), &skill.Result{Success: true}, newContext(zodiac.SignNone), 3)
	assert.Empty(t, results)
}

func TestExpand_NoTrigger(t *testing.T) {
	rec := &recorder{}
	e := New(&Config{Applier: rec})

	results := e.Expand(context.Background(), &skill.Result{Success: false, Kind: skill.KindMoneyGain, ActualValue: 5000}, newContext(zodiac.SignNone), 0)
	assert.Empty(t, results)
	assert.Empty(t, rec.effects)
}

func TestExpand_Budget(t *testing.T) {
	rec := &recorder{}
	e := New(&Config{Applier: rec, Reactions: []*Reaction{echo(10, 0.9)}})

	rctx := newContext(zodiac.SignNone)
	rctx.Budget = skill.NewBudget(4)

	results := e.Expand(context.Background(), &skill.Result{Success: true}, rctx, 0)
	assert.Len(t, results, 4)
	assert.Equal(t, 1, rctx.Budget.Truncated())
}

func TestExpand_IndependentReactions(t *testing.T) {
	rec := &recorder{}
	other := echo(1, 1)
	other.ID = "other"
	e := New(&Config{Applier: rec, Reactions: []*Reaction{echo(2, 0.5), other}})

	results := e.Expand(context.Background(), &skill.Result{Success: true}, newContext(zodiac.SignNone), 0)

	origins := make([]string, 0, len(results))
	for _, r := range results {
		origins = append(origins, r.OriginID)
	}
	// each reaction keeps its own depth limit, so other's result still
	// triggers one more echo
	assert.Equal(t, []string{"echo", "echo", "other", "echo"}, origins)
}

func TestExpand_TriggerSeesContext(t *testing.T) {
	bloom := &Reaction{
		ID: "bloom",
		Trigger: func(r *skill.Result, rctx *skill.Context) bool {
			return r.Success && rctx.Season == zodiac.SeasonSpring
		},
		Template: &skill.Effect{ID: "b", Kind: skill.KindMoneyGain, Target: skill.TargetSelf, Value: 40},
		MaxDepth: 3,
		Decay:    1,
	}

	t.Run("season gates the reaction", func(t *testing.T) {
		e := New(&Config{Applier: &recorder{}, Reactions: []*Reaction{bloom}})

		rctx := newContext(zodiac.SignNone)
		rctx.Season = zodiac.SeasonWinter
		assert.Empty(t, e.Expand(context.Background(), &skill.Result{Success: true}, rctx, 0))

		rctx.Season = zodiac.SeasonSpring
		assert.Len(t, e.Expand(context.Background(), &skill.Result{Success: true}, rctx, 0), 3)
	})

	t.Run("derived contexts carry the chain depth", func(t *testing.T) {
		var depths []int
		shallow := &Reaction{
			ID: "shallow",
			Trigger: func(r *skill.Result, rctx *skill.Context) bool {
				depths = append(depths, rctx.ChainDepth)
				return r.Success && rctx.ChainDepth < 2
			},
			Template: &skill.Effect{ID: "s", Kind: skill.KindMoneyGain, Target: skill.TargetSelf, Value: 10},
			MaxDepth: 5,
			Decay:    1,
		}
		e := New(&Config{Applier: &recorder{}, Reactions: []*Reaction{shallow}})

		results := e.Expand(context.Background(), &skill.Result{Success: true}, newContext(zodiac.SignNone), 0)
		assert.Len(t, results, 2)
		assert.Equal(t, []int{0, 1, 2}, depths)
	})
}

func TestExpand_PanickingTriggerIsSkipped(t *testing.T) {
	rec := &recorder{}
	bad := &Reaction{
		ID:       "bad",
		Trigger:  func(*skill.Result, *skill.Context) bool { panic("boom") },
		Template: &skill.Effect{ID: "x", Kind: skill.KindMoneyGain},
		MaxDepth: 1,
	}
	e := New(&Config{Applier: rec, Reactions: []*Reaction{bad, echo(1, 1)}})

	results := e.Expand(context.Background(), &skill.Result{Success: true}, newContext(zodiac.SignNone), 0)
	require.Len(t, results, 1)
	assert.Equal(t, "echo", results[0].OriginID)
}

func TestDefaults(t *testing.T) {
	rec := &recorder{}
	e := New(&Config{Applier: rec})

	t.Run("wealth ripple on a large gain", func(t *testing.T) {
		rec.effects = nil
		results := e.Expand(context.Background(), &skill.Result{Success: true, Kind: skill.KindMoneyGain, ActualValue: 800}, newContext(zodiac.SignDragon), 0)

		require.Len(t, results, 1)
		assert.Equal(t, "wealth_ripple", results[0].OriginID)
		assert.InDelta(t, 130.0, rec.effects[0].Value, 1e-9)
	})

	t.Run("aftershock follows the victims", func(t *testing.T) {
		rec.effects = nil
		rec.contexts = nil
		trigger := &skill.Result{Success: true, IsCritical: true, Kind: skill.KindMoneySteal, ActualValue: 300, TargetIDs: []string{"victim"}}
		results := e.Expand(context.Background(), trigger, newContext(zodiac.SignNone), 0)

		require.NotEmpty(t, results)
		assert.Equal(t, "aftershock", results[0].OriginID)
		assert.Equal(t, []string{"victim"}, rec.contexts[0].TargetIDs)
		assert.Equal(t, skill.KindMoneyLoss, rec.effects[0].Kind)
	})

	t.Run("momentum after a move", func(t *testing.T) {
		rec.effects = nil
		results := e.Expand(context.Background(), &skill.Result{Success: true, Kind: skill.KindPositionMove, ActualValue: 4}, newContext(zodiac.SignNone), 0)

		require.Len(t, results, 1)
		assert.Equal(t, "momentum", results[0].OriginID)
		assert.Equal(t, skill.KindDiceModify, rec.effects[0].Kind)
	})
}
