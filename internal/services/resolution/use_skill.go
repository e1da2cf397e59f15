package resolution

import (
	"context"
	"slices"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/KirkDiggler/zodiac-skill-engine/internal/dispatch"
	zerr "github.com/KirkDiggler/zodiac-skill-engine/internal/errors"
	"github.com/KirkDiggler/zodiac-skill-engine/internal/repositories/journal"
	"github.com/KirkDiggler/zodiac-skill-engine/internal/skill"
)

// UseSkill resolves every effect of one skill use. Uses against the same
// game are serialized; distinct games proceed in parallel.
func (s *service) UseSkill(ctx context.Context, input *UseSkillInput) (*UseSkillResult, error) {
	if input == nil {
		return nil, zerr.InvalidArgument("input cannot be nil")
	}
	if input.Skill == nil {
		return nil, zerr.InvalidArgument("skill is required")
	}
	declared := input.Effects
	if len(declared) == 0 {
		declared = input.Skill.Effects
	}
	if len(declared) == 0 {
		return nil, zerr.InvalidArgument("skill declares no effects").WithMeta("skill_id", input.Skill.ID)
	}

	g, err := s.lookup(input.GameID)
	if err != nil {
		return nil, err
	}

	ctx, span := s.tracer.Start(ctx, "resolution.use_skill", trace.WithAttributes(
		attribute.String("game.id", input.GameID),
		attribute.String("caster.id", input.CasterID),
		attribute.String("skill.id", input.Skill.ID),
		attribute.Int("skill.level", input.Level),
	))
	defer span.End()

	out, err := s.resolve(ctx, g, input, declared)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(
		attribute.Int("results", len(out.Results)),
		attribute.Int("successes", out.Successes),
		attribute.Int("criticals", out.Criticals),
		attribute.Int("truncated", out.Truncated),
	)

	s.publishUse(input, out)
	return out, nil
}

// resolve runs the pipeline while holding the game lock
func (s *service) resolve(ctx context.Context, g *game, input *UseSkillInput, declared []*skill.Effect) (*UseSkillResult, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	caster, ok := g.state.Player(input.CasterID)
	if !ok {
		return nil, zerr.NotFoundf("caster %s not found", input.CasterID).
			WithMeta("game_id", input.GameID).
			WithMeta("caster_id", input.CasterID)
	}

	rctx := skill.NewContext(g.state, caster, input.Skill, input.Level)
	rctx.TargetIDs = slices.Clone(input.TargetIDs)
	rctx.InCombo = input.InCombo
	rctx.GuaranteedCritical = input.GuaranteedCritical
	rctx.Adjustments = slices.Clone(input.Adjustments)
	rctx.ConsecutiveCrits = g.crits
	rctx.Budget = skill.NewBudget(s.maxEffects)

	out := &UseSkillResult{UseID: s.ids.New()}
	out.Results = s.dispatchStage(ctx, declared, rctx)
	out.Results, out.Combos = s.comboStage(ctx, out.Results, rctx)
	out.Results, out.Cascades = s.cascadeStage(ctx, out.Results, rctx)

	out.Successes = skill.Succeeded(out.Results)
	out.Criticals = skill.Criticals(out.Results)
	out.Peak = skill.Peak(out.Results)
	out.Truncated = rctx.Budget.Truncated()

	if input.Skill.ID != "" {
		if caster.SkillUsage == nil {
			caster.SkillUsage = make(map[string]int)
		}
		caster.SkillUsage[input.Skill.ID]++
	}

	s.stats.record(out)
	s.record(ctx, g.state.ID, g.state.Turn, out, rctx)

	if out.Truncated > 0 {
		s.logger.Warn("effect budget exhausted",
			zap.String("use_id", out.UseID),
			zap.Int("limit", s.maxEffects),
			zap.Int("truncated", out.Truncated))
	}
	s.logger.Info("skill used",
		zap.String("use_id", out.UseID),
		zap.String("game_id", g.state.ID),
		zap.String("caster_id", caster.ID),
		zap.String("skill_id", input.Skill.ID),
		zap.Int("results", len(out.Results)),
		zap.Int("successes", out.Successes),
		zap.Int("criticals", out.Criticals),
		zap.Strings("combos", out.Combos),
		zap.Strings("cascades", out.Cascades))

	return out, nil
}

// dispatchStage applies the declared effects and expands every result
// into its chain reactions
func (s *service) dispatchStage(ctx context.Context, declared []*skill.Effect, rctx *skill.Context) []*skill.Result {
	ctx, span := s.tracer.Start(ctx, "resolution.dispatch")
	defer span.End()

	primary := dispatch.ApplyMany(ctx, s.applier, declared, rctx)

	results := make([]*skill.Result, 0, len(primary))
	for _, r := range primary {
		results = append(results, r)
		results = append(results, s.expand(ctx, r, rctx)...)
	}
	span.SetAttributes(attribute.Int("results", len(results)))
	return results
}

// comboStage scans the batch once and settles whatever the combos fired
func (s *service) comboStage(ctx context.Context, results []*skill.Result, rctx *skill.Context) ([]*skill.Result, []string) {
	ctx, span := s.tracer.Start(ctx, "resolution.combo")
	defer span.End()

	scan := s.combos.Scan(ctx, results, rctx)
	for _, r := range scan.Results {
		results = append(results, r)
		results = append(results, s.followUps(ctx, r, rctx)...)
		results = append(results, s.expand(ctx, r, rctx)...)
	}
	span.SetAttributes(attribute.StringSlice("combos", scan.Fired))
	return results, scan.Fired
}

// cascadeStage applies the batch level bonuses
func (s *service) cascadeStage(ctx context.Context, results []*skill.Result, rctx *skill.Context) ([]*skill.Result, []string) {
	ctx, span := s.tracer.Start(ctx, "resolution.cascade")
	defer span.End()

	var fired []string
	for _, c := range cascades(results) {
		if !rctx.Budget.Take() {
			s.logger.Warn("effect budget exhausted, dropping cascade", zap.String("cascade", c.id))
			break
		}
		r := s.applier.Apply(ctx, c.effect, rctx)
		r.Source = skill.SourceCascade
		r.OriginID = c.id

		fired = append(fired, c.id)
		results = append(results, r)
		results = append(results, s.followUps(ctx, r, rctx)...)
	}
	span.SetAttributes(attribute.StringSlice("cascades", fired))
	return results, fired
}

// expand runs the chain reactions of r, settling the secondaries each
// reaction queues
func (s *service) expand(ctx context.Context, r *skill.Result, rctx *skill.Context) []*skill.Result {
	var out []*skill.Result
	for _, chained := range s.chains.Expand(ctx, r, rctx, 0) {
		out = append(out, chained)
		out = append(out, s.followUps(ctx, chained, rctx)...)
	}
	return out
}

// followUps dispatches the secondary effects a derived result queued
func (s *service) followUps(ctx context.Context, r *skill.Result, rctx *skill.Context) []*skill.Result {
	var out []*skill.Result
	for _, next := range r.Secondary {
		if !rctx.Budget.Take() {
			s.logger.Warn("effect budget exhausted, dropping secondary effect",
				zap.String("effect_id", next.ID),
				zap.String("parent_id", r.EffectID))
			break
		}
		for _, follow := range dispatch.ApplyMany(ctx, s.applier, []*skill.Effect{next}, rctx) {
			follow.Source = skill.SourceSecondary
			if follow.OriginID == "" {
				follow.OriginID = r.EffectID
			}
			out = append(out, follow)
		}
	}
	return out
}

// record appends the results to the game journal. The journal is an
// audit trail, so a store failure is logged and the use still succeeds.
func (s *service) record(ctx context.Context, gameID string, turn int, out *UseSkillResult, rctx *skill.Context) {
	now := s.now()
	entries := make([]*journal.Entry, 0, len(out.Results))
	for _, r := range out.Results {
		entries = append(entries, &journal.Entry{
			ID:          s.ids.New(),
			GameID:      gameID,
			UseID:       out.UseID,
			CasterID:    rctx.Caster.ID,
			SkillID:     rctx.SkillID(),
			EffectID:    r.EffectID,
			Kind:        string(r.Kind),
			Source:      string(r.Source),
			OriginID:    r.OriginID,
			TargetIDs:   slices.Clone(r.TargetIDs),
			Value:       r.ActualValue,
			Success:     r.Success,
			Critical:    r.IsCritical,
			Description: r.Description,
			Turn:        turn,
			CreatedAt:   now,
		})
	}

	if err := s.journal.Append(ctx, gameID, entries...); err != nil {
		s.logger.Warn("failed to append journal",
			zap.String("game_id", gameID),
			zap.String("use_id", out.UseID),
			zap.Error(err))
	}
}
