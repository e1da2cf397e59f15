package resolution

import (
	"context"
	"slices"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/KirkDiggler/zodiac-skill-engine/internal/entities"
	zerr "github.com/KirkDiggler/zodiac-skill-engine/internal/errors"
	"github.com/KirkDiggler/zodiac-skill-engine/internal/repositories/cooldowns"
)

// EndTurn runs the turn boundary: status effects and combo cooldowns count
// down, rules expire, per-turn dice state clears and the turn advances.
// Combo cooldowns only ever move here.
func (s *service) EndTurn(ctx context.Context, gameID string) (*EndTurnResult, error) {
	g, err := s.lookup(gameID)
	if err != nil {
		return nil, err
	}

	ctx, span := s.tracer.Start(ctx, "resolution.end_turn", trace.WithAttributes(
		attribute.String("game.id", gameID),
	))
	defer span.End()

	res, err := s.endTurn(ctx, g)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	s.publishTurn(gameID, res)
	return res, nil
}

func (s *service) endTurn(ctx context.Context, g *game) (*EndTurnResult, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	gameID := g.state.ID

	playerIDs := make([]string, 0, len(g.state.Players))
	for _, p := range g.state.Players {
		playerIDs = append(playerIDs, cooldowns.Owner(gameID, p.ID))
	}

	// cooldowns tick first; a store failure leaves the game untouched
	if err := s.cooldowns.Tick(ctx, playerIDs...); err != nil {
		return nil, zerr.Wrapf(err, "failed to tick combo cooldowns for game %s", gameID)
	}

	res := &EndTurnResult{Expired: make(map[string][]string)}
	for _, p := range g.state.Players {
		if p.Effects != nil {
			for _, expired := range p.Effects.ProcessTurnEnd() {
				res.Expired[p.ID] = append(res.Expired[p.ID], expired.Name)
			}
		}
		p.Dice = entities.DiceState{}
	}

	res.RulesEnded = g.state.TickRules()
	slices.Sort(res.RulesEnded)

	g.state.Turn++
	res.Turn = g.state.Turn

	s.logger.Debug("turn ended",
		zap.String("game_id", gameID),
		zap.Int("turn", res.Turn),
		zap.Strings("rules_ended", res.RulesEnded))

	return res, nil
}
