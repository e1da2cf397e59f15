package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/zodiac-skill-engine/internal/entities"
	zerr "github.com/KirkDiggler/zodiac-skill-engine/internal/errors"
	"github.com/KirkDiggler/zodiac-skill-engine/internal/services/resolution"
	"github.com/KirkDiggler/zodiac-skill-engine/internal/skill"
	"github.com/KirkDiggler/zodiac-skill-engine/internal/zodiac"
)

const startingMoney = 1500

type simulator struct {
	svc         resolution.Service
	catalog     map[zodiac.Sign]*skill.Definition
	logger      *zap.Logger
	boardLength int
}

type simulation struct {
	Games   int
	Players int
	Rounds  int
}

type summary struct {
	Balances map[string]map[string]int // game id to player id to money
	Stats    resolution.Stats
	Combos   map[string]int
	Cascades map[string]int
}

// newGames seats players in each game, rotating through the signs so
// every game gets a different lineup
func (s *simulator) newGames(sim simulation) []*entities.GameState {
	games := make([]*entities.GameState, 0, sim.Games)
	for g := 0; g < sim.Games; g++ {
		players := make([]*entities.Player, 0, sim.Players)
		for p := 0; p < sim.Players; p++ {
			sign := zodiac.AllSigns[(g*sim.Players+p)%len(zodiac.AllSigns)]
			player := entities.NewPlayer(fmt.Sprintf("g%d-p%d", g+1, p+1), string(sign), sign)
			player.Money = startingMoney
			players = append(players, player)
		}
		games = append(games, entities.NewGameState(fmt.Sprintf("game-%d", g+1), s.boardLength, players...))
	}
	return games
}

// run plays every round of every game. Within a round all players of all
// games act concurrently; the service serializes each game.
func (s *simulator) run(ctx context.Context, sim simulation) (*summary, error) {
	games := s.newGames(sim)
	for _, game := range games {
		if err := s.svc.RegisterGame(ctx, game); err != nil {
			return nil, zerr.Wrapf(err, "failed to register %s", game.ID)
		}
	}

	for round := 1; round <= sim.Rounds; round++ {
		g, gctx := errgroup.WithContext(ctx)
		for _, game := range games {
			for _, player := range game.Players {
				def, ok := s.catalog[player.Zodiac]
				if !ok {
					continue
				}
				g.Go(func() error {
					out, err := s.svc.UseSkill(gctx, &resolution.UseSkillInput{
						GameID:   game.ID,
						CasterID: player.ID,
						Skill:    def,
						Level:    1 + round/3,
					})
					if err != nil {
						return zerr.Wrapf(err, "%s failed to use %s", player.ID, def.ID)
					}
					s.logger.Debug("skill resolved",
						zap.String("game_id", game.ID),
						zap.String("caster_id", player.ID),
						zap.Int("results", len(out.Results)),
						zap.Strings("combos", out.Combos))
					return nil
				})
			}
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}

		for _, game := range games {
			if _, err := s.svc.EndTurn(ctx, game.ID); err != nil {
				return nil, err
			}
		}
		s.logger.Info("round complete", zap.Int("round", round))
	}

	out := &summary{
		Balances: make(map[string]map[string]int, len(games)),
		Stats:    s.svc.Stats(),
	}
	for _, game := range games {
		state, err := s.svc.Game(ctx, game.ID)
		if err != nil {
			return nil, err
		}
		balances := make(map[string]int, len(state.Players))
		for _, p := range state.Players {
			balances[p.ID] = p.Money
		}
		out.Balances[game.ID] = balances
	}
	return out, nil
}
