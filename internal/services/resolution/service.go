// Package resolution runs one skill use end to end: dispatch through the
// zodiac overlay, chain expansion, combo scan, then the cascade pass.
package resolution

//go:generate mockgen -destination=mock/mock_service.go -package=mockresolution -source=service.go

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/KirkDiggler/zodiac-skill-engine/internal/calculator"
	"github.com/KirkDiggler/zodiac-skill-engine/internal/chain"
	"github.com/KirkDiggler/zodiac-skill-engine/internal/combo"
	"github.com/KirkDiggler/zodiac-skill-engine/internal/dice"
	"github.com/KirkDiggler/zodiac-skill-engine/internal/dispatch"
	"github.com/KirkDiggler/zodiac-skill-engine/internal/enhance"
	"github.com/KirkDiggler/zodiac-skill-engine/internal/entities"
	"github.com/KirkDiggler/zodiac-skill-engine/internal/events"
	zerr "github.com/KirkDiggler/zodiac-skill-engine/internal/errors"
	"github.com/KirkDiggler/zodiac-skill-engine/internal/repositories/cooldowns"
	"github.com/KirkDiggler/zodiac-skill-engine/internal/repositories/journal"
	"github.com/KirkDiggler/zodiac-skill-engine/internal/skill"
	"github.com/KirkDiggler/zodiac-skill-engine/internal/telemetry"
	"github.com/KirkDiggler/zodiac-skill-engine/internal/uuid"
	"github.com/KirkDiggler/zodiac-skill-engine/internal/zodiac"
)

// DefaultMaxEffects bounds the derived effects of one skill use
const DefaultMaxEffects = 64

// Service defines the skill resolution service interface
type Service interface {
	// RegisterGame makes a game available to UseSkill and EndTurn
	RegisterGame(ctx context.Context, game *entities.GameState) error

	// Game returns a registered game
	Game(ctx context.Context, gameID string) (*entities.GameState, error)

	// UseSkill resolves every effect of one skill use
	UseSkill(ctx context.Context, input *UseSkillInput) (*UseSkillResult, error)

	// EndTurn runs the turn boundary of a game
	EndTurn(ctx context.Context, gameID string) (*EndTurnResult, error)

	// Stats returns a snapshot of the counters since start
	Stats() Stats
}

// UseSkillInput is one skill use submitted by the host
type UseSkillInput struct {
	GameID   string
	CasterID string
	Skill    *skill.Definition
	Level    int

	// Effects overrides Skill.Effects when set
	Effects   []*skill.Effect
	TargetIDs []string

	InCombo            bool
	GuaranteedCritical bool
	Adjustments        []skill.Adjustment
}

// UseSkillResult is everything one skill use produced, in dispatch order
type UseSkillResult struct {
	UseID     string
	Results   []*skill.Result
	Combos    []string
	Cascades  []string
	Successes int
	Criticals int
	Peak      float64
	Truncated int
}

// EndTurnResult summarizes a turn boundary
type EndTurnResult struct {
	Turn       int
	Expired    map[string][]string // player id to expired status names
	RulesEnded []string
}

type game struct {
	mu    sync.Mutex
	state *entities.GameState

	// consecutive crits survive between uses so streak decay can apply
	crits map[string]int
}

// service implements the Service interface
type service struct {
	tables     *zodiac.Tables
	applier    skill.Applier
	chains     *chain.Engine
	combos     *combo.Engine
	cooldowns  cooldowns.Repository
	journal    journal.Repository
	bus        *events.Bus
	ids        uuid.Generator
	logger     *zap.Logger
	tracer     trace.Tracer
	maxEffects int
	now        func() time.Time

	mu    sync.RWMutex
	games map[string]*game

	stats counters
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Tables *zodiac.Tables // Required

	Roller     dice.Roller          // Optional, clock seeded when nil
	IDs        uuid.Generator       // Optional, random uuids when nil
	Logger     *zap.Logger          // Optional
	Tracer     trace.Tracer         // Optional, no-op when nil
	Cooldowns  cooldowns.Repository // Optional, in memory when nil
	Journal    journal.Repository   // Optional, in memory when nil
	MaxEffects int                  // Optional, DefaultMaxEffects when 0

	// Events receives resolution events after each use and turn; nil
	// publishes nothing. Listeners run after the game lock is released.
	Events *events.Bus

	// Optional overrides of the built-in rules
	Combos    []*combo.Combo
	Reactions []*chain.Reaction
	Enhancers map[zodiac.Sign][]*enhance.Enhancer

	Clock func() time.Time
}

// NewService creates a new resolution service
func NewService(cfg *ServiceConfig) Service {
	if cfg == nil || cfg.Tables == nil {
		panic("zodiac tables are required")
	}

	svc := &service{
		tables:     cfg.Tables,
		cooldowns:  cfg.Cooldowns,
		journal:    cfg.Journal,
		bus:        cfg.Events,
		ids:        cfg.IDs,
		logger:     cfg.Logger,
		tracer:     cfg.Tracer,
		maxEffects: cfg.MaxEffects,
		now:        cfg.Clock,
		games:      make(map[string]*game),
	}

	roller := cfg.Roller
	if roller == nil {
		roller = dice.NewRandomRoller()
	}
	if svc.ids == nil {
		svc.ids = uuid.NewGoogleUUIDGenerator()
	}
	if svc.logger == nil {
		svc.logger = zap.NewNop()
	}
	if svc.tracer == nil {
		svc.tracer = telemetry.NoopTracer()
	}
	if svc.cooldowns == nil {
		svc.cooldowns = cooldowns.NewInMemoryRepository()
	}
	if svc.journal == nil {
		svc.journal = journal.NewInMemoryRepository()
	}
	if svc.maxEffects <= 0 {
		svc.maxEffects = DefaultMaxEffects
	}
	if svc.now == nil {
		svc.now = time.Now
	}

	dispatcher := dispatch.New(&dispatch.Config{
		Calculator: calculator.New(&calculator.Config{Tables: cfg.Tables, Roller: roller}),
		Roller:     roller,
		IDs:        svc.ids,
		Logger:     svc.logger.Named("dispatch"),
	})
	svc.applier = enhance.New(&enhance.Config{
		Next:      dispatcher,
		Tables:    cfg.Tables,
		Roller:    roller,
		Logger:    svc.logger.Named("enhance"),
		Enhancers: cfg.Enhancers,
	})
	svc.chains = chain.New(&chain.Config{
		Applier:   svc.applier,
		Logger:    svc.logger.Named("chain"),
		Reactions: cfg.Reactions,
	})
	svc.combos = combo.New(&combo.Config{
		Applier:   svc.applier,
		Cooldowns: svc.cooldowns,
		Roller:    roller,
		Logger:    svc.logger.Named("combo"),
		Combos:    cfg.Combos,
	})

	return svc
}

// RegisterGame makes a game available to UseSkill and EndTurn
func (s *service) RegisterGame(_ context.Context, state *entities.GameState) error {
	if state == nil {
		return zerr.InvalidArgument("game cannot be nil")
	}
	if state.ID == "" {
		return zerr.InvalidArgument("game ID is required")
	}
	if state.Board == nil || state.Board.Length() < 1 {
		return zerr.Validationf("game %s has no board", state.ID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.games[state.ID]; exists {
		return zerr.Newf(zerr.CodeInvalidArgument, "game %s is already registered", state.ID)
	}
	s.games[state.ID] = &game{state: state, crits: make(map[string]int)}
	return nil
}

// Game returns a registered game
func (s *service) Game(_ context.Context, gameID string) (*entities.GameState, error) {
	g, err := s.lookup(gameID)
	if err != nil {
		return nil, err
	}
	return g.state, nil
}

func (s *service) lookup(gameID string) (*game, error) {
	if gameID == "" {
		return nil, zerr.InvalidArgument("game ID is required")
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	g, ok := s.games[gameID]
	if !ok {
		return nil, zerr.NotFoundf("game %s not found", gameID).WithMeta("game_id", gameID)
	}
	return g, nil
}

// Stats returns a snapshot of the counters since start
func (s *service) Stats() Stats {
	return s.stats.snapshot()
}

type counters struct {
	uses      atomic.Int64
	effects   atomic.Int64
	successes atomic.Int64
	criticals atomic.Int64
	combos    atomic.Int64
	chains    atomic.Int64
	cascades  atomic.Int64
	truncated atomic.Int64
}

// Stats are the service counters
type Stats struct {
	Uses      int64
	Effects   int64
	Successes int64
	Criticals int64
	Combos    int64
	Chains    int64
	Cascades  int64
	Truncated int64
}

func (c *counters) record(out *UseSkillResult) {
	c.uses.Add(1)
	c.effects.Add(int64(len(out.Results)))
	c.successes.Add(int64(out.Successes))
	c.criticals.Add(int64(out.Criticals))
	c.combos.Add(int64(len(out.Combos)))
	c.cascades.Add(int64(len(out.Cascades)))
	c.truncated.Add(int64(out.Truncated))

	chained := 0
	for _, r := range out.Results {
		if r.Source == skill.SourceChain {
			chained++
		}
	}
	c.chains.Add(int64(chained))
}

func (c *counters) snapshot() Stats {
	return Stats{
		Uses:      c.uses.Load(),
		Effects:   c.effects.Load(),
		Successes: c.successes.Load(),
		Criticals: c.criticals.Load(),
		Combos:    c.combos.Load(),
		Chains:    c.chains.Load(),
		Cascades:  c.cascades.Load(),
		Truncated: c.truncated.Load(),
	}
}
