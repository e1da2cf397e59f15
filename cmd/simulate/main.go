package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sort"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/KirkDiggler/zodiac-skill-engine/internal/config"
	"github.com/KirkDiggler/zodiac-skill-engine/internal/dice"
	"github.com/KirkDiggler/zodiac-skill-engine/internal/events"
	"github.com/KirkDiggler/zodiac-skill-engine/internal/logging"
	"github.com/KirkDiggler/zodiac-skill-engine/internal/repositories/cooldowns"
	"github.com/KirkDiggler/zodiac-skill-engine/internal/repositories/journal"
	"github.com/KirkDiggler/zodiac-skill-engine/internal/services"
	"github.com/KirkDiggler/zodiac-skill-engine/internal/telemetry"
	"github.com/KirkDiggler/zodiac-skill-engine/internal/zodiac"
)

func main() {
	games := flag.Int("games", 2, "Number of games to run side by side")
	players := flag.Int("players", 4, "Players per game")
	rounds := flag.Int("rounds", 10, "Rounds to play")
	flag.Parse()

	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := logging.New(&logging.Config{Level: cfg.Log.Level, Development: cfg.Log.Development})
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tracer := telemetry.NoopTracer()
	if cfg.OTelEnabled {
		shutdown, otelErr := telemetry.Setup(ctx)
		if otelErr != nil {
			logger.Warn("Failed to set up tracing, continuing without it", zap.Error(otelErr))
		} else {
			defer func() {
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := shutdown(shutdownCtx); err != nil {
					logger.Warn("Failed to flush traces", zap.Error(err))
				}
			}()
			tracer = telemetry.Tracer("simulate")
		}
	}

	if err := run(ctx, cfg, logger, tracer, simulation{Games: *games, Players: *players, Rounds: *rounds}); err != nil {
		logger.Fatal("Simulation failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg *config.Config, logger *zap.Logger, tracer trace.Tracer, sim simulation) error {
	tables := zodiac.MustDefault()
	if cfg.Engine.ZodiacTablesPath != "" {
		loaded, err := zodiac.Load(cfg.Engine.ZodiacTablesPath)
		if err != nil {
			return err
		}
		tables = loaded
	}

	catalog, err := parseCatalog(defaultCatalog)
	if err != nil {
		return err
	}

	roller := dice.NewRandomRoller()
	if cfg.Engine.RandomSeed != 0 {
		roller = dice.NewSeededRoller(cfg.Engine.RandomSeed)
	}

	bus := events.NewBus(logger)
	counts := newTally()
	counts.subscribe(bus)

	providerConfig := &services.ProviderConfig{
		Tables:           tables,
		Roller:           roller,
		Logger:           logger,
		Tracer:           tracer,
		MaxEffectsPerUse: cfg.Engine.MaxEffectsPerUse,
		EventBus:         bus,
	}

	if cfg.Redis.Enabled() {
		client, err := connectRedis(ctx, cfg.Redis.URL)
		if err != nil {
			logger.Warn("Falling back to in-memory repositories", zap.Error(err))
		} else {
			defer func() {
				if err := client.Close(); err != nil {
					logger.Warn("Error closing Redis connection", zap.Error(err))
				}
			}()
			providerConfig.CooldownRepository = cooldowns.NewRedis(client)
			providerConfig.JournalRepository = journal.NewRedisRepository(&journal.RedisRepoConfig{
				Client: client,
				TTL:    24 * time.Hour,
			})
			logger.Info("Using Redis for cooldowns and journal")
		}
	}

	provider := services.NewProvider(providerConfig)
	sim.normalize()

	s := &simulator{
		svc:         provider.ResolutionService,
		catalog:     catalog,
		logger:      logger,
		boardLength: cfg.Engine.BoardLength,
	}
	out, err := s.run(ctx, sim)
	if err != nil {
		return err
	}

	out.Combos, out.Cascades = counts.snapshot()
	printSummary(out)
	return nil
}

func connectRedis(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return client, nil
}

func (sim *simulation) normalize() {
	sim.Games = max(sim.Games, 1)
	sim.Players = min(max(sim.Players, 2), len(zodiac.AllSigns))
	sim.Rounds = max(sim.Rounds, 1)
}

func printSummary(out *summary) {
	gameIDs := make([]string, 0, len(out.Balances))
	for id := range out.Balances {
		gameIDs = append(gameIDs, id)
	}
	sort.Strings(gameIDs)

	for _, gameID := range gameIDs {
		fmt.Printf("%s\n", gameID)
		balances := out.Balances[gameID]
		playerIDs := make([]string, 0, len(balances))
		for id := range balances {
			playerIDs = append(playerIDs, id)
		}
		sort.Strings(playerIDs)
		for _, id := range playerIDs {
			fmt.Printf("  %-8s %6d\n", id, balances[id])
		}
	}

	st := out.Stats
	fmt.Printf("uses=%d effects=%d successes=%d criticals=%d combos=%d chains=%d cascades=%d truncated=%d\n",
		st.Uses, st.Effects, st.Successes, st.Criticals, st.Combos, st.Chains, st.Cascades, st.Truncated)
	printCounts("combos", out.Combos)
	printCounts("cascades", out.Cascades)
}

func printCounts(label string, counts map[string]int) {
	if len(counts) == 0 {
		return
	}
	ids := make([]string, 0, len(counts))
	for id := range counts {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Printf("%s:\n", label)
	for _, id := range ids {
		fmt.Printf("  %-16s %4d\n", id, counts[id])
	}
}
