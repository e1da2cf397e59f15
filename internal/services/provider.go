package services

import (
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/KirkDiggler/zodiac-skill-engine/internal/dice"
	"github.com/KirkDiggler/zodiac-skill-engine/internal/events"
	"github.com/KirkDiggler/zodiac-skill-engine/internal/repositories/cooldowns"
	"github.com/KirkDiggler/zodiac-skill-engine/internal/repositories/journal"
	"github.com/KirkDiggler/zodiac-skill-engine/internal/services/resolution"
	"github.com/KirkDiggler/zodiac-skill-engine/internal/uuid"
	"github.com/KirkDiggler/zodiac-skill-engine/internal/zodiac"
)

// Provider holds all service instances
type Provider struct {
	ResolutionService resolution.Service
}

// ProviderConfig holds configuration for creating services
type ProviderConfig struct {
	Tables             *zodiac.Tables
	Roller             dice.Roller
	UUIDGenerator      uuid.Generator
	Logger             *zap.Logger
	Tracer             trace.Tracer
	CooldownRepository cooldowns.Repository
	JournalRepository  journal.Repository
	MaxEffectsPerUse   int
	EventBus           *events.Bus
}

// NewProvider creates a new service provider with all services initialized
func NewProvider(cfg *ProviderConfig) *Provider {
	tables := cfg.Tables
	if tables == nil {
		tables = zodiac.MustDefault()
	}

	// Use in-memory repositories if none provided
	cooldownRepo := cfg.CooldownRepository
	if cooldownRepo == nil {
		cooldownRepo = cooldowns.NewInMemoryRepository()
	}

	journalRepo := cfg.JournalRepository
	if journalRepo == nil {
		journalRepo = journal.NewInMemoryRepository()
	}

	return &Provider{
		ResolutionService: resolution.NewService(&resolution.ServiceConfig{
			Tables:     tables,
			Roller:     cfg.Roller,
			IDs:        cfg.UUIDGenerator,
			Logger:     cfg.Logger,
			Tracer:     cfg.Tracer,
			Cooldowns:  cooldownRepo,
			Journal:    journalRepo,
			MaxEffects: cfg.MaxEffectsPerUse,
			Events:     cfg.EventBus,
		}),
	}
}
