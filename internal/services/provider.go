package services

import (
	"time"

	"github.com/siegecord/r6-bot-discord/internal/clients/tracker"
	"github.com/siegecord/r6-bot-discord/internal/repositories/duels"
	"github.com/siegecord/r6-bot-discord/internal/rng"
	duelService "github.com/siegecord/r6-bot-discord/internal/services/duel"
	loadoutService "github.com/siegecord/r6-bot-discord/internal/services/loadout"
	statsService "github.com/siegecord/r6-bot-discord/internal/services/stats"
)

// Provider holds all service instances
type Provider struct {
	DuelService    duelService.Service
	StatsService   statsService.Service
	LoadoutService loadoutService.Service
}

// ProviderConfig holds configuration for creating services
type ProviderConfig struct {
	TrackerClient  tracker.Client
	DuelRepository duels.Repository
	Roller         rng.Roller
	SessionTTL     time.Duration
}

// NewProvider creates a new service provider with all services initialized
func NewProvider(cfg *ProviderConfig) *Provider {
	// Use in-memory repository if none provided
	duelRepo := cfg.DuelRepository
	if duelRepo == nil {
		duelRepo = duels.NewInMemoryRepository(&duels.InMemoryConfig{
			TTL: cfg.SessionTTL,
		})
	}

	roller := cfg.Roller
	if roller == nil {
		roller = rng.NewRandomRoller()
	}

	return &Provider{
		DuelService: duelService.NewService(&duelService.ServiceConfig{
			Repository: duelRepo,
			Roller:     roller,
		}),
		StatsService: statsService.NewService(&statsService.ServiceConfig{
			Tracker: cfg.TrackerClient,
			Roller:  roller,
		}),
		LoadoutService: loadoutService.NewService(&loadoutService.ServiceConfig{
			Roller: roller,
		}),
	}
}
