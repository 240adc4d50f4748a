package app

import (
	"fmt"
	"net/http"

	"github.com/hooplabs/courtside/external/nbastats"
	"github.com/hooplabs/courtside/internal/config"
	"github.com/hooplabs/courtside/internal/infrastructure/repository/memory"
	"github.com/hooplabs/courtside/internal/interfaces/httpapi"
	"github.com/hooplabs/courtside/internal/platform/cache"
	"github.com/hooplabs/courtside/internal/platform/logging"
	"github.com/hooplabs/courtside/internal/platform/resilience"
	"github.com/hooplabs/courtside/internal/usecase"
)

// App bundles the HTTP server with the background cache sweeper so the
// process entrypoint can manage both lifecycles together.
type App struct {
	Server  *http.Server
	Sweeper *cache.Sweeper
}

func New(cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}

	teamCache := cache.NewStore("teams", cfg.TeamCacheTTL)
	playerCache := cache.NewStore("players", cfg.PlayerCacheTTL)
	rosterCache := cache.NewStore("rosters", cfg.RosterCacheTTL)
	statsCache := cache.NewStore("stats", cfg.StatsCacheTTL)

	registry := cache.NewRegistry(teamCache, playerCache, rosterCache, statsCache)
	sweeper := cache.NewSweeper(registry, cfg.CacheSweepInterval, logger)

	provider := nbastats.NewClient(nbastats.ClientConfig{
		BaseURL:    cfg.NBAAPIBaseURL,
		Season:     cfg.NBAAPISeason,
		Timeout:    cfg.NBAAPITimeout,
		MaxRetries: cfg.NBAAPIMaxRetries,
		Logger:     logger,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.NBAAPICircuitEnabled,
			FailureThreshold: cfg.NBAAPICircuitFailureCount,
			OpenTimeout:      cfg.NBAAPICircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.NBAAPICircuitHalfOpenMaxReq,
		},
	})

	teamRepo := memory.NewTeamRepository(memory.SeedTeams())
	rosterFetcher := usecase.NewRosterStatsFetcher(provider, playerCache, cfg.RosterBatchSize, cfg.RosterBatchDelay, logger)

	teamSvc := usecase.NewTeamService(teamRepo, provider, teamCache, statsCache, rosterCache, rosterFetcher, cfg.NBAAPISeason, logger)
	playerSvc := usecase.NewPlayerService(provider, playerCache, logger)
	scoreboardSvc := usecase.NewScoreboardService(provider, logger)
	standingsSvc := usecase.NewStandingsService(provider, statsCache, cfg.NBAAPISeason, logger)
	cacheAdminSvc := usecase.NewCacheAdminService(registry, logger)

	handler := httpapi.NewHandler(teamSvc, playerSvc, scoreboardSvc, standingsSvc, cacheAdminSvc, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return &App{Server: server, Sweeper: sweeper}, nil
}
