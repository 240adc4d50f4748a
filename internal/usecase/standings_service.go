package usecase

import (
	"context"
	"fmt"

	"github.com/hooplabs/courtside/internal/domain/team"
	"github.com/hooplabs/courtside/internal/platform/cache"
	"github.com/hooplabs/courtside/internal/platform/logging"
)

type StandingsService struct {
	provider   StatsProvider
	statsCache *cache.Store
	season     string
	logger     *logging.Logger
}

func NewStandingsService(provider StatsProvider, statsCache *cache.Store, season string, logger *logging.Logger) *StandingsService {
	if logger == nil {
		logger = logging.Default()
	}
	return &StandingsService{
		provider:   provider,
		statsCache: statsCache,
		season:     season,
		logger:     logger,
	}
}

// Standings returns the league table, cached under the short stats TTL so
// the table tracks the schedule without hammering the provider.
func (s *StandingsService) Standings(ctx context.Context) ([]team.Standing, error) {
	ctx, span := startUsecaseSpan(ctx, "StandingsService.Standings")
	defer span.End()

	key := fmt.Sprintf("standings_%s", s.season)
	out, err := s.statsCache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		rows, err := s.provider.Standings(ctx, s.season)
		if err != nil {
			return nil, err
		}
		return rows, nil
	})
	if err != nil {
		return nil, fmt.Errorf("fetch standings: %w", err)
	}

	rows, ok := out.([]team.Standing)
	if !ok {
		return nil, fmt.Errorf("unexpected cached payload type %T", out)
	}

	return rows, nil
}
