package usecase

import (
	"context"
	"fmt"

	"github.com/hooplabs/courtside/internal/domain/player"
	"github.com/hooplabs/courtside/internal/domain/stats"
	"github.com/hooplabs/courtside/internal/platform/cache"
	"github.com/hooplabs/courtside/internal/platform/logging"
)

type PlayerService struct {
	provider    StatsProvider
	playerCache *cache.Store
	logger      *logging.Logger
}

func NewPlayerService(provider StatsProvider, playerCache *cache.Store, logger *logging.Logger) *PlayerService {
	if logger == nil {
		logger = logging.Default()
	}
	return &PlayerService{
		provider:    provider,
		playerCache: playerCache,
		logger:      logger,
	}
}

// GetPlayerDetails returns a player profile. Identity is mandatory: an
// unknown player is terminal. A failed stats fetch degrades to zero-valued
// averages with a note.
func (s *PlayerService) GetPlayerDetails(ctx context.Context, playerID int64) (player.Profile, error) {
	ctx, span := startUsecaseSpan(ctx, "PlayerService.GetPlayerDetails")
	defer span.End()

	if playerID <= 0 {
		return player.Profile{}, fmt.Errorf("%w: player id must be greater than zero", ErrInvalidInput)
	}

	key := fmt.Sprintf("player_details_%d", playerID)
	out, err := s.playerCache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		profile, err := s.provider.PlayerProfile(ctx, playerID)
		if err != nil {
			return nil, err
		}

		totals, err := s.provider.PlayerSeasonTotals(ctx, playerID)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			s.logger.WarnContext(ctx, "player stats degraded", "player_id", playerID, "error", err)
			profile.CurrentSeason = &stats.PlayerAverages{}
			profile.StatsNote = noteStatsUnavailable
			return profile, nil
		}

		averages := stats.PlayerAveragesFromTotals(totals)
		profile.CurrentSeason = &averages
		return profile, nil
	})
	if err != nil {
		return player.Profile{}, err
	}

	profile, ok := out.(player.Profile)
	if !ok {
		return player.Profile{}, fmt.Errorf("unexpected cached payload type %T", out)
	}

	return profile, nil
}
