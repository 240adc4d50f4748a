package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/hooplabs/courtside/internal/domain/game"
	"github.com/hooplabs/courtside/internal/platform/logging"
)

// Scoreboard is one day of games.
type Scoreboard struct {
	Date  time.Time
	Games []game.Game
}

type ScoreboardService struct {
	provider StatsProvider
	logger   *logging.Logger
	now      func() time.Time
}

func NewScoreboardService(provider StatsProvider, logger *logging.Logger) *ScoreboardService {
	if logger == nil {
		logger = logging.Default()
	}
	return &ScoreboardService{
		provider: provider,
		logger:   logger,
		now:      time.Now,
	}
}

// TodayGames is served straight from the provider. Live scores change by
// the minute, so nothing here goes through a cache.
func (s *ScoreboardService) TodayGames(ctx context.Context) (Scoreboard, error) {
	ctx, span := startUsecaseSpan(ctx, "ScoreboardService.TodayGames")
	defer span.End()

	day := s.now().UTC()
	games, err := s.provider.GamesByDate(ctx, day)
	if err != nil {
		return Scoreboard{}, fmt.Errorf("fetch today games: %w", err)
	}

	return Scoreboard{Date: day, Games: games}, nil
}
