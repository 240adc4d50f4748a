package usecase

import (
	"context"
	"time"

	"github.com/hooplabs/courtside/internal/domain/game"
	"github.com/hooplabs/courtside/internal/domain/player"
	"github.com/hooplabs/courtside/internal/domain/stats"
	"github.com/hooplabs/courtside/internal/domain/team"
)

// StatsProvider is the upstream league-data dependency. Implementations
// return ErrNoData when an entity exists but has no rows yet, ErrNotFound
// when the entity itself is unknown upstream, and wrap
// ErrDependencyUnavailable for transport-level failures.
type StatsProvider interface {
	TeamSeasonTotals(ctx context.Context, teamID int64, season string) (stats.TeamTotals, error)
	TeamRoster(ctx context.Context, teamID int64) ([]player.Player, error)
	PlayerSeasonTotals(ctx context.Context, playerID int64) (stats.PlayerTotals, error)
	PlayerProfile(ctx context.Context, playerID int64) (player.Profile, error)
	GamesByDate(ctx context.Context, day time.Time) ([]game.Game, error)
	Standings(ctx context.Context, season string) ([]team.Standing, error)
}
