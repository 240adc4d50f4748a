package usecase

import (
	"context"
	"fmt"

	"github.com/sourcegraph/conc"

	"github.com/hooplabs/courtside/internal/domain/player"
	"github.com/hooplabs/courtside/internal/domain/stats"
	"github.com/hooplabs/courtside/internal/domain/team"
	"github.com/hooplabs/courtside/internal/platform/cache"
	"github.com/hooplabs/courtside/internal/platform/logging"
)

const (
	noteStatsUnavailable  = "NBA API stats temporarily unavailable"
	noteRosterUnavailable = "NBA API roster temporarily unavailable"
)

// TeamDetails is the aggregated team payload. SeasonStats and Roster are
// each independently degradable; the notes say which branch fell back.
type TeamDetails struct {
	Team        team.Team
	SeasonStats *stats.SeasonStats
	StatsNote   string
	Roster      []player.Player
	RosterCount int
	RosterNote  string
}

type TeamService struct {
	teamRepo    team.Repository
	provider    StatsProvider
	teamCache   *cache.Store
	statsCache  *cache.Store
	rosterCache *cache.Store
	roster      *RosterStatsFetcher
	season      string
	logger      *logging.Logger
}

func NewTeamService(
	teamRepo team.Repository,
	provider StatsProvider,
	teamCache, statsCache, rosterCache *cache.Store,
	roster *RosterStatsFetcher,
	season string,
	logger *logging.Logger,
) *TeamService {
	if logger == nil {
		logger = logging.Default()
	}
	return &TeamService{
		teamRepo:    teamRepo,
		provider:    provider,
		teamCache:   teamCache,
		statsCache:  statsCache,
		rosterCache: rosterCache,
		roster:      roster,
		season:      season,
		logger:      logger,
	}
}

func (s *TeamService) ListTeams(ctx context.Context) ([]team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "TeamService.ListTeams")
	defer span.End()

	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}

	return teams, nil
}

// GetTeamDetails aggregates identity, season stats, and roster for one
// team. The aggregate cache key carries the roster-stats flag so the two
// response shapes never collide.
func (s *TeamService) GetTeamDetails(ctx context.Context, teamID int64, includePlayerStats bool) (TeamDetails, error) {
	ctx, span := startUsecaseSpan(ctx, "TeamService.GetTeamDetails")
	defer span.End()

	if teamID <= 0 {
		return TeamDetails{}, fmt.Errorf("%w: team id must be greater than zero", ErrInvalidInput)
	}

	identity, found, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return TeamDetails{}, fmt.Errorf("get team: %w", err)
	}
	if !found {
		return TeamDetails{}, fmt.Errorf("%w: team=%d", ErrNotFound, teamID)
	}

	key := fmt.Sprintf("team_%d_%t", teamID, includePlayerStats)
	out, err := s.teamCache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		return s.buildTeamDetails(ctx, identity, includePlayerStats)
	})
	if err != nil {
		return TeamDetails{}, err
	}

	details, ok := out.(TeamDetails)
	if !ok {
		return TeamDetails{}, fmt.Errorf("unexpected cached payload type %T", out)
	}

	return details, nil
}

func (s *TeamService) buildTeamDetails(ctx context.Context, identity team.Team, includePlayerStats bool) (TeamDetails, error) {
	details := TeamDetails{Team: identity}

	var wg conc.WaitGroup
	wg.Go(func() {
		seasonStats, err := s.seasonStats(ctx, identity.ID)
		if err != nil {
			s.logger.WarnContext(ctx, "team stats degraded", "team_id", identity.ID, "error", err)
			details.StatsNote = noteStatsUnavailable
			return
		}
		details.SeasonStats = seasonStats
	})
	wg.Go(func() {
		roster, err := s.rosterForTeam(ctx, identity.ID, includePlayerStats)
		if err != nil {
			s.logger.WarnContext(ctx, "team roster degraded", "team_id", identity.ID, "error", err)
			details.RosterNote = noteRosterUnavailable
			return
		}
		details.Roster = roster
		details.RosterCount = len(roster)
	})
	wg.Wait()

	// A cancelled request fails both branches instantly. That is not
	// upstream degradation, so the aggregate must not be cached.
	if err := ctx.Err(); err != nil {
		return TeamDetails{}, err
	}

	return details, nil
}

func (s *TeamService) seasonStats(ctx context.Context, teamID int64) (*stats.SeasonStats, error) {
	key := fmt.Sprintf("team_stats_%d", teamID)
	out, err := s.statsCache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		totals, err := s.provider.TeamSeasonTotals(ctx, teamID, s.season)
		if err != nil {
			return nil, err
		}
		return stats.TeamSeasonStats(totals), nil
	})
	if err != nil {
		return nil, err
	}

	record, ok := out.(stats.SeasonStats)
	if !ok {
		return nil, fmt.Errorf("unexpected cached payload type %T", out)
	}

	return &record, nil
}

func (s *TeamService) rosterForTeam(ctx context.Context, teamID int64, includePlayerStats bool) ([]player.Player, error) {
	key := fmt.Sprintf("roster_basic_%d", teamID)
	if includePlayerStats {
		key = fmt.Sprintf("roster_with_stats_%d", teamID)
	}

	out, err := s.rosterCache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		roster, err := s.provider.TeamRoster(ctx, teamID)
		if err != nil {
			return nil, err
		}
		if includePlayerStats {
			if err := s.roster.Populate(ctx, roster); err != nil {
				return nil, err
			}
		}
		return roster, nil
	})
	if err != nil {
		return nil, err
	}

	roster, ok := out.([]player.Player)
	if !ok {
		return nil, fmt.Errorf("unexpected cached payload type %T", out)
	}

	return roster, nil
}
