package nbastats

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/hooplabs/courtside/internal/domain/game"
	"github.com/hooplabs/courtside/internal/domain/player"
	"github.com/hooplabs/courtside/internal/domain/stats"
	"github.com/hooplabs/courtside/internal/domain/team"
	"github.com/hooplabs/courtside/internal/usecase"
)

const (
	setOverallTeamDashboard = "OverallTeamDashboard"
	setCommonTeamRoster     = "CommonTeamRoster"
	setByYearDashboard      = "ByYearPlayerDashboard"
	setCommonPlayerInfo     = "CommonPlayerInfo"
	setGameHeader           = "GameHeader"
	setLineScore            = "LineScore"
	setStandings            = "Standings"
)

// TeamSeasonTotals fetches one season of raw team totals. The derived
// per-game record is computed downstream.
func (c *Client) TeamSeasonTotals(ctx context.Context, teamID int64, season string) (stats.TeamTotals, error) {
	if season == "" {
		season = c.season
	}

	var payload envelope
	err := c.doJSON(ctx, "/teamdashboardbygeneralsplits", map[string]string{
		"TeamID":      strconv.FormatInt(teamID, 10),
		"Season":      season,
		"SeasonType":  seasonTypeRegular,
		"MeasureType": "Base",
		"PerMode":     "Totals",
		"LeagueID":    leagueID,
	}, &payload)
	if err != nil {
		return stats.TeamTotals{}, fmt.Errorf("fetch team dashboard team_id=%d: %w", teamID, err)
	}

	set, ok := payload.find(setOverallTeamDashboard)
	if !ok || len(set.RowSet) == 0 {
		return stats.TeamTotals{}, fmt.Errorf("%w: team dashboard team_id=%d", usecase.ErrNoData, teamID)
	}

	r := set.rows()[0]
	return stats.TeamTotals{
		GamesPlayed:    r.int("GP"),
		Wins:           r.int("W"),
		Losses:         r.int("L"),
		WinPct:         r.float("W_PCT"),
		Points:         r.float("PTS"),
		FGMade:         r.float("FGM"),
		FGAttempted:    r.float("FGA"),
		FGPct:          r.float("FG_PCT"),
		ThreeMade:      r.float("FG3M"),
		ThreeAttempted: r.float("FG3A"),
		ThreePct:       r.float("FG3_PCT"),
		FTMade:         r.float("FTM"),
		FTAttempted:    r.float("FTA"),
		FTPct:          r.float("FT_PCT"),
		Assists:        r.float("AST"),
		Turnovers:      r.float("TOV"),
		OffRebounds:    r.float("OREB"),
		DefRebounds:    r.float("DREB"),
		TotalRebounds:  r.float("REB"),
		Steals:         r.float("STL"),
		Blocks:         r.float("BLK"),
		PersonalFouls:  r.float("PF"),
		PlusMinus:      r.float("PLUS_MINUS"),
	}, nil
}

// TeamRoster returns the current roster in provider order. Player averages
// are left nil for the roster-stats fetcher to fill in.
func (c *Client) TeamRoster(ctx context.Context, teamID int64) ([]player.Player, error) {
	var payload envelope
	err := c.doJSON(ctx, "/commonteamroster", map[string]string{
		"TeamID":   strconv.FormatInt(teamID, 10),
		"Season":   c.season,
		"LeagueID": leagueID,
	}, &payload)
	if err != nil {
		return nil, fmt.Errorf("fetch roster team_id=%d: %w", teamID, err)
	}

	set, ok := payload.find(setCommonTeamRoster)
	if !ok || len(set.RowSet) == 0 {
		return nil, fmt.Errorf("%w: roster team_id=%d", usecase.ErrNoData, teamID)
	}

	roster := make([]player.Player, 0, len(set.RowSet))
	for _, r := range set.rows() {
		id := r.int64("PLAYER_ID")
		if id <= 0 {
			continue
		}
		roster = append(roster, player.Player{
			ID:           id,
			Name:         orNA(r.text("PLAYER")),
			JerseyNumber: orNA(r.text("NUM")),
			Position:     orNA(r.text("POSITION")),
			Height:       orNA(r.text("HEIGHT")),
			Weight:       orNA(r.text("WEIGHT")),
			BirthDate:    orNA(r.text("BIRTH_DATE")),
			Age:          r.int("AGE"),
			Experience:   orRookie(r.text("EXP")),
			School:       orNA(r.text("SCHOOL")),
		})
	}

	return roster, nil
}

// PlayerSeasonTotals returns the player's most recent season row.
func (c *Client) PlayerSeasonTotals(ctx context.Context, playerID int64) (stats.PlayerTotals, error) {
	var payload envelope
	err := c.doJSON(ctx, "/playerdashboardbyyearoveryear", map[string]string{
		"PlayerID":    strconv.FormatInt(playerID, 10),
		"Season":      c.season,
		"SeasonType":  seasonTypeRegular,
		"MeasureType": "Base",
		"PerMode":     "Totals",
		"LeagueID":    leagueID,
	}, &payload)
	if err != nil {
		return stats.PlayerTotals{}, fmt.Errorf("fetch player dashboard player_id=%d: %w", playerID, err)
	}

	set, ok := payload.find(setByYearDashboard)
	if !ok || len(set.RowSet) == 0 {
		return stats.PlayerTotals{}, fmt.Errorf("%w: player dashboard player_id=%d", usecase.ErrNoData, playerID)
	}

	// Rows are ordered most recent season first.
	r := set.rows()[0]
	return stats.PlayerTotals{
		GamesPlayed: r.int("GP"),
		Points:      r.float("PTS"),
		Rebounds:    r.float("REB"),
		Assists:     r.float("AST"),
		FGPct:       r.float("FG_PCT"),
		ThreePct:    r.float("FG3_PCT"),
	}, nil
}

// PlayerProfile returns biographical identity only. An unknown player maps
// to ErrNotFound so callers can treat identity as terminal.
func (c *Client) PlayerProfile(ctx context.Context, playerID int64) (player.Profile, error) {
	var payload envelope
	err := c.doJSON(ctx, "/commonplayerinfo", map[string]string{
		"PlayerID": strconv.FormatInt(playerID, 10),
		"LeagueID": leagueID,
	}, &payload)
	if err != nil {
		return player.Profile{}, fmt.Errorf("fetch player info player_id=%d: %w", playerID, err)
	}

	set, ok := payload.find(setCommonPlayerInfo)
	if !ok || len(set.RowSet) == 0 {
		return player.Profile{}, fmt.Errorf("%w: player %d", usecase.ErrNotFound, playerID)
	}

	r := set.rows()[0]
	name := r.text("FIRST_NAME")
	if last := r.text("LAST_NAME"); last != "" {
		if name != "" {
			name += " "
		}
		name += last
	}
	teamName := r.text("TEAM_NAME")
	if teamName == "" {
		teamName = "Free Agent"
	}

	return player.Profile{
		ID:         playerID,
		Name:       name,
		TeamName:   teamName,
		Position:   orNA(r.text("POSITION")),
		Height:     orNA(r.text("HEIGHT")),
		Weight:     orNA(r.text("WEIGHT")),
		Experience: r.int("SEASON_EXP"),
	}, nil
}

// GamesByDate returns the scoreboard for one calendar day, joining the
// game headers with their line scores.
func (c *Client) GamesByDate(ctx context.Context, day time.Time) ([]game.Game, error) {
	var payload envelope
	err := c.doJSON(ctx, "/scoreboardv2", map[string]string{
		"GameDate":  day.Format("01/02/2006"),
		"LeagueID":  leagueID,
		"DayOffset": "0",
	}, &payload)
	if err != nil {
		return nil, fmt.Errorf("fetch scoreboard date=%s: %w", day.Format("2006-01-02"), err)
	}

	headers, ok := payload.find(setGameHeader)
	if !ok {
		return nil, fmt.Errorf("%w: scoreboard date=%s", usecase.ErrNoData, day.Format("2006-01-02"))
	}

	type lineKey struct {
		gameID string
		teamID int64
	}
	points := make(map[lineKey]int)
	if lines, ok := payload.find(setLineScore); ok {
		for _, r := range lines.rows() {
			key := lineKey{gameID: r.text("GAME_ID"), teamID: r.int64("TEAM_ID")}
			points[key] = r.int("PTS")
		}
	}

	games := make([]game.Game, 0, len(headers.RowSet))
	for _, r := range headers.rows() {
		gameID := r.text("GAME_ID")
		if gameID == "" {
			continue
		}
		homeID := r.int64("HOME_TEAM_ID")
		awayID := r.int64("VISITOR_TEAM_ID")
		games = append(games, game.Game{
			ID:           gameID,
			HomeTeamID:   homeID,
			AwayTeamID:   awayID,
			HomeScore:    points[lineKey{gameID: gameID, teamID: homeID}],
			AwayScore:    points[lineKey{gameID: gameID, teamID: awayID}],
			StatusText:   r.text("GAME_STATUS_TEXT"),
			StartTimeEST: r.text("GAME_DATE_EST"),
		})
	}

	return games, nil
}

// Standings returns the league table for the season.
func (c *Client) Standings(ctx context.Context, season string) ([]team.Standing, error) {
	if season == "" {
		season = c.season
	}

	var payload envelope
	err := c.doJSON(ctx, "/leaguestandingsv3", map[string]string{
		"Season":     season,
		"SeasonType": seasonTypeRegular,
		"LeagueID":   leagueID,
	}, &payload)
	if err != nil {
		return nil, fmt.Errorf("fetch standings season=%s: %w", season, err)
	}

	set, ok := payload.find(setStandings)
	if !ok || len(set.RowSet) == 0 {
		return nil, fmt.Errorf("%w: standings season=%s", usecase.ErrNoData, season)
	}

	out := make([]team.Standing, 0, len(set.RowSet))
	for _, r := range set.rows() {
		teamID := r.int64("TeamID")
		if teamID <= 0 {
			continue
		}
		winPct := 0.0
		if v := r.float("WinPCT"); v != nil {
			winPct = *v
		}
		out = append(out, team.Standing{
			TeamID:         teamID,
			TeamName:       r.text("TeamName"),
			Wins:           r.int("WINS"),
			Losses:         r.int("LOSSES"),
			WinPct:         winPct,
			ConferenceRank: r.int("PlayoffRank"),
			DivisionRank:   r.int("DivisionRank"),
			Conference:     r.text("Conference"),
		})
	}

	return out, nil
}

func orNA(value string) string {
	if value == "" {
		return "N/A"
	}
	return value
}

func orRookie(value string) string {
	if value == "" {
		return "R"
	}
	return value
}
