package httpapi

import (
	"time"

	"github.com/hooplabs/courtside/internal/domain/game"
	"github.com/hooplabs/courtside/internal/domain/player"
	"github.com/hooplabs/courtside/internal/domain/stats"
	"github.com/hooplabs/courtside/internal/domain/team"
	"github.com/hooplabs/courtside/internal/platform/cache"
	"github.com/hooplabs/courtside/internal/usecase"
)

// Team-level stat fields are pointers without omitempty: a value the
// provider never reported serializes as an explicit null, never as 0.

type teamBasicInfoDTO struct {
	ID           int64  `json:"id"`
	FullName     string `json:"full_name"`
	Abbreviation string `json:"abbreviation"`
	City         string `json:"city"`
	Nickname     string `json:"nickname"`
}

type teamListItemDTO struct {
	teamBasicInfoDTO
	Conference      string `json:"conference"`
	Division        string `json:"division"`
	PerformanceTier string `json:"performance_tier"`
	Championships   int    `json:"championships"`
}

type teamListDTO struct {
	Teams []teamListItemDTO `json:"teams"`
	Count int               `json:"count"`
}

type teamDetailsDTO struct {
	BasicInfo       teamBasicInfoDTO  `json:"basic_info"`
	Conference      string            `json:"conference"`
	Division        string            `json:"division"`
	PerformanceTier string            `json:"performance_tier"`
	Championships   int               `json:"championships"`
	Rivalries       []int64           `json:"rivalries"`
	Strengths       []string          `json:"strengths"`
	Weaknesses      []string          `json:"weaknesses"`
	SeasonStats     *seasonStatsDTO   `json:"season_stats"`
	Note            string            `json:"note,omitempty"`
	Roster          []rosterPlayerDTO `json:"roster"`
	RosterCount     int               `json:"roster_count"`
	RosterNote      string            `json:"roster_note,omitempty"`
}

type seasonStatsDTO struct {
	GamesPlayed    int               `json:"games_played"`
	Wins           int               `json:"wins"`
	Losses         int               `json:"losses"`
	WinPct         *float64          `json:"win_pct"`
	OffensiveStats offensiveStatsDTO `json:"offensive_stats"`
	DefensiveStats defensiveStatsDTO `json:"defensive_stats"`
	AdvancedStats  advancedStatsDTO  `json:"advanced_stats"`
}

type offensiveStatsDTO struct {
	AvgPoints           *float64 `json:"avg_points"`
	FGMade              *float64 `json:"fg_made"`
	FGAttempted         *float64 `json:"fg_attempted"`
	FGPct               *float64 `json:"fg_pct"`
	ThreePtMade         *float64 `json:"three_pt_made"`
	ThreePtAttempted    *float64 `json:"three_pt_attempted"`
	ThreePtPct          *float64 `json:"three_pt_pct"`
	FreeThrowsMade      *float64 `json:"free_throws_made"`
	FreeThrowsAttempted *float64 `json:"free_throws_attempted"`
	FreeThrowPct        *float64 `json:"free_throw_pct"`
	Assists             *float64 `json:"assists"`
	Turnovers           *float64 `json:"turnovers"`
	OffensiveRebounds   *float64 `json:"offensive_rebounds"`
}

type defensiveStatsDTO struct {
	DefensiveRebounds *float64 `json:"defensive_rebounds"`
	TotalRebounds     *float64 `json:"total_rebounds"`
	Steals            *float64 `json:"steals"`
	Blocks            *float64 `json:"blocks"`
	PersonalFouls     *float64 `json:"personal_fouls"`
}

type advancedStatsDTO struct {
	PlusMinus             *float64 `json:"plus_minus"`
	TrueShootingPct       *float64 `json:"true_shooting_pct"`
	EffectiveFGPct        *float64 `json:"effective_fg_pct"`
	AssistToTurnoverRatio *float64 `json:"assist_to_turnover_ratio"`
}

// playerStatsDTO follows the roster-table convention: absent player stats
// are zero-valued, not null.
type playerStatsDTO struct {
	Games      int     `json:"games"`
	PPG        float64 `json:"ppg"`
	RPG        float64 `json:"rpg"`
	APG        float64 `json:"apg"`
	FGPct      float64 `json:"fg_pct"`
	ThreePtPct float64 `json:"three_pt_pct"`
}

type rosterPlayerDTO struct {
	PlayerID     int64           `json:"player_id"`
	Name         string          `json:"name"`
	JerseyNumber string          `json:"jersey_number"`
	Position     string          `json:"position"`
	Height       string          `json:"height"`
	Weight       string          `json:"weight"`
	BirthDate    string          `json:"birth_date"`
	Age          int             `json:"age"`
	Experience   string          `json:"experience"`
	School       string          `json:"school"`
	Stats        *playerStatsDTO `json:"stats,omitempty"`
}

type playerBasicInfoDTO struct {
	PlayerID   int64  `json:"player_id"`
	Name       string `json:"name"`
	Team       string `json:"team"`
	Position   string `json:"position"`
	Height     string `json:"height"`
	Weight     string `json:"weight"`
	Experience int    `json:"experience"`
}

type playerDetailsDTO struct {
	BasicInfo     playerBasicInfoDTO `json:"basic_info"`
	CurrentSeason playerStatsDTO     `json:"current_season"`
	Note          string             `json:"note,omitempty"`
}

type gameDTO struct {
	GameID     string `json:"game_id"`
	HomeTeam   int64  `json:"home_team"`
	AwayTeam   int64  `json:"away_team"`
	HomeScore  int    `json:"home_score"`
	AwayScore  int    `json:"away_score"`
	GameStatus string `json:"game_status"`
	GameTime   string `json:"game_time"`
}

type scoreboardDTO struct {
	Games []gameDTO `json:"games"`
	Date  string    `json:"date"`
}

type standingDTO struct {
	TeamID       int64   `json:"team_id"`
	TeamName     string  `json:"team_name"`
	Wins         int     `json:"wins"`
	Losses       int     `json:"losses"`
	WinPct       float64 `json:"win_pct"`
	ConfRank     int     `json:"conf_rank"`
	DivisionRank int     `json:"division_rank"`
	Conference   string  `json:"conference"`
}

type standingsDTO struct {
	Standings []standingDTO `json:"standings"`
}

type cacheStoreStatusDTO struct {
	Name       string `json:"name"`
	Entries    int    `json:"entries"`
	TTLSeconds int    `json:"ttl_seconds"`
}

type cacheStatusDTO struct {
	Stores []cacheStoreStatusDTO `json:"stores"`
}

type cacheClearDTO struct {
	Cleared bool `json:"cleared"`
}

func teamToBasicInfoDTO(item team.Team) teamBasicInfoDTO {
	return teamBasicInfoDTO{
		ID:           item.ID,
		FullName:     item.FullName,
		Abbreviation: item.Abbreviation,
		City:         item.City,
		Nickname:     item.Nickname,
	}
}

func teamToListItemDTO(item team.Team) teamListItemDTO {
	return teamListItemDTO{
		teamBasicInfoDTO: teamToBasicInfoDTO(item),
		Conference:       item.Conference,
		Division:         item.Division,
		PerformanceTier:  item.PerformanceTier,
		Championships:    item.Championships,
	}
}

func seasonStatsToDTO(record *stats.SeasonStats) *seasonStatsDTO {
	if record == nil {
		return nil
	}
	return &seasonStatsDTO{
		GamesPlayed: record.GamesPlayed,
		Wins:        record.Wins,
		Losses:      record.Losses,
		WinPct:      record.WinPct,
		OffensiveStats: offensiveStatsDTO{
			AvgPoints:           record.Offense.AvgPoints,
			FGMade:              record.Offense.FGMade,
			FGAttempted:         record.Offense.FGAttempted,
			FGPct:               record.Offense.FGPct,
			ThreePtMade:         record.Offense.ThreeMade,
			ThreePtAttempted:    record.Offense.ThreeAttempted,
			ThreePtPct:          record.Offense.ThreePct,
			FreeThrowsMade:      record.Offense.FTMade,
			FreeThrowsAttempted: record.Offense.FTAttempted,
			FreeThrowPct:        record.Offense.FTPct,
			Assists:             record.Offense.Assists,
			Turnovers:           record.Offense.Turnovers,
			OffensiveRebounds:   record.Offense.OffRebounds,
		},
		DefensiveStats: defensiveStatsDTO{
			DefensiveRebounds: record.Defense.DefRebounds,
			TotalRebounds:     record.Defense.TotalRebounds,
			Steals:            record.Defense.Steals,
			Blocks:            record.Defense.Blocks,
			PersonalFouls:     record.Defense.PersonalFouls,
		},
		AdvancedStats: advancedStatsDTO{
			PlusMinus:             record.Advanced.PlusMinus,
			TrueShootingPct:       record.Advanced.TrueShootingPct,
			EffectiveFGPct:        record.Advanced.EffectiveFGPct,
			AssistToTurnoverRatio: record.Advanced.AssistTurnoverRatio,
		},
	}
}

func averagesToStatsDTO(averages *stats.PlayerAverages) *playerStatsDTO {
	if averages == nil {
		return nil
	}
	return &playerStatsDTO{
		Games:      averages.Games,
		PPG:        averages.PointsPerGame,
		RPG:        averages.ReboundsPerGame,
		APG:        averages.AssistsPerGame,
		FGPct:      averages.FGPct,
		ThreePtPct: averages.ThreePct,
	}
}

func rosterToDTO(roster []player.Player) []rosterPlayerDTO {
	out := make([]rosterPlayerDTO, 0, len(roster))
	for _, item := range roster {
		out = append(out, rosterPlayerDTO{
			PlayerID:     item.ID,
			Name:         item.Name,
			JerseyNumber: item.JerseyNumber,
			Position:     item.Position,
			Height:       item.Height,
			Weight:       item.Weight,
			BirthDate:    item.BirthDate,
			Age:          item.Age,
			Experience:   item.Experience,
			School:       item.School,
			Stats:        averagesToStatsDTO(item.Averages),
		})
	}
	return out
}

func teamDetailsToDTO(details usecase.TeamDetails) teamDetailsDTO {
	return teamDetailsDTO{
		BasicInfo:       teamToBasicInfoDTO(details.Team),
		Conference:      details.Team.Conference,
		Division:        details.Team.Division,
		PerformanceTier: details.Team.PerformanceTier,
		Championships:   details.Team.Championships,
		Rivalries:       details.Team.RivalTeamIDs,
		Strengths:       details.Team.Strengths,
		Weaknesses:      details.Team.Weaknesses,
		SeasonStats:     seasonStatsToDTO(details.SeasonStats),
		Note:            details.StatsNote,
		Roster:          rosterToDTO(details.Roster),
		RosterCount:     details.RosterCount,
		RosterNote:      details.RosterNote,
	}
}

func profileToDTO(profile player.Profile) playerDetailsDTO {
	out := playerDetailsDTO{
		BasicInfo: playerBasicInfoDTO{
			PlayerID:   profile.ID,
			Name:       profile.Name,
			Team:       profile.TeamName,
			Position:   profile.Position,
			Height:     profile.Height,
			Weight:     profile.Weight,
			Experience: profile.Experience,
		},
		Note: profile.StatsNote,
	}
	if season := averagesToStatsDTO(profile.CurrentSeason); season != nil {
		out.CurrentSeason = *season
	}
	return out
}

func scoreboardToDTO(board usecase.Scoreboard) scoreboardDTO {
	games := make([]gameDTO, 0, len(board.Games))
	for _, item := range board.Games {
		games = append(games, gameToDTO(item))
	}
	return scoreboardDTO{Games: games, Date: board.Date.Format("01/02/2006")}
}

func gameToDTO(item game.Game) gameDTO {
	return gameDTO{
		GameID:     item.ID,
		HomeTeam:   item.HomeTeamID,
		AwayTeam:   item.AwayTeamID,
		HomeScore:  item.HomeScore,
		AwayScore:  item.AwayScore,
		GameStatus: item.StatusText,
		GameTime:   item.StartTimeEST,
	}
}

func standingsToDTO(rows []team.Standing) standingsDTO {
	out := make([]standingDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, standingDTO{
			TeamID:       row.TeamID,
			TeamName:     row.TeamName,
			Wins:         row.Wins,
			Losses:       row.Losses,
			WinPct:       row.WinPct,
			ConfRank:     row.ConferenceRank,
			DivisionRank: row.DivisionRank,
			Conference:   row.Conference,
		})
	}
	return standingsDTO{Standings: out}
}

func cacheStatusToDTO(rows []cache.StoreStatus) cacheStatusDTO {
	out := make([]cacheStoreStatusDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, cacheStoreStatusDTO{
			Name:       row.Name,
			Entries:    row.Size,
			TTLSeconds: int(row.TTL / time.Second),
		})
	}
	return cacheStatusDTO{Stores: out}
}
