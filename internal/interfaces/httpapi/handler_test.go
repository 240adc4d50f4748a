package httpapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	sonic "github.com/bytedance/sonic"

	"github.com/hooplabs/courtside/internal/domain/game"
	"github.com/hooplabs/courtside/internal/domain/player"
	"github.com/hooplabs/courtside/internal/domain/stats"
	"github.com/hooplabs/courtside/internal/domain/team"
	"github.com/hooplabs/courtside/internal/infrastructure/repository/memory"
	"github.com/hooplabs/courtside/internal/platform/cache"
	"github.com/hooplabs/courtside/internal/platform/logging"
	"github.com/hooplabs/courtside/internal/usecase"
)

type stubProvider struct {
	teamTotals   stats.TeamTotals
	teamErr      error
	roster       []player.Player
	rosterErr    error
	playerTotals stats.PlayerTotals
	profile      player.Profile
	profileErr   error
	games        []game.Game
	standings    []team.Standing
}

func (s *stubProvider) TeamSeasonTotals(_ context.Context, _ int64, _ string) (stats.TeamTotals, error) {
	return s.teamTotals, s.teamErr
}

func (s *stubProvider) TeamRoster(_ context.Context, _ int64) ([]player.Player, error) {
	if s.rosterErr != nil {
		return nil, s.rosterErr
	}
	out := make([]player.Player, len(s.roster))
	copy(out, s.roster)
	return out, nil
}

func (s *stubProvider) PlayerSeasonTotals(_ context.Context, _ int64) (stats.PlayerTotals, error) {
	return s.playerTotals, nil
}

func (s *stubProvider) PlayerProfile(_ context.Context, _ int64) (player.Profile, error) {
	return s.profile, s.profileErr
}

func (s *stubProvider) GamesByDate(_ context.Context, _ time.Time) ([]game.Game, error) {
	return s.games, nil
}

func (s *stubProvider) Standings(_ context.Context, _ string) ([]team.Standing, error) {
	return s.standings, nil
}

func newTestRouter(t *testing.T, provider usecase.StatsProvider) http.Handler {
	t.Helper()

	logger := logging.NewNop()
	teamCache := cache.NewStore("teams", 10*time.Minute)
	playerCache := cache.NewStore("players", 15*time.Minute)
	rosterCache := cache.NewStore("rosters", 30*time.Minute)
	statsCache := cache.NewStore("stats", 5*time.Minute)

	teamRepo := memory.NewTeamRepository(memory.SeedTeams())
	fetcher := usecase.NewRosterStatsFetcher(provider, playerCache, 3, 0, logger)

	handler := NewHandler(
		usecase.NewTeamService(teamRepo, provider, teamCache, statsCache, rosterCache, fetcher, "2024-25", logger),
		usecase.NewPlayerService(provider, playerCache, logger),
		usecase.NewScoreboardService(provider, logger),
		usecase.NewStandingsService(provider, statsCache, "2024-25", logger),
		usecase.NewCacheAdminService(cache.NewRegistry(teamCache, playerCache, rosterCache, statsCache), logger),
		logger,
	)

	return NewRouter(handler, logger, []string{"*"})
}

func fptr(v float64) *float64 { return &v }

func healthyStubProvider() *stubProvider {
	return &stubProvider{
		teamTotals: stats.TeamTotals{
			GamesPlayed: 50, Wins: 30, Losses: 20, WinPct: fptr(0.6),
			Points: fptr(5800), FGMade: fptr(2100), FGAttempted: fptr(4400),
			FGPct: fptr(0.477), ThreeMade: fptr(700), ThreeAttempted: fptr(1900),
			ThreePct: fptr(0.368), FTMade: fptr(900), FTAttempted: fptr(1150),
			FTPct: fptr(0.783), Assists: fptr(1350), Turnovers: fptr(650),
			OffRebounds: fptr(520), DefRebounds: fptr(1680), TotalRebounds: fptr(2200),
			Steals: fptr(380), Blocks: fptr(260), PersonalFouls: fptr(900),
			PlusMinus: fptr(4.2),
		},
		roster: []player.Player{
			{ID: 201, Name: "Alpha Guard", Position: "G", JerseyNumber: "7"},
			{ID: 202, Name: "Bravo Forward", Position: "F", JerseyNumber: "21"},
		},
		playerTotals: stats.PlayerTotals{
			GamesPlayed: 50,
			Points:      fptr(1000),
			Rebounds:    fptr(300),
			Assists:     fptr(250),
			FGPct:       fptr(0.5),
			ThreePct:    fptr(0.38),
		},
	}
}

func TestRouter_ListTeams(t *testing.T) {
	router := newTestRouter(t, healthyStubProvider())

	req := httptest.NewRequest(http.MethodGet, "/v1/teams", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var body struct {
		Data teamListDTO `json:"data"`
	}
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}
	if body.Data.Count != 30 {
		t.Fatalf("expected 30 teams, got %d", body.Data.Count)
	}
	if body.Data.Teams[0].FullName == "" {
		t.Fatalf("expected team names in list payload")
	}
}

func TestRouter_TeamDetails_HealthyPayload(t *testing.T) {
	router := newTestRouter(t, healthyStubProvider())

	req := httptest.NewRequest(http.MethodGet, "/v1/teams/1610612738", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var body struct {
		Data teamDetailsDTO `json:"data"`
	}
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}
	if body.Data.BasicInfo.Abbreviation != "BOS" {
		t.Fatalf("expected BOS, got %q", body.Data.BasicInfo.Abbreviation)
	}
	if body.Data.SeasonStats == nil {
		t.Fatalf("expected season stats in healthy payload")
	}
	if got := body.Data.SeasonStats.OffensiveStats.AvgPoints; got == nil || *got != 116.0 {
		t.Fatalf("unexpected avg points: %v", got)
	}
	if body.Data.Note != "" {
		t.Fatalf("expected no degradation note, got %q", body.Data.Note)
	}
	if body.Data.RosterCount != 2 {
		t.Fatalf("expected roster count 2, got %d", body.Data.RosterCount)
	}
	for _, slot := range body.Data.Roster {
		if slot.Stats != nil {
			t.Fatalf("player stats should be absent unless requested, got %+v", slot.Stats)
		}
	}
}

func TestRouter_TeamDetails_MissingStatsSerializeAsNull(t *testing.T) {
	provider := healthyStubProvider()
	provider.teamTotals.Points = nil
	provider.teamTotals.PlusMinus = nil
	provider.teamTotals.Assists = nil
	provider.teamTotals.Turnovers = nil
	router := newTestRouter(t, provider)

	req := httptest.NewRequest(http.MethodGet, "/v1/teams/1610612738", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	raw := rec.Body.String()
	for _, key := range []string{
		`"avg_points":null`,
		`"plus_minus":null`,
		`"assists":null`,
		`"assist_to_turnover_ratio":null`,
	} {
		if !strings.Contains(raw, key) {
			t.Fatalf("expected %s in payload, body: %s", key, raw)
		}
	}
}

func TestRouter_TeamDetails_IncludePlayerStats(t *testing.T) {
	router := newTestRouter(t, healthyStubProvider())

	req := httptest.NewRequest(http.MethodGet, "/v1/teams/1610612738?include_player_stats=true", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var body struct {
		Data teamDetailsDTO `json:"data"`
	}
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}
	if len(body.Data.Roster) != 2 {
		t.Fatalf("expected 2 roster slots, got %d", len(body.Data.Roster))
	}
	for _, slot := range body.Data.Roster {
		if slot.Stats == nil {
			t.Fatalf("expected per-player stats for %s", slot.Name)
		}
		if slot.Stats.PPG != 20.0 {
			t.Fatalf("unexpected ppg for %s: %v", slot.Name, slot.Stats.PPG)
		}
	}
}

func TestRouter_TeamDetails_UnknownTeam(t *testing.T) {
	router := newTestRouter(t, healthyStubProvider())

	req := httptest.NewRequest(http.MethodGet, "/v1/teams/42", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}
	errorObj, ok := body["error"].(map[string]any)
	if !ok {
		t.Fatalf("expected error object in response")
	}
	if got, _ := errorObj["status"].(string); got != "NOT_FOUND" {
		t.Fatalf("expected NOT_FOUND status, got %v", errorObj["status"])
	}
}

func TestRouter_TeamDetails_BadParams(t *testing.T) {
	router := newTestRouter(t, healthyStubProvider())

	for _, target := range []string{
		"/v1/teams/not-a-number",
		"/v1/teams/1610612738?include_player_stats=sometimes",
	} {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected status 400, got %d", target, rec.Code)
		}
	}
}

func TestRouter_PlayerDetails(t *testing.T) {
	provider := healthyStubProvider()
	provider.profile = player.Profile{
		ID: 201, Name: "Alpha Guard", TeamName: "Boston Celtics",
		Position: "G", Height: "6-4", Weight: "195", Experience: 7,
	}
	router := newTestRouter(t, provider)

	req := httptest.NewRequest(http.MethodGet, "/v1/players/201", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var body struct {
		Data playerDetailsDTO `json:"data"`
	}
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}
	if body.Data.BasicInfo.Name != "Alpha Guard" {
		t.Fatalf("unexpected player name: %q", body.Data.BasicInfo.Name)
	}
	if body.Data.CurrentSeason.PPG != 20.0 {
		t.Fatalf("unexpected ppg: %v", body.Data.CurrentSeason.PPG)
	}
}

func TestRouter_CacheStatusAndClear(t *testing.T) {
	router := newTestRouter(t, healthyStubProvider())

	warm := httptest.NewRequest(http.MethodGet, "/v1/teams/1610612738", nil)
	router.ServeHTTP(httptest.NewRecorder(), warm)

	req := httptest.NewRequest(http.MethodGet, "/v1/cache/status", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	var status struct {
		Data cacheStatusDTO `json:"data"`
	}
	if err := sonic.Unmarshal(rec.Body.Bytes(), &status); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}
	if len(status.Data.Stores) != 4 {
		t.Fatalf("expected 4 cache stores, got %d", len(status.Data.Stores))
	}
	total := 0
	for _, store := range status.Data.Stores {
		total += store.Entries
	}
	if total == 0 {
		t.Fatalf("expected warmed caches to report entries")
	}

	clearReq := httptest.NewRequest(http.MethodPost, "/v1/cache/clear", nil)
	clearRec := httptest.NewRecorder()
	router.ServeHTTP(clearRec, clearReq)
	if clearRec.Code != http.StatusOK {
		t.Fatalf("expected status 200 on clear, got %d", clearRec.Code)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/cache/status", nil))
	if err := sonic.Unmarshal(rec.Body.Bytes(), &status); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}
	for _, store := range status.Data.Stores {
		if store.Entries != 0 {
			t.Fatalf("expected store %s empty after clear, got %d entries", store.Name, store.Entries)
		}
	}
}
