package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/hooplabs/courtside/internal/domain/game"
	"github.com/hooplabs/courtside/internal/domain/team"
	"github.com/hooplabs/courtside/internal/platform/cache"
	"github.com/hooplabs/courtside/internal/platform/logging"
)

func TestScoreboardService_TodayGames(t *testing.T) {
	provider := newFakeProvider()
	provider.games = []game.Game{
		{ID: "0022400001", HomeTeamID: 1610612747, AwayTeamID: 1610612744, HomeScore: 108, AwayScore: 112, StatusText: "Final"},
	}

	svc := NewScoreboardService(provider, logging.NewNop())
	svc.now = func() time.Time { return time.Date(2025, 6, 10, 19, 0, 0, 0, time.UTC) }

	board, err := svc.TodayGames(t.Context())
	if err != nil {
		t.Fatalf("today games failed: %v", err)
	}
	if len(board.Games) != 1 || board.Games[0].AwayScore != 112 {
		t.Fatalf("unexpected scoreboard: %+v", board)
	}
	if board.Date.Day() != 10 {
		t.Fatalf("unexpected date: %v", board.Date)
	}
}

func TestScoreboardService_ProviderFailurePropagates(t *testing.T) {
	provider := newFakeProvider()
	provider.gamesErr = ErrDependencyUnavailable

	svc := NewScoreboardService(provider, logging.NewNop())

	_, err := svc.TodayGames(t.Context())
	if !errors.Is(err, ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable, got %v", err)
	}
}

func TestStandingsService_CachesTable(t *testing.T) {
	provider := newFakeProvider()
	provider.standings = []team.Standing{
		{TeamID: 1610612738, TeamName: "Celtics", Wins: 57, Losses: 25, WinPct: 0.695, ConferenceRank: 1, DivisionRank: 1, Conference: "East"},
	}

	store := cache.NewStore("stats", 5*time.Minute)
	svc := NewStandingsService(provider, store, "2024-25", logging.NewNop())

	rows, err := svc.Standings(t.Context())
	if err != nil {
		t.Fatalf("standings failed: %v", err)
	}
	if len(rows) != 1 || rows[0].TeamName != "Celtics" {
		t.Fatalf("unexpected standings: %+v", rows)
	}

	provider.standingsErr = errors.New("provider down")
	rows, err = svc.Standings(t.Context())
	if err != nil {
		t.Fatalf("cached standings failed: %v", err)
	}
	if len(rows) != 1 {
		t.Fatal("expected cached table while provider is down")
	}
}

func TestCacheAdminService_StatusAndClear(t *testing.T) {
	one := cache.NewStore("teams", time.Minute)
	two := cache.NewStore("stats", time.Minute)
	one.Set(t.Context(), "a", 1)
	two.Set(t.Context(), "b", 2)

	registry := cache.NewRegistry(one, two)
	svc := NewCacheAdminService(registry, logging.NewNop())

	status := svc.Status(t.Context())
	if len(status) != 2 {
		t.Fatalf("expected two stores, got %d", len(status))
	}
	if status[0].Name != "teams" || status[0].Size != 1 {
		t.Fatalf("unexpected status row: %+v", status[0])
	}

	svc.Clear(t.Context())
	if one.Len() != 0 || two.Len() != 0 {
		t.Fatal("clear must empty every store")
	}
}
