package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hooplabs/courtside/internal/domain/player"
	"github.com/hooplabs/courtside/internal/domain/stats"
	"github.com/hooplabs/courtside/internal/platform/cache"
	"github.com/hooplabs/courtside/internal/platform/logging"
)

func TestPlayerService_GetPlayerDetails(t *testing.T) {
	provider := newFakeProvider()
	provider.profiles[2544] = player.Profile{
		ID:         2544,
		Name:       "LeBron James",
		TeamName:   "Los Angeles Lakers",
		Position:   "Forward",
		Height:     "6-9",
		Weight:     "250",
		Experience: 21,
	}
	provider.playerTotals[2544] = stats.PlayerTotals{
		GamesPlayed: 70,
		Points:      fptr(1883),
		Rebounds:    fptr(518),
		Assists:     fptr(574),
		FGPct:       fptr(0.54),
		ThreePct:    fptr(0.41),
	}

	store := cache.NewStore("players", 15*time.Minute)
	svc := NewPlayerService(provider, store, logging.NewNop())

	profile, err := svc.GetPlayerDetails(t.Context(), 2544)
	if err != nil {
		t.Fatalf("get player details failed: %v", err)
	}
	if profile.Name != "LeBron James" || profile.Experience != 21 {
		t.Fatalf("unexpected profile: %+v", profile)
	}
	if profile.CurrentSeason == nil {
		t.Fatal("expected current season averages")
	}
	if profile.CurrentSeason.PointsPerGame != 26.9 {
		t.Fatalf("unexpected ppg: %v", profile.CurrentSeason.PointsPerGame)
	}
	if profile.StatsNote != "" {
		t.Fatalf("healthy path must carry no note: %q", profile.StatsNote)
	}
}

func TestPlayerService_UnknownPlayerIsTerminal(t *testing.T) {
	store := cache.NewStore("players", 15*time.Minute)
	svc := NewPlayerService(newFakeProvider(), store, logging.NewNop())

	_, err := svc.GetPlayerDetails(t.Context(), 999)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if store.Len() != 0 {
		t.Fatal("terminal identity failures must not be cached")
	}

	_, err = svc.GetPlayerDetails(t.Context(), -1)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestPlayerService_StatsDegradeWithNote(t *testing.T) {
	provider := newFakeProvider()
	provider.profiles[201939] = player.Profile{ID: 201939, Name: "Stephen Curry", TeamName: "Golden State Warriors"}
	provider.playerErr[201939] = errors.New("provider timeout")

	store := cache.NewStore("players", 15*time.Minute)
	svc := NewPlayerService(provider, store, logging.NewNop())

	profile, err := svc.GetPlayerDetails(t.Context(), 201939)
	if err != nil {
		t.Fatalf("degraded fetch must not error: %v", err)
	}
	if profile.CurrentSeason == nil || profile.CurrentSeason.Games != 0 {
		t.Fatalf("degraded season must be zero-valued: %+v", profile.CurrentSeason)
	}
	if profile.StatsNote != "NBA API stats temporarily unavailable" {
		t.Fatalf("unexpected note: %q", profile.StatsNote)
	}
}

func TestPlayerService_CancelledRequestNotCachedAsDegraded(t *testing.T) {
	provider := newFakeProvider()
	provider.profiles[201939] = player.Profile{ID: 201939, Name: "Stephen Curry"}
	provider.playerErr[201939] = context.Canceled

	store := cache.NewStore("players", 15*time.Minute)
	svc := NewPlayerService(provider, store, logging.NewNop())

	cancelled, cancel := context.WithCancel(t.Context())
	cancel()

	_, err := svc.GetPlayerDetails(cancelled, 201939)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if store.Len() != 0 {
		t.Fatalf("cancelled profile must not be cached, got %d entries", store.Len())
	}

	delete(provider.playerErr, 201939)
	provider.playerTotals[201939] = stats.PlayerTotals{GamesPlayed: 74, Points: fptr(1956)}

	profile, err := svc.GetPlayerDetails(t.Context(), 201939)
	if err != nil {
		t.Fatalf("healthy fetch after cancellation failed: %v", err)
	}
	if profile.CurrentSeason == nil || profile.CurrentSeason.Games == 0 {
		t.Fatalf("healthy fetch must not observe a degraded record: %+v", profile.CurrentSeason)
	}
	if profile.StatsNote != "" {
		t.Fatalf("healthy fetch must carry no note: %q", profile.StatsNote)
	}
}

func TestPlayerService_SecondFetchServedFromCache(t *testing.T) {
	provider := newFakeProvider()
	provider.profiles[2544] = player.Profile{ID: 2544, Name: "LeBron James"}
	provider.playerTotals[2544] = stats.PlayerTotals{GamesPlayed: 70, Points: fptr(1883)}

	store := cache.NewStore("players", 15*time.Minute)
	svc := NewPlayerService(provider, store, logging.NewNop())

	if _, err := svc.GetPlayerDetails(t.Context(), 2544); err != nil {
		t.Fatalf("first fetch failed: %v", err)
	}
	if _, err := svc.GetPlayerDetails(t.Context(), 2544); err != nil {
		t.Fatalf("second fetch failed: %v", err)
	}
	if got := provider.playerStatCalls.Load(); got != 1 {
		t.Fatalf("expected one provider call, got %d", got)
	}
}
