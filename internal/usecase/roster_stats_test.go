package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/hooplabs/courtside/internal/domain/player"
	"github.com/hooplabs/courtside/internal/domain/stats"
	"github.com/hooplabs/courtside/internal/platform/cache"
	"github.com/hooplabs/courtside/internal/platform/logging"
)

func fptr(v float64) *float64 { return &v }

func rosterOf(n int) []player.Player {
	out := make([]player.Player, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, player.Player{ID: int64(100 + i), Name: fmt.Sprintf("Player %d", i)})
	}
	return out
}

func TestRosterStatsFetcher_PreservesSlotOrder(t *testing.T) {
	provider := newFakeProvider()
	for i := 0; i < 7; i++ {
		id := int64(100 + i)
		provider.playerTotals[id] = stats.PlayerTotals{
			GamesPlayed: 10,
			Points:      fptr(float64(100 + i*10)),
		}
	}

	store := cache.NewStore("players", time.Minute)
	fetcher := NewRosterStatsFetcher(provider, store, 3, 0, logging.NewNop())

	roster := rosterOf(7)
	if err := fetcher.Populate(t.Context(), roster); err != nil {
		t.Fatalf("populate failed: %v", err)
	}

	for i, item := range roster {
		if item.Averages == nil {
			t.Fatalf("slot %d has no averages", i)
		}
		want := float64(100+i*10) / 10
		if item.Averages.PointsPerGame != want {
			t.Fatalf("slot %d ppg=%v want=%v", i, item.Averages.PointsPerGame, want)
		}
	}
}

func TestRosterStatsFetcher_BatchConcurrencyIsBounded(t *testing.T) {
	provider := newFakeProvider()
	provider.playerFetchDelay = 20 * time.Millisecond
	for i := 0; i < 7; i++ {
		provider.playerTotals[int64(100+i)] = stats.PlayerTotals{GamesPlayed: 5, Points: fptr(50)}
	}

	store := cache.NewStore("players", time.Minute)
	fetcher := NewRosterStatsFetcher(provider, store, 3, 10*time.Millisecond, logging.NewNop())

	if err := fetcher.Populate(t.Context(), rosterOf(7)); err != nil {
		t.Fatalf("populate failed: %v", err)
	}

	if got := provider.maxInFlight.Load(); got > 3 {
		t.Fatalf("expected at most 3 concurrent fetches, observed %d", got)
	}
	if got := provider.playerStatCalls.Load(); got != 7 {
		t.Fatalf("expected 7 fetches, got %d", got)
	}
}

func TestRosterStatsFetcher_SingleFailureGetsZeroDefaults(t *testing.T) {
	provider := newFakeProvider()
	for i := 0; i < 4; i++ {
		provider.playerTotals[int64(100+i)] = stats.PlayerTotals{GamesPlayed: 10, Points: fptr(200)}
	}
	provider.playerErr[102] = errors.New("provider timeout")

	store := cache.NewStore("players", time.Minute)
	fetcher := NewRosterStatsFetcher(provider, store, 3, 0, logging.NewNop())

	roster := rosterOf(4)
	if err := fetcher.Populate(t.Context(), roster); err != nil {
		t.Fatalf("populate failed: %v", err)
	}

	failed := roster[2]
	if failed.Averages == nil {
		t.Fatal("failed slot must still carry averages")
	}
	if failed.Averages.Games != 0 || failed.Averages.PointsPerGame != 0 {
		t.Fatalf("failed slot must be zero-valued, got %+v", *failed.Averages)
	}
	for _, i := range []int{0, 1, 3} {
		if roster[i].Averages == nil || roster[i].Averages.PointsPerGame != 20 {
			t.Fatalf("healthy slot %d damaged by neighbor failure: %+v", i, roster[i].Averages)
		}
	}
}

func TestRosterStatsFetcher_FailuresAreNotCached(t *testing.T) {
	provider := newFakeProvider()
	provider.playerErr[100] = errors.New("provider timeout")

	store := cache.NewStore("players", time.Minute)
	fetcher := NewRosterStatsFetcher(provider, store, 3, 0, logging.NewNop())

	roster := rosterOf(1)
	if err := fetcher.Populate(t.Context(), roster); err != nil {
		t.Fatalf("populate failed: %v", err)
	}

	if _, ok := store.Get(t.Context(), "player_stats_100"); ok {
		t.Fatal("failed fetch must not be cached")
	}

	delete(provider.playerErr, 100)
	provider.playerTotals[100] = stats.PlayerTotals{GamesPlayed: 10, Points: fptr(300)}

	if err := fetcher.Populate(t.Context(), roster); err != nil {
		t.Fatalf("populate failed: %v", err)
	}
	if roster[0].Averages.PointsPerGame != 30 {
		t.Fatalf("recovered fetch should hydrate, got %+v", *roster[0].Averages)
	}
}

func TestRosterStatsFetcher_CacheHitSkipsProvider(t *testing.T) {
	provider := newFakeProvider()
	store := cache.NewStore("players", time.Minute)
	store.Set(t.Context(), "player_stats_100", stats.PlayerAverages{Games: 50, PointsPerGame: 25.5})

	fetcher := NewRosterStatsFetcher(provider, store, 3, 0, logging.NewNop())
	roster := rosterOf(1)
	if err := fetcher.Populate(t.Context(), roster); err != nil {
		t.Fatalf("populate failed: %v", err)
	}

	if provider.playerStatCalls.Load() != 0 {
		t.Fatal("cached player must not hit the provider")
	}
	if roster[0].Averages.PointsPerGame != 25.5 {
		t.Fatalf("cached averages not applied: %+v", *roster[0].Averages)
	}
}

func TestRosterStatsFetcher_CancelledContextStopsBetweenWaves(t *testing.T) {
	provider := newFakeProvider()
	for i := 0; i < 6; i++ {
		provider.playerTotals[int64(100+i)] = stats.PlayerTotals{GamesPlayed: 5, Points: fptr(50)}
	}

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	store := cache.NewStore("players", time.Minute)
	fetcher := NewRosterStatsFetcher(provider, store, 3, 0, logging.NewNop())

	err := fetcher.Populate(ctx, rosterOf(6))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if provider.playerStatCalls.Load() != 0 {
		t.Fatal("no fetches should run after cancellation")
	}
}
