package usecase

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/hooplabs/courtside/internal/domain/game"
	"github.com/hooplabs/courtside/internal/domain/player"
	"github.com/hooplabs/courtside/internal/domain/stats"
	"github.com/hooplabs/courtside/internal/domain/team"
)

type fakeProvider struct {
	mu sync.Mutex

	teamTotals   map[int64]stats.TeamTotals
	teamErr      error
	roster       []player.Player
	rosterErr    error
	playerTotals map[int64]stats.PlayerTotals
	playerErr    map[int64]error
	profiles     map[int64]player.Profile
	profileErr   map[int64]error
	games        []game.Game
	gamesErr     error
	standings    []team.Standing
	standingsErr error

	playerFetchDelay time.Duration

	teamStatsCalls   atomic.Int32
	rosterCalls      atomic.Int32
	playerStatCalls  atomic.Int32
	inFlight         atomic.Int32
	maxInFlight      atomic.Int32
	playerFetchOrder []int64
}

func newFakeProvider() *fakeProvider {
	return &fakeProvider{
		teamTotals:   map[int64]stats.TeamTotals{},
		playerTotals: map[int64]stats.PlayerTotals{},
		playerErr:    map[int64]error{},
		profiles:     map[int64]player.Profile{},
		profileErr:   map[int64]error{},
	}
}

func (f *fakeProvider) TeamSeasonTotals(_ context.Context, teamID int64, _ string) (stats.TeamTotals, error) {
	f.teamStatsCalls.Add(1)
	if f.teamErr != nil {
		return stats.TeamTotals{}, f.teamErr
	}
	totals, ok := f.teamTotals[teamID]
	if !ok {
		return stats.TeamTotals{}, fmt.Errorf("%w: team dashboard team_id=%d", ErrNoData, teamID)
	}
	return totals, nil
}

func (f *fakeProvider) TeamRoster(_ context.Context, _ int64) ([]player.Player, error) {
	f.rosterCalls.Add(1)
	if f.rosterErr != nil {
		return nil, f.rosterErr
	}
	out := make([]player.Player, len(f.roster))
	copy(out, f.roster)
	return out, nil
}

func (f *fakeProvider) PlayerSeasonTotals(_ context.Context, playerID int64) (stats.PlayerTotals, error) {
	f.playerStatCalls.Add(1)
	current := f.inFlight.Add(1)
	for {
		observed := f.maxInFlight.Load()
		if current <= observed || f.maxInFlight.CompareAndSwap(observed, current) {
			break
		}
	}
	if f.playerFetchDelay > 0 {
		time.Sleep(f.playerFetchDelay)
	}
	f.inFlight.Add(-1)

	f.mu.Lock()
	f.playerFetchOrder = append(f.playerFetchOrder, playerID)
	f.mu.Unlock()

	if err, ok := f.playerErr[playerID]; ok {
		return stats.PlayerTotals{}, err
	}
	totals, ok := f.playerTotals[playerID]
	if !ok {
		return stats.PlayerTotals{}, fmt.Errorf("%w: player dashboard player_id=%d", ErrNoData, playerID)
	}
	return totals, nil
}

func (f *fakeProvider) PlayerProfile(_ context.Context, playerID int64) (player.Profile, error) {
	if err, ok := f.profileErr[playerID]; ok {
		return player.Profile{}, err
	}
	profile, ok := f.profiles[playerID]
	if !ok {
		return player.Profile{}, fmt.Errorf("%w: player %d", ErrNotFound, playerID)
	}
	return profile, nil
}

func (f *fakeProvider) GamesByDate(_ context.Context, _ time.Time) ([]game.Game, error) {
	if f.gamesErr != nil {
		return nil, f.gamesErr
	}
	return f.games, nil
}

func (f *fakeProvider) Standings(_ context.Context, _ string) ([]team.Standing, error) {
	if f.standingsErr != nil {
		return nil, f.standingsErr
	}
	return f.standings, nil
}
