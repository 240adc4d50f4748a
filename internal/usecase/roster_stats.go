package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/hooplabs/courtside/internal/domain/player"
	"github.com/hooplabs/courtside/internal/domain/stats"
	"github.com/hooplabs/courtside/internal/platform/cache"
	"github.com/hooplabs/courtside/internal/platform/logging"
)

const (
	defaultRosterBatchSize  = 3
	defaultRosterBatchDelay = 100 * time.Millisecond
)

// RosterStatsFetcher hydrates per-player season averages onto a roster.
// The provider rate-limits aggressively, so players are fetched in small
// concurrent waves with a pause between waves. A failed player keeps its
// roster slot and gets zero-valued averages instead of an error.
type RosterStatsFetcher struct {
	provider    StatsProvider
	playerCache *cache.Store
	batchSize   int
	batchDelay  time.Duration
	logger      *logging.Logger
}

func NewRosterStatsFetcher(provider StatsProvider, playerCache *cache.Store, batchSize int, batchDelay time.Duration, logger *logging.Logger) *RosterStatsFetcher {
	if batchSize < 1 {
		batchSize = defaultRosterBatchSize
	}
	if batchDelay < 0 {
		batchDelay = defaultRosterBatchDelay
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &RosterStatsFetcher{
		provider:    provider,
		playerCache: playerCache,
		batchSize:   batchSize,
		batchDelay:  batchDelay,
		logger:      logger,
	}
}

// Populate fills roster[i].Averages in place, preserving slot order. It
// returns an error only when the context is cancelled mid-run.
func (f *RosterStatsFetcher) Populate(ctx context.Context, roster []player.Player) error {
	indexes := make([]int, 0, len(roster))
	for i := range roster {
		if roster[i].ID > 0 {
			indexes = append(indexes, i)
		}
	}
	if len(indexes) == 0 {
		return nil
	}

	pool, err := ants.NewPool(f.batchSize)
	if err != nil {
		return fmt.Errorf("create roster stats pool: %w", err)
	}
	defer pool.Release()

	for start := 0; start < len(indexes); start += f.batchSize {
		if err := ctx.Err(); err != nil {
			return err
		}

		end := start + f.batchSize
		if end > len(indexes) {
			end = len(indexes)
		}

		var wave sync.WaitGroup
		for _, idx := range indexes[start:end] {
			idx := idx
			wave.Add(1)
			if err := pool.Submit(func() {
				defer wave.Done()
				roster[idx].Averages = f.fetchOne(ctx, roster[idx].ID)
			}); err != nil {
				wave.Done()
				averages := stats.PlayerAverages{}
				roster[idx].Averages = &averages
				f.logger.WarnContext(ctx, "roster stats task rejected", "player_id", roster[idx].ID, "error", err)
			}
		}
		wave.Wait()

		if end < len(indexes) && f.batchDelay > 0 {
			timer := time.NewTimer(f.batchDelay)
			select {
			case <-ctx.Done():
				timer.Stop()
				return ctx.Err()
			case <-timer.C:
			}
		}
	}

	return nil
}

func (f *RosterStatsFetcher) fetchOne(ctx context.Context, playerID int64) *stats.PlayerAverages {
	key := fmt.Sprintf("player_stats_%d", playerID)
	if cached, ok := f.playerCache.Get(ctx, key); ok {
		if averages, ok := cached.(stats.PlayerAverages); ok {
			return &averages
		}
	}

	totals, err := f.provider.PlayerSeasonTotals(ctx, playerID)
	if err != nil {
		if !errors.Is(err, ErrNoData) {
			f.logger.WarnContext(ctx, "player stats fetch failed", "player_id", playerID, "error", err)
		}
		// Zero defaults keep the roster slot; failures are never cached.
		return &stats.PlayerAverages{}
	}

	averages := stats.PlayerAveragesFromTotals(totals)
	f.playerCache.Set(ctx, key, averages)
	return &averages
}
