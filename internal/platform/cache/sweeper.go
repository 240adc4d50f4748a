package cache

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/hooplabs/courtside/internal/platform/logging"
)

// Sweeper periodically purges expired entries from every registered store.
// It runs independently of request handling and is owned by the process
// lifecycle: Start at boot, Stop during shutdown.
type Sweeper struct {
	registry *Registry
	interval time.Duration
	logger   *logging.Logger

	startOnce sync.Once
	stopOnce  sync.Once
	started   atomic.Bool
	done      chan struct{}
	stopped   chan struct{}
}

func NewSweeper(registry *Registry, interval time.Duration, logger *logging.Logger) *Sweeper {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	if logger == nil {
		logger = logging.Default()
	}

	return &Sweeper{
		registry: registry,
		interval: interval,
		logger:   logger,
		done:     make(chan struct{}),
		stopped:  make(chan struct{}),
	}
}

func (s *Sweeper) Start() {
	s.startOnce.Do(func() {
		s.started.Store(true)
		go s.run()
	})
}

// Stop cancels the sweep loop and waits for it to exit.
func (s *Sweeper) Stop() {
	s.stopOnce.Do(func() {
		close(s.done)
	})
	if s.started.Load() {
		<-s.stopped
	}
}

func (s *Sweeper) run() {
	defer close(s.stopped)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			removed := s.registry.ClearExpired()
			if removed > 0 {
				s.logger.Debug("cache sweep completed", "removed", removed)
			}
		}
	}
}
