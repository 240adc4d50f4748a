package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/hooplabs/courtside/internal/domain/team"
)

type TeamRepository struct {
	mu      sync.RWMutex
	byID    map[int64]team.Team
	ordered []int64
}

// NewTeamRepository indexes the given teams by ID. List order is by
// full name so the catalog is stable across restarts.
func NewTeamRepository(teams []team.Team) *TeamRepository {
	byID := make(map[int64]team.Team, len(teams))
	ordered := make([]int64, 0, len(teams))
	for _, item := range teams {
		if _, exists := byID[item.ID]; !exists {
			ordered = append(ordered, item.ID)
		}
		byID[item.ID] = item
	}
	sort.Slice(ordered, func(i, j int) bool {
		return byID[ordered[i]].FullName < byID[ordered[j]].FullName
	})

	return &TeamRepository{byID: byID, ordered: ordered}
}

func (r *TeamRepository) List(_ context.Context) ([]team.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]team.Team, 0, len(r.ordered))
	for _, id := range r.ordered {
		out = append(out, r.byID[id])
	}

	return out, nil
}

func (r *TeamRepository) GetByID(_ context.Context, teamID int64) (team.Team, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.byID[teamID]
	if !ok {
		return team.Team{}, false, nil
	}

	return item, true, nil
}
