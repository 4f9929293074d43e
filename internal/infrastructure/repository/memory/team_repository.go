package memory

import (
	"context"
	"sync"

	"github.com/hoopsight/gameplan-gateway/internal/domain/team"
)

// TeamRepository serves the fixed franchise catalog. The catalog is built
// once at construction (deduplicated, sorted) and never mutated afterwards;
// the lock only guards against misuse, not expected writes.
type TeamRepository struct {
	mu      sync.RWMutex
	catalog []team.Team
	byID    map[int64]team.Team
}

func NewTeamRepository(items []team.Team) *TeamRepository {
	catalog := team.NewCatalog(items)
	byID := make(map[int64]team.Team, len(catalog))
	for _, item := range catalog {
		byID[item.ID] = item
	}

	return &TeamRepository{catalog: catalog, byID: byID}
}

func (r *TeamRepository) List(_ context.Context) ([]team.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]team.Team, 0, len(r.catalog))
	out = append(out, r.catalog...)

	return out, nil
}

func (r *TeamRepository) GetByID(_ context.Context, teamID int64) (team.Team, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.byID[teamID]
	return item, ok, nil
}
