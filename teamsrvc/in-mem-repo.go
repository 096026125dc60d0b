package teamsrvc

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

type inMemTeamRepo struct {
	mu    sync.RWMutex
	teams map[string]teamRow
}

func newInMemTeamRepo() *inMemTeamRepo {
	return &inMemTeamRepo{
		teams: make(map[string]teamRow),
	}
}

// Save implements teamRepo
func (r *inMemTeamRepo) Save(ctx context.Context, team *teamRow) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.teams[team.ID] = *team
	return nil
}

// Get implements teamRepo
func (r *inMemTeamRepo) Get(ctx context.Context, teamID uuid.UUID) (*teamRow, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if row, ok := r.teams[teamID.String()]; ok {
		return &row, nil
	}
	return nil, nil
}
