package contestsrvc

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// GetDashboard merges the round's configured task types with the team's
// sparse counters: every configured type shows up, with full remaining quota
// when the team has not touched it yet. Pure read, no locking.
func (s *ContestSrvc) GetDashboard(ctx context.Context, roundID uuid.UUID, teamID uuid.UUID) (*DashboardView, error) {
	round, err := s.rounds.GetRound(ctx, roundID)
	if err != nil {
		return nil, err
	}
	if _, err := s.teams.GetTeam(ctx, round.ChallengeID, teamID); err != nil {
		return nil, err
	}

	dash, err := s.repo.GetDashboard(ctx, roundID, teamID)
	if err != nil {
		errMsg := fmt.Errorf("error reading dashboard: %w", err)
		return nil, newErrInternalSE().SetDebug(errMsg)
	}

	view := &DashboardView{
		RoundID: roundID,
		TeamID:  teamID,
		Types:   make([]TypeProgress, 0, len(round.TaskTypes)),
		Score:   dash.Score,
	}
	for _, typ := range round.TaskTypes {
		c := dash.counters(typ.Code)
		view.Types = append(view.Types, TypeProgress{
			TypeCode:  typ.Code,
			Pending:   c.Pending,
			Accepted:  c.Accepted,
			Wrong:     c.Wrong,
			Remaining: max(0, typ.NTasks-c.Taken()),
		})
	}
	return view, nil
}
