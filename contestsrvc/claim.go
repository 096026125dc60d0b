package contestsrvc

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/teamwork-challenge/backend/gensrvc"
	"github.com/teamwork-challenge/backend/logger"
	"github.com/teamwork-challenge/backend/roundsrvc"
)

type ClaimParams struct {
	RoundID  uuid.UUID
	TeamID   uuid.UUID
	TypeCode string // empty = pick one for me
}

// Claim allocates a new task to the team:
// 1. validates the round window and team membership;
// 2. picks a task type (requested or weighted-random over remaining quota);
// 3. asks the generator for content;
// 4. writes the task and the incremented dashboard in one conditional
//    transaction keyed on the dashboard version read in step 2.
//
// The version condition is what makes the quota check authoritative: if any
// concurrent claim for the same team committed in between, the version moved
// and the whole write aborts with a transient conflict. Claim never retries;
// the caller decides, and a retry re-reads quota from scratch.
func (s *ContestSrvc) Claim(ctx context.Context, p ClaimParams) (*Task, error) {
	log := logger.FromContext(ctx)
	now := time.Now().UTC()

	round, err := s.rounds.GetRound(ctx, p.RoundID)
	if err != nil {
		return nil, err
	}
	if !round.IsActive(now) {
		return nil, newErrRoundNotActive()
	}
	if _, err := s.teams.GetTeam(ctx, round.ChallengeID, p.TeamID); err != nil {
		return nil, err
	}

	dash, err := s.repo.GetDashboard(ctx, p.RoundID, p.TeamID)
	if err != nil {
		errMsg := fmt.Errorf("error reading dashboard: %w", err)
		return nil, newErrInternalSE().SetDebug(errMsg)
	}

	typ, err := s.chooseType(round, &dash, p.TypeCode)
	if err != nil {
		return nil, err
	}

	taskID, err := uuid.NewV7()
	if err != nil {
		errMsg := fmt.Errorf("failed to generate task id: %w", err)
		return nil, newErrInternalSE().SetDebug(errMsg)
	}

	genRes, err := s.gen.Generate(ctx, gensrvc.Endpoint{
		Url:    typ.GenUrl,
		Secret: typ.GenSecret,
	}, gensrvc.GenerateRequest{
		ChallengeID: round.ChallengeID.String(),
		TeamID:      p.TeamID.String(),
		RoundID:     p.RoundID.String(),
		TaskID:      taskID.String(),
		Progress: gensrvc.Progress{
			TaskIndex:      dash.Taken(typ.Code),
			TaskCount:      typ.NTasks,
			ElapsedMinutes: round.ElapsedMinutes(now),
			TotalMinutes:   round.TotalMinutes(),
		},
		Settings: typ.GenSettings,
	})
	if err != nil {
		// nothing has been written yet, the claim aborts cleanly
		return nil, newErrGenerator().SetDebug(err)
	}

	task := Task{
		ID:          taskID,
		RoundID:     p.RoundID,
		TeamID:      p.TeamID,
		TypeCode:    typ.Code,
		Status:      StatusPending,
		Statement:   genRes.Statement,
		Input:       genRes.Input,
		CheckerHint: genRes.CheckerHint,
		ClaimedAt:   now,
	}

	counters := dash.counters(typ.Code)
	counters.Pending++
	dash.setCounters(typ.Code, counters)

	err = s.repo.CreateTask(ctx, dash, task)
	if err == ErrWriteConflict {
		return nil, newErrWriteConflict()
	}
	if err != nil {
		errMsg := fmt.Errorf("error committing claim: %w", err)
		return nil, newErrInternalSE().SetDebug(errMsg)
	}

	log.Info("task claimed",
		"task_id", task.ID.String(),
		"type_code", task.TypeCode,
		"team_id", p.TeamID.String())
	return &task, nil
}

func (s *ContestSrvc) chooseType(round *roundsrvc.Round, dash *TeamDashboard, requested string) (*roundsrvc.TaskType, error) {
	if requested != "" {
		if !round.ClaimByType {
			return nil, newErrClaimByTypeDisabled()
		}
		typ, ok := round.TaskType(requested)
		if !ok {
			return nil, newErrUnknownTaskType(requested)
		}
		if dash.Taken(typ.Code) >= typ.NTasks {
			return nil, newErrTypeQuotaExhausted(typ.Code)
		}
		return typ, nil
	}

	candidates := make([]typeQuota, 0, len(round.TaskTypes))
	for i := range round.TaskTypes {
		t := &round.TaskTypes[i]
		candidates = append(candidates, typeQuota{
			code:      t.Code,
			remaining: t.NTasks - dash.Taken(t.Code),
		})
	}
	code := s.drawType(candidates)
	if code == "" {
		return nil, newErrQuotaExhausted()
	}
	typ, _ := round.TaskType(code)
	return typ, nil
}
