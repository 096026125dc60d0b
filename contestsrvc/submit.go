package contestsrvc

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/teamwork-challenge/backend/gensrvc"
	"github.com/teamwork-challenge/backend/logger"
)

type SubmitParams struct {
	TaskID uuid.UUID
	TeamID uuid.UUID
	Answer string
}

// Submit grades one answer for a claimed task. An accepted verdict is
// sticky: the task never leaves AC again. Counter updates are keyed on the
// status the task had when it was read, inside the same conditional
// transaction, so a wa->wa resubmission cannot decrement pending twice.
func (s *ContestSrvc) Submit(ctx context.Context, p SubmitParams) (*Submission, error) {
	log := logger.FromContext(ctx)
	now := time.Now().UTC()

	task, err := s.repo.GetTask(ctx, p.TaskID)
	if err != nil {
		errMsg := fmt.Errorf("error reading task: %w", err)
		return nil, newErrInternalSE().SetDebug(errMsg)
	}
	if task == nil {
		return nil, newErrTaskNotFound(p.TaskID)
	}
	if task.TeamID != p.TeamID {
		return nil, newErrForbidden()
	}
	if task.Status == StatusAccepted {
		return nil, newErrAlreadySolved()
	}

	round, err := s.rounds.GetRound(ctx, task.RoundID)
	if err != nil {
		return nil, err
	}
	typ, ok := round.TaskType(task.TypeCode)
	if !ok {
		errMsg := fmt.Errorf("task %s references unknown type %q", task.ID, task.TypeCode)
		return nil, newErrInternalSE().SetDebug(errMsg)
	}

	if now.After(task.Deadline(typ.TimeToSolve())) {
		return nil, newErrTimeLimitExceeded()
	}

	dash, err := s.repo.GetDashboard(ctx, task.RoundID, task.TeamID)
	if err != nil {
		errMsg := fmt.Errorf("error reading dashboard: %w", err)
		return nil, newErrInternalSE().SetDebug(errMsg)
	}

	results, err := s.gen.Check(ctx, gensrvc.Endpoint{
		Url:    typ.GenUrl,
		Secret: typ.GenSecret,
	}, gensrvc.CheckRequest{
		Input:       task.Input,
		Answer:      p.Answer,
		CheckerHint: task.CheckerHint,
		TaskID:      task.ID.String(),
	})
	if err != nil {
		return nil, newErrGenerator().SetDebug(err)
	}

	// Only the first result grades this task. Some generators report side
	// results for other tasks; those are not applied here.
	verdict := results[0]
	if len(results) > 1 {
		log.Warn("generator reported side results, ignoring them",
			"task_id", task.ID.String(), "count", len(results)-1)
	}

	prevStatus := task.Status
	counters := dash.counters(task.TypeCode)

	if verdict.Accepted() {
		task.Status = StatusAccepted
		solvedAt := now
		task.SolvedAt = &solvedAt
		task.Score = int(math.Floor(float64(typ.Score) * verdict.Score))

		switch prevStatus {
		case StatusPending:
			counters.Pending = max(0, counters.Pending-1)
		case StatusWrongAnswer:
			counters.Wrong = max(0, counters.Wrong-1)
		}
		counters.Accepted++
		dash.Score += task.Score
	} else {
		task.Status = StatusWrongAnswer
		if prevStatus == StatusPending {
			counters.Pending = max(0, counters.Pending-1)
			counters.Wrong++
		}
		// wa -> wa keeps the counters as they are
	}
	dash.setCounters(task.TypeCode, counters)

	submID, err := uuid.NewV7()
	if err != nil {
		errMsg := fmt.Errorf("failed to generate submission id: %w", err)
		return nil, newErrInternalSE().SetDebug(errMsg)
	}
	subm := Submission{
		ID:            submID,
		TaskID:        task.ID,
		TeamID:        task.TeamID,
		RoundID:       task.RoundID,
		Status:        task.Status,
		Answer:        p.Answer,
		CheckerOutput: verdict.Error,
		Score:         task.Score,
		SubmittedAt:   now,
	}

	err = s.repo.SaveSubmission(ctx, dash, *task, subm)
	if err == ErrWriteConflict {
		return nil, newErrWriteConflict()
	}
	if err != nil {
		errMsg := fmt.Errorf("error committing submission: %w", err)
		return nil, newErrInternalSE().SetDebug(errMsg)
	}

	if s.archive != nil {
		go s.archive.Store(subm)
	}

	log.Info("submission processed",
		"task_id", task.ID.String(),
		"status", string(task.Status),
		"score", task.Score)
	return &subm, nil
}
