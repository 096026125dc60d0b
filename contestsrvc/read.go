package contestsrvc

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// GetTask returns a single task, enforcing ownership.
func (s *ContestSrvc) GetTask(ctx context.Context, taskID uuid.UUID, teamID uuid.UUID) (*Task, error) {
	task, err := s.repo.GetTask(ctx, taskID)
	if err != nil {
		errMsg := fmt.Errorf("error reading task: %w", err)
		return nil, newErrInternalSE().SetDebug(errMsg)
	}
	if task == nil {
		return nil, newErrTaskNotFound(taskID)
	}
	if task.TeamID != teamID {
		return nil, newErrForbidden()
	}
	return task, nil
}

// ListTasks returns all tasks the team has claimed in the round.
func (s *ContestSrvc) ListTasks(ctx context.Context, roundID uuid.UUID, teamID uuid.UUID) ([]Task, error) {
	tasks, err := s.repo.ListTasks(ctx, roundID, teamID)
	if err != nil {
		errMsg := fmt.Errorf("error listing tasks: %w", err)
		return nil, newErrInternalSE().SetDebug(errMsg)
	}
	return tasks, nil
}

// ListSubmissions returns the submission history of one task, enforcing
// ownership through the task record.
func (s *ContestSrvc) ListSubmissions(ctx context.Context, taskID uuid.UUID, teamID uuid.UUID) ([]Submission, error) {
	if _, err := s.GetTask(ctx, taskID, teamID); err != nil {
		return nil, err
	}
	subms, err := s.repo.ListSubmissions(ctx, taskID)
	if err != nil {
		errMsg := fmt.Errorf("error listing submissions: %w", err)
		return nil, newErrInternalSE().SetDebug(errMsg)
	}
	return subms, nil
}
