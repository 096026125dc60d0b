package contestsrvc

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrWriteConflict is returned by a repo when a conditional write loses the
// race for the dashboard document. The service reports it to the caller as a
// transient error and never retries on its own.
var ErrWriteConflict = errors.New("write conflict on dashboard document")

// ContestRepo persists tasks, submissions and team dashboards.
//
// The two write methods are single-attempt atomic transactions: every item
// is written conditioned on the version the service read, so a concurrent
// writer to the same (round, team) dashboard makes the whole transaction
// fail with ErrWriteConflict and zero partial effect. The service passes the
// entities with the versions it read; the repo bumps them on commit.
type ContestRepo interface {
	// GetDashboard returns the dashboard document, or a zero-valued one with
	// Version 0 when the team has not claimed anything in the round yet.
	GetDashboard(ctx context.Context, roundID uuid.UUID, teamID uuid.UUID) (TeamDashboard, error)

	// CreateTask atomically writes the new task and the updated dashboard.
	CreateTask(ctx context.Context, dash TeamDashboard, task Task) error

	// SaveSubmission atomically appends the submission and writes the
	// updated task and dashboard.
	SaveSubmission(ctx context.Context, dash TeamDashboard, task Task, subm Submission) error

	GetTask(ctx context.Context, taskID uuid.UUID) (*Task, error)
	ListTasks(ctx context.Context, roundID uuid.UUID, teamID uuid.UUID) ([]Task, error)
	ListSubmissions(ctx context.Context, taskID uuid.UUID) ([]Submission, error)
}
