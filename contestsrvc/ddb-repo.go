package contestsrvc

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
	"github.com/guregu/dynamo/v2"
)

// DdbContestRepo keeps tasks, submissions and dashboards in three DynamoDB
// tables. Writes go through TransactWriteItems with a version condition on
// the dashboard document (and the task, for submissions), which gives the
// single-attempt commit-or-abort the claim protocol relies on.
type DdbContestRepo struct {
	db        *dynamo.DB
	dashTable dynamo.Table
	taskTable dynamo.Table
	submTable dynamo.Table
}

func NewDdbContestRepo(ddbClient *dynamodb.Client, dashTable, taskTable, submTable string) *DdbContestRepo {
	db := dynamo.NewFromIface(ddbClient)
	return &DdbContestRepo{
		db:        db,
		dashTable: db.Table(dashTable),
		taskTable: db.Table(taskTable),
		submTable: db.Table(submTable),
	}
}

// GetDashboard implements ContestRepo
func (r *DdbContestRepo) GetDashboard(ctx context.Context, roundID uuid.UUID, teamID uuid.UUID) (TeamDashboard, error) {
	var row dashRow
	err := r.dashTable.Get("round_id", roundID.String()).
		Range("team_id", dynamo.Equal, teamID.String()).
		One(ctx, &row)
	if err != nil {
		if errors.Is(err, dynamo.ErrNotFound) {
			return TeamDashboard{
				RoundID:  roundID,
				TeamID:   teamID,
				Counters: make(map[string]TypeCounters),
			}, nil
		}
		return TeamDashboard{}, fmt.Errorf("failed to get dashboard: %w", err)
	}
	return row.toDashboard()
}

// CreateTask implements ContestRepo
func (r *DdbContestRepo) CreateTask(ctx context.Context, dash TeamDashboard, task Task) error {
	prevVersion := dash.Version

	row := dashRowFrom(dash)
	row.Version = prevVersion + 1
	dashPut := r.dashTable.Put(row)
	if prevVersion == 0 {
		dashPut.If("attribute_not_exists('version')")
	} else {
		dashPut.If("'version' = ?", prevVersion)
	}

	tRow := taskRowFrom(task)
	tRow.Version = 1
	taskPut := r.taskTable.Put(tRow).If("attribute_not_exists('id')")

	err := r.db.WriteTx().Put(dashPut).Put(taskPut).Run(ctx)
	if err != nil {
		if isCondCheckFailed(err) {
			return ErrWriteConflict
		}
		return fmt.Errorf("failed to commit claim transaction: %w", err)
	}
	return nil
}

// SaveSubmission implements ContestRepo
func (r *DdbContestRepo) SaveSubmission(ctx context.Context, dash TeamDashboard, task Task, subm Submission) error {
	prevDashVersion := dash.Version
	prevTaskVersion := task.Version

	dRow := dashRowFrom(dash)
	dRow.Version = prevDashVersion + 1
	dashPut := r.dashTable.Put(dRow)
	if prevDashVersion == 0 {
		dashPut.If("attribute_not_exists('version')")
	} else {
		dashPut.If("'version' = ?", prevDashVersion)
	}

	tRow := taskRowFrom(task)
	tRow.Version = prevTaskVersion + 1
	taskPut := r.taskTable.Put(tRow).If("'version' = ?", prevTaskVersion)

	submPut := r.submTable.Put(submRowFrom(subm)).If("attribute_not_exists('id')")

	err := r.db.WriteTx().Put(dashPut).Put(taskPut).Put(submPut).Run(ctx)
	if err != nil {
		if isCondCheckFailed(err) {
			return ErrWriteConflict
		}
		return fmt.Errorf("failed to commit submission transaction: %w", err)
	}
	return nil
}

// GetTask implements ContestRepo
func (r *DdbContestRepo) GetTask(ctx context.Context, taskID uuid.UUID) (*Task, error) {
	var row taskRow
	err := r.taskTable.Get("id", taskID.String()).One(ctx, &row)
	if err != nil {
		if errors.Is(err, dynamo.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	task, err := row.toTask()
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// ListTasks implements ContestRepo
func (r *DdbContestRepo) ListTasks(ctx context.Context, roundID uuid.UUID, teamID uuid.UUID) ([]Task, error) {
	var rows []taskRow
	err := r.taskTable.Scan().
		Filter("'round_id' = ? AND 'team_id' = ?", roundID.String(), teamID.String()).
		All(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	tasks := make([]Task, 0, len(rows))
	for _, row := range rows {
		task, err := row.toTask()
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}

// ListSubmissions implements ContestRepo
func (r *DdbContestRepo) ListSubmissions(ctx context.Context, taskID uuid.UUID) ([]Submission, error) {
	var rows []submRow
	err := r.submTable.Scan().
		Filter("'task_id' = ?", taskID.String()).
		All(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}
	subms := make([]Submission, 0, len(rows))
	for _, row := range rows {
		subm, err := row.toSubmission()
		if err != nil {
			return nil, err
		}
		subms = append(subms, subm)
	}
	return subms, nil
}

// isCondCheckFailed reports whether the write failed on a version condition,
// i.e. somebody else won the race, as opposed to the storage layer failing.
func isCondCheckFailed(err error) bool {
	var txCanceled *types.TransactionCanceledException
	if errors.As(err, &txCanceled) {
		for _, reason := range txCanceled.CancellationReasons {
			if reason.Code != nil && *reason.Code == "ConditionalCheckFailed" {
				return true
			}
		}
		return false
	}
	var condFailed *types.ConditionalCheckFailedException
	return errors.As(err, &condFailed)
}
