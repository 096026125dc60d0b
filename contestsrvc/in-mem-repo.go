package contestsrvc

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// inMemRepo mirrors the DynamoDB repo's conditional-write semantics with a
// single mutex: versions are checked against the stored documents and the
// whole write is applied or rejected as one unit.
type inMemRepo struct {
	mu     sync.Mutex
	dashes map[string]TeamDashboard
	tasks  map[uuid.UUID]Task
	subms  map[uuid.UUID][]Submission // keyed by task id
}

func NewInMemContestRepo() ContestRepo {
	return &inMemRepo{
		dashes: make(map[string]TeamDashboard),
		tasks:  make(map[uuid.UUID]Task),
		subms:  make(map[uuid.UUID][]Submission),
	}
}

func dashKey(roundID uuid.UUID, teamID uuid.UUID) string {
	return fmt.Sprintf("%s#%s", roundID, teamID)
}

func copyDash(d TeamDashboard) TeamDashboard {
	cp := d
	cp.Counters = make(map[string]TypeCounters, len(d.Counters))
	for code, c := range d.Counters {
		cp.Counters[code] = c
	}
	return cp
}

// Get implements ContestRepo
func (r *inMemRepo) GetDashboard(ctx context.Context, roundID uuid.UUID, teamID uuid.UUID) (TeamDashboard, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if dash, ok := r.dashes[dashKey(roundID, teamID)]; ok {
		return copyDash(dash), nil
	}
	return TeamDashboard{
		RoundID:  roundID,
		TeamID:   teamID,
		Counters: make(map[string]TypeCounters),
	}, nil
}

func (r *inMemRepo) checkDashVersion(dash TeamDashboard) error {
	stored, ok := r.dashes[dashKey(dash.RoundID, dash.TeamID)]
	storedVersion := int64(0)
	if ok {
		storedVersion = stored.Version
	}
	if dash.Version != storedVersion {
		return ErrWriteConflict
	}
	return nil
}

// CreateTask implements ContestRepo
func (r *inMemRepo) CreateTask(ctx context.Context, dash TeamDashboard, task Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.checkDashVersion(dash); err != nil {
		return err
	}
	if _, exists := r.tasks[task.ID]; exists {
		return ErrWriteConflict
	}

	dash.Version++
	task.Version = 1
	r.dashes[dashKey(dash.RoundID, dash.TeamID)] = copyDash(dash)
	r.tasks[task.ID] = task
	return nil
}

// SaveSubmission implements ContestRepo
func (r *inMemRepo) SaveSubmission(ctx context.Context, dash TeamDashboard, task Task, subm Submission) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.checkDashVersion(dash); err != nil {
		return err
	}
	stored, ok := r.tasks[task.ID]
	if !ok || stored.Version != task.Version {
		return ErrWriteConflict
	}

	dash.Version++
	task.Version++
	r.dashes[dashKey(dash.RoundID, dash.TeamID)] = copyDash(dash)
	r.tasks[task.ID] = task
	r.subms[subm.TaskID] = append(r.subms[subm.TaskID], subm)
	return nil
}

// GetTask implements ContestRepo
func (r *inMemRepo) GetTask(ctx context.Context, taskID uuid.UUID) (*Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if task, ok := r.tasks[taskID]; ok {
		return &task, nil
	}
	return nil, nil
}

// ListTasks implements ContestRepo
func (r *inMemRepo) ListTasks(ctx context.Context, roundID uuid.UUID, teamID uuid.UUID) ([]Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	tasks := make([]Task, 0)
	for _, task := range r.tasks {
		if task.RoundID == roundID && task.TeamID == teamID {
			tasks = append(tasks, task)
		}
	}
	return tasks, nil
}

// ListSubmissions implements ContestRepo
func (r *inMemRepo) ListSubmissions(ctx context.Context, taskID uuid.UUID) ([]Submission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	subms := make([]Submission, len(r.subms[taskID]))
	copy(subms, r.subms[taskID])
	return subms, nil
}
