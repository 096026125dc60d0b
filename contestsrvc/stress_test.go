package contestsrvc

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teamwork-challenge/backend/roundsrvc"
	"github.com/teamwork-challenge/backend/srvcerror"
	"golang.org/x/sync/errgroup"
)

// claimWithRetry retries transient failures (write conflicts) with a small
// backoff, the way a real client would. Policy errors are returned as-is.
func claimWithRetry(ctx context.Context, srvc *ContestSrvc, p ClaimParams, maxAttempts int) (*Task, error) {
	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		task, err := srvc.Claim(ctx, p)
		if err == nil {
			return task, nil
		}
		lastErr = err
		if !srvcerror.IsTransient(err) {
			return nil, err
		}
		time.Sleep(time.Duration(attempt+1) * time.Millisecond)
	}
	return nil, lastErr
}

func submitWithRetry(ctx context.Context, srvc *ContestSrvc, p SubmitParams, maxAttempts int) (*Submission, error) {
	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		subm, err := srvc.Submit(ctx, p)
		if err == nil {
			return subm, nil
		}
		lastErr = err
		if !srvcerror.IsTransient(err) {
			return nil, err
		}
		time.Sleep(time.Duration(attempt+1) * time.Millisecond)
	}
	return nil, lastErr
}

// Hammers one team/type down to its quota: with 8 workers racing for 3
// slots, exactly 3 claims may ever succeed.
func TestConcurrentClaimsNeverOverAllocate(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv([]roundsrvc.TaskType{aPlusBType(3)})

	var mu sync.Mutex
	succeeded := 0
	exhausted := 0

	var eg errgroup.Group
	for i := 0; i < 8; i++ {
		eg.Go(func() error {
			_, err := claimWithRetry(ctx, env.srvc,
				ClaimParams{RoundID: env.roundID, TeamID: env.teamID}, 20)
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				succeeded++
				return nil
			}
			if errCode(err) == ErrCodeQuotaExhausted {
				exhausted++
				return nil
			}
			return err
		})
	}
	require.NoError(t, eg.Wait())

	assert.Equal(t, 3, succeeded)
	assert.Equal(t, 5, exhausted)

	tasks, err := env.srvc.ListTasks(ctx, env.roundID, env.teamID)
	require.NoError(t, err)
	assert.Len(t, tasks, 3)
	for _, task := range tasks {
		assert.Equal(t, StatusPending, task.Status)
	}

	view, err := env.srvc.GetDashboard(ctx, env.roundID, env.teamID)
	require.NoError(t, err)
	assert.Equal(t, 3, view.Types[0].Pending)
	assert.Equal(t, 0, view.Types[0].Remaining)
}

// Two teams hammer the same round concurrently; their dashboards are
// separate documents, so both must reach full quota.
func TestConcurrentClaimsOfTwoTeamsAreIndependent(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv([]roundsrvc.TaskType{aPlusBType(4)})

	var eg errgroup.Group
	for _, teamID := range []uuid.UUID{env.teamID, env.teamID2} {
		teamID := teamID
		for i := 0; i < 4; i++ {
			eg.Go(func() error {
				_, err := claimWithRetry(ctx, env.srvc,
					ClaimParams{RoundID: env.roundID, TeamID: teamID}, 20)
				return err
			})
		}
	}
	require.NoError(t, eg.Wait())

	for _, teamID := range []uuid.UUID{env.teamID, env.teamID2} {
		tasks, err := env.srvc.ListTasks(ctx, env.roundID, teamID)
		require.NoError(t, err)
		assert.Len(t, tasks, 4)
	}
}

// Concurrent submissions on different tasks of the same team serialize on
// the dashboard document; with retries they must all land exactly once.
func TestConcurrentSubmissionsUpdateCountersExactlyOnce(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv([]roundsrvc.TaskType{aPlusBType(6)})

	tasks := make([]*Task, 6)
	for i := range tasks {
		task, err := env.srvc.Claim(ctx, ClaimParams{RoundID: env.roundID, TeamID: env.teamID})
		require.NoError(t, err)
		tasks[i] = task
	}

	var eg errgroup.Group
	for i, task := range tasks {
		task := task
		answer := "3"
		if i%2 == 1 {
			answer = "99"
		}
		eg.Go(func() error {
			_, err := submitWithRetry(ctx, env.srvc,
				SubmitParams{TaskID: task.ID, TeamID: env.teamID, Answer: answer}, 20)
			return err
		})
	}
	require.NoError(t, eg.Wait())

	view, err := env.srvc.GetDashboard(ctx, env.roundID, env.teamID)
	require.NoError(t, err)
	assert.Equal(t, 0, view.Types[0].Pending)
	assert.Equal(t, 3, view.Types[0].Accepted)
	assert.Equal(t, 3, view.Types[0].Wrong)
	assert.Equal(t, 300, view.Score)
}
