package contestsrvc

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teamwork-challenge/backend/roundsrvc"
	"github.com/teamwork-challenge/backend/srvcerror"
)

func TestClaimHappyPath(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv([]roundsrvc.TaskType{aPlusBType(3)})

	task, err := env.srvc.Claim(ctx, ClaimParams{RoundID: env.roundID, TeamID: env.teamID})
	require.NoError(t, err)

	assert.Equal(t, StatusPending, task.Status)
	assert.Equal(t, "a_plus_b", task.TypeCode)
	assert.Equal(t, "add the two numbers", task.Statement)
	assert.Equal(t, "1 2", task.Input)
	assert.Equal(t, 0, task.Score)
	assert.Nil(t, task.SolvedAt)
	assert.False(t, task.ClaimedAt.IsZero())

	view, err := env.srvc.GetDashboard(ctx, env.roundID, env.teamID)
	require.NoError(t, err)
	require.Len(t, view.Types, 1)
	assert.Equal(t, 1, view.Types[0].Pending)
	assert.Equal(t, 0, view.Types[0].Accepted)
	assert.Equal(t, 0, view.Types[0].Wrong)
	assert.Equal(t, 2, view.Types[0].Remaining)
}

func TestClaimExplicitType(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv([]roundsrvc.TaskType{
		aPlusBType(3),
		{Code: "sort_it", NTasks: 2, Score: 50, TimeToSolveMin: 15},
	})

	task, err := env.srvc.Claim(ctx, ClaimParams{
		RoundID: env.roundID, TeamID: env.teamID, TypeCode: "sort_it"})
	require.NoError(t, err)
	assert.Equal(t, "sort_it", task.TypeCode)
}

func TestClaimByTypeDisabled(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv([]roundsrvc.TaskType{aPlusBType(3)})
	env.round.ClaimByType = false

	_, err := env.srvc.Claim(ctx, ClaimParams{
		RoundID: env.roundID, TeamID: env.teamID, TypeCode: "a_plus_b"})
	require.Error(t, err)
	assert.Equal(t, ErrCodeTypeNotAllowed, errCode(err))

	// auto selection still works
	_, err = env.srvc.Claim(ctx, ClaimParams{RoundID: env.roundID, TeamID: env.teamID})
	require.NoError(t, err)
}

func TestClaimUnknownType(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv([]roundsrvc.TaskType{aPlusBType(3)})

	_, err := env.srvc.Claim(ctx, ClaimParams{
		RoundID: env.roundID, TeamID: env.teamID, TypeCode: "no_such_type"})
	require.Error(t, err)
	assert.Equal(t, ErrCodeTypeNotAllowed, errCode(err))
}

func TestClaimRoundNotActive(t *testing.T) {
	ctx := context.Background()

	t.Run("not started", func(t *testing.T) {
		env := newTestEnv([]roundsrvc.TaskType{aPlusBType(3)})
		env.round.StartsAt = time.Now().UTC().Add(time.Hour)
		env.round.EndsAt = time.Now().UTC().Add(2 * time.Hour)
		_, err := env.srvc.Claim(ctx, ClaimParams{RoundID: env.roundID, TeamID: env.teamID})
		assert.Equal(t, ErrCodeRoundNotActive, errCode(err))
	})

	t.Run("already over", func(t *testing.T) {
		env := newTestEnv([]roundsrvc.TaskType{aPlusBType(3)})
		env.round.StartsAt = time.Now().UTC().Add(-2 * time.Hour)
		env.round.EndsAt = time.Now().UTC().Add(-time.Hour)
		_, err := env.srvc.Claim(ctx, ClaimParams{RoundID: env.roundID, TeamID: env.teamID})
		assert.Equal(t, ErrCodeRoundNotActive, errCode(err))
	})

	t.Run("unpublished", func(t *testing.T) {
		env := newTestEnv([]roundsrvc.TaskType{aPlusBType(3)})
		env.round.Published = false
		_, err := env.srvc.Claim(ctx, ClaimParams{RoundID: env.roundID, TeamID: env.teamID})
		assert.Equal(t, ErrCodeRoundNotActive, errCode(err))
	})
}

func TestClaimTeamNotFound(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv([]roundsrvc.TaskType{aPlusBType(3)})

	_, err := env.srvc.Claim(ctx, ClaimParams{RoundID: env.roundID, TeamID: uuid.New()})
	require.Error(t, err)
	assert.Equal(t, "team_not_found", errCode(err))
}

func TestClaimQuotaExhausted(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv([]roundsrvc.TaskType{aPlusBType(3)})

	for i := 0; i < 3; i++ {
		_, err := env.srvc.Claim(ctx, ClaimParams{RoundID: env.roundID, TeamID: env.teamID})
		require.NoError(t, err)
	}

	_, err := env.srvc.Claim(ctx, ClaimParams{RoundID: env.roundID, TeamID: env.teamID})
	require.Error(t, err)
	assert.Equal(t, ErrCodeQuotaExhausted, errCode(err))
	assert.False(t, srvcerror.IsTransient(err))

	tasks, err := env.srvc.ListTasks(ctx, env.roundID, env.teamID)
	require.NoError(t, err)
	assert.Len(t, tasks, 3)
}

func TestClaimGeneratorFailureLeavesNoState(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv([]roundsrvc.TaskType{aPlusBType(3)})
	env.gen.generateErr = errors.New("boom")

	_, err := env.srvc.Claim(ctx, ClaimParams{RoundID: env.roundID, TeamID: env.teamID})
	require.Error(t, err)
	assert.Equal(t, ErrCodeGeneratorError, errCode(err))
	assert.True(t, srvcerror.IsTransient(err))

	tasks, err := env.srvc.ListTasks(ctx, env.roundID, env.teamID)
	require.NoError(t, err)
	assert.Empty(t, tasks)

	view, err := env.srvc.GetDashboard(ctx, env.roundID, env.teamID)
	require.NoError(t, err)
	assert.Equal(t, 0, view.Types[0].Pending)
	assert.Equal(t, 3, view.Types[0].Remaining)
}

func TestClaimAutoSelectionSkipsExhaustedTypes(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv([]roundsrvc.TaskType{
		{Code: "tiny", NTasks: 1, Score: 10, TimeToSolveMin: 15},
		{Code: "big", NTasks: 5, Score: 10, TimeToSolveMin: 15},
	})

	_, err := env.srvc.Claim(ctx, ClaimParams{
		RoundID: env.roundID, TeamID: env.teamID, TypeCode: "tiny"})
	require.NoError(t, err)

	// tiny is exhausted now, every auto claim must land on big
	for i := 0; i < 5; i++ {
		task, err := env.srvc.Claim(ctx, ClaimParams{RoundID: env.roundID, TeamID: env.teamID})
		require.NoError(t, err)
		assert.Equal(t, "big", task.TypeCode)
	}

	_, err = env.srvc.Claim(ctx, ClaimParams{RoundID: env.roundID, TeamID: env.teamID})
	assert.Equal(t, ErrCodeQuotaExhausted, errCode(err))
}

func TestClaimExplicitTypeQuotaExhausted(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv([]roundsrvc.TaskType{
		aPlusBType(1),
		{Code: "sort_it", NTasks: 2, Score: 50, TimeToSolveMin: 15},
	})

	_, err := env.srvc.Claim(ctx, ClaimParams{
		RoundID: env.roundID, TeamID: env.teamID, TypeCode: "a_plus_b"})
	require.NoError(t, err)

	_, err = env.srvc.Claim(ctx, ClaimParams{
		RoundID: env.roundID, TeamID: env.teamID, TypeCode: "a_plus_b"})
	assert.Equal(t, ErrCodeQuotaExhausted, errCode(err))
}
