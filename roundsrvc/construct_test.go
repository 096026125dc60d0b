package roundsrvc

import (
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructRoundFromDdbItems(t *testing.T) {
	roundID := uuid.New()
	challengeID := uuid.New()
	start := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	end := start.Add(4 * time.Hour)

	details, err := attributevalue.MarshalMap(ddbDetailsRow{
		Pk:          roundPk(roundID),
		Sk:          detailsSk,
		ChallengeID: challengeID.String(),
		Published:   true,
		ClaimByType: true,
		StartsAt:    start.Unix(),
		EndsAt:      end.Unix(),
	})
	require.NoError(t, err)

	typeRow, err := attributevalue.MarshalMap(ddbTaskTypeRow{
		Pk:             roundPk(roundID),
		Sk:             taskTypeSk("a_plus_b"),
		Code:           "a_plus_b",
		NTasks:         3,
		Score:          100,
		TimeToSolveMin: 30,
		GenUrl:         "https://gen.example.com",
		GenSecret:      "s3cret",
	})
	require.NoError(t, err)

	c := newRoundConstructor(roundID)
	require.NoError(t, c.applyDdbItem(typeRow)) // order must not matter
	require.NoError(t, c.applyDdbItem(details))

	round, err := c.result()
	require.NoError(t, err)

	assert.Equal(t, roundID, round.ID)
	assert.Equal(t, challengeID, round.ChallengeID)
	assert.True(t, round.Published)
	assert.True(t, round.ClaimByType)
	assert.Equal(t, start, round.StartsAt)
	assert.Equal(t, end, round.EndsAt)

	typ, ok := round.TaskType("a_plus_b")
	require.True(t, ok)
	assert.Equal(t, 3, typ.NTasks)
	assert.Equal(t, 100, typ.Score)
	assert.Equal(t, 30*time.Minute, typ.TimeToSolve())
}

func TestConstructRoundWithoutDetailsFails(t *testing.T) {
	c := newRoundConstructor(uuid.New())
	_, err := c.result()
	require.Error(t, err)
}

func TestRoundIsActive(t *testing.T) {
	start := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)
	round := Round{Published: true, StartsAt: start, EndsAt: end}

	assert.False(t, round.IsActive(start.Add(-time.Second)))
	assert.True(t, round.IsActive(start))
	assert.True(t, round.IsActive(start.Add(30*time.Minute)))
	assert.True(t, round.IsActive(end))
	assert.False(t, round.IsActive(end.Add(time.Second)))

	unpublished := round
	unpublished.Published = false
	assert.False(t, unpublished.IsActive(start.Add(30*time.Minute)))
}
