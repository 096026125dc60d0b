package contestsrvc

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPickTaskTypeEmpty(t *testing.T) {
	rnd := rand.New(rand.NewPCG(1, 2))
	assert.Equal(t, "", pickTaskType(nil, rnd))
	assert.Equal(t, "", pickTaskType([]typeQuota{
		{code: "a", remaining: 0},
		{code: "b", remaining: 0},
	}, rnd))
}

func TestPickTaskTypeSingleCandidateIsDeterministic(t *testing.T) {
	// no random source needed for a single candidate
	code := pickTaskType([]typeQuota{
		{code: "a", remaining: 0},
		{code: "b", remaining: 2},
	}, nil)
	assert.Equal(t, "b", code)
}

func TestPickTaskTypeNeverPicksExhausted(t *testing.T) {
	rnd := rand.New(rand.NewPCG(3, 4))
	cands := []typeQuota{
		{code: "a", remaining: 0},
		{code: "b", remaining: 1},
		{code: "c", remaining: 1},
	}
	for i := 0; i < 100; i++ {
		code := pickTaskType(cands, rnd)
		require.NotEqual(t, "a", code)
	}
}

func TestPickTaskTypeWeightedDistribution(t *testing.T) {
	rnd := rand.New(rand.NewPCG(5, 6))
	cands := []typeQuota{
		{code: "rare", remaining: 1},
		{code: "common", remaining: 9},
	}

	counts := map[string]int{}
	const draws = 10000
	for i := 0; i < draws; i++ {
		counts[pickTaskType(cands, rnd)]++
	}

	require.Equal(t, draws, counts["rare"]+counts["common"])
	// expected ~10% for "rare"; allow a generous band around it
	assert.Greater(t, counts["rare"], draws/20)
	assert.Less(t, counts["rare"], draws/5)
}
