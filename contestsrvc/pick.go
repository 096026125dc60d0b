package contestsrvc

import "math/rand/v2"

type typeQuota struct {
	code      string
	remaining int
}

// pickTaskType draws a task type with probability proportional to its
// remaining quota. Types without remaining quota never win. A single
// candidate is returned outright without consulting the random source.
// Returns "" when nothing has quota left.
func pickTaskType(candidates []typeQuota, rnd *rand.Rand) string {
	eligible := make([]typeQuota, 0, len(candidates))
	total := 0
	for _, c := range candidates {
		if c.remaining > 0 {
			eligible = append(eligible, c)
			total += c.remaining
		}
	}

	if len(eligible) == 0 {
		return ""
	}
	if len(eligible) == 1 {
		return eligible[0].code
	}

	x := rnd.IntN(total)
	for _, c := range eligible {
		x -= c.remaining
		if x < 0 {
			return c.code
		}
	}
	return eligible[len(eligible)-1].code
}
