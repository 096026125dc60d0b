package roundsrvc

import (
	"time"

	"github.com/google/uuid"
)

// TaskType is a round-scoped template governing generation, quota, scoring
// and deadline for one category of task. Immutable once the round is read.
type TaskType struct {
	Code           string // unique within the round
	NTasks         int    // per-team quota
	Score          int    // points for a fully accepted task
	TimeToSolveMin int    // minutes from claim to deadline
	GenUrl         string
	GenSecret      string
	GenSettings    string // opaque, forwarded to the generator as-is
}

func (t *TaskType) TimeToSolve() time.Duration {
	return time.Duration(t.TimeToSolveMin) * time.Minute
}

// Round is a time-boxed phase of a challenge. The engine treats it as
// read-only configuration.
type Round struct {
	ID          uuid.UUID
	ChallengeID uuid.UUID
	Published   bool
	ClaimByType bool // whether teams may request an explicit task type
	StartsAt    time.Time
	EndsAt      time.Time
	TaskTypes   []TaskType
}

func (r *Round) IsActive(at time.Time) bool {
	return r.Published && !at.Before(r.StartsAt) && !at.After(r.EndsAt)
}

func (r *Round) TaskType(code string) (*TaskType, bool) {
	for i := range r.TaskTypes {
		if r.TaskTypes[i].Code == code {
			return &r.TaskTypes[i], true
		}
	}
	return nil, false
}

func (r *Round) TotalMinutes() int {
	return int(r.EndsAt.Sub(r.StartsAt).Minutes())
}

func (r *Round) ElapsedMinutes(at time.Time) int {
	elapsed := int(at.Sub(r.StartsAt).Minutes())
	if elapsed < 0 {
		return 0
	}
	return elapsed
}
