package contestsrvc

import (
	"time"

	"github.com/google/uuid"
)

type TaskStatus string

const (
	StatusPending     TaskStatus = "pending"
	StatusAccepted    TaskStatus = "ac"
	StatusWrongAnswer TaskStatus = "wa"
)

// Task is one generated task instance, exclusively owned by its team for the
// lifetime of the round. Created once by Claim, mutated only by Submit.
type Task struct {
	ID          uuid.UUID
	RoundID     uuid.UUID
	TeamID      uuid.UUID
	TypeCode    string
	Status      TaskStatus
	Statement   string
	Input       string
	CheckerHint string // opaque, generator-specific
	Score       int    // points awarded, 0 until accepted
	ClaimedAt   time.Time
	SolvedAt    *time.Time // set only on acceptance
	Version     int64      // for optimistic locking
}

func (t *Task) Deadline(timeToSolve time.Duration) time.Time {
	return t.ClaimedAt.Add(timeToSolve)
}

// Submission is an append-only record of one answer attempt.
type Submission struct {
	ID            uuid.UUID
	TaskID        uuid.UUID
	TeamID        uuid.UUID
	RoundID       uuid.UUID
	Status        TaskStatus // ac or wa
	Answer        string
	CheckerOutput string
	Score         int
	SubmittedAt   time.Time
}

// TypeCounters are the per-task-type counters of one team dashboard.
type TypeCounters struct {
	Pending  int
	Accepted int
	Wrong    int
}

func (c TypeCounters) Taken() int {
	return c.Pending + c.Accepted + c.Wrong
}

// TeamDashboard is the derived aggregate for one (round, team) pair and the
// single source of truth for remaining quota. Every quota-affecting write
// goes through a versioned compare-and-swap on this one document, which is
// what serializes concurrent workers of the same team without coupling
// different teams to each other.
type TeamDashboard struct {
	RoundID  uuid.UUID
	TeamID   uuid.UUID
	Counters map[string]TypeCounters // keyed by task type code
	Score    int                     // cumulative team score in the round
	Version  int64
}

func (d *TeamDashboard) Taken(typeCode string) int {
	return d.Counters[typeCode].Taken()
}

func (d *TeamDashboard) counters(typeCode string) TypeCounters {
	return d.Counters[typeCode]
}

func (d *TeamDashboard) setCounters(typeCode string, c TypeCounters) {
	if d.Counters == nil {
		d.Counters = make(map[string]TypeCounters)
	}
	d.Counters[typeCode] = c
}

// TypeProgress is one row of the dashboard read path: counters merged with
// the configured quota.
type TypeProgress struct {
	TypeCode  string
	Pending   int
	Accepted  int
	Wrong     int
	Remaining int
}

type DashboardView struct {
	RoundID uuid.UUID
	TeamID  uuid.UUID
	Types   []TypeProgress
	Score   int
}
