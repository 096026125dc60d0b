package contestsrvc

import (
	"time"

	"github.com/google/uuid"
)

type counterRow struct {
	Pending  int `dynamo:"pending"`
	Accepted int `dynamo:"ac"`
	Wrong    int `dynamo:"wa"`
}

type dashRow struct {
	RoundID  string                `dynamo:"round_id,hash"` // Primary key
	TeamID   string                `dynamo:"team_id,range"`
	Counters map[string]counterRow `dynamo:"counters"`
	Score    int                   `dynamo:"score"`
	Version  int64                 `dynamo:"version"` // For optimistic locking
}

type taskRow struct {
	ID          string `dynamo:"id,hash"` // Primary key
	RoundID     string `dynamo:"round_id"`
	TeamID      string `dynamo:"team_id"`
	TypeCode    string `dynamo:"type_code"`
	Status      string `dynamo:"status"`
	Statement   string `dynamo:"statement"`
	Input       string `dynamo:"input"`
	CheckerHint string `dynamo:"checker_hint,omitempty"`
	Score       int    `dynamo:"score"`
	ClaimedAt   int64  `dynamo:"claimed_at"` // unix seconds
	SolvedAt    *int64 `dynamo:"solved_at,omitempty"`
	Version     int64  `dynamo:"version"` // For optimistic locking
}

type submRow struct {
	ID            string `dynamo:"id,hash"` // Primary key
	TaskID        string `dynamo:"task_id"`
	TeamID        string `dynamo:"team_id"`
	RoundID       string `dynamo:"round_id"`
	Status        string `dynamo:"status"`
	Answer        string `dynamo:"answer"`
	CheckerOutput string `dynamo:"checker_output,omitempty"`
	Score         int    `dynamo:"score"`
	UnixTime      int64  `dynamo:"unix_timestamp"`
}

func dashRowFrom(dash TeamDashboard) dashRow {
	counters := make(map[string]counterRow, len(dash.Counters))
	for code, c := range dash.Counters {
		counters[code] = counterRow{
			Pending:  c.Pending,
			Accepted: c.Accepted,
			Wrong:    c.Wrong,
		}
	}
	return dashRow{
		RoundID:  dash.RoundID.String(),
		TeamID:   dash.TeamID.String(),
		Counters: counters,
		Score:    dash.Score,
		Version:  dash.Version,
	}
}

func (r dashRow) toDashboard() (TeamDashboard, error) {
	roundID, err := uuid.Parse(r.RoundID)
	if err != nil {
		return TeamDashboard{}, err
	}
	teamID, err := uuid.Parse(r.TeamID)
	if err != nil {
		return TeamDashboard{}, err
	}
	counters := make(map[string]TypeCounters, len(r.Counters))
	for code, c := range r.Counters {
		counters[code] = TypeCounters{
			Pending:  c.Pending,
			Accepted: c.Accepted,
			Wrong:    c.Wrong,
		}
	}
	return TeamDashboard{
		RoundID:  roundID,
		TeamID:   teamID,
		Counters: counters,
		Score:    r.Score,
		Version:  r.Version,
	}, nil
}

func taskRowFrom(task Task) taskRow {
	var solvedAt *int64
	if task.SolvedAt != nil {
		unix := task.SolvedAt.Unix()
		solvedAt = &unix
	}
	return taskRow{
		ID:          task.ID.String(),
		RoundID:     task.RoundID.String(),
		TeamID:      task.TeamID.String(),
		TypeCode:    task.TypeCode,
		Status:      string(task.Status),
		Statement:   task.Statement,
		Input:       task.Input,
		CheckerHint: task.CheckerHint,
		Score:       task.Score,
		ClaimedAt:   task.ClaimedAt.Unix(),
		SolvedAt:    solvedAt,
		Version:     task.Version,
	}
}

func (r taskRow) toTask() (Task, error) {
	id, err := uuid.Parse(r.ID)
	if err != nil {
		return Task{}, err
	}
	roundID, err := uuid.Parse(r.RoundID)
	if err != nil {
		return Task{}, err
	}
	teamID, err := uuid.Parse(r.TeamID)
	if err != nil {
		return Task{}, err
	}
	var solvedAt *time.Time
	if r.SolvedAt != nil {
		t := time.Unix(*r.SolvedAt, 0).UTC()
		solvedAt = &t
	}
	return Task{
		ID:          id,
		RoundID:     roundID,
		TeamID:      teamID,
		TypeCode:    r.TypeCode,
		Status:      TaskStatus(r.Status),
		Statement:   r.Statement,
		Input:       r.Input,
		CheckerHint: r.CheckerHint,
		Score:       r.Score,
		ClaimedAt:   time.Unix(r.ClaimedAt, 0).UTC(),
		SolvedAt:    solvedAt,
		Version:     r.Version,
	}, nil
}

func submRowFrom(subm Submission) submRow {
	return submRow{
		ID:            subm.ID.String(),
		TaskID:        subm.TaskID.String(),
		TeamID:        subm.TeamID.String(),
		RoundID:       subm.RoundID.String(),
		Status:        string(subm.Status),
		Answer:        subm.Answer,
		CheckerOutput: subm.CheckerOutput,
		Score:         subm.Score,
		UnixTime:      subm.SubmittedAt.Unix(),
	}
}

func (r submRow) toSubmission() (Submission, error) {
	id, err := uuid.Parse(r.ID)
	if err != nil {
		return Submission{}, err
	}
	taskID, err := uuid.Parse(r.TaskID)
	if err != nil {
		return Submission{}, err
	}
	teamID, err := uuid.Parse(r.TeamID)
	if err != nil {
		return Submission{}, err
	}
	roundID, err := uuid.Parse(r.RoundID)
	if err != nil {
		return Submission{}, err
	}
	return Submission{
		ID:            id,
		TaskID:        taskID,
		TeamID:        teamID,
		RoundID:       roundID,
		Status:        TaskStatus(r.Status),
		Answer:        r.Answer,
		CheckerOutput: r.CheckerOutput,
		Score:         r.Score,
		SubmittedAt:   time.Unix(r.UnixTime, 0).UTC(),
	}, nil
}
