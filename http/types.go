package http

import (
	"time"

	"github.com/teamwork-challenge/backend/contestsrvc"
)

type taskResponse struct {
	ID        string  `json:"id"`
	RoundID   string  `json:"round_id"`
	TypeCode  string  `json:"type_code"`
	Status    string  `json:"status"`
	Statement string  `json:"statement"`
	Input     string  `json:"input"`
	Score     int     `json:"score"`
	ClaimedAt string  `json:"claimed_at"`
	SolvedAt  *string `json:"solved_at,omitempty"`
}

func mapTask(task contestsrvc.Task) taskResponse {
	var solvedAt *string
	if task.SolvedAt != nil {
		s := task.SolvedAt.Format(time.RFC3339)
		solvedAt = &s
	}
	return taskResponse{
		ID:        task.ID.String(),
		RoundID:   task.RoundID.String(),
		TypeCode:  task.TypeCode,
		Status:    string(task.Status),
		Statement: task.Statement,
		Input:     task.Input,
		Score:     task.Score,
		ClaimedAt: task.ClaimedAt.Format(time.RFC3339),
		SolvedAt:  solvedAt,
	}
}

type submResponse struct {
	ID            string `json:"id"`
	TaskID        string `json:"task_id"`
	Status        string `json:"status"`
	Answer        string `json:"answer"`
	CheckerOutput string `json:"checker_output,omitempty"`
	Score         int    `json:"score"`
	SubmittedAt   string `json:"submitted_at"`
}

func mapSubm(subm contestsrvc.Submission) submResponse {
	return submResponse{
		ID:            subm.ID.String(),
		TaskID:        subm.TaskID.String(),
		Status:        string(subm.Status),
		Answer:        subm.Answer,
		CheckerOutput: subm.CheckerOutput,
		Score:         subm.Score,
		SubmittedAt:   subm.SubmittedAt.Format(time.RFC3339),
	}
}

type typeProgressResponse struct {
	TypeCode  string `json:"type_code"`
	Pending   int    `json:"pending"`
	Accepted  int    `json:"ac"`
	Wrong     int    `json:"wa"`
	Remaining int    `json:"remaining"`
}

type dashboardResponse struct {
	RoundID string                 `json:"round_id"`
	TeamID  string                 `json:"team_id"`
	Score   int                    `json:"score"`
	Types   []typeProgressResponse `json:"types"`
}

func mapDashboard(view contestsrvc.DashboardView) dashboardResponse {
	types := make([]typeProgressResponse, 0, len(view.Types))
	for _, tp := range view.Types {
		types = append(types, typeProgressResponse{
			TypeCode:  tp.TypeCode,
			Pending:   tp.Pending,
			Accepted:  tp.Accepted,
			Wrong:     tp.Wrong,
			Remaining: tp.Remaining,
		})
	}
	return dashboardResponse{
		RoundID: view.RoundID.String(),
		TeamID:  view.TeamID.String(),
		Score:   view.Score,
		Types:   types,
	}
}
