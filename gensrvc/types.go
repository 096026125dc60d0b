package gensrvc

// Endpoint identifies one generator deployment. The secret is an opaque
// credential configured per task type; it must never end up in logs.
type Endpoint struct {
	Url    string
	Secret string
}

// Progress tells the generator where the team stands so it can scale task
// difficulty over the course of a round.
type Progress struct {
	TaskIndex      int `json:"task_index"` // 0-based index of the task being generated
	TaskCount      int `json:"task_count"` // quota for the task type
	ElapsedMinutes int `json:"elapsed_minutes"`
	TotalMinutes   int `json:"total_minutes"`
}

type GenerateRequest struct {
	ChallengeID string   `json:"challenge_id"`
	TeamID      string   `json:"team_id"`
	RoundID     string   `json:"round_id"`
	TaskID      string   `json:"task_id"`
	Progress    Progress `json:"progress"`
	Settings    string   `json:"settings,omitempty"`
}

type GenerateResponse struct {
	StatementVersion string `json:"statement_version,omitempty"`
	Statement        string `json:"statement"`
	Input            string `json:"input"`
	CheckerHint      string `json:"checker_hint,omitempty"`
}

type CheckRequest struct {
	Input       string `json:"input"`
	Answer      string `json:"answer"`
	CheckerHint string `json:"checker_hint,omitempty"`
	TaskID      string `json:"task_id"`
}

const (
	CheckStatusAccepted = "accepted"
	CheckStatusRejected = "rejected"
)

// CheckResult is one verdict from the generator. The first result in a
// response is authoritative for the submitted task; any further results name
// other tasks and are surfaced to the caller to deal with.
type CheckResult struct {
	Status string  `json:"status"` // accepted or rejected
	Score  float64 `json:"score"`  // fraction of full score, 0..1
	Error  string  `json:"error,omitempty"`
	TaskID string  `json:"task_id,omitempty"`
}

func (r CheckResult) Accepted() bool {
	return r.Status == CheckStatusAccepted
}
