package roundsrvc

import (
	"fmt"

	"github.com/google/uuid"
)

// A round lives in DynamoDB as one item family under a shared partition key:
// a single details row plus one row per configured task type.

type ddbDetailsRow struct {
	Pk          string `dynamodbav:"pk"`
	Sk          string `dynamodbav:"sk"`
	ChallengeID string `dynamodbav:"challenge_id"`
	Published   bool   `dynamodbav:"published"`
	ClaimByType bool   `dynamodbav:"claim_by_type"`
	StartsAt    int64  `dynamodbav:"starts_at"` // unix seconds
	EndsAt      int64  `dynamodbav:"ends_at"`
}

type ddbTaskTypeRow struct {
	Pk             string `dynamodbav:"pk"`
	Sk             string `dynamodbav:"sk"`
	Code           string `dynamodbav:"type_code"`
	NTasks         int    `dynamodbav:"n_tasks"`
	Score          int    `dynamodbav:"score"`
	TimeToSolveMin int    `dynamodbav:"time_to_solve_min"`
	GenUrl         string `dynamodbav:"gen_url"`
	GenSecret      string `dynamodbav:"gen_secret"`
	GenSettings    string `dynamodbav:"gen_settings,omitempty"`
}

const (
	detailsSk      = "details"
	taskTypeSkPref = "task_type#"
)

func roundPk(roundID uuid.UUID) string {
	return fmt.Sprintf("round#%s", roundID)
}

func taskTypeSk(code string) string {
	return taskTypeSkPref + code
}
