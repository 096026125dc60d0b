package contestsrvc

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/teamwork-challenge/backend/srvcerror"
)

const ErrCodeRoundNotActive = "round_not_active"

func newErrRoundNotActive() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeRoundNotActive,
		"the round is not open for task claims",
	).SetHttpStatusCode(http.StatusForbidden)
}

const ErrCodeTypeNotAllowed = "type_not_allowed"

func newErrClaimByTypeDisabled() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeTypeNotAllowed,
		"this round does not allow claiming tasks by type",
	).SetHttpStatusCode(http.StatusBadRequest)
}

func newErrUnknownTaskType(typeCode string) *srvcerror.Error {
	return srvcerror.New(
		ErrCodeTypeNotAllowed,
		fmt.Sprintf("task type %q is not configured for this round", typeCode),
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeQuotaExhausted = "quota_exhausted"

func newErrQuotaExhausted() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeQuotaExhausted,
		"no task type has remaining quota for your team",
	).SetHttpStatusCode(http.StatusConflict)
}

func newErrTypeQuotaExhausted(typeCode string) *srvcerror.Error {
	return srvcerror.New(
		ErrCodeQuotaExhausted,
		fmt.Sprintf("the quota of task type %q is exhausted for your team", typeCode),
	).SetHttpStatusCode(http.StatusConflict)
}

const ErrCodeConflict = "write_conflict"

func newErrWriteConflict() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeConflict,
		"a concurrent request modified your dashboard, please retry",
	).SetHttpStatusCode(http.StatusConflict).SetTransient()
}

const ErrCodeGeneratorError = "generator_error"

func newErrGenerator() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeGeneratorError,
		"the task generator is unavailable, please retry",
	).SetHttpStatusCode(http.StatusBadGateway).SetTransient()
}

const ErrCodeTaskNotFound = "task_not_found"

func newErrTaskNotFound(taskID uuid.UUID) *srvcerror.Error {
	return srvcerror.New(
		ErrCodeTaskNotFound,
		fmt.Sprintf("task %s was not found", taskID),
	).SetHttpStatusCode(http.StatusNotFound)
}

const ErrCodeForbidden = "forbidden"

func newErrForbidden() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeForbidden,
		"the task belongs to another team",
	).SetHttpStatusCode(http.StatusForbidden)
}

const ErrCodeTimeLimitExceeded = "time_limit_exceeded"

func newErrTimeLimitExceeded() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeTimeLimitExceeded,
		"the time limit for this task has passed",
	).SetHttpStatusCode(http.StatusForbidden)
}

const ErrCodeAlreadySolved = "already_solved"

func newErrAlreadySolved() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeAlreadySolved,
		"the task is already solved",
	).SetHttpStatusCode(http.StatusConflict)
}

func newErrInternalSE() *srvcerror.Error {
	return srvcerror.ErrInternalSE()
}
