package roundsrvc

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/teamwork-challenge/backend/srvcerror"
)

const ErrCodeRoundNotFound = "round_not_found"

func newErrRoundNotFound(roundID uuid.UUID) *srvcerror.Error {
	return srvcerror.New(
		ErrCodeRoundNotFound,
		fmt.Sprintf("round %s was not found", roundID),
	).SetHttpStatusCode(http.StatusNotFound)
}

func newErrInternalSE() *srvcerror.Error {
	return srvcerror.ErrInternalSE()
}
