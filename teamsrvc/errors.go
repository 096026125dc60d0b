package teamsrvc

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/teamwork-challenge/backend/srvcerror"
)

const ErrCodeTeamNotFound = "team_not_found"

func newErrTeamNotFound(teamID uuid.UUID) *srvcerror.Error {
	return srvcerror.New(
		ErrCodeTeamNotFound,
		fmt.Sprintf("team %s was not found", teamID),
	).SetHttpStatusCode(http.StatusNotFound)
}

const ErrCodeTeamKeyIncorrect = "team_key_incorrect"

func newErrTeamKeyIncorrect() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeTeamKeyIncorrect,
		"team id or api key is incorrect",
	).SetHttpStatusCode(http.StatusUnauthorized)
}

const ErrCodeTeamKeyTooShort = "team_key_too_short"

func newErrTeamKeyTooShort(minLength int) *srvcerror.Error {
	return srvcerror.New(
		ErrCodeTeamKeyTooShort,
		fmt.Sprintf("team api key must be at least %d characters long", minLength),
	).SetHttpStatusCode(http.StatusBadRequest)
}

func newErrInternalSE() *srvcerror.Error {
	return srvcerror.ErrInternalSE()
}
