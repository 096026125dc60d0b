package teamsrvc

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type teamRepo interface {
	Save(ctx context.Context, team *teamRow) error
	Get(ctx context.Context, teamID uuid.UUID) (*teamRow, error)
}

type TeamSrvc struct {
	repo teamRepo
}

func NewTeamSrvc(repo teamRepo) *TeamSrvc {
	return &TeamSrvc{repo: repo}
}

// NewInMemTeamSrvc is used by local development and tests.
func NewInMemTeamSrvc() *TeamSrvc {
	return &TeamSrvc{repo: newInMemTeamRepo()}
}

// GetTeam returns the team iff it belongs to the given challenge.
func (s *TeamSrvc) GetTeam(ctx context.Context, challengeID uuid.UUID, teamID uuid.UUID) (*Team, error) {
	row, err := s.repo.Get(ctx, teamID)
	if err != nil {
		errMsg := fmt.Errorf("error reading team %s: %w", teamID, err)
		return nil, newErrInternalSE().SetDebug(errMsg)
	}
	if row == nil || row.ChallengeID != challengeID.String() {
		return nil, newErrTeamNotFound(teamID)
	}
	team, err := row.toTeam()
	if err != nil {
		return nil, newErrInternalSE().SetDebug(err)
	}
	return team, nil
}

// Authenticate checks the api key against the stored bcrypt hash.
func (s *TeamSrvc) Authenticate(ctx context.Context, teamID uuid.UUID, apiKey string) (*Team, error) {
	row, err := s.repo.Get(ctx, teamID)
	if err != nil {
		errMsg := fmt.Errorf("error reading team %s: %w", teamID, err)
		return nil, newErrInternalSE().SetDebug(errMsg)
	}
	if row == nil {
		return nil, newErrTeamKeyIncorrect()
	}
	if err := bcrypt.CompareHashAndPassword(row.KeyHash, []byte(apiKey)); err != nil {
		return nil, newErrTeamKeyIncorrect()
	}
	team, err := row.toTeam()
	if err != nil {
		return nil, newErrInternalSE().SetDebug(err)
	}
	return team, nil
}

// CreateTeam registers a team with the given plaintext api key. Used by
// cmd/admin when importing a challenge roster.
func (s *TeamSrvc) CreateTeam(ctx context.Context, challengeID uuid.UUID, name string, apiKey string) (*Team, error) {
	if len(apiKey) < 8 {
		return nil, newErrTeamKeyTooShort(8)
	}
	keyHash, err := bcrypt.GenerateFromPassword([]byte(apiKey), bcrypt.DefaultCost)
	if err != nil {
		return nil, newErrInternalSE().SetDebug(err)
	}

	team := &Team{
		ID:          uuid.New(),
		ChallengeID: challengeID,
		Name:        name,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.repo.Save(ctx, rowFromTeam(team, keyHash)); err != nil {
		errMsg := fmt.Errorf("error saving team %s: %w", team.ID, err)
		return nil, newErrInternalSE().SetDebug(errMsg)
	}
	return team, nil
}
