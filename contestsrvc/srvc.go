package contestsrvc

import (
	"context"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/teamwork-challenge/backend/gensrvc"
	"github.com/teamwork-challenge/backend/roundsrvc"
	"github.com/teamwork-challenge/backend/teamsrvc"
)

// RoundProvider is the read-only registry of round configuration.
type RoundProvider interface {
	GetRound(ctx context.Context, roundID uuid.UUID) (*roundsrvc.Round, error)
}

// TeamProvider resolves a team within a challenge.
type TeamProvider interface {
	GetTeam(ctx context.Context, challengeID uuid.UUID, teamID uuid.UUID) (*teamsrvc.Team, error)
}

// Generator produces task content and grades answers.
type Generator interface {
	Generate(ctx context.Context, ep gensrvc.Endpoint, req gensrvc.GenerateRequest) (*gensrvc.GenerateResponse, error)
	Check(ctx context.Context, ep gensrvc.Endpoint, req gensrvc.CheckRequest) ([]gensrvc.CheckResult, error)
}

// ContestSrvc is the task claim & scoring engine. All of its correctness
// comes from the repo's single-attempt transactions; it holds no locks of
// its own apart from guarding the shared random source.
type ContestSrvc struct {
	repo    ContestRepo
	rounds  RoundProvider
	teams   TeamProvider
	gen     Generator
	archive *SubmArchive // optional, best-effort

	rndMu sync.Mutex
	rnd   *rand.Rand
}

func NewContestSrvc(repo ContestRepo, rounds RoundProvider, teams TeamProvider, gen Generator) *ContestSrvc {
	seed := uint64(time.Now().UnixNano())
	return &ContestSrvc{
		repo:   repo,
		rounds: rounds,
		teams:  teams,
		gen:    gen,
		rnd:    rand.New(rand.NewPCG(seed, seed>>32)),
	}
}

// SetRand replaces the random source used for weighted type selection.
func (s *ContestSrvc) SetRand(rnd *rand.Rand) {
	s.rnd = rnd
}

// SetArchive enables best-effort archiving of submissions to S3.
func (s *ContestSrvc) SetArchive(archive *SubmArchive) {
	s.archive = archive
}

func (s *ContestSrvc) drawType(candidates []typeQuota) string {
	s.rndMu.Lock()
	defer s.rndMu.Unlock()
	return pickTaskType(candidates, s.rnd)
}
