package contestsrvc

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/teamwork-challenge/backend/gensrvc"
	"github.com/teamwork-challenge/backend/roundsrvc"
	"github.com/teamwork-challenge/backend/srvcerror"
	"github.com/teamwork-challenge/backend/teamsrvc"
)

type fakeRounds struct {
	rounds map[uuid.UUID]*roundsrvc.Round
}

func (f *fakeRounds) GetRound(ctx context.Context, roundID uuid.UUID) (*roundsrvc.Round, error) {
	if round, ok := f.rounds[roundID]; ok {
		return round, nil
	}
	return nil, srvcerror.New("round_not_found", "round was not found").
		SetHttpStatusCode(http.StatusNotFound)
}

type fakeTeams struct {
	challengeID uuid.UUID
	teams       map[uuid.UUID]string
}

func (f *fakeTeams) GetTeam(ctx context.Context, challengeID uuid.UUID, teamID uuid.UUID) (*teamsrvc.Team, error) {
	name, ok := f.teams[teamID]
	if !ok || challengeID != f.challengeID {
		return nil, srvcerror.New("team_not_found", "team was not found").
			SetHttpStatusCode(http.StatusNotFound)
	}
	return &teamsrvc.Team{ID: teamID, ChallengeID: challengeID, Name: name}, nil
}

// fakeGen answers like the canonical a_plus_b generator: statement "1 2",
// correct answer "3". Error injection fields simulate upstream failures.
type fakeGen struct {
	mu            sync.Mutex
	generateErr   error
	checkErr      error
	checkFn       func(req gensrvc.CheckRequest) []gensrvc.CheckResult
	generateCalls int
	checkCalls    int
}

func (f *fakeGen) Generate(ctx context.Context, ep gensrvc.Endpoint, req gensrvc.GenerateRequest) (*gensrvc.GenerateResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.generateCalls++
	if f.generateErr != nil {
		return nil, f.generateErr
	}
	return &gensrvc.GenerateResponse{
		Statement:   "add the two numbers",
		Input:       "1 2",
		CheckerHint: "3",
	}, nil
}

func (f *fakeGen) Check(ctx context.Context, ep gensrvc.Endpoint, req gensrvc.CheckRequest) ([]gensrvc.CheckResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.checkCalls++
	if f.checkErr != nil {
		return nil, f.checkErr
	}
	if f.checkFn != nil {
		return f.checkFn(req), nil
	}
	if req.Answer == req.CheckerHint {
		return []gensrvc.CheckResult{{Status: gensrvc.CheckStatusAccepted, Score: 1}}, nil
	}
	return []gensrvc.CheckResult{{Status: gensrvc.CheckStatusRejected, Score: 0, Error: "wrong answer"}}, nil
}

type testEnv struct {
	srvc    *ContestSrvc
	repo    *inMemRepo
	gen     *fakeGen
	round   *roundsrvc.Round
	roundID uuid.UUID
	teamID  uuid.UUID
	teamID2 uuid.UUID
}

// newTestEnv builds an engine over in-mem repos with one active round.
func newTestEnv(taskTypes []roundsrvc.TaskType) *testEnv {
	now := time.Now().UTC()
	roundID := uuid.New()
	challengeID := uuid.New()
	teamID := uuid.New()
	teamID2 := uuid.New()

	round := &roundsrvc.Round{
		ID:          roundID,
		ChallengeID: challengeID,
		Published:   true,
		ClaimByType: true,
		StartsAt:    now.Add(-time.Hour),
		EndsAt:      now.Add(time.Hour),
		TaskTypes:   taskTypes,
	}

	repo := NewInMemContestRepo().(*inMemRepo)
	gen := &fakeGen{}
	srvc := NewContestSrvc(repo,
		&fakeRounds{rounds: map[uuid.UUID]*roundsrvc.Round{roundID: round}},
		&fakeTeams{
			challengeID: challengeID,
			teams: map[uuid.UUID]string{
				teamID:  "rubber ducks",
				teamID2: "paper cranes",
			},
		},
		gen)

	return &testEnv{
		srvc:    srvc,
		repo:    repo,
		gen:     gen,
		round:   round,
		roundID: roundID,
		teamID:  teamID,
		teamID2: teamID2,
	}
}

func aPlusBType(quota int) roundsrvc.TaskType {
	return roundsrvc.TaskType{
		Code:           "a_plus_b",
		NTasks:         quota,
		Score:          100,
		TimeToSolveMin: 30,
		GenUrl:         "https://gen.example.com",
		GenSecret:      "s3cret",
	}
}

// backdateTask rewrites claimed_at of a stored task, simulating an expired
// deadline without waiting for the clock.
func (e *testEnv) backdateTask(taskID uuid.UUID, claimedAt time.Time) {
	e.repo.mu.Lock()
	defer e.repo.mu.Unlock()
	task := e.repo.tasks[taskID]
	task.ClaimedAt = claimedAt
	e.repo.tasks[taskID] = task
}

func errCode(err error) string {
	srvcErr := &srvcerror.Error{}
	if errors.As(err, &srvcErr) {
		return srvcErr.ErrorCode()
	}
	return ""
}
