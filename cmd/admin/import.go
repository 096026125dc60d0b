package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/google/uuid"
	"github.com/pelletier/go-toml/v2"
	"github.com/teamwork-challenge/backend/conf"
	"github.com/teamwork-challenge/backend/roundsrvc"
	"github.com/teamwork-challenge/backend/teamsrvc"
)

type roundToml struct {
	RoundID     string         `toml:"round_id"`
	ChallengeID string         `toml:"challenge_id"`
	Published   bool           `toml:"published"`
	ClaimByType bool           `toml:"claim_by_type"`
	StartsAt    time.Time      `toml:"starts_at"`
	EndsAt      time.Time      `toml:"ends_at"`
	TaskTypes   []taskTypeToml `toml:"task_type"`
}

type taskTypeToml struct {
	Code           string `toml:"code"`
	NTasks         int    `toml:"n_tasks"`
	Score          int    `toml:"score"`
	TimeToSolveMin int    `toml:"time_to_solve_min"`
	GenUrl         string `toml:"gen_url"`
	GenSecret      string `toml:"gen_secret"`
	GenSettings    string `toml:"gen_settings"`
}

type rosterToml struct {
	ChallengeID string     `toml:"challenge_id"`
	Teams       []teamToml `toml:"team"`
}

type teamToml struct {
	Name   string `toml:"name"`
	ApiKey string `toml:"api_key"`
}

func importRound(ctx context.Context, path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read round file: %w", err)
	}
	var parsed roundToml
	if err := toml.Unmarshal(content, &parsed); err != nil {
		return fmt.Errorf("failed to parse round file: %w", err)
	}

	round, err := parsed.toRound()
	if err != nil {
		return err
	}

	awsCfg, err := conf.LoadAwsConfig(ctx)
	if err != nil {
		return err
	}
	ddbClient := dynamodb.NewFromConfig(awsCfg)
	roundSrvc := roundsrvc.NewRoundSrvc(ddbClient,
		conf.GetTableNameFromEnv("ROUND_TABLE", conf.DefaultRoundTable))

	if err := roundSrvc.SaveRound(ctx, round); err != nil {
		return fmt.Errorf("failed to save round: %w", err)
	}
	slog.Info("imported round",
		"round_id", round.ID.String(),
		"task_types", len(round.TaskTypes))
	return nil
}

func importTeams(ctx context.Context, path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read roster file: %w", err)
	}
	var parsed rosterToml
	if err := toml.Unmarshal(content, &parsed); err != nil {
		return fmt.Errorf("failed to parse roster file: %w", err)
	}
	challengeID, err := uuid.Parse(parsed.ChallengeID)
	if err != nil {
		return fmt.Errorf("invalid challenge_id: %w", err)
	}

	awsCfg, err := conf.LoadAwsConfig(ctx)
	if err != nil {
		return err
	}
	ddbClient := dynamodb.NewFromConfig(awsCfg)
	teamTable := teamsrvc.NewDynamoDbTeamTable(ddbClient,
		conf.GetTableNameFromEnv("TEAM_TABLE", conf.DefaultTeamTable))
	teamSrvc := teamsrvc.NewTeamSrvc(teamTable)

	for _, entry := range parsed.Teams {
		team, err := teamSrvc.CreateTeam(ctx, challengeID, entry.Name, entry.ApiKey)
		if err != nil {
			return fmt.Errorf("failed to create team %q: %w", entry.Name, err)
		}
		slog.Info("created team", "team_id", team.ID.String(), "name", team.Name)
	}
	return nil
}

func (r *roundToml) toRound() (*roundsrvc.Round, error) {
	roundID := uuid.New()
	if r.RoundID != "" {
		parsed, err := uuid.Parse(r.RoundID)
		if err != nil {
			return nil, fmt.Errorf("invalid round_id: %w", err)
		}
		roundID = parsed
	}
	challengeID, err := uuid.Parse(r.ChallengeID)
	if err != nil {
		return nil, fmt.Errorf("invalid challenge_id: %w", err)
	}
	if len(r.TaskTypes) == 0 {
		return nil, fmt.Errorf("round defines no task types")
	}
	if !r.EndsAt.After(r.StartsAt) {
		return nil, fmt.Errorf("ends_at must be after starts_at")
	}

	taskTypes := make([]roundsrvc.TaskType, 0, len(r.TaskTypes))
	seen := make(map[string]bool)
	for _, t := range r.TaskTypes {
		if t.Code == "" {
			return nil, fmt.Errorf("task type with empty code")
		}
		if seen[t.Code] {
			return nil, fmt.Errorf("duplicate task type code %q", t.Code)
		}
		seen[t.Code] = true
		if t.NTasks <= 0 {
			return nil, fmt.Errorf("task type %q has non-positive quota", t.Code)
		}
		if t.TimeToSolveMin <= 0 {
			return nil, fmt.Errorf("task type %q has non-positive time to solve", t.Code)
		}
		taskTypes = append(taskTypes, roundsrvc.TaskType{
			Code:           t.Code,
			NTasks:         t.NTasks,
			Score:          t.Score,
			TimeToSolveMin: t.TimeToSolveMin,
			GenUrl:         t.GenUrl,
			GenSecret:      t.GenSecret,
			GenSettings:    t.GenSettings,
		})
	}

	return &roundsrvc.Round{
		ID:          roundID,
		ChallengeID: challengeID,
		Published:   r.Published,
		ClaimByType: r.ClaimByType,
		StartsAt:    r.StartsAt.UTC(),
		EndsAt:      r.EndsAt.UTC(),
		TaskTypes:   taskTypes,
	}, nil
}
