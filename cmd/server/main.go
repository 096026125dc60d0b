package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	"github.com/teamwork-challenge/backend/conf"
	"github.com/teamwork-challenge/backend/contestsrvc"
	"github.com/teamwork-challenge/backend/gensrvc"
	"github.com/teamwork-challenge/backend/http"
	"github.com/teamwork-challenge/backend/roundsrvc"
	"github.com/teamwork-challenge/backend/s3bucket"
	"github.com/teamwork-challenge/backend/teamsrvc"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file loaded", "error", err)
	}

	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level: slog.LevelDebug,
	})))

	jwtKey := os.Getenv("JWT_KEY")
	if jwtKey == "" {
		slog.Error("JWT_KEY is not set")
		os.Exit(1)
	}

	ctx := context.Background()
	awsCfg, err := conf.LoadAwsConfig(ctx)
	if err != nil {
		slog.Error("failed to load aws config", "error", err)
		os.Exit(1)
	}
	ddbClient := dynamodb.NewFromConfig(awsCfg)

	roundSrvc := roundsrvc.NewRoundSrvc(ddbClient,
		conf.GetTableNameFromEnv("ROUND_TABLE", conf.DefaultRoundTable))

	var teamSrvc *teamsrvc.TeamSrvc
	var repo contestsrvc.ContestRepo
	if os.Getenv("CONTEST_STORE") == "memory" {
		// local development without DynamoDB tables
		teamSrvc = teamsrvc.NewInMemTeamSrvc()
		repo = contestsrvc.NewInMemContestRepo()
	} else {
		teamTable := teamsrvc.NewDynamoDbTeamTable(ddbClient,
			conf.GetTableNameFromEnv("TEAM_TABLE", conf.DefaultTeamTable))
		teamSrvc = teamsrvc.NewTeamSrvc(teamTable)
		repo = contestsrvc.NewDdbContestRepo(ddbClient,
			conf.GetTableNameFromEnv("DASH_TABLE", conf.DefaultDashTable),
			conf.GetTableNameFromEnv("TASK_TABLE", conf.DefaultTaskTable),
			conf.GetTableNameFromEnv("SUBM_TABLE", conf.DefaultSubmTable))
	}

	gen := gensrvc.NewClient(0)
	contestSrvc := contestsrvc.NewContestSrvc(repo, roundSrvc, teamSrvc, gen)

	if bucketName := os.Getenv("SUBM_ARCHIVE_BUCKET"); bucketName != "" {
		bucket, err := s3bucket.NewS3Bucket(conf.GetAwsRegionFromEnv(), bucketName)
		if err != nil {
			slog.Error("failed to init submission archive bucket", "error", err)
			os.Exit(1)
		}
		archive, err := contestsrvc.NewSubmArchive(bucket)
		if err != nil {
			slog.Error("failed to init submission archive", "error", err)
			os.Exit(1)
		}
		contestSrvc.SetArchive(archive)
	}

	httpServer := http.NewHttpServer(contestSrvc, teamSrvc, []byte(jwtKey))

	address := ":8080"
	log.Printf("Starting server on %s", address)
	err = httpServer.Start(address)
	log.Printf("Server stopped with error: %v", err)
}
