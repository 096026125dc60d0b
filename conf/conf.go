package conf

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
)

const (
	DefaultAwsRegion = "eu-central-1"

	DefaultRoundTable = "TwcRounds"
	DefaultTeamTable  = "TwcTeams"
	DefaultDashTable  = "TwcDashboards"
	DefaultTaskTable  = "TwcTasks"
	DefaultSubmTable  = "TwcSubmissions"
)

func GetAwsRegionFromEnv() string {
	region := os.Getenv("AWS_REGION")
	if region == "" {
		return DefaultAwsRegion
	}
	return region
}

func LoadAwsConfig(ctx context.Context) (aws.Config, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	cfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(GetAwsRegionFromEnv()))
	if err != nil {
		return aws.Config{}, fmt.Errorf("unable to load SDK config: %w", err)
	}
	return cfg, nil
}

func GetJwtKeyFromEnv() []byte {
	jwtKey := os.Getenv("JWT_KEY")
	if jwtKey == "" {
		panic("JWT_KEY is not set")
	}
	return []byte(jwtKey)
}

func GetTableNameFromEnv(envVar string, fallback string) string {
	name := os.Getenv(envVar)
	if name == "" {
		return fallback
	}
	return name
}
