package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	"github.com/urfave/cli/v3"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file loaded", "error", err)
	}

	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level: slog.LevelInfo,
	})))

	cmd := &cli.Command{
		Name:  "twcadmin",
		Usage: "Admin CLI tool for the teamwork challenge",
		Commands: []*cli.Command{
			{
				Name:  "round",
				Usage: "Manage round configuration",
				Commands: []*cli.Command{
					{
						Name:  "import",
						Usage: "Import a round definition from a TOML file",
						Flags: []cli.Flag{
							&cli.StringFlag{
								Name:     "file",
								Aliases:  []string{"f"},
								Usage:    "Path to the round TOML file",
								Required: true,
							},
						},
						Action: func(ctx context.Context, cmd *cli.Command) error {
							return importRound(ctx, cmd.String("file"))
						},
					},
				},
			},
			{
				Name:  "teams",
				Usage: "Manage team rosters",
				Commands: []*cli.Command{
					{
						Name:  "import",
						Usage: "Import a team roster from a TOML file",
						Flags: []cli.Flag{
							&cli.StringFlag{
								Name:     "file",
								Aliases:  []string{"f"},
								Usage:    "Path to the roster TOML file",
								Required: true,
							},
						},
						Action: func(ctx context.Context, cmd *cli.Command) error {
							return importTeams(ctx, cmd.String("file"))
						},
					},
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
