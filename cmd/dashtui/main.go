package main

import (
	"context"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/urfave/cli/v3"
)

func main() {
	cmd := &cli.Command{
		Name:  "twcdash",
		Usage: "Live team dashboard for the teamwork challenge",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "api",
				Usage:   "Base URL of the challenge API",
				Value:   "http://localhost:8080",
				Sources: cli.EnvVars("TWC_API_URL"),
			},
			&cli.StringFlag{
				Name:     "round",
				Usage:    "Round id to watch",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "token",
				Usage:    "Team JWT obtained from /auth/login",
				Sources:  cli.EnvVars("TWC_TOKEN"),
				Required: true,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			client := newApiClient(cmd.String("api"), cmd.String("token"))
			p := tea.NewProgram(initialModel(client, cmd.String("round")))
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("dashboard tui failed: %w", err)
			}
			return nil
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
