// Package main provides the entry point for the taskhub service binaries.
// One binary carries every service; the subcommand picks which one to run.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"taskhub/cmd/app/commands"
)

func main() {
	cmd := &cli.Command{
		Name:    "taskhub",
		Usage:   "Task management microservices",
		Version: "1.0.0",
		Commands: []*cli.Command{
			{
				Name:  "auth-server",
				Usage: "Start the authentication service",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunAuthServer(ctx)
				},
			},
			{
				Name:  "user-server",
				Usage: "Start the user profile service",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunUserServer(ctx)
				},
			},
			{
				Name:  "task-server",
				Usage: "Start the task service",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunTaskServer(ctx)
				},
			},
			{
				Name:  "gateway",
				Usage: "Start the API gateway",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunGatewayServer(ctx)
				},
			},
			{
				Name:  "migrate",
				Usage: "Run database migrations for one service",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "service",
						Aliases:  []string{"s"},
						Required: true,
						Usage:    "Service whose schema to migrate (auth, user, or task)",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunMigrations(cmd.String("service"))
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("application error", slog.Any("error", err))
		os.Exit(1)
	}
}
