package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	cli "github.com/urfave/cli/v3"

	"github.com/jask/swipeview/internal/config"
	"github.com/jask/swipeview/internal/demo"
	"github.com/jask/swipeview/internal/inbox"
	"github.com/jask/swipeview/internal/logging"
)

func main() {
	cmd := &cli.Command{
		Name:  "swipedemo",
		Usage: "Browse a demo inbox built from swipeable rows",
		Commands: []*cli.Command{
			newConfigCommand(),
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Config file (TOML)",
				Sources: cli.EnvVars("SWIPEDEMO_CONFIG"),
			},
			&cli.StringFlag{
				Name:  "inbox",
				Usage: "Inbox seed file (TOML), built-in seed when empty",
			},
			&cli.StringFlag{
				Name:  "log-file",
				Usage: "Write logs to this file",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "Log level (debug, info, warn, error)",
			},
		},
		Action: run,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "swipedemo:", err)
		os.Exit(1)
	}
}

func loadConfig(command *cli.Command) (config.Config, error) {
	cfg, err := config.Load(command.String("config"))
	if err != nil {
		return config.Config{}, err
	}
	if command.IsSet("inbox") {
		cfg.Inbox.Path = command.String("inbox")
	}
	if command.IsSet("log-file") {
		cfg.Log.File = command.String("log-file")
	}
	if command.IsSet("log-level") {
		cfg.Log.Level = command.String("log-level")
	}
	return cfg, nil
}

func run(ctx context.Context, command *cli.Command) error {
	cfg, err := loadConfig(command)
	if err != nil {
		return err
	}

	closer, err := logging.Setup(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		return err
	}
	defer func() {
		if err := closer.Close(); err != nil {
			fmt.Fprintln(os.Stderr, "close log:", err)
		}
	}()
	logger := logging.WithModule("swipedemo")

	msgs, err := inbox.Load(cfg.Inbox.Path)
	if err != nil {
		return err
	}
	logger.Info("starting", "messages", len(msgs), "inbox", cfg.Inbox.Path)

	p := tea.NewProgram(
		demo.New(cfg, inbox.NewBox(msgs)),
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	logger.Info("bye")
	return nil
}

func newConfigCommand() *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Manage the config file",
		Commands: []*cli.Command{
			{
				Name:  "init",
				Usage: "Write the default config",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "force", Usage: "Overwrite an existing file"},
				},
				Action: func(ctx context.Context, command *cli.Command) error {
					path := command.String("config")
					if path == "" {
						path = config.DefaultPath()
					}
					if _, err := os.Stat(path); err == nil && !command.Bool("force") {
						return fmt.Errorf("%s exists, use --force to overwrite", path)
					}
					if err := config.Save(path, config.Defaults()); err != nil {
						return err
					}
					slog.Info("wrote config", "path", path)
					fmt.Println(path)
					return nil
				},
			},
		},
	}
}
