package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"

	"github.com/starford/notioncsv/internal"
	pkgconfig "github.com/starford/notioncsv/pkg/config"
)

const usage = `Usage: notioncsv <path_to_notion_export_directory>

Example:
  notioncsv ./notion_export

This will create prompts.csv in the current directory.
`

var errUsage = errors.New("missing source directory argument")

func run(_ context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() < 1 {
		printUsage(os.Stdout)
		return errUsage
	}

	cfg := internal.NewDefaultConfig()
	if _, err := pkgconfig.Overlay(cmd.String("config"), cfg); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.Source.Path = cmd.Args().First()
	if out := cmd.String("output"); out != "" {
		cfg.Output.CSVPath = out
	}
	if db := cmd.String("sqlite"); db != "" {
		cfg.SQLite.Path = db
	}
	if err := pkgconfig.Validate(cfg); err != nil {
		return err
	}

	opts := []internal.Option{
		internal.WithConfig(cfg),
	}

	if err := internal.Run(opts...); err != nil {
		return fmt.Errorf("app run error: %w", err)
	}

	return nil
}

func printUsage(w io.Writer) {
	fmt.Fprint(w, usage)
}

func newCommand() *cli.Command {
	return &cli.Command{
		Name:            "notioncsv",
		Usage:           "Convert a Notion Markdown export into a CSV file for bulk import",
		ArgsUsage:       "<path_to_notion_export_directory>",
		Action:          run,
		HideHelpCommand: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "Path to optional config file",
				DefaultText: "config/config.yaml",
				Value:       "config/config.yaml",
				Sources:     cli.EnvVars("APP_CONFIG_FILE"),
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "CSV output path (overrides config, default prompts.csv)",
			},
			&cli.StringFlag{
				Name:  "sqlite",
				Usage: "Also load records into this SQLite database",
			},
		},
	}
}

func main() {
	if err := newCommand().Run(context.Background(), os.Args); err != nil {
		if !errors.Is(err, errUsage) {
			slog.Error("application error", slog.String("error", err.Error()))
		}
		os.Exit(1)
	}
}
