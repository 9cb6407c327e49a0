// Package internal provides the main application initialization and runtime logic.
package internal

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/starford/notioncsv/internal/csvout"
	"github.com/starford/notioncsv/internal/importer"
	"github.com/starford/notioncsv/internal/logging"
	"github.com/starford/notioncsv/internal/models"
	"github.com/starford/notioncsv/internal/store"
)

// Run converts the configured export directory and writes the outputs.
// Per-file problems are only logged; an error is returned when the log or an
// output cannot be written.
func Run(opts ...Option) error {
	app := &application{console: os.Stderr}

	for _, opt := range opts {
		opt(app)
	}

	if app.config == nil {
		return fmt.Errorf("config is required")
	}

	cfg := app.config

	logger, closer, err := logging.Open(cfg.App.ErrorLog, cfg.App.LogLevel, app.console)
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer closer.Close()

	logger.Info("Notion Markdown to CSV converter",
		slog.String("source", cfg.Source.Path),
		slog.String("output", cfg.Output.CSVPath),
		slog.String("sqlite_path", cfg.SQLite.Path),
		slog.String("log_level", cfg.App.LogLevel.String()))

	res := importer.New(cfg.Source.Path, logger).Process()

	if err := writeOutputs(cfg, res.Records, logger); err != nil {
		logger.Error("error writing output", slog.String("error", err.Error()))
		return err
	}

	summary := []any{
		slog.Int("processed", res.Processed),
		slog.Int("skipped", res.Skipped),
		slog.Int("errors", res.Errors),
		slog.String("output_file", cfg.Output.CSVPath),
	}
	if res.Errors > 0 {
		summary = append(summary, slog.String("error_log", cfg.App.ErrorLog))
	}
	logger.Info("processing summary", summary...)
	return nil
}

func writeOutputs(cfg *Config, records []models.Record, logger *slog.Logger) error {
	if len(records) == 0 {
		logger.Warn("no records to write")
		return nil
	}

	if err := csvout.WriteFile(cfg.Output.CSVPath, records); err != nil {
		return err
	}
	logger.Info("CSV file created",
		slog.String("path", cfg.Output.CSVPath),
		slog.Int("records", len(records)))

	if !cfg.SQLite.Enabled() {
		return nil
	}

	db, err := store.Open(cfg.SQLite.Path)
	if err != nil {
		return fmt.Errorf("init sqlite: %w", err)
	}
	defer db.Close()

	stats, err := db.Load(records)
	if err != nil {
		return err
	}
	total, err := db.Count()
	if err != nil {
		return err
	}
	logger.Info("SQLite load complete",
		slog.String("path", cfg.SQLite.Path),
		slog.Int("written", stats.Written),
		slog.Int("unchanged", stats.Unchanged),
		slog.Int("total", total))
	return nil
}
