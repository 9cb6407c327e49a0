// Package importer walks a Notion Markdown export and assembles one Record
// per usable document.
package importer

import (
	"errors"
	"log/slog"

	"github.com/starford/notioncsv/internal/apperr"
	"github.com/starford/notioncsv/internal/checksum"
	"github.com/starford/notioncsv/internal/models"
	"github.com/starford/notioncsv/internal/storage"
)

// progressEvery controls how often progress is logged, in successful records.
const progressEvery = 100

// Result summarizes one import run.
type Result struct {
	Records   []models.Record
	Found     int
	Processed int
	Skipped   int
	Errors    int
}

// Importer drives the conversion of an export directory.
type Importer struct {
	root   string
	logger *slog.Logger
}

// New creates an Importer for the export rooted at root.
func New(root string, logger *slog.Logger) *Importer {
	return &Importer{root: root, logger: logger}
}

// Process converts every .md file under the root. Per-file failures are
// logged and counted, never returned. A missing root yields an empty Result.
func (im *Importer) Process() Result {
	var res Result

	store, err := storage.NewFS(im.root)
	if err != nil {
		if errors.Is(err, apperr.ErrSourceMissing) {
			im.logger.Error("source directory does not exist", slog.String("path", im.root))
		} else {
			im.logger.Error("cannot open source directory",
				slog.String("path", im.root),
				slog.String("error", err.Error()))
		}
		return res
	}

	im.logger.Info("processing markdown files", slog.String("source", im.root))

	paths, err := store.List("")
	if err != nil {
		im.logger.Error("cannot list source directory",
			slog.String("path", im.root),
			slog.String("error", err.Error()))
		return res
	}
	res.Found = len(paths)
	im.logger.Info("found markdown files", slog.Int("count", res.Found))

	asm := NewAssembler(store, im.logger)
	for _, p := range paths {
		rec, err := asm.Assemble(p)
		switch {
		case errors.Is(err, apperr.ErrContentTooShort):
			im.logger.Warn("skipping file: content too short or empty", slog.String("path", p))
			res.Skipped++
			continue
		case err != nil:
			im.logger.Error("error processing file",
				slog.String("path", p),
				slog.String("error", err.Error()))
			res.Errors++
			continue
		}

		im.logger.Debug("assembled record",
			slog.String("path", p),
			slog.String("checksum", checksum.Short(rec.Checksum)))
		res.Records = append(res.Records, *rec)
		res.Processed++
		if res.Processed%progressEvery == 0 {
			im.logger.Info("progress", slog.Int("processed", res.Processed))
		}
	}

	im.logger.Info("processing complete",
		slog.Int("processed", res.Processed),
		slog.Int("skipped", res.Skipped),
		slog.Int("errors", res.Errors))
	return res
}
