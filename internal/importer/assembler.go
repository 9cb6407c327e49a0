package importer

import (
	"fmt"
	"log/slog"
	"unicode/utf8"

	"github.com/starford/notioncsv/internal/apperr"
	"github.com/starford/notioncsv/internal/checksum"
	"github.com/starford/notioncsv/internal/models"
	"github.com/starford/notioncsv/internal/parser"
	"github.com/starford/notioncsv/internal/storage"
)

// Assembler turns a single export file into a Record.
type Assembler struct {
	store  storage.Provider
	logger *slog.Logger
}

// NewAssembler creates an Assembler reading from store.
func NewAssembler(store storage.Provider, logger *slog.Logger) *Assembler {
	return &Assembler{store: store, logger: logger}
}

// Assemble reads path and resolves its record. It returns an error wrapping
// apperr.ErrContentTooShort when the cleaned body is too short to keep.
func (a *Assembler) Assemble(path string) (*models.Record, error) {
	data, err := a.store.Read(path)
	if err != nil {
		return nil, err
	}
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("%s: invalid UTF-8", path)
	}
	res := parser.Parse(data)

	if models.ContentTooShort(res.Body) {
		return nil, apperr.ErrContentTooShort
	}

	rec := &models.Record{
		Title:      TitleFromPath(path),
		Content:    res.Body,
		Category:   CategoryFromPath(path, a.store.Name()),
		Tags:       res.Tags,
		CreatedAt:  a.createdAt(path),
		SourcePath: path,
		Checksum:   checksum.Sum(data),
	}
	if err := rec.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", apperr.ErrInvalidRecord, err)
	}
	return rec, nil
}

// createdAt falls back to an empty timestamp when the file cannot be stat'ed
// or its modification time does not fit the four-digit year format.
func (a *Assembler) createdAt(path string) string {
	mtime, err := a.store.ModTime(path)
	if err != nil {
		a.logger.Warn("could not get timestamp",
			slog.String("path", path),
			slog.String("error", err.Error()))
		return ""
	}
	ts := FormatTimestamp(mtime)
	if !models.ValidCreatedAt(ts) {
		a.logger.Warn("could not get timestamp",
			slog.String("path", path),
			slog.String("error", "modification time out of range: "+ts))
		return ""
	}
	return ts
}
