// Package csvout writes records as a CSV file ready for bulk import.
package csvout

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/starford/notioncsv/internal/apperr"
	"github.com/starford/notioncsv/internal/models"
	"github.com/starford/notioncsv/internal/pgarray"
)

// Header is the fixed column order of the output file.
var Header = []string{"title", "content", "category", "tags", "created_at"}

// Encode writes the header and one row per record to w.
func Encode(w io.Writer, records []models.Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return err
	}
	for _, r := range records {
		row := []string{r.Title, r.Content, r.Category, pgarray.Format(r.Tags), r.CreatedAt}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteFile atomically writes records to path: tmp file → fsync → rename.
func WriteFile(path string, records []models.Record) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("csvout: %w: mkdir: %w", apperr.ErrOutputUnwritable, err)
	}

	tmp, err := os.CreateTemp(dir, ".notioncsv-tmp-*")
	if err != nil {
		return fmt.Errorf("csvout: %w: create temp: %w", apperr.ErrOutputUnwritable, err)
	}
	tmpName := tmp.Name()

	// Clean up on any failure path.
	success := false
	defer func() {
		if !success {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if err := Encode(tmp, records); err != nil {
		return fmt.Errorf("csvout: write temp: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("csvout: fsync: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("csvout: close temp: %w", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf("csvout: chmod: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("csvout: rename: %w", err)
	}
	success = true
	return nil
}
