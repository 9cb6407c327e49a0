package store

import (
	"fmt"

	"github.com/starford/notioncsv/internal/models"
	"github.com/starford/notioncsv/internal/pgarray"
)

// LoadStats reports what a Load call changed.
type LoadStats struct {
	Written   int
	Unchanged int
}

// Load upserts records keyed by source path within one transaction. Rows
// whose stored checksum matches the record are left alone.
func (db *DB) Load(records []models.Record) (LoadStats, error) {
	var stats LoadStats

	existing, err := db.AllChecksums()
	if err != nil {
		return stats, err
	}

	tx, err := db.conn.Begin()
	if err != nil {
		return stats, fmt.Errorf("store: begin tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // best-effort on failure path

	stmt, err := tx.Prepare(`
		INSERT INTO prompts (source_path, checksum, title, content, category, tags, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(source_path) DO UPDATE SET
			checksum   = excluded.checksum,
			title      = excluded.title,
			content    = excluded.content,
			category   = excluded.category,
			tags       = excluded.tags,
			created_at = excluded.created_at
	`)
	if err != nil {
		return stats, fmt.Errorf("store: prepare upsert: %w", err)
	}
	defer stmt.Close()

	for _, r := range records {
		if cs, ok := existing[r.SourcePath]; ok && cs == r.Checksum {
			stats.Unchanged++
			continue
		}
		if _, err := stmt.Exec(r.SourcePath, r.Checksum, r.Title, r.Content, r.Category,
			pgarray.Format(r.Tags), r.CreatedAt); err != nil {
			return stats, fmt.Errorf("store: upsert %s: %w", r.SourcePath, err)
		}
		stats.Written++
	}

	if err := tx.Commit(); err != nil {
		return stats, fmt.Errorf("store: commit: %w", err)
	}
	return stats, nil
}

// AllChecksums returns source path → checksum for every stored prompt.
func (db *DB) AllChecksums() (map[string]string, error) {
	rows, err := db.conn.Query(`SELECT source_path, checksum FROM prompts`)
	if err != nil {
		return nil, fmt.Errorf("store: all checksums: %w", err)
	}
	defer rows.Close()
	out := make(map[string]string)
	for rows.Next() {
		var p, cs string
		if err := rows.Scan(&p, &cs); err != nil {
			return nil, err
		}
		out[p] = cs
	}
	return out, rows.Err()
}

// Count returns the number of stored prompts.
func (db *DB) Count() (int, error) {
	var n int
	if err := db.conn.QueryRow(`SELECT count(*) FROM prompts`).Scan(&n); err != nil {
		return 0, fmt.Errorf("store: count: %w", err)
	}
	return n, nil
}
