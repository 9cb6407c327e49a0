// Package storage defines the read-only view of a Notion export directory.
package storage

import "time"

// Provider is the interface for export tree access. All paths are relative to
// the export root.
type Provider interface {
	// Name returns the base name of the export root directory.
	Name() string
	// List returns every .md file under dir in walk order.
	List(dir string) ([]string, error)
	// Read returns the raw bytes of the file at path.
	Read(path string) ([]byte, error)
	// ModTime returns the modification time of the file at path.
	ModTime(path string) (time.Time, error)
}
