// Package apperr holds the error taxonomy shared by the import pipeline.
package apperr

import "errors"

var (
	ErrSourceMissing    = errors.New("source directory does not exist")
	ErrContentTooShort  = errors.New("content too short or empty")
	ErrInvalidRecord    = errors.New("invalid record")
	ErrOutputUnwritable = errors.New("output not writable")
)
