// Package models defines the domain types for the Notion export converter.
package models

import (
	"errors"
	"regexp"
	"strings"
	"unicode/utf8"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// UncategorizedCategory is used when a document has no meaningful parent folder.
const UncategorizedCategory = "Uncategorized"

// MinContentLength is the shortest trimmed body a record may carry.
const MinContentLength = 10

var createdAtRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}Z$`)

// Record is one resolved output row.
type Record struct {
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	Category  string   `json:"category"`
	Tags      []string `json:"tags"`
	CreatedAt string   `json:"created_at"`

	// Provenance, not part of the CSV output.
	SourcePath string `json:"-"`
	Checksum   string `json:"-"`
}

// Validate checks the invariants every emitted record must hold.
func (r *Record) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Content, validation.By(minTrimmedLength(MinContentLength))),
		validation.Field(&r.Category, validation.Required),
		validation.Field(&r.Tags, validation.Each(validation.Required)),
		validation.Field(&r.CreatedAt, validation.Match(createdAtRe)),
	)
}

// ContentTooShort reports whether s has fewer than MinContentLength
// characters once surrounding whitespace is trimmed.
func ContentTooShort(s string) bool {
	return utf8.RuneCountInString(strings.TrimSpace(s)) < MinContentLength
}

// ValidCreatedAt reports whether s is a well-formed created_at value.
// The empty string is valid.
func ValidCreatedAt(s string) bool {
	return s == "" || createdAtRe.MatchString(s)
}

func minTrimmedLength(n int) validation.RuleFunc {
	return func(value any) error {
		s, _ := value.(string)
		if utf8.RuneCountInString(strings.TrimSpace(s)) < n {
			return errors.New("too short")
		}
		return nil
	}
}
