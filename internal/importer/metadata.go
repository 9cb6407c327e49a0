package importer

import (
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/starford/notioncsv/internal/models"
)

// Notion appends " <32 hex chars>" to exported file names.
var exportIDSuffixRe = regexp.MustCompile(`\s+[a-f0-9]{32}$`)

// timestampLayout renders local wall-clock time with a literal "Z" suffix.
// Downstream loaders depend on this exact shape, so the value is not UTC.
const timestampLayout = "2006-01-02T15:04:05"

// TitleFromPath returns the file name without extension or export ID suffix.
func TitleFromPath(path string) string {
	name := filepath.Base(path)
	name = strings.TrimSuffix(name, filepath.Ext(name))
	return exportIDSuffixRe.ReplaceAllString(name, "")
}

// CategoryFromPath returns the immediate parent folder name of path, or
// models.UncategorizedCategory when the file sits at the export root.
func CategoryFromPath(path, rootName string) string {
	parent := filepath.Base(filepath.Dir(path))
	if parent == rootName || parent == "." || parent == "" {
		return models.UncategorizedCategory
	}
	return parent
}

// FormatTimestamp renders t in local time as YYYY-MM-DDTHH:MM:SSZ.
func FormatTimestamp(t time.Time) string {
	return t.Local().Format(timestampLayout) + "Z"
}
