package importer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/starford/notioncsv/internal/models"
	"github.com/starford/notioncsv/internal/testutil"
)

const exportID = "a1b2c3d4e5f6a1b2c3d4e5f6a1b2c3d4"

func TestTitleFromPath(t *testing.T) {
	upper := strings.ToUpper(exportID)
	cases := []struct{ in, want string }{
		{"My Prompt " + exportID + ".md", "My Prompt"},
		{"Eng/My Prompt " + exportID + ".md", "My Prompt"},
		{"Plain.md", "Plain"},
		{"Upper " + upper + ".md", "Upper " + upper},
		{"NoSpace" + exportID + ".md", "NoSpace" + exportID},
		{"dots.in.name.md", "dots.in.name"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, TitleFromPath(c.in), c.in)
	}
}

func TestCategoryFromPath(t *testing.T) {
	assert.Equal(t, "Engineering", CategoryFromPath("Engineering/a.md", "export"))
	assert.Equal(t, "Deep", CategoryFromPath("Engineering/Deep/a.md", "export"))
	assert.Equal(t, models.UncategorizedCategory, CategoryFromPath("a.md", "export"))
	assert.Equal(t, models.UncategorizedCategory, CategoryFromPath("export/a.md", "export"))
}

func TestFormatTimestamp(t *testing.T) {
	local := time.Date(2024, 1, 2, 3, 4, 5, 0, time.Local)
	assert.Equal(t, "2024-01-02T03:04:05Z", FormatTimestamp(local))

	// Values are rendered in local time even when given in another zone.
	utc := local.UTC()
	assert.Equal(t, "2024-01-02T03:04:05Z", FormatTimestamp(utc))
}

func TestProcess_Records(t *testing.T) {
	root := testutil.TestExport(t, map[string]string{
		"My Prompt " + exportID + ".md": "---\ntags: [Prompting, \"LLM Ops\"]\n---\nhello world",
		"Engineering/Review.md":         "Review this code carefully.\n\n\n\nThanks [" + exportID + "]",
		"Engineering/short.md":          "hi",
		"Engineering/empty.md":          "---\ntitle: x\n---\n",
		"notes.txt":                     "ignored entirely",
	})
	stamp := time.Date(2024, 6, 7, 8, 9, 10, 0, time.Local)
	require.NoError(t, os.Chtimes(filepath.Join(root, "Engineering", "Review.md"), stamp, stamp))

	logger, logs := testutil.TestLogger(t)
	res := New(root, logger).Process()

	assert.Equal(t, 4, res.Found)
	assert.Equal(t, 2, res.Processed)
	assert.Equal(t, 2, res.Skipped)
	assert.Equal(t, 0, res.Errors)
	require.Len(t, res.Records, 2)

	// Walk order is lexical: "Engineering" sorts before "My Prompt ...".
	review := res.Records[0]
	assert.Equal(t, "Review", review.Title)
	assert.Equal(t, "Engineering", review.Category)
	assert.Equal(t, "Review this code carefully.\n\nThanks", review.Content)
	assert.Equal(t, []string{}, review.Tags)
	assert.Equal(t, "2024-06-07T08:09:10Z", review.CreatedAt)
	assert.Equal(t, filepath.Join("Engineering", "Review.md"), review.SourcePath)
	assert.NotEmpty(t, review.Checksum)

	prompt := res.Records[1]
	assert.Equal(t, "My Prompt", prompt.Title)
	assert.Equal(t, models.UncategorizedCategory, prompt.Category)
	assert.Equal(t, "hello world", prompt.Content)
	assert.Equal(t, []string{"Prompting", "LLM Ops"}, prompt.Tags)
	assert.Regexp(t, `^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}Z$`, prompt.CreatedAt)

	assert.Contains(t, logs.String(), "content too short or empty")
	assert.Contains(t, logs.String(), "short.md")
}

func TestProcess_MissingRoot(t *testing.T) {
	logger, logs := testutil.TestLogger(t)
	res := New(filepath.Join(t.TempDir(), "nope"), logger).Process()

	assert.Empty(t, res.Records)
	assert.Zero(t, res.Found)
	assert.Equal(t, 1, strings.Count(logs.String(), "level=ERROR"))
	assert.Contains(t, logs.String(), "source directory does not exist")
}

func TestProcess_UnreadableFileCountsError(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root ignores file permissions")
	}
	root := testutil.TestExport(t, map[string]string{
		"ok.md":     "this one is fine to keep",
		"locked.md": "cannot be read at all",
	})
	require.NoError(t, os.Chmod(filepath.Join(root, "locked.md"), 0o000))

	logger, logs := testutil.TestLogger(t)
	res := New(root, logger).Process()

	assert.Equal(t, 1, res.Processed)
	assert.Equal(t, 1, res.Errors)
	assert.Contains(t, logs.String(), "error processing file")
	assert.Contains(t, logs.String(), "locked.md")
}

func TestProcess_ProgressLogging(t *testing.T) {
	files := make(map[string]string, 205)
	for i := 0; i < 205; i++ {
		files[fmt.Sprintf("bulk/note-%03d.md", i)] = "long enough body text"
	}
	root := testutil.TestExport(t, files)

	logger, logs := testutil.TestLogger(t)
	res := New(root, logger).Process()

	assert.Equal(t, 205, res.Processed)
	assert.Equal(t, 2, strings.Count(logs.String(), "msg=progress"))
	assert.Equal(t, "note-000", res.Records[0].Title)
	assert.Equal(t, "bulk", res.Records[0].Category)
}
