package importer

import (
	"errors"
	"io/fs"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/starford/notioncsv/internal/apperr"
	"github.com/starford/notioncsv/internal/storage"
	"github.com/starford/notioncsv/internal/testutil"
)

type fakeStore struct {
	files    map[string]string
	statErr  error
	modified time.Time
}

var _ storage.Provider = (*fakeStore)(nil)

func (f *fakeStore) Name() string { return "export" }

func (f *fakeStore) List(string) ([]string, error) { return nil, nil }

func (f *fakeStore) Read(path string) ([]byte, error) {
	s, ok := f.files[path]
	if !ok {
		return nil, fs.ErrNotExist
	}
	return []byte(s), nil
}

func (f *fakeStore) ModTime(string) (time.Time, error) {
	return f.modified, f.statErr
}

func TestAssemble_TimestampUnavailable(t *testing.T) {
	store := &fakeStore{
		files:   map[string]string{"Ideas/a.md": "a perfectly fine body"},
		statErr: errors.New("stat exploded"),
	}
	logger, logs := testutil.TestLogger(t)

	rec, err := NewAssembler(store, logger).Assemble("Ideas/a.md")
	require.NoError(t, err)
	assert.Equal(t, "", rec.CreatedAt)
	assert.Equal(t, "Ideas", rec.Category)
	assert.Contains(t, logs.String(), "level=WARN")
	assert.Contains(t, logs.String(), "stat exploded")
}

func TestAssemble_ContentBoundary(t *testing.T) {
	store := &fakeStore{
		files: map[string]string{
			"hi.md":    "---\ntags: x\n---\nhi",
			"nine.md":  "  123456789  ",
			"ten.md":   "1234567890",
			"hello.md": "hello world",
			"cjk.md":   "你好世界你好",
			"cjk10.md": "你好世界你好世界你好",
		},
		modified: time.Now(),
	}
	logger, _ := testutil.TestLogger(t)
	asm := NewAssembler(store, logger)

	for _, p := range []string{"hi.md", "nine.md", "cjk.md"} {
		_, err := asm.Assemble(p)
		assert.ErrorIs(t, err, apperr.ErrContentTooShort, p)
	}
	for _, p := range []string{"ten.md", "hello.md", "cjk10.md"} {
		rec, err := asm.Assemble(p)
		require.NoError(t, err, p)
		assert.NotEmpty(t, rec.Content)
	}
}

func TestAssemble_ReadFailure(t *testing.T) {
	logger, _ := testutil.TestLogger(t)
	_, err := NewAssembler(&fakeStore{}, logger).Assemble("missing.md")
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.NotErrorIs(t, err, apperr.ErrContentTooShort)
}

func TestAssemble_InvalidUTF8(t *testing.T) {
	store := &fakeStore{
		files:    map[string]string{"bad.md": "valid text then \xff\xfe invalid bytes"},
		modified: time.Now(),
	}
	logger, _ := testutil.TestLogger(t)

	rec, err := NewAssembler(store, logger).Assemble("bad.md")
	require.Error(t, err)
	assert.Nil(t, rec)
	assert.Contains(t, err.Error(), "invalid UTF-8")
	assert.NotErrorIs(t, err, apperr.ErrContentTooShort)
}

func TestAssemble_CRLF(t *testing.T) {
	store := &fakeStore{
		files:    map[string]string{"crlf.md": "---\r\ntags: a\r\n---\r\npara one\r\n\r\n\r\n\r\npara two"},
		modified: time.Now(),
	}
	logger, _ := testutil.TestLogger(t)

	rec, err := NewAssembler(store, logger).Assemble("crlf.md")
	require.NoError(t, err)
	assert.Equal(t, "para one\n\npara two", rec.Content)
	assert.Equal(t, []string{"a"}, rec.Tags)
}

func TestAssemble_TimestampOutOfRange(t *testing.T) {
	store := &fakeStore{
		files:    map[string]string{"far.md": "a body from the far future"},
		modified: time.Date(12000, 6, 15, 12, 0, 0, 0, time.UTC),
	}
	logger, logs := testutil.TestLogger(t)

	rec, err := NewAssembler(store, logger).Assemble("far.md")
	require.NoError(t, err)
	assert.Equal(t, "", rec.CreatedAt)
	assert.Contains(t, logs.String(), "could not get timestamp")
}
