// Package parser extracts frontmatter, cleaned body text, and tags from
// exported Markdown content.
package parser

import (
	"regexp"
	"strings"
)

var (
	frontmatterRe = regexp.MustCompile(`(?s)\A---\s*\n(.*?)\n---\s*\n`)
	excessNLRe    = regexp.MustCompile(`\n{3,}`)
	// Bracketed export IDs, e.g. [3f2a...] left behind by Notion links.
	artifactRe = regexp.MustCompile(`\[[\p{L}\p{N}_-]{32,}\]`)
)

// Frontmatter maps a verbatim key to either a string or a []string (tags only).
type Frontmatter map[string]any

// Result holds the output of parsing a Markdown file.
type Result struct {
	Frontmatter Frontmatter
	Body        string
	Tags        []string
}

// Parse splits frontmatter from data, cleans the remaining body and resolves tags.
// CRLF and lone CR line endings are read as LF.
func Parse(data []byte) *Result {
	fm, body := SplitFrontmatter(normalizeNewlines(string(data)))
	return &Result{
		Frontmatter: fm,
		Body:        CleanContent(body),
		Tags:        ResolveTags(fm),
	}
}

func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

// SplitFrontmatter separates a leading "---" delimited block from the body.
// If no block is found it returns an empty mapping and text unchanged.
func SplitFrontmatter(text string) (Frontmatter, string) {
	loc := frontmatterRe.FindStringSubmatchIndex(text)
	if loc == nil {
		return Frontmatter{}, text
	}
	return parseBlock(text[loc[2]:loc[3]]), text[loc[1]:]
}

// parseBlock reads flat "key: value" lines. Lines without a colon are ignored.
func parseBlock(block string) Frontmatter {
	fm := Frontmatter{}
	for _, line := range strings.Split(block, "\n") {
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		if strings.EqualFold(key, "tags") {
			fm[key] = parseTagList(value)
			continue
		}
		fm[key] = value
	}
	return fm
}

// parseTagList accepts both "a, b" and `[a, "b"]` forms.
func parseTagList(value string) []string {
	value = strings.Trim(value, "[]")
	tags := []string{}
	for _, piece := range strings.Split(value, ",") {
		tag := strings.Trim(strings.TrimSpace(piece), `"'`)
		if tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// CleanContent strips export artifacts, collapses runs of blank lines to a
// single paragraph break and trims surrounding whitespace. Applying it twice
// yields the same result as applying it once.
func CleanContent(body string) string {
	for artifactRe.MatchString(body) {
		body = artifactRe.ReplaceAllString(body, "")
	}
	body = excessNLRe.ReplaceAllString(body, "\n\n")
	return strings.TrimSpace(body)
}

// ResolveTags returns the "tags" entry, falling back to "Tags". A plain string
// value is split on commas. Missing tags yield an empty slice.
func ResolveTags(fm Frontmatter) []string {
	raw, ok := fm["tags"]
	if !ok {
		raw, ok = fm["Tags"]
	}
	if !ok {
		return []string{}
	}

	switch v := raw.(type) {
	case []string:
		return append([]string{}, v...)
	case string:
		tags := []string{}
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				tags = append(tags, part)
			}
		}
		return tags
	default:
		return []string{}
	}
}
