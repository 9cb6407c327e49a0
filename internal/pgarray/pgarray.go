// Package pgarray renders string slices as PostgreSQL text[] literals.
package pgarray

import "strings"

// Format renders tags as a brace-wrapped, comma-joined list of double-quoted
// elements. Embedded double quotes are doubled. An empty slice yields "{}".
func Format(tags []string) string {
	if len(tags) == 0 {
		return "{}"
	}
	var b strings.Builder
	b.WriteByte('{')
	for i, tag := range tags {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(tag, `"`, `""`))
		b.WriteByte('"')
	}
	b.WriteByte('}')
	return b.String()
}
