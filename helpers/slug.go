// Package helpers provides small normalization utilities shared by the
// entity extractors and page assemblers: URL slugs, record-ID comparison,
// and the name-keyword fallback used when legacy records lack relations.
package helpers

import (
	"regexp"
	"strings"
)

var (
	nonAlnumRegex = regexp.MustCompile(`[^a-z0-9]+`)
	edgeHyphens   = regexp.MustCompile(`^-+|-+$`)
)

// Slug converts a display name into a URL-safe slug: lower-cased, runs of
// non-alphanumeric characters collapsed to single hyphens, edges trimmed.
// Total and idempotent; empty input yields "".
func Slug(name string) string {
	if name == "" {
		return ""
	}
	s := strings.ToLower(name)
	s = nonAlnumRegex.ReplaceAllString(s, "-")
	return edgeHyphens.ReplaceAllString(s, "")
}
