package helpers

import "strings"

// stopWords are dropped when reducing a name to its significant keywords.
var stopWords = map[string]bool{
	"the":     true,
	"of":      true,
	"for":     true,
	"a":       true,
	"an":      true,
	"speaker": true,
}

// Keywords returns the significant whitespace-delimited words of a name:
// lower-cased, longer than two characters, stop words excluded.
func Keywords(name string) []string {
	var out []string
	for _, word := range strings.Fields(strings.ToLower(name)) {
		if len(word) > 2 && !stopWords[word] {
			out = append(out, word)
		}
	}
	return out
}

// NameMatches reports whether candidate plausibly refers to target by name.
// It matches when the candidate contains the target verbatim
// (case-insensitive), or contains every significant keyword of the target.
// This fallback exists because legacy records predate the relation field
// and only ever recorded a free-text name.
func NameMatches(candidate, target string) bool {
	if candidate == "" || target == "" {
		return false
	}
	c := strings.ToLower(candidate)
	t := strings.ToLower(target)
	if strings.Contains(c, t) {
		return true
	}
	keywords := Keywords(target)
	if len(keywords) == 0 {
		return false
	}
	for _, kw := range keywords {
		if !strings.Contains(c, kw) {
			return false
		}
	}
	return true
}

// MatchProjectName returns the first project name that candidate refers to,
// or "" when none match.
func MatchProjectName(candidate string, projectNames []string) string {
	for _, name := range projectNames {
		if NameMatches(candidate, name) {
			return name
		}
	}
	return ""
}
