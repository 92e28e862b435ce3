package helpers

import "strings"

// NormalizeID strips hyphens from a record ID. The service emits UUID-like
// IDs sometimes with and sometimes without hyphen formatting, so equality
// checks must compare the stripped form on both sides. Idempotent.
func NormalizeID(id string) string {
	return strings.ReplaceAll(id, "-", "")
}

// SameID reports whether two record IDs refer to the same record under
// hyphen normalization. Empty IDs never match anything.
func SameID(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	return NormalizeID(a) == NormalizeID(b)
}

// ContainsID reports whether any ID in the list matches target under
// hyphen normalization.
func ContainsID(ids []string, target string) bool {
	for _, id := range ids {
		if SameID(id, target) {
			return true
		}
	}
	return false
}
