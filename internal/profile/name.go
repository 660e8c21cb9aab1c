package profile

import "strings"

// ExtractProfileName interprets a raw configuration color string as a
// profile reference. The match is exact and case-sensitive after trimming
// surrounding whitespace. Standard-color validity takes precedence: a
// profile literally named after a valid color (e.g. "red") is unreachable
// by that name and needs a distinguishing alias.
func ExtractProfileName(colorString string, profiles map[string]*Profile) string {
	trimmed := strings.TrimSpace(colorString)
	if trimmed == "" {
		return ""
	}
	if IsStandardColor(trimmed) {
		return ""
	}
	if _, ok := profiles[trimmed]; ok {
		return trimmed
	}
	return ""
}
