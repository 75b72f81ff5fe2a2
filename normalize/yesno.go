// Package normalize converts loosely-shaped profile answers into the
// controlled vocabularies the application forms expect. Everything here is
// pure; no I/O, no page access.
package normalize

import "strings"

const (
	Yes = "Yes"
	No  = "No"
)

// YesNo reduces a free-text answer to the canonical Yes/No the forms render.
// Only the first character matters ("yep", "Y", "yes sir" all read as Yes);
// anything unrecognized, including the empty string, falls back to def.
func YesNo(answer, def string) string {
	trimmed := strings.TrimSpace(answer)
	if trimmed == "" {
		return def
	}
	switch trimmed[0] {
	case 'y', 'Y':
		return Yes
	case 'n', 'N':
		return No
	}
	return def
}

// IsYes reports whether a free-text answer normalizes to Yes, treating def
// as the answer when the text is empty or unrecognized.
func IsYes(answer, def string) bool {
	return YesNo(answer, def) == Yes
}
