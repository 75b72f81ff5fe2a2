package normalize

import (
	"strings"
	"unicode"
)

// Lowercase name particles that stay lowercase unless they lead the name.
var nameParticles = map[string]bool{
	"de": true, "da": true, "dos": true, "del": true,
	"van": true, "von": true, "di": true, "la": true, "le": true,
}

// Ordinal suffixes kept exactly as written.
var ordinalSuffixes = map[string]bool{
	"II": true, "III": true, "IV": true, "V": true,
}

// SplitName returns the first and last name, preferring the explicit fields
// when present. A bare full name splits on whitespace: first token is the
// first name, the remainder joins into the last name.
func SplitName(fullName, firstName, lastName string) (string, string) {
	first := strings.TrimSpace(firstName)
	last := strings.TrimSpace(lastName)
	if first != "" || last != "" {
		return first, last
	}

	tokens := strings.Fields(fullName)
	if len(tokens) == 0 {
		return "", ""
	}
	if len(tokens) == 1 {
		return tokens[0], ""
	}
	return tokens[0], strings.Join(tokens[1:], " ")
}

// IsAllCapsName reports whether s looks like an all-capitals human name:
// at least two whitespace-separated tokens, no lowercase letters, and only
// letters, spaces, apostrophes, hyphens, and periods. This is the guard for
// the one documented forced overwrite (correcting platform-autofilled
// shouting names), so it errs toward false.
func IsAllCapsName(s string) bool {
	if len(strings.Fields(s)) < 2 {
		return false
	}

	hasLetter := false
	for _, r := range s {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
			if unicode.IsLower(r) {
				return false
			}
		case r == ' ' || r == '\'' || r == '-' || r == '.':
		default:
			return false
		}
	}
	return hasLetter
}

// ProperCase converts an all-capitals name into conventional mixed case.
// Ordinal suffixes stay verbatim, Jr/Sr come back title-cased with a
// trailing period, and known particles stay lowercase unless they open the
// name. Hyphens and apostrophes are internal separators: each segment is
// title-cased on its own ("ANNA-MARIA O'NEIL" -> "Anna-Maria O'Neil").
func ProperCase(name string) string {
	tokens := strings.Fields(name)
	out := make([]string, 0, len(tokens))

	for i, token := range tokens {
		if ordinalSuffixes[strings.ToUpper(token)] && i > 0 {
			out = append(out, token)
			continue
		}

		bare := strings.TrimSuffix(token, ".")
		if strings.EqualFold(bare, "jr") || strings.EqualFold(bare, "sr") {
			out = append(out, titleSegment(bare)+".")
			continue
		}

		lower := strings.ToLower(token)
		if i > 0 && nameParticles[lower] {
			out = append(out, lower)
			continue
		}

		out = append(out, titleToken(token))
	}

	return strings.Join(out, " ")
}

// titleToken title-cases one whitespace token, treating hyphens and
// apostrophes as internal segment boundaries.
func titleToken(token string) string {
	var b strings.Builder
	segStart := 0
	for i, r := range token {
		if r == '-' || r == '\'' {
			b.WriteString(titleSegment(token[segStart:i]))
			b.WriteRune(r)
			segStart = i + 1
		}
	}
	b.WriteString(titleSegment(token[segStart:]))
	return b.String()
}

func titleSegment(seg string) string {
	if seg == "" {
		return ""
	}
	runes := []rune(strings.ToLower(seg))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
