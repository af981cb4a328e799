package quiz

import "strings"

// IsCorrect grades a submitted answer against the canonical answer: both
// sides are trimmed of surrounding whitespace and compared case-insensitively
// for exact equality. No partial matching, no numeric or semantic
// normalization — free-text answers are held to the same rule as tokens.
func IsCorrect(userAnswer, canonicalAnswer string) bool {
	u := strings.ToUpper(strings.TrimSpace(userAnswer))
	c := strings.ToUpper(strings.TrimSpace(canonicalAnswer))
	return u == c
}
