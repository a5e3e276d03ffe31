package question

import "strings"

// NormalizeAnswerText trims whitespace and lowercases an answer for matching.
func NormalizeAnswerText(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

// Matches reports whether submitted equals expected after normalizing both.
// Internal whitespace is compared as-is.
func Matches(expected, submitted string) bool {
	return NormalizeAnswerText(expected) == NormalizeAnswerText(submitted)
}
