package rank

import (
	"regexp"
	"strings"
)

var (
	reNewlines   = regexp.MustCompile(`\n+`)
	rePageMarker = regexp.MustCompile(`Page\s*\d+`)
	reWhitespace = regexp.MustCompile(`\s+`)
	reDisallowed = regexp.MustCompile(`[^a-zA-Z0-9.,!?;:'"()\-\s]`)
)

// CleanText normalizes raw extracted text for ranking and synthesis:
// newlines become spaces, page markers and characters outside the basic
// punctuation set are stripped, whitespace is collapsed, and the result
// is lowercased.
func CleanText(raw string) string {
	text := reNewlines.ReplaceAllString(raw, " ")
	text = rePageMarker.ReplaceAllString(text, "")
	text = reWhitespace.ReplaceAllString(text, " ")
	text = strings.TrimSpace(text)
	text = reDisallowed.ReplaceAllString(text, "")
	return strings.ToLower(text)
}

// TargetCount computes how many sentences to select: roughly the top 20%,
// floored at 5 so short documents still produce material, capped at 25 so
// synthesis cost stays bounded on long ones.
func TargetCount(totalSentences int) int {
	target := totalSentences / 5
	if target > 25 {
		target = 25
	}
	if target < 5 {
		target = 5
	}
	return target
}
