package quizgen

import (
	"regexp"
	"strings"
	"unicode"
)

// BlankMarker is the placeholder substituted for a masked term.
const BlankMarker = "_____"

// minSentenceWords is the eligibility floor for masking-based items.
const minSentenceWords = 5

var reSpaces = regexp.MustCompile(`\s+`)

// normalizeSentence collapses runs of whitespace and trims the ends.
func normalizeSentence(s string) string {
	return strings.TrimSpace(reSpaces.ReplaceAllString(s, " "))
}

// wholeWordPattern compiles a case-insensitive whole-word matcher for
// term.
func wholeWordPattern(term string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(term) + `\b`)
}

// maskTerm replaces the first whole-word, case-insensitive occurrence of
// term in sentence with the blank marker. The second return is false
// when no whole-word match exists, which can legitimately happen when
// tokenization transformed the selected word (possessives and the like).
func maskTerm(sentence, term string) (string, bool) {
	loc := wholeWordPattern(term).FindStringIndex(sentence)
	if loc == nil {
		return "", false
	}
	return sentence[:loc[0]] + BlankMarker + sentence[loc[1]:], true
}

// replaceWholeWord substitutes the first whole-word, case-insensitive
// occurrence of old with new. Returns the sentence unchanged when no
// match exists.
func replaceWholeWord(sentence, old, new string) string {
	loc := wholeWordPattern(old).FindStringIndex(sentence)
	if loc == nil {
		return sentence
	}
	return sentence[:loc[0]] + new + sentence[loc[1]:]
}

// emphasizeTerm wraps every whole-word occurrence of term in asterisks,
// preserving the original casing of each occurrence.
func emphasizeTerm(sentence, term string) string {
	re := regexp.MustCompile(`(?i)\b(` + regexp.QuoteMeta(term) + `)\b`)
	return re.ReplaceAllString(sentence, "*$1*")
}

// capitalizeFirst uppercases the first alphabetic character of s,
// leaving any leading digits or punctuation in place.
func capitalizeFirst(s string) string {
	s = strings.TrimSpace(s)
	for i, r := range s {
		if unicode.IsLetter(r) {
			return s[:i] + string(unicode.ToUpper(r)) + s[i+len(string(r)):]
		}
	}
	return s
}

// lowerFirstAlpha lowercases the first alphabetic character of s.
func lowerFirstAlpha(s string) string {
	for i, r := range s {
		if unicode.IsLetter(r) {
			return s[:i] + string(unicode.ToLower(r)) + s[i+len(string(r)):]
		}
	}
	return s
}

func wordCount(s string) int {
	return len(strings.Fields(s))
}
