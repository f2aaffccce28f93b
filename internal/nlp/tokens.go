package nlp

import (
	"regexp"
	"strings"
)

// reToken matches words (with internal apostrophes) or digit runs.
var reToken = regexp.MustCompile(`[\pL]+(?:['’][\pL]+)?|\pN+`)

// Tokenize splits text into word and number tokens, dropping punctuation.
func Tokenize(text string) []string {
	return reToken.FindAllString(text, -1)
}

// IsAlphabetic reports whether every rune of w is a letter.
func IsAlphabetic(w string) bool {
	if w == "" {
		return false
	}
	for _, r := range w {
		if !isLetter(r) {
			return false
		}
	}
	return true
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// UniqueWords returns the number of distinct lowercased tokens in text.
func UniqueWords(text string) int {
	seen := make(map[string]struct{})
	for _, w := range Tokenize(text) {
		seen[strings.ToLower(w)] = struct{}{}
	}
	return len(seen)
}
