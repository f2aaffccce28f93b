package nlp

import (
	_ "embed"
	"strings"
)

//go:embed data/stopwords.txt
var stopwordData string

var stopwordSet = buildStopwordSet()

func buildStopwordSet() map[string]struct{} {
	set := make(map[string]struct{})
	for _, line := range strings.Split(stopwordData, "\n") {
		w := strings.TrimSpace(line)
		if w != "" {
			set[w] = struct{}{}
		}
	}
	return set
}

// IsStopword reports whether w (case-insensitive) is an English stopword.
func IsStopword(w string) bool {
	_, ok := stopwordSet[strings.ToLower(w)]
	return ok
}

// FilterStopwords returns tokens with stopwords removed.
func FilterStopwords(tokens []string) []string {
	var out []string
	for _, t := range tokens {
		if !IsStopword(t) {
			out = append(out, t)
		}
	}
	return out
}
