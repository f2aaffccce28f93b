package rank

import (
	"regexp"
	"strings"

	"github.com/Sahanajogi126/quizforge/internal/nlp"
)

// minSentenceWords is the word floor below which a sentence is dropped:
// fragments shorter than this cannot carry a question.
const minSentenceWords = 5

var reFallbackSplit = regexp.MustCompile(`[.;:\n]`)

// SegmentSentences splits cleaned text into sentences of at least
// minSentenceWords words. If the statistical segmenter finds nothing, a
// crude punctuation split is tried before giving up.
func SegmentSentences(text string) []string {
	sentences := filterShort(nlp.SplitSentences(text))
	if len(sentences) > 0 {
		return sentences
	}
	return filterShort(reFallbackSplit.Split(text, -1))
}

func filterShort(candidates []string) []string {
	var out []string
	for _, s := range candidates {
		s = strings.TrimSpace(s)
		if len(strings.Fields(s)) >= minSentenceWords {
			out = append(out, s)
		}
	}
	return out
}

// tokenizeForScoring lowercases, keeps alphabetic tokens, and removes
// stopwords. All three ranking methods score over this token view.
func tokenizeForScoring(sentence string) []string {
	var out []string
	for _, tok := range nlp.Tokenize(sentence) {
		tok = strings.ToLower(tok)
		if nlp.IsAlphabetic(tok) && !nlp.IsStopword(tok) {
			out = append(out, tok)
		}
	}
	return out
}
