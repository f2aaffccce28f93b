package rank

import "strings"

// Method selects the sentence-importance scoring strategy.
type Method string

const (
	// TextRank runs PageRank over a token-overlap sentence graph.
	TextRank Method = "textrank"
	// LexRank runs centrality over a TF-IDF cosine-similarity graph.
	LexRank Method = "lexrank"
	// TfIdf scores each sentence by the summed TF-IDF of its terms.
	TfIdf Method = "tfidf"
)

// ParseMethod normalizes a method name. Unknown or empty names fall back
// to TextRank rather than erroring; the ranking method is a tuning knob,
// not a correctness input.
func ParseMethod(s string) Method {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(LexRank):
		return LexRank
	case string(TfIdf):
		return TfIdf
	default:
		return TextRank
	}
}
