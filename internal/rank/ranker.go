package rank

import (
	"errors"
	"sort"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/Sahanajogi126/quizforge/internal/nlp"
)

// ErrNoSentences is returned when the input text yields no usable
// sentences at all, even through the fallback segmenter.
var ErrNoSentences = errors.New("no usable sentences in input")

// Ranker selects the most important sentences from a document.
//
// Ordering policy: every method returns its selection in ascending
// original-document order. (The scoring strategies differ; the output
// ordering deliberately does not, so callers never depend on which
// method ran.)
type Ranker struct {
	Method Method
	Log    *log.Logger
}

// New creates a Ranker with the given method.
func New(method Method, logger *log.Logger) *Ranker {
	if logger == nil {
		logger = log.Default()
	}
	return &Ranker{Method: method, Log: logger}
}

// Rank cleans raw text, segments it, and returns the selected sentences.
//
// Failure policy: if the configured method selects nothing, TextRank is
// retried once; if that also selects nothing, a local quality score
// picks the longest, most lexically diverse sentences. Ranking degrades,
// it never blocks the pipeline.
func (r *Ranker) Rank(rawText string) ([]string, error) {
	text := CleanText(rawText)
	sentences := SegmentSentences(text)
	if len(sentences) == 0 {
		return nil, ErrNoSentences
	}

	target := TargetCount(len(sentences))

	idx := r.rankIndices(r.Method, sentences, target)
	if len(idx) == 0 && r.Method != TextRank {
		r.Log.Warn("ranking method selected nothing, retrying with textrank", "method", r.Method)
		idx = r.rankIndices(TextRank, sentences, target)
	}
	if len(idx) == 0 {
		r.Log.Warn("textrank selected nothing, falling back to quality scoring")
		idx = qualityFallback(sentences, target)
	}

	out := make([]string, 0, len(idx))
	for _, i := range idx {
		out = append(out, sentences[i])
	}
	r.Log.Info("ranked sentences", "method", r.Method, "total", len(sentences), "selected", len(out))
	return out, nil
}

func (r *Ranker) rankIndices(method Method, sentences []string, target int) []int {
	switch method {
	case LexRank:
		return rankLexRank(sentences, target)
	case TfIdf:
		return rankTfIdf(sentences, target)
	default:
		return rankTextRank(sentences, target)
	}
}

// qualityFallback orders sentences by (word count, unique-word count)
// descending and keeps the top target, restored to document order.
func qualityFallback(sentences []string, target int) []int {
	idx := make([]int, len(sentences))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		wa, wb := len(strings.Fields(sentences[idx[a]])), len(strings.Fields(sentences[idx[b]]))
		if wa != wb {
			return wa > wb
		}
		return nlp.UniqueWords(sentences[idx[a]]) > nlp.UniqueWords(sentences[idx[b]])
	})
	if target < len(idx) {
		idx = idx[:target]
	}
	sort.Ints(idx)
	return idx
}
