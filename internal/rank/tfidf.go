package rank

import (
	"math"
	"sort"
)

// tfidfScores computes one importance score per sentence: the sum over
// its stop-filtered terms of (term frequency / sentence length) * idf,
// with smoothed idf = ln((N+1)/(1+df)) + 1 so unseen terms never divide
// by zero.
func tfidfScores(tokenized [][]string) []float64 {
	df := documentFrequencies(tokenized)
	n := float64(len(tokenized))

	scores := make([]float64, len(tokenized))
	for i, toks := range tokenized {
		if len(toks) == 0 {
			continue
		}
		tf := make(map[string]int, len(toks))
		for _, w := range toks {
			tf[w]++
		}
		length := float64(len(toks))
		var score float64
		for w, cnt := range tf {
			idf := math.Log((n+1)/(1+float64(df[w]))) + 1.0
			score += (float64(cnt) / length) * idf
		}
		scores[i] = score
	}
	return scores
}

// documentFrequencies counts, per term, how many sentences contain it.
func documentFrequencies(tokenized [][]string) map[string]int {
	df := make(map[string]int)
	for _, toks := range tokenized {
		seen := make(map[string]struct{}, len(toks))
		for _, w := range toks {
			if _, ok := seen[w]; !ok {
				df[w]++
				seen[w] = struct{}{}
			}
		}
	}
	return df
}

// rankTfIdf returns the indices of the target highest-scoring sentences.
// Ties break toward earlier document position.
func rankTfIdf(sentences []string, target int) []int {
	tokenized := make([][]string, len(sentences))
	for i, s := range sentences {
		tokenized[i] = tokenizeForScoring(s)
	}
	scores := tfidfScores(tokenized)
	return topIndices(scores, target)
}

// topIndices selects the indices of the target largest scores, breaking
// ties by original position, and returns them in ascending order.
func topIndices(scores []float64, target int) []int {
	idx := make([]int, len(scores))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return scores[idx[a]] > scores[idx[b]]
	})
	if target < len(idx) {
		idx = idx[:target]
	}
	sort.Ints(idx)
	return idx
}
