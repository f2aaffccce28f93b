package rank

import "math"

const (
	dampingFactor      = 0.85
	powerIterations    = 50
	convergenceEpsilon = 1e-4
)

// rankTextRank scores sentences by PageRank over a graph whose edge
// weights are normalized token overlap, then returns the top target
// indices in ascending document order.
func rankTextRank(sentences []string, target int) []int {
	tokenized := make([][]string, len(sentences))
	for i, s := range sentences {
		tokenized[i] = tokenizeForScoring(s)
	}

	n := len(sentences)
	sim := make([][]float64, n)
	for i := range sim {
		sim[i] = make([]float64, n)
		for j := range sim[i] {
			if i != j {
				sim[i][j] = overlapSimilarity(tokenized[i], tokenized[j])
			}
		}
	}

	scores := pageRank(sim)
	return topIndices(scores, target)
}

// overlapSimilarity is the TextRank sentence similarity: shared-token
// count normalized by the log lengths, so long sentences do not dominate
// purely by size.
func overlapSimilarity(a, b []string) float64 {
	if len(a) < 2 || len(b) < 2 {
		return 0
	}
	set := make(map[string]struct{}, len(a))
	for _, w := range a {
		set[w] = struct{}{}
	}
	shared := 0
	seen := make(map[string]struct{})
	for _, w := range b {
		if _, ok := set[w]; ok {
			if _, dup := seen[w]; !dup {
				shared++
				seen[w] = struct{}{}
			}
		}
	}
	if shared == 0 {
		return 0
	}
	return float64(shared) / (math.Log(float64(len(a))) + math.Log(float64(len(b))))
}

// pageRank runs damped power iteration over the weighted similarity
// matrix until convergence or the iteration cap.
func pageRank(sim [][]float64) []float64 {
	n := len(sim)
	if n == 0 {
		return nil
	}

	// Column-normalize outgoing weights.
	outSum := make([]float64, n)
	for i := range sim {
		for j := range sim[i] {
			outSum[i] += sim[i][j]
		}
	}

	scores := make([]float64, n)
	next := make([]float64, n)
	for i := range scores {
		scores[i] = 1.0 / float64(n)
	}

	for iter := 0; iter < powerIterations; iter++ {
		var delta float64
		for i := 0; i < n; i++ {
			var rank float64
			for j := 0; j < n; j++ {
				if j != i && outSum[j] > 0 && sim[j][i] > 0 {
					rank += scores[j] * sim[j][i] / outSum[j]
				}
			}
			next[i] = (1-dampingFactor)/float64(n) + dampingFactor*rank
			delta += math.Abs(next[i] - scores[i])
		}
		copy(scores, next)
		if delta < convergenceEpsilon {
			break
		}
	}
	return scores
}
