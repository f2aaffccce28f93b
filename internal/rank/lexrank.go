package rank

import "math"

// cosineThreshold prunes weak edges from the LexRank similarity graph,
// per the continuous-LexRank formulation.
const cosineThreshold = 0.1

// rankLexRank scores sentences by centrality over an idf-weighted
// cosine-similarity graph and returns the top target indices in
// ascending document order.
func rankLexRank(sentences []string, target int) []int {
	tokenized := make([][]string, len(sentences))
	for i, s := range sentences {
		tokenized[i] = tokenizeForScoring(s)
	}

	vectors := tfidfVectors(tokenized)

	n := len(sentences)
	sim := make([][]float64, n)
	for i := range sim {
		sim[i] = make([]float64, n)
		for j := range sim[i] {
			if i == j {
				continue
			}
			if c := cosine(vectors[i], vectors[j]); c >= cosineThreshold {
				sim[i][j] = c
			}
		}
	}

	scores := pageRank(sim)
	return topIndices(scores, target)
}

// tfidfVectors builds one sparse TF-IDF vector per sentence.
func tfidfVectors(tokenized [][]string) []map[string]float64 {
	df := documentFrequencies(tokenized)
	n := float64(len(tokenized))

	vectors := make([]map[string]float64, len(tokenized))
	for i, toks := range tokenized {
		vec := make(map[string]float64)
		if len(toks) > 0 {
			tf := make(map[string]int, len(toks))
			for _, w := range toks {
				tf[w]++
			}
			length := float64(len(toks))
			for w, cnt := range tf {
				idf := math.Log((n+1)/(1+float64(df[w]))) + 1.0
				vec[w] = (float64(cnt) / length) * idf
			}
		}
		vectors[i] = vec
	}
	return vectors
}

func cosine(a, b map[string]float64) float64 {
	var dot, normA, normB float64
	for w, av := range a {
		normA += av * av
		if bv, ok := b[w]; ok {
			dot += av * bv
		}
	}
	for _, bv := range b {
		normB += bv * bv
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
