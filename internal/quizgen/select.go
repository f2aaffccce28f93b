package quizgen

import (
	"sort"
	"strings"
	"unicode"

	"github.com/Sahanajogi126/quizforge/internal/nlp"
)

// SmartSelect caps a ranked sentence list at max entries, preferring
// diverse, well-formed sentences: a medium length band, a high
// unique-word ratio, and the presence of proper nouns all score points.
// Ties keep ranked order.
func SmartSelect(sentences []string, max int) []string {
	if len(sentences) <= max {
		return sentences
	}

	scores := make([]float64, len(sentences))
	for i, s := range sentences {
		scores[i] = qualityScore(s)
	}

	idx := make([]int, len(sentences))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return scores[idx[a]] > scores[idx[b]]
	})

	out := make([]string, 0, max)
	for _, i := range idx[:max] {
		out = append(out, sentences[i])
	}
	return out
}

func qualityScore(s string) float64 {
	words := strings.Fields(s)
	if len(words) == 0 {
		return 0
	}

	var score float64
	switch n := len(words); {
	case n >= 8 && n <= 25:
		score += 2
	case n >= 6 && n <= 30:
		score++
	}

	score += 2 * float64(nlp.UniqueWords(s)) / float64(len(words))

	// Proper nouns past the first word suggest concrete subject matter.
	for _, w := range words[1:] {
		if r := []rune(w); len(r) > 0 && unicode.IsUpper(r[0]) {
			score++
			break
		}
	}
	return score
}
