package quizgen

import (
	"math/rand"
	"strings"

	"github.com/Sahanajogi126/quizforge/internal/nlp"
)

// minTermLen is the shortest token worth asking about.
const minTermLen = 4

// commonExcludes are generic nouns too vague to serve as answers.
var commonExcludes = map[string]struct{}{
	"thing": {}, "something": {}, "anything": {}, "everything": {}, "nothing": {},
	"time": {}, "people": {}, "way": {}, "kind": {}, "part": {}, "place": {}, "work": {},
	"system": {}, "process": {}, "example": {}, "method": {}, "data": {}, "information": {},
}

// keyTermCandidates filters a tagged sentence down to the tokens that
// can serve as answers: noun-tagged, purely alphabetic, long enough, and
// not on the generic exclude list.
func keyTermCandidates(ts nlp.TaggedSentence) []string {
	var out []string
	for _, w := range ts.Nouns() {
		if !nlp.IsAlphabetic(w) || len(w) < minTermLen {
			continue
		}
		if _, excluded := commonExcludes[strings.ToLower(w)]; excluded {
			continue
		}
		out = append(out, w)
	}
	return out
}

// selectKeyTerm picks the answer term for a sentence: uniform-random
// among the filtered candidates, not weighted by frequency or position.
// Returns "" when the sentence has no candidates; every synthesizer
// treats that as "skip this sentence".
func selectKeyTerm(ts nlp.TaggedSentence, rng *rand.Rand) string {
	candidates := keyTermCandidates(ts)
	if len(candidates) == 0 {
		return ""
	}
	return candidates[rng.Intn(len(candidates))]
}
