package quizgen

import (
	"strings"
)

// minTrueFalseWords: true/false statements need more substance than
// masking-based items, so the floor is higher.
const minTrueFalseWords = 7

// verbNegationRate is the share of false statements built by verb
// negation; the rest swap a noun for a placeholder.
const verbNegationRate = 0.7

var (
	negationWords    = []string{"not", "never"}
	placeholderNouns = []string{"X", "Y", "Z", "placeholder", "alternative", "substitute"}
)

// GenerateTrueFalse synthesizes true/false items. Exactly half of the
// eligible sentences (floor division) are pre-selected for falsification;
// a falsification that fails to change the text drops the item entirely
// rather than emitting a statement labeled False that is actually true.
// That drop rule means the output can under-deliver the n/2 balance;
// accepted, no top-up pass.
func (s *Session) GenerateTrueFalse(sentences []string) []QuestionItem {
	var valid []string
	for _, raw := range sentences {
		if sent := normalizeSentence(raw); wordCount(sent) >= minTrueFalseWords {
			valid = append(valid, sent)
		}
	}
	if len(valid) == 0 {
		s.log.Info("generated true/false items", "count", 0)
		return nil
	}

	falseSet := make(map[int]struct{}, len(valid)/2)
	for _, i := range s.rng.Perm(len(valid))[:len(valid)/2] {
		falseSet[i] = struct{}{}
	}

	var items []QuestionItem
	for idx, sent := range valid {
		_, makeFalse := falseSet[idx]
		question := sent
		answer := "True"

		if makeFalse {
			question, answer = s.falsify(sent)
			if question == sent {
				// Falsification was a no-op; never emit it as a lie.
				continue
			}
		}

		items = append(items, QuestionItem{
			Type:     TypeTrueFalse,
			Question: "True or False: " + capitalizeFirst(question),
			Answer:   answer,
		})
	}

	s.log.Info("generated true/false items", "count", len(items))
	return items
}

// falsify makes a statement false, preferring to negate the first verb
// and otherwise swapping one noun for a placeholder token. Returns the
// sentence unchanged when neither strategy applies.
func (s *Session) falsify(sent string) (string, string) {
	ts, ok := s.tagged(sent)
	if !ok {
		return sent, "True"
	}

	if vi := ts.FirstVerbIndex(); vi >= 0 && s.rng.Float64() < verbNegationRate {
		negation := negationWords[s.rng.Intn(len(negationWords))]
		words := make([]string, 0, len(ts.Words)+1)
		words = append(words, ts.Words[:vi+1]...)
		words = append(words, negation)
		words = append(words, ts.Words[vi+1:]...)
		return strings.Join(words, " "), "False"
	}

	var nouns []string
	for _, w := range ts.Nouns() {
		if len(w) > 3 {
			nouns = append(nouns, w)
		}
	}
	if len(nouns) == 0 {
		return sent, "True"
	}
	target := nouns[s.rng.Intn(len(nouns))]

	var pool []string
	for _, p := range placeholderNouns {
		if !strings.EqualFold(p, target) {
			pool = append(pool, p)
		}
	}
	replacement := pool[s.rng.Intn(len(pool))]
	return replaceWholeWord(sent, target, replacement), "False"
}
