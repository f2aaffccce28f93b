package quizgen

import (
	"strings"

	"github.com/Sahanajogi126/quizforge/internal/nlp"
)

// mcqOptionCount is the fixed option count for multiple-choice items.
const mcqOptionCount = 4

// GenerateMCQ synthesizes multiple-choice items. For each eligible
// sentence the key term is masked, three distinct distractor nouns are
// drawn from the same sentence, and the four options are shuffled so the
// answer position is unpredictable.
func (s *Session) GenerateMCQ(sentences []string) []QuestionItem {
	var items []QuestionItem

	for _, raw := range sentences {
		sent := normalizeSentence(raw)
		if wordCount(sent) < minSentenceWords {
			continue
		}
		ts, ok := s.tagged(sent)
		if !ok {
			continue
		}

		answer := selectKeyTerm(ts, s.rng)
		if answer == "" {
			continue
		}

		question, ok := maskTerm(sent, answer)
		if !ok {
			continue
		}
		question = capitalizeFirst(question)

		distractors := s.drawDistractors(ts, answer)
		if distractors == nil {
			continue
		}

		options := append([]string{answer}, distractors...)
		s.rng.Shuffle(len(options), func(i, j int) {
			options[i], options[j] = options[j], options[i]
		})
		for i := range options {
			options[i] = capitalizeFirst(options[i])
		}

		items = append(items, QuestionItem{
			Type:     TypeMCQ,
			Question: question,
			Options:  options,
			Answer:   capitalizeFirst(answer),
		})
	}

	s.log.Info("generated MCQ items", "count", len(items))
	return items
}

// drawDistractors picks three distinct noun tokens from the sentence
// that differ from the answer. Returns nil when fewer than three are
// available, which disqualifies the sentence.
func (s *Session) drawDistractors(ts nlp.TaggedSentence, answer string) []string {
	var pool []string
	for _, w := range ts.Nouns() {
		if strings.EqualFold(w, answer) {
			continue
		}
		if !nlp.IsAlphabetic(w) || len(w) < minTermLen {
			continue
		}
		pool = append(pool, w)
	}
	if len(pool) < mcqOptionCount-1 {
		return nil
	}

	picks := s.rng.Perm(len(pool))[:mcqOptionCount-1]
	out := make([]string, 0, mcqOptionCount-1)
	for _, i := range picks {
		out = append(out, pool[i])
	}
	return out
}
