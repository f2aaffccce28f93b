package quizgen

import "strings"

// GenerateFill synthesizes fill-in-the-blank items. The answer keeps the
// casing it had in the source text; when the blank lands at the start of
// the sentence, the following word is lowercased since the blank, not a
// word, now opens the sentence.
func (s *Session) GenerateFill(sentences []string) []QuestionItem {
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

		term := selectKeyTerm(ts, s.rng)
		if term == "" {
			continue
		}

		// The selector returns a token; recover the casing the word had
		// in the tokenized sentence.
		answer := term
		for _, w := range ts.Words {
			if strings.EqualFold(w, term) {
				answer = w
				break
			}
		}

		question, ok := maskTerm(sent, term)
		if !ok {
			continue
		}

		question = strings.TrimSpace(question)
		if rest, found := strings.CutPrefix(question, BlankMarker); found {
			question = BlankMarker + lowerFirstAlpha(rest)
		} else {
			question = capitalizeFirst(question)
		}

		items = append(items, QuestionItem{
			Type:     TypeFillBlank,
			Question: question,
			Answer:   answer,
		})
	}

	s.log.Info("generated fill-in-the-blank items", "count", len(items))
	return items
}
