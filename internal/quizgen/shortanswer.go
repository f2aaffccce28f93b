package quizgen

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	minShortAnswerWords = 6
	maxShortAnswerWords = 30
	// minModelAnswerWords rejects degenerate model answers that carry no
	// context beyond the term itself.
	minModelAnswerWords = 5
)

var (
	reListMarker   = regexp.MustCompile(`^\d+\.`)
	reNumberPrefix = regexp.MustCompile(`^\d+\.\s*`)
	reCodePattern  = regexp.MustCompile(`\b[A-Za-z]{2,4}\d{2,}`)
)

var shortAnswerTemplates = []string{
	"What does '%s' mean in the following context?",
	"Explain the term '%s' as used here.",
	"What is meant by '%s' in this sentence?",
}

// GenerateShortAnswer synthesizes context-rich short-answer items: the
// question asks about the key term, the full sentence is given as
// context, and the model answer is the sentence with each occurrence of
// the term wrapped in emphasis markers.
func (s *Session) GenerateShortAnswer(sentences []string) []QuestionItem {
	var items []QuestionItem

	for _, raw := range sentences {
		sent := normalizeSentence(raw)

		wc := wordCount(sent)
		if wc < minShortAnswerWords || wc > maxShortAnswerWords {
			continue
		}
		// Numbered list entries and identifier-style codes (e.g. course
		// or part numbers) make poor comprehension questions.
		if reListMarker.MatchString(sent) || reCodePattern.MatchString(sent) {
			continue
		}

		cleaned := strings.Trim(reNumberPrefix.ReplaceAllString(sent, ""), " .")
		ts, ok := s.tagged(cleaned)
		if !ok {
			continue
		}

		term := selectKeyTerm(ts, s.rng)
		if term == "" || !strings.Contains(strings.ToLower(cleaned), strings.ToLower(term)) {
			continue
		}

		prompt := fmt.Sprintf(shortAnswerTemplates[s.rng.Intn(len(shortAnswerTemplates))], term)

		modelAnswer := emphasizeTerm(cleaned, term)
		if strings.EqualFold(strings.TrimSpace(modelAnswer), term) || wordCount(modelAnswer) < minModelAnswerWords {
			continue
		}

		items = append(items, QuestionItem{
			Type:     TypeShortAnswer,
			Question: prompt + "\nContext: " + cleaned,
			Answer:   capitalizeFirst(modelAnswer),
		})
	}

	s.log.Info("generated short-answer items", "count", len(items))
	return items
}
