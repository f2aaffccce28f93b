package quizgen

import (
	"strings"

	"github.com/Sahanajogi126/quizforge/internal/nlp"
)

// fakeTagger tags tokens from a fixed lexicon and defaults everything
// else to DT, giving tests full control over which words count as nouns
// and verbs.
type fakeTagger struct {
	tags map[string]string
}

func (f fakeTagger) Tag(sentence string) (nlp.TaggedSentence, error) {
	words := nlp.Tokenize(sentence)
	tags := make([]string, len(words))
	for i, w := range words {
		if t, ok := f.tags[strings.ToLower(w)]; ok {
			tags[i] = t
		} else {
			tags[i] = "DT"
		}
	}
	return nlp.TaggedSentence{Words: words, Tags: tags}, nil
}

func newTestSession(tags map[string]string, seed int64) *Session {
	return NewSession(fakeTagger{tags: tags}, seed, nil)
}
