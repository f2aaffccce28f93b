package nlp

// TaggedSentence pairs a sentence's tokens with their part-of-speech tags.
// Words and Tags are always the same length.
type TaggedSentence struct {
	Words []string
	Tags  []string
}

// Tagger tokenizes a sentence and assigns a part-of-speech tag to each
// token. Implementations must be pure: the same input always yields the
// same output, which is what makes tag results safe to cache by sentence
// text alone.
type Tagger interface {
	Tag(sentence string) (TaggedSentence, error)
}

// Nouns returns the tokens whose tag marks them as noun-like (NN, NNS,
// NNP, NNPS).
func (ts TaggedSentence) Nouns() []string {
	var out []string
	for i, tag := range ts.Tags {
		if len(tag) >= 2 && tag[:2] == "NN" {
			out = append(out, ts.Words[i])
		}
	}
	return out
}

// FirstVerbIndex returns the index of the first verb-tagged token, or -1
// if the sentence has no verb.
func (ts TaggedSentence) FirstVerbIndex() int {
	for i, tag := range ts.Tags {
		if len(tag) >= 2 && tag[:2] == "VB" {
			return i
		}
	}
	return -1
}
