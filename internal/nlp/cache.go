package nlp

// TagCache memoizes tagger output keyed by exact sentence text. Tagging
// is a pure function of the string, so two sentences with identical text
// correctly share one entry.
//
// A cache belongs to exactly one generation session and is not safe for
// concurrent use. Callers must Clear it between unrelated documents to
// bound memory in long-lived processes.
type TagCache struct {
	tagger  Tagger
	entries map[string]TaggedSentence
}

// NewTagCache creates an empty cache backed by tagger.
func NewTagCache(tagger Tagger) *TagCache {
	return &TagCache{
		tagger:  tagger,
		entries: make(map[string]TaggedSentence),
	}
}

// Tag returns the tagged form of sentence, computing and storing it on
// first use.
func (c *TagCache) Tag(sentence string) (TaggedSentence, error) {
	if ts, ok := c.entries[sentence]; ok {
		return ts, nil
	}
	ts, err := c.tagger.Tag(sentence)
	if err != nil {
		return TaggedSentence{}, err
	}
	c.entries[sentence] = ts
	return ts, nil
}

// Len returns the number of cached sentences.
func (c *TagCache) Len() int {
	return len(c.entries)
}

// Clear drops all cached entries. Call between documents.
func (c *TagCache) Clear() {
	c.entries = make(map[string]TaggedSentence)
}
