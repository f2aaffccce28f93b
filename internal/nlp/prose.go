package nlp

import (
	"fmt"

	"github.com/jdkato/prose/v2"
)

// ProseTagger tags sentences with prose's Penn Treebank perceptron model.
// The model weights are fixed at build time, so tagging is deterministic.
type ProseTagger struct{}

// NewProseTagger returns the default production tagger.
func NewProseTagger() *ProseTagger {
	return &ProseTagger{}
}

// Tag tokenizes sentence and assigns Penn Treebank tags.
func (p *ProseTagger) Tag(sentence string) (TaggedSentence, error) {
	doc, err := prose.NewDocument(sentence,
		prose.WithSegmentation(false),
		prose.WithExtraction(false),
	)
	if err != nil {
		return TaggedSentence{}, fmt.Errorf("tag sentence: %w", err)
	}

	toks := doc.Tokens()
	ts := TaggedSentence{
		Words: make([]string, 0, len(toks)),
		Tags:  make([]string, 0, len(toks)),
	}
	for _, tok := range toks {
		ts.Words = append(ts.Words, tok.Text)
		ts.Tags = append(ts.Tags, tok.Tag)
	}
	return ts, nil
}

// SplitSentences segments text into sentences using prose. Returns nil
// on tokenizer failure; callers fall back to a crude punctuation split.
func SplitSentences(text string) []string {
	doc, err := prose.NewDocument(text,
		prose.WithTagging(false),
		prose.WithExtraction(false),
	)
	if err != nil {
		return nil
	}
	sents := doc.Sentences()
	out := make([]string, 0, len(sents))
	for _, s := range sents {
		out = append(out, s.Text)
	}
	return out
}
