package nlp

import "testing"

func TestRuleTaggerTags(t *testing.T) {
	tagger := NewRuleTagger()

	cases := []struct {
		word string
		tag  string
	}{
		{"the", "DT"},
		{"is", "VBZ"},
		{"of", "IN"},
		{"and", "CC"},
		{"they", "PRP"},
		{"1869", "CD"},
		{"running", "VBG"},
		{"walked", "VBD"},
		{"quickly", "RB"},
		{"atoms", "NNS"},
		{"reactor", "NN"},
	}

	for _, tc := range cases {
		ts, err := tagger.Tag(tc.word)
		if err != nil {
			t.Fatalf("Tag(%q): %v", tc.word, err)
		}
		if len(ts.Tags) != 1 {
			t.Fatalf("Tag(%q): expected single token, got %v", tc.word, ts.Words)
		}
		if ts.Tags[0] != tc.tag {
			t.Errorf("Tag(%q) = %s, want %s", tc.word, ts.Tags[0], tc.tag)
		}
	}
}

func TestTaggedSentenceNouns(t *testing.T) {
	ts := TaggedSentence{
		Words: []string{"The", "mitochondria", "is", "the", "powerhouse"},
		Tags:  []string{"DT", "NN", "VBZ", "DT", "NN"},
	}
	nouns := ts.Nouns()
	if len(nouns) != 2 || nouns[0] != "mitochondria" || nouns[1] != "powerhouse" {
		t.Errorf("Nouns() = %v", nouns)
	}
}

func TestFirstVerbIndex(t *testing.T) {
	ts := TaggedSentence{
		Words: []string{"Plants", "absorb", "sunlight"},
		Tags:  []string{"NNS", "VBP", "NN"},
	}
	if got := ts.FirstVerbIndex(); got != 1 {
		t.Errorf("FirstVerbIndex() = %d, want 1", got)
	}

	noVerb := TaggedSentence{Words: []string{"blue", "sky"}, Tags: []string{"JJ", "NN"}}
	if got := noVerb.FirstVerbIndex(); got != -1 {
		t.Errorf("FirstVerbIndex() without verb = %d, want -1", got)
	}
}
