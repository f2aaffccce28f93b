package quizgen

import (
	"math/rand"
	"reflect"
	"testing"

	"github.com/Sahanajogi126/quizforge/internal/nlp"
)

func TestKeyTermCandidatesFiltering(t *testing.T) {
	ts := nlp.TaggedSentence{
		Words: []string{"The", "process", "of", "osmosis", "uses", "H2O", "and", "ion", "channels"},
		Tags:  []string{"DT", "NN", "IN", "NN", "VBZ", "NN", "CC", "NN", "NNS"},
	}
	got := keyTermCandidates(ts)
	// "process" is on the exclude list, "H2O" is not alphabetic, "ion" is
	// too short; only "osmosis" and "channels" survive.
	want := []string{"osmosis", "channels"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("keyTermCandidates() = %v, want %v", got, want)
	}
}

func TestSelectKeyTermIsACandidate(t *testing.T) {
	ts := nlp.TaggedSentence{
		Words: []string{"chloroplasts", "contain", "chlorophyll"},
		Tags:  []string{"NNS", "VBP", "NN"},
	}
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 20; i++ {
		term := selectKeyTerm(ts, rng)
		if term != "chloroplasts" && term != "chlorophyll" {
			t.Fatalf("selected term %q is not a candidate", term)
		}
	}
}

func TestSelectKeyTermNoCandidates(t *testing.T) {
	ts := nlp.TaggedSentence{
		Words: []string{"it", "is", "the", "way"},
		Tags:  []string{"PRP", "VBZ", "DT", "NN"},
	}
	rng := rand.New(rand.NewSource(1))
	if term := selectKeyTerm(ts, rng); term != "" {
		t.Errorf("expected no candidate, got %q", term)
	}
}
