package quizgen

import (
	"strings"
	"testing"
)

func TestSeedDeterministic(t *testing.T) {
	text := "the mitochondria is the powerhouse of the cell"
	if Seed(text) != Seed(text) {
		t.Error("seed must be stable for identical input")
	}
}

func TestSeedRange(t *testing.T) {
	for _, text := range []string{"", "a", "some document text", strings.Repeat("z", 50000)} {
		seed := Seed(text)
		if seed < 0 || seed >= 100_000_000 {
			t.Errorf("Seed(%.10q...) = %d outside [0, 10^8)", text, seed)
		}
	}
}

func TestSeedUsesOnlyPrefix(t *testing.T) {
	base := strings.Repeat("lorem ipsum ", 1000) // > 10000 chars
	if Seed(base+"tail one") != Seed(base+"tail two") {
		t.Error("content past the prefix cap must not change the seed")
	}
}

func TestSeedDiffersAcrossDocuments(t *testing.T) {
	if Seed("first document about biology") == Seed("second document about chemistry") {
		t.Error("distinct documents should not collide on seed (astronomically unlikely)")
	}
}
