package rank

import (
	"errors"
	"sort"
	"strings"
	"testing"
)

const samplePassage = `Photosynthesis is the process by which green plants convert
sunlight into chemical energy. The process takes place inside organelles called
chloroplasts, which contain the green pigment chlorophyll. Chlorophyll absorbs
light most strongly in the blue and red portions of the spectrum. During the
light reactions, water molecules are split to release oxygen as a byproduct.
The energy captured during these reactions is stored in molecules of ATP and
NADPH for later use. In the Calvin cycle, carbon dioxide from the atmosphere is
fixed into sugars using that stored energy. Plants use the resulting glucose
both as an immediate fuel and as a building block for cellulose. Nearly all
life on Earth depends on this conversion of solar energy into food. Scientists
continue to study artificial photosynthesis as a route to clean fuel
production. Improving the efficiency of crops remains an active goal of
agricultural research.`

func TestRankReturnsDocumentOrder(t *testing.T) {
	for _, method := range []Method{TextRank, LexRank, TfIdf} {
		t.Run(string(method), func(t *testing.T) {
			r := New(method, nil)
			selected, err := r.Rank(samplePassage)
			if err != nil {
				t.Fatalf("Rank: %v", err)
			}
			if len(selected) == 0 {
				t.Fatal("expected at least one sentence")
			}

			// Selected sentences must appear in ascending document order.
			cleaned := CleanText(samplePassage)
			positions := make([]int, 0, len(selected))
			for _, s := range selected {
				pos := strings.Index(cleaned, s)
				if pos < 0 {
					t.Fatalf("selected sentence not found in cleaned text: %q", s)
				}
				positions = append(positions, pos)
			}
			if !sort.IntsAreSorted(positions) {
				t.Errorf("selection out of document order: %v", positions)
			}
		})
	}
}

func TestRankEmptyInput(t *testing.T) {
	r := New(TextRank, nil)
	if _, err := r.Rank(""); !errors.Is(err, ErrNoSentences) {
		t.Errorf("expected ErrNoSentences, got %v", err)
	}
	if _, err := r.Rank("!!! ??? ..."); !errors.Is(err, ErrNoSentences) {
		t.Errorf("expected ErrNoSentences on punctuation-only input, got %v", err)
	}
}

func TestRankRespectsTarget(t *testing.T) {
	r := New(TfIdf, nil)
	selected, err := r.Rank(samplePassage)
	if err != nil {
		t.Fatalf("Rank: %v", err)
	}
	sentences := SegmentSentences(CleanText(samplePassage))
	if want := TargetCount(len(sentences)); len(selected) > want {
		t.Errorf("selected %d sentences, cap is %d", len(selected), want)
	}
}

func TestQualityFallbackOrdering(t *testing.T) {
	sentences := []string{
		"short one here now okay",
		"this considerably longer sentence carries many more distinct informative words overall",
		"tiny bit of text here",
	}
	idx := qualityFallback(sentences, 1)
	if len(idx) != 1 || idx[0] != 1 {
		t.Errorf("qualityFallback() = %v, want [1]", idx)
	}
}

func TestSegmentSentencesDropsFragments(t *testing.T) {
	text := "too short. this sentence has more than enough words to survive the filter."
	sentences := SegmentSentences(text)
	for _, s := range sentences {
		if len(strings.Fields(s)) < minSentenceWords {
			t.Errorf("fragment survived segmentation: %q", s)
		}
	}
	if len(sentences) != 1 {
		t.Errorf("expected 1 sentence, got %d: %v", len(sentences), sentences)
	}
}
