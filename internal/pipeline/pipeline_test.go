package pipeline

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/Sahanajogi126/quizforge/internal/nlp"
	"github.com/Sahanajogi126/quizforge/internal/quizgen"
	"github.com/Sahanajogi126/quizforge/internal/rank"
)

const studyText = `Photosynthesis is the process by which green plants convert
sunlight into chemical energy. The conversion takes place inside organelles
called chloroplasts, which contain the green pigment chlorophyll. Chlorophyll
absorbs light most strongly in the blue and red portions of the visible
spectrum. During the light reactions, water molecules are split apart to
release oxygen as a byproduct. The captured energy is stored in molecules of
ATP and NADPH for later use in the cycle. In the Calvin cycle, carbon dioxide
from the atmosphere is fixed into simple sugars using that stored energy.
Plants use the resulting glucose both as an immediate fuel and as a building
block for cellulose. Nearly all life on Earth depends on this conversion of
solar energy into food. Scientists continue to study artificial photosynthesis
as a possible route toward clean fuel production. Improving the efficiency of
food crops remains an active goal of agricultural research programs.`

func testOptions() Options {
	return Options{
		Method: rank.TextRank,
		Tagger: nlp.NewRuleTagger(),
	}
}

func TestRunRejectsShortInput(t *testing.T) {
	_, err := Run("too short to quiz on", testOptions())
	if !errors.Is(err, ErrTextTooShort) {
		t.Errorf("expected ErrTextTooShort, got %v", err)
	}
}

func TestRunProducesQuestions(t *testing.T) {
	res, err := Run(studyText, testOptions())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(res.Items) == 0 {
		t.Fatal("expected at least one question")
	}
	if res.Seed < 0 || res.Seed >= 100_000_000 {
		t.Errorf("seed %d outside expected range", res.Seed)
	}
	if res.SentencesUsed == 0 {
		t.Error("expected SentencesUsed to be reported")
	}

	for _, item := range res.Items {
		if strings.TrimSpace(item.Question) == "" {
			t.Errorf("empty question in %+v", item)
		}
		if strings.TrimSpace(item.Answer) == "" {
			t.Errorf("empty answer in %+v", item)
		}
		if item.Type == quizgen.TypeMCQ && len(item.Options) != 4 {
			t.Errorf("MCQ with %d options: %+v", len(item.Options), item)
		}
	}
}

func TestRunIsIdempotent(t *testing.T) {
	opts := testOptions()

	first, err := Run(studyText, opts)
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	second, err := Run(studyText, opts)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}

	if first.Seed != second.Seed {
		t.Fatalf("seeds differ: %d vs %d", first.Seed, second.Seed)
	}
	if !reflect.DeepEqual(first.Items, second.Items) {
		t.Errorf("identical input produced different items")
	}
}

func TestRunHonorsRequestedTypes(t *testing.T) {
	opts := testOptions()
	opts.Types = []quizgen.Type{quizgen.TypeFillBlank}

	res, err := Run(studyText, opts)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	for _, item := range res.Items {
		if item.Type != quizgen.TypeFillBlank {
			t.Errorf("unexpected type %s in single-type run", item.Type)
		}
	}
}

func TestRunCapsSentences(t *testing.T) {
	opts := testOptions()
	opts.TopSentences = 3
	opts.SmartSelection = true

	res, err := Run(studyText, opts)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.SentencesUsed > 3 {
		t.Errorf("SentencesUsed = %d, cap was 3", res.SentencesUsed)
	}
}

func TestRunNeuralStubFallsThrough(t *testing.T) {
	opts := testOptions()
	opts.Neural = quizgen.NeuralStub{}

	res, err := Run(studyText, opts)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(res.Items) == 0 {
		t.Fatal("rule-based fallback produced nothing")
	}
}
