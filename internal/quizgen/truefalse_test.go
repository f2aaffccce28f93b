package quizgen

import (
	"strings"
	"testing"
)

var tfTags = map[string]string{
	"absorbs":     "VBZ",
	"reflects":    "VBZ",
	"produces":    "VBZ",
	"releases":    "VBZ",
	"stores":      "VBZ",
	"transports":  "VBZ",
	"chlorophyll": "NN",
	"membrane":    "NN",
	"nucleus":     "NN",
	"glucose":     "NN",
	"oxygen":      "NN",
	"protein":     "NN",
}

var tfSentences = []string{
	"the green chlorophyll absorbs light from the red spectrum",
	"the outer membrane reflects charged particles away from the interior",
	"the cell nucleus produces copies of genetic instructions constantly",
	"the plant glucose releases stored energy during the night",
	"the leaf oxygen stores pressure inside tiny surface pores",
	"the carrier protein transports molecules across the cell boundary",
}

func TestGenerateTrueFalseBalance(t *testing.T) {
	s := newTestSession(tfTags, 99)
	items := s.GenerateTrueFalse(tfSentences)

	// Every sentence has a verb and a swappable noun, so no falsification
	// can fail and the full half split must arrive.
	if len(items) != len(tfSentences) {
		t.Fatalf("expected %d items, got %d", len(tfSentences), len(items))
	}

	falseCount := 0
	for _, item := range items {
		if item.Type != TypeTrueFalse {
			t.Errorf("Type = %s", item.Type)
		}
		if !strings.HasPrefix(item.Question, "True or False: ") {
			t.Errorf("missing prefix: %q", item.Question)
		}
		switch item.Answer {
		case "True":
		case "False":
			falseCount++
		default:
			t.Errorf("unexpected answer %q", item.Answer)
		}
	}
	if want := len(tfSentences) / 2; falseCount != want {
		t.Errorf("falseCount = %d, want %d", falseCount, want)
	}
}

func TestGenerateTrueFalseFalseStatementsDiffer(t *testing.T) {
	s := newTestSession(tfTags, 99)
	items := s.GenerateTrueFalse(tfSentences)

	originals := make(map[string]struct{}, len(tfSentences))
	for _, sent := range tfSentences {
		originals["True or False: "+capitalizeFirst(sent)] = struct{}{}
	}
	for _, item := range items {
		_, untouched := originals[item.Question]
		if item.Answer == "False" && untouched {
			t.Errorf("false item matches an unmodified sentence: %q", item.Question)
		}
		if item.Answer == "True" && !untouched {
			t.Errorf("true item was modified: %q", item.Question)
		}
	}
}

func TestGenerateTrueFalseSingleSentence(t *testing.T) {
	s := newTestSession(tfTags, 5)
	items := s.GenerateTrueFalse(tfSentences[:1])
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	// floor(1/2) == 0 sentences are falsified.
	if items[0].Answer != "True" {
		t.Errorf("single sentence must stay True, got %s", items[0].Answer)
	}
}

func TestGenerateTrueFalseSkipsShortSentences(t *testing.T) {
	s := newTestSession(tfTags, 5)
	items := s.GenerateTrueFalse([]string{"the membrane reflects charged particles"})
	if len(items) != 0 {
		t.Errorf("expected sentences under the word floor to be skipped, got %v", items)
	}
}
