package export

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sahanajogi126/quizforge/internal/quizgen"
)

func sampleItems() []quizgen.QuestionItem {
	return []quizgen.QuestionItem{
		{
			Type:     quizgen.TypeMCQ,
			Question: "The _____ is the powerhouse of the cell.",
			Options:  []string{"Nucleus", "Mitochondria", "Ribosome", "Vacuole"},
			Answer:   "Mitochondria",
		},
		{
			Type:     quizgen.TypeTrueFalse,
			Question: "True or False: Water boils at 90 degrees at sea level.",
			Answer:   "False",
		},
	}
}

func TestWriteText(t *testing.T) {
	var buf strings.Builder
	require.NoError(t, WriteText(&buf, sampleItems()))
	out := buf.String()

	assert.Contains(t, out, "(MCQ) The _____ is the powerhouse of the cell.\n")
	assert.Contains(t, out, "  A) Nucleus\n")
	assert.Contains(t, out, "  D) Vacuole\n")
	assert.Contains(t, out, "Answer: Mitochondria\n")
	assert.Contains(t, out, "(True/False) True or False: Water boils at 90 degrees at sea level.\n")

	// each block ends with a blank separator line
	assert.True(t, strings.HasSuffix(out, "\n\n"), "output should end with a blank line")
}

func TestWriteTextNonMCQHasNoOptions(t *testing.T) {
	var buf strings.Builder
	require.NoError(t, WriteText(&buf, sampleItems()[1:]))
	assert.NotContains(t, buf.String(), "A)")
}

func TestGroupByType(t *testing.T) {
	items := []quizgen.QuestionItem{
		{Type: quizgen.TypeShortAnswer, Question: "s"},
		{Type: quizgen.TypeMCQ, Question: "m1"},
		{Type: quizgen.TypeMCQ, Question: "m2"},
	}
	sections := GroupByType(items)

	require.Len(t, sections, 2)
	assert.Equal(t, "Part A – Multiple Choice Questions", sections[0].Title)
	assert.Len(t, sections[0].Items, 2)
	assert.Equal(t, "Part D – Short Answer", sections[1].Title)
}

func TestWriteJSONValid(t *testing.T) {
	doc := QuizDocument{
		ID:        "q-123",
		Source:    "notes.pdf",
		CreatedAt: time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC),
		Seed:      42,
		Items:     sampleItems(),
	}

	var buf strings.Builder
	require.NoError(t, WriteJSON(&buf, doc))

	out := buf.String()
	assert.Contains(t, out, `"id": "q-123"`)
	assert.Contains(t, out, `"type": "mcq"`)
}

func TestWriteJSONRejectsInvalid(t *testing.T) {
	cases := map[string]QuizDocument{
		"missing id": {
			CreatedAt: time.Now().UTC(),
			Items:     sampleItems(),
		},
		"no items": {
			ID:        "q-1",
			CreatedAt: time.Now().UTC(),
		},
		"mcq with wrong option count": {
			ID:        "q-2",
			CreatedAt: time.Now().UTC(),
			Items: []quizgen.QuestionItem{{
				Type:     quizgen.TypeMCQ,
				Question: "pick one",
				Options:  []string{"only", "three", "options"},
				Answer:   "only",
			}},
		},
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			var buf strings.Builder
			err := WriteJSON(&buf, doc)
			require.Error(t, err)
			assert.Empty(t, buf.String(), "invalid documents must not be written")
		})
	}
}
