package export

import (
	"fmt"
	"io"

	"github.com/Sahanajogi126/quizforge/internal/quizgen"
)

var optionLabels = []string{"A)", "B)", "C)", "D)"}

// WriteText writes items in the plain quiz file format: one block per
// question separated by blank lines, MCQ options labeled A) through D),
// and an "Answer:" line closing each block.
func WriteText(w io.Writer, items []quizgen.QuestionItem) error {
	for _, q := range items {
		if _, err := fmt.Fprintf(w, "(%s) %s\n", q.Type.Label(), q.Question); err != nil {
			return err
		}
		if q.Type == quizgen.TypeMCQ {
			for i, opt := range q.Options {
				label := optionLabel(i)
				if _, err := fmt.Fprintf(w, "  %s %s\n", label, opt); err != nil {
					return err
				}
			}
		}
		if _, err := fmt.Fprintf(w, "Answer: %s\n\n", q.Answer); err != nil {
			return err
		}
	}
	return nil
}

func optionLabel(i int) string {
	if i < len(optionLabels) {
		return optionLabels[i]
	}
	return fmt.Sprintf("%c)", 'A'+i)
}
