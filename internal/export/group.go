package export

import "github.com/Sahanajogi126/quizforge/internal/quizgen"

// Section is one titled group of questions in an exported quiz.
type Section struct {
	Title string
	Items []quizgen.QuestionItem
}

var sectionTitles = map[quizgen.Type]string{
	quizgen.TypeMCQ:         "Part A – Multiple Choice Questions",
	quizgen.TypeFillBlank:   "Part B – Fill in the Blanks",
	quizgen.TypeTrueFalse:   "Part C – True or False",
	quizgen.TypeShortAnswer: "Part D – Short Answer",
}

// GroupByType splits items into per-type sections in canonical order,
// omitting empty sections. Downstream exporters render one section per
// question family.
func GroupByType(items []quizgen.QuestionItem) []Section {
	byType := make(map[quizgen.Type][]quizgen.QuestionItem)
	for _, q := range items {
		byType[q.Type] = append(byType[q.Type], q)
	}

	var out []Section
	for _, t := range quizgen.AllTypes {
		if group := byType[t]; len(group) > 0 {
			out = append(out, Section{Title: sectionTitles[t], Items: group})
		}
	}
	return out
}
