package quizgen

import "strings"

// Type identifies a question family.
type Type string

const (
	TypeMCQ         Type = "mcq"
	TypeFillBlank   Type = "fill_blanks"
	TypeTrueFalse   Type = "true_false"
	TypeShortAnswer Type = "short_answer"
)

// AllTypes lists every question family in synthesis order.
var AllTypes = []Type{TypeMCQ, TypeFillBlank, TypeTrueFalse, TypeShortAnswer}

// Label returns the display name used in exported quizzes.
func (t Type) Label() string {
	switch t {
	case TypeMCQ:
		return "MCQ"
	case TypeFillBlank:
		return "Fill-in-the-Blank"
	case TypeTrueFalse:
		return "True/False"
	case TypeShortAnswer:
		return "Short Answer"
	}
	return string(t)
}

// typeAliases maps every accepted spelling to its canonical Type.
var typeAliases = map[string]Type{
	"mcq":                TypeMCQ,
	"multiple choice":    TypeMCQ,
	"multiple_choice":    TypeMCQ,
	"fill":               TypeFillBlank,
	"fill_blanks":        TypeFillBlank,
	"fill-in-the-blanks": TypeFillBlank,
	"fill in the blanks": TypeFillBlank,
	"fill-in-the-blank":  TypeFillBlank,
	"tf":                 TypeTrueFalse,
	"true_false":         TypeTrueFalse,
	"true/false":         TypeTrueFalse,
	"truefalse":          TypeTrueFalse,
	"true or false":      TypeTrueFalse,
	"short":              TypeShortAnswer,
	"short_answer":       TypeShortAnswer,
	"short answer":       TypeShortAnswer,
}

// ParseTypes normalizes a comma-separated, case-insensitive list of
// question-type names. Empty input and "all" select every type.
// Unrecognized names are dropped; an all-unrecognized list yields nil,
// which the orchestrator treats as "retry with everything".
func ParseTypes(s string) []Type {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" || s == "all" {
		return append([]Type(nil), AllTypes...)
	}

	var out []Type
	seen := make(map[Type]struct{})
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		t, ok := typeAliases[part]
		if !ok {
			continue
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

// QuestionItem is one synthesized quiz question. Options is populated
// only for MCQ items, where it always holds exactly four entries with
// exactly one matching Answer.
type QuestionItem struct {
	Type     Type     `json:"type"`
	Question string   `json:"question"`
	Options  []string `json:"options,omitempty"`
	Answer   string   `json:"answer"`
}
