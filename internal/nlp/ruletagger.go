package nlp

import "strings"

// closed-class word lists for the rule tagger
var (
	ruleVerbs = map[string]string{
		"is": "VBZ", "are": "VBP", "was": "VBD", "were": "VBD",
		"be": "VB", "been": "VBN", "being": "VBG",
		"has": "VBZ", "have": "VBP", "had": "VBD",
		"do": "VBP", "does": "VBZ", "did": "VBD",
		"can": "MD", "could": "MD", "will": "MD", "would": "MD",
		"may": "MD", "might": "MD", "shall": "MD", "should": "MD", "must": "MD",
	}
	ruleDeterminers = map[string]struct{}{
		"the": {}, "a": {}, "an": {}, "this": {}, "that": {},
		"these": {}, "those": {}, "each": {}, "every": {}, "some": {}, "any": {},
	}
	rulePrepositions = map[string]struct{}{
		"of": {}, "in": {}, "on": {}, "at": {}, "to": {}, "for": {},
		"with": {}, "by": {}, "from": {}, "as": {}, "into": {}, "through": {},
	}
	ruleConjunctions = map[string]struct{}{
		"and": {}, "or": {}, "but": {}, "nor": {}, "so": {}, "yet": {},
	}
	rulePronouns = map[string]struct{}{
		"i": {}, "you": {}, "he": {}, "she": {}, "it": {}, "we": {},
		"they": {}, "them": {}, "him": {}, "her": {}, "us": {},
	}
)

// RuleTagger is a lightweight suffix-and-lexicon tagger. It exists as a
// dependency-free fallback and as a deterministic tagger for tests; the
// production path uses ProseTagger.
type RuleTagger struct{}

// NewRuleTagger returns a rule-based tagger.
func NewRuleTagger() *RuleTagger {
	return &RuleTagger{}
}

// Tag assigns a coarse Penn Treebank tag to each token of sentence.
// Unknown open-class words default to NN, which errs on the side of
// giving the answer selector more candidates.
func (r *RuleTagger) Tag(sentence string) (TaggedSentence, error) {
	words := Tokenize(sentence)
	tags := make([]string, len(words))
	for i, w := range words {
		tags[i] = tagWord(w)
	}
	return TaggedSentence{Words: words, Tags: tags}, nil
}

func tagWord(w string) string {
	lw := strings.ToLower(w)
	if t, ok := ruleVerbs[lw]; ok {
		return t
	}
	if _, ok := ruleDeterminers[lw]; ok {
		return "DT"
	}
	if _, ok := rulePrepositions[lw]; ok {
		return "IN"
	}
	if _, ok := ruleConjunctions[lw]; ok {
		return "CC"
	}
	if _, ok := rulePronouns[lw]; ok {
		return "PRP"
	}
	if isNumeric(w) {
		return "CD"
	}
	switch {
	case strings.HasSuffix(lw, "ing") && len(lw) > 4:
		return "VBG"
	case strings.HasSuffix(lw, "ed") && len(lw) > 3:
		return "VBD"
	case strings.HasSuffix(lw, "ly") && len(lw) > 3:
		return "RB"
	case strings.HasSuffix(lw, "s") && len(lw) > 3:
		return "NNS"
	}
	return "NN"
}

func isNumeric(w string) bool {
	for _, r := range w {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(w) > 0
}
