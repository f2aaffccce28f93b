package quizgen

import "errors"

// ErrGeneratorUnavailable signals that a generator cannot run and the
// caller should fall through to the rule-based path.
var ErrGeneratorUnavailable = errors.New("generator unavailable")

// Generator produces question items from ranked sentences. The
// rule-based Orchestrator is the canonical implementation; alternative
// generators (e.g. model-backed ones) may be plugged in ahead of it.
type Generator interface {
	Generate(sentences []string, types []Type) ([]QuestionItem, error)
}

// NeuralStub stands in for the optional model-backed generation path.
// It always reports unavailable, so the pipeline always takes the
// reproducible rule-based path.
type NeuralStub struct{}

// Generate always returns ErrGeneratorUnavailable.
func (NeuralStub) Generate([]string, []Type) ([]QuestionItem, error) {
	return nil, ErrGeneratorUnavailable
}
