package pipeline

import (
	"errors"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/Sahanajogi126/quizforge/internal/nlp"
	"github.com/Sahanajogi126/quizforge/internal/quizgen"
	"github.com/Sahanajogi126/quizforge/internal/rank"
)

const (
	// MinInputChars is the hard floor below which no meaningful ranking
	// is possible; shorter input is the one input error surfaced to the
	// caller.
	MinInputChars = 50
	// MaxInputChars trims very large inputs before ranking.
	MaxInputChars = 20000

	// DefaultTopSentences caps how many ranked sentences feed synthesis.
	DefaultTopSentences = 20
)

var (
	ErrTextTooShort = errors.New("input text too short (< 50 characters)")
	ErrNoQuestions  = errors.New("no questions generated")
)

// Options configures one generation run. Zero values fall back to the
// documented defaults.
type Options struct {
	Method         rank.Method
	Types          []quizgen.Type
	TopSentences   int
	BatchSize      int
	SmartSelection bool
	Tagger         nlp.Tagger
	Neural         quizgen.Generator
	Log            *log.Logger
}

// Result is one completed generation run.
type Result struct {
	Items         []quizgen.QuestionItem
	Seed          int64
	Method        rank.Method
	SentencesUsed int
}

// Run executes the full pipeline: clean and rank the text, cap the
// sentence set, derive the deterministic seed, synthesize items in
// batches, and shuffle within type groups. Running twice on identical
// input yields identical output.
func Run(text string, opts Options) (*Result, error) {
	if len(strings.TrimSpace(text)) < MinInputChars {
		return nil, ErrTextTooShort
	}
	if len(text) > MaxInputChars {
		text = text[:MaxInputChars]
	}

	logger := opts.Log
	if logger == nil {
		logger = log.Default()
	}
	tagger := opts.Tagger
	if tagger == nil {
		tagger = nlp.NewProseTagger()
	}
	topSentences := opts.TopSentences
	if topSentences <= 0 {
		topSentences = DefaultTopSentences
	}

	ranker := rank.New(opts.Method, logger)
	sentences, err := ranker.Rank(text)
	if err != nil {
		return nil, err
	}

	if len(sentences) > topSentences {
		if opts.SmartSelection {
			sentences = quizgen.SmartSelect(sentences, topSentences)
			logger.Info("smart-selected sentences", "kept", len(sentences))
		} else {
			sentences = sentences[:topSentences]
		}
	}

	// Seed from the cleaned text, not the raw input, so that formatting
	// noise stripped by cleaning cannot change the seed.
	seed := quizgen.Seed(rank.CleanText(text))

	if opts.Neural != nil {
		items, nerr := opts.Neural.Generate(sentences, opts.Types)
		if nerr == nil && len(items) > 0 {
			return &Result{Items: items, Seed: seed, Method: opts.Method, SentencesUsed: len(sentences)}, nil
		}
		logger.Debug("neural generator unavailable, using rule-based path", "err", nerr)
	}

	session := quizgen.NewSession(tagger, seed, logger)
	defer session.Clear()

	orch := quizgen.NewOrchestrator(session, opts.BatchSize)
	items := orch.Generate(sentences, opts.Types)
	if len(items) == 0 {
		return nil, ErrNoQuestions
	}

	if countTypes(items) > 1 || len(opts.Types) > 1 {
		items = orch.RandomizeWithinTypes(items)
	}

	return &Result{
		Items:         items,
		Seed:          seed,
		Method:        opts.Method,
		SentencesUsed: len(sentences),
	}, nil
}

func countTypes(items []quizgen.QuestionItem) int {
	seen := make(map[quizgen.Type]struct{})
	for _, item := range items {
		seen[item.Type] = struct{}{}
	}
	return len(seen)
}
