package quizgen

import (
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/Sahanajogi126/quizforge/internal/nlp"
)

// Session is the scope of one document-generation request. It owns the
// tag cache and the single seeded random stream that every synthesizer
// draws from; synthesizers must never construct their own randomness or
// reproducibility breaks.
//
// A Session is single-threaded: synthesizers run sequentially within
// one batch and share the cache without locking.
type Session struct {
	cache *nlp.TagCache
	rng   *rand.Rand
	log   *log.Logger
}

// NewSession builds a session around tagger with the given seed.
func NewSession(tagger nlp.Tagger, seed int64, logger *log.Logger) *Session {
	if logger == nil {
		logger = log.Default()
	}
	return &Session{
		cache: nlp.NewTagCache(tagger),
		rng:   rand.New(rand.NewSource(seed)),
		log:   logger,
	}
}

// tagged returns the cached tagged form of sentence. A tagging failure
// on one sentence is a local skip, not an error: it is logged and the
// sentence is passed over.
func (s *Session) tagged(sentence string) (nlp.TaggedSentence, bool) {
	ts, err := s.cache.Tag(sentence)
	if err != nil {
		s.log.Debug("tagging failed, skipping sentence", "err", err)
		return nlp.TaggedSentence{}, false
	}
	return ts, true
}

// CacheLen reports how many sentences are currently memoized.
func (s *Session) CacheLen() int {
	return s.cache.Len()
}

// Clear resets the tag cache. Callers reusing one Session across
// unrelated documents must call this between them.
func (s *Session) Clear() {
	s.cache.Clear()
}
