package nlp

import "testing"

// countingTagger wraps RuleTagger and counts invocations.
type countingTagger struct {
	inner Tagger
	calls int
}

func (c *countingTagger) Tag(sentence string) (TaggedSentence, error) {
	c.calls++
	return c.inner.Tag(sentence)
}

func TestTagCacheMemoizes(t *testing.T) {
	counter := &countingTagger{inner: NewRuleTagger()}
	cache := NewTagCache(counter)

	first, err := cache.Tag("The reactor produces energy.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := cache.Tag("The reactor produces energy.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if counter.calls != 1 {
		t.Errorf("expected 1 tagger call, got %d", counter.calls)
	}
	if len(first.Words) != len(second.Words) {
		t.Errorf("cached result differs from original")
	}
	if cache.Len() != 1 {
		t.Errorf("expected 1 cache entry, got %d", cache.Len())
	}
}

func TestTagCacheIdenticalTextSharesEntry(t *testing.T) {
	counter := &countingTagger{inner: NewRuleTagger()}
	cache := NewTagCache(counter)

	// Two "different" sentences with identical text share one entry;
	// tagging is a pure function of the string.
	sentences := []string{"Water boils at a fixed temperature.", "Water boils at a fixed temperature."}
	for _, s := range sentences {
		if _, err := cache.Tag(s); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if counter.calls != 1 {
		t.Errorf("expected shared cache entry, got %d tagger calls", counter.calls)
	}
}

func TestTagCacheClear(t *testing.T) {
	counter := &countingTagger{inner: NewRuleTagger()}
	cache := NewTagCache(counter)

	if _, err := cache.Tag("Photosynthesis converts light into chemical energy."); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cache.Clear()

	if cache.Len() != 0 {
		t.Errorf("expected empty cache after Clear, got %d entries", cache.Len())
	}

	if _, err := cache.Tag("Photosynthesis converts light into chemical energy."); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if counter.calls != 2 {
		t.Errorf("expected re-tag after Clear, got %d calls", counter.calls)
	}
}
