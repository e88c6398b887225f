package sequence

import (
	"math/rand/v2"
	"slices"
	"testing"

	"go.uber.org/zap/zaptest"

	"entc/document"
	"entc/entity"
	"entc/labels"
)

// countingScorer rewards spans and their repetitions, enough to make scores
// depend on the cache.
var countingScorer = ScorerFunc(func(_ []int, entities entity.View) float64 {
	var score float64
	for s := range entities.All() {
		score += float64(s.Len()) + 0.5*float64(len(s.OtherOccurrences))
	}
	return score
})

func newTestFlat(t *testing.T, words []string, idx *labels.Index, scorer Scorer) *Model {
	t.Helper()
	if scorer == nil {
		scorer = countingScorer
	}
	return NewFlat(document.New(words), idx, scorer, zaptest.NewLogger(t))
}

func newTestBIO(t *testing.T, words []string, idx *labels.Index, scorer Scorer) *Model {
	t.Helper()
	if scorer == nil {
		scorer = countingScorer
	}
	m, err := NewBIO(document.New(words), idx, scorer, zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("NewBIO() error = %v", err)
	}
	return m
}

// rebuilt returns cache built from scratch for seq using the same scheme as m.
func rebuilt(t *testing.T, m *Model, seq []int) *entity.Cache {
	t.Helper()
	fresh := &Model{
		cache:      entity.NewCache(m.cache.Text()),
		scorer:     m.scorer,
		numClasses: m.numClasses,
		values:     m.values,
		log:        m.log,
	}
	switch u := m.upd.(type) {
	case *flatUpdater:
		fresh.upd = &flatUpdater{cache: fresh.cache, background: u.background}
	case *bioUpdater:
		fresh.upd = &bioUpdater{cache: fresh.cache, tags: u.tags}
	default:
		t.Fatalf("unknown updater %T", u)
	}
	fresh.SetInitialSequence(slices.Clone(seq))
	return fresh.cache
}

func assertRebuildEqual(t *testing.T, m *Model, seq []int) {
	t.Helper()
	if err := m.cache.Check(); err != nil {
		t.Fatalf("cache is inconsistent for %v: %v", seq, err)
	}
	if diff := m.cache.Diff(rebuilt(t, m, seq)); diff != "" {
		t.Fatalf("incremental cache differs from rebuilt one for %v: %s", seq, diff)
	}
}

func randomWords(r *rand.Rand, n int) []string {
	vocabulary := []string{"a", "A", "b", "B", "c", "d"}
	words := make([]string, n)
	for i := range words {
		words[i] = vocabulary[r.IntN(len(vocabulary))]
	}
	return words
}

func randomSequence(r *rand.Rand, n, numClasses int) []int {
	seq := make([]int, n)
	for i := range seq {
		// favour background to get realistic sparse spans
		if r.IntN(3) == 0 {
			seq[i] = r.IntN(numClasses)
		}
	}
	return seq
}
