package sequence

import (
	"math/rand/v2"
	"slices"
	"strings"
	"testing"

	"entc/labels"
)

func TestClassifyFlat(t *testing.T) {
	const (
		bg = 0
		x  = 1
		y  = 2
		no = noLabel
	)
	tests := []struct {
		name                   string
		left, old, cur, right int
		want                   flatEdit
	}{
		{"same label", x, x, x, x, flatNoChange},
		{"background stays", bg, bg, bg, bg, flatNoChange},
		{"join from background", x, bg, x, x, flatJoin},
		{"join from other label", x, y, x, x, flatJoin},
		{"split to background", x, x, bg, x, flatSplit},
		{"split to other label", x, x, y, x, flatSplit},
		{"prepend", bg, bg, x, x, flatPrepend},
		{"prepend at start", no, y, x, x, flatPrepend},
		{"prepend shrinking left", y, y, x, x, flatPrepend},
		{"append", x, bg, x, bg, flatAppend},
		{"append at end", x, y, x, no, flatAppend},
		{"append shrinking right", x, y, x, y, flatAppend},
		{"singleton", bg, bg, x, bg, flatSingleton},
		{"singleton alone", no, bg, x, no, flatSingleton},
		{"singleton replacing", y, y, x, bg, flatSingleton},
		{"trim previous", x, x, bg, bg, flatTrimPrevious},
		{"trim previous at end", x, x, bg, no, flatTrimPrevious},
		{"trim next", bg, x, bg, x, flatTrimNext},
		{"vanish", bg, x, bg, y, flatVanish},
		{"vanish alone", no, x, bg, no, flatVanish},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := classifyFlat(bg, tt.left, tt.old, tt.cur, tt.right); got != tt.want {
				t.Errorf("classifyFlat(%d, %d, %d, %d) = %s, want %s", tt.left, tt.old, tt.cur, tt.right, got, tt.want)
			}
		})
	}
}

func TestFlatInitialSequence(t *testing.T) {
	idx := labels.FromNames("O", "PER", "LOC")
	per, loc := idx.MustID("PER"), idx.MustID("LOC")
	words := []string{"John", "Smith", "Paris", "London", "john", "smith"}
	seq := []int{per, per, loc, loc, per, per}

	m := newTestFlat(t, words, idx, nil)
	m.SetInitialSequence(seq)
	c := m.Entities()

	if c.Count() != 3 {
		t.Fatalf("Count() = %d, want 3:\n%s", c.Count(), c.Dump(idx.Name))
	}
	s, ok := c.At(1)
	if !ok || s.Start != 0 || !slices.Equal(s.Words, []string{"John", "Smith"}) || s.Label != per {
		t.Errorf("At(1) = %v, %v", s, ok)
	}
	if !slices.Equal(s.OtherOccurrences, []int{4}) {
		t.Errorf("OtherOccurrences = %v, want [4]", s.OtherOccurrences)
	}
	if got := m.SpanLabelName(s.Label); got != "PER" {
		t.Errorf("SpanLabelName(%d) = %q, want PER", s.Label, got)
	}
	if c.Slot(0) != c.Slot(1) || c.Slot(1) == c.Slot(2) {
		t.Error("positions of one span must share the slot and differ from neighbours")
	}
	if s, _ := c.At(3); s.Start != 2 || s.Len() != 2 {
		t.Errorf("At(3) = %v, want [2,4)", s)
	}
}

func TestFlatJoinScenario(t *testing.T) {
	idx := labels.FromNames("O", "LOC")
	loc := idx.MustID("LOC")
	words := []string{"Paris", "is", "in", "France", "."}
	seq := []int{loc, 0, 0, loc, 0}

	m := newTestFlat(t, words, idx, nil)
	m.SetInitialSequence(seq)
	if m.Entities().Count() != 2 {
		t.Fatalf("expected two singleton spans:\n%s", m.Entities().Dump(idx.Name))
	}

	seq[1] = loc
	m.UpdateSequenceElement(seq, 1, 0)
	assertRebuildEqual(t, m, seq)

	seq[2] = loc
	m.UpdateSequenceElement(seq, 2, 0)
	assertRebuildEqual(t, m, seq)

	c := m.Entities()
	if c.Count() != 1 {
		t.Fatalf("Count() = %d, want 1:\n%s", c.Count(), c.Dump(idx.Name))
	}
	s, _ := c.At(2)
	if s.Start != 0 || !slices.Equal(s.Words, []string{"Paris", "is", "in", "France"}) {
		t.Errorf("joined span = %v", s)
	}
	for pos := range 4 {
		if c.Slot(pos) != c.Slot(0) {
			t.Errorf("position %d does not share the joined span", pos)
		}
	}
	if _, ok := c.At(4); ok {
		t.Error("background position must not be covered")
	}
}

func TestFlatEdits(t *testing.T) {
	idx := labels.FromNames("O", "X", "Y")
	bg, x, y := 0, idx.MustID("X"), idx.MustID("Y")
	words := strings.Fields("a b a b c a b a")

	tests := []struct {
		name string
		seq  []int
		pos  int
		to   int
	}{
		{"join", []int{x, x, bg, x, bg, bg, bg, bg}, 2, x},
		{"join replacing singleton", []int{x, x, y, x, x, bg, bg, bg}, 2, x},
		{"split to background", []int{x, x, x, x, bg, bg, bg, bg}, 1, bg},
		{"split to other", []int{bg, x, x, x, bg, bg, bg, bg}, 2, y},
		{"prepend", []int{bg, bg, x, x, bg, bg, bg, bg}, 1, x},
		{"prepend shrinking left", []int{y, y, x, x, bg, bg, bg, bg}, 1, x},
		{"prepend at start", []int{y, x, x, bg, bg, bg, bg, bg}, 0, x},
		{"append", []int{x, x, bg, bg, bg, bg, bg, bg}, 2, x},
		{"append shrinking right", []int{x, x, y, y, y, bg, bg, bg}, 2, x},
		{"append at end", []int{bg, bg, bg, bg, bg, bg, x, y}, 7, x},
		{"singleton", []int{bg, bg, bg, bg, bg, bg, bg, bg}, 3, y},
		{"singleton from left run", []int{x, x, x, bg, bg, bg, bg, bg}, 2, y},
		{"singleton from right run", []int{bg, x, x, x, bg, bg, bg, bg}, 1, y},
		{"singleton replacing singleton", []int{bg, x, bg, bg, bg, bg, bg, bg}, 1, y},
		{"trim previous", []int{x, x, x, bg, bg, bg, bg, bg}, 2, bg},
		{"trim next", []int{bg, x, x, x, bg, bg, bg, bg}, 1, bg},
		{"vanish", []int{bg, bg, x, bg, bg, bg, bg, bg}, 2, bg},
		{"vanish at end", []int{bg, bg, bg, bg, bg, bg, bg, y}, 7, bg},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestFlat(t, words, idx, nil)
			seq := slices.Clone(tt.seq)
			m.SetInitialSequence(seq)

			old := seq[tt.pos]
			seq[tt.pos] = tt.to
			m.UpdateSequenceElement(seq, tt.pos, old)
			assertRebuildEqual(t, m, seq)

			// and back
			seq[tt.pos] = old
			m.UpdateSequenceElement(seq, tt.pos, tt.to)
			assertRebuildEqual(t, m, seq)
		})
	}
}

func TestFlatIdempotentUpdate(t *testing.T) {
	idx := labels.FromNames("O", "X")
	m := newTestFlat(t, strings.Fields("a b a b"), idx, nil)
	seq := []int{1, 1, 0, 1}
	m.SetInitialSequence(seq)
	before := m.Entities().Clone()

	for pos := range seq {
		m.UpdateSequenceElement(seq, pos, seq[pos])
	}
	if diff := m.Entities().Diff(before); diff != "" {
		t.Errorf("no-op updates changed cache: %s", diff)
	}
	if m.Entities().Slot(0) != before.Slot(0) {
		t.Error("no-op update replaced span")
	}
}

func TestFlatRandomEditsMatchRebuild(t *testing.T) {
	idx := labels.FromNames("O", "X", "Y", "Z")
	for round := range 40 {
		r := rand.New(rand.NewPCG(uint64(round), 7))
		n := 1 + r.IntN(24)
		m := newTestFlat(t, randomWords(r, n), idx, nil)
		seq := randomSequence(r, n, idx.Len())
		m.SetInitialSequence(seq)
		assertRebuildEqual(t, m, seq)

		for range 3 * n {
			pos := r.IntN(n)
			old := seq[pos]
			seq[pos] = r.IntN(idx.Len())
			m.UpdateSequenceElement(seq, pos, old)
			assertRebuildEqual(t, m, seq)
		}
	}
}

func TestFlatContractViolation(t *testing.T) {
	idx := labels.FromNames("O", "X", "Y")

	t.Run("update before initialization", func(t *testing.T) {
		m := newTestFlat(t, []string{"a"}, idx, nil)
		defer func() {
			if recover() == nil {
				t.Error("expected panic")
			}
		}()
		m.UpdateSequenceElement([]int{1}, 0, 0)
	})

	t.Run("score before initialization", func(t *testing.T) {
		m := newTestFlat(t, []string{"a", "b"}, idx, nil)
		defer func() {
			if recover() == nil {
				t.Error("expected panic")
			}
		}()
		m.ScoreOf([]int{1, 1})
	})

	t.Run("score of sequence with other length", func(t *testing.T) {
		m := newTestFlat(t, []string{"a", "b"}, idx, nil)
		m.SetInitialSequence([]int{1, 1})
		defer func() {
			if recover() == nil {
				t.Error("expected panic")
			}
		}()
		m.ScoreOf([]int{1})
	})

	t.Run("wrong old value", func(t *testing.T) {
		m := newTestFlat(t, []string{"a", "b", "c"}, idx, nil)
		seq := []int{1, 0, 0}
		m.SetInitialSequence(seq)
		seq[1] = 1
		defer func() {
			if recover() == nil {
				t.Error("expected panic")
			}
		}()
		// claims position 1 used to be Y, but no span covered it
		m.UpdateSequenceElement(seq, 1, 2)
	})

	t.Run("length mismatch", func(t *testing.T) {
		m := newTestFlat(t, []string{"a", "b"}, idx, nil)
		defer func() {
			if recover() == nil {
				t.Error("expected panic")
			}
		}()
		m.SetInitialSequence([]int{0})
	})
}
