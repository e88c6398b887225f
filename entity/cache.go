package entity

import (
	"errors"
	"fmt"
	"iter"
	"slices"

	"entc/utils/debug"
)

const none = -1

// View is read-only access to the span index, it is what scoring functions
// get to see.
type View interface {
	// Len returns document length.
	Len() int
	// At returns span covering pos.
	At(pos int) (Span, bool)
	// All iterates over spans ordered by start position.
	All() iter.Seq[Span]
	// Text returns document spans are built over.
	Text() Text
}

// Cache maps every document position to the span owning it. Spans live in an
// arena and positions keep arena slot numbers, so all positions of one span
// observe the same slot and resizing a span in place is visible to every
// position referencing it.
//
// Cache is not safe for concurrent use.
type Cache struct {
	doc       Text
	arena     []Span
	live      []bool
	free      []int
	positions []int
}

// NewCache creates empty cache for a document.
func NewCache(doc Text) *Cache {
	c := &Cache{doc: doc, positions: make([]int, doc.Len())}
	c.Reset()
	return c
}

// Reset drops all spans.
func (c *Cache) Reset() {
	c.arena = c.arena[:0]
	c.live = c.live[:0]
	c.free = c.free[:0]
	for i := range c.positions {
		c.positions[i] = none
	}
}

func (c *Cache) Len() int {
	return len(c.positions)
}

func (c *Cache) Text() Text {
	return c.doc
}

// At returns span covering pos.
func (c *Cache) At(pos int) (Span, bool) {
	slot := c.Slot(pos)
	if slot == none {
		return Span{}, false
	}
	return c.arena[slot], true
}

// Slot returns arena slot of the span covering pos or -1. Two positions
// belong to the same span if and only if they have the same slot.
func (c *Cache) Slot(pos int) int {
	if pos < 0 || pos >= len(c.positions) {
		return none
	}
	return c.positions[pos]
}

// Span returns span kept in the arena slot.
func (c *Cache) Span(slot int) Span {
	c.mustBeLive(slot)
	return c.arena[slot]
}

// All iterates over spans ordered by start position.
func (c *Cache) All() iter.Seq[Span] {
	return func(yield func(Span) bool) {
		for pos := 0; pos < len(c.positions); {
			slot := c.positions[pos]
			if slot == none {
				pos++
				continue
			}
			s := c.arena[slot]
			if !yield(s) {
				return
			}
			pos = s.End()
		}
	}
}

// Count returns number of live spans.
func (c *Cache) Count() int {
	return len(c.arena) - len(c.free)
}

// Create builds span over document tokens [start, end) with freshly matched
// occurrences and makes all covered positions point to it.
func (c *Cache) Create(start, end, label int) int {
	return c.install(start, end, label, occurrences(c.doc, start, end-start))
}

// CreateExtending builds span over [start, end) where base is a live span
// with the same start and a shorter length. Occurrences are obtained by
// filtering occurrences of base rather than by scanning the whole document.
func (c *Cache) CreateExtending(base, end, label int) int {
	c.mustBeLive(base)
	b := c.arena[base]
	if end <= b.End() {
		panic(fmt.Sprintf("span %v cannot be extended to end at %d", b, end))
	}
	return c.install(b.Start, end, label, filterOccurrences(c.doc, b.OtherOccurrences, b.Start, end-b.Start))
}

// Resize changes token range of a live span to [start, end) keeping its
// label and recomputing occurrences. Positions which are no longer covered
// are cleared if they still point to the span.
func (c *Cache) Resize(slot, start, end int) {
	c.mustBeLive(slot)
	c.mustBeRange(start, end)

	old := c.arena[slot]
	for pos := old.Start; pos < old.End(); pos++ {
		if (pos < start || pos >= end) && c.positions[pos] == slot {
			c.positions[pos] = none
		}
	}
	c.arena[slot] = Span{
		Start:            start,
		Words:            c.words(start, end),
		Label:            old.Label,
		OtherOccurrences: occurrences(c.doc, start, end-start),
	}
	for pos := start; pos < end; pos++ {
		c.positions[pos] = slot
	}
}

// Discard removes span, positions still pointing to it are cleared.
func (c *Cache) Discard(slot int) {
	c.mustBeLive(slot)
	s := c.arena[slot]
	for pos := s.Start; pos < s.End(); pos++ {
		if c.positions[pos] == slot {
			c.positions[pos] = none
		}
	}
	c.arena[slot] = Span{}
	c.live[slot] = false
	c.free = append(c.free, slot)
}

// Equal reports whether both caches map every position to equal spans.
// Slot numbers are not compared.
func (c *Cache) Equal(o *Cache) bool {
	if len(c.positions) != len(o.positions) {
		return false
	}
	for pos := range c.positions {
		a, aok := c.At(pos)
		b, bok := o.At(pos)
		if aok != bok || (aok && !a.Equal(b)) {
			return false
		}
	}
	return true
}

// Diff describes first position where caches differ, empty string if they
// are equal.
func (c *Cache) Diff(o *Cache) string {
	if len(c.positions) != len(o.positions) {
		return fmt.Sprintf("length %d != %d", len(c.positions), len(o.positions))
	}
	for pos := range c.positions {
		a, aok := c.At(pos)
		b, bok := o.At(pos)
		switch {
		case aok != bok:
			return fmt.Sprintf("position %d: covered %v != %v (%v vs %v)", pos, aok, bok, a, b)
		case aok && !a.Equal(b):
			return fmt.Sprintf("position %d: %v != %v", pos, a, b)
		}
	}
	return ""
}

// Clone returns deep copy of the cache sharing the document.
func (c *Cache) Clone() *Cache {
	n := &Cache{
		doc:       c.doc,
		arena:     make([]Span, len(c.arena)),
		live:      slices.Clone(c.live),
		free:      slices.Clone(c.free),
		positions: slices.Clone(c.positions),
	}
	for i, s := range c.arena {
		n.arena[i] = s.Clone()
	}
	return n
}

// Check verifies structural consistency: every live span covers only
// positions pointing back to it, every covered position lies inside its
// span, span words are document tokens.
func (c *Cache) Check() error {
	var errs []error
	for pos, slot := range c.positions {
		if slot == none {
			continue
		}
		if slot >= len(c.arena) || !c.live[slot] {
			errs = append(errs, fmt.Errorf("position %d points to dead slot %d", pos, slot))
			continue
		}
		if !c.arena[slot].Contains(pos) {
			errs = append(errs, fmt.Errorf("position %d is outside of its span %v", pos, c.arena[slot]))
		}
	}
	for slot, s := range c.arena {
		if !c.live[slot] {
			continue
		}
		if s.Len() == 0 {
			errs = append(errs, fmt.Errorf("slot %d holds empty span", slot))
		}
		for pos := s.Start; pos < s.End(); pos++ {
			if c.positions[pos] != slot {
				errs = append(errs, fmt.Errorf("span %v does not own position %d", s, pos))
				break
			}
			if s.Words[pos-s.Start] != c.doc.WordAt(pos) {
				errs = append(errs, fmt.Errorf("span %v word mismatch at %d", s, pos))
				break
			}
		}
	}
	return errors.Join(errs...)
}

// Dump returns readable listing of all spans, labelName may be nil.
func (c *Cache) Dump(labelName func(int) string) string {
	tw := debug.NewTreeWriter()
	tw.Line(0, "Spans: %d over %d tokens", c.Count(), c.Len())
	for s := range c.All() {
		name := fmt.Sprintf("%d", s.Label)
		if labelName != nil {
			name = labelName(s.Label)
		}
		tw.Line(1, "[%d,%d) %s", s.Start, s.End(), name)
		tw.Words(2, "words", s.Words)
		tw.Ints(2, "others", s.OtherOccurrences)
	}
	return tw.String()
}

func (c *Cache) install(start, end, label int, others []int) int {
	c.mustBeRange(start, end)
	s := Span{
		Start:            start,
		Words:            c.words(start, end),
		Label:            label,
		OtherOccurrences: others,
	}
	var slot int
	if n := len(c.free); n > 0 {
		slot = c.free[n-1]
		c.free = c.free[:n-1]
		c.arena[slot] = s
		c.live[slot] = true
	} else {
		slot = len(c.arena)
		c.arena = append(c.arena, s)
		c.live = append(c.live, true)
	}
	for pos := start; pos < end; pos++ {
		c.positions[pos] = slot
	}
	return slot
}

func (c *Cache) words(start, end int) []string {
	words := make([]string, 0, end-start)
	for pos := start; pos < end; pos++ {
		words = append(words, c.doc.WordAt(pos))
	}
	return words
}

func (c *Cache) mustBeLive(slot int) {
	if slot < 0 || slot >= len(c.arena) || !c.live[slot] {
		panic(fmt.Sprintf("span slot %d is not in use", slot))
	}
}

func (c *Cache) mustBeRange(start, end int) {
	if start < 0 || end > len(c.positions) || start >= end {
		panic(fmt.Sprintf("invalid span range [%d,%d) for document of %d tokens", start, end, len(c.positions)))
	}
}
