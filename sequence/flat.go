package sequence

import (
	"fmt"

	"entc/entity"
)

// noLabel stands for the missing neighbour of the first and last positions.
const noLabel = -1

// flatEdit is a kind of single position change under the flat scheme.
type flatEdit int

const (
	flatNoChange      flatEdit = iota // label did not change
	flatJoin                          // left and right spans merge through pos
	flatSplit                         // pos breaks span it was inside of
	flatPrepend                       // pos joins span starting at pos+1
	flatAppend                        // pos joins span ending at pos-1
	flatSingleton                     // pos becomes one token span
	flatTrimPrevious                  // pos was last token of its span, now background
	flatTrimNext                      // pos was first token of its span, now background
	flatVanish                        // one token span at pos is gone
)

var flatEditNames = [...]string{
	flatNoChange:     "no-change",
	flatJoin:         "join",
	flatSplit:        "split",
	flatPrepend:      "prepend",
	flatAppend:       "append",
	flatSingleton:    "singleton",
	flatTrimPrevious: "trim-previous",
	flatTrimNext:     "trim-next",
	flatVanish:       "vanish",
}

func (e flatEdit) String() string {
	if e >= 0 && int(e) < len(flatEditNames) {
		return flatEditNames[e]
	}
	return fmt.Sprintf("flatEdit(%d)", int(e))
}

// classifyFlat decides what happened at a position given labels of its left
// neighbour, old and current label at the position and label of its right
// neighbour. Checks are done in priority order, first match wins.
func classifyFlat(background, left, old, cur, right int) flatEdit {
	switch {
	case cur == old:
		return flatNoChange
	case cur != background && left == cur && right == cur:
		return flatJoin
	case old != background && left == old && right == old:
		return flatSplit
	case cur != background && right == cur:
		return flatPrepend
	case cur != background && left == cur:
		return flatAppend
	case cur != background:
		return flatSingleton
	case old != background && left == old:
		return flatTrimPrevious
	case old != background && right == old:
		return flatTrimNext
	default:
		return flatVanish
	}
}

type flatUpdater struct {
	cache      *entity.Cache
	background int
}

func (u *flatUpdater) initialize(seq []int) {
	for i := 0; i < len(seq); {
		if seq[i] == u.background {
			i++
			continue
		}
		j := i + 1
		for j < len(seq) && seq[j] == seq[i] {
			j++
		}
		u.cache.Create(i, j, seq[i])
		i = j
	}
}

func (u *flatUpdater) update(seq []int, pos, old int) {
	left, right := noLabel, noLabel
	if pos > 0 {
		left = seq[pos-1]
	}
	if pos+1 < len(seq) {
		right = seq[pos+1]
	}
	cur := seq[pos]

	switch edit := classifyFlat(u.background, left, old, cur, right); edit {
	case flatNoChange:
	case flatJoin:
		u.join(pos, old, cur)
	case flatSplit:
		u.split(pos, cur)
	case flatPrepend:
		u.releaseOld(pos, old, left, noLabel)
		u.prepend(pos, cur)
	case flatAppend:
		u.releaseOld(pos, old, noLabel, right)
		u.append(pos, cur)
	case flatSingleton:
		u.releaseOld(pos, old, left, right)
		u.cache.Create(pos, pos+1, cur)
	case flatTrimPrevious:
		slot, s := u.spanAt(pos, edit)
		if s.End() != pos+1 || s.Start >= pos {
			panic(fmt.Sprintf("%s at %d: span %v must end at this position", edit, pos, s))
		}
		u.cache.Resize(slot, s.Start, pos)
	case flatTrimNext:
		slot, s := u.spanAt(pos, edit)
		if s.Start != pos || s.End() <= pos+1 {
			panic(fmt.Sprintf("%s at %d: span %v must start at this position", edit, pos, s))
		}
		u.cache.Resize(slot, pos+1, s.End())
	case flatVanish:
		slot, s := u.spanAt(pos, edit)
		if s.Len() != 1 {
			panic(fmt.Sprintf("%s at %d: span %v must be a single token", edit, pos, s))
		}
		u.cache.Discard(slot)
	default:
		panic(fmt.Sprintf("unhandled edit %s at %d", edit, pos))
	}
}

// join merges spans ending at pos-1 and starting at pos+1 through pos.
// Occurrences of the result are filtered from occurrences of the left span
// since every occurrence of the longer sequence starts with the left words.
func (u *flatUpdater) join(pos, old, cur int) {
	leftSlot, l := u.spanAt(pos-1, flatJoin)
	rightSlot, r := u.spanAt(pos+1, flatJoin)
	if l.End() != pos || r.Start != pos+1 || l.Label != cur || r.Label != cur {
		panic(fmt.Sprintf("%s at %d: spans %v and %v are not adjacent", flatJoin, pos, l, r))
	}
	if old != u.background {
		slot, s := u.spanAt(pos, flatJoin)
		if s.Len() != 1 {
			panic(fmt.Sprintf("%s at %d: span %v must be a single token", flatJoin, pos, s))
		}
		u.cache.Discard(slot)
	}
	end := r.End()
	u.cache.Discard(rightSlot)
	u.cache.CreateExtending(leftSlot, end, cur)
	u.cache.Discard(leftSlot)
}

// split cuts span around pos into two remainders, pos gets its own span
// unless it became background.
func (u *flatUpdater) split(pos, cur int) {
	slot, s := u.spanAt(pos, flatSplit)
	if s.Start >= pos || s.End() <= pos+1 {
		panic(fmt.Sprintf("%s at %d: span %v must extend on both sides", flatSplit, pos, s))
	}
	u.cache.Resize(slot, s.Start, pos)
	u.cache.Create(pos+1, s.End(), s.Label)
	if cur != u.background {
		u.cache.Create(pos, pos+1, cur)
	}
}

// prepend replaces span starting at pos+1 with one starting at pos.
func (u *flatUpdater) prepend(pos, cur int) {
	slot, r := u.spanAt(pos+1, flatPrepend)
	if r.Start != pos+1 || r.Label != cur {
		panic(fmt.Sprintf("%s at %d: span %v must start at the next position", flatPrepend, pos, r))
	}
	end := r.End()
	u.cache.Discard(slot)
	u.cache.Create(pos, end, cur)
}

// append extends span ending at pos-1 by one token.
func (u *flatUpdater) append(pos, cur int) {
	slot, l := u.spanAt(pos-1, flatAppend)
	if l.End() != pos || l.Label != cur {
		panic(fmt.Sprintf("%s at %d: span %v must end at the previous position", flatAppend, pos, l))
	}
	u.cache.Resize(slot, l.Start, pos+1)
}

// releaseOld detaches pos from the span it belonged to with old label.
// Span continuing to the left (left == old) loses its last token, span
// continuing to the right (right == old) loses its first token, single token
// span is discarded. Pass noLabel for a side which must not be considered.
func (u *flatUpdater) releaseOld(pos, old, left, right int) {
	if old == u.background {
		return
	}
	slot, s := u.spanAt(pos, flatSingleton)
	switch {
	case left == old:
		if s.End() != pos+1 {
			panic(fmt.Sprintf("span %v must end at %d", s, pos+1))
		}
		u.cache.Resize(slot, s.Start, pos)
	case right == old:
		if s.Start != pos {
			panic(fmt.Sprintf("span %v must start at %d", s, pos))
		}
		u.cache.Resize(slot, pos+1, s.End())
	default:
		if s.Len() != 1 {
			panic(fmt.Sprintf("span %v at %d must be a single token", s, pos))
		}
		u.cache.Discard(slot)
	}
}

func (u *flatUpdater) spanAt(pos int, edit flatEdit) (int, entity.Span) {
	slot := u.cache.Slot(pos)
	if slot < 0 {
		panic(fmt.Sprintf("%s: no span covers position %d", edit, pos))
	}
	return slot, u.cache.Span(slot)
}
