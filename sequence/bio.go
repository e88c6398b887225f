package sequence

import (
	"fmt"

	"entc/entity"
	"entc/labels"
)

// bioEdit is a kind of single position change under the BIO scheme, named
// after the new and the old tag prefix.
type bioEdit int

const (
	bioNoChange bioEdit = iota
	bioOutsideFromBegin
	bioOutsideFromInside
	bioBeginFromOutside
	bioBeginFromBegin
	bioBeginFromInside
	bioInsideFromOutside
	bioInsideFromBegin
	bioInsideFromInside
)

var bioEditNames = [...]string{
	bioNoChange:          "no-change",
	bioOutsideFromBegin:  "O<-B",
	bioOutsideFromInside: "O<-I",
	bioBeginFromOutside:  "B<-O",
	bioBeginFromBegin:    "B<-B",
	bioBeginFromInside:   "B<-I",
	bioInsideFromOutside: "I<-O",
	bioInsideFromBegin:   "I<-B",
	bioInsideFromInside:  "I<-I",
}

func (e bioEdit) String() string {
	if e >= 0 && int(e) < len(bioEditNames) {
		return bioEditNames[e]
	}
	return fmt.Sprintf("bioEdit(%d)", int(e))
}

func classifyBIO(oldLabel, curLabel int, old, cur labels.Tag) bioEdit {
	if oldLabel == curLabel {
		return bioNoChange
	}
	// rows: new prefix, columns: old prefix
	table := [3][3]bioEdit{
		labels.Outside: {labels.Outside: bioNoChange, labels.Begin: bioOutsideFromBegin, labels.Inside: bioOutsideFromInside},
		labels.Begin:   {labels.Outside: bioBeginFromOutside, labels.Begin: bioBeginFromBegin, labels.Inside: bioBeginFromInside},
		labels.Inside:  {labels.Outside: bioInsideFromOutside, labels.Begin: bioInsideFromBegin, labels.Inside: bioInsideFromInside},
	}
	return table[cur.Prefix][old.Prefix]
}

// bioUpdater keeps spans of "B-TYPE I-TYPE*" runs. Span label is the entity
// type. "I-TYPE" not continuing a run of the same type belongs to no span.
type bioUpdater struct {
	cache *entity.Cache
	tags  *labels.BIO
}

func (u *bioUpdater) initialize(seq []int) {
	for i := range seq {
		if u.tags.Tag(seq[i]).Prefix == labels.Begin {
			u.extract(seq, i)
		}
	}
}

func (u *bioUpdater) update(seq []int, pos, oldLabel int) {
	old, cur := u.tags.Tag(oldLabel), u.tags.Tag(seq[pos])

	switch edit := classifyBIO(oldLabel, seq[pos], old, cur); edit {
	case bioNoChange:
	case bioOutsideFromBegin:
		u.discardStartingAt(pos, edit)
	case bioOutsideFromInside:
		u.truncateAt(pos)
	case bioBeginFromOutside:
		u.mustBeUncovered(pos, edit)
		u.extract(seq, pos)
	case bioBeginFromBegin:
		u.discardStartingAt(pos, edit)
		u.extract(seq, pos)
	case bioBeginFromInside:
		u.truncateAt(pos)
		u.extract(seq, pos)
	case bioInsideFromOutside:
		u.mustBeUncovered(pos, edit)
		u.mergeForward(seq, pos)
	case bioInsideFromBegin:
		u.discardStartingAt(pos, edit)
		u.mergeForward(seq, pos)
	case bioInsideFromInside:
		u.truncateAt(pos)
		u.mergeForward(seq, pos)
	default:
		panic(fmt.Sprintf("unhandled edit %s at %d", edit, pos))
	}
}

// scan returns end of the run of "I-TYPE" labels following start.
func (u *bioUpdater) scan(seq []int, start, typ int) int {
	end := start + 1
	for end < len(seq) {
		tag := u.tags.Tag(seq[end])
		if tag.Prefix != labels.Inside || tag.Type != typ {
			break
		}
		end++
	}
	return end
}

// extract creates span starting at "B-TYPE" label at start.
func (u *bioUpdater) extract(seq []int, start int) {
	tag := u.tags.Tag(seq[start])
	if tag.Prefix != labels.Begin {
		panic(fmt.Sprintf("cannot extract span at %d: label %d is not a begin tag", start, seq[start]))
	}
	u.cache.Create(start, u.scan(seq, start, tag.Type), tag.Type)
}

// discardStartingAt removes span which old begin tag at pos started.
func (u *bioUpdater) discardStartingAt(pos int, edit bioEdit) {
	slot := u.cache.Slot(pos)
	if slot < 0 {
		panic(fmt.Sprintf("%s: no span starts at position %d", edit, pos))
	}
	if s := u.cache.Span(slot); s.Start != pos {
		panic(fmt.Sprintf("%s: span %v must start at position %d", edit, s, pos))
	}
	u.cache.Discard(slot)
}

// truncateAt cuts span which old inside tag at pos continued, so it ends
// right before pos. Nothing to do if old tag did not continue any span.
func (u *bioUpdater) truncateAt(pos int) {
	slot := u.cache.Slot(pos)
	if slot < 0 {
		return
	}
	s := u.cache.Span(slot)
	if s.Start >= pos {
		panic(fmt.Sprintf("span %v covering inside tag at %d must start before it", s, pos))
	}
	u.cache.Resize(slot, s.Start, pos)
}

// mergeForward re-extracts span ending at pos-1 when inside tag at pos
// continues it.
func (u *bioUpdater) mergeForward(seq []int, pos int) {
	slot := u.cache.Slot(pos - 1)
	if slot < 0 {
		return
	}
	s := u.cache.Span(slot)
	typ := u.tags.Tag(seq[pos]).Type
	if s.End() != pos || s.Label != typ {
		return
	}
	u.cache.Resize(slot, s.Start, u.scan(seq, s.Start, typ))
}

func (u *bioUpdater) mustBeUncovered(pos int, edit bioEdit) {
	if slot := u.cache.Slot(pos); slot >= 0 {
		panic(fmt.Sprintf("%s: position %d previously outside is covered by %v", edit, pos, u.cache.Span(slot)))
	}
}
