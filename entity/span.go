// Package entity keeps the index of labelled token runs (spans) over a
// document together with the positions where the same surface text recurs.
package entity

import (
	"fmt"
	"slices"
	"strings"
)

// Span is a run of tokens sharing one label. Words are token texts as they
// appear in the document, OtherOccurrences are sorted start positions
// (excluding Start) where the same word sequence recurs case-insensitively.
//
// Spans handed out by Cache must be treated as read-only.
type Span struct {
	Start            int
	Words            []string
	Label            int
	OtherOccurrences []int
}

// End returns position one past the last token of the span.
func (s Span) End() int {
	return s.Start + len(s.Words)
}

// Len returns number of tokens.
func (s Span) Len() int {
	return len(s.Words)
}

// Contains reports whether pos is covered by the span.
func (s Span) Contains(pos int) bool {
	return pos >= s.Start && pos < s.End()
}

// Equal compares spans by value.
func (s Span) Equal(o Span) bool {
	return s.Start == o.Start &&
		s.Label == o.Label &&
		slices.Equal(s.Words, o.Words) &&
		slices.Equal(s.OtherOccurrences, o.OtherOccurrences)
}

// Clone returns deep copy of the span.
func (s Span) Clone() Span {
	return Span{
		Start:            s.Start,
		Words:            slices.Clone(s.Words),
		Label:            s.Label,
		OtherOccurrences: slices.Clone(s.OtherOccurrences),
	}
}

func (s Span) String() string {
	return fmt.Sprintf("[%d,%d) label=%d %q others=%v", s.Start, s.End(), s.Label, strings.Join(s.Words, " "), s.OtherOccurrences)
}
