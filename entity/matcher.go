package entity

import (
	"golang.org/x/text/cases"
)

// Text is the document representation spans are built over.
type Text interface {
	Len() int
	WordAt(pos int) string
	// FoldedAt returns case folded form of the token at pos.
	FoldedAt(pos int) string
}

// Match returns all document positions other than exclude where words
// recur, comparing case-insensitively. Result is sorted.
func Match(doc Text, words []string, exclude int) []int {
	if len(words) == 0 {
		return nil
	}
	caser := cases.Fold()
	pattern := make([]string, len(words))
	for i, w := range words {
		pattern[i] = caser.String(w)
	}
	return matchFolded(doc, pattern, exclude)
}

// occurrences is Match for a span whose words are the document tokens at
// [start, start+length), folded forms are taken from the document directly.
func occurrences(doc Text, start, length int) []int {
	pattern := make([]string, length)
	for k := range length {
		pattern[k] = doc.FoldedAt(start + k)
	}
	return matchFolded(doc, pattern, start)
}

func matchFolded(doc Text, pattern []string, exclude int) []int {
	var found []int
	last := doc.Len() - len(pattern)
	for i := 0; i <= last; i++ {
		if i == exclude || doc.FoldedAt(i) != pattern[0] {
			continue
		}
		if matchesAt(doc, pattern, i) {
			found = append(found, i)
		}
	}
	return found
}

func matchesAt(doc Text, pattern []string, pos int) bool {
	if pos < 0 || pos+len(pattern) > doc.Len() {
		return false
	}
	for k, w := range pattern {
		if doc.FoldedAt(pos+k) != w {
			return false
		}
	}
	return true
}

// filterOccurrences keeps candidates where document tokens at
// [start, start+length) recur. Used when a span grows to the right: every
// occurrence of the longer sequence is also an occurrence of its prefix.
func filterOccurrences(doc Text, candidates []int, start, length int) []int {
	pattern := make([]string, length)
	for k := range length {
		pattern[k] = doc.FoldedAt(start + k)
	}
	var kept []int
	for _, pos := range candidates {
		if matchesAt(doc, pattern, pos) {
			kept = append(kept, pos)
		}
	}
	return kept
}
