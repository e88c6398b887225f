// Package document holds tokenized text the span cache is built over.
package document

import (
	"fmt"
	"slices"

	"golang.org/x/text/cases"

	"entc/text"
)

// Document is an immutable sequence of word tokens. Case folded forms are
// computed once so that repeated case-insensitive comparisons are cheap.
type Document struct {
	words  []string
	folded []string
	starts []int // positions where sentences start, always begins with 0
}

// New creates single sentence document.
func New(words []string) *Document {
	return NewWithSentences(words, nil)
}

// NewWithSentences creates document remembering sentence boundaries. Starts
// are positions of the first token of each sentence, they are sorted and
// deduplicated, 0 is always present for non empty document.
func NewWithSentences(words []string, starts []int) *Document {
	d := &Document{
		words:  slices.Clone(words),
		folded: make([]string, len(words)),
	}
	caser := cases.Fold()
	for i, w := range d.words {
		d.folded[i] = caser.String(w)
	}
	if len(words) > 0 {
		d.starts = append(d.starts, 0)
	}
	for _, s := range starts {
		if s > 0 && s < len(words) {
			d.starts = append(d.starts, s)
		}
	}
	slices.Sort(d.starts)
	d.starts = slices.Compact(d.starts)
	return d
}

// FromText tokenizes raw text into sentences and words. Splitter may be nil.
func FromText(in string, splitter *text.Splitter) *Document {
	var (
		words  []string
		starts []int
	)
	for sentence := range splitter.Sentences(in) {
		first := len(words)
		for token := range splitter.Tokens(sentence) {
			words = append(words, token)
		}
		if len(words) > first {
			starts = append(starts, first)
		}
	}
	return NewWithSentences(words, starts)
}

// Len returns number of tokens.
func (d *Document) Len() int {
	return len(d.words)
}

// WordAt returns token text at position.
func (d *Document) WordAt(pos int) string {
	if pos < 0 || pos >= len(d.words) {
		panic(fmt.Sprintf("document position %d is out of range [0, %d)", pos, len(d.words)))
	}
	return d.words[pos]
}

// FoldedAt returns case folded token text at position.
func (d *Document) FoldedAt(pos int) string {
	return d.folded[pos]
}

// Words returns copy of all tokens.
func (d *Document) Words() []string {
	return slices.Clone(d.words)
}

// SentenceStarts returns positions of the first token of each sentence.
func (d *Document) SentenceStarts() []int {
	return slices.Clone(d.starts)
}

// Fold returns case folded form of a word, the same form FoldedAt uses.
func Fold(word string) string {
	return cases.Fold().String(word)
}
