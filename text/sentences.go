// Package text splits raw text into sentences and word tokens.
package text

import (
	"iter"
	"os"
	"strings"
	"unicode"

	"github.com/neurosnap/sentences"
	"github.com/neurosnap/sentences/english"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

type Splitter struct {
	*sentences.DefaultSentenceTokenizer
}

func loadModel(path string) (*sentences.DefaultSentenceTokenizer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	model, err := sentences.LoadTraining(data)
	if err != nil {
		return nil, err
	}
	return sentences.NewSentenceTokenizer(model), nil
}

// NewSplitter returns sentence splitter for requested language. When
// modelPath is not empty punkt training data is loaded from there, otherwise
// built-in English model is used for English texts. nil is returned when no
// model is available - nil Splitter treats whole text as a single sentence.
func NewSplitter(lang language.Tag, modelPath string, log *zap.Logger) *Splitter {
	if len(modelPath) > 0 {
		tok, err := loadModel(modelPath)
		if err == nil {
			return &Splitter{tok}
		}
		log.Warn("Unable to load sentences tokenizer data", zap.String("path", modelPath), zap.Error(err))
	}

	base, confidence := lang.Base()
	if confidence == language.No {
		log.Warn("Unable to determine language base", zap.Stringer("tag", lang), zap.Stringer("base", base))
		return nil
	}
	if en, _ := language.English.Base(); base == en {
		tok, err := english.NewSentenceTokenizer(nil)
		if err != nil {
			log.Warn("Unable to load sentences tokenizer data", zap.Stringer("tag", lang), zap.Error(err))
			return nil
		}
		return &Splitter{tok}
	}

	log.Warn("Unable to find suitable sentence tokenizer model, turning off sentence splitting", zap.Stringer("language", lang))
	return nil
}

// Split returns slice of sentences with surrounding white space removed.
func (s *Splitter) Split(in string) []string {
	var result []string
	for sentence := range s.Sentences(in) {
		result = append(result, sentence)
	}
	return result
}

// Sentences returns an iterator over non-empty sentences.
func (s *Splitter) Sentences(in string) iter.Seq[string] {
	return func(yield func(string) bool) {
		if s == nil {
			// sentences tokenizer is off
			if trimmed := strings.TrimSpace(in); len(trimmed) > 0 {
				yield(trimmed)
			}
			return
		}
		for _, sentence := range s.Tokenize(in) {
			trimmed := strings.TrimSpace(sentence.Text)
			if len(trimmed) == 0 {
				continue
			}
			if !yield(trimmed) {
				return
			}
		}
	}
}

// Words returns an iterator over white space separated words, empty words
// are skipped.
func (*Splitter) Words(in string) iter.Seq[string] {
	return func(yield func(string) bool) {
		var word strings.Builder
		for _, sym := range in {
			if isSeparator(sym) {
				if word.Len() > 0 && !yield(word.String()) {
					return
				}
				word.Reset()
				continue
			}
			word.WriteRune(sym)
		}
		if word.Len() > 0 {
			yield(word.String())
		}
	}
}

// Tokens returns an iterator over word tokens with leading and trailing
// punctuation detached into separate single rune tokens, so "Paris," becomes
// "Paris" and ",".
func (s *Splitter) Tokens(in string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for word := range s.Words(in) {
			runes := []rune(word)
			head, tail := 0, len(runes)
			for head < tail && unicode.IsPunct(runes[head]) {
				if !yield(string(runes[head])) {
					return
				}
				head++
			}
			var trailing []rune
			for tail > head && unicode.IsPunct(runes[tail-1]) {
				trailing = append(trailing, runes[tail-1])
				tail--
			}
			if head < tail && !yield(string(runes[head:tail])) {
				return
			}
			for i := len(trailing) - 1; i >= 0; i-- {
				if !yield(string(trailing[i])) {
					return
				}
			}
		}
	}
}

func isSeparator(r rune) bool {
	if uint32(r) <= unicode.MaxLatin1 {
		switch r {
		case '\t', '\n', '\v', '\f', '\r', ' ', 0x85, 0xA0:
			return true
		}
		return false
	}
	return unicode.IsSpace(r)
}
