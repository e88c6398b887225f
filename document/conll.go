package document

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"entc/labels"
)

const docStartMarker = "-DOCSTART-"

// Labeled is a document with one label name per token.
type Labeled struct {
	Doc    *Document
	Labels []string
}

// ReadCoNLL reads white space separated columns, one token per line: first
// column is token text, last column is its label. Lines with a single column
// get empty label which is treated as background. Empty lines separate
// sentences, "-DOCSTART-" lines are ignored.
func ReadCoNLL(r io.Reader) (*Labeled, error) {
	var (
		words  []string
		names  []string
		starts []int
		line   int
	)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			starts = append(starts, len(words))
			continue
		}
		if fields[0] == docStartMarker {
			continue
		}
		label := ""
		if len(fields) > 1 {
			label = fields[len(fields)-1]
		}
		words = append(words, fields[0])
		names = append(names, label)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("unable to read CoNLL data at line %d: %w", line+1, err)
	}
	return &Labeled{Doc: NewWithSentences(words, starts), Labels: names}, nil
}

// Encode registers label names in idx and returns label ids. Empty names map
// to background.
func (l *Labeled) Encode(idx *labels.Index) []int {
	seq := make([]int, len(l.Labels))
	for i, name := range l.Labels {
		if len(name) == 0 {
			seq[i] = idx.Background()
			continue
		}
		seq[i] = idx.Add(name)
	}
	return seq
}

// WriteCoNLL writes document tokens one per line followed by tab separated
// columns, sentences are separated with empty lines. Every column must have
// a value for every token.
func WriteCoNLL(w io.Writer, doc *Document, columns ...[]string) error {
	for c, col := range columns {
		if len(col) != doc.Len() {
			return fmt.Errorf("column %d has %d values for %d tokens", c, len(col), doc.Len())
		}
	}

	bw := bufio.NewWriter(w)
	starts := doc.SentenceStarts()
	for pos := range doc.Len() {
		if pos > 0 && len(starts) > 0 && starts[0] == pos {
			bw.WriteByte('\n')
		}
		for len(starts) > 0 && starts[0] <= pos {
			starts = starts[1:]
		}
		bw.WriteString(doc.WordAt(pos))
		for _, col := range columns {
			bw.WriteByte('\t')
			bw.WriteString(col[pos])
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
