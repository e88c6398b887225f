// Package debug has helpers producing human readable dumps of internal
// structures.
package debug

import (
	"fmt"
	"strconv"
	"strings"
)

// TreeWriter accumulates indented lines, two spaces per level.
type TreeWriter struct {
	w *strings.Builder
}

func NewTreeWriter() *TreeWriter {
	return &TreeWriter{
		w: &strings.Builder{},
	}
}

func (tw *TreeWriter) String() string {
	return tw.w.String()
}

func (tw *TreeWriter) indent(depth int) {
	for range depth {
		tw.w.WriteString("  ")
	}
}

// Line writes formatted line at depth.
func (tw *TreeWriter) Line(depth int, format string, args ...any) {
	tw.indent(depth)
	fmt.Fprintf(tw.w, format, args...)
	tw.w.WriteByte('\n')
}

// Words writes "label: [w1 w2 ...]" with every word quoted, so leading or
// trailing blanks in tokens stay visible.
func (tw *TreeWriter) Words(depth int, label string, words []string) {
	tw.indent(depth)
	tw.w.WriteString(label)
	tw.w.WriteString(": [")
	for i, w := range words {
		if i > 0 {
			tw.w.WriteByte(' ')
		}
		tw.w.WriteString(strconv.Quote(w))
	}
	tw.w.WriteString("]\n")
}

// Ints writes "label: n1, n2, ..." and nothing when values are empty.
func (tw *TreeWriter) Ints(depth int, label string, values []int) {
	if len(values) == 0 {
		return
	}
	tw.indent(depth)
	tw.w.WriteString(label)
	tw.w.WriteString(": ")
	for i, v := range values {
		if i > 0 {
			tw.w.WriteString(", ")
		}
		tw.w.WriteString(strconv.Itoa(v))
	}
	tw.w.WriteByte('\n')
}
