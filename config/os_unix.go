//go:build !windows

package config

import (
	"os"
	"strings"

	"golang.org/x/term"
)

// CleanFileName drops path separators and leading dots so name cannot
// escape destination directory.
func CleanFileName(in string) string {
	out := strings.Map(func(r rune) rune {
		if r == os.PathSeparator || r == os.PathListSeparator || r == 0 {
			return -1
		}
		return r
	}, in)
	out = strings.TrimLeft(out, ".")
	if len(out) == 0 {
		return "_unnamed_"
	}
	return out
}

// EnableColorOutput reports whether stream is a terminal.
func EnableColorOutput(stream *os.File) bool {
	return term.IsTerminal(int(stream.Fd()))
}
