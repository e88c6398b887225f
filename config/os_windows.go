//go:build windows

package config

import (
	"os"
	"strings"

	"golang.org/x/sys/windows"
	"golang.org/x/term"
)

// CleanFileName drops characters Windows does not allow in file names and
// leading dots.
func CleanFileName(in string) string {
	out := strings.Map(func(r rune) rune {
		if r < ' ' || strings.ContainsRune(`<>":/\|?*`+string(os.PathListSeparator), r) {
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

// EnableColorOutput reports whether stream is a console able to process
// VT100 sequences and switches that processing on.
func EnableColorOutput(stream *os.File) bool {
	if !term.IsTerminal(int(stream.Fd())) {
		return false
	}
	// virtual terminal processing appeared in Windows 10
	if v := windows.RtlGetVersion(); v.MajorVersion < 10 {
		return false
	}

	h := windows.Handle(stream.Fd())
	var mode uint32
	if err := windows.GetConsoleMode(h, &mode); err != nil {
		return false
	}
	return windows.SetConsoleMode(h, mode|windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING) == nil
}
