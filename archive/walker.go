// Package archive builds Walk abstraction on top of "archive/zip".
package archive

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path"
	"slices"
	"strings"

	"github.com/h2non/filetype"
	"github.com/maruel/natural"
)

// WalkFunc is called for every file Walk visits. The archive argument is the
// path passed to Walk. If an error is returned, processing stops.
type WalkFunc func(archive string, file *zip.File) error

// Walk visits files in the archive located under prefix whose names end
// with one of the extensions (any file when none are given). Files are
// visited in natural order of their names. Entries with absolute paths or
// ".." components make Walk fail.
func Walk(archive, prefix string, exts []string, walkFn WalkFunc) error {
	r, err := zip.OpenReader(archive)
	if err != nil {
		return err
	}
	defer r.Close()

	var selected []*zip.File
	for _, f := range r.File {
		name := f.FileHeader.Name
		if !isSafePath(name) {
			return fmt.Errorf("zip entry %q: unsafe path (absolute or contains path traversal)", name)
		}
		if !f.FileInfo().IsDir() && strings.HasPrefix(name, prefix) && HasExt(name, exts) {
			selected = append(selected, f)
		}
	}
	slices.SortStableFunc(selected, func(a, b *zip.File) int {
		switch {
		case natural.Less(a.Name, b.Name):
			return -1
		case natural.Less(b.Name, a.Name):
			return 1
		default:
			return 0
		}
	})

	for _, f := range selected {
		if err := walkFn(archive, f); err != nil {
			return err
		}
	}
	return nil
}

// HasExt reports whether name has one of extensions ignoring case, empty
// list matches everything.
func HasExt(name string, exts []string) bool {
	if len(exts) == 0 {
		return true
	}
	ext := path.Ext(strings.ReplaceAll(name, `\`, "/"))
	return slices.ContainsFunc(exts, func(e string) bool {
		return strings.EqualFold(e, ext)
	})
}

// IsArchive checks file signature for zip archive.
func IsArchive(name string) (bool, error) {
	f, err := os.Open(name)
	if err != nil {
		return false, err
	}
	defer f.Close()

	// 261 bytes is enough for any signature filetype knows
	head := make([]byte, 261)
	n, err := io.ReadFull(f, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return false, err
	}
	return filetype.Is(head[:n], "zip"), nil
}

// isSafePath returns false for paths that could escape the extraction
// directory: absolute paths and those containing ".." components.
func isSafePath(name string) bool {
	if path.IsAbs(name) || strings.HasPrefix(name, `\`) {
		return false
	}
	return !slices.Contains(strings.Split(name, "/"), "..")
}
