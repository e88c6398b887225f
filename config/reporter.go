package config

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/maruel/natural"
	"go.uber.org/multierr"

	"entc/misc"
)

type ReporterConfig struct {
	Destination string `yaml:"destination" sanitize:"path_clean,assure_dir_exists_for_file" validate:"required,filepath"`
}

// Prepare creates empty report, when destination cannot be created report
// goes to temporary directory.
func (conf *ReporterConfig) Prepare() (*Report, error) {
	f, err := os.Create(conf.Destination)
	if err != nil {
		if f, err = os.CreateTemp("", misc.GetAppName()+"-report.*.zip"); err != nil {
			return nil, fmt.Errorf("unable to create report: %w", err)
		}
	}
	return &Report{entries: make(map[string]entry), file: f}, nil
}

// entry is either a path to file or directory or in-memory data.
type entry struct {
	original string
	actual   string
	stamp    time.Time
	data     []byte
}

// Report collects files and data which end up in debug archive when report
// is closed. All methods are no-op on nil report so callers do not have to
// check whether report was requested.
//
// Report is not safe for concurrent use.
type Report struct {
	entries map[string]entry
	file    *os.File
	// copies made by StoreCopy, removed on Close
	scratch []string
}

// Close writes the archive and removes temporary copies.
func (r *Report) Close() (err error) {
	if r == nil || r.file == nil {
		return nil
	}
	defer func() {
		for _, dir := range r.scratch {
			err = multierr.Append(err, os.RemoveAll(dir))
		}
		r.scratch = nil
	}()
	err = r.finalize()
	return multierr.Append(err, r.file.Close())
}

// Name returns absolute path of the archive.
func (r *Report) Name() string {
	if r == nil || r.file == nil {
		return ""
	}
	if n, err := filepath.Abs(r.file.Name()); err == nil {
		return n
	}
	return r.file.Name()
}

// Store remembers path to file or directory, its content is read when
// report is closed.
func (r *Report) Store(name, path string) {
	if r == nil {
		return
	}
	if old, exists := r.entries[name]; exists && old.original != path {
		panic(fmt.Sprintf("report entry %q already refers to %s, cannot store %s", name, old.original, path))
	}
	e := entry{original: path, actual: path}
	if abs, err := filepath.Abs(path); err == nil {
		e.actual = abs
	}
	r.entries[name] = e
}

// StoreData puts data into report under name.
func (r *Report) StoreData(name string, data []byte) {
	if r == nil {
		return
	}
	if _, exists := r.entries[name]; exists {
		panic(fmt.Sprintf("report entry %q already exists", name))
	}
	r.entries[name] = entry{data: data, stamp: time.Now()}
}

// StoreCopy copies file or directory as it is now. Repeated names get a
// time stamp suffix.
func (r *Report) StoreCopy(name, path string) error {
	if r == nil {
		return nil
	}

	e := entry{stamp: time.Now(), original: path}
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	info, err := os.Stat(abs)
	if err != nil {
		return err
	}
	if _, exists := r.entries[name]; exists {
		name = fmt.Sprintf("%s-%d", name, e.stamp.UnixNano())
	}

	dir, err := os.MkdirTemp("", misc.GetAppName()+"-r-")
	if err != nil {
		return err
	}
	r.scratch = append(r.scratch, dir)

	switch {
	case info.Mode().IsRegular():
		if e.actual, err = copyFile(dir, abs, info.ModTime()); err != nil {
			return err
		}
	case info.IsDir():
		if err := copyTree(dir, abs); err != nil {
			return err
		}
		e.actual = dir
	default:
		return fmt.Errorf("unable to copy %s: not a file or directory", path)
	}
	r.entries[name] = e
	return nil
}

func copyFile(dir, src string, modTime time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", err
	}
	dst := filepath.Join(dir, filepath.Base(src))

	in, err := os.Open(src)
	if err != nil {
		return "", err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(out, in); err != nil {
		return "", multierr.Append(err, out.Close())
	}
	if err := out.Close(); err != nil {
		return "", err
	}
	return dst, os.Chtimes(dst, modTime, modTime)
}

func copyTree(dir, src string) error {
	return walkFiles(src, func(path, rel string, info fs.FileInfo) error {
		_, err := copyFile(filepath.Join(dir, filepath.Dir(rel)), path, info.ModTime())
		return err
	})
}

// walkFiles calls fn for every regular file under root with path relative
// to root.
func walkFiles(root string, fn func(path, rel string, info fs.FileInfo) error) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		return fn(path, rel, info)
	})
}

// sortedNames returns entry names in natural order, so "run-2" goes before
// "run-10".
func (r *Report) sortedNames() []string {
	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	slices.SortFunc(names, func(a, b string) int {
		switch {
		case natural.Less(a, b):
			return -1
		case natural.Less(b, a):
			return 1
		default:
			return 0
		}
	})
	return names
}

func (r *Report) manifest(names []string) *bytes.Buffer {
	now := time.Now()
	buf := new(bytes.Buffer)
	for _, name := range names {
		e := r.entries[name]
		stamp := e.stamp
		if stamp.IsZero() {
			stamp = now
		}
		fmt.Fprintf(buf, "%s\t%s\t%s : %s\n", stamp.UTC().Format(time.UnixDate), name, e.original, e.actual)
	}
	return buf
}

func (r *Report) finalize() (err error) {
	arc := zip.NewWriter(r.file)
	defer func() {
		err = multierr.Append(err, arc.Close())
	}()

	names := r.sortedNames()
	if err := addFile(arc, "MANIFEST", time.Now(), r.manifest(names)); err != nil {
		return err
	}
	for _, name := range names {
		e := r.entries[name]
		if len(e.data) > 0 {
			if err := addFile(arc, name, e.stamp, bytes.NewReader(e.data)); err != nil {
				return err
			}
			continue
		}
		info, err := os.Stat(e.actual)
		if err != nil {
			// gone by now, manifest still lists it
			continue
		}
		if info.IsDir() {
			err = addTree(arc, name, e.actual)
		} else if info.Mode().IsRegular() {
			err = addPath(arc, name, e.actual, info.ModTime())
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func addFile(arc *zip.Writer, name string, t time.Time, src io.Reader) error {
	w, err := arc.CreateHeader(&zip.FileHeader{Name: name, Method: zip.Deflate, Modified: t})
	if err != nil {
		return err
	}
	_, err = io.Copy(w, src)
	return err
}

func addPath(arc *zip.Writer, name, path string, t time.Time) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return addFile(arc, name, t, f)
}

func addTree(arc *zip.Writer, name, dir string) error {
	return walkFiles(dir, func(path, rel string, info fs.FileInfo) error {
		return addPath(arc, filepath.ToSlash(filepath.Join(name, rel)), path, info.ModTime())
	})
}
