// Package process implements program commands working on labelled and raw
// text inputs.
package process

import (
	"archive/zip"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"entc/archive"
)

var (
	labelledExts = []string{".conll", ".tsv"}
	textExts     = []string{".txt"}
)

// handler processes single input. Name is input path relative to the source,
// or base file name when source is a file.
type handler func(ctx context.Context, r io.Reader, name string) error

// sources finds inputs and calls handler for each. Failures of individual
// inputs are logged and collected, they do not stop processing.
type sources struct {
	exts []string
	log  *zap.Logger
	fn   handler
	errs error
	seen int
}

func (s *sources) handle(ctx context.Context, r io.Reader, name, origin string) {
	s.seen++
	if err := s.fn(ctx, r, name); err != nil {
		if errors.Is(err, context.Canceled) {
			s.errs = multierr.Append(s.errs, err)
			return
		}
		s.log.Error("Unable to process input", zap.String("source", origin), zap.String("name", name), zap.Error(err))
		s.errs = multierr.Append(s.errs, fmt.Errorf("%s: %w", name, err))
	}
}

// walkSources resolves src which may be a file, a directory or a path to zip
// archive optionally followed by path inside the archive
// ("archive.zip/inner/dir").
func walkSources(ctx context.Context, src string, exts []string, log *zap.Logger, fn handler) error {
	s := &sources{exts: exts, log: log, fn: fn}

	var head, tail string
	for head = src; len(head) != 0; head, tail = filepath.Split(head) {
		if err := ctx.Err(); err != nil {
			return err
		}
		head = strings.TrimSuffix(head, string(filepath.Separator))

		fi, err := os.Stat(head)
		if err != nil {
			// does not exist, probably path inside archive
			continue
		}

		if fi.IsDir() {
			if len(tail) != 0 {
				return fmt.Errorf("input source was not found (%s) => (%s)", head, strings.TrimPrefix(src, head))
			}
			if err := s.walkDir(ctx, head); err != nil {
				return multierr.Append(err, s.errs)
			}
			break
		}
		if !fi.Mode().IsRegular() {
			return fmt.Errorf("unexpected path mode for (%s) => (%s)", head, strings.TrimPrefix(src, head))
		}

		isZip, err := archive.IsArchive(head)
		if err != nil {
			return fmt.Errorf("unable to check archive type: %w", err)
		}
		if isZip {
			inner := filepath.ToSlash(strings.TrimPrefix(strings.TrimPrefix(src, head), string(filepath.Separator)))
			if err := s.walkArchive(ctx, head, inner, ""); err != nil {
				return multierr.Append(fmt.Errorf("unable to process archive: %w", err), s.errs)
			}
			break
		}
		if len(tail) != 0 {
			return fmt.Errorf("input source was not found (%s) => (%s)", head, strings.TrimPrefix(src, head))
		}
		if !archive.HasExt(head, s.exts) {
			return fmt.Errorf("input was not recognized, expected one of %v (%s)", s.exts, head)
		}

		f, err := os.Open(head)
		if err != nil {
			return err
		}
		defer f.Close()
		s.handle(ctx, f, filepath.Base(head), head)
		break
	}
	if len(head) == 0 {
		return fmt.Errorf("input source was not found (%s)", src)
	}
	if s.seen == 0 {
		log.Warn("Nothing to process", zap.String("source", src), zap.Strings("extensions", exts))
	}
	return s.errs
}

func (s *sources) walkDir(ctx context.Context, dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err != nil {
			s.log.Warn("Skipping path", zap.String("path", path), zap.Error(err))
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		rel := strings.TrimPrefix(strings.TrimPrefix(path, dir), string(filepath.Separator))

		if archive.HasExt(path, s.exts) {
			f, err := os.Open(path)
			if err != nil {
				s.log.Error("Unable to open file", zap.String("file", path), zap.Error(err))
				s.errs = multierr.Append(s.errs, err)
				return nil
			}
			defer f.Close()
			s.handle(ctx, f, rel, path)
			return nil
		}

		isZip, err := archive.IsArchive(path)
		if err != nil {
			s.log.Warn("Skipping file", zap.String("file", path), zap.Error(err))
			return nil
		}
		if !isZip {
			s.log.Debug("Skipping file, not recognized as input or archive", zap.String("file", path))
			return nil
		}
		if err := s.walkArchive(ctx, path, "", filepath.Dir(rel)); err != nil {
			s.log.Error("Unable to process archive", zap.String("file", path), zap.Error(err))
			s.errs = multierr.Append(s.errs, err)
		}
		return nil
	})
}

// walkArchive processes inputs inside archive under prefix, names are put
// under pathOut.
func (s *sources) walkArchive(ctx context.Context, path, prefix, pathOut string) error {
	return archive.Walk(path, prefix, s.exts, func(arc string, f *zip.File) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		r, err := f.Open()
		if err != nil {
			s.log.Error("Unable to open file in archive", zap.String("archive", arc), zap.String("file", f.Name), zap.Error(err))
			s.errs = multierr.Append(s.errs, err)
			return nil
		}
		defer r.Close()
		s.handle(ctx, r, filepath.Join(pathOut, filepath.FromSlash(f.Name)), arc)
		return nil
	})
}

// sourceAndDestination takes command arguments, destination defaults to
// current directory.
func sourceAndDestination(cmd *cli.Command, log *zap.Logger) (string, string, error) {
	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return "", "", errors.New("no input source has been specified")
	}
	src, err := filepath.Abs(src)
	if err != nil {
		return "", "", err
	}

	dst := cmd.Args().Get(1)
	if len(dst) == 0 {
		if dst, err = os.Getwd(); err != nil {
			return "", "", fmt.Errorf("unable to get working directory: %w", err)
		}
	}
	if dst, err = filepath.Abs(dst); err != nil {
		return "", "", err
	}
	if cmd.Args().Len() > 2 {
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}
	return src, dst, nil
}
