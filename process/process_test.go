package process

import (
	"archive/zip"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"entc/config"
	"entc/state"
)

// setupTestEnv creates a test environment with proper context and logger
func setupTestEnv(t *testing.T) (context.Context, *state.LocalEnv) {
	t.Helper()
	logger := zaptest.NewLogger(t, zaptest.WrapOptions(zap.AddCaller(), zap.AddCallerSkip(1)))
	cfg, err := config.LoadConfiguration("")
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	// single greedy sweep makes results predictable
	cfg.Sampler.Iterations = 1
	cfg.Sampler.InitialTemperature = 1e-9
	cfg.Sampler.Seed = 1

	ctx := state.ContextWithEnv(context.Background())
	env := state.EnvFromContext(ctx)
	env.Log = logger
	env.Cfg = cfg
	return ctx, env
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func writeZip(t *testing.T, path string, files map[string]string) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	w := zip.NewWriter(f)
	for name, content := range files {
		fw, err := w.Create(name)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := io.WriteString(fw, content); err != nil {
			t.Fatal(err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
}

func collect(t *testing.T, src string, exts []string) ([]string, error) {
	t.Helper()
	var names []string
	err := walkSources(context.Background(), src, exts, zaptest.NewLogger(t), func(_ context.Context, r io.Reader, name string) error {
		if _, err := io.ReadAll(r); err != nil {
			return err
		}
		names = append(names, filepath.ToSlash(name))
		return nil
	})
	slices.Sort(names)
	return names, err
}

func TestWalkSources(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.conll"), "Paris LOC\n")
	writeFile(t, filepath.Join(dir, "sub", "b.TSV"), "Paris LOC\n")
	writeFile(t, filepath.Join(dir, "notes.txt"), "Paris is nice.\n")
	writeZip(t, filepath.Join(dir, "sub", "arch.zip"), map[string]string{
		"inner/c.conll": "John PER\n",
		"inner/d.txt":   "text",
		"other/e.conll": "John PER\n",
	})

	tests := []struct {
		name string
		src  string
		exts []string
		want []string
	}{
		{"directory", dir, labelledExts, []string{"a.conll", "sub/b.TSV", "sub/inner/c.conll", "sub/other/e.conll"}},
		{"directory text", dir, textExts, []string{"notes.txt", "sub/inner/d.txt"}},
		{"single file", filepath.Join(dir, "a.conll"), labelledExts, []string{"a.conll"}},
		{"archive", filepath.Join(dir, "sub", "arch.zip"), labelledExts, []string{"inner/c.conll", "other/e.conll"}},
		{"path in archive", filepath.Join(dir, "sub", "arch.zip", "inner"), labelledExts, []string{"inner/c.conll"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := collect(t, tt.src, tt.exts)
			if err != nil {
				t.Fatalf("walkSources() error = %v", err)
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("walkSources() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWalkSourcesErrors(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.conll"), "Paris LOC\n")
	writeFile(t, filepath.Join(dir, "notes.txt"), "text")

	tests := []struct {
		name string
		src  string
		want string
	}{
		{"missing", filepath.Join(dir, "missing.conll"), "input source was not found"},
		{"directory with tail", filepath.Join(dir, "nope", "deeper"), "input source was not found"},
		{"file with tail", filepath.Join(dir, "a.conll", "inner"), "input source was not found"},
		{"unknown extension", filepath.Join(dir, "notes.txt"), "input was not recognized"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := collect(t, tt.src, labelledExts)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("walkSources() error = %v, want %q", err, tt.want)
			}
		})
	}
}

func TestWalkSourcesKeepsGoing(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.conll"), "")
	writeFile(t, filepath.Join(dir, "b.conll"), "")
	writeFile(t, filepath.Join(dir, "c.conll"), "")

	var seen []string
	failure := errors.New("broken input")
	err := walkSources(context.Background(), dir, labelledExts, zaptest.NewLogger(t), func(_ context.Context, _ io.Reader, name string) error {
		seen = append(seen, name)
		if name == "b.conll" {
			return failure
		}
		return nil
	})
	if !errors.Is(err, failure) {
		t.Errorf("walkSources() error = %v, want %v", err, failure)
	}
	if len(seen) != 3 {
		t.Errorf("handled %q, want all three inputs", seen)
	}
}

func TestWalkSourcesCancelled(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.conll"), "")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := walkSources(ctx, dir, labelledExts, zaptest.NewLogger(t), func(context.Context, io.Reader, string) error {
		t.Error("handler must not be called")
		return nil
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("walkSources() error = %v, want context.Canceled", err)
	}
}

func TestSourceAndDestination(t *testing.T) {
	var src, dst string
	run := func(args ...string) error {
		cmd := &cli.Command{
			Name: "test",
			Action: func(_ context.Context, cmd *cli.Command) (err error) {
				src, dst, err = sourceAndDestination(cmd, zaptest.NewLogger(t))
				return err
			},
		}
		return cmd.Run(context.Background(), append([]string{"test"}, args...))
	}

	if err := run("in", "out", "extra"); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !filepath.IsAbs(src) || filepath.Base(src) != "in" {
		t.Errorf("source = %q", src)
	}
	if !filepath.IsAbs(dst) || filepath.Base(dst) != "out" {
		t.Errorf("destination = %q", dst)
	}

	if err := run("in"); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	wd, _ := os.Getwd()
	if dst != wd {
		t.Errorf("default destination = %q, want %q", dst, wd)
	}

	if err := run(); err == nil {
		t.Error("Run() without source must fail")
	}
}
