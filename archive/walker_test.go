package archive

import (
	"archive/zip"
	"errors"
	"io"
	"os"
	"path/filepath"
	"slices"
	"testing"
)

type zipEntry struct {
	name    string
	content string
}

func makeZip(t *testing.T, entries ...zipEntry) string {
	t.Helper()
	zipPath := filepath.Join(t.TempDir(), "test.zip")
	zipFile, err := os.Create(zipPath)
	if err != nil {
		t.Fatalf("Failed to create zip file: %v", err)
	}
	defer zipFile.Close()

	w := zip.NewWriter(zipFile)
	for _, e := range entries {
		if e.content == "" && e.name[len(e.name)-1] == '/' {
			hdr := &zip.FileHeader{Name: e.name}
			hdr.SetMode(os.ModeDir | 0755)
			if _, err := w.CreateHeader(hdr); err != nil {
				t.Fatalf("Failed to create directory %s: %v", e.name, err)
			}
			continue
		}
		fw, err := w.Create(e.name)
		if err != nil {
			t.Fatalf("Failed to create file %s in zip: %v", e.name, err)
		}
		if _, err := io.WriteString(fw, e.content); err != nil {
			t.Fatalf("Failed to write content for %s: %v", e.name, err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Failed to finish zip: %v", err)
	}
	return zipPath
}

func visit(t *testing.T, zipPath, prefix string, exts ...string) []string {
	t.Helper()
	var visited []string
	err := Walk(zipPath, prefix, exts, func(archive string, file *zip.File) error {
		if archive != zipPath {
			t.Errorf("archive = %s, want %s", archive, zipPath)
		}
		visited = append(visited, file.Name)
		return nil
	})
	if err != nil {
		t.Fatalf("Walk() error = %v", err)
	}
	return visited
}

func TestWalk(t *testing.T) {
	zipPath := makeZip(t,
		zipEntry{"news/doc-10.conll", "x"},
		zipEntry{"news/doc-2.conll", "x"},
		zipEntry{"news/", ""},
		zipEntry{"news/readme.txt", "x"},
		zipEntry{"wiki/page-1.TSV", "x"},
		zipEntry{"notes.conll", "x"},
	)

	tests := []struct {
		name   string
		prefix string
		exts   []string
		want   []string
	}{
		{"everything", "", nil, []string{"news/doc-2.conll", "news/doc-10.conll", "news/readme.txt", "notes.conll", "wiki/page-1.TSV"}},
		{"prefix", "news/", nil, []string{"news/doc-2.conll", "news/doc-10.conll", "news/readme.txt"}},
		{"extensions", "", []string{".conll", ".tsv"}, []string{"news/doc-2.conll", "news/doc-10.conll", "notes.conll", "wiki/page-1.TSV"}},
		{"prefix and extension", "wiki/", []string{".conll"}, nil},
		{"no match", "missing/", nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := visit(t, zipPath, tt.prefix, tt.exts...); !slices.Equal(got, tt.want) {
				t.Errorf("visited %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWalk_EarlyTermination(t *testing.T) {
	zipPath := makeZip(t, zipEntry{"a.conll", "1"}, zipEntry{"b.conll", "2"}, zipEntry{"c.conll", "3"})

	visited := 0
	stopErr := errors.New("stop walking")
	err := Walk(zipPath, "", nil, func(archive string, file *zip.File) error {
		visited++
		if visited == 2 {
			return stopErr
		}
		return nil
	})
	if !errors.Is(err, stopErr) {
		t.Errorf("Walk() error = %v, want %v", err, stopErr)
	}
	if visited != 2 {
		t.Errorf("visited %d files, want 2", visited)
	}
}

func TestWalk_FileContent(t *testing.T) {
	zipPath := makeZip(t, zipEntry{"doc.conll", "Paris\tB-LOC\n"})

	err := Walk(zipPath, "", nil, func(archive string, file *zip.File) error {
		rc, err := file.Open()
		if err != nil {
			return err
		}
		defer rc.Close()
		data, err := io.ReadAll(rc)
		if err != nil {
			return err
		}
		if string(data) != "Paris\tB-LOC\n" {
			t.Errorf("content = %q", data)
		}
		return nil
	})
	if err != nil {
		t.Errorf("Walk() error = %v", err)
	}
}

func TestWalk_Errors(t *testing.T) {
	noop := func(string, *zip.File) error { return nil }

	if err := Walk("/nonexistent/file.zip", "", nil, noop); err == nil {
		t.Error("Expected error for nonexistent file")
	}

	invalid := filepath.Join(t.TempDir(), "invalid.zip")
	if err := os.WriteFile(invalid, []byte("not a zip file"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := Walk(invalid, "", nil, noop); err == nil {
		t.Error("Expected error for invalid zip file")
	}

	unsafe := makeZip(t, zipEntry{"ok.conll", "x"}, zipEntry{"../evil.conll", "x"})
	if err := Walk(unsafe, "", nil, noop); err == nil {
		t.Error("Expected error for path traversal entry")
	}
}

func TestHasExt(t *testing.T) {
	tests := []struct {
		name string
		exts []string
		want bool
	}{
		{"doc.conll", []string{".conll"}, true},
		{"DOC.CONLL", []string{".conll", ".tsv"}, true},
		{"dir.conll/doc.txt", []string{".conll"}, false},
		{"doc", []string{".conll"}, false},
		{"doc.txt", nil, true},
	}
	for _, tt := range tests {
		if got := HasExt(tt.name, tt.exts); got != tt.want {
			t.Errorf("HasExt(%q, %v) = %v, want %v", tt.name, tt.exts, got, tt.want)
		}
	}
}

func TestIsArchive(t *testing.T) {
	tmpDir := t.TempDir()

	text := filepath.Join(tmpDir, "doc.conll")
	if err := os.WriteFile(text, []byte("Paris\tLOC\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if ok, err := IsArchive(text); err != nil || ok {
		t.Errorf("IsArchive(text) = %v, %v, want false", ok, err)
	}

	empty := filepath.Join(tmpDir, "empty")
	if err := os.WriteFile(empty, nil, 0644); err != nil {
		t.Fatal(err)
	}
	if ok, err := IsArchive(empty); err != nil || ok {
		t.Errorf("IsArchive(empty) = %v, %v, want false", ok, err)
	}

	if ok, err := IsArchive(makeZip(t, zipEntry{"doc.conll", "x"})); err != nil || !ok {
		t.Errorf("IsArchive(zip) = %v, %v, want true", ok, err)
	}

	if _, err := IsArchive("/nonexistent/file.zip"); err == nil {
		t.Error("Expected error for non-existent file")
	}
}
