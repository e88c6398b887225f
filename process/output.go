package process

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"text/template"

	sprig "github.com/go-task/slim-sprig/v3"
	"github.com/gosimple/slug"
	"go.uber.org/zap"

	"entc/config"
	"entc/state"
)

const outputExt = ".conll"

// Values holds variables available for output name template expansion.
type Values struct {
	Context string
	// Source file name without directory and extension
	Name string
	// Sequential number of the input in this run, starting with 1
	Index  int
	RunID  string
	Scheme string
}

func expandTemplate(name config.TemplateFieldName, field string, values Values) (string, error) {
	tmpl, err := template.New(string(name)).Funcs(sprig.FuncMap()).Parse(field)
	if err != nil {
		return "", fmt.Errorf("unable to parse template field %s: %w", name, err)
	}
	values.Context = string(name)

	buf := new(bytes.Buffer)
	if err := tmpl.Execute(buf, values); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// outputPath builds output file path for input src (relative to the source
// root) keeping its directory under dst. When name template is configured its
// expansion may add subdirectories.
func outputPath(src, dst string, values Values, env *state.LocalEnv) string {
	outDir := filepath.Join(dst, filepath.Dir(src))
	values.Name = strings.TrimSuffix(filepath.Base(src), filepath.Ext(src))
	defaultFile := cleanPathSegment(values.Name, env) + outputExt

	if env.Cfg.Output.NameTemplate == "" {
		return filepath.Join(outDir, defaultFile)
	}

	expanded, err := expandTemplate(config.OutputNameTemplateFieldName, env.Cfg.Output.NameTemplate, values)
	if err != nil {
		env.Log.Warn("Unable to prepare output filename", zap.Error(err))
		return filepath.Join(outDir, defaultFile)
	}

	segments := splitPath(filepath.FromSlash(expanded))
	if len(segments) == 0 {
		return filepath.Join(outDir, defaultFile)
	}
	parts := make([]string, 0, len(segments)+1)
	parts = append(parts, outDir)
	for _, segment := range segments {
		parts = append(parts, cleanPathSegment(segment, env))
	}
	parts[len(parts)-1] += outputExt
	return filepath.Join(parts...)
}

func splitPath(path string) []string {
	segments := make([]string, 0, 8)
	for _, s := range strings.Split(path, string(os.PathSeparator)) {
		if s = strings.TrimSpace(s); s != "" && s != "." && s != ".." {
			segments = append(segments, s)
		}
	}
	return slices.Clip(segments)
}

func cleanPathSegment(segment string, env *state.LocalEnv) string {
	if env.Cfg.Output.Slug {
		segment = slug.Make(segment)
	}
	return config.CleanFileName(segment)
}

// createOutput creates output file with all necessary directories. Existing
// files are only replaced when overwrite was requested.
func createOutput(path string, env *state.LocalEnv) (*os.File, error) {
	if _, err := os.Stat(path); err == nil {
		if !env.Overwrite {
			return nil, fmt.Errorf("output file already exists: %s", path)
		}
		env.Log.Warn("Overwriting existing file", zap.String("file", path))
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("unable to check output file: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("unable to create output directory: %w", err)
	}
	return os.Create(path)
}
