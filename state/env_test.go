package state

import (
	"context"
	"log"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"

	"entc/config"
)

func TestContextWithEnv(t *testing.T) {
	ctx := ContextWithEnv(context.Background())
	env := EnvFromContext(ctx)
	if env == nil {
		t.Fatal("EnvFromContext() returned nil")
	}
	if env.start.IsZero() {
		t.Error("start time is not set")
	}
	if EnvFromContext(ctx) != env {
		t.Error("context must carry single environment")
	}
}

func TestEnvFromContextPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("EnvFromContext() on plain context must panic")
		}
	}()
	EnvFromContext(context.Background())
}

func TestUptime(t *testing.T) {
	env := &LocalEnv{start: time.Now().Add(-time.Minute)}
	if up := env.Uptime(); up < time.Minute || up > 2*time.Minute {
		t.Errorf("Uptime() = %v", up)
	}
}

func TestLogger(t *testing.T) {
	env := &LocalEnv{}
	if env.Logger("sample") == nil {
		t.Fatal("Logger() without configured log returned nil")
	}

	core, logs := observer.New(zap.DebugLevel)
	env.Log = zap.New(core)
	env.Logger("sample").Info("hello")
	if entries := logs.All(); len(entries) != 1 || entries[0].LoggerName != "sample" {
		t.Errorf("logged %+v", entries)
	}
}

func TestStdLogRedirection(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	env := &LocalEnv{Log: zap.New(core)}

	for range 2 {
		env.RedirectStdLog()
		log.Print("from standard logger")
		env.RestoreStdLog()
		if env.restoreStdLog != nil {
			t.Error("restore function must be dropped after use")
		}
	}
	if n := logs.FilterMessage("from standard logger").Len(); n != 2 {
		t.Errorf("captured %d standard log messages, want 2", n)
	}

	// no logger, nothing to redirect
	env = &LocalEnv{}
	env.RedirectStdLog()
	if env.restoreStdLog != nil {
		t.Error("redirect without logger must do nothing")
	}
	env.RestoreStdLog()
}

func TestClose(t *testing.T) {
	conf := config.ReporterConfig{Destination: filepath.Join(t.TempDir(), "report.zip")}
	rpt, err := conf.Prepare()
	if err != nil {
		t.Fatal(err)
	}
	env := &LocalEnv{
		Log: zaptest.NewLogger(t),
		Rpt: rpt,
	}
	env.RedirectStdLog()

	if err := env.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if env.Rpt != nil || env.restoreStdLog != nil {
		t.Error("Close() must release report and restore standard logger")
	}
	if err := env.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
}

func TestSplitter(t *testing.T) {
	tests := []struct {
		name string
		cfg  *config.Config
	}{
		{"english", &config.Config{Tokenizer: config.TokenizerConfig{Language: "en"}}},
		{"bad language falls back", &config.Config{Tokenizer: config.TokenizerConfig{Language: "not a tag!"}}},
		{"no configuration", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := &LocalEnv{Cfg: tt.cfg, Log: zaptest.NewLogger(t)}

			s := env.Splitter()
			if s == nil {
				t.Fatal("Splitter() returned nil")
			}
			if env.Splitter() != s {
				t.Error("Splitter() must be created once")
			}

			var words []string
			for sentence := range s.Sentences("Paris is big. John lives there.") {
				for w := range s.Tokens(sentence) {
					words = append(words, w)
				}
			}
			if len(words) != 8 {
				t.Errorf("tokens = %q, want 8", words)
			}
		})
	}
}
