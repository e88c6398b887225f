// Package state defines shared program state.
package state

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"entc/config"
	"entc/text"
)

type envKey struct{}

// LocalEnv is the state every command works with: configuration, logging and
// optional debug report.
type LocalEnv struct {
	Cfg *config.Config
	Rpt *config.Report
	Log *zap.Logger

	// output files may replace existing ones
	Overwrite bool

	splitter      *text.Splitter
	start         time.Time
	restoreStdLog func()
}

// EnvFromContext panics when context was not prepared with ContextWithEnv.
func EnvFromContext(ctx context.Context) *LocalEnv {
	env, ok := ctx.Value(envKey{}).(*LocalEnv)
	if !ok {
		panic("localenv not found in context")
	}
	return env
}

func ContextWithEnv(ctx context.Context) context.Context {
	return context.WithValue(ctx, envKey{}, newLocalEnv())
}

// Logger returns named logger for a command, usable before logging is
// configured.
func (e *LocalEnv) Logger(name string) *zap.Logger {
	if e.Log == nil {
		return zap.NewNop()
	}
	return e.Log.Named(name)
}

func (e *LocalEnv) Uptime() time.Duration {
	return time.Since(e.start)
}

// RedirectStdLog sends output of standard library logger to our log.
func (e *LocalEnv) RedirectStdLog() {
	if e.Log != nil {
		e.restoreStdLog = zap.RedirectStdLog(e.Log)
	}
}

func (e *LocalEnv) RestoreStdLog() {
	if e.Log != nil {
		_ = e.Log.Sync()
	}
	if e.restoreStdLog != nil {
		e.restoreStdLog()
		e.restoreStdLog = nil
	}
}

// Close flushes log and writes debug report, if any. Log must not be used
// for reporting errors after that.
func (e *LocalEnv) Close() (err error) {
	e.RestoreStdLog()
	if e.Rpt != nil {
		if er := e.Rpt.Close(); er != nil {
			err = multierr.Append(err, fmt.Errorf("unable to close debug report: %w", er))
		}
		e.Rpt = nil
	}
	return err
}
