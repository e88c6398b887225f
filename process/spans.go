package process

import (
	"context"
	"fmt"
	"io"
	"os"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"entc/document"
	"entc/state"
)

// Spans prints spans found in labelled inputs together with their
// consistency violations.
func Spans(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Logger("spans")

	src, _, err := sourceAndDestination(cmd, log)
	if err != nil {
		return err
	}

	var out io.Writer = os.Stdout
	if w := cmd.Root().Writer; w != nil {
		out = w
	}
	return walkSources(ctx, src, labelledExts, log, func(_ context.Context, r io.Reader, name string) error {
		return spansOne(out, r, name, env, log)
	})
}

func spansOne(out io.Writer, r io.Reader, name string, env *state.LocalEnv, log *zap.Logger) error {
	lab, err := document.ReadCoNLL(r)
	if err != nil {
		return err
	}
	s, err := prepare(env.Cfg, lab, log)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "%s\n%s\n", name, s.describe(s.seq))
	return err
}
