package process

import (
	"context"
	"errors"
	"io"
	"time"
	"unicode/utf8"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"entc/document"
	"entc/state"
)

// Tokenize splits plain text inputs into sentences and words and writes them
// in CoNLL format with every token labelled as background, ready for manual
// or external labelling.
func Tokenize(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Logger("tokenize")

	src, dst, err := sourceAndDestination(cmd, log)
	if err != nil {
		return err
	}
	env.Overwrite = cmd.Bool("overwrite")

	log.Info("Processing starting", zap.String("source", src), zap.String("destination", dst), zap.String("language", env.Cfg.Tokenizer.Language))
	defer func(start time.Time) {
		log.Info("Processing completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	index := 0
	return walkSources(ctx, src, textExts, log, func(_ context.Context, r io.Reader, name string) error {
		index++
		return tokenizeOne(r, name, dst, index, env, log)
	})
}

func tokenizeOne(r io.Reader, name, dst string, index int, env *state.LocalEnv, log *zap.Logger) (err error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	if !utf8.Valid(data) {
		return errors.New("input is not valid UTF-8 text")
	}

	doc := document.FromText(string(data), env.Splitter())
	background := make([]string, doc.Len())
	for i := range background {
		background[i] = env.Cfg.Labels.Background
	}

	out := outputPath(name, dst, Values{Index: index, Scheme: env.Cfg.Labels.Scheme.String()}, env)
	f, err := createOutput(out, env)
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Append(err, f.Close())
	}()
	if err := document.WriteCoNLL(f, doc, background); err != nil {
		return err
	}
	log.Info("Input processed", zap.String("name", name), zap.String("output", out),
		zap.Int("tokens", doc.Len()), zap.Int("sentences", len(doc.SentenceStarts())))
	return nil
}
