package process

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"entc/config"
	"entc/document"
	"entc/local"
	"entc/sampler"
	"entc/sequence"
	"entc/state"
)

// Sample resamples labels of every input with Gibbs sampler combining
// observed labels with configured prior and writes results in CoNLL format.
func Sample(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Logger("sample")

	src, dst, err := sourceAndDestination(cmd, log)
	if err != nil {
		return err
	}
	env.Overwrite = cmd.Bool("overwrite")

	log.Info("Processing starting", zap.String("source", src), zap.String("destination", dst),
		zap.Stringer("scheme", env.Cfg.Labels.Scheme), zap.Stringer("prior", env.Cfg.Prior.Kind))
	defer func(start time.Time) {
		log.Info("Processing completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	index := 0
	return walkSources(ctx, src, labelledExts, log, func(ctx context.Context, r io.Reader, name string) error {
		index++
		return sampleOne(ctx, r, name, dst, index, env, log)
	})
}

func sampleOne(ctx context.Context, r io.Reader, name, dst string, index int, env *state.LocalEnv, log *zap.Logger) (err error) {
	lab, err := document.ReadCoNLL(r)
	if err != nil {
		return err
	}
	if lab.Doc.Len() == 0 {
		log.Warn("Input has no tokens, skipping", zap.String("name", name))
		return nil
	}

	s, err := prepare(env.Cfg, lab, log)
	if err != nil {
		return err
	}
	table, err := local.FromLabels(s.seq, s.idx.Len(), env.Cfg.Local.Confidence)
	if err != nil {
		return fmt.Errorf("unable to create local model: %w", err)
	}

	res, err := sampler.New(sequence.NewFactored(table, s.model),
		sampler.WithConfig(&env.Cfg.Sampler),
		sampler.WithLogger(log.With(zap.String("name", name))),
	).Run(ctx, s.seq)
	if err != nil {
		return err
	}

	chosen := res.Final
	if env.Cfg.Output.Best {
		chosen = res.Best
	}

	columns := make([][]string, 0, 2)
	if env.Cfg.Output.Observed {
		observed := make([]string, len(lab.Labels))
		for i, l := range lab.Labels {
			observed[i] = l
			if len(l) == 0 {
				observed[i] = env.Cfg.Labels.Background
			}
		}
		columns = append(columns, observed)
	}
	columns = append(columns, s.names(chosen))

	out := outputPath(name, dst, Values{
		Index:  index,
		RunID:  res.RunID.String(),
		Scheme: env.Cfg.Labels.Scheme.String(),
	}, env)
	f, err := createOutput(out, env)
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Append(err, f.Close())
	}()
	if err := document.WriteCoNLL(f, s.doc, columns...); err != nil {
		return fmt.Errorf("unable to write %s: %w", out, err)
	}

	changed := 0
	for i := range chosen {
		if chosen[i] != s.seq[i] {
			changed++
		}
	}
	log.Info("Input processed", zap.String("name", name), zap.String("output", out), zap.Stringer("run", res.RunID),
		zap.Int("tokens", len(chosen)), zap.Int("changed", changed), zap.Float64("score", res.BestScore))

	if env.Rpt != nil {
		env.Rpt.StoreData(fmt.Sprintf("spans/%d-%s.txt", index, config.CleanFileName(filepath.Base(name))), []byte(s.describe(chosen)))
	}
	return nil
}
