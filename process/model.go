package process

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"entc/common"
	"entc/config"
	"entc/document"
	"entc/labels"
	"entc/prior"
	"entc/sequence"
	"entc/utils/debug"
)

// setup is everything needed to sample or inspect one labelled input.
type setup struct {
	doc   *document.Document
	idx   *labels.Index
	seq   []int
	model *sequence.Model
}

func prepare(cfg *config.Config, lab *document.Labeled, log *zap.Logger) (*setup, error) {
	scorer, err := prior.New(&cfg.Prior)
	if err != nil {
		return nil, fmt.Errorf("unable to create prior: %w", err)
	}

	s := &setup{
		doc: lab.Doc,
		idx: labels.FromNames(cfg.Labels.Background, cfg.Labels.Names...),
	}
	s.seq = lab.Encode(s.idx)

	switch cfg.Labels.Scheme {
	case common.SchemeBio:
		if err := labels.CompleteBIO(s.idx); err != nil {
			return nil, fmt.Errorf("unable to complete BIO labels: %w", err)
		}
		if s.model, err = sequence.NewBIO(s.doc, s.idx, scorer, log); err != nil {
			return nil, err
		}
	case common.SchemeFlat:
		s.model = sequence.NewFlat(s.doc, s.idx, scorer, log)
	default:
		return nil, fmt.Errorf("unsupported labelling scheme %s", cfg.Labels.Scheme)
	}
	log.Debug("Labels prepared", zap.Stringer("scheme", cfg.Labels.Scheme), zap.Strings("labels", s.idx.Names()))
	return s, nil
}

// names returns label names for sequence.
func (s *setup) names(seq []int) []string {
	out := make([]string, len(seq))
	for i, id := range seq {
		out[i] = s.idx.Name(id)
	}
	return out
}

// describe lists spans of the sequence and their consistency violations.
// Model span cache is rebuilt for seq.
func (s *setup) describe(seq []int) string {
	s.model.SetInitialSequence(seq)
	entities := s.model.Entities()

	var b strings.Builder
	b.WriteString(entities.Dump(s.model.SpanLabelName))

	violations := prior.Violations(entities)
	tw := debug.NewTreeWriter()
	tw.Line(0, "Violations: %d", len(violations))
	for _, v := range violations {
		tw.Line(1, "%s mismatch: [%d,%d) %s %q recurs at %d", v.Kind, v.Span.Start, v.Span.End(), s.model.SpanLabelName(v.Span.Label), strings.Join(v.Span.Words, " "), v.At)
	}
	b.WriteString(tw.String())
	return b.String()
}
