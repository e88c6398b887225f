// Package sequence implements listening sequence models: models which keep
// derived state (the entity span cache) in sync with a label sequence edited
// one position at a time by a sampler.
package sequence

import (
	"fmt"
	"math"
	"slices"

	"go.uber.org/zap"

	"entc/entity"
	"entc/labels"
)

// Unbounded is reported as window size by models where a label anywhere in
// the sequence may influence the score of any position.
const Unbounded = math.MaxInt

// SequenceModel scores complete label sequences.
type SequenceModel interface {
	// Length returns number of positions in the sequence.
	Length() int
	// LeftWindow and RightWindow report how far a position's score depends on
	// its neighbours, Unbounded for non-Markovian models.
	LeftWindow() int
	RightWindow() int
	// PossibleValues returns label ids allowed at position.
	PossibleValues(pos int) []int
	// ScoresOf returns score of the whole sequence for every label at pos.
	// Sequence must be left unchanged.
	ScoresOf(seq []int, pos int) []float64
	// ScoreOf returns score (normally log-probability) of the sequence.
	ScoreOf(seq []int) float64
}

// ListeningSequenceModel is a SequenceModel which must be told about every
// change made to the sequence it scores.
type ListeningSequenceModel interface {
	SequenceModel
	// SetInitialSequence must be called once before any other operation.
	SetInitialSequence(seq []int)
	// UpdateSequenceElement is called after seq[pos] was changed from oldVal.
	UpdateSequenceElement(seq []int, pos, oldVal int)
}

// Scorer evaluates complete sequence given the span cache kept in sync with
// it by Model.
type Scorer interface {
	ScoreOf(seq []int, entities entity.View) float64
}

// ScorerFunc adapts function to Scorer.
type ScorerFunc func(seq []int, entities entity.View) float64

func (f ScorerFunc) ScoreOf(seq []int, entities entity.View) float64 {
	return f(seq, entities)
}

// updater is scheme specific maintenance of the span cache.
type updater interface {
	initialize(seq []int)
	update(seq []int, pos, oldVal int)
}

// Model is the listening sequence model backed by an entity span cache.
// Scoring is delegated to Scorer which sees the cache through entity.View.
//
// Model is not safe for concurrent use and must not be re-entered from the
// Scorer.
type Model struct {
	cache      *entity.Cache
	upd        updater
	scorer     Scorer
	numClasses int
	values     []int
	spanName   func(int) string
	ready      bool
	log        *zap.Logger
}

func newModel(doc entity.Text, numClasses int, scorer Scorer, log *zap.Logger) *Model {
	if log == nil {
		log = zap.NewNop()
	}
	if scorer == nil {
		panic("sequence model requires scorer")
	}
	values := make([]int, numClasses)
	for i := range values {
		values[i] = i
	}
	return &Model{
		cache:      entity.NewCache(doc),
		scorer:     scorer,
		numClasses: numClasses,
		values:     values,
		log:        log,
	}
}

// NewFlat creates model where span is a maximal run of equal non-background
// labels.
func NewFlat(doc entity.Text, idx *labels.Index, scorer Scorer, log *zap.Logger) *Model {
	m := newModel(doc, idx.Len(), scorer, log)
	m.upd = &flatUpdater{cache: m.cache, background: idx.Background()}
	m.spanName = idx.Name
	return m
}

// NewBIO creates model where span starts at "B-TYPE" label and continues
// over following "I-TYPE" labels. Span labels are entity type ids as decoded
// by labels.BIO.
func NewBIO(doc entity.Text, idx *labels.Index, scorer Scorer, log *zap.Logger) (*Model, error) {
	tags, err := labels.NewBIO(idx)
	if err != nil {
		return nil, fmt.Errorf("unable to create BIO model: %w", err)
	}
	m := newModel(doc, idx.Len(), scorer, log)
	m.upd = &bioUpdater{cache: m.cache, tags: tags}
	m.spanName = tags.TypeName
	return m, nil
}

// SetInitialSequence rebuilds span cache from scratch.
func (m *Model) SetInitialSequence(seq []int) {
	m.mustMatch(seq)
	m.cache.Reset()
	m.upd.initialize(seq)
	m.ready = true
	m.log.Debug("Span cache initialized", zap.Int("tokens", len(seq)), zap.Int("spans", m.cache.Count()))
}

// UpdateSequenceElement repairs span cache after seq[pos] was changed from
// oldVal to its current value.
func (m *Model) UpdateSequenceElement(seq []int, pos, oldVal int) {
	if !m.ready {
		panic("UpdateSequenceElement called before SetInitialSequence")
	}
	m.mustMatch(seq)
	if pos < 0 || pos >= len(seq) {
		panic(fmt.Sprintf("position %d is out of range [0, %d)", pos, len(seq)))
	}
	m.upd.update(seq, pos, oldVal)
}

// ScoresOf tries every label at pos, committing each through
// UpdateSequenceElement, and finally restores original label the same way so
// neither the sequence nor the cache change.
func (m *Model) ScoresOf(seq []int, pos int) []float64 {
	orig := seq[pos]
	scores := make([]float64, m.numClasses)
	prev := orig
	for v := range m.numClasses {
		seq[pos] = v
		m.UpdateSequenceElement(seq, pos, prev)
		scores[v] = m.ScoreOf(seq)
		prev = v
	}
	seq[pos] = orig
	m.UpdateSequenceElement(seq, pos, prev)
	return scores
}

// ScoreOf scores seq using span cache. Seq must be the sequence the cache
// currently reflects: the one given to SetInitialSequence with every later
// change reported through UpdateSequenceElement.
func (m *Model) ScoreOf(seq []int) float64 {
	if !m.ready {
		panic("ScoreOf called before SetInitialSequence")
	}
	m.mustMatch(seq)
	return m.scorer.ScoreOf(seq, m.cache)
}

// ConditionalDistribution returns normalized probabilities of every label at
// pos.
func (m *Model) ConditionalDistribution(seq []int, pos int) []float64 {
	return Normalize(m.ScoresOf(seq, pos))
}

func (m *Model) LeftWindow() int {
	return Unbounded
}

func (m *Model) RightWindow() int {
	return Unbounded
}

func (m *Model) Length() int {
	return m.cache.Len()
}

func (m *Model) PossibleValues(int) []int {
	return slices.Clone(m.values)
}

// SpanLabelName returns name of the span label as stored in entity.Span:
// label name for flat model, entity type for BIO.
func (m *Model) SpanLabelName(label int) string {
	return m.spanName(label)
}

// Entities exposes span cache for inspection.
func (m *Model) Entities() *entity.Cache {
	return m.cache
}

func (m *Model) mustMatch(seq []int) {
	if len(seq) != m.cache.Len() {
		panic(fmt.Sprintf("sequence length %d does not match document length %d", len(seq), m.cache.Len()))
	}
}
