// Package sampler implements Gibbs sampling over listening sequence models.
package sampler

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"entc/common"
	"entc/config"
	"entc/sequence"
)

const (
	// coolingRate is exponential schedule decay per sweep.
	coolingRate = 0.95
	// greedyTemperature is the temperature at or below which sampling turns
	// into picking best label.
	greedyTemperature = 1e-6
)

// Sampler resamples every position of a sequence from its conditional
// distribution given the rest of the sequence.
type Sampler struct {
	model       sequence.ListeningSequenceModel
	iterations  int
	order       common.SampleOrder
	cooling     common.CoolingSchedule
	temperature float64
	seed        uint64
	log         *zap.Logger
}

type Option func(*Sampler)

// WithIterations sets number of sweeps over the whole sequence.
func WithIterations(n int) Option {
	return func(s *Sampler) {
		s.iterations = n
	}
}

func WithOrder(order common.SampleOrder) Option {
	return func(s *Sampler) {
		s.order = order
	}
}

// WithCooling sets temperature schedule and its starting temperature.
func WithCooling(cooling common.CoolingSchedule, initial float64) Option {
	return func(s *Sampler) {
		s.cooling = cooling
		s.temperature = initial
	}
}

// WithSeed makes runs reproducible, 0 selects random seed.
func WithSeed(seed uint64) Option {
	return func(s *Sampler) {
		s.seed = seed
	}
}

func WithLogger(log *zap.Logger) Option {
	return func(s *Sampler) {
		if log != nil {
			s.log = log
		}
	}
}

// WithConfig applies configuration section.
func WithConfig(cfg *config.SamplerConfig) Option {
	return func(s *Sampler) {
		s.iterations = cfg.Iterations
		s.order = cfg.Order
		s.cooling = cfg.Cooling
		s.temperature = cfg.InitialTemperature
		s.seed = cfg.Seed
	}
}

// New creates sampler with 100 sequential sweeps at constant temperature 1
// unless options say otherwise.
func New(model sequence.ListeningSequenceModel, opts ...Option) *Sampler {
	s := &Sampler{
		model:       model,
		iterations:  100,
		order:       common.SampleOrderSequential,
		cooling:     common.CoolingScheduleNone,
		temperature: 1,
		log:         zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Result of a sampling run.
type Result struct {
	RunID     uuid.UUID
	Best      []int
	BestScore float64
	Final     []int
	Sweeps    int
	Changes   int
}

// Temperature returns temperature used for given sweep. Without cooling the
// initial temperature is kept for every sweep.
func (s *Sampler) Temperature(sweep int) float64 {
	switch s.cooling {
	case common.CoolingScheduleLinear:
		return s.temperature * float64(s.iterations-sweep) / float64(s.iterations)
	case common.CoolingScheduleExponential:
		return max(s.temperature*math.Pow(coolingRate, float64(sweep)), greedyTemperature)
	default:
		return s.temperature
	}
}

// Run samples starting from initial sequence which is not modified. On
// context cancellation result collected so far is returned together with
// context error.
func (s *Sampler) Run(ctx context.Context, initial []int) (Result, error) {
	if len(initial) != s.model.Length() {
		return Result{}, fmt.Errorf("initial sequence has %d elements, model expects %d", len(initial), s.model.Length())
	}
	if s.iterations <= 0 {
		return Result{}, fmt.Errorf("number of iterations must be positive, got %d", s.iterations)
	}

	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	log := s.log.With(zap.Stringer("run", id))

	seed := s.seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	rnd := rand.New(rand.NewPCG(seed, seed>>32|seed<<32))

	seq := slices.Clone(initial)
	s.model.SetInitialSequence(seq)

	res := Result{
		RunID:     id,
		Best:      slices.Clone(seq),
		BestScore: s.model.ScoreOf(seq),
	}
	log.Debug("Sampling started",
		zap.Int("tokens", len(seq)), zap.Int("iterations", s.iterations), zap.Stringer("order", s.order),
		zap.Stringer("cooling", s.cooling), zap.Uint64("seed", seed), zap.Float64("score", res.BestScore))
	defer func(start time.Time) {
		log.Debug("Sampling finished",
			zap.Int("sweeps", res.Sweeps), zap.Int("changes", res.Changes), zap.Float64("best", res.BestScore),
			zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	positions := make([]int, len(seq))
	for i := range positions {
		positions[i] = i
	}

	for sweep := range s.iterations {
		t := s.Temperature(sweep)
		if s.order == common.SampleOrderRandom {
			rnd.Shuffle(len(positions), func(i, j int) {
				positions[i], positions[j] = positions[j], positions[i]
			})
		}

		changes := 0
		for _, pos := range positions {
			if err := ctx.Err(); err != nil {
				res.Final = slices.Clone(seq)
				return res, err
			}
			v := draw(rnd, s.model.ScoresOf(seq, pos), t)
			if v == seq[pos] {
				continue
			}
			old := seq[pos]
			seq[pos] = v
			s.model.UpdateSequenceElement(seq, pos, old)
			changes++
		}

		res.Sweeps++
		res.Changes += changes
		score := s.model.ScoreOf(seq)
		if score > res.BestScore {
			res.BestScore = score
			res.Best = slices.Clone(seq)
		}
		log.Debug("Sweep completed",
			zap.Int("sweep", sweep), zap.Float64("temperature", t), zap.Int("changes", changes), zap.Float64("score", score))
	}
	res.Final = seq
	return res, nil
}

// draw picks label from scores tempered by t.
func draw(rnd *rand.Rand, scores []float64, t float64) int {
	if t <= greedyTemperature {
		return argmax(scores)
	}
	tempered := make([]float64, len(scores))
	for v, score := range scores {
		tempered[v] = score / t
	}
	probs := sequence.Normalize(tempered)

	u := rnd.Float64()
	for v, p := range probs {
		if u < p {
			return v
		}
		u -= p
	}
	// rounding left some mass unused
	return len(probs) - 1
}

func argmax(scores []float64) int {
	best := 0
	for v, score := range scores {
		if score > scores[best] {
			best = v
		}
	}
	return best
}
