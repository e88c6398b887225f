package sequence

import (
	"fmt"
)

// Factored combines several models over the same sequence into a weighted
// sum of their scores. Listening members are kept informed about sequence
// changes.
type Factored struct {
	models  []SequenceModel
	weights []float64
}

// NewFactored creates combination of models with equal weight 1.
func NewFactored(models ...SequenceModel) *Factored {
	weights := make([]float64, len(models))
	for i := range weights {
		weights[i] = 1
	}
	f, err := NewWeighted(models, weights)
	if err != nil {
		panic(err)
	}
	return f
}

// NewWeighted creates weighted combination of models, all models must have
// the same length.
func NewWeighted(models []SequenceModel, weights []float64) (*Factored, error) {
	if len(models) == 0 {
		return nil, fmt.Errorf("no models to combine")
	}
	if len(models) != len(weights) {
		return nil, fmt.Errorf("%d models but %d weights", len(models), len(weights))
	}
	for i, m := range models[1:] {
		if m.Length() != models[0].Length() {
			return nil, fmt.Errorf("model %d has length %d, expected %d", i+1, m.Length(), models[0].Length())
		}
	}
	return &Factored{models: models, weights: weights}, nil
}

func (f *Factored) Length() int {
	return f.models[0].Length()
}

func (f *Factored) LeftWindow() int {
	w := 0
	for _, m := range f.models {
		w = max(w, m.LeftWindow())
	}
	return w
}

func (f *Factored) RightWindow() int {
	w := 0
	for _, m := range f.models {
		w = max(w, m.RightWindow())
	}
	return w
}

// PossibleValues returns values of the first model.
func (f *Factored) PossibleValues(pos int) []int {
	return f.models[0].PossibleValues(pos)
}

func (f *Factored) ScoresOf(seq []int, pos int) []float64 {
	var total []float64
	for i, m := range f.models {
		scores := m.ScoresOf(seq, pos)
		if total == nil {
			total = make([]float64, len(scores))
		}
		if len(scores) != len(total) {
			panic(fmt.Sprintf("model %d returned %d scores, expected %d", i, len(scores), len(total)))
		}
		for v, s := range scores {
			total[v] += f.weights[i] * s
		}
	}
	return total
}

func (f *Factored) ScoreOf(seq []int) float64 {
	var total float64
	for i, m := range f.models {
		total += f.weights[i] * m.ScoreOf(seq)
	}
	return total
}

func (f *Factored) SetInitialSequence(seq []int) {
	for _, m := range f.models {
		if l, ok := m.(ListeningSequenceModel); ok {
			l.SetInitialSequence(seq)
		}
	}
}

func (f *Factored) UpdateSequenceElement(seq []int, pos, oldVal int) {
	for _, m := range f.models {
		if l, ok := m.(ListeningSequenceModel); ok {
			l.UpdateSequenceElement(seq, pos, oldVal)
		}
	}
}
