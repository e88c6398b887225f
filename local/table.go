// Package local has per-position label models which ignore the rest of the
// sequence.
package local

import (
	"fmt"
	"math"
	"slices"
)

// Table keeps log-score of every label at every position.
type Table struct {
	scores     [][]float64
	numClasses int
	values     []int
}

// New creates table from per-position log-scores, every row must have the
// same length.
func New(scores [][]float64) (*Table, error) {
	if len(scores) == 0 {
		return nil, fmt.Errorf("empty score table")
	}
	n := len(scores[0])
	if n == 0 {
		return nil, fmt.Errorf("no labels in score table")
	}
	t := &Table{scores: make([][]float64, len(scores)), numClasses: n}
	for pos, row := range scores {
		if len(row) != n {
			return nil, fmt.Errorf("position %d has %d scores, expected %d", pos, len(row), n)
		}
		t.scores[pos] = slices.Clone(row)
	}
	t.values = make([]int, n)
	for v := range t.values {
		t.values[v] = v
	}
	return t, nil
}

// FromLabels turns observed labels into a table trusting every observation
// with given confidence, the remaining mass is spread evenly over other
// labels.
func FromLabels(seq []int, numClasses int, confidence float64) (*Table, error) {
	if numClasses < 2 {
		return nil, fmt.Errorf("at least 2 labels required, got %d", numClasses)
	}
	if confidence <= 0 || confidence >= 1 {
		return nil, fmt.Errorf("confidence must be in (0, 1), got %v", confidence)
	}
	var (
		hit  = math.Log(confidence)
		miss = math.Log((1 - confidence) / float64(numClasses-1))
	)
	scores := make([][]float64, len(seq))
	for pos, label := range seq {
		if label < 0 || label >= numClasses {
			return nil, fmt.Errorf("label %d at position %d is out of range [0, %d)", label, pos, numClasses)
		}
		row := make([]float64, numClasses)
		for v := range row {
			row[v] = miss
		}
		row[label] = hit
		scores[pos] = row
	}
	return New(scores)
}

func (t *Table) Length() int {
	return len(t.scores)
}

func (t *Table) LeftWindow() int {
	return 0
}

func (t *Table) RightWindow() int {
	return 0
}

func (t *Table) PossibleValues(int) []int {
	return slices.Clone(t.values)
}

func (t *Table) ScoresOf(_ []int, pos int) []float64 {
	return slices.Clone(t.scores[pos])
}

// ScoreOf sums scores of chosen labels.
func (t *Table) ScoreOf(seq []int) float64 {
	if len(seq) != len(t.scores) {
		panic(fmt.Sprintf("sequence length %d does not match table length %d", len(seq), len(t.scores)))
	}
	var total float64
	for pos, v := range seq {
		total += t.scores[pos][v]
	}
	return total
}
