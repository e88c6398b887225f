// Package prior has long-distance scorers evaluated over the span cache.
package prior

import (
	"fmt"

	"entc/common"
	"entc/config"
	"entc/entity"
	"entc/sequence"
)

// Uniform gives every labelling the same score.
type Uniform struct{}

func (Uniform) ScoreOf([]int, entity.View) float64 {
	return 0
}

// Consistency penalizes spans whose surface text recurs elsewhere in the
// document without being labelled the same way. Penalties are log-space
// values, so they must not be positive.
type Consistency struct {
	LabelMismatch    float64
	BoundaryMismatch float64
	Weight           float64
}

// NewConsistency creates scorer checking penalties and weight.
func NewConsistency(labelMismatch, boundaryMismatch, weight float64) (*Consistency, error) {
	if labelMismatch > 0 || boundaryMismatch > 0 {
		return nil, fmt.Errorf("penalties must not be positive: label %v, boundary %v", labelMismatch, boundaryMismatch)
	}
	if weight < 0 {
		return nil, fmt.Errorf("weight must not be negative: %v", weight)
	}
	return &Consistency{
		LabelMismatch:    labelMismatch,
		BoundaryMismatch: boundaryMismatch,
		Weight:           weight,
	}, nil
}

// ScoreOf sums penalties over every span and each of its other occurrences.
func (c *Consistency) ScoreOf(_ []int, entities entity.View) float64 {
	var total float64
	for s := range entities.All() {
		for _, at := range s.OtherOccurrences {
			switch Classify(entities, s, at) {
			case common.MismatchLabel:
				total += c.LabelMismatch
			case common.MismatchBoundary:
				total += c.BoundaryMismatch
			}
		}
	}
	return c.Weight * total
}

// Classify compares span with the token run starting at one of its other
// occurrences.
func Classify(entities entity.View, s entity.Span, at int) common.Mismatch {
	other, ok := entities.At(at)
	if !ok || other.Start != at || other.Len() != s.Len() {
		return common.MismatchBoundary
	}
	if other.Label != s.Label {
		return common.MismatchLabel
	}
	return common.MismatchNone
}

// Violation is a single inconsistency found between span and its recurrence.
type Violation struct {
	Span entity.Span
	At   int
	Kind common.Mismatch
}

// Violations lists every inconsistency in span order.
func Violations(entities entity.View) []Violation {
	var found []Violation
	for s := range entities.All() {
		for _, at := range s.OtherOccurrences {
			if kind := Classify(entities, s, at); kind.IsViolation() {
				found = append(found, Violation{Span: s, At: at, Kind: kind})
			}
		}
	}
	return found
}

// New creates scorer requested by configuration.
func New(cfg *config.PriorConfig) (sequence.Scorer, error) {
	switch cfg.Kind {
	case common.PriorKindUniform:
		return Uniform{}, nil
	case common.PriorKindConsistency:
		return NewConsistency(cfg.LabelMismatch, cfg.BoundaryMismatch, cfg.Weight)
	default:
		return nil, fmt.Errorf("unsupported prior kind %s", cfg.Kind)
	}
}
