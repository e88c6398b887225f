// Package common keeps enums shared between configuration and processing
// packages.
package common

// Labelling scheme of the input sequence.
// ENUM(flat, bio)
type Scheme int

// Order in which sampler visits positions during a sweep.
// ENUM(sequential, random)
type SampleOrder int

// Temperature schedule of the sampler.
// ENUM(none, linear, exponential)
type CoolingSchedule int

// Long-distance scorer plugged into span cache model.
// ENUM(uniform, consistency)
type PriorKind int

// Kind of inconsistency between a span and one of its other occurrences.
// ENUM(none, label, boundary)
type Mismatch int

func (m Mismatch) IsViolation() bool {
	return m != MismatchNone
}
