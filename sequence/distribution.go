package sequence

import (
	"math"
)

// LogSumExp computes log(sum(exp(scores))) without overflow.
func LogSumExp(scores []float64) float64 {
	top := math.Inf(-1)
	for _, s := range scores {
		top = max(top, s)
	}
	if math.IsInf(top, 0) {
		return top
	}
	var sum float64
	for _, s := range scores {
		sum += math.Exp(s - top)
	}
	return top + math.Log(sum)
}

// Normalize turns log-scores into probabilities. When no label has finite
// score the distribution is uniform.
func Normalize(scores []float64) []float64 {
	probs := make([]float64, len(scores))
	lse := LogSumExp(scores)
	if math.IsInf(lse, 0) || math.IsNaN(lse) {
		for i := range probs {
			probs[i] = 1 / float64(len(probs))
		}
		return probs
	}
	for i, s := range scores {
		probs[i] = math.Exp(s - lse)
	}
	return probs
}
