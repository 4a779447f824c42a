package assessment

import (
	"fmt"
	"math"
)

// zToPercentile is the slope of the linear z-score approximation. It is not a
// normal CDF and consumers depend on its exact output.
const zToPercentile = 19.1

// Norm is a reference-population mean and standard deviation for one category.
type Norm struct {
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"stdDev"`
}

// ReferenceNorms holds a Norm for every category.
type ReferenceNorms map[Category]Norm

// DefaultReferenceNorms describes the entrepreneur reference population.
func DefaultReferenceNorms() ReferenceNorms {
	return ReferenceNorms{
		Realistic:     {Mean: 45, StdDev: 20},
		Investigative: {Mean: 55, StdDev: 18},
		Artistic:      {Mean: 52, StdDev: 20},
		Social:        {Mean: 50, StdDev: 19},
		Enterprising:  {Mean: 68, StdDev: 16},
		Conventional:  {Mean: 42, StdDev: 20},
	}
}

// Validate requires a positive standard deviation for all six categories.
func (n ReferenceNorms) Validate() error {
	for _, cat := range Categories {
		norm, ok := n[cat]
		if !ok {
			return fmt.Errorf("reference norms: missing category %s", cat)
		}
		if norm.StdDev <= 0 || math.IsNaN(norm.StdDev) || math.IsNaN(norm.Mean) {
			return fmt.Errorf("reference norms: category %s needs a positive standard deviation", cat)
		}
	}
	return nil
}

// Percentiles places each score against the reference population.
func Percentiles(scores Scores, norms ReferenceNorms) map[Category]int {
	out := make(map[Category]int, len(Categories))
	for _, cat := range Categories {
		norm := norms[cat]
		z := (float64(scores[cat]) - norm.Mean) / norm.StdDev
		p := 50 + z*zToPercentile
		p = math.Max(0, math.Min(100, p))
		out[cat] = int(math.Round(p))
	}
	return out
}
