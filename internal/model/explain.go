package model

import (
	"math"
	"sort"
)

// Contribution is one feature's linear share of the pre-sigmoid score:
// the encoded value times the trained weight. This is a linear attribution,
// valid because the model itself is linear; it is not a Shapley value.
type Contribution struct {
	Dimension Dimension
	Value     float64
}

// Explain decomposes the score for an encoded vector into per-dimension
// contributions, sorted by descending absolute value with ties keeping the
// original dimension order, and returns at most topN of them. Dimension
// labels are unique by construction of the schema.
func (m *Model) Explain(vec []float64, topN int) []Contribution {
	contributions := make([]Contribution, len(vec))
	for i, v := range vec {
		contributions[i] = Contribution{
			Dimension: m.schema.dims[i],
			Value:     v * m.weights[i],
		}
	}

	sort.SliceStable(contributions, func(i, j int) bool {
		return math.Abs(contributions[i].Value) > math.Abs(contributions[j].Value)
	})

	if topN >= 0 && topN < len(contributions) {
		contributions = contributions[:topN]
	}
	return contributions
}
