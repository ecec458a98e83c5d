package model

import (
	"math"

	"github.com/LuisR-ecu/sas-solution-factory-demo/internal/domain"
)

// DecisionThreshold is the fixed cut point for the binary churn flag. It is
// independent of the risk-label cut points in risk.go.
const DecisionThreshold = 0.5

// Model is the trained churn classifier: the frozen encoding schema, one
// weight per vector dimension, and a bias. It is built once at startup and
// never mutated afterwards, so every method is safe for concurrent use.
type Model struct {
	schema  *Schema
	weights []float64
	bias    float64
}

// Schema returns the encoding schema fitted at training time
func (m *Model) Schema() *Schema {
	return m.schema
}

// Weights returns the trained weight vector, one entry per dimension
func (m *Model) Weights() []float64 {
	return m.weights
}

// Bias returns the trained intercept
func (m *Model) Bias() float64 {
	return m.bias
}

// Encode maps a record to its feature vector using the trained vocabulary
func (m *Model) Encode(r *domain.CustomerRecord) []float64 {
	return m.schema.Encode(r)
}

// Score computes the churn probability for an encoded vector
func (m *Model) Score(vec []float64) float64 {
	z := m.bias
	for i, v := range vec {
		z += v * m.weights[i]
	}
	return sigmoid(z)
}

// Probability encodes and scores a record in one step
func (m *Model) Probability(r *domain.CustomerRecord) float64 {
	return m.Score(m.Encode(r))
}

// Predict applies the fixed 0.5 decision threshold to the probability
func (m *Model) Predict(vec []float64) bool {
	return m.Score(vec) >= DecisionThreshold
}

// sigmoid is the numerically stable logistic function: it branches on the
// sign of z so exp never receives a large positive argument.
func sigmoid(z float64) float64 {
	if z >= 0 {
		return 1 / (1 + math.Exp(-z))
	}
	e := math.Exp(z)
	return e / (1 + e)
}
