package model

import (
	"errors"
	"math"

	"github.com/LuisR-ecu/sas-solution-factory-demo/internal/domain"
)

// Training failures are fatal: the service must not accept traffic without a
// trained model.
var (
	ErrEmptyDataset = errors.New("training dataset is empty")
	ErrNoLabels     = errors.New("training dataset has no churn labels")
)

// TrainConfig controls the gradient-descent fit
type TrainConfig struct {
	LearningRate float64
	Epochs       int
	L2           float64
}

// DefaultTrainConfig returns the settings used by both binaries. The seed
// dataset is tiny, so a generous epoch count is still instantaneous.
func DefaultTrainConfig() TrainConfig {
	return TrainConfig{
		LearningRate: 0.5,
		Epochs:       2000,
		L2:           1e-3,
	}
}

// Train fits the encoding vocabulary and a logistic-regression weight vector
// from the labeled records in the dataset. Gradient descent runs over
// standardized columns for conditioning; the affine transform is folded back
// into the returned weights so Encode stays a plain passthrough at inference.
func Train(records []domain.CustomerRecord, cfg TrainConfig) (*Model, error) {
	if len(records) == 0 {
		return nil, ErrEmptyDataset
	}

	schema := buildSchema(records)

	var rows [][]float64
	var labels []float64
	for i := range records {
		if !records[i].Labeled {
			continue
		}
		rows = append(rows, schema.Encode(&records[i]))
		if records[i].Churned {
			labels = append(labels, 1)
		} else {
			labels = append(labels, 0)
		}
	}
	if len(rows) == 0 {
		return nil, ErrNoLabels
	}

	dims := len(schema.dims)
	n := float64(len(rows))

	// Column-wise standardization; constant columns keep scale 1 so the
	// fold-back below stays well defined.
	mean := make([]float64, dims)
	scale := make([]float64, dims)
	for j := 0; j < dims; j++ {
		var sum float64
		for _, row := range rows {
			sum += row[j]
		}
		mean[j] = sum / n

		var variance float64
		for _, row := range rows {
			d := row[j] - mean[j]
			variance += d * d
		}
		scale[j] = math.Sqrt(variance / n)
		if scale[j] == 0 {
			scale[j] = 1
		}
	}

	std := make([][]float64, len(rows))
	for i, row := range rows {
		std[i] = make([]float64, dims)
		for j := 0; j < dims; j++ {
			std[i][j] = (row[j] - mean[j]) / scale[j]
		}
	}

	// Full-batch gradient descent on the regularized log loss.
	weights := make([]float64, dims)
	bias := 0.0
	grad := make([]float64, dims)
	for epoch := 0; epoch < cfg.Epochs; epoch++ {
		for j := range grad {
			grad[j] = 0
		}
		var biasGrad float64
		for i, row := range std {
			z := bias
			for j, v := range row {
				z += v * weights[j]
			}
			err := sigmoid(z) - labels[i]
			for j, v := range row {
				grad[j] += err * v
			}
			biasGrad += err
		}
		for j := range weights {
			weights[j] -= cfg.LearningRate * (grad[j]/n + cfg.L2*weights[j])
		}
		bias -= cfg.LearningRate * biasGrad / n
	}

	// Fold the standardization back into raw-space weights:
	// w'_j = w_j / scale_j, b' = b - sum_j w_j * mean_j / scale_j.
	rawWeights := make([]float64, dims)
	rawBias := bias
	for j := range weights {
		rawWeights[j] = weights[j] / scale[j]
		rawBias -= weights[j] * mean[j] / scale[j]
	}

	return &Model{schema: schema, weights: rawWeights, bias: rawBias}, nil
}
