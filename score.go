package decompose

import (
	"errors"
	"fmt"
	"math"
)

var ErrResLenMismatch = errors.New("reconstructed and observed have different lengths")

// Scores summarizes how closely the combined components reproduce the
// observed series over the points where all components are defined.
type Scores struct {
	MSE  float64 `json:"mse"`  // mean squared error
	MAPE float64 `json:"mape"` // mean absolute percent error
}

func NewScores(reconstructed, observed []float64) (*Scores, error) {
	mse, err := MSE(reconstructed, observed)
	if err != nil {
		return nil, fmt.Errorf("unable to compute mean squared error, %w", err)
	}
	mape, err := MAPE(reconstructed, observed)
	if err != nil {
		return nil, fmt.Errorf("unable to compute mean absolute percent error, %w", err)
	}
	return &Scores{
		MSE:  mse,
		MAPE: mape,
	}, nil
}

// MSE computes the mean squared error over points where both inputs are
// defined.
func MSE(predicted, actual []float64) (float64, error) {
	if len(predicted) != len(actual) {
		return 0, ErrResLenMismatch
	}

	var mse float64
	var cnt int
	for i := 0; i < len(actual); i++ {
		if math.IsNaN(actual[i]) || math.IsNaN(predicted[i]) {
			continue
		}
		mse += math.Pow(actual[i]-predicted[i], 2.0)
		cnt++
	}
	if cnt == 0 {
		return math.NaN(), nil
	}
	return mse / float64(cnt), nil
}

// MAPE computes the mean absolute percent error over points where both
// inputs are defined and the actual value is non-zero.
func MAPE(predicted, actual []float64) (float64, error) {
	if len(predicted) != len(actual) {
		return 0, ErrResLenMismatch
	}

	var mape float64
	var cnt int
	for i := 0; i < len(actual); i++ {
		if math.IsNaN(actual[i]) || math.IsNaN(predicted[i]) || actual[i] == 0 {
			continue
		}
		mape += math.Abs((actual[i] - predicted[i]) / actual[i])
		cnt++
	}
	if cnt == 0 {
		return math.NaN(), nil
	}
	return mape / float64(cnt), nil
}
