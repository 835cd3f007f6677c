package timedataset

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrNoObservations     = errors.New("no observations")
	ErrNonMonotonic       = errors.New("time axis is not monotonically increasing")
	ErrDatasetLenMismatch = errors.New("time axis has a different length than observations")
)

// TimeDataset represents a regularly sampled univariate time series storing a
// slice of time points and observed values. Both must be of the same length.
// Undefined observations are represented as math.NaN().
type TimeDataset struct {
	T []time.Time
	Y []float64
}

// NewUnivariateDataset returns an instance of a TimeDataset given a time and
// value slice. Inputs are copied so the dataset cannot be mutated through the
// original slices after construction.
func NewUnivariateDataset(t []time.Time, y []float64) (*TimeDataset, error) {
	if len(y) == 0 {
		return nil, ErrNoObservations
	}
	if len(t) != len(y) {
		return nil, fmt.Errorf(
			"time axis has length of %d, but values has a length of %d, %w",
			len(t), len(y), ErrDatasetLenMismatch,
		)
	}

	var lastT time.Time
	for i := 0; i < len(t); i++ {
		currT := t[i]
		if currT.Before(lastT) || currT.Equal(lastT) {
			return nil, fmt.Errorf("non-monotonic at %d, %w", i, ErrNonMonotonic)
		}
		lastT = currT
	}

	tSeries := make([]time.Time, len(t))
	ySeries := make([]float64, len(t))
	copy(tSeries, t)
	copy(ySeries, y)

	return &TimeDataset{
		T: tSeries,
		Y: ySeries,
	}, nil
}

// Len returns the number of observations in the dataset.
func (td *TimeDataset) Len() int {
	return len(td.Y)
}

func (td *TimeDataset) Copy() *TimeDataset {
	tSeries := make([]time.Time, len(td.T))
	ySeries := make([]float64, len(td.T))
	copy(tSeries, td.T)
	copy(ySeries, td.Y)
	return &TimeDataset{
		T: tSeries,
		Y: ySeries,
	}
}
