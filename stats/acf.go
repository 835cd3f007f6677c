package stats

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/stat"
)

var (
	ErrSeriesTooShort = errors.New("series too short")
	ErrConstantSeries = errors.New("series has zero variance")
	ErrNoSeasonality  = errors.New("no significant seasonal lag detected")
)

// ACF calculates the autocorrelation function of y for lags 0 to maxLag.
// The series must not contain NaN values.
func ACF(y []float64, maxLag int) ([]float64, error) {
	n := len(y)
	if maxLag >= n {
		maxLag = n - 1
	}
	if n < 2 || maxLag < 0 {
		return nil, ErrSeriesTooShort
	}

	mean := stat.Mean(y, nil)
	var variance float64
	for _, v := range y {
		diff := v - mean
		variance += diff * diff
	}
	if variance == 0 {
		return nil, ErrConstantSeries
	}

	acf := make([]float64, maxLag+1)
	for k := 0; k <= maxLag; k++ {
		var sum float64
		for i := k; i < n; i++ {
			sum += (y[i] - mean) * (y[i-k] - mean)
		}
		acf[k] = sum / variance
	}
	return acf, nil
}

// Diff returns the lag-1 difference of y with length len(y)-1. Differencing
// removes a slow trend before autocorrelation analysis.
func Diff(y []float64) []float64 {
	if len(y) < 2 {
		return nil
	}
	res := make([]float64, len(y)-1)
	for i := 1; i < len(y); i++ {
		res[i-1] = y[i] - y[i-1]
	}
	return res
}

// EstimatePeriod guesses the seasonal period of y by locating the largest
// significant local peak in the autocorrelation of the differenced series.
// Useful when the caller does not know the sampling cycle ahead of time.
func EstimatePeriod(y []float64, maxPeriod int) (int, error) {
	diff := Diff(y)
	acf, err := ACF(diff, maxPeriod)
	if err != nil {
		return 0, err
	}
	if maxPeriod >= len(acf) {
		maxPeriod = len(acf) - 1
	}

	// approximate 95% significance band for white noise
	threshold := 2.0 / math.Sqrt(float64(len(diff)))

	best := 0
	bestVal := threshold
	for k := 2; k <= maxPeriod; k++ {
		if acf[k] <= bestVal {
			continue
		}
		prev := acf[k-1]
		next := -math.MaxFloat64
		if k+1 < len(acf) {
			next = acf[k+1]
		}
		if acf[k] >= prev && acf[k] >= next {
			best = k
			bestVal = acf[k]
		}
	}
	if best == 0 {
		return 0, ErrNoSeasonality
	}
	return best, nil
}
