// Package stats provides NaN-aware statistical helpers for series where
// math.NaN() marks an undefined observation.
package stats

import "math"

// CountDefined returns the number of non-NaN values in y.
func CountDefined(y []float64) int {
	var cnt int
	for _, v := range y {
		if !math.IsNaN(v) {
			cnt++
		}
	}
	return cnt
}

// Defined returns a copy of y with all NaN values removed.
func Defined(y []float64) []float64 {
	res := make([]float64, 0, len(y))
	for _, v := range y {
		if !math.IsNaN(v) {
			res = append(res, v)
		}
	}
	return res
}

// NaNMean returns the mean of the defined values in y. Returns NaN if no
// value is defined.
func NaNMean(y []float64) float64 {
	var sum float64
	var cnt int
	for _, v := range y {
		if math.IsNaN(v) {
			continue
		}
		sum += v
		cnt++
	}
	if cnt == 0 {
		return math.NaN()
	}
	return sum / float64(cnt)
}
