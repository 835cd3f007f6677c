package stats

import (
	"math"
	"sort"
)

// DetectOutliers flags indexes in y falling outside the Tukey fences built
// from the lower and upper percentiles of the defined values. NaN values are
// ignored and never flagged.
func DetectOutliers(y []float64, lowerPerc, upperPerc, tukeyFactor float64) []int {
	lowerPerc = math.Max(lowerPerc, 0.0)
	upperPerc = math.Min(upperPerc, 1.0)
	tukeyFactor = math.Max(tukeyFactor, 0.0)

	defined := Defined(y)
	if len(defined) == 0 {
		return nil
	}
	sort.Float64s(defined)

	lowerIdx := int(math.Floor(float64(len(defined)) * lowerPerc))
	upperIdx := int(math.Ceil(float64(len(defined)) * upperPerc))
	if upperIdx >= len(defined) {
		upperIdx = len(defined) - 1
	}

	lower := defined[lowerIdx]
	upper := defined[upperIdx]
	innerRange := upper - lower
	lower -= innerRange * tukeyFactor
	upper += innerRange * tukeyFactor

	var outlierIdx []int
	for i := 0; i < len(y); i++ {
		if math.IsNaN(y[i]) {
			continue
		}
		if y[i] >= upper || y[i] <= lower {
			outlierIdx = append(outlierIdx, i)
		}
	}
	return outlierIdx
}
