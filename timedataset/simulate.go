package timedataset

import (
	"math"
	"math/rand/v2"
	"time"

	"gonum.org/v1/gonum/floats"
)

// Series is a convenience type for composing synthetic series out of trend,
// cycle, and noise parts. Multiplicative compositions use Mul, additive
// compositions use Add.
type Series []float64

func (s Series) Add(src Series) Series {
	floats.Add(s, src)
	return s
}

func (s Series) Mul(src Series) Series {
	floats.Mul(s, src)
	return s
}

func (s Series) Scale(c float64) Series {
	floats.Scale(c, s)
	return s
}

func (s Series) SetConst(t []time.Time, val float64, start, end time.Time) Series {
	n := len(s)
	for i := 0; i < n; i++ {
		if (t[i].After(start) || t[i].Equal(start)) && t[i].Before(end) {
			s[i] = val
		}
	}
	return s
}

func GenerateConstY(n int, val float64) Series {
	y := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		y = append(y, val)
	}
	return Series(y)
}

// GenerateLineY generates a linear trend evaluated at each index.
func GenerateLineY(n int, intercept, slope float64) Series {
	y := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		y = append(y, intercept+slope*float64(i))
	}
	return Series(y)
}

// GenerateCycleY tiles the given cycle of factors across n points so that
// index i holds factors[i%len(factors)].
func GenerateCycleY(factors []float64, n int) Series {
	period := len(factors)
	y := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		y = append(y, factors[i%period])
	}
	return Series(y)
}

// GenerateWaveCycleY generates a sinusoidal cycle oscillating around center
// with the given amplitude and period in samples.
func GenerateWaveCycleY(n int, center, amp float64, period int) Series {
	y := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		y = append(y, center+amp*math.Sin(2.0*math.Pi*float64(i%period)/float64(period)))
	}
	return Series(y)
}

// GenerateMultNoise generates noise centered at 1.0 suitable for composing
// into a multiplicative series with Mul.
func GenerateMultNoise(n int, scale float64) Series {
	y := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		y = append(y, 1.0+rand.NormFloat64()*scale)
	}
	return Series(y)
}
