// Package decompose implements classical seasonal decomposition of a
// regularly sampled time series into trend, seasonal, and residual
// components. The trend is a centered moving average spanning one full
// cycle, the seasonal component averages the detrended series by cycle
// position, and the residual is whatever ratio or difference remains.
//
// Undefined points are represented as math.NaN(). The trend and residual are
// undefined for the first and last half window where no full moving average
// window exists; these NaNs are expected values, not errors, and every
// aggregation in this module skips them explicitly.
package decompose

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/aouyang1/go-decompose/stats"
	"github.com/aouyang1/go-decompose/timedataset"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

var (
	ErrInsufficientData   = errors.New("series must be at least one full period plus one point")
	ErrEmptySeasonalGroup = errors.New("no defined detrended observations for cycle position")
)

// Decomposer splits series into trend, seasonal, and residual components
// using the configured period and method. Decompose is a pure function of
// its inputs; the same series always produces the same components.
type Decomposer struct {
	opt *Options
}

// New creates a new instance of a Decomposer using the provided options. If
// no options are provided a default is used.
func New(opt *Options) (*Decomposer, error) {
	if opt == nil {
		opt = NewDefaultOptions()
	}
	if err := opt.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options, %w", err)
	}
	return &Decomposer{opt: opt}, nil
}

// Decompose computes the trend, seasonal, and residual components of the
// observed series such that they reconstruct the input wherever all three
// are defined.
func (d *Decomposer) Decompose(t []time.Time, y []float64) (*Results, error) {
	td, err := timedataset.NewUnivariateDataset(t, y)
	if err != nil {
		return nil, fmt.Errorf("unable to create dataset, %w", err)
	}

	opt := d.opt
	trend, err := TrendComponent(td.Y, opt.Period)
	if err != nil {
		return nil, fmt.Errorf("unable to compute trend, %w", err)
	}

	detrended := Detrend(td.Y, trend, opt.Method)
	d.maskExcluded(td.T, detrended)

	factors, err := seasonalFactors(detrended, opt.Period, opt.CycleStart, opt.Method)
	if err != nil {
		return nil, fmt.Errorf("unable to compute seasonal factors, %w", err)
	}
	seasonal := broadcastFactors(factors, td.Len(), opt.CycleStart)
	residual := ResidualComponent(td.Y, trend, seasonal, opt.Method)

	res := &Results{
		T:          td.T,
		Observed:   td.Y,
		Trend:      trend,
		Seasonal:   seasonal,
		Residual:   residual,
		Factors:    factors,
		Period:     opt.Period,
		CycleStart: opt.CycleStart,
		Method:     opt.Method,
	}
	if scores, err := NewScores(res.Reconstruct(), td.Y); err == nil {
		res.Scores = scores
	}
	return res, nil
}

// maskExcluded sets detrended points falling inside excluded events or
// flagged as outliers to NaN so they do not contribute to factor averaging.
func (d *Decomposer) maskExcluded(t []time.Time, detrended []float64) {
	if len(d.opt.ExcludedEvents) > 0 {
		mask := d.opt.ExcludedEvents.Mask(t)
		for i, excluded := range mask {
			if excluded {
				detrended[i] = math.NaN()
			}
		}
	}

	if d.opt.OutlierOptions == nil {
		return
	}
	oopt := d.opt.OutlierOptions
	for _, idx := range stats.DetectOutliers(detrended, oopt.LowerPercentile, oopt.UpperPercentile, oopt.TukeyFactor) {
		detrended[idx] = math.NaN()
	}
}

// TrendComponent computes the centered moving average of y spanning one full
// period. For an even period the standard two stage 2xP average keeps the
// window centered on integer indexes by half weighting the window edges. The
// first and last period/2 points are NaN since no full window exists there.
func TrendComponent(y []float64, period int) ([]float64, error) {
	n := len(y)
	if period < 2 {
		return nil, fmt.Errorf("period of %d, %w", period, ErrInvalidPeriod)
	}
	if n < period+1 {
		return nil, fmt.Errorf("%d points with period of %d, %w", n, period, ErrInsufficientData)
	}

	trend := make([]float64, n)
	for i := range trend {
		trend[i] = math.NaN()
	}

	half := period / 2
	if period%2 == 0 {
		for i := half; i < n-half; i++ {
			sum := 0.5*y[i-half] + 0.5*y[i+half]
			for j := i - half + 1; j < i+half; j++ {
				sum += y[j]
			}
			trend[i] = sum / float64(period)
		}
		return trend, nil
	}

	for i := half; i < n-half; i++ {
		var sum float64
		for j := i - half; j <= i+half; j++ {
			sum += y[j]
		}
		trend[i] = sum / float64(period)
	}
	return trend, nil
}

// Detrend removes the trend from the observed series, by ratio for the
// multiplicative method and by difference for the additive method. Points
// with an undefined or zero trend are NaN.
func Detrend(y, trend []float64, method Method) []float64 {
	detrended := make([]float64, len(y))
	for i := range y {
		switch {
		case math.IsNaN(trend[i]):
			detrended[i] = math.NaN()
		case method == Additive:
			detrended[i] = y[i] - trend[i]
		case trend[i] == 0:
			detrended[i] = math.NaN()
		default:
			detrended[i] = y[i] / trend[i]
		}
	}
	return detrended
}

// SeasonalComponent computes the periodic seasonal sequence of y given its
// trend, assuming the series starts on a cycle boundary. The value at index
// i equals the normalized factor for cycle position i%period.
func SeasonalComponent(y, trend []float64, period int, method Method) ([]float64, error) {
	factors, err := seasonalFactors(Detrend(y, trend, method), period, 0, method)
	if err != nil {
		return nil, err
	}
	return broadcastFactors(factors, len(y), 0), nil
}

// seasonalFactors averages the detrended series by cycle position and
// normalizes the factors so they cannot absorb part of the trend scale:
// multiplicative factors mean to 1, additive factors mean to 0.
func seasonalFactors(detrended []float64, period, cycleStart int, method Method) ([]float64, error) {
	groups := make([][]float64, period)
	for i, v := range detrended {
		pos := (i + cycleStart) % period
		groups[pos] = append(groups[pos], v)
	}

	factors := make([]float64, period)
	for pos, group := range groups {
		if stats.CountDefined(group) == 0 {
			return nil, fmt.Errorf("cycle position %d, %w", pos, ErrEmptySeasonalGroup)
		}
		factors[pos] = stats.NaNMean(group)
	}

	mean := stat.Mean(factors, nil)
	switch {
	case method == Additive:
		floats.AddConst(-mean, factors)
	case mean != 0:
		floats.Scale(1.0/mean, factors)
	}
	return factors, nil
}

func broadcastFactors(factors []float64, n, cycleStart int) []float64 {
	period := len(factors)
	seasonal := make([]float64, n)
	for i := 0; i < n; i++ {
		seasonal[i] = factors[(i+cycleStart)%period]
	}
	return seasonal
}

// Reconstruct combines trend, seasonal, and residual components back into a
// series equal to the original input wherever all three are defined, NaN
// elsewhere.
func Reconstruct(trend, seasonal, residual []float64, method Method) []float64 {
	res := make([]float64, len(trend))
	copy(res, trend)
	if method == Additive {
		floats.Add(res, seasonal)
		floats.Add(res, residual)
		return res
	}
	floats.Mul(res, seasonal)
	floats.Mul(res, residual)
	return res
}

// ResidualComponent computes what remains of the observed series after
// removing the trend and seasonal components. NaN wherever the trend is
// undefined, so the residual shares the trend's edge windows.
func ResidualComponent(y, trend, seasonal []float64, method Method) []float64 {
	residual := make([]float64, len(y))
	for i := range y {
		switch {
		case math.IsNaN(trend[i]):
			residual[i] = math.NaN()
		case method == Additive:
			residual[i] = y[i] - trend[i] - seasonal[i]
		case trend[i]*seasonal[i] == 0:
			residual[i] = math.NaN()
		default:
			residual[i] = y[i] / (trend[i] * seasonal[i])
		}
	}
	return residual
}
