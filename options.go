package decompose

import (
	"errors"
	"fmt"

	"github.com/aouyang1/go-decompose/event"
)

// Method selects how the components combine to reconstruct the observed
// series.
type Method string

const (
	// Multiplicative models the series as trend * seasonal * residual.
	Multiplicative Method = "multiplicative"
	// Additive models the series as trend + seasonal + residual.
	Additive Method = "additive"
)

var (
	ErrUnknownMethod     = errors.New("unknown decomposition method")
	ErrInvalidPeriod     = errors.New("period must be at least 2")
	ErrInvalidCycleStart = errors.New("cycle start must be in [0, period)")
)

// OutlierOptions masks detrended outliers from seasonal factor averaging
// using Tukey fences around the given percentile range.
type OutlierOptions struct {
	LowerPercentile float64 `json:"lower_percentile"`
	UpperPercentile float64 `json:"upper_percentile"`
	TukeyFactor     float64 `json:"tukey_factor"`
}

func NewOutlierOptions() *OutlierOptions {
	return &OutlierOptions{
		LowerPercentile: 0.1,
		UpperPercentile: 0.9,
		TukeyFactor:     1.0,
	}
}

// Options configures a Decomposer.
type Options struct {
	// Period is the number of observations per full seasonal cycle, e.g. 12
	// for monthly data with annual seasonality.
	Period int `json:"period"`

	// CycleStart is the position within the cycle that the first observation
	// corresponds to. Zero means the series starts on a cycle boundary.
	CycleStart int `json:"cycle_start"`

	Method Method `json:"method"`

	// OutlierOptions optionally masks detrended outliers from seasonal
	// factor averaging. The trend and residual still cover masked points.
	OutlierOptions *OutlierOptions `json:"outlier_options,omitempty"`

	// ExcludedEvents optionally masks observations falling inside the given
	// time spans from seasonal factor averaging.
	ExcludedEvents event.Events `json:"excluded_events,omitempty"`
}

// NewDefaultOptions returns options for a multiplicative decomposition of
// monthly data with annual seasonality.
func NewDefaultOptions() *Options {
	return &Options{
		Period: 12,
		Method: Multiplicative,
	}
}

func (o *Options) Validate() error {
	if o.Period < 2 {
		return fmt.Errorf("period of %d, %w", o.Period, ErrInvalidPeriod)
	}
	if o.CycleStart < 0 || o.CycleStart >= o.Period {
		return fmt.Errorf("cycle start of %d with period of %d, %w", o.CycleStart, o.Period, ErrInvalidCycleStart)
	}
	switch o.Method {
	case Multiplicative, Additive:
	case "":
		o.Method = Multiplicative
	default:
		return fmt.Errorf("%q, %w", o.Method, ErrUnknownMethod)
	}
	return o.ExcludedEvents.Valid()
}
