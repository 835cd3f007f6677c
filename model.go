package decompose

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
)

var (
	ErrNoOptionsInModel    = errors.New("no options set in model")
	ErrModelPeriodMismatch = errors.New("factors length does not match period")
)

// Model is a serializable representation of a fit decomposition. This should
// be generated from a previous call to Results.Model().
type Model struct {
	Options *Options  `json:"options"`
	Factors []float64 `json:"seasonal_factors"`
}

func (m Model) Valid() error {
	if m.Options == nil {
		return ErrNoOptionsInModel
	}
	if err := m.Options.Validate(); err != nil {
		return err
	}
	if len(m.Factors) != m.Options.Period {
		return fmt.Errorf(
			"%d factors with period of %d, %w",
			len(m.Factors), m.Options.Period, ErrModelPeriodMismatch,
		)
	}
	return nil
}

// Seasonal broadcasts the stored factors across n points honoring the cycle
// start offset.
func (m Model) Seasonal(n int) ([]float64, error) {
	if err := m.Valid(); err != nil {
		return nil, err
	}
	return broadcastFactors(m.Factors, n, m.Options.CycleStart), nil
}

// Adjust removes the stored seasonal component from a series aligned to the
// same cycle start, skipping the decomposition recompute.
func (m Model) Adjust(y []float64) ([]float64, error) {
	seasonal, err := m.Seasonal(len(y))
	if err != nil {
		return nil, err
	}
	res := make([]float64, len(y))
	copy(res, y)
	if m.Options.Method == Additive {
		floats.Sub(res, seasonal)
		return res, nil
	}
	floats.Div(res, seasonal)
	return res, nil
}
