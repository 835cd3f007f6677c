package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestACF(t *testing.T) {
	// alternating series has perfect negative lag-1 autocorrelation
	y := []float64{1, -1, 1, -1, 1, -1, 1, -1}
	acf, err := ACF(y, 2)
	require.NoError(t, err)
	require.Len(t, acf, 3)

	assert.Equal(t, 1.0, acf[0])
	assert.InDelta(t, -0.875, acf[1], 1e-12)
}

func TestACFErrors(t *testing.T) {
	_, err := ACF([]float64{1}, 1)
	assert.ErrorIs(t, err, ErrSeriesTooShort)

	_, err = ACF([]float64{3, 3, 3, 3}, 2)
	assert.ErrorIs(t, err, ErrConstantSeries)
}

func TestDiff(t *testing.T) {
	assert.Equal(t, []float64{1, 2, -3}, Diff([]float64{0, 1, 3, 0}))
	assert.Nil(t, Diff([]float64{1}))
}

func TestEstimatePeriod(t *testing.T) {
	n := 96
	period := 12
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		y[i] = 100 + 0.5*float64(i) + 10*math.Sin(2*math.Pi*float64(i)/float64(period))
	}

	p, err := EstimatePeriod(y, 24)
	require.NoError(t, err)
	assert.Equal(t, period, p)
}

func TestEstimatePeriodNoSeasonality(t *testing.T) {
	y := make([]float64, 64)
	for i := range y {
		y[i] = float64(i)
	}
	_, err := EstimatePeriod(y, 16)
	assert.Error(t, err)
}
