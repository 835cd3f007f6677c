package decompose

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeasonallyAdjusted(t *testing.T) {
	tPnts, y, _ := generateMonthlySeries(144)

	d, err := New(nil)
	require.NoError(t, err)
	res, err := d.Decompose(tPnts, y)
	require.NoError(t, err)

	adjusted := res.SeasonallyAdjusted()
	require.Len(t, adjusted, 144)

	// adjusted series is defined everywhere including the edge windows
	for i, v := range adjusted {
		assert.False(t, math.IsNaN(v), "index %d", i)
		assert.InEpsilon(t, y[i]/res.Seasonal[i], v, 1e-12, "index %d", i)
	}
}

func TestModelRoundTrip(t *testing.T) {
	tPnts, y, _ := generateMonthlySeries(144)

	d, err := New(nil)
	require.NoError(t, err)
	res, err := d.Decompose(tPnts, y)
	require.NoError(t, err)

	m := res.Model()
	require.NoError(t, m.Valid())

	bytes, err := json.Marshal(m)
	require.NoError(t, err)

	var loaded Model
	require.NoError(t, json.Unmarshal(bytes, &loaded))
	require.NoError(t, loaded.Valid())
	assert.Equal(t, m.Factors, loaded.Factors)
	assert.Equal(t, m.Options.Period, loaded.Options.Period)
	assert.Equal(t, m.Options.Method, loaded.Options.Method)

	// adjusting through the loaded model matches the original results
	adjusted, err := loaded.Adjust(y)
	require.NoError(t, err)
	assert.Equal(t, res.SeasonallyAdjusted(), adjusted)

	seasonal, err := loaded.Seasonal(len(y))
	require.NoError(t, err)
	assert.Equal(t, res.Seasonal, seasonal)
}

func TestModelValid(t *testing.T) {
	testData := map[string]struct {
		m   Model
		err error
	}{
		"no options": {
			m:   Model{Factors: []float64{1, 1}},
			err: ErrNoOptionsInModel,
		},
		"bad period": {
			m:   Model{Options: &Options{Period: 1}, Factors: []float64{1}},
			err: ErrInvalidPeriod,
		},
		"factor mismatch": {
			m:   Model{Options: &Options{Period: 4}, Factors: []float64{1, 1}},
			err: ErrModelPeriodMismatch,
		},
		"valid": {
			m: Model{Options: &Options{Period: 2}, Factors: []float64{0.9, 1.1}},
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			err := td.m.Valid()
			if td.err != nil {
				assert.ErrorIs(t, err, td.err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestPlotDecomposition(t *testing.T) {
	tPnts, y, _ := generateMonthlySeries(144)

	d, err := New(nil)
	require.NoError(t, err)
	res, err := d.Decompose(tPnts, y)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "decomposition.html")
	require.NoError(t, res.PlotDecomposition(path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}
