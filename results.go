package decompose

import (
	"io"
	"os"
	"time"

	"github.com/go-echarts/go-echarts/v2/components"
	"gonum.org/v1/gonum/floats"
)

// Results holds the decomposition components aligned index for index with
// the observed series. Trend and Residual are NaN for the first and last
// half window. All sequences are immutable once computed.
type Results struct {
	T          []time.Time `json:"time"`
	Observed   []float64   `json:"observed"`
	Trend      []float64   `json:"trend"`
	Seasonal   []float64   `json:"seasonal"`
	Residual   []float64   `json:"residual"`
	Factors    []float64   `json:"seasonal_factors"`
	Period     int         `json:"period"`
	CycleStart int         `json:"cycle_start"`
	Method     Method      `json:"method"`
	Scores     *Scores     `json:"scores,omitempty"`
}

// Reconstruct combines the three components back into a series equal to the
// observed input wherever all components are defined, NaN elsewhere.
func (r *Results) Reconstruct() []float64 {
	return Reconstruct(r.Trend, r.Seasonal, r.Residual, r.Method)
}

// SeasonallyAdjusted returns the observed series with the seasonal component
// removed. Defined at every index since the seasonal component carries no
// edge window.
func (r *Results) SeasonallyAdjusted() []float64 {
	res := make([]float64, len(r.Observed))
	copy(res, r.Observed)
	if r.Method == Additive {
		floats.Sub(res, r.Seasonal)
		return res
	}
	floats.Div(res, r.Seasonal)
	return res
}

// Model generates a serializable representation of the fit seasonal factors
// and options. This can be used to seasonally adjust other aligned series
// without recomputing the decomposition.
func (r *Results) Model() Model {
	factors := make([]float64, len(r.Factors))
	copy(factors, r.Factors)
	return Model{
		Options: &Options{
			Period:     r.Period,
			CycleStart: r.CycleStart,
			Method:     r.Method,
		},
		Factors: factors,
	}
}

// PlotDecomposition uses the Apache Echarts library to generate an html file
// showing the observed series against its reconstruction along with each
// component and the seasonally adjusted series.
func (r *Results) PlotDecomposition(path string) error {
	page := components.NewPage()
	page.AddCharts(
		LineTSeries(
			"Observed vs Reconstructed",
			[]string{"Observed", "Reconstructed", "Trend"},
			r.T,
			[][]float64{r.Observed, r.Reconstruct(), r.Trend},
		),
		LineTSeries("Seasonal Component", []string{"Seasonal"}, r.T, [][]float64{r.Seasonal}),
		LineTSeries("Residual Component", []string{"Residual"}, r.T, [][]float64{r.Residual}),
		LineTSeries("Seasonally Adjusted", []string{"Adjusted"}, r.T, [][]float64{r.SeasonallyAdjusted()}),
	)
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return page.Render(io.MultiWriter(file))
}
