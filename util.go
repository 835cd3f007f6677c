package decompose

import (
	"math"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// LineTSeries generates an echart multi-line chart for some arbitrary
// time/value combination. The input y is a slice of series that must have
// the same length as the input time slice. Undefined (NaN) points render as
// gaps.
func LineTSeries(title string, seriesName []string, t []time.Time, y [][]float64) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(
			opts.Title{
				Title: title,
			},
		),
	)

	lineData := make([][]opts.LineData, len(y))
	for i := 0; i < len(y); i++ {
		lineData[i] = make([]opts.LineData, 0, len(y[i]))
		for j := 0; j < len(y[i]); j++ {
			if math.IsNaN(y[i][j]) {
				// echarts convention for a missing sample
				lineData[i] = append(lineData[i], opts.LineData{Value: "-"})
				continue
			}
			lineData[i] = append(lineData[i], opts.LineData{Value: y[i][j]})
		}
	}

	line = line.SetXAxis(t)
	for i, series := range seriesName {
		line = line.AddSeries(series, lineData[i])
	}

	return line
}
