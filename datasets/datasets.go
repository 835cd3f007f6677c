// Package datasets ships well-known reference series for trying out seasonal
// decomposition, along with a small CSV loader for external series.
package datasets

import (
	"bytes"
	"embed"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"strconv"
	"time"

	"github.com/aouyang1/go-decompose/timedataset"
)

//go:embed airpassengers.csv
var embeddedData embed.FS

var ErrNoRecords = errors.New("no records in csv")

// AirPassengersPeriod is the seasonal cycle length of the air passenger
// dataset, 12 observations per year.
const AirPassengersPeriod = 12

// CSVOptions holds options for loading a series from CSV. The first column is
// parsed as the observation time and the second as the observed value. A
// value of "NA" is loaded as an undefined observation (NaN).
type CSVOptions struct {
	DateFormat string
	HasHeader  bool
}

func NewDefaultCSVOptions() *CSVOptions {
	return &CSVOptions{
		DateFormat: "2006-01",
		HasHeader:  true,
	}
}

// AirPassengers returns the monthly totals of international airline
// passengers from January 1949 through December 1960, the canonical example
// of a multiplicative seasonal series.
func AirPassengers() (*timedataset.TimeDataset, error) {
	raw, err := embeddedData.ReadFile("airpassengers.csv")
	if err != nil {
		return nil, fmt.Errorf("unable to read embedded air passenger data, %w", err)
	}
	return LoadCSV(bytes.NewReader(raw), nil)
}

// LoadCSV reads a two column time/value CSV into a TimeDataset.
func LoadCSV(r io.Reader, opt *CSVOptions) (*timedataset.TimeDataset, error) {
	if opt == nil {
		opt = NewDefaultCSVOptions()
	}

	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	if opt.HasHeader {
		if _, err := reader.Read(); err != nil {
			return nil, fmt.Errorf("unable to read csv header, %w", err)
		}
	}

	var t []time.Time
	var y []float64
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("unable to read csv record, %w", err)
		}
		if len(record) < 2 {
			slog.Warn("skipping csv record with too few fields", "fields", len(record))
			continue
		}

		tPnt, err := time.Parse(opt.DateFormat, record[0])
		if err != nil {
			return nil, fmt.Errorf("unable to parse record time %q, %w", record[0], err)
		}

		val := math.NaN()
		if record[1] != "NA" {
			val, err = strconv.ParseFloat(record[1], 64)
			if err != nil {
				return nil, fmt.Errorf("unable to parse record value %q, %w", record[1], err)
			}
		}

		t = append(t, tPnt)
		y = append(y, val)
	}
	if len(y) == 0 {
		return nil, ErrNoRecords
	}

	return timedataset.NewUnivariateDataset(t, y)
}
