package timedataset

import (
	"errors"
	"math"
	"time"
)

var ErrCannotInferFreq = errors.New("cannot infer frequency from time axis")

type TimeSlice []time.Time

func (t TimeSlice) StartTime() time.Time {
	var startTime time.Time
	if len(t) < 1 {
		return startTime
	}
	return t[0]
}

func (t TimeSlice) EndTime() time.Time {
	var lastTime time.Time
	if len(t) < 1 {
		return lastTime
	}
	return t[len(t)-1]
}

// EstimateFreq returns the most common delta between consecutive time points
// preferring the smallest delta on ties.
func (t TimeSlice) EstimateFreq() (time.Duration, error) {
	if len(t) < 2 {
		return 0, ErrCannotInferFreq
	}

	frequencies := make(map[time.Duration]int)
	for i := 1; i < len(t); i++ {
		delta := t[i].Sub(t[i-1])
		frequencies[delta] += 1
	}

	var maxCnt int
	maxDelta := time.Duration(math.MaxInt64)

	for delta, cnt := range frequencies {
		if cnt >= maxCnt && delta < maxDelta {
			maxCnt = cnt
			maxDelta = delta
		}
	}
	return maxDelta, nil
}

// GenerateT synthesizes a fixed-interval time axis of n points ending at the
// minute truncated current time from nowFunc.
func GenerateT(n int, interval time.Duration, nowFunc func() time.Time) []time.Time {
	t := make([]time.Time, 0, n)
	ct := time.Unix(nowFunc().Unix()/60*60, 0).Add(-time.Duration(n) * interval).UTC()
	for i := 0; i < n; i++ {
		t = append(t, ct.Add(interval*time.Duration(i)))
	}
	return t
}

// GenerateMonthlyT synthesizes one timestamp per calendar month starting at
// the month containing start. Calendar arithmetic is used instead of a fixed
// interval since months are not of equal duration.
func GenerateMonthlyT(start time.Time, n int) []time.Time {
	anchor := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, start.Location())
	t := make([]time.Time, 0, n)
	for i := 0; i < n; i++ {
		t = append(t, anchor.AddDate(0, i, 0))
	}
	return t
}
