package event

import (
	"testing"
	"time"

	"github.com/rickar/cal/v2"
	"github.com/rickar/cal/v2/us"
	"github.com/stretchr/testify/assert"
)

func TestEventValid(t *testing.T) {
	testData := map[string]struct {
		ev  Event
		err error
	}{
		"unset times": {
			ev:  Event{Name: "strike"},
			err: ErrUnsetTime,
		},
		"start after end": {
			ev: Event{
				Name:  "strike",
				Start: time.Date(1953, 8, 1, 0, 0, 0, 0, time.UTC),
				End:   time.Date(1953, 7, 1, 0, 0, 0, 0, time.UTC),
			},
			err: ErrStartAfterEnd,
		},
		"no name": {
			ev: Event{
				Start: time.Date(1953, 7, 1, 0, 0, 0, 0, time.UTC),
				End:   time.Date(1953, 8, 1, 0, 0, 0, 0, time.UTC),
			},
			err: ErrNoEventName,
		},
		"valid": {
			ev: Event{
				Name:  "strike",
				Start: time.Date(1953, 7, 1, 0, 0, 0, 0, time.UTC),
				End:   time.Date(1953, 8, 1, 0, 0, 0, 0, time.UTC),
			},
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			err := td.ev.Valid()
			if td.err != nil {
				assert.ErrorIs(t, err, td.err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestEventsMask(t *testing.T) {
	evs := Events{
		NewEvent(
			"strike",
			time.Date(1953, 7, 1, 0, 0, 0, 0, time.UTC),
			time.Date(1953, 9, 1, 0, 0, 0, 0, time.UTC),
		),
	}

	tPnts := []time.Time{
		time.Date(1953, 6, 1, 0, 0, 0, 0, time.UTC),
		time.Date(1953, 7, 1, 0, 0, 0, 0, time.UTC),
		time.Date(1953, 8, 1, 0, 0, 0, 0, time.UTC),
		time.Date(1953, 9, 1, 0, 0, 0, 0, time.UTC),
	}
	assert.Equal(t, []bool{false, true, true, false}, evs.Mask(tPnts))
}

func TestHoliday(t *testing.T) {
	testData := map[string]struct {
		hol       *cal.Holiday
		start     time.Time
		end       time.Time
		durBefore time.Duration
		durAfter  time.Duration
		expected  []Event
	}{
		"simple": {
			hol:   us.ChristmasDay,
			start: time.Date(2024, 12, 8, 1, 0, 0, 0, time.UTC),
			end:   time.Date(2026, 12, 8, 1, 0, 0, 0, time.UTC),
			expected: []Event{
				{
					"Christmas_Day_2024",
					time.Date(2024, 12, 25, 0, 0, 0, 0, time.UTC),
					time.Date(2024, 12, 26, 0, 0, 0, 0, time.UTC),
				},
				{
					"Christmas_Day_2025",
					time.Date(2025, 12, 25, 0, 0, 0, 0, time.UTC),
					time.Date(2025, 12, 26, 0, 0, 0, 0, time.UTC),
				},
			},
		},
		"with buffer": {
			hol:       us.ChristmasDay,
			start:     time.Date(2024, 12, 8, 1, 0, 0, 0, time.UTC),
			end:       time.Date(2026, 12, 8, 1, 0, 0, 0, time.UTC),
			durBefore: 24 * time.Hour,
			durAfter:  2 * 24 * time.Hour,
			expected: []Event{
				{
					"Christmas_Day_2024",
					time.Date(2024, 12, 24, 0, 0, 0, 0, time.UTC),
					time.Date(2024, 12, 28, 0, 0, 0, 0, time.UTC),
				},
				{
					"Christmas_Day_2025",
					time.Date(2025, 12, 24, 0, 0, 0, 0, time.UTC),
					time.Date(2025, 12, 28, 0, 0, 0, 0, time.UTC),
				},
			},
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			res := Holiday(td.hol, td.start, td.end, td.durBefore, td.durAfter)
			assert.Equal(t, td.expected, res)
		})
	}
}
