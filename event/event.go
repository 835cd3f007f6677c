// Package event describes time spans whose observations should be excluded
// from seasonal factor averaging, e.g. strikes, promotions, or moving
// holidays that distort the regular cycle.
package event

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rickar/cal/v2"
	"github.com/rickar/cal/v2/us"
)

var (
	ErrStartAfterEnd = errors.New("event start time is after end time")
	ErrUnsetTime     = errors.New("unset event start or end time")
	ErrNoEventName   = errors.New("no event name")
)

// Event represents a named time span to exclude. The span is inclusive of
// Start and exclusive of End.
type Event struct {
	Name  string    `json:"name"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

func NewEvent(name string, start, end time.Time) Event {
	return Event{
		Name:  name,
		Start: start,
		End:   end,
	}
}

func (e *Event) Valid() error {
	if e.Start.IsZero() || e.End.IsZero() {
		return ErrUnsetTime
	}
	if e.Start.After(e.End) {
		return ErrStartAfterEnd
	}
	if e.Name == "" {
		return ErrNoEventName
	}
	return nil
}

// Contains reports whether the time point falls inside the event span.
func (e *Event) Contains(tPnt time.Time) bool {
	return (tPnt.After(e.Start) || tPnt.Equal(e.Start)) && tPnt.Before(e.End)
}

// Events is a set of exclusion spans.
type Events []Event

func (evs Events) Valid() error {
	for i := range evs {
		if err := evs[i].Valid(); err != nil {
			return fmt.Errorf("event %q, %w", evs[i].Name, err)
		}
	}
	return nil
}

// Mask returns a boolean per time point marking whether it falls inside any
// event span and should be excluded.
func (evs Events) Mask(t []time.Time) []bool {
	mask := make([]bool, len(t))
	for i, tPnt := range t {
		for j := range evs {
			if evs[j].Contains(tPnt) {
				mask[i] = true
				break
			}
		}
	}
	return mask
}

func Christmas(start, end time.Time, durBefore, durAfter time.Duration) []Event {
	return Holiday(us.ChristmasDay, start, end, durBefore, durAfter)
}

func Thanksgiving(start, end time.Time, durBefore, durAfter time.Duration) []Event {
	return Holiday(us.ThanksgivingDay, start, end, durBefore, durAfter)
}

// Holiday generates one exclusion event per observed occurrence of the
// holiday between start and end, padded by durBefore and durAfter.
func Holiday(hol *cal.Holiday, start, end time.Time, durBefore, durAfter time.Duration) []Event {
	startLoc := start.Location()

	events := []Event{}
	for i := start.Year(); i <= end.Year(); i++ {
		_, observed := hol.Calc(i)
		_, offset := observed.Zone()
		_, startOffset := start.Zone()

		observed = observed.Add(time.Duration(offset) * time.Second).In(startLoc).Add(time.Duration(-startOffset) * time.Second)

		if (observed.After(start) || observed.Equal(start)) && (observed.Before(end) || observed.Equal(end)) {
			events = append(events, Event{
				Name:  strings.ReplaceAll(fmt.Sprintf("%s_%d", hol.Name, i), " ", "_"),
				Start: observed.Add(-durBefore),
				End:   observed.Add(24 * time.Hour).Add(durAfter),
			})
		}
	}
	return events
}
