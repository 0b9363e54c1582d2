package model

import (
	"fmt"
	"time"
)

// ErrInvalidInterval indicates a zero or negative duration interval.
var ErrInvalidInterval = fmt.Errorf("interval end must be after start")

// Interval is a half-open time range [Start, End). Two intervals sharing only
// an endpoint do not overlap.
type Interval struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// NewInterval builds an Interval, rejecting zero or negative durations.
func NewInterval(start, end time.Time) (Interval, error) {
	if !end.After(start) {
		return Interval{}, fmt.Errorf("%w: start=%s end=%s", ErrInvalidInterval, start.Format(time.RFC3339), end.Format(time.RFC3339))
	}
	return Interval{Start: start, End: end}, nil
}

// Overlaps reports whether the two half-open intervals intersect.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.Start.Before(other.End) && other.Start.Before(iv.End)
}

// Contains reports whether the instant t falls inside the interval.
func (iv Interval) Contains(t time.Time) bool {
	return !t.Before(iv.Start) && t.Before(iv.End)
}

// DurationHours returns the interval length in hours.
func (iv Interval) DurationHours() float64 {
	return iv.End.Sub(iv.Start).Hours()
}

// Day returns the calendar day containing the interval's start instant.
// Intervals spanning midnight are attributed wholly to their start day.
func (iv Interval) Day() time.Time {
	y, m, d := iv.Start.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, iv.Start.Location())
}

func (iv Interval) String() string {
	return fmt.Sprintf("%s - %s", iv.Start.Format("2006-01-02 15:04"), iv.End.Format("2006-01-02 15:04"))
}
