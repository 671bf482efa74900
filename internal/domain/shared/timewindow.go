// Package shared holds value objects used by more than one aggregate.
package shared

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidTimeOfDay  = errors.New("invalid time of day")
	ErrInvalidTimeWindow = errors.New("open time must be before close time")
)

const microsPerDay = int64(24 * time.Hour / time.Microsecond)

// TimeOfDay is a clock time with no date, stored as microseconds since
// midnight to match the PostgreSQL `time` column precision.
type TimeOfDay struct {
	micros int64
}

func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return TimeOfDay{}, ErrInvalidTimeOfDay
	}
	d := time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute
	return TimeOfDay{micros: int64(d / time.Microsecond)}, nil
}

// ParseTimeOfDay parses "HH:MM" wall-clock notation.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return TimeOfDay{}, ErrInvalidTimeOfDay
	}
	return NewTimeOfDay(t.Hour(), t.Minute())
}

func TimeOfDayFromMicros(micros int64) (TimeOfDay, error) {
	if micros < 0 || micros >= microsPerDay {
		return TimeOfDay{}, ErrInvalidTimeOfDay
	}
	return TimeOfDay{micros: micros}, nil
}

func (t TimeOfDay) Micros() int64 {
	return t.micros
}

func (t TimeOfDay) Before(other TimeOfDay) bool {
	return t.micros < other.micros
}

func (t TimeOfDay) String() string {
	d := time.Duration(t.micros) * time.Microsecond
	return fmt.Sprintf("%02d:%02d", int(d.Hours()), int(d.Minutes())%60)
}

// TimeWindow is a daily open/close interval, e.g. a store's pickup hours.
type TimeWindow struct {
	open  TimeOfDay
	close TimeOfDay
}

func NewTimeWindow(open, close TimeOfDay) (TimeWindow, error) {
	if !open.Before(close) {
		return TimeWindow{}, ErrInvalidTimeWindow
	}
	return TimeWindow{open: open, close: close}, nil
}

func (w TimeWindow) Open() TimeOfDay  { return w.open }
func (w TimeWindow) Close() TimeOfDay { return w.close }

// Overlaps reports whether two windows share at least one instant.
// Boundaries are inclusive: [09:00,12:00] overlaps [12:00,15:00].
func (w TimeWindow) Overlaps(other TimeWindow) bool {
	return w.open.micros <= other.close.micros && w.close.micros >= other.open.micros
}

func (w TimeWindow) String() string {
	return w.open.String() + "-" + w.close.String()
}
