package prototypes

import (
	"fmt"
	"time"

	timeofdaypb "google.golang.org/genproto/googleapis/type/timeofday"
)

// TimeOfDay represents a wall-clock time with nanosecond resolution
// and no date or time zone, mirroring the google.type.TimeOfDay
// message.
type TimeOfDay struct {
	// Hours of day, 0 to 23.
	Hours int32
	// Minutes of hour, 0 to 59.
	Minutes int32
	// Seconds of minute, 0 to 59. Leap seconds are not represented.
	Seconds int32
	// Nanos is the sub-second part, 0 to 999999999.
	Nanos int32
}

// Common clock values.
var (
	Midnight = TimeOfDay{}
	Noon     = TimeOfDay{Hours: 12}
)

// OnTheHour returns the clock time at the start of the given hour,
// e.g. OnTheHour(9) is "09:00:00".
//
// OnTheHour returns an error if the hour is not in [0, 23].
func OnTheHour(hours int32) (TimeOfDay, error) {
	return NewTimeOfDay(hours, 0, 0, 0)
}

// NewTimeOfDay returns a validated clock time.
//
// NewTimeOfDay returns an error if any field falls outside its range.
func NewTimeOfDay(hours, minutes, seconds, nanos int32) (TimeOfDay, error) {
	if err := validateTimeOfDay(hours, minutes, seconds, nanos); err != nil {
		return TimeOfDay{}, fmt.Errorf("creating time %02d:%02d:%02d.%09d: %w", hours, minutes, seconds, nanos, err)
	}
	return TimeOfDay{Hours: hours, Minutes: minutes, Seconds: seconds, Nanos: nanos}, nil
}

// MustNewTimeOfDay is like [NewTimeOfDay] but panics if the time is
// invalid. It simplifies safe initialization of global variables
// holding clock times.
func MustNewTimeOfDay(hours, minutes, seconds, nanos int32) TimeOfDay {
	t, err := NewTimeOfDay(hours, minutes, seconds, nanos)
	if err != nil {
		panic(fmt.Sprintf("MustNewTimeOfDay(%v, %v, %v, %v) failed: %v", hours, minutes, seconds, nanos, err))
	}
	return t
}

func validateTimeOfDay(hours, minutes, seconds, nanos int32) error {
	if hours < 0 || hours > 23 {
		return fmt.Errorf("hours %v not in [0, 23]: %w", hours, ErrOutOfRange)
	}
	if minutes < 0 || minutes > 59 {
		return fmt.Errorf("minutes %v not in [0, 59]: %w", minutes, ErrOutOfRange)
	}
	if seconds < 0 || seconds > 59 {
		return fmt.Errorf("seconds %v not in [0, 59]: %w", seconds, ErrOutOfRange)
	}
	if nanos < 0 || nanos > 999_999_999 {
		return fmt.Errorf("nanos %v not in [0, 999999999]: %w", nanos, ErrOutOfRange)
	}
	return nil
}

// IsValid returns true if the fields satisfy the ranges checked by
// [NewTimeOfDay].
func (t TimeOfDay) IsValid() bool {
	return validateTimeOfDay(t.Hours, t.Minutes, t.Seconds, t.Nanos) == nil
}

// NanosSinceMidnight returns the clock time resolved to a single
// nanosecond count since midnight.
func (t TimeOfDay) NanosSinceMidnight() int64 {
	return int64(t.Hours)*SecondsPerHour*NanosPerSecond +
		int64(t.Minutes)*SecondsPerMinute*NanosPerSecond +
		int64(t.Seconds)*NanosPerSecond +
		int64(t.Nanos)
}

// Cmp compares clock times by their nanoseconds since midnight and
// returns:
//
//	-1 if t < e
//	 0 if t = e
//	+1 if t > e
func (t TimeOfDay) Cmp(e TimeOfDay) int {
	a, b := t.NanosSinceMidnight(), e.NanosSinceMidnight()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Compare reports the ordering of t relative to e.
// Clock times are totally ordered, so the result is never
// [Incomparable].
func (t TimeOfDay) Compare(e TimeOfDay) Ordering {
	return orderingFromInt(t.Cmp(e))
}

// String implements the [fmt.Stringer] interface and renders the time
// as "HH:MM:SS", with a nine-digit fraction appended only when nanos
// are set, e.g. "13:05:00" or "13:05:00.000000500".
func (t TimeOfDay) String() string {
	if t.Nanos > 0 {
		return fmt.Sprintf("%02d:%02d:%02d.%09d", t.Hours, t.Minutes, t.Seconds, t.Nanos)
	}
	return fmt.Sprintf("%02d:%02d:%02d", t.Hours, t.Minutes, t.Seconds)
}

// TimeOfDayFromTime converts the clock part of a [time.Time] in its
// location to a time of day.
func TimeOfDayFromTime(t time.Time) TimeOfDay {
	return TimeOfDay{
		Hours:   int32(t.Hour()),
		Minutes: int32(t.Minute()),
		Seconds: int32(t.Second()),
		Nanos:   int32(t.Nanosecond()),
	}
}

// Proto converts the clock time to its protobuf message.
func (t TimeOfDay) Proto() *timeofdaypb.TimeOfDay {
	return &timeofdaypb.TimeOfDay{
		Hours:   t.Hours,
		Minutes: t.Minutes,
		Seconds: t.Seconds,
		Nanos:   t.Nanos,
	}
}

// TimeOfDayFromProto converts a protobuf time-of-day message to a
// validated clock time.
//
// TimeOfDayFromProto returns an error under the same conditions as
// [NewTimeOfDay]. A nil message converts to midnight.
func TimeOfDayFromProto(pb *timeofdaypb.TimeOfDay) (TimeOfDay, error) {
	if pb == nil {
		return Midnight, nil
	}
	return NewTimeOfDay(pb.GetHours(), pb.GetMinutes(), pb.GetSeconds(), pb.GetNanos())
}
