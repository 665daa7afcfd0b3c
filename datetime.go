package prototypes

import (
	"fmt"
	"strings"
	"time"

	datetimepb "google.golang.org/genproto/googleapis/type/datetime"
)

// DateTime represents civil time, a wall-clock reading with optional
// location semantics, mirroring the google.type.DateTime message. A
// zero year marks a recurring occasion such as an anniversary.
//
// The Offset field carries the location as one of three states: nil
// for local time, [UTCOffset] for a fixed shift from UTC, or
// [TimeZone] for an IANA zone resolved by the reader.
type DateTime struct {
	// Year of the date, 1 to 9999, or 0 for a datetime without a
	// specific year.
	Year int32
	// Month of the year, 1 to 12.
	Month int32
	// Day of the month, 1 to 31 as valid for the month and year.
	Day int32
	// Hours of day, 0 to 23.
	Hours int32
	// Minutes of hour, 0 to 59.
	Minutes int32
	// Seconds of minute, 0 to 59. Leap seconds are not represented.
	Seconds int32
	// Nanos is the sub-second part, 0 to 999999999.
	Nanos int32
	// Offset locates the wall-clock reading. A nil offset means
	// local time in an unstated location.
	Offset TimeOffset
}

// TimeOffset locates a [DateTime] relative to UTC. The two
// implementations are [UTCOffset] and [TimeZone].
type TimeOffset interface {
	isTimeOffset()
}

// UTCOffset is a fixed shift from UTC, e.g. +01:00 stored as a
// one-hour [Duration].
type UTCOffset struct {
	Offset Duration
}

func (UTCOffset) isTimeOffset() {}

// TimeZone is a named IANA time zone, e.g. "America/New_York".
type TimeZone struct {
	// ID is the IANA Time Zone Database name.
	ID string
	// Version is an optional IANA TZ database version number, e.g.
	// "2019a".
	Version string
}

func (TimeZone) isTimeOffset() {}

// String implements the [fmt.Stringer] interface and returns the
// zone identifier.
func (z TimeZone) String() string {
	return z.ID
}

// Validate checks the field ranges of the datetime and returns the
// first violation found. The day must exist in the month, accounting
// for leap years; a zero year admits February 29.
func (d DateTime) Validate() error {
	if d.Year < 0 || d.Year > 9999 {
		return fmt.Errorf("year %v not in [0, 9999]: %w", d.Year, ErrOutOfRange)
	}
	if d.Month < 1 || d.Month > 12 {
		return fmt.Errorf("month %v not in [1, 12]: %w", d.Month, ErrOutOfRange)
	}
	if maxDay := dateDaysInMonth(d.Year, d.Month); d.Day < 1 || d.Day > maxDay {
		return fmt.Errorf("day %v not in [1, %v] for month %v: %w", d.Day, maxDay, d.Month, ErrInvalidDate)
	}
	if d.Hours < 0 || d.Hours > 23 {
		return fmt.Errorf("hours %v not in [0, 23]: %w", d.Hours, ErrOutOfRange)
	}
	if d.Minutes < 0 || d.Minutes > 59 {
		return fmt.Errorf("minutes %v not in [0, 59]: %w", d.Minutes, ErrOutOfRange)
	}
	if d.Seconds < 0 || d.Seconds > 59 {
		return fmt.Errorf("seconds %v not in [0, 59]: %w", d.Seconds, ErrOutOfRange)
	}
	if d.Nanos < 0 || d.Nanos > 999_999_999 {
		return fmt.Errorf("nanos %v not in [0, 999999999]: %w", d.Nanos, ErrOutOfRange)
	}
	return nil
}

// IsValid returns true if [DateTime.Validate] finds no violation.
func (d DateTime) IsValid() bool {
	return d.Validate() == nil
}

// HasYear returns true if the datetime has a specific year.
func (d DateTime) HasYear() bool {
	return d.Year != 0
}

// HasUTCOffset returns true if the datetime is located by a fixed
// UTC offset.
func (d DateTime) HasUTCOffset() bool {
	_, ok := d.Offset.(UTCOffset)
	return ok
}

// HasTimeZone returns true if the datetime is located by a named
// time zone.
func (d DateTime) HasTimeZone() bool {
	_, ok := d.Offset.(TimeZone)
	return ok
}

// IsLocal returns true if the datetime carries no location.
func (d DateTime) IsLocal() bool {
	return d.Offset == nil
}

// WithUTCOffset returns a copy of the datetime located by the given
// fixed UTC offset, replacing any previous location.
func (d DateTime) WithUTCOffset(offset Duration) DateTime {
	d.Offset = UTCOffset{Offset: offset}
	return d
}

// WithTimeZone returns a copy of the datetime located by the given
// named time zone, replacing any previous location.
func (d DateTime) WithTimeZone(zone TimeZone) DateTime {
	d.Offset = zone
	return d
}

// compareTimeOffsets orders locations. Absent locations sort before
// present ones, fixed offsets order by their durations, and named
// zones cannot be ordered without zone data.
func compareTimeOffsets(a, b TimeOffset) Ordering {
	switch {
	case a == nil && b == nil:
		return Equal
	case a == nil:
		return Less
	case b == nil:
		return Greater
	}
	ao, aok := a.(UTCOffset)
	bo, bok := b.(UTCOffset)
	if !aok || !bok {
		return Incomparable
	}
	return orderingFromInt(ao.Offset.Cmp(bo.Offset))
}

// Compare reports the ordering of d relative to e. Two datetimes are
// [Incomparable] when either is invalid, when a recurring datetime
// meets a dated one, or when equal wall-clock readings differ only by
// locations that cannot be ordered.
//
// The comparison is over wall-clock fields, not absolute instants:
// offsets only break ties.
func (d DateTime) Compare(e DateTime) Ordering {
	if !d.IsValid() || !e.IsValid() {
		return Incomparable
	}
	if (d.Year == 0) != (e.Year == 0) {
		return Incomparable
	}
	fields := [...][2]int32{
		{d.Year, e.Year},
		{d.Month, e.Month},
		{d.Day, e.Day},
		{d.Hours, e.Hours},
		{d.Minutes, e.Minutes},
		{d.Seconds, e.Seconds},
		{d.Nanos, e.Nanos},
	}
	for _, f := range fields {
		switch {
		case f[0] < f[1]:
			return Less
		case f[0] > f[1]:
			return Greater
		}
	}
	return compareTimeOffsets(d.Offset, e.Offset)
}

// String implements the [fmt.Stringer] interface and renders the
// datetime in an ISO 8601 style. The year is omitted when zero, a
// fixed offset appears as "Z" or "+hh:mm"/"-hh:mm", and a named zone
// is appended in brackets:
//
//	2024-01-15T12:30:45+01:00
//	12-25T08:00:00
//	2024-01-15T12:30:45[America/New_York]
func (d DateTime) String() string {
	var b strings.Builder
	if d.Year != 0 {
		fmt.Fprintf(&b, "%04d-", d.Year)
	}
	fmt.Fprintf(&b, "%02d-%02dT%02d:%02d:%02d", d.Month, d.Day, d.Hours, d.Minutes, d.Seconds)
	switch o := d.Offset.(type) {
	case UTCOffset:
		n := o.Offset.Normalized()
		switch {
		case n.Seconds < 0:
			secs := -n.Seconds
			fmt.Fprintf(&b, "-%02d:%02d", secs/SecondsPerHour, secs%SecondsPerHour/SecondsPerMinute)
		case n.Seconds == 0 && n.Nanos == 0:
			b.WriteByte('Z')
		default:
			fmt.Fprintf(&b, "+%02d:%02d", n.Seconds/SecondsPerHour, n.Seconds%SecondsPerHour/SecondsPerMinute)
		}
	case TimeZone:
		fmt.Fprintf(&b, "[%s]", o.ID)
	}
	return b.String()
}

// DateTimeFromTime converts a [time.Time] to a datetime located by
// the fixed UTC offset of the moment's location.
func DateTimeFromTime(t time.Time) DateTime {
	_, offsetSeconds := t.Zone()
	return DateTime{
		Year:    int32(t.Year()),
		Month:   int32(t.Month()),
		Day:     int32(t.Day()),
		Hours:   int32(t.Hour()),
		Minutes: int32(t.Minute()),
		Seconds: int32(t.Second()),
		Nanos:   int32(t.Nanosecond()),
		Offset:  UTCOffset{Offset: Duration{Seconds: int64(offsetSeconds)}},
	}
}

// Time converts the datetime to a [time.Time] in a fixed-offset
// location.
//
// Time returns an error if the datetime is invalid, has no specific
// year, or is not located by a [UTCOffset] fitting whole seconds in
// an int32.
func (d DateTime) Time() (time.Time, error) {
	if err := d.Validate(); err != nil {
		return time.Time{}, fmt.Errorf("converting %v to time: %w", d, err)
	}
	if d.Year == 0 {
		return time.Time{}, fmt.Errorf("converting %v to time: no year: %w", d, ErrOutOfRange)
	}
	o, ok := d.Offset.(UTCOffset)
	if !ok {
		return time.Time{}, fmt.Errorf("converting %v to time: no fixed UTC offset: %w", d, ErrOutOfRange)
	}
	n := o.Offset.Normalized()
	if n.Seconds < -86_399 || n.Seconds > 86_399 || n.Nanos != 0 {
		return time.Time{}, fmt.Errorf("converting %v to time: offset %v not a whole-second zone shift: %w", d, n, ErrOutOfRange)
	}
	loc := time.UTC
	if n.Seconds != 0 {
		loc = time.FixedZone("", int(n.Seconds))
	}
	return time.Date(int(d.Year), time.Month(d.Month), int(d.Day), int(d.Hours), int(d.Minutes), int(d.Seconds), int(d.Nanos), loc), nil
}

// Proto converts the datetime to its protobuf message. The location
// maps onto the message's time_offset oneof.
func (d DateTime) Proto() *datetimepb.DateTime {
	pb := &datetimepb.DateTime{
		Year:    d.Year,
		Month:   d.Month,
		Day:     d.Day,
		Hours:   d.Hours,
		Minutes: d.Minutes,
		Seconds: d.Seconds,
		Nanos:   d.Nanos,
	}
	switch o := d.Offset.(type) {
	case UTCOffset:
		pb.TimeOffset = &datetimepb.DateTime_UtcOffset{UtcOffset: o.Offset.Proto()}
	case TimeZone:
		pb.TimeOffset = &datetimepb.DateTime_TimeZone{TimeZone: &datetimepb.TimeZone{Id: o.ID, Version: o.Version}}
	}
	return pb
}

// DateTimeFromProto converts a protobuf datetime message to a
// validated datetime.
//
// DateTimeFromProto returns an error under the same conditions as
// [DateTime.Validate], and for a nil message.
func DateTimeFromProto(pb *datetimepb.DateTime) (DateTime, error) {
	if pb == nil {
		return DateTime{}, fmt.Errorf("converting nil datetime message: %w", ErrInvalidDate)
	}
	d := DateTime{
		Year:    pb.GetYear(),
		Month:   pb.GetMonth(),
		Day:     pb.GetDay(),
		Hours:   pb.GetHours(),
		Minutes: pb.GetMinutes(),
		Seconds: pb.GetSeconds(),
		Nanos:   pb.GetNanos(),
	}
	switch o := pb.GetTimeOffset().(type) {
	case *datetimepb.DateTime_UtcOffset:
		d.Offset = UTCOffset{Offset: DurationFromProto(o.UtcOffset)}
	case *datetimepb.DateTime_TimeZone:
		d.Offset = TimeZone{ID: o.TimeZone.GetId(), Version: o.TimeZone.GetVersion()}
	}
	if err := d.Validate(); err != nil {
		return DateTime{}, fmt.Errorf("converting datetime message: %w", err)
	}
	return d, nil
}
