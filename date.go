package prototypes

import (
	"fmt"
	"time"

	datepb "google.golang.org/genproto/googleapis/type/date"
)

// Date represents a calendar date or a partial one, mirroring the
// google.type.Date message. Zero fields express omission, giving four
// valid shapes described by [DateKind]: a full date, a year, a year
// and month (a credit card expiration), or a month and day (an
// anniversary).
//
// Dates of different kinds have no defined order and compare
// [Incomparable].
type Date struct {
	// Year of the date, 1 to 9999, or 0 for a recurring date.
	Year int32
	// Month of the year, 1 to 12, or 0 for a year on its own.
	Month int32
	// Day of the month, 1 to 31 as valid for the month, or 0 for a
	// date without a day.
	Day int32
}

// DateKind identifies the combination of set fields in a [Date].
type DateKind int8

const (
	// DateKindFull is a full date with year, month, and day.
	DateKindFull DateKind = iota
	// DateKindYearOnly is a year with zero month and day.
	DateKindYearOnly
	// DateKindYearAndMonth is a year and month with a zero day.
	DateKindYearAndMonth
	// DateKindMonthAndDay is a recurring month and day with a zero
	// year.
	DateKindMonthAndDay
)

// String implements the [fmt.Stringer] interface.
func (k DateKind) String() string {
	switch k {
	case DateKindFull:
		return "full"
	case DateKindYearOnly:
		return "year-only"
	case DateKindYearAndMonth:
		return "year-and-month"
	case DateKindMonthAndDay:
		return "month-and-day"
	default:
		return "invalid"
	}
}

// NewDate returns a date of year, month, and day. Zero fields are
// allowed in the combinations [DateKind] names.
//
// NewDate returns an error if a field falls outside its range or the
// combination does not form one of the valid shapes, e.g. February 30
// or a day without a month. A zero year admits February 29.
func NewDate(year, month, day int32) (Date, error) {
	if err := validateDate(year, month, day); err != nil {
		return Date{}, fmt.Errorf("creating date %04d-%02d-%02d: %w", year, month, day, err)
	}
	return Date{Year: year, Month: month, Day: day}, nil
}

// MustNewDate is like [NewDate] but panics if the date is invalid.
// It simplifies safe initialization of global variables holding dates.
func MustNewDate(year, month, day int32) Date {
	d, err := NewDate(year, month, day)
	if err != nil {
		panic(fmt.Sprintf("MustNewDate(%v, %v, %v) failed: %v", year, month, day, err))
	}
	return d
}

// dateDaysInMonth is the day count for date validation. A zero year
// marks a recurring date, which must admit February 29.
func dateDaysInMonth(year, month int32) int32 {
	if year == 0 && month == 2 {
		return 29
	}
	return int32(daysInMonth(int64(year), int(month)))
}

func validateDate(year, month, day int32) error {
	if year < 0 || year > 9999 {
		return fmt.Errorf("year %v not in [0, 9999]: %w", year, ErrOutOfRange)
	}
	if month < 0 || month > 12 {
		return fmt.Errorf("month %v not in [0, 12]: %w", month, ErrOutOfRange)
	}
	if day < 0 || day > 31 {
		return fmt.Errorf("day %v not in [0, 31]: %w", day, ErrOutOfRange)
	}
	if year == 0 {
		if month == 0 {
			return fmt.Errorf("zero month with zero year: %w", ErrInvalidDate)
		}
		if day == 0 {
			return fmt.Errorf("zero day with zero year: %w", ErrInvalidDate)
		}
	} else if month == 0 {
		if day != 0 {
			return fmt.Errorf("day without month: %w", ErrInvalidDate)
		}
		return nil
	}
	if day != 0 {
		if maxDay := dateDaysInMonth(year, month); day > maxDay {
			return fmt.Errorf("day %v exceeds %v for month %v: %w", day, maxDay, month, ErrInvalidDate)
		}
	}
	return nil
}

// Kind returns the combination of set fields. Invalid combinations
// fall through to [DateKindFull]; use [Date.IsValid] to check
// validity.
func (d Date) Kind() DateKind {
	switch {
	case d.Year != 0 && d.Month == 0 && d.Day == 0:
		return DateKindYearOnly
	case d.Year != 0 && d.Month != 0 && d.Day == 0:
		return DateKindYearAndMonth
	case d.Year == 0 && d.Month != 0 && d.Day != 0:
		return DateKindMonthAndDay
	default:
		return DateKindFull
	}
}

// IsValid returns true if the fields satisfy the constraints checked
// by [NewDate].
func (d Date) IsValid() bool {
	return validateDate(d.Year, d.Month, d.Day) == nil
}

// HasYear returns true if the year is set.
func (d Date) HasYear() bool {
	return d.Year != 0
}

// IsYearOnly returns true if only the year is set.
func (d Date) IsYearOnly() bool {
	return d.Kind() == DateKindYearOnly
}

// IsYearAndMonth returns true if the year and month are set without a
// day.
func (d Date) IsYearAndMonth() bool {
	return d.Kind() == DateKindYearAndMonth
}

// IsMonthAndDay returns true if the month and day are set without a
// year.
func (d Date) IsMonthAndDay() bool {
	return d.Kind() == DateKindMonthAndDay
}

// Compare reports the ordering of d relative to e. Two dates are
// ordered only when both are valid and of the same [DateKind];
// otherwise the result is [Incomparable].
func (d Date) Compare(e Date) Ordering {
	if !d.IsValid() || !e.IsValid() {
		return Incomparable
	}
	if d.Kind() != e.Kind() {
		return Incomparable
	}
	switch {
	case d.Year != e.Year:
		return orderingFromInt(int(d.Year - e.Year))
	case d.Month != e.Month:
		return orderingFromInt(int(d.Month - e.Month))
	default:
		return orderingFromInt(int(d.Day - e.Day))
	}
}

// String implements the [fmt.Stringer] interface and renders the set
// fields of the date: "2024-01-15", "2025-12", "2024", or "05-20"
// depending on the kind.
func (d Date) String() string {
	switch d.Kind() {
	case DateKindYearOnly:
		return fmt.Sprintf("%04d", d.Year)
	case DateKindYearAndMonth:
		return fmt.Sprintf("%04d-%02d", d.Year, d.Month)
	case DateKindMonthAndDay:
		return fmt.Sprintf("%02d-%02d", d.Month, d.Day)
	default:
		return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
	}
}

// Today returns the current date in UTC.
func Today() Date {
	return DateFromTime(time.Now().UTC())
}

// DateFromTime converts the date part of a [time.Time] in its
// location to a full date.
func DateFromTime(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: int32(y), Month: int32(m), Day: int32(d)}
}

// Time converts the date to the first instant of that day in loc.
// A nil loc means UTC.
//
// Time returns an error if the date is not a valid full date.
func (d Date) Time(loc *time.Location) (time.Time, error) {
	if err := validateDate(d.Year, d.Month, d.Day); err != nil {
		return time.Time{}, fmt.Errorf("converting %v to time.Time: %w", d, err)
	}
	if d.Kind() != DateKindFull {
		return time.Time{}, fmt.Errorf("converting %v to time.Time: %v date: %w", d, d.Kind(), ErrInvalidDate)
	}
	if loc == nil {
		loc = time.UTC
	}
	return time.Date(int(d.Year), time.Month(d.Month), int(d.Day), 0, 0, 0, 0, loc), nil
}

// Proto converts the date to its protobuf message.
func (d Date) Proto() *datepb.Date {
	return &datepb.Date{Year: d.Year, Month: d.Month, Day: d.Day}
}

// DateFromProto converts a protobuf date message to a validated date.
//
// DateFromProto returns an error under the same conditions as
// [NewDate]. A nil message fails: the all-zero date is not a valid
// shape.
func DateFromProto(pb *datepb.Date) (Date, error) {
	return NewDate(pb.GetYear(), pb.GetMonth(), pb.GetDay())
}
