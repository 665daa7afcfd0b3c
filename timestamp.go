package prototypes

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"google.golang.org/protobuf/types/known/timestamppb"
)

// Seconds of the first and last instant representable by [time.Time]
// conversions, 0001-01-01T00:00:00Z and 9999-12-31T23:59:59Z.
const (
	minTimeSeconds = -62_135_596_800
	maxTimeSeconds = 253_402_300_799
)

var errInvalidTimestamp = errors.New("invalid timestamp syntax")

// Timestamp represents an instant in time as seconds and nanoseconds
// since the Unix epoch, independent of any calendar or time zone,
// mirroring the google.protobuf.Timestamp message.
//
// A Timestamp is normalized when Nanos is in [0, 1e9): instants before
// the epoch carry negative Seconds and a positive nanosecond remainder,
// so 1969-12-31T23:59:59.5Z is {Seconds: -1, Nanos: 500000000}.
// Arithmetic saturates instead of failing: an instant pushed past the
// representable extremes clamps to the extreme.
type Timestamp struct {
	// Seconds since 1970-01-01T00:00:00Z.
	Seconds int64
	// Nanos is the non-negative sub-second offset, in nanoseconds.
	Nanos int32
}

// NewTimestamp returns a normalized timestamp of seconds and nanos
// since the Unix epoch. The two parts are summed; seconds saturate at
// the int64 extremes.
func NewTimestamp(seconds int64, nanos int32) Timestamp {
	return Timestamp{Seconds: seconds, Nanos: nanos}.Normalized()
}

// Normalized returns the timestamp with Nanos brought into [0, 1e9),
// borrowing from or carrying into Seconds. Seconds saturate at the
// int64 extremes.
func (t Timestamp) Normalized() Timestamp {
	carry := floorDiv(int64(t.Nanos), NanosPerSecond)
	return Timestamp{
		Seconds: saturatingAdd64(t.Seconds, carry),
		Nanos:   int32(floorMod(int64(t.Nanos), NanosPerSecond)),
	}
}

// Normalize normalizes the timestamp in place.
// See [Timestamp.Normalized] for details.
func (t *Timestamp) Normalize() {
	*t = t.Normalized()
}

// AddDuration returns the timestamp shifted forward by d.
// The operation saturates: a result past the representable extremes
// clamps instead of failing.
func (t Timestamp) AddDuration(d Duration) Timestamp {
	// Normalizing both operands bounds the nanos sum within int32.
	a, n := t.Normalized(), d.Normalized()
	return Timestamp{
		Seconds: saturatingAdd64(a.Seconds, n.Seconds),
		Nanos:   a.Nanos + n.Nanos,
	}.Normalized()
}

// SubDuration returns the timestamp shifted backward by d.
// Like [Timestamp.AddDuration], the operation saturates.
func (t Timestamp) SubDuration(d Duration) Timestamp {
	a, n := t.Normalized(), d.Normalized()
	return Timestamp{
		Seconds: saturatingSub64(a.Seconds, n.Seconds),
		Nanos:   a.Nanos - n.Nanos,
	}.Normalized()
}

// Sub returns the elapsed duration from e to t.
//
// Sub returns an error if the span between the two instants does not
// fit the duration range.
func (t Timestamp) Sub(e Timestamp) (Duration, error) {
	a, b := t.Normalized(), e.Normalized()
	secs, _ := int128FromInt64(a.Seconds).sub(int128FromInt64(b.Seconds))
	total, _ := secs.mulInt64(NanosPerSecond)
	total, _ = total.add(int128FromInt64(int64(a.Nanos - b.Nanos)))
	d, err := durationFromTotalNanos(total)
	if err != nil {
		return Duration{}, fmt.Errorf("computing [%v - %v]: %w", t, e, err)
	}
	return d, nil
}

// Cmp chronologically compares timestamps and returns:
//
//	-1 if t < e
//	 0 if t = e
//	+1 if t > e
//
// Both operands are normalized before comparing, so an unnormalized
// timestamp compares equal to its normalized form.
func (t Timestamp) Cmp(e Timestamp) int {
	a, b := t.Normalized(), e.Normalized()
	switch {
	case a.Seconds != b.Seconds:
		if a.Seconds < b.Seconds {
			return -1
		}
		return 1
	case a.Nanos != b.Nanos:
		if a.Nanos < b.Nanos {
			return -1
		}
		return 1
	default:
		return 0
	}
}

// Compare reports the ordering of t relative to e.
// Timestamps are totally ordered, so the result is never [Incomparable].
func (t Timestamp) Compare(e Timestamp) Ordering {
	return orderingFromInt(t.Cmp(e))
}

// isLeapYear follows the proleptic Gregorian rules.
func isLeapYear(year int64) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// daysInMonth returns the day count of the month in the given year.
// The month must be in [1, 12].
func daysInMonth(year int64, month int) int {
	switch month {
	case 4, 6, 9, 11:
		return 30
	case 2:
		if isLeapYear(year) {
			return 29
		}
		return 28
	default:
		return 31
	}
}

// daysFromCivil returns the day count since 1970-01-01 of the proleptic
// Gregorian date y-m-d.
func daysFromCivil(y int64, m, d int) int64 {
	if m <= 2 {
		y--
	}
	era := floorDiv(y, 400)
	yoe := y - era*400
	mp := int64(m) - 3
	if m <= 2 {
		mp = int64(m) + 9
	}
	doy := (153*mp+2)/5 + int64(d) - 1
	doe := yoe*365 + yoe/4 - yoe/100 + doy
	return era*146097 + doe - 719468
}

// civilFromDays inverts [daysFromCivil].
func civilFromDays(z int64) (y int64, m, d int) {
	z += 719468
	era := floorDiv(z, 146097)
	doe := z - era*146097
	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 365
	y = yoe + era*400
	doy := doe - (365*yoe + yoe/4 - yoe/100)
	mp := (5*doy + 2) / 153
	d = int(doy - (153*mp+2)/5 + 1)
	if mp < 10 {
		m = int(mp + 3)
	} else {
		m = int(mp - 9)
	}
	if m <= 2 {
		y++
	}
	return y, m, d
}

// String implements the [fmt.Stringer] interface and renders the
// timestamp in RFC 3339 form with a "Z" suffix and trailing zeros
// trimmed from the fraction, e.g. "1970-01-01T00:00:00.5Z".
// The proleptic Gregorian calendar extends past the conventional
// RFC 3339 year range in both directions.
//
// See also method [ParseTimestamp].
func (t Timestamp) String() string {
	n := t.Normalized()
	days := floorDiv(n.Seconds, SecondsPerDay)
	secs := floorMod(n.Seconds, SecondsPerDay)
	year, month, day := civilFromDays(days)
	var b strings.Builder
	if year < 0 {
		b.WriteByte('-')
		year = -year
	}
	fmt.Fprintf(&b, "%04d-%02d-%02dT%02d:%02d:%02d",
		year, month, day, secs/3600, secs/60%60, secs%60)
	if nanos := uint32(n.Nanos); nanos > 0 {
		width := 9
		for nanos%10 == 0 {
			nanos /= 10
			width--
		}
		fmt.Fprintf(&b, ".%0*d", width, nanos)
	}
	b.WriteByte('Z')
	return b.String()
}

// ParseTimestamp converts an RFC 3339 string to a normalized timestamp.
// The offset may be "Z" or a numeric ±hh:mm; a numeric offset is
// resolved into the stored UTC instant. The fraction, when present,
// carries at most nine digits.
func ParseTimestamp(s string) (Timestamp, error) {
	t, err := parseTimestamp(s)
	if err != nil {
		return Timestamp{}, fmt.Errorf("parsing timestamp %q: %w", s, err)
	}
	return t, nil
}

func parseTimestamp(s string) (Timestamp, error) {
	sep := strings.IndexAny(s, "Tt")
	if sep < 0 {
		return Timestamp{}, errInvalidTimestamp
	}
	datePart, rest := s[:sep], s[sep+1:]

	var offsetSecs int64
	var clock string
	switch {
	case strings.HasSuffix(rest, "Z"), strings.HasSuffix(rest, "z"):
		clock = rest[:len(rest)-1]
	default:
		idx := strings.LastIndexAny(rest, "+-")
		if idx < 0 {
			return Timestamp{}, errInvalidTimestamp
		}
		clock = rest[:idx]
		oh, om, ok := strings.Cut(rest[idx+1:], ":")
		if !ok || len(oh) != 2 || len(om) != 2 {
			return Timestamp{}, errInvalidTimestamp
		}
		h, err1 := strconv.ParseInt(oh, 10, 32)
		m, err2 := strconv.ParseInt(om, 10, 32)
		if err1 != nil || err2 != nil || h > 23 || m > 59 {
			return Timestamp{}, errInvalidTimestamp
		}
		offsetSecs = h*3600 + m*60
		if rest[idx] == '-' {
			offsetSecs = -offsetSecs
		}
	}

	year, month, day, err := parseCivilDate(datePart)
	if err != nil {
		return Timestamp{}, err
	}
	hour, minute, second, nanos, err := parseClock(clock)
	if err != nil {
		return Timestamp{}, err
	}

	total, _ := mul64(daysFromCivil(year, month, day), SecondsPerDay).
		add(int128FromInt64(int64(hour*3600+minute*60+second) - offsetSecs))
	secs, ok := total.toInt64()
	if !ok {
		return Timestamp{}, ErrOutOfRange
	}
	return Timestamp{Seconds: secs, Nanos: nanos}, nil
}

// parseCivilDate parses "YYYY-MM-DD", allowing a sign and more than
// four year digits for instants far outside the RFC 3339 range.
func parseCivilDate(s string) (year int64, month, day int, err error) {
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	f := strings.Split(s, "-")
	if len(f) != 3 || len(f[0]) < 4 || len(f[1]) != 2 || len(f[2]) != 2 {
		return 0, 0, 0, errInvalidTimestamp
	}
	y, err1 := strconv.ParseInt(f[0], 10, 64)
	m, err2 := strconv.ParseInt(f[1], 10, 32)
	d, err3 := strconv.ParseInt(f[2], 10, 32)
	if err1 != nil || err2 != nil || err3 != nil {
		return 0, 0, 0, errInvalidTimestamp
	}
	if neg {
		y = -y
	}
	// Bound the year so the day arithmetic cannot overflow; anything
	// past this is outside the timestamp range anyway.
	if y < -300_000_000_000 || y > 300_000_000_000 {
		return 0, 0, 0, ErrOutOfRange
	}
	if m < 1 || m > 12 || d < 1 || int(d) > daysInMonth(y, int(m)) {
		return 0, 0, 0, errInvalidTimestamp
	}
	return y, int(m), int(d), nil
}

// parseClock parses "HH:MM:SS[.fraction]".
func parseClock(s string) (hour, minute, second int64, nanos int32, err error) {
	body, frac, hasFrac := strings.Cut(s, ".")
	f := strings.Split(body, ":")
	if len(f) != 3 || len(f[0]) != 2 || len(f[1]) != 2 || len(f[2]) != 2 {
		return 0, 0, 0, 0, errInvalidTimestamp
	}
	h, err1 := strconv.ParseInt(f[0], 10, 32)
	m, err2 := strconv.ParseInt(f[1], 10, 32)
	sec, err3 := strconv.ParseInt(f[2], 10, 32)
	if err1 != nil || err2 != nil || err3 != nil || h > 23 || m > 59 || sec > 59 {
		return 0, 0, 0, 0, errInvalidTimestamp
	}
	if hasFrac {
		if frac == "" || len(frac) > 9 {
			return 0, 0, 0, 0, errInvalidTimestamp
		}
		n, err4 := strconv.ParseUint(frac, 10, 32)
		if err4 != nil {
			return 0, 0, 0, 0, errInvalidTimestamp
		}
		nanos = int32(n * uint64(pow10(9-len(frac))))
	}
	return h, m, sec, nanos, nil
}

// Now returns the current instant as a timestamp.
func Now() Timestamp {
	return TimestampFromTime(time.Now())
}

// TimestampFromTime converts a [time.Time] to a normalized timestamp.
// The monotonic clock reading and the location are discarded.
func TimestampFromTime(t time.Time) Timestamp {
	return NewTimestamp(t.Unix(), int32(t.Nanosecond()))
}

// Time converts the timestamp to a [time.Time] in UTC.
//
// Time returns an error if the instant falls outside the years 1 to
// 9999, the range the protobuf well-known type documents as valid.
func (t Timestamp) Time() (time.Time, error) {
	n := t.Normalized()
	if n.Seconds < minTimeSeconds || n.Seconds > maxTimeSeconds {
		return time.Time{}, fmt.Errorf("converting %v to time.Time: %w", t, ErrOutOfRange)
	}
	return time.Unix(n.Seconds, int64(n.Nanos)).UTC(), nil
}

// Proto converts the timestamp to its protobuf message, normalizing
// first so the message satisfies the well-known-type constraints.
func (t Timestamp) Proto() *timestamppb.Timestamp {
	n := t.Normalized()
	return &timestamppb.Timestamp{Seconds: n.Seconds, Nanos: n.Nanos}
}

// TimestampFromProto converts a protobuf timestamp message to a
// normalized timestamp. A nil message converts to the epoch.
func TimestampFromProto(pb *timestamppb.Timestamp) Timestamp {
	if pb == nil {
		return Timestamp{}
	}
	return NewTimestamp(pb.GetSeconds(), pb.GetNanos())
}
