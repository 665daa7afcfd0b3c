package prototypes

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/govalues/decimal"
	"google.golang.org/protobuf/types/known/durationpb"
)

// Unit conversion constants.
// Months and years are calendar approximations: a year is the 365.25-day
// Julian year and a month is one twelfth of it.
const (
	NanosPerSecond   = 1_000_000_000
	SecondsPerMinute = 60
	SecondsPerHour   = 3_600
	SecondsPerDay    = 86_400
	SecondsPerWeek   = 604_800
	SecondsPerMonth  = 2_629_800
	SecondsPerYear   = 31_557_600
)

var errInvalidDuration = errors.New("invalid duration syntax")

// Duration represents a signed span of time with nanosecond resolution,
// mirroring the google.protobuf.Duration message.
//
// A Duration is normalized when |Nanos| < 1e9 and Seconds and Nanos agree
// in sign. Constructors and arithmetic always produce normalized values;
// a literally constructed Duration can be repaired with [Duration.Normalized].
// Unlike [time.Duration], the representable range spans roughly
// ±292 billion years.
type Duration struct {
	// Seconds is the whole-second part of the span.
	Seconds int64
	// Nanos is the sub-second part, in nanoseconds.
	Nanos int32
}

// NewDuration returns a normalized duration of seconds and nanos.
// The two parts are summed, so NewDuration(1, -500_000_000) is half a
// second. Nanosecond carry that would push the seconds past the int64
// range saturates.
func NewDuration(seconds int64, nanos int32) Duration {
	return Duration{Seconds: seconds, Nanos: nanos}.Normalized()
}

// Normalized returns the duration with the nanosecond carry folded into
// the seconds and both fields brought to the same sign. Seconds saturate
// at the int64 extremes.
func (d Duration) Normalized() Duration {
	secs := saturatingAdd64(d.Seconds, int64(d.Nanos)/NanosPerSecond)
	nanos := d.Nanos % NanosPerSecond
	switch {
	case secs > 0 && nanos < 0:
		secs--
		nanos += NanosPerSecond
	case secs < 0 && nanos > 0:
		secs++
		nanos -= NanosPerSecond
	}
	return Duration{Seconds: secs, Nanos: nanos}
}

// Normalize normalizes the duration in place.
// See [Duration.Normalized] for details.
func (d *Duration) Normalize() {
	*d = d.Normalized()
}

// totalNanos widens the duration to a single nanosecond count.
// The result always fits 128 bits, even for unnormalized field values.
func (d Duration) totalNanos() int128 {
	t, _ := mul64(d.Seconds, NanosPerSecond).add(int128FromInt64(int64(d.Nanos)))
	return t
}

// durationFromTotalNanos narrows a nanosecond count back to a duration.
// It fails with ErrOverflow if the seconds do not fit in an int64.
func durationFromTotalNanos(t int128) (Duration, error) {
	q, rem := t.divmod(NanosPerSecond)
	secs, ok := q.toInt64()
	if !ok {
		return Duration{}, ErrOverflow
	}
	return Duration{Seconds: secs, Nanos: int32(rem)}, nil
}

// Sign returns:
//
//	-1 if d < 0
//	 0 if d = 0
//	+1 if d > 0
func (d Duration) Sign() int {
	t := d.totalNanos()
	switch {
	case t.isZero():
		return 0
	case t.neg:
		return -1
	default:
		return 1
	}
}

// IsZero returns true if the duration is zero.
func (d Duration) IsZero() bool {
	return d.Sign() == 0
}

// IsNegative returns true if the duration is less than zero.
func (d Duration) IsNegative() bool {
	return d.Sign() < 0
}

// IsPositive returns true if the duration is greater than zero.
func (d Duration) IsPositive() bool {
	return d.Sign() > 0
}

// Add returns the sum of durations d and e.
//
// Add returns an error if the result does not fit the duration range.
func (d Duration) Add(e Duration) (Duration, error) {
	f, err := d.addDur(e)
	if err != nil {
		return Duration{}, fmt.Errorf("computing [%v + %v]: %w", d, e, err)
	}
	return f, nil
}

func (d Duration) addDur(e Duration) (Duration, error) {
	t, ok := d.totalNanos().add(e.totalNanos())
	if !ok {
		return Duration{}, ErrOverflow
	}
	return durationFromTotalNanos(t)
}

// Sub returns the difference of durations d and e.
//
// Sub returns an error if the result does not fit the duration range.
func (d Duration) Sub(e Duration) (Duration, error) {
	f, err := d.subDur(e)
	if err != nil {
		return Duration{}, fmt.Errorf("computing [%v - %v]: %w", d, e, err)
	}
	return f, nil
}

func (d Duration) subDur(e Duration) (Duration, error) {
	t, ok := d.totalNanos().sub(e.totalNanos())
	if !ok {
		return Duration{}, ErrOverflow
	}
	return durationFromTotalNanos(t)
}

// Mul returns the duration d scaled by the factor m.
//
// Mul returns an error if the result does not fit the duration range.
func (d Duration) Mul(m int64) (Duration, error) {
	f, err := d.mulDur(m)
	if err != nil {
		return Duration{}, fmt.Errorf("computing [%v * %v]: %w", d, m, err)
	}
	return f, nil
}

func (d Duration) mulDur(m int64) (Duration, error) {
	t, ok := d.totalNanos().mulInt64(m)
	if !ok {
		return Duration{}, ErrOverflow
	}
	return durationFromTotalNanos(t)
}

// Div returns the duration d divided by the divisor m, truncating the
// result toward zero at nanosecond resolution.
//
// Div returns an error if m is zero.
func (d Duration) Div(m int64) (Duration, error) {
	f, err := d.divDur(m)
	if err != nil {
		return Duration{}, fmt.Errorf("computing [%v / %v]: %w", d, m, err)
	}
	return f, nil
}

func (d Duration) divDur(m int64) (Duration, error) {
	if m == 0 {
		return Duration{}, ErrDivisionByZero
	}
	q, _ := d.totalNanos().divmod(m)
	return durationFromTotalNanos(q)
}

// Neg returns the duration with the opposite sign.
//
// Neg returns an error if the result does not fit the duration range,
// which happens only when the seconds are at the minimum int64 value.
func (d Duration) Neg() (Duration, error) {
	f, err := durationFromTotalNanos(d.totalNanos().negated())
	if err != nil {
		return Duration{}, fmt.Errorf("computing [-%v]: %w", d, err)
	}
	return f, nil
}

// Cmp numerically compares durations and returns:
//
//	-1 if d < e
//	 0 if d = e
//	+1 if d > e
//
// The comparison resolves field values, so an unnormalized duration
// compares equal to its normalized form.
func (d Duration) Cmp(e Duration) int {
	return d.totalNanos().cmp(e.totalNanos())
}

// Compare reports the ordering of d relative to e.
// Durations are totally ordered, so the result is never [Incomparable].
func (d Duration) Compare(e Duration) Ordering {
	return orderingFromInt(d.Cmp(e))
}

// DurationUnits is a duration decomposed into calendar and clock units.
// Months, Days, Hours, Minutes, Seconds, and Nanos form a greedy
// decomposition of the magnitude, largest unit first. Years and Weeks
// are computed independently from the full magnitude and overlap the
// other fields.
type DurationUnits struct {
	Years   uint64
	Months  uint64
	Weeks   uint64
	Days    uint64
	Hours   uint64
	Minutes uint64
	Seconds uint64
	Nanos   uint32
	// Negative is true if the decomposed duration was less than zero.
	Negative bool
}

// Units decomposes the magnitude of the duration into calendar and
// clock units. Months and years use the approximate [SecondsPerMonth]
// and [SecondsPerYear] constants.
func (d Duration) Units() DurationUnits {
	n := d.Normalized()
	secs := abs64(n.Seconds)
	u := DurationUnits{
		Negative: n.Seconds < 0 || n.Nanos < 0,
		Years:    secs / SecondsPerYear,
		Weeks:    secs / SecondsPerWeek,
		Nanos:    abs32(n.Nanos),
	}
	u.Months = secs / SecondsPerMonth
	secs %= SecondsPerMonth
	u.Days = secs / SecondsPerDay
	secs %= SecondsPerDay
	u.Hours = secs / SecondsPerHour
	secs %= SecondsPerHour
	u.Minutes = secs / SecondsPerMinute
	u.Seconds = secs % SecondsPerMinute
	return u
}

func formatUnit(v uint64, name string) string {
	if v == 1 {
		return "1 " + name
	}
	return strconv.FormatUint(v, 10) + " " + name + "s"
}

// HumanString formats the duration in human readable form, e.g.
// "2 days 15 hours 12 minutes and 15 seconds". Zero-valued units are
// skipped, the last two units are joined with "and", a negative
// duration is prefixed with "- ", and the zero duration reads
// "0 seconds". Sub-second precision is not rendered.
func (d Duration) HumanString() string {
	u := d.Units()
	var parts []string
	for _, p := range []struct {
		value uint64
		name  string
	}{
		{u.Months, "month"},
		{u.Days, "day"},
		{u.Hours, "hour"},
		{u.Minutes, "minute"},
		{u.Seconds, "second"},
	} {
		if p.value != 0 {
			parts = append(parts, formatUnit(p.value, p.name))
		}
	}
	if len(parts) == 0 {
		return "0 seconds"
	}
	var b strings.Builder
	if u.Negative {
		b.WriteString("- ")
	}
	if len(parts) == 1 {
		b.WriteString(parts[0])
		return b.String()
	}
	b.WriteString(strings.Join(parts[:len(parts)-1], " "))
	b.WriteString(" and ")
	b.WriteString(parts[len(parts)-1])
	return b.String()
}

// String implements the [fmt.Stringer] interface and renders the
// duration in the canonical protobuf JSON shape: the signed decimal
// second count with trailing zeros trimmed from the fraction, followed
// by the unit, e.g. "3s", "-0.5s", "0.000001s".
//
// See also method [ParseDuration].
func (d Duration) String() string {
	n := d.Normalized()
	var b strings.Builder
	if n.Seconds < 0 || n.Nanos < 0 {
		b.WriteByte('-')
	}
	b.WriteString(strconv.FormatUint(abs64(n.Seconds), 10))
	if nanos := abs32(n.Nanos); nanos > 0 {
		width := 9
		for nanos%10 == 0 {
			nanos /= 10
			width--
		}
		fmt.Fprintf(&b, ".%0*d", width, nanos)
	}
	b.WriteByte('s')
	return b.String()
}

// ParseDuration converts a string to a (possibly unnormalized) duration.
// The input must be a signed decimal second count with an optional
// fraction of at most nine digits and a mandatory "s" suffix, the shape
// produced by [Duration.String].
func ParseDuration(s string) (Duration, error) {
	d, err := parseDuration(s)
	if err != nil {
		return Duration{}, fmt.Errorf("parsing duration %q: %w", s, err)
	}
	return d, nil
}

func parseDuration(s string) (Duration, error) {
	body, ok := strings.CutSuffix(s, "s")
	if !ok || body == "" {
		return Duration{}, errInvalidDuration
	}
	intPart, fracPart, hasFrac := strings.Cut(body, ".")
	// The sign stays attached to the integer part, so the minimum
	// second count parses exactly.
	secs, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return Duration{}, errInvalidDuration
	}
	var nanos int32
	if hasFrac {
		if fracPart == "" || len(fracPart) > 9 {
			return Duration{}, errInvalidDuration
		}
		n, err := strconv.ParseUint(fracPart, 10, 32)
		if err != nil {
			return Duration{}, errInvalidDuration
		}
		nanos = int32(n * uint64(pow10(9-len(fracPart))))
		if strings.HasPrefix(intPart, "-") {
			nanos = -nanos
		}
	}
	return Duration{Seconds: secs, Nanos: nanos}, nil
}

// AsTimeDuration converts the duration to a [time.Duration].
//
// AsTimeDuration returns an error if the total nanosecond count does
// not fit the int64 range of [time.Duration].
func (d Duration) AsTimeDuration() (time.Duration, error) {
	n, ok := d.totalNanos().toInt64()
	if !ok {
		return 0, fmt.Errorf("converting %v to time.Duration: %w", d, ErrOverflow)
	}
	return time.Duration(n), nil
}

// DurationFromTimeDuration converts a [time.Duration] to a normalized
// duration. The conversion is exact.
func DurationFromTimeDuration(td time.Duration) Duration {
	return Duration{Seconds: int64(td / time.Second), Nanos: int32(td % time.Second)}
}

// Decimal returns the duration as an exact decimal second count,
// e.g. 1.5 for one and a half seconds.
func (d Duration) Decimal() (decimal.Decimal, error) {
	n := d.Normalized()
	f, err := decimal.NewFromInt64(n.Seconds, int64(n.Nanos), 9)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("converting %v to decimal: %w", n, err)
	}
	return f, nil
}

// DurationFromDecimal converts a decimal second count to a duration,
// rounding below nanosecond resolution.
//
// DurationFromDecimal returns an error if the whole seconds do not fit
// the int64 range.
func DurationFromDecimal(d decimal.Decimal) (Duration, error) {
	whole, frac, ok := d.Int64(9)
	if !ok {
		return Duration{}, fmt.Errorf("converting %v to duration: %w", d, ErrOverflow)
	}
	return Duration{Seconds: whole, Nanos: int32(frac)}, nil
}

// Proto converts the duration to its protobuf message, normalizing
// first so the message satisfies the well-known-type constraints.
func (d Duration) Proto() *durationpb.Duration {
	n := d.Normalized()
	return &durationpb.Duration{Seconds: n.Seconds, Nanos: n.Nanos}
}

// DurationFromProto converts a protobuf duration message to a
// normalized duration. A nil message converts to the zero duration.
func DurationFromProto(pb *durationpb.Duration) Duration {
	if pb == nil {
		return Duration{}
	}
	return NewDuration(pb.GetSeconds(), pb.GetNanos())
}
