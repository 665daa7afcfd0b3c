package prototypes

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/govalues/decimal"
	moneypb "google.golang.org/genproto/googleapis/type/money"
)

// Money represents a monetary amount as whole currency units and a
// nanosecond-scale fraction, tagged with an ISO 4217 currency code,
// mirroring the google.type.Money message.
//
// A Money is normalized when |Nanos| < 1e9 and Units and Nanos agree
// in sign; a negative amount below one unit carries zero Units and
// negative Nanos. The currency code is an open string: amounts only
// interact when their codes match exactly, and arithmetic between
// mismatched codes fails with [ErrCurrencyMismatch].
//
// All integer arithmetic runs through a widened intermediate and never
// silently wraps. The float64 conversions are provided for convenience
// and carry the usual binary floating-point imprecision; do not use
// them for critical financial computation.
type Money struct {
	// CurrencyCode is the three-letter currency code defined in
	// ISO 4217, e.g. "USD".
	CurrencyCode string
	// Units is the whole-unit part of the amount.
	Units int64
	// Nanos is the fractional part, in billionths of a unit.
	Nanos int32
}

// NewMoney returns a normalized monetary amount of units and nanos in
// the given currency. The two parts are summed, so NewMoney("USD", 1,
// -100) is 0.9999999 dollars.
//
// NewMoney returns an error if folding the nanosecond carry pushes the
// units past the int64 range.
func NewMoney(currencyCode string, units int64, nanos int32) (Money, error) {
	u, n, err := normalizeMoneyFields(units, nanos)
	if err != nil {
		return Money{}, fmt.Errorf("creating %v amount: %w", currencyCode, err)
	}
	return Money{CurrencyCode: currencyCode, Units: u, Nanos: n}, nil
}

// MustNewMoney is like [NewMoney] but panics if the amount cannot be
// constructed. It simplifies safe initialization of global variables
// holding monetary amounts.
func MustNewMoney(currencyCode string, units int64, nanos int32) Money {
	m, err := NewMoney(currencyCode, units, nanos)
	if err != nil {
		panic(fmt.Sprintf("MustNewMoney(%q, %v, %v) failed: %v", currencyCode, units, nanos, err))
	}
	return m
}

// normalizeMoneyFields folds the nanosecond carry and aligns the signs
// of the two fields, failing instead of wrapping on overflow.
func normalizeMoneyFields(units int64, nanos int32) (int64, int32, error) {
	if nanos <= -NanosPerSecond || nanos >= NanosPerSecond {
		carry := int64(nanos / NanosPerSecond)
		sum := units + carry
		if (carry > 0 && sum < units) || (carry < 0 && sum > units) {
			return 0, 0, ErrOverflow
		}
		units = sum
		nanos %= NanosPerSecond
	}
	switch {
	case units > 0 && nanos < 0:
		units--
		nanos += NanosPerSecond
	case units < 0 && nanos > 0:
		units++
		nanos -= NanosPerSecond
	}
	return units, nanos, nil
}

// Normalized returns the amount with the nanosecond carry folded into
// the units and both fields brought to the same sign.
//
// Normalized returns an error if the carry pushes the units past the
// int64 range.
func (m Money) Normalized() (Money, error) {
	u, n, err := normalizeMoneyFields(m.Units, m.Nanos)
	if err != nil {
		return Money{}, fmt.Errorf("normalizing %v: %w", m, err)
	}
	return Money{CurrencyCode: m.CurrencyCode, Units: u, Nanos: n}, nil
}

// totalNanos widens the amount to a single count of billionths.
func (m Money) totalNanos() int128 {
	t, _ := mul64(m.Units, NanosPerSecond).add(int128FromInt64(int64(m.Nanos)))
	return t
}

// moneyFromTotalNanos narrows a count of billionths back to an amount.
func moneyFromTotalNanos(currencyCode string, t int128) (Money, error) {
	q, rem := t.divmod(NanosPerSecond)
	units, ok := q.toInt64()
	if !ok {
		return Money{}, ErrOverflow
	}
	return Money{CurrencyCode: currencyCode, Units: units, Nanos: int32(rem)}, nil
}

// sameCurrencyTotal gates arithmetic on matching currency codes.
func (m Money) sameCurrencyTotal(o Money) (int128, int128, error) {
	if m.CurrencyCode != o.CurrencyCode {
		return int128{}, int128{}, ErrCurrencyMismatch
	}
	return m.totalNanos(), o.totalNanos(), nil
}

// Add returns the sum of amounts m and o.
//
// Add returns an error if the currency codes differ or the result does
// not fit the amount range.
func (m Money) Add(o Money) (Money, error) {
	r, err := m.addMoney(o)
	if err != nil {
		return Money{}, fmt.Errorf("computing [%v + %v]: %w", m, o, err)
	}
	return r, nil
}

func (m Money) addMoney(o Money) (Money, error) {
	a, b, err := m.sameCurrencyTotal(o)
	if err != nil {
		return Money{}, err
	}
	t, ok := a.add(b)
	if !ok {
		return Money{}, ErrOverflow
	}
	return moneyFromTotalNanos(m.CurrencyCode, t)
}

// AddAssign adds the amount o to m in place.
// It fails under the same conditions as [Money.Add], leaving m
// unchanged on error.
func (m *Money) AddAssign(o Money) error {
	r, err := m.Add(o)
	if err != nil {
		return err
	}
	*m = r
	return nil
}

// Sub returns the difference of amounts m and o.
//
// Sub returns an error if the currency codes differ or the result does
// not fit the amount range.
func (m Money) Sub(o Money) (Money, error) {
	r, err := m.subMoney(o)
	if err != nil {
		return Money{}, fmt.Errorf("computing [%v - %v]: %w", m, o, err)
	}
	return r, nil
}

func (m Money) subMoney(o Money) (Money, error) {
	a, b, err := m.sameCurrencyTotal(o)
	if err != nil {
		return Money{}, err
	}
	t, ok := a.sub(b)
	if !ok {
		return Money{}, ErrOverflow
	}
	return moneyFromTotalNanos(m.CurrencyCode, t)
}

// SubAssign subtracts the amount o from m in place.
// It fails under the same conditions as [Money.Sub], leaving m
// unchanged on error.
func (m *Money) SubAssign(o Money) error {
	r, err := m.Sub(o)
	if err != nil {
		return err
	}
	*m = r
	return nil
}

// MulInt64 returns the amount m scaled by the factor f.
//
// MulInt64 returns an error if the result does not fit the amount
// range.
func (m Money) MulInt64(f int64) (Money, error) {
	t, ok := m.totalNanos().mulInt64(f)
	if !ok {
		return Money{}, fmt.Errorf("computing [%v * %v]: %w", m, f, ErrOverflow)
	}
	r, err := moneyFromTotalNanos(m.CurrencyCode, t)
	if err != nil {
		return Money{}, fmt.Errorf("computing [%v * %v]: %w", m, f, err)
	}
	return r, nil
}

// DivInt64 returns the amount m divided by the divisor f, truncating
// toward zero at billionth resolution.
//
// DivInt64 returns an error if f is zero.
func (m Money) DivInt64(f int64) (Money, error) {
	if f == 0 {
		return Money{}, fmt.Errorf("computing [%v / %v]: %w", m, f, ErrDivisionByZero)
	}
	t, _ := m.totalNanos().divmod(f)
	r, err := moneyFromTotalNanos(m.CurrencyCode, t)
	if err != nil {
		return Money{}, fmt.Errorf("computing [%v / %v]: %w", m, f, err)
	}
	return r, nil
}

// MulFloat64 returns the amount m scaled by the factor f, computed in
// float64 and therefore imprecise.
//
// MulFloat64 returns an error if f or the result is not finite, or the
// result does not fit the amount range.
func (m Money) MulFloat64(f float64) (Money, error) {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return Money{}, fmt.Errorf("computing [%v * %v]: %w", m, f, ErrOutOfRange)
	}
	r, err := NewMoneyFromFloat64(m.CurrencyCode, m.Float64()*f)
	if err != nil {
		return Money{}, fmt.Errorf("computing [%v * %v]: %w", m, f, ErrOutOfRange)
	}
	return r, nil
}

// DivFloat64 returns the amount m divided by the divisor f, computed
// in float64 and therefore imprecise.
//
// DivFloat64 returns an error if f is zero or not finite, or the
// result does not fit the amount range.
func (m Money) DivFloat64(f float64) (Money, error) {
	if f == 0 {
		return Money{}, fmt.Errorf("computing [%v / %v]: %w", m, f, ErrDivisionByZero)
	}
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return Money{}, fmt.Errorf("computing [%v / %v]: %w", m, f, ErrOutOfRange)
	}
	r, err := NewMoneyFromFloat64(m.CurrencyCode, m.Float64()/f)
	if err != nil {
		return Money{}, fmt.Errorf("computing [%v / %v]: %w", m, f, ErrOutOfRange)
	}
	return r, nil
}

// Neg returns the amount with the opposite sign.
//
// Neg returns an error if either field is at its minimum value and has
// no positive counterpart.
func (m Money) Neg() (Money, error) {
	if m.Units == math.MinInt64 || m.Nanos == math.MinInt32 {
		return Money{}, fmt.Errorf("computing [-%v]: %w", m, ErrOverflow)
	}
	return NewMoney(m.CurrencyCode, -m.Units, -m.Nanos)
}

// Float64 returns the amount as a float64, losing precision beyond
// 2^53 billionths. See the type warning about float conversions.
func (m Money) Float64() float64 {
	return float64(m.Units) + float64(m.Nanos)/float64(NanosPerSecond)
}

// RoundedFloat64 returns the amount as a float64 rounded half away
// from zero to the given number of decimal places. See the type
// warning about float conversions.
func (m Money) RoundedFloat64(decimalPlaces int) (float64, error) {
	if decimalPlaces < 0 {
		return 0, fmt.Errorf("rounding %v to %v places: %w", m, decimalPlaces, ErrOutOfRange)
	}
	factor := math.Pow(10, float64(decimalPlaces))
	if math.IsInf(factor, 0) {
		return 0, fmt.Errorf("rounding %v to %v places: %w", m, decimalPlaces, ErrOutOfRange)
	}
	r := math.Round(m.Float64()*factor) / factor
	if math.IsInf(r, 0) || math.IsNaN(r) {
		return 0, fmt.Errorf("rounding %v to %v places: %w", m, decimalPlaces, ErrOutOfRange)
	}
	return r, nil
}

// NewMoneyFromFloat64 splits a float64 amount into units and
// billionths, rounding the fraction to the nearest billionth. See the
// type warning about float conversions.
//
// NewMoneyFromFloat64 returns an error if the amount is not finite or
// its whole part does not fit the int64 range.
func NewMoneyFromFloat64(currencyCode string, amount float64) (Money, error) {
	if math.IsInf(amount, 0) || math.IsNaN(amount) {
		return Money{}, fmt.Errorf("creating %v amount from %v: %w", currencyCode, amount, ErrOutOfRange)
	}
	trunc := math.Trunc(amount)
	// 2^63 is the smallest float64 at or past the int64 boundary.
	if trunc >= 1<<63 || trunc < -(1<<63) {
		return Money{}, fmt.Errorf("creating %v amount from %v: %w", currencyCode, amount, ErrOutOfRange)
	}
	units := int64(trunc)
	nanos := int32(math.Round(math.Abs(amount-trunc) * NanosPerSecond))
	if units < 0 || (units == 0 && amount < 0) {
		nanos = -nanos
	}
	return NewMoney(currencyCode, units, nanos)
}

// FormattedString renders the amount with a currency symbol and a
// fixed number of decimal places, rounding half away from zero at the
// cut, e.g. "$10.56". decimalPlaces is clamped to [0, 9]; zero places
// renders no decimal point. The sign precedes the symbol: "-€5.50".
func (m Money) FormattedString(symbol string, decimalPlaces int) string {
	if decimalPlaces < 0 {
		decimalPlaces = 0
	}
	if decimalPlaces > 9 {
		decimalPlaces = 9
	}

	total := m.totalNanos()
	q, rem := total.divmod(NanosPerSecond)
	unitsMag := q.lo
	nanosMag := abs64(rem)

	var rounded, carry uint64
	if decimalPlaces > 0 {
		displayPow := uint64(pow10(decimalPlaces))
		roundingPow := uint64(pow10(9 - decimalPlaces))
		rounded = nanosMag / roundingPow
		// roundingPow is 1 at full precision; rounding there would
		// increment on an exact zero remainder.
		if roundingPow > 1 && nanosMag%roundingPow >= roundingPow/2 {
			rounded++
		}
		if rounded >= displayPow {
			carry = 1
			rounded = 0
		}
	}

	var b strings.Builder
	if total.neg {
		b.WriteByte('-')
	}
	b.WriteString(symbol)
	b.WriteString(strconv.FormatUint(unitsMag+carry, 10))
	if decimalPlaces > 0 {
		fmt.Fprintf(&b, ".%0*d", decimalPlaces, rounded)
	}
	return b.String()
}

// Compare reports the ordering of m relative to o by resolved totals,
// so an unnormalized amount compares equal to its normalized form.
// The result is [Incomparable] if the currency codes differ.
func (m Money) Compare(o Money) Ordering {
	if m.CurrencyCode != o.CurrencyCode {
		return Incomparable
	}
	return orderingFromInt(m.totalNanos().cmp(o.totalNanos()))
}

// SameCurrency returns true if both amounts carry the same currency
// code.
func (m Money) SameCurrency(o Money) bool {
	return m.CurrencyCode == o.CurrencyCode
}

// IsCurrency returns true if the amount's currency code equals code.
func (m Money) IsCurrency(code string) bool {
	return m.CurrencyCode == code
}

// IsUSD returns true if the currency is the United States dollar.
func (m Money) IsUSD() bool { return m.IsCurrency("USD") }

// IsEUR returns true if the currency is the euro.
func (m Money) IsEUR() bool { return m.IsCurrency("EUR") }

// IsGBP returns true if the currency is the British pound sterling.
func (m Money) IsGBP() bool { return m.IsCurrency("GBP") }

// IsJPY returns true if the currency is the Japanese yen.
func (m Money) IsJPY() bool { return m.IsCurrency("JPY") }

// IsCAD returns true if the currency is the Canadian dollar.
func (m Money) IsCAD() bool { return m.IsCurrency("CAD") }

// IsAUD returns true if the currency is the Australian dollar.
func (m Money) IsAUD() bool { return m.IsCurrency("AUD") }

// IsZero returns true if the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.Units == 0 && m.Nanos == 0
}

// IsPositive returns true if the amount is greater than zero.
func (m Money) IsPositive() bool {
	return m.Units > 0 || (m.Units == 0 && m.Nanos > 0)
}

// IsNegative returns true if the amount is less than zero.
func (m Money) IsNegative() bool {
	return m.Units < 0 || (m.Units == 0 && m.Nanos < 0)
}

// Decimal returns the amount as an exact decimal, e.g. 10.5 for ten
// and a half units.
func (m Money) Decimal() (decimal.Decimal, error) {
	n, err := m.Normalized()
	if err != nil {
		return decimal.Decimal{}, err
	}
	d, err := decimal.NewFromInt64(n.Units, int64(n.Nanos), 9)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("converting %v to decimal: %w", m, err)
	}
	return d, nil
}

// NewMoneyFromDecimal converts a decimal amount to money in the given
// currency, rounding below billionth resolution.
//
// NewMoneyFromDecimal returns an error if the whole units do not fit
// the int64 range.
func NewMoneyFromDecimal(currencyCode string, d decimal.Decimal) (Money, error) {
	units, nanos, ok := d.Int64(9)
	if !ok {
		return Money{}, fmt.Errorf("creating %v amount from %v: %w", currencyCode, d, ErrOverflow)
	}
	return NewMoney(currencyCode, units, int32(nanos))
}

// String implements the [fmt.Stringer] interface and renders the
// currency code followed by the decimal amount with trailing zeros
// trimmed from the fraction, e.g. "USD 10.5". An empty currency code
// renders as the ISO 4217 placeholder "XXX".
func (m Money) String() string {
	var b strings.Builder
	if m.CurrencyCode == "" {
		b.WriteString("XXX")
	} else {
		b.WriteString(m.CurrencyCode)
	}
	b.WriteByte(' ')
	total := m.totalNanos()
	q, rem := total.divmod(NanosPerSecond)
	if total.neg {
		b.WriteByte('-')
	}
	b.WriteString(strconv.FormatUint(q.lo, 10))
	if nanos := abs64(rem); nanos > 0 {
		width := 9
		for nanos%10 == 0 {
			nanos /= 10
			width--
		}
		fmt.Fprintf(&b, ".%0*d", width, nanos)
	}
	return b.String()
}

// Proto converts the amount to its protobuf message.
// The fields are carried over verbatim, without normalization.
func (m Money) Proto() *moneypb.Money {
	return &moneypb.Money{CurrencyCode: m.CurrencyCode, Units: m.Units, Nanos: m.Nanos}
}

// MoneyFromProto converts a protobuf money message to a normalized
// amount.
//
// MoneyFromProto returns an error under the same conditions as
// [NewMoney]. A nil message converts to the zero amount with an empty
// currency code.
func MoneyFromProto(pb *moneypb.Money) (Money, error) {
	if pb == nil {
		return Money{}, nil
	}
	return NewMoney(pb.GetCurrencyCode(), pb.GetUnits(), pb.GetNanos())
}
