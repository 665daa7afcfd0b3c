package prototypes

import (
	"fmt"
	"strconv"

	"github.com/govalues/decimal"
	fractionpb "google.golang.org/genproto/googleapis/type/fraction"
)

// Fraction represents a ratio of two int64 values, mirroring the
// google.type.Fraction message.
//
// A well-formed Fraction carries a positive denominator and is reduced
// to lowest terms; [NewFraction] and the checked arithmetic maintain
// both properties. A literally constructed Fraction may violate them,
// in which case arithmetic still never panics: comparisons report
// [Incomparable] and [Fraction.Reduce] leaves unrepairable states
// untouched.
type Fraction struct {
	// Numerator carries the sign of the fraction.
	Numerator int64
	// Denominator is positive in well-formed values.
	Denominator int64
}

// GCD returns the greatest common divisor of a and b by magnitude.
//
// The result is a uint64 because gcd(math.MinInt64, 0) is 2^63, which
// has no positive int64 representation.
func GCD(a, b int64) uint64 {
	ua, ub := abs64(a), abs64(b)
	for ub != 0 {
		ua, ub = ub, ua%ub
	}
	return ua
}

// lcm returns the least common multiple of a and b, widened so it
// cannot overflow. Fails only when either argument is zero.
func lcm(a, b int64) (int128, error) {
	if a == 0 || b == 0 {
		return int128{}, ErrZeroDenominator
	}
	cd := GCD(a, b)
	var t1 int64
	if cd == 1<<63 {
		// Both arguments are the minimum int64.
		t1 = -1
	} else {
		t1 = a / int64(cd)
	}
	return mul64(t1, b), nil
}

// LCM returns the least common multiple of a and b by magnitude.
//
// LCM returns an error if either argument is zero or the multiple does
// not fit an int64.
func LCM(a, b int64) (int64, error) {
	m, err := lcm(a, b)
	if err != nil {
		return 0, fmt.Errorf("computing lcm(%v, %v): %w", a, b, err)
	}
	if m.neg {
		m = m.negated()
	}
	v, ok := m.toInt64()
	if !ok {
		return 0, fmt.Errorf("computing lcm(%v, %v): %w", a, b, ErrOverflow)
	}
	return v, nil
}

// NewFraction returns a fraction of numerator and denominator, reduced
// to lowest terms with the sign normalized onto the numerator.
//
// NewFraction returns an error if the denominator is zero, or if sign
// normalization is impossible because the denominator is the minimum
// int64 or a negative denominator would require negating a minimum
// int64 numerator.
func NewFraction(numerator, denominator int64) (Fraction, error) {
	f, err := newFraction(numerator, denominator)
	if err != nil {
		return Fraction{}, fmt.Errorf("creating fraction %v/%v: %w", numerator, denominator, err)
	}
	return f, nil
}

func newFraction(numerator, denominator int64) (Fraction, error) {
	if denominator == 0 {
		return Fraction{}, ErrZeroDenominator
	}
	if denominator == -1<<63 {
		return Fraction{}, ErrOverflow
	}
	if denominator < 0 && numerator == -1<<63 {
		return Fraction{}, ErrOverflow
	}
	num, den := numerator, denominator
	if den < 0 {
		num, den = -num, -den
	}
	// The divisor cannot exceed the positive denominator, so the
	// uint64 result fits in an int64.
	cd := int64(GCD(num, den))
	return Fraction{Numerator: num / cd, Denominator: den / cd}, nil
}

// MustNewFraction is like [NewFraction] but panics if the fraction
// cannot be constructed. It simplifies safe initialization of global
// variables holding fractions.
func MustNewFraction(numerator, denominator int64) Fraction {
	f, err := NewFraction(numerator, denominator)
	if err != nil {
		panic(fmt.Sprintf("MustNewFraction(%v, %v) failed: %v", numerator, denominator, err))
	}
	return f
}

// Reduce reduces the fraction to lowest terms in place, normalizing
// the sign onto the numerator.
//
// A zero denominator, a minimum-int64 denominator, or a negative
// denominator paired with a minimum-int64 numerator cannot be
// repaired; Reduce leaves such values unchanged instead of panicking.
func (f *Fraction) Reduce() {
	if f.Denominator == 0 || f.Denominator == -1<<63 {
		return
	}
	if f.Denominator < 0 && f.Numerator == -1<<63 {
		return
	}
	if f.Denominator < 0 {
		f.Numerator, f.Denominator = -f.Numerator, -f.Denominator
	}
	cd := int64(GCD(f.Numerator, f.Denominator))
	f.Numerator /= cd
	f.Denominator /= cd
}

// Reduced returns the fraction reduced to lowest terms.
// See [Fraction.Reduce] for details.
func (f Fraction) Reduced() Fraction {
	f.Reduce()
	return f
}

// Add returns the reduced sum of fractions f and g.
//
// Add returns an error if either denominator is zero or the result
// does not fit the fraction range.
func (f Fraction) Add(g Fraction) (Fraction, error) {
	h, err := f.addFrac(g)
	if err != nil {
		return Fraction{}, fmt.Errorf("computing [%v + %v]: %w", f, g, err)
	}
	return h, nil
}

func (f Fraction) addFrac(g Fraction) (Fraction, error) {
	return f.combine(g, false)
}

// Sub returns the reduced difference of fractions f and g.
//
// Sub returns an error if either denominator is zero or the result
// does not fit the fraction range.
func (f Fraction) Sub(g Fraction) (Fraction, error) {
	h, err := f.subFrac(g)
	if err != nil {
		return Fraction{}, fmt.Errorf("computing [%v - %v]: %w", f, g, err)
	}
	return h, nil
}

func (f Fraction) subFrac(g Fraction) (Fraction, error) {
	return f.combine(g, true)
}

// combine adds the fractions over their least common denominator,
// negating the right operand when sub is set.
func (f Fraction) combine(g Fraction, sub bool) (Fraction, error) {
	cd, err := lcm(f.Denominator, g.Denominator)
	if err != nil {
		return Fraction{}, err
	}
	fs, _ := cd.divmod(f.Denominator)
	fo, _ := cd.divmod(g.Denominator)
	left, _ := fs.mulInt64(f.Numerator)
	right, _ := fo.mulInt64(g.Numerator)
	if sub {
		right = right.negated()
	}
	sum, ok := left.add(right)
	if !ok {
		return Fraction{}, ErrOverflow
	}
	num, ok1 := sum.toInt64()
	den, ok2 := cd.toInt64()
	if !ok1 || !ok2 {
		return Fraction{}, ErrOverflow
	}
	return newFraction(num, den)
}

// Mul returns the reduced product of fractions f and g.
//
// Mul returns an error if the result does not fit the fraction range.
func (f Fraction) Mul(g Fraction) (Fraction, error) {
	h, err := f.mulFrac(g)
	if err != nil {
		return Fraction{}, fmt.Errorf("computing [%v * %v]: %w", f, g, err)
	}
	return h, nil
}

func (f Fraction) mulFrac(g Fraction) (Fraction, error) {
	num, ok1 := mul64(f.Numerator, g.Numerator).toInt64()
	den, ok2 := mul64(f.Denominator, g.Denominator).toInt64()
	if !ok1 || !ok2 {
		return Fraction{}, ErrOverflow
	}
	return newFraction(num, den)
}

// Div returns the reduced quotient of fractions f and g.
//
// Div returns an error if g is zero or the result does not fit the
// fraction range.
func (f Fraction) Div(g Fraction) (Fraction, error) {
	h, err := f.divFrac(g)
	if err != nil {
		return Fraction{}, fmt.Errorf("computing [%v / %v]: %w", f, g, err)
	}
	return h, nil
}

func (f Fraction) divFrac(g Fraction) (Fraction, error) {
	if g.Numerator == 0 {
		return Fraction{}, ErrUndefined
	}
	num, ok1 := mul64(f.Numerator, g.Denominator).toInt64()
	den, ok2 := mul64(f.Denominator, g.Numerator).toInt64()
	if !ok1 || !ok2 {
		return Fraction{}, ErrOverflow
	}
	return newFraction(num, den)
}

// Compare reports the ordering of f relative to g by cross-multiplying
// into the widened range, so equal values with different terms compare
// [Equal]. The result is [Incomparable] if either denominator is not
// positive.
func (f Fraction) Compare(g Fraction) Ordering {
	if f.Denominator <= 0 || g.Denominator <= 0 {
		return Incomparable
	}
	return orderingFromInt(mul64(f.Numerator, g.Denominator).cmp(mul64(g.Numerator, f.Denominator)))
}

// IsZero returns true if the numerator is zero.
func (f Fraction) IsZero() bool {
	return f.Numerator == 0
}

// Float64 returns the fraction as a float64, possibly losing precision
// for terms beyond 2^53.
//
// Float64 returns an error if the denominator is zero.
func (f Fraction) Float64() (float64, error) {
	if f.Denominator == 0 {
		return 0, fmt.Errorf("converting %v to float64: %w", f, ErrZeroDenominator)
	}
	return float64(f.Numerator) / float64(f.Denominator), nil
}

// Decimal returns the fraction as a decimal quotient of its terms,
// rounded to the decimal precision if the expansion does not terminate.
func (f Fraction) Decimal() (decimal.Decimal, error) {
	num, err := decimal.New(f.Numerator, 0)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("converting %v to decimal: %w", f, err)
	}
	den, err := decimal.New(f.Denominator, 0)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("converting %v to decimal: %w", f, err)
	}
	q, err := num.Quo(den)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("converting %v to decimal: %w", f, err)
	}
	return q, nil
}

// String implements the [fmt.Stringer] interface and renders the
// fraction as "numerator/denominator", e.g. "-1/2".
func (f Fraction) String() string {
	return strconv.FormatInt(f.Numerator, 10) + "/" + strconv.FormatInt(f.Denominator, 10)
}

// Proto converts the fraction to its protobuf message.
// The terms are carried over verbatim, without reduction.
func (f Fraction) Proto() *fractionpb.Fraction {
	return &fractionpb.Fraction{Numerator: f.Numerator, Denominator: f.Denominator}
}

// FractionFromProto converts a protobuf fraction message to a reduced,
// sign-normalized fraction.
//
// FractionFromProto returns an error under the same conditions as
// [NewFraction]. A nil message converts to the zero fraction 0/1.
func FractionFromProto(pb *fractionpb.Fraction) (Fraction, error) {
	if pb == nil {
		return Fraction{Denominator: 1}, nil
	}
	return NewFraction(pb.GetNumerator(), pb.GetDenominator())
}
