package prototypes

import "math/bits"

// int128 is a signed 128-bit integer in sign-and-magnitude form.
// neg is never set when the magnitude is zero, so the zero value
// is canonical and values compare field by field.
//
// The widened arithmetic of the multi-field fixed-point types runs
// through this representation: operands are widened, combined here,
// and narrowed back with an explicit range check.
type int128 struct {
	neg    bool
	hi, lo uint64
}

// abs64 returns the magnitude of v as a uint64.
// Unlike negating first, it is exact for math.MinInt64.
func abs64(v int64) uint64 {
	if v < 0 {
		return -uint64(v)
	}
	return uint64(v)
}

// abs32 returns the magnitude of v as a uint32.
func abs32(v int32) uint32 {
	if v < 0 {
		return -uint32(v)
	}
	return uint32(v)
}

// int128FromInt64 widens v without loss.
func int128FromInt64(v int64) int128 {
	return int128{neg: v < 0, lo: abs64(v)}
}

// mul64 returns the full 128-bit product of a and b.
func mul64(a, b int64) int128 {
	hi, lo := bits.Mul64(abs64(a), abs64(b))
	return int128{neg: (a < 0) != (b < 0) && (hi|lo) != 0, hi: hi, lo: lo}
}

func (x int128) isZero() bool {
	return x.hi == 0 && x.lo == 0
}

func (x int128) negated() int128 {
	if x.isZero() {
		return x
	}
	return int128{neg: !x.neg, hi: x.hi, lo: x.lo}
}

// cmpMag compares magnitudes only.
func (x int128) cmpMag(y int128) int {
	switch {
	case x.hi != y.hi:
		if x.hi < y.hi {
			return -1
		}
		return 1
	case x.lo != y.lo:
		if x.lo < y.lo {
			return -1
		}
		return 1
	default:
		return 0
	}
}

// cmp returns -1, 0, or 1 comparing x to y as signed values.
func (x int128) cmp(y int128) int {
	switch {
	case x.neg && !y.neg:
		return -1
	case !x.neg && y.neg:
		return 1
	}
	c := x.cmpMag(y)
	if x.neg {
		return -c
	}
	return c
}

// addMag adds magnitudes, reporting carry-out as overflow.
func addMag(x, y int128) (int128, bool) {
	lo, carry := bits.Add64(x.lo, y.lo, 0)
	hi, carry := bits.Add64(x.hi, y.hi, carry)
	return int128{hi: hi, lo: lo}, carry != 0
}

// subMag computes x - y on magnitudes, requiring x >= y.
func subMag(x, y int128) int128 {
	lo, borrow := bits.Sub64(x.lo, y.lo, 0)
	hi, _ := bits.Sub64(x.hi, y.hi, borrow)
	return int128{hi: hi, lo: lo}
}

// add returns x + y, reporting overflow of the 128-bit magnitude.
func (x int128) add(y int128) (int128, bool) {
	if x.neg == y.neg {
		sum, over := addMag(x, y)
		if over {
			return int128{}, false
		}
		sum.neg = x.neg && !sum.isZero()
		return sum, true
	}
	switch x.cmpMag(y) {
	case 0:
		return int128{}, true
	case 1:
		d := subMag(x, y)
		d.neg = x.neg
		return d, true
	default:
		d := subMag(y, x)
		d.neg = y.neg
		return d, true
	}
}

// sub returns x - y, reporting overflow of the 128-bit magnitude.
func (x int128) sub(y int128) (int128, bool) {
	return x.add(y.negated())
}

// mulInt64 returns x * m, reporting overflow of the 128-bit magnitude.
func (x int128) mulInt64(m int64) (int128, bool) {
	am := abs64(m)
	h1, lo := bits.Mul64(x.lo, am)
	h2, hiLow := bits.Mul64(x.hi, am)
	if h2 != 0 {
		return int128{}, false
	}
	hi, carry := bits.Add64(h1, hiLow, 0)
	if carry != 0 {
		return int128{}, false
	}
	p := int128{hi: hi, lo: lo}
	p.neg = (x.neg != (m < 0)) && !p.isZero()
	return p, true
}

// divmod divides x by d, truncating toward zero. The remainder keeps
// the sign of the dividend. The divisor must be nonzero.
func (x int128) divmod(d int64) (q int128, rem int64) {
	ad := abs64(d)
	qhi := x.hi / ad
	qlo, r := bits.Div64(x.hi%ad, x.lo, ad)
	q = int128{hi: qhi, lo: qlo}
	q.neg = (x.neg != (d < 0)) && !q.isZero()
	rem = int64(r)
	if x.neg {
		rem = -rem
	}
	return q, rem
}

// toInt64 narrows x, reporting whether it fits in an int64.
func (x int128) toInt64() (int64, bool) {
	if x.hi != 0 {
		return 0, false
	}
	if x.neg {
		if x.lo > 1<<63 {
			return 0, false
		}
		return -int64(x.lo), true
	}
	if x.lo > 1<<63-1 {
		return 0, false
	}
	return int64(x.lo), true
}

// saturatingAdd64 returns a + b clamped to the int64 range.
func saturatingAdd64(a, b int64) int64 {
	s := a + b
	if (a > 0 && b > 0 && s < 0) || (a < 0 && b < 0 && s >= 0) {
		if a > 0 {
			return 1<<63 - 1
		}
		return -1 << 63
	}
	return s
}

// saturatingSub64 returns a - b clamped to the int64 range.
func saturatingSub64(a, b int64) int64 {
	d := a - b
	if (a >= 0 && b < 0 && d < 0) || (a < 0 && b > 0 && d >= 0) {
		if a >= 0 {
			return 1<<63 - 1
		}
		return -1 << 63
	}
	return d
}

// floorDiv returns a / b rounded toward negative infinity.
func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// floorMod returns a - floorDiv(a, b)*b; the result has the sign of b.
func floorMod(a, b int64) int64 {
	m := a % b
	if m != 0 && ((m < 0) != (b < 0)) {
		m += b
	}
	return m
}

// pow10 returns 10^n for n in [0, 18].
func pow10(n int) int64 {
	p := int64(1)
	for ; n > 0; n-- {
		p *= 10
	}
	return p
}
