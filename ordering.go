package prototypes

// Ordering is the result of comparing two values under a partial order.
// Unlike the conventional -1/0/+1 integer, an Ordering can also report
// that two values have no defined order at all, such as monetary amounts
// in different currencies or calendar dates of different kinds.
type Ordering int8

const (
	// Less indicates that the receiver is ordered before the argument.
	Less Ordering = -1
	// Equal indicates that the two values are equivalent.
	Equal Ordering = 0
	// Greater indicates that the receiver is ordered after the argument.
	Greater Ordering = 1
	// Incomparable indicates that no order is defined for the pair.
	Incomparable Ordering = 2
)

// orderingFromInt converts a conventional three-way comparison result
// into an Ordering.
func orderingFromInt(c int) Ordering {
	switch {
	case c < 0:
		return Less
	case c > 0:
		return Greater
	default:
		return Equal
	}
}

// Comparable returns true if o is Less, Equal, or Greater.
func (o Ordering) Comparable() bool {
	return o == Less || o == Equal || o == Greater
}

// Reversed returns the ordering with Less and Greater swapped.
// Equal and Incomparable are unchanged.
func (o Ordering) Reversed() Ordering {
	switch o {
	case Less:
		return Greater
	case Greater:
		return Less
	default:
		return o
	}
}

// String implements the [fmt.Stringer] interface.
func (o Ordering) String() string {
	switch o {
	case Less:
		return "less"
	case Equal:
		return "equal"
	case Greater:
		return "greater"
	case Incomparable:
		return "incomparable"
	default:
		return "invalid"
	}
}
