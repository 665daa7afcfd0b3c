package prototypes

import "errors"

var (
	// ErrOverflow is returned when a computed value does not fit the
	// fields of its type.
	ErrOverflow = errors.New("arithmetic overflow")

	// ErrDivisionByZero is returned when a divisor is zero.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrUndefined is returned when an operation has no mathematically
	// defined result, such as dividing a fraction by zero.
	ErrUndefined = errors.New("undefined result")

	// ErrZeroDenominator is returned when constructing a fraction with a
	// zero denominator.
	ErrZeroDenominator = errors.New("zero denominator")

	// ErrCurrencyMismatch is returned when performing arithmetic on
	// monetary amounts in different currencies.
	ErrCurrencyMismatch = errors.New("currency mismatch")

	// ErrOutOfRange is returned when a field value falls outside the
	// range its type allows.
	ErrOutOfRange = errors.New("value out of range")

	// ErrInvalidDate is returned when date fields do not form a valid
	// calendar date.
	ErrInvalidDate = errors.New("invalid calendar date")

	// ErrInvertedInterval is returned when constructing an interval whose
	// end precedes its start.
	ErrInvertedInterval = errors.New("interval end precedes start")
)
