/*
Package prototypes implements self-validating, arithmetic-capable versions of
the protobuf well-known and google.type value types: [Duration], [Timestamp],
[Fraction], [Money], [Date], [DateTime], [TimeOfDay], and [Interval].

# Representation

Every type is a plain struct whose exported fields match the wire shape of
the message it mirrors, e.g. a [Duration] stores separate whole-second and
nanosecond fields. Values are normally created through validating,
normalizing constructors such as [NewDuration] or [NewMoney]. Constructing a
value literally is legal, but may produce an unnormalized or corrupt
instance; the package guarantees that no method panics on such an instance.
Normalization either repairs the value or leaves it unchanged, and
arithmetic reports a typed error instead of wrapping around.

# Arithmetic

Internally every multi-field fixed-point type converts its operands to a
single widened integer, computes there, and narrows the result back with an
explicit range check. [Duration], [Fraction], and [Money] expose checked
operations that return [ErrOverflow] (or a more specific error) on failure.
[Timestamp] arithmetic instead saturates at the representable extremes: an
instant pushed past the end of the representable range clamps rather than
fails.

# Comparison

Not every pair of values is meaningfully ordered: dates of different kinds,
amounts in different currencies, and corrupted fractions have no defined
order. Comparisons on those types return an [Ordering], which is either
[Less], [Equal], [Greater], or [Incomparable]. Types with a total order
([Duration], [Timestamp], [TimeOfDay]) expose Cmp methods returning the
conventional -1, 0, or +1.

# Conversions

Each type converts to and from the generated protobuf struct it mirrors
(durationpb, timestamppb, and the google.golang.org/genproto google.type
packages), to the corresponding standard library time type where one exists,
and, for [Money], [Duration], and [Fraction], to an exact decimal
representation via the [decimal] package. Conversions that could lose range
or precision are checked and return an error instead of failing silently.

# Errors

Fallible constructors and operations return errors wrapping the package
sentinels, such as [ErrOverflow], [ErrCurrencyMismatch], or
[ErrZeroDenominator], so callers can test the failure class with
[errors.Is]. MustX constructors panic and are intended for initializing
globals with known-good literals.

[decimal]: https://pkg.go.dev/github.com/govalues/decimal
*/
package prototypes
