package prototypes

import (
	"fmt"
	"strings"

	intervalpb "google.golang.org/genproto/googleapis/type/interval"
)

// Interval represents a span between two instants, mirroring the
// google.type.Interval message. The start is inclusive and the end
// exclusive. A nil bound leaves that side open: an interval with no
// start extends indefinitely into the past, one with no end into the
// future, and one with neither bound matches any instant.
type Interval struct {
	Start *Timestamp
	End   *Timestamp
}

// NewInterval returns an interval between the given bounds, either of
// which may be nil.
//
// NewInterval returns an error if both bounds are set and the end
// precedes the start.
func NewInterval(start, end *Timestamp) (Interval, error) {
	i := Interval{Start: start, End: end}
	if !i.IsValid() {
		return Interval{}, fmt.Errorf("creating interval [%v, %v): %w", start, end, ErrInvertedInterval)
	}
	return i, nil
}

// FromNowTo returns an interval from the current instant to the given
// end.
func FromNowTo(end Timestamp) Interval {
	now := Now()
	return Interval{Start: &now, End: &end}
}

// FromStartToNow returns an interval from the given start to the
// current instant.
func FromStartToNow(start Timestamp) Interval {
	now := Now()
	return Interval{Start: &start, End: &now}
}

// IsValid returns true unless both bounds are set and the end
// precedes the start.
func (i Interval) IsValid() bool {
	if i.Start == nil || i.End == nil {
		return true
	}
	return i.End.Cmp(*i.Start) >= 0
}

// IsEmpty returns true if both bounds are set and denote the same
// instant. Such an interval matches no instant.
func (i Interval) IsEmpty() bool {
	if i.Start == nil || i.End == nil {
		return false
	}
	return i.Start.Cmp(*i.End) == 0
}

// IsUnspecified returns true if neither bound is set.
func (i Interval) IsUnspecified() bool {
	return i.Start == nil && i.End == nil
}

// Duration returns the span between the bounds.
//
// Duration returns an error if either bound is open or the span does
// not fit a [Duration].
func (i Interval) Duration() (Duration, error) {
	if i.Start == nil || i.End == nil {
		return Duration{}, fmt.Errorf("measuring interval %v: open bound: %w", i, ErrUndefined)
	}
	d, err := i.End.Sub(*i.Start)
	if err != nil {
		return Duration{}, fmt.Errorf("measuring interval %v: %w", i, err)
	}
	return d, nil
}

// Compare orders intervals by the length of their spans: empty sorts
// before finite, finite before unbounded, and unbounded intervals all
// compare [Equal] to keep sorting stable. Invalid intervals are
// [Incomparable].
func (i Interval) Compare(e Interval) Ordering {
	if !i.IsValid() || !e.IsValid() {
		return Incomparable
	}
	switch {
	case i.IsEmpty():
		if e.IsEmpty() {
			return Equal
		}
		return Less
	case e.IsEmpty():
		return Greater
	}
	di, ierr := i.Duration()
	de, eerr := e.Duration()
	switch {
	case ierr == nil && eerr == nil:
		return orderingFromInt(di.Cmp(de))
	case ierr == nil:
		return Less
	case eerr == nil:
		return Greater
	default:
		return Equal
	}
}

// String implements the [fmt.Stringer] interface and renders the
// interval as "[start, end)" with ".." for an open bound.
func (i Interval) String() string {
	var b strings.Builder
	b.WriteByte('[')
	if i.Start != nil {
		b.WriteString(i.Start.String())
	} else {
		b.WriteString("..")
	}
	b.WriteString(", ")
	if i.End != nil {
		b.WriteString(i.End.String())
	} else {
		b.WriteString("..")
	}
	b.WriteByte(')')
	return b.String()
}

// Proto converts the interval to its protobuf message. Open bounds
// map to nil message fields.
func (i Interval) Proto() *intervalpb.Interval {
	pb := &intervalpb.Interval{}
	if i.Start != nil {
		pb.StartTime = i.Start.Proto()
	}
	if i.End != nil {
		pb.EndTime = i.End.Proto()
	}
	return pb
}

// IntervalFromProto converts a protobuf interval message to a
// validated interval.
//
// IntervalFromProto returns an error under the same conditions as
// [NewInterval]. A nil message converts to an unspecified interval.
func IntervalFromProto(pb *intervalpb.Interval) (Interval, error) {
	if pb == nil {
		return Interval{}, nil
	}
	var start, end *Timestamp
	if pb.GetStartTime() != nil {
		s := TimestampFromProto(pb.GetStartTime())
		start = &s
	}
	if pb.GetEndTime() != nil {
		e := TimestampFromProto(pb.GetEndTime())
		end = &e
	}
	return NewInterval(start, end)
}
