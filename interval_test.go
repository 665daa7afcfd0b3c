package prototypes

import (
	"testing"
)

func tsp(seconds int64) *Timestamp {
	t := Timestamp{Seconds: seconds}
	return &t
}

func TestNewInterval(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			start, end *Timestamp
		}{
			{tsp(100), tsp(200)},
			{tsp(100), tsp(100)},
			{tsp(100), nil},
			{nil, tsp(200)},
			{nil, nil},
		}
		for _, tt := range tests {
			got, err := NewInterval(tt.start, tt.end)
			if err != nil {
				t.Errorf("NewInterval(%v, %v) failed: %v", tt.start, tt.end, err)
				continue
			}
			if got.Start != tt.start || got.End != tt.end {
				t.Errorf("NewInterval(%v, %v) = %v", tt.start, tt.end, got)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		if _, err := NewInterval(tsp(200), tsp(100)); err == nil {
			t.Errorf("NewInterval(200, 100) did not fail")
		}
	})
}

func TestInterval_Predicates(t *testing.T) {
	tests := []struct {
		i                         Interval
		valid, empty, unspecified bool
	}{
		{Interval{Start: tsp(100), End: tsp(100)}, true, true, false},
		{Interval{Start: tsp(100), End: tsp(200)}, true, false, false},
		{Interval{}, true, false, true},
		{Interval{Start: tsp(100)}, true, false, false},
		{Interval{End: tsp(100)}, true, false, false},
		{Interval{Start: tsp(200), End: tsp(100)}, false, false, false},
		// equal instants in unnormalized form
		{Interval{Start: tsp(100), End: &Timestamp{Seconds: 99, Nanos: 1_000_000_000}}, true, true, false},
	}
	for _, tt := range tests {
		if got := tt.i.IsValid(); got != tt.valid {
			t.Errorf("%v.IsValid() = %v, want %v", tt.i, got, tt.valid)
		}
		if got := tt.i.IsEmpty(); got != tt.empty {
			t.Errorf("%v.IsEmpty() = %v, want %v", tt.i, got, tt.empty)
		}
		if got := tt.i.IsUnspecified(); got != tt.unspecified {
			t.Errorf("%v.IsUnspecified() = %v, want %v", tt.i, got, tt.unspecified)
		}
	}
}

func TestInterval_Duration(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			i    Interval
			want Duration
		}{
			{Interval{Start: tsp(100), End: tsp(200)}, Duration{Seconds: 100}},
			{Interval{Start: tsp(100), End: tsp(100)}, Duration{}},
			{
				Interval{Start: &Timestamp{Seconds: 100, Nanos: 500}, End: &Timestamp{Seconds: 200, Nanos: 200}},
				Duration{Seconds: 99, Nanos: 999_999_700},
			},
		}
		for _, tt := range tests {
			got, err := tt.i.Duration()
			if err != nil {
				t.Errorf("%v.Duration() failed: %v", tt.i, err)
				continue
			}
			if got != tt.want {
				t.Errorf("%v.Duration() = %v, want %v", tt.i, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]Interval{
			"open end":    {Start: tsp(100)},
			"open start":  {End: tsp(100)},
			"unspecified": {},
		}
		for name, i := range tests {
			t.Run(name, func(t *testing.T) {
				if _, err := i.Duration(); err == nil {
					t.Errorf("%v.Duration() did not fail", i)
				}
			})
		}
	})
}

func TestInterval_Compare(t *testing.T) {
	empty := Interval{Start: tsp(0), End: tsp(0)}
	finiteSmall := Interval{Start: tsp(0), End: tsp(10)}
	finiteLarge := Interval{Start: tsp(0), End: tsp(20)}
	openEnd := Interval{Start: tsp(0)}
	openStart := Interval{End: tsp(20)}
	unspecified := Interval{}
	inverted := Interval{Start: tsp(20), End: tsp(0)}

	tests := []struct {
		i, e Interval
		want Ordering
	}{
		{empty, finiteSmall, Less},
		{finiteSmall, empty, Greater},
		{empty, empty, Equal},
		{finiteSmall, finiteLarge, Less},
		{finiteLarge, finiteSmall, Greater},
		{finiteSmall, finiteSmall, Equal},
		{finiteLarge, openEnd, Less},
		{finiteLarge, openStart, Less},
		{openEnd, finiteLarge, Greater},
		{openEnd, openStart, Equal},
		{openEnd, unspecified, Equal},
		{inverted, finiteSmall, Incomparable},
		{finiteSmall, inverted, Incomparable},
	}
	for _, tt := range tests {
		if got := tt.i.Compare(tt.e); got != tt.want {
			t.Errorf("%v.Compare(%v) = %v, want %v", tt.i, tt.e, got, tt.want)
		}
	}
}

func TestFromNowTo(t *testing.T) {
	end := Timestamp{Seconds: 1 << 40}
	i := FromNowTo(end)
	if i.Start == nil || i.End == nil {
		t.Fatalf("FromNowTo(%v) = %v", end, i)
	}
	if i.End.Cmp(end) != 0 {
		t.Errorf("FromNowTo(%v).End = %v", end, i.End)
	}
	if !i.IsValid() {
		t.Errorf("FromNowTo(%v) is not valid", end)
	}
}

func TestFromStartToNow(t *testing.T) {
	start := Timestamp{Seconds: 1}
	i := FromStartToNow(start)
	if i.Start == nil || i.End == nil {
		t.Fatalf("FromStartToNow(%v) = %v", start, i)
	}
	if i.Start.Cmp(start) != 0 {
		t.Errorf("FromStartToNow(%v).Start = %v", start, i.Start)
	}
	if !i.IsValid() {
		t.Errorf("FromStartToNow(%v) is not valid", start)
	}
}

func TestInterval_String(t *testing.T) {
	tests := []struct {
		i    Interval
		want string
	}{
		{Interval{Start: tsp(0), End: tsp(10)}, "[1970-01-01T00:00:00Z, 1970-01-01T00:00:10Z)"},
		{Interval{Start: tsp(0)}, "[1970-01-01T00:00:00Z, ..)"},
		{Interval{}, "[.., ..)"},
	}
	for _, tt := range tests {
		if got := tt.i.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestInterval_Proto(t *testing.T) {
	t.Run("bounded", func(t *testing.T) {
		i := Interval{Start: &Timestamp{Seconds: 100, Nanos: 500}, End: tsp(200)}
		pb := i.Proto()
		if pb.GetStartTime().GetSeconds() != 100 || pb.GetStartTime().GetNanos() != 500 || pb.GetEndTime().GetSeconds() != 200 {
			t.Errorf("%v.Proto() = %v", i, pb)
		}
		got, err := IntervalFromProto(pb)
		if err != nil {
			t.Fatalf("IntervalFromProto(%v) failed: %v", pb, err)
		}
		if got.Start.Cmp(*i.Start) != 0 || got.End.Cmp(*i.End) != 0 {
			t.Errorf("IntervalFromProto(%v) = %v, want %v", pb, got, i)
		}
	})

	t.Run("open", func(t *testing.T) {
		i := Interval{Start: tsp(100)}
		got, err := IntervalFromProto(i.Proto())
		if err != nil {
			t.Fatalf("IntervalFromProto(%v.Proto()) failed: %v", i, err)
		}
		if got.Start == nil || got.End != nil {
			t.Errorf("IntervalFromProto(%v.Proto()) = %v", i, got)
		}
	})

	t.Run("nil", func(t *testing.T) {
		got, err := IntervalFromProto(nil)
		if err != nil {
			t.Fatalf("IntervalFromProto(nil) failed: %v", err)
		}
		if !got.IsUnspecified() {
			t.Errorf("IntervalFromProto(nil) = %v, want unspecified", got)
		}
	})

	t.Run("error", func(t *testing.T) {
		pb := (&Interval{Start: tsp(200), End: tsp(100)}).Proto()
		if _, err := IntervalFromProto(pb); err == nil {
			t.Errorf("IntervalFromProto(%v) did not fail", pb)
		}
	})
}
