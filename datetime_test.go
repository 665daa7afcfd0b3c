package prototypes

import (
	"testing"
	"time"

	datetimepb "google.golang.org/genproto/googleapis/type/datetime"
)

func civil(year, month, day, hours, minutes, seconds, nanos int32) DateTime {
	return DateTime{
		Year:    year,
		Month:   month,
		Day:     day,
		Hours:   hours,
		Minutes: minutes,
		Seconds: seconds,
		Nanos:   nanos,
	}
}

func TestDateTime_Validate(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []DateTime{
			civil(2024, 1, 15, 12, 30, 45, 0),
			civil(0, 12, 25, 8, 0, 0, 0),
			civil(2024, 2, 29, 12, 0, 0, 0),
			civil(0, 2, 29, 0, 0, 0, 0),
			civil(9999, 12, 31, 23, 59, 59, 999_999_999),
		}
		for _, d := range tests {
			if err := d.Validate(); err != nil {
				t.Errorf("%#v.Validate() failed: %v", d, err)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]DateTime{
			"year":          civil(10000, 1, 1, 0, 0, 0, 0),
			"month high":    civil(2024, 13, 1, 0, 0, 0, 0),
			"month zero":    civil(2024, 0, 1, 0, 0, 0, 0),
			"day zero":      civil(2024, 1, 0, 0, 0, 0, 0),
			"day in month":  civil(2023, 2, 29, 12, 0, 0, 0),
			"year 0 month":  civil(0, 0, 1, 0, 0, 0, 0),
			"hours":         civil(2024, 1, 1, 24, 0, 0, 0),
			"minutes":       civil(2024, 1, 1, 0, 60, 0, 0),
			"seconds":       civil(2024, 1, 1, 0, 0, 60, 0),
			"nanos":         civil(2024, 1, 1, 0, 0, 0, 1_000_000_000),
			"negative year": civil(-1, 1, 1, 0, 0, 0, 0),
		}
		for name, d := range tests {
			t.Run(name, func(t *testing.T) {
				if err := d.Validate(); err == nil {
					t.Errorf("%#v.Validate() did not fail", d)
				}
				if d.IsValid() {
					t.Errorf("%#v.IsValid() = true", d)
				}
			})
		}
	})
}

func TestDateTime_Offsets(t *testing.T) {
	local := civil(2024, 1, 15, 12, 30, 45, 0)
	if !local.IsLocal() || local.HasUTCOffset() || local.HasTimeZone() {
		t.Errorf("%v predicates: IsLocal=%v HasUTCOffset=%v HasTimeZone=%v", local, local.IsLocal(), local.HasUTCOffset(), local.HasTimeZone())
	}

	fixed := local.WithUTCOffset(NewDuration(3600, 0))
	if fixed.IsLocal() || !fixed.HasUTCOffset() || fixed.HasTimeZone() {
		t.Errorf("%v predicates: IsLocal=%v HasUTCOffset=%v HasTimeZone=%v", fixed, fixed.IsLocal(), fixed.HasUTCOffset(), fixed.HasTimeZone())
	}

	named := fixed.WithTimeZone(TimeZone{ID: "America/New_York"})
	if named.IsLocal() || named.HasUTCOffset() || !named.HasTimeZone() {
		t.Errorf("%v predicates: IsLocal=%v HasUTCOffset=%v HasTimeZone=%v", named, named.IsLocal(), named.HasUTCOffset(), named.HasTimeZone())
	}

	if !local.HasYear() {
		t.Errorf("%v.HasYear() = false", local)
	}
	if recurring := civil(0, 12, 25, 0, 0, 0, 0); recurring.HasYear() {
		t.Errorf("%v.HasYear() = true", recurring)
	}
}

func TestDateTime_String(t *testing.T) {
	base := civil(2024, 1, 15, 12, 30, 45, 0)
	tests := []struct {
		d    DateTime
		want string
	}{
		{base, "2024-01-15T12:30:45"},
		{civil(0, 12, 25, 8, 0, 0, 0), "12-25T08:00:00"},
		{base.WithUTCOffset(NewDuration(3600, 0)), "2024-01-15T12:30:45+01:00"},
		{base.WithUTCOffset(NewDuration(-5400, 0)), "2024-01-15T12:30:45-01:30"},
		{base.WithUTCOffset(Duration{}), "2024-01-15T12:30:45Z"},
		{base.WithTimeZone(TimeZone{ID: "America/New_York"}), "2024-01-15T12:30:45[America/New_York]"},
	}
	for _, tt := range tests {
		if got := tt.d.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestDateTime_Compare(t *testing.T) {
	base := civil(2024, 1, 1, 10, 0, 0, 0)
	tests := []struct {
		d, e DateTime
		want Ordering
	}{
		{base, civil(2024, 1, 1, 11, 0, 0, 0), Less},
		{civil(2024, 1, 1, 11, 0, 0, 0), base, Greater},
		{base, base, Equal},
		{civil(2024, 1, 1, 10, 0, 0, 1), base, Greater},
		{base, civil(0, 1, 1, 10, 0, 0, 0), Incomparable},
		{civil(0, 1, 1, 10, 0, 0, 0), civil(0, 2, 1, 10, 0, 0, 0), Less},
		{civil(2024, 13, 1, 0, 0, 0, 0), base, Incomparable},
		{base.WithUTCOffset(NewDuration(3600, 0)), base.WithUTCOffset(NewDuration(7200, 0)), Less},
		{base.WithUTCOffset(Duration{}), base.WithUTCOffset(Duration{}), Equal},
		{base, base.WithUTCOffset(Duration{}), Less},
		{base.WithUTCOffset(Duration{}), base, Greater},
		{base.WithTimeZone(TimeZone{ID: "America/New_York"}), base.WithUTCOffset(Duration{}), Incomparable},
		{base.WithTimeZone(TimeZone{ID: "UTC"}), base.WithTimeZone(TimeZone{ID: "UTC"}), Incomparable},
	}
	for _, tt := range tests {
		if got := tt.d.Compare(tt.e); got != tt.want {
			t.Errorf("%v.Compare(%v) = %v, want %v", tt.d, tt.e, got, tt.want)
		}
	}
}

func TestDateTime_Time(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		d := civil(2024, 5, 20, 10, 0, 0, 500).WithUTCOffset(NewDuration(3600, 0))
		got, err := d.Time()
		if err != nil {
			t.Fatalf("%v.Time() failed: %v", d, err)
		}
		want := time.Date(2024, time.May, 20, 10, 0, 0, 500, time.FixedZone("", 3600))
		if !got.Equal(want) {
			t.Errorf("%v.Time() = %v, want %v", d, got, want)
		}
		if _, offset := got.Zone(); offset != 3600 {
			t.Errorf("%v.Time() zone offset = %v, want 3600", d, offset)
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]DateTime{
			"invalid":      civil(2024, 2, 30, 0, 0, 0, 0).WithUTCOffset(Duration{}),
			"no year":      civil(0, 12, 25, 0, 0, 0, 0).WithUTCOffset(Duration{}),
			"local":        civil(2024, 1, 1, 0, 0, 0, 0),
			"named zone":   civil(2024, 1, 1, 0, 0, 0, 0).WithTimeZone(TimeZone{ID: "America/New_York"}),
			"wide offset":  civil(2024, 1, 1, 0, 0, 0, 0).WithUTCOffset(NewDuration(90_000, 0)),
			"nanos offset": civil(2024, 1, 1, 0, 0, 0, 0).WithUTCOffset(NewDuration(0, 500)),
		}
		for name, d := range tests {
			t.Run(name, func(t *testing.T) {
				if _, err := d.Time(); err == nil {
					t.Errorf("%v.Time() did not fail", d)
				}
			})
		}
	})
}

func TestDateTimeFromTime(t *testing.T) {
	moment := time.Date(2024, time.May, 20, 10, 30, 0, 500, time.FixedZone("", -5*3600))
	got := DateTimeFromTime(moment)
	want := civil(2024, 5, 20, 10, 30, 0, 500).WithUTCOffset(NewDuration(-5*3600, 0))
	if got != want {
		t.Errorf("DateTimeFromTime(%v) = %#v, want %#v", moment, got, want)
	}

	back, err := got.Time()
	if err != nil {
		t.Fatalf("%v.Time() failed: %v", got, err)
	}
	if !back.Equal(moment) {
		t.Errorf("%v.Time() = %v, want %v", got, back, moment)
	}
}

func TestDateTime_Proto(t *testing.T) {
	t.Run("utc offset", func(t *testing.T) {
		d := civil(2024, 1, 15, 12, 30, 45, 500).WithUTCOffset(NewDuration(3600, 0))
		pb := d.Proto()
		if pb.GetYear() != 2024 || pb.GetUtcOffset().GetSeconds() != 3600 {
			t.Errorf("%v.Proto() = %v", d, pb)
		}
		got, err := DateTimeFromProto(pb)
		if err != nil {
			t.Fatalf("DateTimeFromProto(%v) failed: %v", pb, err)
		}
		if got != d {
			t.Errorf("DateTimeFromProto(%v) = %v, want %v", pb, got, d)
		}
	})

	t.Run("time zone", func(t *testing.T) {
		d := civil(2024, 1, 15, 12, 30, 45, 0).WithTimeZone(TimeZone{ID: "Europe/Paris", Version: "2019a"})
		got, err := DateTimeFromProto(d.Proto())
		if err != nil {
			t.Fatalf("DateTimeFromProto(%v.Proto()) failed: %v", d, err)
		}
		if got != d {
			t.Errorf("DateTimeFromProto(%v.Proto()) = %v, want %v", d, got, d)
		}
	})

	t.Run("local", func(t *testing.T) {
		d := civil(0, 12, 25, 8, 0, 0, 0)
		got, err := DateTimeFromProto(d.Proto())
		if err != nil {
			t.Fatalf("DateTimeFromProto(%v.Proto()) failed: %v", d, err)
		}
		if got != d {
			t.Errorf("DateTimeFromProto(%v.Proto()) = %v, want %v", d, got, d)
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]*datetimepb.DateTime{
			"nil":     nil,
			"invalid": {Year: 2024, Month: 13, Day: 1},
		}
		for name, pb := range tests {
			t.Run(name, func(t *testing.T) {
				if _, err := DateTimeFromProto(pb); err == nil {
					t.Errorf("DateTimeFromProto(%v) did not fail", pb)
				}
			})
		}
	})
}
