package prototypes

import (
	"testing"
	"time"

	timeofdaypb "google.golang.org/genproto/googleapis/type/timeofday"
)

func TestNewTimeOfDay(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			hours, minutes, seconds, nanos int32
		}{
			{0, 0, 0, 0},
			{23, 59, 59, 999_999_999},
			{12, 0, 0, 0},
			{8, 30, 15, 250_000_000},
		}
		for _, tt := range tests {
			got, err := NewTimeOfDay(tt.hours, tt.minutes, tt.seconds, tt.nanos)
			if err != nil {
				t.Errorf("NewTimeOfDay(%v, %v, %v, %v) failed: %v", tt.hours, tt.minutes, tt.seconds, tt.nanos, err)
				continue
			}
			want := TimeOfDay{Hours: tt.hours, Minutes: tt.minutes, Seconds: tt.seconds, Nanos: tt.nanos}
			if got != want {
				t.Errorf("NewTimeOfDay(%v, %v, %v, %v) = %v, want %v", tt.hours, tt.minutes, tt.seconds, tt.nanos, got, want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			hours, minutes, seconds, nanos int32
		}{
			"hours 1":   {24, 0, 0, 0},
			"hours 2":   {-1, 0, 0, 0},
			"minutes 1": {0, 60, 0, 0},
			"minutes 2": {0, -1, 0, 0},
			"seconds 1": {0, 0, 60, 0},
			"seconds 2": {0, 0, -1, 0},
			"nanos 1":   {0, 0, 0, 1_000_000_000},
			"nanos 2":   {0, 0, 0, -1},
		}
		for name, tt := range tests {
			t.Run(name, func(t *testing.T) {
				_, err := NewTimeOfDay(tt.hours, tt.minutes, tt.seconds, tt.nanos)
				if err == nil {
					t.Errorf("NewTimeOfDay(%v, %v, %v, %v) did not fail", tt.hours, tt.minutes, tt.seconds, tt.nanos)
				}
			})
		}
	})
}

func TestOnTheHour(t *testing.T) {
	got, err := OnTheHour(9)
	if err != nil {
		t.Errorf("OnTheHour(9) failed: %v", err)
	}
	if want := (TimeOfDay{Hours: 9}); got != want {
		t.Errorf("OnTheHour(9) = %v, want %v", got, want)
	}
	if _, err := OnTheHour(24); err == nil {
		t.Errorf("OnTheHour(24) did not fail")
	}
}

func TestTimeOfDay_IsValid(t *testing.T) {
	tests := []struct {
		d    TimeOfDay
		want bool
	}{
		{TimeOfDay{}, true},
		{Noon, true},
		{TimeOfDay{Hours: 23, Minutes: 59, Seconds: 59, Nanos: 999_999_999}, true},
		{TimeOfDay{Hours: 24}, false},
		{TimeOfDay{Seconds: 60}, false},
		{TimeOfDay{Nanos: -1}, false},
	}
	for _, tt := range tests {
		if got := tt.d.IsValid(); got != tt.want {
			t.Errorf("%v.IsValid() = %v, want %v", tt.d, got, tt.want)
		}
	}
}

func TestTimeOfDay_NanosSinceMidnight(t *testing.T) {
	tests := []struct {
		d    TimeOfDay
		want int64
	}{
		{Midnight, 0},
		{TimeOfDay{Nanos: 1}, 1},
		{TimeOfDay{Seconds: 1}, 1_000_000_000},
		{Noon, 43_200_000_000_000},
		{TimeOfDay{Hours: 23, Minutes: 59, Seconds: 59, Nanos: 999_999_999}, 86_399_999_999_999},
	}
	for _, tt := range tests {
		if got := tt.d.NanosSinceMidnight(); got != tt.want {
			t.Errorf("%v.NanosSinceMidnight() = %v, want %v", tt.d, got, tt.want)
		}
	}
}

func TestTimeOfDay_Cmp(t *testing.T) {
	tests := []struct {
		d, e TimeOfDay
		want int
	}{
		{Midnight, Midnight, 0},
		{Midnight, Noon, -1},
		{Noon, Midnight, 1},
		{TimeOfDay{Hours: 1}, TimeOfDay{Minutes: 59, Seconds: 59, Nanos: 999_999_999}, 1},
		{TimeOfDay{Hours: 8, Minutes: 30}, TimeOfDay{Hours: 8, Minutes: 30, Nanos: 1}, -1},
	}
	for _, tt := range tests {
		if got := tt.d.Cmp(tt.e); got != tt.want {
			t.Errorf("%v.Cmp(%v) = %v, want %v", tt.d, tt.e, got, tt.want)
		}
		wantOrd := orderingFromInt(tt.want)
		if got := tt.d.Compare(tt.e); got != wantOrd {
			t.Errorf("%v.Compare(%v) = %v, want %v", tt.d, tt.e, got, wantOrd)
		}
	}
}

func TestTimeOfDay_String(t *testing.T) {
	tests := []struct {
		d    TimeOfDay
		want string
	}{
		{Midnight, "00:00:00"},
		{Noon, "12:00:00"},
		{TimeOfDay{Hours: 13, Minutes: 5}, "13:05:00"},
		{TimeOfDay{Hours: 13, Minutes: 5, Nanos: 500}, "13:05:00.000000500"},
		{TimeOfDay{Hours: 23, Minutes: 59, Seconds: 59, Nanos: 999_999_999}, "23:59:59.999999999"},
	}
	for _, tt := range tests {
		if got := tt.d.String(); got != tt.want {
			t.Errorf("%#v.String() = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestTimeOfDayFromTime(t *testing.T) {
	moment := time.Date(2024, time.March, 15, 8, 30, 15, 250_000_000, time.UTC)
	got := TimeOfDayFromTime(moment)
	want := TimeOfDay{Hours: 8, Minutes: 30, Seconds: 15, Nanos: 250_000_000}
	if got != want {
		t.Errorf("TimeOfDayFromTime(%v) = %v, want %v", moment, got, want)
	}
}

func TestTimeOfDay_Proto(t *testing.T) {
	d := TimeOfDay{Hours: 8, Minutes: 30, Seconds: 15, Nanos: 250_000_000}
	pb := d.Proto()
	if pb.GetHours() != 8 || pb.GetMinutes() != 30 || pb.GetSeconds() != 15 || pb.GetNanos() != 250_000_000 {
		t.Errorf("%v.Proto() = %v", d, pb)
	}
	got, err := TimeOfDayFromProto(pb)
	if err != nil {
		t.Errorf("TimeOfDayFromProto(%v) failed: %v", pb, err)
	}
	if got != d {
		t.Errorf("TimeOfDayFromProto(%v) = %v, want %v", pb, got, d)
	}
}

func TestTimeOfDayFromProto(t *testing.T) {
	t.Run("nil", func(t *testing.T) {
		got, err := TimeOfDayFromProto(nil)
		if err != nil {
			t.Errorf("TimeOfDayFromProto(nil) failed: %v", err)
		}
		if got != Midnight {
			t.Errorf("TimeOfDayFromProto(nil) = %v, want %v", got, Midnight)
		}
	})

	t.Run("error", func(t *testing.T) {
		pb := &timeofdaypb.TimeOfDay{Hours: 25}
		if _, err := TimeOfDayFromProto(pb); err == nil {
			t.Errorf("TimeOfDayFromProto(%v) did not fail", pb)
		}
	})
}

func TestTimeOfDay_ZeroValue(t *testing.T) {
	var d TimeOfDay
	if d != Midnight {
		t.Errorf("zero value = %v, want %v", d, Midnight)
	}
	if !d.IsValid() {
		t.Errorf("zero value is not valid")
	}
	if got := d.String(); got != "00:00:00" {
		t.Errorf("zero value String() = %q, want %q", got, "00:00:00")
	}
}
