package utils

import (
	"errors"
	"testing"
	"time"
)

func TestToMinutes_ValidTimes(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"00:00", 0},
		{"06:30", 390},
		{"12:00", 720},
		{"23:59", 1439},
	}

	for _, c := range cases {
		got, err := ToMinutes(c.in)
		if err != nil {
			t.Fatalf("ToMinutes(%q) failed: %v", c.in, err)
		}
		if got != c.want {
			t.Errorf("ToMinutes(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestToMinutes_RejectsMalformedInput(t *testing.T) {
	for _, in := range []string{"", "9:00am", "25:00", "12:60", "12", "noon"} {
		_, err := ToMinutes(in)
		if err == nil {
			t.Errorf("ToMinutes(%q) should have failed", in)
			continue
		}
		var fe *FormatError
		if !errors.As(err, &fe) {
			t.Errorf("ToMinutes(%q) error should be a FormatError, got %T", in, err)
		}
	}
}

func TestFormatMinutes_WrapsDayBoundaries(t *testing.T) {
	cases := []struct {
		in   int
		want string
	}{
		{0, "00:00"},
		{390, "06:30"},
		{1439, "23:59"},
		{1440, "00:00"},
		{1500, "01:00"},
		{-30, "23:30"},
	}

	for _, c := range cases {
		if got := FormatMinutes(c.in); got != c.want {
			t.Errorf("FormatMinutes(%d) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestDuration_SameDayWindow(t *testing.T) {
	got, err := Duration("09:00", "17:00")
	if err != nil {
		t.Fatalf("Duration failed: %v", err)
	}
	if got != 480 {
		t.Errorf("Duration(09:00, 17:00) = %d, want 480", got)
	}
}

func TestDuration_CrossesMidnight(t *testing.T) {
	got, err := Duration("22:00", "06:00")
	if err != nil {
		t.Fatalf("Duration failed: %v", err)
	}
	if got != 480 {
		t.Errorf("Duration(22:00, 06:00) = %d, want 480", got)
	}
}

func TestDuration_EqualEndpointsAreZero(t *testing.T) {
	got, err := Duration("08:00", "08:00")
	if err != nil {
		t.Fatalf("Duration failed: %v", err)
	}
	if got != 0 {
		t.Errorf("Duration(08:00, 08:00) = %d, want 0", got)
	}
}

// Forward and reverse durations of any window partition the day.
func TestDuration_ComplementSumsToFullDay(t *testing.T) {
	pairs := [][2]string{
		{"09:00", "17:00"},
		{"22:00", "06:00"},
		{"00:00", "23:59"},
		{"13:37", "04:04"},
	}

	for _, p := range pairs {
		fwd, err := Duration(p[0], p[1])
		if err != nil {
			t.Fatalf("Duration(%q, %q) failed: %v", p[0], p[1], err)
		}
		rev, err := Duration(p[1], p[0])
		if err != nil {
			t.Fatalf("Duration(%q, %q) failed: %v", p[1], p[0], err)
		}
		if fwd+rev != 1440 {
			t.Errorf("Duration(%q, %q) + reverse = %d, want 1440", p[0], p[1], fwd+rev)
		}
	}
}

func TestOverlaps_Scenarios(t *testing.T) {
	cases := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd string
		want                       bool
	}{
		{"disjoint windows", "09:00", "10:00", "11:00", "12:00", false},
		{"partial overlap", "09:00", "17:00", "10:00", "12:00", true},
		{"identical windows", "09:00", "17:00", "09:00", "17:00", true},
		{"touching endpoints do not overlap", "09:00", "10:00", "10:00", "11:00", false},
		{"zero-width window never overlaps", "09:00", "09:00", "08:00", "12:00", false},
		{"wrapped sleep misses morning job", "22:00", "06:00", "09:00", "17:00", false},
		{"wrapped sleep hits late evening", "22:00", "06:00", "21:00", "23:00", true},
		{"containment", "08:00", "20:00", "12:00", "13:00", true},
	}

	for _, c := range cases {
		got, err := Overlaps(c.aStart, c.aEnd, c.bStart, c.bEnd)
		if err != nil {
			t.Fatalf("%s: Overlaps failed: %v", c.name, err)
		}
		if got != c.want {
			t.Errorf("%s: Overlaps = %v, want %v", c.name, got, c.want)
		}

		// Overlap is symmetric.
		rev, err := Overlaps(c.bStart, c.bEnd, c.aStart, c.aEnd)
		if err != nil {
			t.Fatalf("%s: reversed Overlaps failed: %v", c.name, err)
		}
		if rev != got {
			t.Errorf("%s: Overlaps not symmetric: %v vs %v", c.name, got, rev)
		}
	}
}

func TestOverlapMinutes_Scenarios(t *testing.T) {
	cases := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd string
		want                       int
	}{
		{"disjoint", "09:00", "10:00", "11:00", "12:00", 0},
		{"partial", "09:00", "17:00", "10:00", "12:00", 120},
		{"identical", "09:00", "10:30", "09:00", "10:30", 90},
		{"touching", "09:00", "10:00", "10:00", "11:00", 0},
	}

	for _, c := range cases {
		got, err := OverlapMinutes(c.aStart, c.aEnd, c.bStart, c.bEnd)
		if err != nil {
			t.Fatalf("%s: OverlapMinutes failed: %v", c.name, err)
		}
		if got != c.want {
			t.Errorf("%s: OverlapMinutes = %d, want %d", c.name, got, c.want)
		}
	}
}

func TestIsActiveNow_SameDayWindow(t *testing.T) {
	at := func(h, m int) time.Time {
		return time.Date(2026, 3, 14, h, m, 0, 0, time.UTC)
	}

	if !IsActiveNow("09:00", "17:00", at(12, 0)) {
		t.Error("12:00 should be inside 09:00-17:00")
	}
	if IsActiveNow("09:00", "17:00", at(17, 0)) {
		t.Error("17:00 should be outside 09:00-17:00 (half-open)")
	}
	if IsActiveNow("09:00", "17:00", at(8, 59)) {
		t.Error("08:59 should be outside 09:00-17:00")
	}
}

func TestIsActiveNow_WrappedWindow(t *testing.T) {
	at := func(h, m int) time.Time {
		return time.Date(2026, 3, 14, h, m, 0, 0, time.UTC)
	}

	if !IsActiveNow("22:00", "06:00", at(23, 30)) {
		t.Error("23:30 should be inside 22:00-06:00")
	}
	if !IsActiveNow("22:00", "06:00", at(3, 0)) {
		t.Error("03:00 should be inside the wrapped tail of 22:00-06:00")
	}
	if IsActiveNow("22:00", "06:00", at(6, 0)) {
		t.Error("06:00 should be outside 22:00-06:00 (half-open)")
	}
	if IsActiveNow("22:00", "06:00", at(12, 0)) {
		t.Error("12:00 should be outside 22:00-06:00")
	}
}
