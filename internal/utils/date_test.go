package utils

import (
	"testing"
	"time"

	"github.com/acrispim/vidaplan/internal/constants"
)

func TestPreviousDate_Scenarios(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"2026-03-15", "2026-03-14"},
		{"2026-03-01", "2026-02-28"},
		{"2024-03-01", "2024-02-29"}, // leap year
		{"2026-01-01", "2025-12-31"},
	}

	for _, c := range cases {
		got, err := PreviousDate(c.in)
		if err != nil {
			t.Fatalf("PreviousDate(%q) failed: %v", c.in, err)
		}
		if got != c.want {
			t.Errorf("PreviousDate(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestPreviousDate_RejectsMalformedDate(t *testing.T) {
	if _, err := PreviousDate("15/03/2026"); err == nil {
		t.Error("PreviousDate should reject non-ISO dates")
	}
}

func TestDescribeDate_DerivesWeekdayAndDisplayForm(t *testing.T) {
	dayName, formatted, err := DescribeDate("2026-03-14")
	if err != nil {
		t.Fatalf("DescribeDate failed: %v", err)
	}
	if dayName != "Saturday" {
		t.Errorf("dayName = %q, want Saturday", dayName)
	}
	if formatted != "Saturday, March 14, 2026" {
		t.Errorf("formatted = %q, want %q", formatted, "Saturday, March 14, 2026")
	}
}

func TestTodayInTimezone_ReturnsDateKey(t *testing.T) {
	today, err := TodayInTimezone("UTC")
	if err != nil {
		t.Fatalf("TodayInTimezone failed: %v", err)
	}
	if _, err := time.Parse(constants.DateFormat, today); err != nil {
		t.Errorf("TodayInTimezone returned %q, not a YYYY-MM-DD date key", today)
	}
}

func TestTodayInTimezone_RejectsUnknownZone(t *testing.T) {
	if _, err := TodayInTimezone("Mars/Olympus_Mons"); err == nil {
		t.Error("TodayInTimezone should reject unknown timezone names")
	}
}

func TestLoadLocation_LocalAliases(t *testing.T) {
	for _, tz := range []string{"", "Local"} {
		loc, err := LoadLocation(tz)
		if err != nil {
			t.Fatalf("LoadLocation(%q) failed: %v", tz, err)
		}
		if loc == nil {
			t.Fatalf("LoadLocation(%q) returned nil location", tz)
		}
	}
}
