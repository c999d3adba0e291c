package utils

import (
	"fmt"
	"time"

	"github.com/acrispim/vidaplan/internal/constants"
)

// FormatError reports a malformed wall-clock string reaching time
// arithmetic. Inputs are validated at the plan boundary, so seeing this
// error indicates an upstream defect rather than bad user input.
type FormatError struct {
	Value string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid time %q: expected HH:MM", e.Value)
}

// ToMinutes parses an HH:MM string into minutes from midnight [0, 1439].
func ToMinutes(timeStr string) (int, error) {
	t, err := time.Parse(constants.TimeFormat, timeStr)
	if err != nil {
		return 0, &FormatError{Value: timeStr}
	}
	return t.Hour()*60 + t.Minute(), nil
}

// FormatMinutes renders minutes from midnight as HH:MM, wrapping past
// day boundaries.
func FormatMinutes(minutes int) string {
	minutes = ((minutes % constants.MinutesPerDay) + constants.MinutesPerDay) % constants.MinutesPerDay
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// normalizeWindow converts a wall-clock window into a half-open minute
// interval [start, end). A window whose end precedes its start crosses
// midnight and gets its end pushed past 1440. Equal endpoints stay a
// zero-width interval: a window cannot span the full day.
func normalizeWindow(start, end string) (int, int, error) {
	s, err := ToMinutes(start)
	if err != nil {
		return 0, 0, err
	}
	e, err := ToMinutes(end)
	if err != nil {
		return 0, 0, err
	}
	if e < s {
		e += constants.MinutesPerDay
	}
	return s, e, nil
}

// Duration returns the elapsed minutes from start to end, assuming at
// most a single midnight crossing. The result is always in [0, 1439];
// equal endpoints yield 0.
func Duration(start, end string) (int, error) {
	s, e, err := normalizeWindow(start, end)
	if err != nil {
		return 0, err
	}
	return e - s, nil
}

// Overlaps reports whether two wall-clock windows intersect, after each
// is independently normalized for wraparound. Zero-width windows never
// overlap anything; identical non-zero windows always do.
func Overlaps(aStart, aEnd, bStart, bEnd string) (bool, error) {
	s1, e1, err := normalizeWindow(aStart, aEnd)
	if err != nil {
		return false, err
	}
	s2, e2, err := normalizeWindow(bStart, bEnd)
	if err != nil {
		return false, err
	}
	return s1 < e2 && s2 < e1, nil
}

// OverlapMinutes returns the size of the intersection of two windows,
// or 0 when they do not overlap.
func OverlapMinutes(aStart, aEnd, bStart, bEnd string) (int, error) {
	s1, e1, err := normalizeWindow(aStart, aEnd)
	if err != nil {
		return 0, err
	}
	s2, e2, err := normalizeWindow(bStart, bEnd)
	if err != nil {
		return 0, err
	}
	overlap := min(e1, e2) - max(s1, s2)
	if overlap < 0 {
		return 0, nil
	}
	return overlap, nil
}

// IsActiveNow reports whether the given wall-clock time falls inside the
// window. Used by presentation only; the generator never consults the
// current time.
func IsActiveNow(start, end string, now time.Time) bool {
	s, e, err := normalizeWindow(start, end)
	if err != nil {
		return false
	}
	nowMin := now.Hour()*60 + now.Minute()
	if nowMin >= s && nowMin < e {
		return true
	}
	// A wrapped window also covers the early-morning tail of the day.
	shifted := nowMin + constants.MinutesPerDay
	return shifted >= s && shifted < e
}
