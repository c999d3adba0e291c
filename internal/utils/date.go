package utils

import (
	"fmt"
	"time"

	"github.com/acrispim/vidaplan/internal/constants"
)

// LoadLocation loads a timezone location from an IANA timezone name.
// "Local" or empty means the system's local timezone.
func LoadLocation(timezone string) (*time.Location, error) {
	if timezone == "" || timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(timezone)
}

// NowInTimezone returns the current time in the specified timezone.
func NowInTimezone(timezone string) (time.Time, error) {
	loc, err := LoadLocation(timezone)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return time.Now().In(loc), nil
}

// TodayInTimezone returns today's date key (YYYY-MM-DD) in the specified
// timezone. Date keys always use the local calendar, never a UTC shift.
func TodayInTimezone(timezone string) (string, error) {
	now, err := NowInTimezone(timezone)
	if err != nil {
		return "", err
	}
	return now.Format(constants.DateFormat), nil
}

// PreviousDate returns the date key of the calendar day before the given one.
func PreviousDate(date string) (string, error) {
	t, err := time.Parse(constants.DateFormat, date)
	if err != nil {
		return "", fmt.Errorf("invalid date format %q: %w", date, err)
	}
	return t.AddDate(0, 0, -1).Format(constants.DateFormat), nil
}

// DescribeDate derives the weekday name and long-form display date for a
// date key.
func DescribeDate(date string) (dayName, formatted string, err error) {
	t, err := time.Parse(constants.DateFormat, date)
	if err != nil {
		return "", "", fmt.Errorf("invalid date format %q: %w", date, err)
	}
	return t.Weekday().String(), t.Format(constants.DisplayDateFormat), nil
}
