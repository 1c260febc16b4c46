// Package timeutil provides calendar helpers for the assistant bot: a
// replaceable clock, date-only arithmetic and leap-year handling used by the
// birthday window.
// No external dependencies - uses only standard library.
package timeutil

import (
	"time"
)

// DateLayout is the dd.mm.yyyy layout used for birthdays. Single-digit day
// and month are accepted on input.
const DateLayout = "2.1.2006"

// DisplayLayout is the zero-padded form used when formatting dates.
const DisplayLayout = "02.01.2006"

// Clock supplies the current time. Production code uses SystemClock;
// tests pin the date with FixedClock.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock in a configured location.
type SystemClock struct {
	Location *time.Location
}

// NewSystemClock returns a clock in loc, falling back to time.Local.
func NewSystemClock(loc *time.Location) SystemClock {
	if loc == nil {
		loc = time.Local
	}
	return SystemClock{Location: loc}
}

// Now returns the current time in the clock's location.
func (c SystemClock) Now() time.Time {
	if c.Location == nil {
		return time.Now()
	}
	return time.Now().In(c.Location)
}

// FixedClock always returns the same instant.
type FixedClock time.Time

// Now implements Clock.
func (c FixedClock) Now() time.Time {
	return time.Time(c)
}

// Date creates midnight of the given day in UTC.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Today returns the clock's current calendar day as a UTC midnight value.
// Dropping the zone keeps day arithmetic free of DST shifts.
func Today(c Clock) time.Time {
	return StartOfDay(c.Now())
}

// StartOfDay returns midnight of t's calendar day, expressed in UTC.
func StartOfDay(t time.Time) time.Time {
	return Date(t.Year(), t.Month(), t.Day())
}

// AddDays moves a date-only value by n days.
func AddDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n)
}

// IsLeapYear reports whether year has a February 29.
func IsLeapYear(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

// AnniversaryIn returns the month/day of t in the given year. February 29
// falls back to February 28 when year is not a leap year.
func AnniversaryIn(t time.Time, year int) time.Time {
	month, day := t.Month(), t.Day()
	if month == time.February && day == 29 && !IsLeapYear(year) {
		day = 28
	}
	return Date(year, month, day)
}

// InRange reports whether t lies in the inclusive range [from, to].
func InRange(t, from, to time.Time) bool {
	return !t.Before(from) && !t.After(to)
}

// ParseDate parses a dd.mm.yyyy string into a date-only value. Calendar
// validity (e.g. 31.02) is enforced by time.Parse.
func ParseDate(value string) (time.Time, error) {
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, err
	}
	return StartOfDay(t), nil
}

// FormatDate formats t as dd.mm.yyyy.
func FormatDate(t time.Time) string {
	return t.Format(DisplayLayout)
}
