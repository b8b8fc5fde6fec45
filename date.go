package datemetrics

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Date is a proleptic Gregorian calendar date. It is a comparable value type
// and may be used as a map key.
//
// Methods other than [NewDate] and [ParseDate] assume the date is valid.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate returns the date for year, month and day, or an error matching
// [ErrInvalidCalendarDate] if the month is outside 1-12, the day exceeds the
// length of that month, or the year is before 1.
func NewDate(year int, month time.Month, day int) (Date, error) {
	d := Date{Year: year, Month: month, Day: day}
	if year < 1 {
		return Date{}, newError("new_date", d.String(), ErrInvalidCalendarDate, fmt.Errorf("year %d before 1", year))
	}
	n, err := DaysInMonth(year, month)
	if err != nil {
		return Date{}, newError("new_date", d.String(), ErrInvalidCalendarDate, err)
	}
	if day < 1 || day > n {
		return Date{}, newError("new_date", d.String(), ErrInvalidCalendarDate,
			fmt.Errorf("day %d outside 1-%d for %s %d", day, n, month, year))
	}
	return d, nil
}

// ParseDate parses a zero-padded YYYY-MM-DD string. Malformed input matches
// [ErrParse]; a well-formed string naming a day that does not exist matches
// [ErrInvalidCalendarDate].
func ParseDate(s string) (Date, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return Date{}, newError("parse", s, ErrParse, fmt.Errorf("expected 3 fields, got %d", len(parts)))
	}
	var fields [3]int
	for i, width := range [3]int{4, 2, 2} {
		p := parts[i]
		if len(p) != width || !allDigits(p) {
			return Date{}, newError("parse", s, ErrParse, fmt.Errorf("field %d: expected %d digits, got %q", i+1, width, p))
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return Date{}, newError("parse", s, ErrParse, err)
		}
		fields[i] = n
	}
	d, err := NewDate(fields[0], time.Month(fields[1]), fields[2])
	if err != nil {
		cause := err
		var de *Error
		if errors.As(err, &de) {
			cause = de.Err
		}
		return Date{}, newError("parse", s, ErrInvalidCalendarDate, cause)
	}
	return d, nil
}

// MustParseDate is like [ParseDate] but panics on error. It is intended for
// static data and tests.
func MustParseDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// DateOf returns the calendar date of t in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// Time returns midnight UTC on d.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Compare returns -1, 0 or +1 depending on whether d is before, equal to or
// after other.
func (d Date) Compare(other Date) int {
	switch {
	case d.Before(other):
		return -1
	case other.Before(d):
		return 1
	}
	return 0
}

func (d Date) Before(other Date) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

func (d Date) After(other Date) bool {
	return other.Before(d)
}

func (d Date) Equal(other Date) bool {
	return d == other
}

func (d Date) inRange(from, to Date) bool {
	return !d.Before(from) && !to.Before(d)
}

// AddDays returns the date n days after d (before, if n is negative).
func (d Date) AddDays(n int) Date {
	if n == 0 {
		return d
	}
	return fromEpochDays(d.DaysSinceEpoch() + n)
}
