package datemetrics

import (
	"fmt"
	"time"
)

// daysPer400Years is the length of one full Gregorian leap cycle.
const daysPer400Years = 146097

// IsLeapYear reports whether year is a Gregorian leap year.
func IsLeapYear(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

// DaysInYear returns 366 for leap years and 365 otherwise.
func DaysInYear(year int) int {
	if IsLeapYear(year) {
		return 366
	}
	return 365
}

// DaysInMonth returns the number of days in the given month. A month outside
// 1-12 yields an error matching [ErrInvalidCalendarDate].
func DaysInMonth(year int, month time.Month) (int, error) {
	switch month {
	case time.January, time.March, time.May, time.July, time.August, time.October, time.December:
		return 31, nil
	case time.April, time.June, time.September, time.November:
		return 30, nil
	case time.February:
		if IsLeapYear(year) {
			return 29, nil
		}
		return 28, nil
	}
	return 0, newError("days_in_month", fmt.Sprintf("%d-%02d", year, int(month)), ErrInvalidCalendarDate,
		fmt.Errorf("month %d outside 1-12", int(month)))
}

// monthLength is DaysInMonth for months already known to be valid.
func monthLength(year int, month time.Month) int {
	n, _ := DaysInMonth(year, month)
	return n
}

// DayOfYear returns the 1-based ordinal of d within its year.
func (d Date) DayOfYear() int {
	days := d.Day
	for m := time.January; m < d.Month; m++ {
		days += monthLength(d.Year, m)
	}
	return days
}

// DaysLeftInYear returns the days remaining after d in its year. d itself
// counts as used, so December 31 yields 0.
func (d Date) DaysLeftInYear() int {
	return DaysInYear(d.Year) - d.DayOfYear()
}

// Weekday returns the ISO 8601 day of the week, 1 for Monday through 7 for
// Sunday. It uses Zeller's congruence with January and February counted as
// months 13 and 14 of the previous year.
func (d Date) Weekday() int {
	y, m := d.Year, int(d.Month)
	if m < 3 {
		m += 12
		y--
	}
	c := floorDiv(y, 100)
	y -= c * 100
	// 0 is Sunday here.
	w := (y + y/4 + floorDiv(c, 4) - 2*c + 26*(m+1)/10 + d.Day - 1) % 7
	if w < 0 {
		w += 7
	}
	if w == 0 {
		return 7
	}
	return w
}

// DaysSinceEpoch returns the number of days from 0001-01-01 to d, counting
// 0001-01-01 as day 1. Only differences between two results are meaningful.
func (d Date) DaysSinceEpoch() int {
	p := d.Year - 1
	return 365*p + floorDiv(p, 4) - floorDiv(p, 100) + floorDiv(p, 400) + d.DayOfYear()
}

// DayDifference returns the absolute number of days between a and b.
func DayDifference(a, b Date) int {
	n := a.DaysSinceEpoch() - b.DaysSinceEpoch()
	if n < 0 {
		return -n
	}
	return n
}

// fromEpochDays is the inverse of Date.DaysSinceEpoch.
func fromEpochDays(n int) Date {
	k := n - 1
	cycles := floorDiv(k, daysPer400Years)
	k -= cycles * daysPer400Years
	year := 1 + 400*cycles
	for k >= DaysInYear(year) {
		k -= DaysInYear(year)
		year++
	}
	month := time.January
	for k >= monthLength(year, month) {
		k -= monthLength(year, month)
		month++
	}
	return Date{Year: year, Month: month, Day: k + 1}
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
