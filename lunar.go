package datemetrics

import (
	"strconv"
	"time"
)

// The Lunar New Year has no closed form in the Gregorian calendar, so dates
// come from a fixed table covering [LunarYearMin, LunarYearMax). Lookups
// outside that range fail rather than extrapolate.
const (
	LunarYearMin = 1800
	LunarYearMax = 2101 // exclusive
)

type lunarDate struct {
	month time.Month
	day   int
}

// LunarNewYear returns the Gregorian date of Lunar New Year in year. Years
// outside the table yield an error matching [ErrOutOfRange].
func LunarNewYear(year int) (Date, error) {
	if year < LunarYearMin || year >= LunarYearMax {
		return Date{}, newError("lunar_new_year", strconv.Itoa(year), ErrOutOfRange, nil)
	}
	ld := lunarNewYears[year-LunarYearMin]
	return Date{Year: year, Month: ld.month, Day: ld.day}, nil
}

// NextLunarNewYear returns the first Lunar New Year strictly after d. On the
// Lunar New Year itself it returns the following year's.
func NextLunarNewYear(d Date) (Date, error) {
	cur, err := LunarNewYear(d.Year)
	if err != nil {
		return Date{}, err
	}
	if d.Before(cur) {
		return cur, nil
	}
	return LunarNewYear(d.Year + 1)
}

// DaysUntilLunarNewYear returns the number of days from d to the next Lunar
// New Year strictly after d. The result is at least 1.
func DaysUntilLunarNewYear(d Date) (int, error) {
	next, err := NextLunarNewYear(d)
	if err != nil {
		return 0, err
	}
	if next.Year == d.Year {
		return next.DayOfYear() - d.DayOfYear(), nil
	}
	// Inclusive counts on both sides of the year boundary would be
	// (DaysLeftInYear+1) + (DayOfYear-1); the boundary day cancels out.
	return d.DaysLeftInYear() + next.DayOfYear(), nil
}
