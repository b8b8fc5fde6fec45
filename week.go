package datemetrics

import "time"

// firstMonday returns the Monday that starts ISO week 1 of year, i.e. the
// Monday of the week holding the year's first Thursday. It falls between
// December 29 of the previous year and January 4.
func firstMonday(year int) Date {
	thursday := 1
	for day := 1; day <= 7; day++ {
		if (Date{Year: year, Month: time.January, Day: day}).Weekday() == 4 {
			thursday = day
			break
		}
	}
	if thursday <= 3 {
		return Date{Year: year - 1, Month: time.December, Day: 28 + thursday}
	}
	return Date{Year: year, Month: time.January, Day: thursday - 3}
}

// WeekOfYear returns the ISO 8601 week number of d, 1 through 53.
//
// Late-December dates on or after the next year's first Monday are in week 1,
// and early-January dates before this year's first Monday belong to the last
// week of the previous year.
func WeekOfYear(d Date) int {
	_, week := ISOWeek(d)
	return week
}

// ISOWeek returns the ISO 8601 week-numbering year and week of d.
func ISOWeek(d Date) (year, week int) {
	if d.Month == time.December && d.Day >= 29 {
		if next := firstMonday(d.Year + 1); !d.Before(next) {
			return d.Year + 1, 1
		}
	}
	start := firstMonday(d.Year)
	if d.Month == time.January && d.Day <= 3 && d.Before(start) {
		prev := firstMonday(d.Year - 1)
		return d.Year - 1, 1 + DayDifference(d, prev)/7
	}
	return d.Year, 1 + DayDifference(d, start)/7
}
