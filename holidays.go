package datemetrics

import (
	"time"

	"github.com/rabitt1ove/datemetrics/internal/qsort"
)

// Holiday is a single market closure.
type Holiday struct {
	Date Date
	Name string // e.g. "春节"
}

// TradingCalendar is an immutable set of market closure dates. Weekends are
// always closed and need not be listed. Membership is by exact date; there
// are no recurrence rules, so years absent from the set fall back to
// weekend-only filtering.
//
// A TradingCalendar is never modified after construction and is safe for
// concurrent use.
type TradingCalendar struct {
	closures map[Date]string
}

// NewTradingCalendar returns a calendar closed on the given dates. When a
// date is listed more than once the last name wins.
func NewTradingCalendar(holidays ...Holiday) *TradingCalendar {
	c := &TradingCalendar{closures: make(map[Date]string, len(holidays))}
	for _, h := range holidays {
		c.closures[h.Date] = h.Name
	}
	return c
}

// defaultCal is the package-level calendar used by top-level functions.
var defaultCal = &TradingCalendar{closures: builtinClosures}

// DefaultTradingCalendar returns the calendar backed by the built-in
// Shanghai Stock Exchange closure table.
func DefaultTradingCalendar() *TradingCalendar {
	return defaultCal
}

// With returns a copy of c that is also closed on the given dates. A name on
// an already listed date replaces the existing one.
func (c *TradingCalendar) With(holidays ...Holiday) *TradingCalendar {
	out := c.clone(len(holidays))
	for _, h := range holidays {
		out.closures[h.Date] = h.Name
	}
	return out
}

// Without returns a copy of c that is open (weekends aside) on the given
// dates. Dates that were not closures are ignored.
func (c *TradingCalendar) Without(dates ...Date) *TradingCalendar {
	out := c.clone(0)
	for _, d := range dates {
		delete(out.closures, d)
	}
	return out
}

func (c *TradingCalendar) clone(extra int) *TradingCalendar {
	out := &TradingCalendar{closures: make(map[Date]string, len(c.closures)+extra)}
	for d, name := range c.closures {
		out.closures[d] = name
	}
	return out
}

// Len returns the number of listed closures.
func (c *TradingCalendar) Len() int {
	return len(c.closures)
}

// IsHoliday reports whether d is a listed closure.
func (c *TradingCalendar) IsHoliday(d Date) bool {
	_, ok := c.closures[d]
	return ok
}

// HolidayName returns the closure name for d, or an empty string if d is
// not listed.
func (c *TradingCalendar) HolidayName(d Date) string {
	return c.closures[d]
}

// Holidays returns all closures sorted by date.
func (c *TradingCalendar) Holidays() []Holiday {
	result := make([]Holiday, 0, len(c.closures))
	for d, name := range c.closures {
		result = append(result, Holiday{Date: d, Name: name})
	}
	sortHolidays(result)
	return result
}

// HolidaysInYear returns the closures in year, sorted by date.
func (c *TradingCalendar) HolidaysInYear(year int) []Holiday {
	from := Date{Year: year, Month: time.January, Day: 1}
	to := Date{Year: year, Month: time.December, Day: 31}
	return c.holidaysInRange(from, to)
}

// HolidaysInMonth returns the closures in the given month, sorted by date.
func (c *TradingCalendar) HolidaysInMonth(year int, month time.Month) []Holiday {
	from := Date{Year: year, Month: month, Day: 1}
	to := Date{Year: year, Month: month, Day: monthLength(year, month)}
	return c.holidaysInRange(from, to)
}

// HolidaysBetween returns the closures in [from, to] inclusive, sorted by
// date. If from is after to, it returns nil.
func (c *TradingCalendar) HolidaysBetween(from, to Date) []Holiday {
	if to.Before(from) {
		return nil
	}
	return c.holidaysInRange(from, to)
}

func (c *TradingCalendar) holidaysInRange(from, to Date) []Holiday {
	var result []Holiday
	for d, name := range c.closures {
		if d.inRange(from, to) {
			result = append(result, Holiday{Date: d, Name: name})
		}
	}
	sortHolidays(result)
	return result
}

func sortHolidays(hs []Holiday) {
	qsort.SortFunc(hs, func(a, b Holiday) int {
		return a.Date.Compare(b.Date)
	})
}

// NextHoliday returns the first closure strictly after d. It returns false
// if none is listed.
func (c *TradingCalendar) NextHoliday(d Date) (Holiday, bool) {
	var best Holiday
	found := false
	for hd, name := range c.closures {
		if hd.After(d) && (!found || hd.Before(best.Date)) {
			best = Holiday{Date: hd, Name: name}
			found = true
		}
	}
	return best, found
}

// PreviousHoliday returns the most recent closure strictly before d. It
// returns false if none is listed.
func (c *TradingCalendar) PreviousHoliday(d Date) (Holiday, bool) {
	var best Holiday
	found := false
	for hd, name := range c.closures {
		if hd.Before(d) && (!found || hd.After(best.Date)) {
			best = Holiday{Date: hd, Name: name}
			found = true
		}
	}
	return best, found
}

// --- Package-level convenience functions ---

// IsHoliday reports whether d is a built-in closure.
func IsHoliday(d Date) bool { return defaultCal.IsHoliday(d) }

// HolidayName returns the built-in closure name for d, or "".
func HolidayName(d Date) string { return defaultCal.HolidayName(d) }

// Holidays returns all built-in closures sorted by date.
func Holidays() []Holiday { return defaultCal.Holidays() }

// HolidaysInYear returns the built-in closures in year, sorted by date.
func HolidaysInYear(year int) []Holiday { return defaultCal.HolidaysInYear(year) }

// HolidaysInMonth returns the built-in closures in the given month.
func HolidaysInMonth(year int, month time.Month) []Holiday {
	return defaultCal.HolidaysInMonth(year, month)
}

// HolidaysBetween returns the built-in closures in [from, to] inclusive.
func HolidaysBetween(from, to Date) []Holiday { return defaultCal.HolidaysBetween(from, to) }

// NextHoliday returns the first built-in closure strictly after d.
func NextHoliday(d Date) (Holiday, bool) { return defaultCal.NextHoliday(d) }

// PreviousHoliday returns the most recent built-in closure strictly before d.
func PreviousHoliday(d Date) (Holiday, bool) { return defaultCal.PreviousHoliday(d) }
