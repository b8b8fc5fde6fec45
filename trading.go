package datemetrics

// maxScanDays bounds searches for a trading day.
const maxScanDays = 366

// IsTradingDay reports whether d is a trading day: Monday through Friday and
// not a listed closure.
func (c *TradingCalendar) IsTradingDay(d Date) bool {
	if d.Weekday() > 5 {
		return false
	}
	return !c.IsHoliday(d)
}

// DaysToNextTradingDay returns the number of consecutive non-trading days
// starting the day after d and ending before the next trading day. If the
// day after d is a trading day the result is 0; from a Friday with no
// closures the result is 2.
//
// An error matching [ErrNoTradingDay] is returned if no trading day occurs
// within a year of d.
func (c *TradingCalendar) DaysToNextTradingDay(d Date) (int, error) {
	cur := d
	for i := 0; i < maxScanDays; i++ {
		cur = cur.AddDays(1)
		if c.IsTradingDay(cur) {
			return i, nil
		}
	}
	return 0, newError("days_to_next_trading_day", d.String(), ErrNoTradingDay, nil)
}

// NextTradingDay returns the first trading day on or after d. It returns
// false if none occurs within a year.
func (c *TradingCalendar) NextTradingDay(d Date) (Date, bool) {
	cur := d
	for i := 0; i < maxScanDays; i++ {
		if c.IsTradingDay(cur) {
			return cur, true
		}
		cur = cur.AddDays(1)
	}
	return Date{}, false
}

// PreviousTradingDay returns the most recent trading day on or before d. It
// returns false if none occurs within a year.
func (c *TradingCalendar) PreviousTradingDay(d Date) (Date, bool) {
	cur := d
	for i := 0; i < maxScanDays; i++ {
		if c.IsTradingDay(cur) {
			return cur, true
		}
		cur = cur.AddDays(-1)
	}
	return Date{}, false
}

// TradingDaysBetween returns the count of trading days in [from, to]
// inclusive. If from is after to, it returns 0.
func (c *TradingCalendar) TradingDaysBetween(from, to Date) int {
	if to.Before(from) {
		return 0
	}
	count := 0
	for cur := from; !cur.After(to); cur = cur.AddDays(1) {
		if c.IsTradingDay(cur) {
			count++
		}
	}
	return count
}

// --- Package-level convenience functions ---

// IsTradingDay reports whether d is a trading day on the built-in calendar.
func IsTradingDay(d Date) bool { return defaultCal.IsTradingDay(d) }

// DaysToNextTradingDay counts non-trading days after d on the built-in calendar.
func DaysToNextTradingDay(d Date) (int, error) { return defaultCal.DaysToNextTradingDay(d) }

// NextTradingDay returns the first built-in trading day on or after d.
func NextTradingDay(d Date) (Date, bool) { return defaultCal.NextTradingDay(d) }

// PreviousTradingDay returns the most recent built-in trading day on or before d.
func PreviousTradingDay(d Date) (Date, bool) { return defaultCal.PreviousTradingDay(d) }

// TradingDaysBetween counts built-in trading days in [from, to].
func TradingDaysBetween(from, to Date) int { return defaultCal.TradingDaysBetween(from, to) }
