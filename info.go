// Package datemetrics derives calendar metrics for a Gregorian date: ISO week,
// ISO weekday, day of year, days left in the year, days until the next Lunar
// New Year and days until the next Shanghai Stock Exchange trading day.
//
// Everything is pure integer arithmetic over two compiled tables, a Lunar
// New Year table for 1800-2100 and a market closure table generated by
// cmd/genholidays. Nothing is mutated after initialization, so all functions
// and values are safe for concurrent use.
//
// Basic usage:
//
//	s, err := datemetrics.TimeInfo("2025-01-01")
//	// s == "1,3,1,364,28,0"
//
// Closures are injectable:
//
//	cal := datemetrics.DefaultTradingCalendar().With(datemetrics.Holiday{
//		Date: datemetrics.MustParseDate("2025-03-10"),
//		Name: "maintenance",
//	})
//	info, err := datemetrics.Compute(d, cal)
package datemetrics

import "strconv"

// Info holds the six metrics computed for one date.
type Info struct {
	Week                 int `yaml:"week"`        // ISO 8601 week number
	Weekday              int `yaml:"weekday"`     // 1=Monday..7=Sunday
	DayOfYear            int `yaml:"day_of_year"` // 1-based
	DaysLeft             int `yaml:"days_left"`   // 0 on December 31
	DaysToLunarNewYear   int `yaml:"days_to_lunar_new_year"`
	DaysToNextTradingDay int `yaml:"days_to_next_trading_day"`
}

// String formats the metrics as
// week,weekday,day_of_year,days_left,days_to_lunar_ny,days_to_trading.
func (i Info) String() string {
	b := make([]byte, 0, 24)
	for n, v := range [...]int{i.Week, i.Weekday, i.DayOfYear, i.DaysLeft, i.DaysToLunarNewYear, i.DaysToNextTradingDay} {
		if n > 0 {
			b = append(b, ',')
		}
		b = strconv.AppendInt(b, int64(v), 10)
	}
	return string(b)
}

// Compute returns the metrics for d using cal for trading days. A nil cal
// means [DefaultTradingCalendar]. No partial result is returned on error.
func Compute(d Date, cal *TradingCalendar) (Info, error) {
	if cal == nil {
		cal = defaultCal
	}
	lny, err := DaysUntilLunarNewYear(d)
	if err != nil {
		return Info{}, err
	}
	trading, err := cal.DaysToNextTradingDay(d)
	if err != nil {
		return Info{}, err
	}
	return Info{
		Week:                 WeekOfYear(d),
		Weekday:              d.Weekday(),
		DayOfYear:            d.DayOfYear(),
		DaysLeft:             d.DaysLeftInYear(),
		DaysToLunarNewYear:   lny,
		DaysToNextTradingDay: trading,
	}, nil
}

// TimeInfo parses s as YYYY-MM-DD and returns its metrics, formatted as by
// [Info.String], using the built-in trading calendar.
func TimeInfo(s string) (string, error) {
	d, err := ParseDate(s)
	if err != nil {
		return "", err
	}
	info, err := Compute(d, nil)
	if err != nil {
		return "", err
	}
	return info.String(), nil
}
