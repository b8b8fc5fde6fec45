package datemetrics

import (
	"errors"
	"testing"
	"time"
)

func TestIsTradingDay(t *testing.T) {
	// 2025: Jan 1 = Wed, Jan 18 = Sat
	tests := []struct {
		name string
		date Date
		want bool
	}{
		{"Thursday non-holiday", d(2025, time.January, 2), true},
		{"Friday non-holiday", d(2025, time.January, 17), true},
		{"Saturday", d(2025, time.January, 18), false},
		{"Sunday", d(2025, time.January, 19), false},
		{"New Year (Wednesday)", d(2025, time.January, 1), false},
		{"Make-up workday on Sunday stays closed", d(2025, time.January, 26), false},
		{"Spring Festival weekday", d(2025, time.February, 3), false},
		{"Reopening after Spring Festival", d(2025, time.February, 5), true},
		{"Outside dataset weekday", d(2030, time.January, 1), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsTradingDay(tt.date); got != tt.want {
				t.Errorf("IsTradingDay(%v) = %v, want %v", tt.date, got, tt.want)
			}
		})
	}
}

func TestDaysToNextTradingDay(t *testing.T) {
	tests := []struct {
		name string
		date Date
		want int
	}{
		{"holiday followed by trading day", d(2025, time.January, 1), 0},
		{"Thursday", d(2025, time.January, 16), 0},
		{"Friday", d(2025, time.January, 17), 2},
		{"Saturday", d(2025, time.January, 18), 1},
		{"Sunday", d(2025, time.January, 19), 0},
		{"eve of Spring Festival", d(2025, time.January, 27), 8},
		{"inside Spring Festival", d(2025, time.January, 29), 6},
		{"eve of National Day", d(2025, time.September, 30), 8},
		{"year end into 2026 closures", d(2025, time.December, 31), 4},
		{"weekend-only outside dataset", d(2030, time.January, 4), 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DaysToNextTradingDay(tt.date)
			if err != nil {
				t.Fatalf("DaysToNextTradingDay(%v): %v", tt.date, err)
			}
			if got != tt.want {
				t.Errorf("DaysToNextTradingDay(%v) = %d, want %d", tt.date, got, tt.want)
			}
		})
	}
}

// alwaysClosed returns a calendar closed on every day in [start, start+n).
func alwaysClosed(start Date, n int) *TradingCalendar {
	var hs []Holiday
	for i := 0; i < n; i++ {
		hs = append(hs, Holiday{Date: start.AddDays(i), Name: "closed"})
	}
	return NewTradingCalendar(hs...)
}

func TestDaysToNextTradingDay_Exhausted(t *testing.T) {
	cal := alwaysClosed(d(2025, time.January, 1), 400)
	_, err := cal.DaysToNextTradingDay(d(2024, time.December, 31))
	if !errors.Is(err, ErrNoTradingDay) {
		t.Errorf("error = %v, want ErrNoTradingDay", err)
	}
}

func TestDaysToNextTradingDay_CustomCalendar(t *testing.T) {
	eve := d(2024, time.December, 31)
	if got, _ := DaysToNextTradingDay(eve); got != 1 {
		t.Errorf("default calendar: got %d, want 1", got)
	}
	if got, _ := NewTradingCalendar().DaysToNextTradingDay(eve); got != 0 {
		t.Errorf("empty calendar: got %d, want 0", got)
	}
}

func TestNextTradingDay(t *testing.T) {
	tests := []struct {
		name string
		date Date
		want Date
	}{
		{"Saturday to Monday", d(2025, time.January, 18), d(2025, time.January, 20)},
		{"trading day returns itself", d(2025, time.January, 2), d(2025, time.January, 2)},
		{"Spring Festival", d(2025, time.January, 28), d(2025, time.February, 5)},
		{"National Day", d(2025, time.October, 1), d(2025, time.October, 9)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NextTradingDay(tt.date)
			if !ok || got != tt.want {
				t.Errorf("NextTradingDay(%v) = %v, %v; want %v", tt.date, got, ok, tt.want)
			}
		})
	}
}

func TestNextTradingDay_Exhausted(t *testing.T) {
	start := d(2025, time.January, 1)
	if got, ok := alwaysClosed(start, 400).NextTradingDay(start); ok {
		t.Errorf("NextTradingDay = %v, want none", got)
	}
}

func TestPreviousTradingDay(t *testing.T) {
	tests := []struct {
		name string
		date Date
		want Date
	}{
		{"end of Spring Festival", d(2025, time.February, 4), d(2025, time.January, 27)},
		{"Sunday to Friday", d(2025, time.January, 19), d(2025, time.January, 17)},
		{"trading day returns itself", d(2025, time.January, 2), d(2025, time.January, 2)},
		{"New Year 2025", d(2025, time.January, 1), d(2024, time.December, 31)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := PreviousTradingDay(tt.date)
			if !ok || got != tt.want {
				t.Errorf("PreviousTradingDay(%v) = %v, %v; want %v", tt.date, got, ok, tt.want)
			}
		})
	}
}

func TestPreviousTradingDay_Exhausted(t *testing.T) {
	start := d(2025, time.January, 1)
	cal := alwaysClosed(start.AddDays(-400), 401)
	if got, ok := cal.PreviousTradingDay(start); ok {
		t.Errorf("PreviousTradingDay = %v, want none", got)
	}
}

func TestTradingDaysBetween(t *testing.T) {
	tests := []struct {
		name     string
		from, to Date
		want     int
	}{
		{"January 2025", d(2025, time.January, 1), d(2025, time.January, 31), 18},
		{"single trading day", d(2025, time.January, 2), d(2025, time.January, 2), 1},
		{"single holiday", d(2025, time.January, 1), d(2025, time.January, 1), 0},
		{"weekend", d(2025, time.January, 18), d(2025, time.January, 19), 0},
		{"reversed", d(2025, time.January, 31), d(2025, time.January, 1), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TradingDaysBetween(tt.from, tt.to); got != tt.want {
				t.Errorf("TradingDaysBetween(%v, %v) = %d, want %d", tt.from, tt.to, got, tt.want)
			}
		})
	}
}
