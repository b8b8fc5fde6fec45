package datemetrics

import (
	"testing"
	"time"
)

func d(year int, month time.Month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

func TestDateBefore_EqualDates(t *testing.T) {
	t.Parallel()

	d1 := d(2026, time.January, 1)
	if d1.Before(d1) {
		t.Error("equal dates: d.Before(d) should be false")
	}
	if d1.After(d1) {
		t.Error("equal dates: d.After(d) should be false")
	}
	if d1.Compare(d1) != 0 {
		t.Error("equal dates: Compare should be 0")
	}
}

func TestDateBefore_Ordering(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		earlier Date
		later   Date
	}{
		{"same month", d(2026, time.January, 1), d(2026, time.January, 15)},
		{"different month", d(2026, time.January, 31), d(2026, time.February, 1)},
		{"different year", d(2025, time.December, 31), d(2026, time.January, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.earlier.Before(tt.later) || tt.later.Before(tt.earlier) {
				t.Errorf("%v should be before %v", tt.earlier, tt.later)
			}
			if tt.earlier.Compare(tt.later) != -1 || tt.later.Compare(tt.earlier) != 1 {
				t.Errorf("Compare(%v, %v) inconsistent with Before", tt.earlier, tt.later)
			}
		})
	}
}

func TestDateInRange_Boundaries(t *testing.T) {
	t.Parallel()

	from := d(2026, time.January, 1)
	to := d(2026, time.January, 31)

	if !from.inRange(from, to) {
		t.Error("from date should be in range (inclusive)")
	}
	if !to.inRange(from, to) {
		t.Error("to date should be in range (inclusive)")
	}
	if d(2025, time.December, 31).inRange(from, to) {
		t.Error("day before from should not be in range")
	}
	if d(2026, time.February, 1).inRange(from, to) {
		t.Error("day after to should not be in range")
	}
}

func TestFromEpochDays_RoundTrip(t *testing.T) {
	t.Parallel()

	for _, date := range []Date{
		d(1, time.January, 1),
		d(1, time.December, 31),
		d(4, time.February, 29),
		d(400, time.December, 31),
		d(401, time.January, 1),
		d(1600, time.February, 29),
		d(1900, time.March, 1),
		d(2000, time.February, 29),
		d(2025, time.January, 1),
		d(9999, time.December, 31),
	} {
		if got := fromEpochDays(date.DaysSinceEpoch()); got != date {
			t.Errorf("fromEpochDays(%d) = %v, want %v", date.DaysSinceEpoch(), got, date)
		}
	}
}

func TestFromEpochDays_BeforeYearOne(t *testing.T) {
	t.Parallel()

	// Day 0 is the day before 0001-01-01 in the proleptic calendar.
	if got, want := fromEpochDays(0), d(0, time.December, 31); got != want {
		t.Errorf("fromEpochDays(0) = %v, want %v", got, want)
	}
}

func TestFloorDiv(t *testing.T) {
	t.Parallel()

	tests := []struct{ a, b, want int }{
		{7, 2, 3},
		{-7, 2, -4},
		{-8, 2, -4},
		{0, 4, 0},
		{-1, 400, -1},
		{146097, 146097, 1},
	}
	for _, tt := range tests {
		if got := floorDiv(tt.a, tt.b); got != tt.want {
			t.Errorf("floorDiv(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestFirstMonday(t *testing.T) {
	t.Parallel()

	tests := []struct {
		year int
		want Date
	}{
		{2024, d(2024, time.January, 1)},   // Jan 1 is Monday
		{2025, d(2024, time.December, 30)}, // Jan 1 is Wednesday
		{2026, d(2025, time.December, 29)}, // Jan 1 is Thursday
		{2021, d(2021, time.January, 4)},   // Jan 1 is Friday
		{2022, d(2022, time.January, 3)},   // Jan 1 is Saturday
		{2023, d(2023, time.January, 2)},   // Jan 1 is Sunday
		{2019, d(2018, time.December, 31)}, // Jan 1 is Tuesday
	}
	for _, tt := range tests {
		got := firstMonday(tt.year)
		if got != tt.want {
			t.Errorf("firstMonday(%d) = %v, want %v", tt.year, got, tt.want)
		}
		if got.Weekday() != 1 {
			t.Errorf("firstMonday(%d) = %v is not a Monday", tt.year, got)
		}
	}
}

func TestLunarTable_Bounds(t *testing.T) {
	t.Parallel()

	for i, ld := range lunarNewYears {
		year := LunarYearMin + i
		switch {
		case ld.month == time.January && ld.day >= 21:
		case ld.month == time.February && ld.day <= 20:
		default:
			t.Errorf("lunar new year %d = %s %d, outside Jan 21 - Feb 20", year, ld.month, ld.day)
		}
	}
}
