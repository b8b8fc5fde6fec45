package datemetrics

import (
	"errors"
	"testing"
	"time"
)

func TestLunarNewYear(t *testing.T) {
	t.Parallel()

	tests := []struct {
		year int
		want Date
	}{
		{1800, d(1800, time.January, 25)},
		{1900, d(1900, time.January, 31)},
		{2000, d(2000, time.February, 5)},
		{2024, d(2024, time.February, 10)},
		{2025, d(2025, time.January, 29)},
		{2026, d(2026, time.February, 17)},
		{2100, d(2100, time.February, 9)},
	}
	for _, tt := range tests {
		got, err := LunarNewYear(tt.year)
		if err != nil {
			t.Fatalf("LunarNewYear(%d): %v", tt.year, err)
		}
		if got != tt.want {
			t.Errorf("LunarNewYear(%d) = %v, want %v", tt.year, got, tt.want)
		}
	}
}

func TestLunarNewYear_OutOfRange(t *testing.T) {
	t.Parallel()

	for _, year := range []int{1799, 2101, 0, 3000} {
		if _, err := LunarNewYear(year); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("LunarNewYear(%d) error = %v, want ErrOutOfRange", year, err)
		}
	}
}

func TestDaysUntilLunarNewYear(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		date Date
		want int
	}{
		{"new year's day", d(2025, time.January, 1), 28},
		{"eve", d(2025, time.January, 28), 1},
		{"on the day rolls over", d(2025, time.January, 29), 384},
		{"day after", d(2025, time.January, 30), 383},
		{"last day of year", d(2025, time.December, 31), 48},
		{"leap year rollover", d(2024, time.February, 10), 354},
		{"last table year before new year", d(2100, time.January, 1), 39},
		{"first table year", d(1800, time.January, 1), 24},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DaysUntilLunarNewYear(tt.date)
			if err != nil {
				t.Fatalf("DaysUntilLunarNewYear(%v): %v", tt.date, err)
			}
			if got != tt.want {
				t.Errorf("DaysUntilLunarNewYear(%v) = %d, want %d", tt.date, got, tt.want)
			}
		})
	}
}

func TestDaysUntilLunarNewYear_OutOfRange(t *testing.T) {
	t.Parallel()

	for _, date := range []Date{
		d(1799, time.December, 31),
		d(2100, time.February, 9), // next lookup is 2101
		d(2100, time.June, 1),
		d(2101, time.January, 1),
	} {
		if _, err := DaysUntilLunarNewYear(date); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("DaysUntilLunarNewYear(%v) error = %v, want ErrOutOfRange", date, err)
		}
	}
}

func TestDaysUntilLunarNewYear_IsDayDifference(t *testing.T) {
	t.Parallel()

	for year := LunarYearMin; year < LunarYearMax-1; year++ {
		for m := time.January; m <= time.December; m++ {
			for _, day := range []int{1, 15, monthLength(year, m)} {
				date := d(year, m, day)
				got, err := DaysUntilLunarNewYear(date)
				if err != nil {
					t.Fatalf("DaysUntilLunarNewYear(%v): %v", date, err)
				}
				next, err := NextLunarNewYear(date)
				if err != nil {
					t.Fatalf("NextLunarNewYear(%v): %v", date, err)
				}
				if !next.After(date) {
					t.Fatalf("NextLunarNewYear(%v) = %v, not after", date, next)
				}
				if want := DayDifference(date, next); got != want {
					t.Fatalf("DaysUntilLunarNewYear(%v) = %d, want %d", date, got, want)
				}
			}
		}
	}
}
