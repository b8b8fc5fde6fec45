package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/rabitt1ove/datemetrics"
)

// HolidayFile is a market closure list read from YAML:
//
//	market: SSE
//	closures:
//	  - date: "2025-01-01"
//	    name: 元旦
type HolidayFile struct {
	Market   string
	Holidays []datemetrics.Holiday
}

type yamlHolidayFile struct {
	Market   string `yaml:"market"`
	Closures []struct {
		Date string `yaml:"date"`
		Name string `yaml:"name"`
	} `yaml:"closures"`
}

// LoadHolidays reads a closure list from path. Unknown keys are rejected.
// A malformed or nonexistent date yields an error matching the
// corresponding datemetrics sentinel.
func LoadHolidays(path string) (HolidayFile, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return HolidayFile{}, fmt.Errorf("reading holiday file: %w", err)
	}
	return parseHolidays(b, path)
}

func parseHolidays(b []byte, path string) (HolidayFile, error) {
	var y yamlHolidayFile
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&y); err != nil && !errors.Is(err, io.EOF) {
		return HolidayFile{}, fmt.Errorf("parsing holiday file %s: %w", path, err)
	}

	out := HolidayFile{
		Market:   y.Market,
		Holidays: make([]datemetrics.Holiday, 0, len(y.Closures)),
	}
	for i, c := range y.Closures {
		d, err := datemetrics.ParseDate(c.Date)
		if err != nil {
			return HolidayFile{}, fmt.Errorf("holiday file %s: closures[%d]: %w", path, i, err)
		}
		out.Holidays = append(out.Holidays, datemetrics.Holiday{Date: d, Name: c.Name})
	}
	return out, nil
}

// Calendar returns a trading calendar closed only on the file's dates.
func (f HolidayFile) Calendar() *datemetrics.TradingCalendar {
	return datemetrics.NewTradingCalendar(f.Holidays...)
}
