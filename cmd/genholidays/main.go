// Command genholidays generates the Shanghai Stock Exchange closure table
// compiled into package datemetrics.
//
// Closures come from the holiday-cn dataset, one JSON file per year, which
// tracks the State Council holiday notices. Every day marked as an off day
// becomes a closure. Make-up workdays are ignored because the exchange stays
// closed on weekends regardless. A local date,name CSV can be used instead.
//
// Usage:
//
//	go run . -years 2025,2026 -output ../../holidays_data.go
//	go run . -csv closures.csv -encoding gbk -output ../../holidays_data.go
package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"go/format"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"slices"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

const (
	primaryURLFormat  = "https://raw.githubusercontent.com/NateScarlet/holiday-cn/master/%d.json"
	fallbackURLFormat = "https://cdn.jsdelivr.net/gh/NateScarlet/holiday-cn@master/%d.json"

	httpTimeout = 30 * time.Second
	maxRetries  = 3

	// A year file is a few KB; anything larger is not the dataset.
	maxResponseSize = 1 * 1024 * 1024

	userAgent = "datemetrics-generator/1.0 (https://github.com/rabitt1ove/datemetrics)"
)

// retryBaseDelay is the base delay between retry attempts (variable for testing).
var retryBaseDelay = 2 * time.Second

// allowedHosts is the set of hostnames a source URL may point to.
var allowedHosts = map[string]bool{
	"raw.githubusercontent.com": true,
	"cdn.jsdelivr.net":          true,
}

// yearFile is the relevant part of a holiday-cn <year>.json document.
type yearFile struct {
	Year   int      `json:"year"`
	Papers []string `json:"papers"`
	Days   []struct {
		Name     string `json:"name"`
		Date     string `json:"date"`
		IsOffDay bool   `json:"isOffDay"`
	} `json:"days"`
}

type closure struct {
	year  int
	month time.Month
	day   int
	name  string
}

func main() {
	years := flag.String("years", "", "comma-separated years to fetch (default: this year and next)")
	output := flag.String("output", "holidays_data.go", "output file path")
	source := flag.String("source", "", "extra URL template with %d for the year, tried before the defaults")
	csvPath := flag.String("csv", "", "read closures from a local date,name CSV instead of fetching")
	encoding := flag.String("encoding", "utf8", "CSV encoding: utf8, gbk or gb18030")
	flag.Parse()

	log.SetFlags(0)
	log.SetPrefix("genholidays: ")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var (
		closures []closure
		err      error
	)
	if *csvPath != "" {
		closures, err = readCSVFile(*csvPath, *encoding)
	} else {
		closures, err = fetchAll(ctx, &http.Client{Timeout: httpTimeout}, *years, *source)
	}
	if err != nil {
		log.Fatalf("failed to load closures: %v", err)
	}
	if len(closures) == 0 {
		log.Fatalf("validation failed: no closures found")
	}

	src, err := generate(closures)
	if err != nil {
		log.Fatalf("failed to generate source: %v", err)
	}

	if err := os.WriteFile(*output, src, 0644); err != nil {
		log.Fatalf("failed to write output: %v", err)
	}

	log.Printf("wrote %d closures to %s", len(closures), *output)
}

// parseYears parses a comma-separated year list. An empty list means the
// current year and the next one.
func parseYears(s string, now time.Time) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		return []int{now.Year(), now.Year() + 1}, nil
	}
	var years []int
	for _, f := range strings.Split(s, ",") {
		y, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil || y < 1 || y > 9999 {
			return nil, fmt.Errorf("invalid year %q", f)
		}
		years = append(years, y)
	}
	return years, nil
}

// validateURL checks that a URL points to an allowed host (SSRF prevention).
func validateURL(rawURL string) error {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("invalid URL %q: %w", rawURL, err)
	}
	if parsed.Scheme != "https" {
		return fmt.Errorf("URL %q: only HTTPS is allowed", rawURL)
	}
	if !allowedHosts[parsed.Hostname()] {
		return fmt.Errorf("URL %q: host %q is not in the allowed list", rawURL, parsed.Hostname())
	}
	return nil
}

// sourceURLs returns the URLs to try for year, in order.
func sourceURLs(year int, extra string) []string {
	var formats []string
	if extra != "" {
		formats = append(formats, extra)
	}
	formats = append(formats, primaryURLFormat, fallbackURLFormat)
	urls := make([]string, 0, len(formats))
	for _, f := range formats {
		urls = append(urls, fmt.Sprintf(f, year))
	}
	return urls
}

// fetchAll fetches and decodes every requested year. A year that yields no
// closures is an error, since every published year has at least New Year's Day.
func fetchAll(ctx context.Context, client *http.Client, yearList, extraSource string) ([]closure, error) {
	years, err := parseYears(yearList, time.Now())
	if err != nil {
		return nil, err
	}
	var all []closure
	for _, y := range years {
		cs, err := fetchYear(ctx, client, y, sourceURLs(y, extraSource))
		if err != nil {
			return nil, fmt.Errorf("year %d: %w", y, err)
		}
		if len(cs) == 0 {
			return nil, fmt.Errorf("year %d: no closures in dataset", y)
		}
		log.Printf("  %d: %d closures", y, len(cs))
		all = append(all, cs...)
	}
	return all, nil
}

// fetchYear tries each URL in turn and decodes the first successful response.
func fetchYear(ctx context.Context, client *http.Client, year int, urls []string) ([]closure, error) {
	var lastErr error
	for _, u := range urls {
		if err := validateURL(u); err != nil {
			return nil, err
		}
		body, err := fetchWithRetry(ctx, client, u)
		if err != nil {
			lastErr = err
			log.Printf("  %v (trying next source)", err)
			continue
		}
		cs, err := decodeYear(body, year)
		if err != nil {
			lastErr = fmt.Errorf("%s: %w", u, err)
			log.Printf("  %v (trying next source)", lastErr)
			continue
		}
		return cs, nil
	}
	return nil, fmt.Errorf("all sources failed, last error: %w", lastErr)
}

// fetchWithRetry fetches a URL with exponential backoff retries and returns
// the body, capped at maxResponseSize.
func fetchWithRetry(ctx context.Context, client *http.Client, url string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt < maxRetries; attempt++ {
		if attempt > 0 {
			delay := retryBaseDelay * time.Duration(1<<(attempt-1))
			log.Printf("  retrying in %v (attempt %d/%d)", delay, attempt+1, maxRetries)
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
			}
		}

		log.Printf("fetching %s", url)
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, fmt.Errorf("creating request: %w", err)
		}
		req.Header.Set("User-Agent", userAgent)

		resp, err := client.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			lastErr = fmt.Errorf("GET %s: %w", url, err)
			log.Printf("  failed: %v", err)
			continue
		}

		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
			resp.Body.Close()
			lastErr = fmt.Errorf("GET %s: status %d", url, resp.StatusCode)
			log.Printf("  failed: status %d (retryable)", resp.StatusCode)
			continue
		}

		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return nil, fmt.Errorf("GET %s: status %d", url, resp.StatusCode)
		}

		body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize+1))
		resp.Body.Close()
		if err != nil {
			lastErr = fmt.Errorf("GET %s: reading body: %w", url, err)
			continue
		}
		if len(body) > maxResponseSize {
			return nil, fmt.Errorf("GET %s: response exceeds %d bytes", url, maxResponseSize)
		}
		return body, nil
	}
	return nil, lastErr
}

// decodeYear parses a holiday-cn year file and returns its off days.
func decodeYear(body []byte, year int) ([]closure, error) {
	var f yearFile
	if err := json.Unmarshal(body, &f); err != nil {
		return nil, fmt.Errorf("decoding JSON: %w", err)
	}
	if f.Year != year {
		return nil, fmt.Errorf("dataset is for year %d, want %d", f.Year, year)
	}

	var out []closure
	for i, d := range f.Days {
		if !d.IsOffDay {
			continue
		}
		t, err := time.Parse(time.DateOnly, d.Date)
		if err != nil {
			return nil, fmt.Errorf("days[%d]: invalid date %q: %w", i, d.Date, err)
		}
		name := strings.TrimSpace(d.Name)
		if name == "" {
			return nil, fmt.Errorf("days[%d]: empty name for %s", i, d.Date)
		}
		out = append(out, closure{year: t.Year(), month: t.Month(), day: t.Day(), name: name})
	}
	return out, nil
}

// decoder wraps r so that it yields UTF-8 text for the named encoding.
func decoder(r io.Reader, encoding string) (io.Reader, error) {
	switch strings.ToLower(encoding) {
	case "utf8", "utf-8", "":
		return transform.NewReader(r, unicode.BOMOverride(transform.Nop)), nil
	case "gbk":
		return transform.NewReader(r, simplifiedchinese.GBK.NewDecoder()), nil
	case "gb18030":
		return transform.NewReader(r, simplifiedchinese.GB18030.NewDecoder()), nil
	}
	return nil, fmt.Errorf("unsupported encoding %q", encoding)
}

func readCSVFile(path, encoding string) ([]closure, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r, err := decoder(f, encoding)
	if err != nil {
		return nil, err
	}
	return parseCSV(r)
}

// csvDateLayouts are the accepted date formats in CSV input.
var csvDateLayouts = []string{time.DateOnly, "2006/1/2"}

func parseCSVDate(s string) (time.Time, error) {
	var lastErr error
	for _, layout := range csvDateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// parseCSV parses date,name rows. A first row whose date column is "date"
// is treated as a header. Rows with an empty field are skipped.
func parseCSV(r io.Reader) ([]closure, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var out []closure
	lineNum := 0
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum+1, err)
		}
		lineNum++

		if len(record) < 2 {
			return nil, fmt.Errorf("line %d: expected 2 columns, got %d", lineNum, len(record))
		}

		dateStr := strings.TrimSpace(record[0])
		name := strings.TrimSpace(record[1])

		if lineNum == 1 && strings.EqualFold(dateStr, "date") {
			continue
		}
		if dateStr == "" || name == "" {
			continue
		}

		t, err := parseCSVDate(dateStr)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid date %q: %w", lineNum, dateStr, err)
		}

		out = append(out, closure{year: t.Year(), month: t.Month(), day: t.Day(), name: name})
	}
	return out, nil
}

// monthConstName returns the time.Month constant name (e.g., "time.January").
func monthConstName(m time.Month) string {
	return "time." + m.String()
}

func compareClosures(a, b closure) int {
	if a.year != b.year {
		return a.year - b.year
	}
	if a.month != b.month {
		return int(a.month) - int(b.month)
	}
	return a.day - b.day
}

// generate produces a formatted Go source file containing the closure table.
// When a date occurs more than once the last name wins.
func generate(closures []closure) ([]byte, error) {
	type key struct {
		year  int
		month time.Month
		day   int
	}
	byDate := make(map[key]int, len(closures))
	var uniq []closure
	for _, c := range closures {
		k := key{c.year, c.month, c.day}
		if i, ok := byDate[k]; ok {
			uniq[i].name = c.name
			continue
		}
		byDate[k] = len(uniq)
		uniq = append(uniq, c)
	}
	slices.SortFunc(uniq, compareClosures)

	var b strings.Builder
	b.WriteString("// Code generated by cmd/genholidays; DO NOT EDIT.\n\n")
	b.WriteString("package datemetrics\n\n")
	b.WriteString("import \"time\"\n\n")
	b.WriteString("var builtinClosures = map[Date]string{\n")

	currentYear := 0
	for _, c := range uniq {
		if c.year != currentYear {
			if currentYear != 0 {
				b.WriteString("\n")
			}
			fmt.Fprintf(&b, "\t// %d\n", c.year)
			currentYear = c.year
		}
		fmt.Fprintf(&b, "\t{%d, %s, %d}: %q,\n", c.year, monthConstName(c.month), c.day, c.name)
	}

	b.WriteString("}\n")

	return format.Source([]byte(b.String()))
}
