package datetime

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

const (
	// DateLayout is the canonical date representation used across the service.
	DateLayout = "2006-01-02"
	// ClockLayout is the canonical time-of-day representation.
	ClockLayout = "15:04"
)

// Date is a calendar date in canonical YYYY-MM-DD form. The empty value means
// the source value was absent or could not be normalized.
type Date string

// UnmarshalJSON accepts either an ISO string or a [year, month, day, ...] array.
// Unrecognized shapes decode to the empty Date instead of failing the payload.
func (d *Date) UnmarshalJSON(b []byte) error {
	var raw any
	if err := json.Unmarshal(b, &raw); err != nil {
		*d = ""
		return nil
	}
	s, _ := NormalizeDate(raw)
	*d = Date(s)
	return nil
}

// Ptr returns nil for the empty Date.
func (d Date) Ptr() *string {
	if d == "" {
		return nil
	}
	s := string(d)
	return &s
}

// Clock is a time of day in canonical HH:MM form. The empty value means absent.
type Clock string

// UnmarshalJSON accepts a time string, a datetime string, an
// [hour, minute(, second(, nano))] array or a [year, month, day, hour, minute, ...] array.
func (c *Clock) UnmarshalJSON(b []byte) error {
	var raw any
	if err := json.Unmarshal(b, &raw); err != nil {
		*c = ""
		return nil
	}
	s, _ := NormalizeTime(raw)
	*c = Clock(s)
	return nil
}

// Ptr returns nil for the empty Clock.
func (c Clock) Ptr() *string {
	if c == "" {
		return nil
	}
	s := string(c)
	return &s
}

// NormalizeDate converts a decoded wire value into YYYY-MM-DD.
func NormalizeDate(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return normalizeDateString(t)
	case *string:
		if t == nil {
			return "", false
		}
		return normalizeDateString(*t)
	case time.Time:
		if t.IsZero() {
			return "", false
		}
		return t.Format(DateLayout), true
	default:
		parts, ok := toInts(v)
		if !ok || len(parts) < 3 {
			return "", false
		}
		return formatDate(parts[0], parts[1], parts[2])
	}
}

// NormalizeTime converts a decoded wire value into HH:MM.
func NormalizeTime(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return normalizeTimeString(t)
	case *string:
		if t == nil {
			return "", false
		}
		return normalizeTimeString(*t)
	default:
		parts, ok := toInts(v)
		if !ok {
			return "", false
		}
		switch {
		case len(parts) >= 2 && len(parts) <= 4:
			// [hour, minute(, second(, nano))]
			return formatClock(parts[0], parts[1])
		case len(parts) >= 5:
			return formatClock(parts[3], parts[4])
		default:
			return "", false
		}
	}
}

// Minutes parses a canonical HH:MM value into minutes since midnight.
func Minutes(clock string) (int, bool) {
	normalized, ok := normalizeTimeString(clock)
	if !ok {
		return 0, false
	}
	h, _ := strconv.Atoi(normalized[:2])
	m, _ := strconv.Atoi(normalized[3:])
	return h*60 + m, true
}

// Parse converts a canonical date into a time.Time at midnight UTC.
func Parse(date string) (time.Time, bool) {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// IsWeekend reports whether the canonical date falls on Saturday or Sunday.
func IsWeekend(date string) bool {
	t, ok := Parse(date)
	if !ok {
		return false
	}
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// MonthDays lists every canonical date of the given month in order.
func MonthDays(year int, month time.Month) []string {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	n := first.AddDate(0, 1, -1).Day()
	days := make([]string, 0, n)
	for i := 0; i < n; i++ {
		days = append(days, first.AddDate(0, 0, i).Format(DateLayout))
	}
	return days
}

// MonthBounds returns the first and last canonical dates of the given month.
func MonthBounds(year int, month time.Month) (string, string) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return first.Format(DateLayout), first.AddDate(0, 1, -1).Format(DateLayout)
}

// Today returns the current canonical date in loc.
func Today(now time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return now.In(loc).Format(DateLayout)
}

func normalizeDateString(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if i := strings.IndexAny(s, "T "); i >= 0 {
		s = s[:i]
	}
	fields := strings.Split(s, "-")
	if len(fields) != 3 {
		return "", false
	}
	var parts [3]int
	for i, f := range fields {
		n, ok := atoiDigits(f, 4)
		if !ok {
			return "", false
		}
		parts[i] = n
	}
	return formatDate(parts[0], parts[1], parts[2])
}

func normalizeTimeString(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if i := strings.IndexAny(s, "T "); i >= 0 {
		s = strings.TrimSpace(s[i+1:])
	}
	fields := strings.SplitN(s, ":", 3)
	if len(fields) < 2 {
		return "", false
	}
	h, ok := atoiDigits(fields[0], 2)
	if !ok {
		return "", false
	}
	m, ok := atoiDigits(fields[1], 2)
	if !ok {
		return "", false
	}
	return formatClock(h, m)
}

func formatDate(year, month, day int) (string, bool) {
	if year < 1 || year > 9999 || month < 1 || month > 12 || day < 1 {
		return "", false
	}
	last := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
	if day > last {
		return "", false
	}
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day), true
}

func formatClock(hour, minute int) (string, bool) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return "", false
	}
	return fmt.Sprintf("%02d:%02d", hour, minute), true
}

// atoiDigits accepts 1..maxLen ASCII digits and nothing else.
func atoiDigits(s string, maxLen int) (int, bool) {
	if len(s) == 0 || len(s) > maxLen {
		return 0, false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	return n, err == nil
}

func toInts(v any) ([]int, bool) {
	switch t := v.(type) {
	case []int:
		return t, true
	case []int64:
		out := make([]int, len(t))
		for i, n := range t {
			out[i] = int(n)
		}
		return out, true
	case []float64:
		out := make([]int, len(t))
		for i, f := range t {
			n, ok := floatToInt(f)
			if !ok {
				return nil, false
			}
			out[i] = n
		}
		return out, true
	case []any:
		out := make([]int, len(t))
		for i, e := range t {
			n, ok := anyToInt(e)
			if !ok {
				return nil, false
			}
			out[i] = n
		}
		return out, true
	default:
		return nil, false
	}
}

func anyToInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return floatToInt(n)
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, false
		}
		return int(i), true
	default:
		return 0, false
	}
}

func floatToInt(f float64) (int, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	return int(f), true
}
