package treasury

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// MonthFormat is the format used to represent months as strings, a
// truncated ISO-8601 date.
const MonthFormat = "2006-01" // write format

const readMonthFormat = "2006-1" // permissive read format (allows "2024-6")

// Month represents a calendar month, the granularity of the whole
// dataset. The zero value is not a valid month.
type Month struct {
	y int        // year
	m time.Month // month
}

// NewMonth returns a normalized Month for the given year and month.
// Out-of-range month values wrap into the adjacent year, like time.Date.
func NewMonth(year int, month time.Month) Month {
	t := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return Month{y: t.Year(), m: t.Month()}
}

// Year returns the month's year.
func (m Month) Year() int { return m.y }

// Month returns the month within the year.
func (m Month) Month() time.Month { return m.m }

// String formats the month as "2006-01".
func (m Month) String() string { return m.time().Format(MonthFormat) }

// IsZero returns true if the month is the zero value.
func (m Month) IsZero() bool { return m.y == 0 && m.m == 0 }

// time returns a time.Time that is a canonical representation of that
// month (first day at midnight UTC).
func (m Month) time() time.Time {
	return time.Date(m.y, m.m, 1, 0, 0, 0, 0, time.UTC)
}

// Before reports whether the month m is before x.
func (m Month) Before(x Month) bool { return m.Compare(x) < 0 }

// After reports whether the month m is after x.
func (m Month) After(x Month) bool { return m.Compare(x) > 0 }

// Compare orders months chronologically, returning -1, 0 or +1. It is
// usable directly as a comparison function for slices.SortFunc.
func (m Month) Compare(x Month) int {
	switch {
	case m.y != x.y:
		if m.y < x.y {
			return -1
		}
		return 1
	case m.m != x.m:
		if m.m < x.m {
			return -1
		}
		return 1
	default:
		return 0
	}
}

// Next returns the month immediately after m.
func (m Month) Next() Month { return NewMonth(m.y, m.m+1) }

// ThisMonth returns the current month.
func ThisMonth() Month {
	now := time.Now()
	return NewMonth(now.Year(), now.Month())
}

// ParseMonth parses a Month from a string. It is lenient and accepts
// formats like "2024-6" as well as the canonical "2024-06".
func ParseMonth(str string) (Month, error) {
	str = strings.TrimSpace(str)
	t, err := time.Parse(readMonthFormat, str)
	if err != nil {
		return Month{}, fmt.Errorf("invalid month %q: expected format %q", str, MonthFormat)
	}
	return NewMonth(t.Year(), t.Month()), nil
}

// monthOf builds a Month from raw year/month integers, validating the
// ranges the spreadsheet is allowed to contain.
func monthOf(year, month int) (Month, error) {
	if year < 1000 || year > 9999 {
		return Month{}, fmt.Errorf("year %d is not a four-digit year", year)
	}
	if month < 1 || month > 12 {
		return Month{}, fmt.Errorf("month %d is out of range [1..12]", month)
	}
	return NewMonth(year, time.Month(month)), nil
}

// atoiMonth parses a spreadsheet cell that holds a year or month number.
// Spreadsheets frequently render integers as "2024.0"; accept that too.
func atoiMonth(cell string) (int, bool) {
	cell = strings.TrimSpace(cell)
	if v, err := strconv.Atoi(cell); err == nil {
		return v, true
	}
	if f, err := strconv.ParseFloat(cell, 64); err == nil && f == float64(int(f)) {
		return int(f), true
	}
	return 0, false
}
