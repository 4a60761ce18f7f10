package formatting

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	usDatePattern  = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})$`)
	isoDatePattern = regexp.MustCompile(`^(\d{4})-(\d{1,2})-(\d{1,2})$`)
	monthYear      = regexp.MustCompile(`^(\d{1,2})/(\d{4})$`)
	fullYearSuffix = regexp.MustCompile(`/\d{4}$`)
)

// fallbackLayouts are tried in order when a value matches neither literal format
var fallbackLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	time.RFC1123Z,
	time.RFC1123,
	time.RFC850,
	time.ANSIC,
	"Mon, 02 Jan 2006",
	"Mon Jan 2 2006",
	"January 2, 2006",
	"Jan 2, 2006",
	"2 January 2006",
	"2 Jan 2006",
	"2006/01/02",
	"2006/1/2",
}

// ParseDate parses a date string in the local time zone.
// See ParseDateIn for the accepted formats.
func ParseDate(value string) (time.Time, bool) {
	return ParseDateIn(value, time.Local)
}

// ParseDateIn parses MM/DD/YYYY and YYYY-MM-DD literally, then falls back to a
// set of general layouts. The second return value is false when no form matches.
// Literal formats normalise out-of-range components the way time.Date does.
func ParseDateIn(value string, loc *time.Location) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}
	if loc == nil {
		loc = time.Local
	}

	if m := usDatePattern.FindStringSubmatch(value); m != nil {
		return dateFromParts(m[3], m[1], m[2], loc), true
	}

	if m := isoDatePattern.FindStringSubmatch(value); m != nil {
		return dateFromParts(m[1], m[2], m[3], loc), true
	}

	for _, layout := range fallbackLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

func dateFromParts(year, month, day string, loc *time.Location) time.Time {
	y, _ := strconv.Atoi(year)
	m, _ := strconv.Atoi(month)
	d, _ := strconv.Atoi(day)
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, loc)
}

// StartOfDay truncates t to midnight in its own location
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// FormatDate formats a date as MM/DD/YYYY
func FormatDate(t time.Time) string {
	return t.Format("01/02/2006")
}

// FormatISODate formats a date as YYYY-MM-DD
func FormatISODate(t time.Time) string {
	return t.Format("2006-01-02")
}

// FormatMonthYear formats a date as MM/YYYY
func FormatMonthYear(t time.Time) string {
	return t.Format("01/2006")
}

// ParseMonthYear parses MM/YYYY into the first day of that month
func ParseMonthYear(value string, loc *time.Location) (time.Time, error) {
	m := monthYear.FindStringSubmatch(strings.TrimSpace(value))
	if m == nil {
		return time.Time{}, fmt.Errorf("invalid month %q, use MM/YYYY", value)
	}

	month, _ := strconv.Atoi(m[1])
	if month < 1 || month > 12 {
		return time.Time{}, fmt.Errorf("invalid month %q, month must be 1-12", value)
	}

	year, _ := strconv.Atoi(m[2])
	if loc == nil {
		loc = time.Local
	}
	return time.Date(year, time.Month(month), 1, 0, 0, 0, 0, loc), nil
}

// ShortDate rewrites a trailing four digit year as two digits: 06/01/2024 -> 06/01/24.
// Values without a trailing /YYYY are returned unchanged.
func ShortDate(value string) string {
	return fullYearSuffix.ReplaceAllStringFunc(value, func(match string) string {
		return "/" + match[len(match)-2:]
	})
}
