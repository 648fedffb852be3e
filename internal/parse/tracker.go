package parse

import (
	"strings"
	"time"
)

// Context carries the month/year defaults set by the most recent heading
// row. Month is the full English month name, or empty when no heading has
// named one yet. The zero Month with a valid Year is a normal state for
// tables whose first heading only carries a year.
type Context struct {
	Month string
	Year  int
}

// Observe feeds one heading-row text into the context. The year is always
// refreshed from the heading (falling back to the current value when the
// heading has none); the month is only replaced when the heading names one.
func (c *Context) Observe(text string) {
	month, year := MonthYear(text, c.Year)
	c.Year = year
	if month != "" {
		c.Month = month
	}
}

// MonthYear extracts a month name and year from heading text such as
// "May 2024", "October", or "Talks 2025". It tries a full "Month Year"
// parse first, then a bare month token (recovering a 20xx year from
// anywhere in the string), then a bare year. Nothing recognizable returns
// ("", fallbackYear); callers keep their prior state.
func MonthYear(text string, fallbackYear int) (string, int) {
	sanitized := collapseSpace(headingSepPattern.ReplaceAllString(text, " "))
	if sanitized == "" {
		return "", fallbackYear
	}

	for _, layout := range []string{"January 2006", "Jan 2006"} {
		if t, err := time.Parse(layout, sanitized); err == nil {
			return t.Month().String(), t.Year()
		}
	}

	for _, token := range strings.Fields(sanitized) {
		token = strings.Trim(token, ". ")
		if token == "" {
			continue
		}
		for _, layout := range []string{"January", "Jan"} {
			t, err := time.Parse(layout, token)
			if err != nil {
				continue
			}
			year := fallbackYear
			if m := yearPattern.FindString(sanitized); m != "" {
				year = mustAtoi(m)
			}
			return t.Month().String(), year
		}
	}

	if m := yearPattern.FindString(sanitized); m != "" {
		return "", mustAtoi(m)
	}

	return "", fallbackYear
}

// mustAtoi converts a string already validated to be all digits.
func mustAtoi(s string) int {
	n := 0
	for _, r := range s {
		n = n*10 + int(r-'0')
	}
	return n
}
