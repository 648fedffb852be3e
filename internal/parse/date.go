package parse

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Format families tried in priority order. Full dates first, then
// month-and-day forms that borrow the year from context, then the dotted
// numeric forms common in German-language rows.
var (
	fullDateLayouts = []string{"January 2 2006", "Jan 2 2006", "2 January 2006", "2 Jan 2006"}
	monthDayLayouts = []string{"January 2", "Jan 2", "2 January", "2 Jan"}
	dottedLayouts   = []string{"2.1.2006", "2.1.06", "2.1."}
)

// Date parses a date fragment into a calendar date (midnight UTC), using
// ctx as the fallback month/year source. When the fragment does not already
// mention the context month, a "<month> <fragment>" candidate is tried
// before the fragment itself, so a bare "7" under a "May 2024" heading
// resolves to May 7 while an explicit "June 7" still wins.
func Date(text string, ctx Context) (time.Time, error) {
	cleaned := nbspCommaPattern.ReplaceAllString(text, " ")
	cleaned = weekdayPattern.ReplaceAllString(cleaned, "")
	cleaned = collapseSpace(cleaned)
	if cleaned == "" {
		return time.Time{}, fmt.Errorf("%w: date text is empty", ErrDateParse)
	}

	var candidates []string
	if ctx.Month != "" && !strings.Contains(strings.ToLower(cleaned), strings.ToLower(ctx.Month)) {
		candidates = append(candidates, ctx.Month+" "+cleaned)
	}
	candidates = append(candidates, cleaned)

	for _, candidate := range candidates {
		for _, layout := range fullDateLayouts {
			if t, err := time.Parse(layout, candidate); err == nil {
				return dateOnly(t.Year(), t.Month(), t.Day())
			}
		}

		for _, layout := range monthDayLayouts {
			if t, err := time.Parse(layout, candidate); err == nil {
				return dateOnly(ctx.Year, t.Month(), t.Day())
			}
		}

		for _, layout := range dottedLayouts {
			t, err := time.Parse(layout, candidate)
			if err != nil {
				continue
			}
			year := t.Year()
			if layout == "2.1." {
				year = ctx.Year
			}
			return dateOnly(year, t.Month(), t.Day())
		}
	}

	if day, err := strconv.Atoi(cleaned); err == nil && ctx.Month != "" {
		month, merr := monthFromName(ctx.Month)
		if merr == nil {
			return dateOnly(ctx.Year, month, day)
		}
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrDateParse, text)
}

// dateOnly builds a midnight-UTC date, rejecting day/month combinations
// that time.Date would silently normalize (Feb 30, day 32 and the like).
func dateOnly(year int, month time.Month, day int) (time.Time, error) {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if d.Month() != month || d.Day() != day {
		return time.Time{}, fmt.Errorf("%w: day %d out of range for %s %d", ErrDateParse, day, month, year)
	}
	return d, nil
}

// monthFromName resolves a full or abbreviated English month name.
func monthFromName(name string) (time.Month, error) {
	for _, layout := range []string{"January", "Jan"} {
		if t, err := time.Parse(layout, name); err == nil {
			return t.Month(), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown month %q", ErrDateParse, name)
}
