package parse

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// TimeRange parses a raw time-range fragment into a start/end timestamp
// pair on the given day. A single time denotes a talk's start, so its end
// is start plus defaultDuration. For a two-part range a meridiem marker on
// either side serves as the default for the side lacking one ("2 - 3pm"
// reads both sides as afternoon); with no marker anywhere, hours pass
// through as already-24-hour text. A nil loc yields floating timestamps on
// the UTC calendar.
//
// An end not strictly after its start is taken to cross midnight and moved
// to the next day; callers never see end <= start.
func TimeRange(text string, day time.Time, loc *time.Location, defaultDuration time.Duration) (time.Time, time.Time, error) {
	normalized := connectorPattern.ReplaceAllString(text, "-")
	normalized = strings.NewReplacer("–", "-", "—", "-").Replace(normalized)
	normalized = tzLabelPattern.ReplaceAllString(normalized, "")
	normalized = unitLabelPattern.ReplaceAllString(normalized, "")
	normalized = strings.Trim(collapseSpace(normalized), " -")

	if normalized == "" {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: %q", ErrEmptyRange, text)
	}

	var parts []string
	for _, part := range strings.Split(normalized, "-") {
		if part = strings.TrimSpace(part); part != "" {
			parts = append(parts, part)
		}
	}

	switch len(parts) {
	case 1:
		hint := meridiemLabel(parts[0])
		hour, minute, _, err := parseFragment(parts[0], hint, hint != "")
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		start := assemble(day, hour, minute, loc)
		return start, start.Add(defaultDuration), nil

	case 2:
		startHint := meridiemLabel(parts[0])
		endHint := meridiemLabel(parts[1])
		startDefault := startHint
		if startDefault == "" {
			startDefault = endHint
		}
		endDefault := endHint
		if endDefault == "" {
			endDefault = startHint
		}
		prefer12 := startHint != "" || endHint != ""

		startHour, startMinute, startInferred, err := parseFragment(parts[0], startDefault, prefer12)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		endHour, endMinute, endInferred, err := parseFragment(parts[1], endDefault, prefer12)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}

		start := assemble(day, startHour, startMinute, loc)
		end := assemble(day, endHour, endMinute, loc)

		// An inferred meridiem is only a guess; when it forces the range
		// to wrap past midnight, discard the guess and let the numeral
		// speak for itself ("11pm - 1" ends at 01:00, not 13:00). A wrap
		// is kept only when the text itself demands it.
		if !end.After(start) && endInferred {
			endHour, endMinute, _, _ = parseFragment(parts[1], "", prefer12)
			end = assemble(day, endHour, endMinute, loc)
		}
		if !end.After(start) && startInferred {
			startHour, startMinute, _, _ = parseFragment(parts[0], "", prefer12)
			start = assemble(day, startHour, startMinute, loc)
		}

		if !end.After(start) {
			end = end.AddDate(0, 0, 1)
		}
		return start, end, nil
	}

	return time.Time{}, time.Time{}, fmt.Errorf("%w: %q splits into %d parts", ErrUnexpectedRange, text, len(parts))
}

// parseFragment resolves one time fragment to a 24-hour (hour, minute)
// pair. "noon" and "midnight" are special-cased before the generic numeric
// pattern. A meridiem attached to the fragment itself is authoritative;
// defaultMeridiem only applies when prefer12 is set and the hour could
// plausibly be 12-hour text. The returned inferred flag reports whether the
// external default was the deciding factor.
func parseFragment(fragment, defaultMeridiem string, prefer12 bool) (hour, minute int, inferred bool, err error) {
	sanitized := sanitizeFragment(fragment)
	if sanitized == "" {
		return 0, 0, false, fmt.Errorf("%w: empty fragment %q", ErrFragmentParse, fragment)
	}

	switch strings.ToLower(sanitized) {
	case "noon":
		return 12, 0, false, nil
	case "midnight":
		return 0, 0, false, nil
	}

	match := timeCorePattern.FindStringSubmatch(sanitized)
	if match == nil {
		return 0, 0, false, fmt.Errorf("%w: %q", ErrFragmentParse, fragment)
	}

	hour, _ = strconv.Atoi(match[1])
	if match[2] != "" {
		minute, _ = strconv.Atoi(match[2])
	}

	meridiem := meridiemLabel(sanitized)
	if meridiem != "" {
		prefer12 = true
	}
	if meridiem == "" && prefer12 && defaultMeridiem != "" && hour <= 12 {
		meridiem = defaultMeridiem
		inferred = true
	}

	return to24Hour(hour, meridiem), minute, inferred, nil
}

// to24Hour applies the 12-to-24 conversion policy. The leading mod guards
// against malformed "25:00"-style text; without a meridiem the numeral is
// already 24-hour and passes through.
func to24Hour(hour int, meridiem string) int {
	hour %= 24
	switch meridiem {
	case "am":
		if hour == 12 {
			return 0
		}
		return hour
	case "pm":
		if hour == 12 {
			return 12
		}
		return hour + 12
	}
	return hour
}

// assemble combines a resolved wall-clock time with the event date. nil loc
// is the degraded floating mode used when the configured timezone cannot be
// resolved.
func assemble(day time.Time, hour, minute int, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return time.Date(day.Year(), day.Month(), day.Day(), hour%24, minute, 0, 0, loc)
}
