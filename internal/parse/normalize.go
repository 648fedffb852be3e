package parse

import (
	"errors"
	"regexp"
	"strings"
)

// Per-row parse failures. All of these are recoverable: the caller skips the
// row and keeps going.
var (
	ErrDateParse       = errors.New("unparseable date")
	ErrEmptyRange      = errors.New("empty time range")
	ErrUnexpectedRange = errors.New("unexpected time range")
	ErrFragmentParse   = errors.New("unparseable time fragment")
)

var (
	meridiemPattern   = regexp.MustCompile(`(?i)(a\.?m\.?|p\.?m\.?)`)
	tzLabelPattern    = regexp.MustCompile(`(?i)\b(?:cet|cest|gmt|utc(?:[+-]\d{1,2})?|mez|mesz)\b`)
	connectorPattern  = regexp.MustCompile(`(?i)\b(?:to|bis)\b`)
	unitLabelPattern  = regexp.MustCompile(`(?i)\b(?:hrs?|hours?|uhr|o'clock|h)\b`)
	timeCorePattern   = regexp.MustCompile(`(\d{1,2})(?::(\d{2}))?`)
	weekdayPattern    = regexp.MustCompile(`(?i)\b(?:monday|tuesday|wednesday|thursday|friday|saturday|sunday)\b`)
	nbspCommaPattern  = regexp.MustCompile(`[\x{00a0},]`)
	headingSepPattern = regexp.MustCompile(`[\x{2013}\x{2014},/]`)
	yearPattern       = regexp.MustCompile(`\b(20\d{2})\b`)
	hourSepPattern    = regexp.MustCompile(`(?i)(\d)h(\d)`)
	dotMinutePattern  = regexp.MustCompile(`(\d)\.(\d)`)
	parenPattern      = regexp.MustCompile(`[()]`)
	dashPattern       = regexp.MustCompile(`[-\x{2013}\x{2014}]`)
	digitPattern      = regexp.MustCompile(`\d`)
)

// collapseSpace trims s and collapses all internal whitespace runs to a
// single space.
func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// sanitizeFragment strips the noise that accumulates around a single time
// fragment: dotted meridiem spellings, "14h30"/"19.30" separators, timezone
// labels, hour-unit labels, interpuncts and parentheses. The substitution
// order matters; later rules assume earlier noise is already gone.
func sanitizeFragment(fragment string) string {
	fragment = strings.ReplaceAll(fragment, "p.m.", "pm")
	fragment = strings.ReplaceAll(fragment, "a.m.", "am")
	fragment = hourSepPattern.ReplaceAllString(fragment, "$1:$2")
	fragment = dotMinutePattern.ReplaceAllString(fragment, "$1:$2")
	fragment = tzLabelPattern.ReplaceAllString(fragment, "")
	fragment = unitLabelPattern.ReplaceAllString(fragment, "")
	fragment = strings.ReplaceAll(fragment, "midday", "noon")
	fragment = strings.ReplaceAll(fragment, "·", " ")
	fragment = parenPattern.ReplaceAllString(fragment, " ")
	return collapseSpace(fragment)
}

// meridiemLabel returns "am", "pm", or "" for the first meridiem marker in
// text, accepting dotted and undotted spellings in any case.
func meridiemLabel(text string) string {
	match := meridiemPattern.FindString(text)
	if match == "" {
		return ""
	}
	if strings.Contains(strings.ToLower(match), "p") {
		return "pm"
	}
	return "am"
}

// LooksLikeTimeRange reports whether text is shaped like a time range: it
// carries a dash together with a digit, or an explicit "to"/"bis" connector.
func LooksLikeTimeRange(text string) bool {
	if dashPattern.MatchString(text) && digitPattern.MatchString(text) {
		return true
	}
	lowered := strings.ToLower(text)
	return strings.Contains(lowered, " to ") || strings.Contains(lowered, " bis ")
}

// ContainsDigit reports whether text contains at least one decimal digit.
func ContainsDigit(text string) bool {
	return digitPattern.MatchString(text)
}
