// Package cli implements the command-line interface for talk-events.
//
// The cli package provides the Cobra-based CLI that reads a saved HTML copy
// of the talks page, runs the single extraction pass over its event table,
// writes the resulting iCalendar file, and reports the export count plus a
// bounded preview of skipped rows in text or JSON form.
package cli
