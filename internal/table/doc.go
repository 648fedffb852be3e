// Package table classifies and extracts rows from the talks table.
//
// Rows come in three kinds: heading rows (emphasized month/year text with no
// hyperlink) that update the running parse context, data rows that yield one
// event each, and malformed rows that are skipped with a recorded reason.
// Rows are processed strictly in document order because data rows depend on
// the month/year state set by earlier heading rows.
package table
