// Package parse converts the messy date and time text found in the talks
// table into calendar dates and timestamp pairs.
//
// The source table mixes formats freely: "May 7 2024", "7 May", "07.05.",
// "2 - 3pm", "19 Uhr", "14:00 CET", "noon", and bare day numbers whose month
// comes from a preceding heading row. The package therefore works as a set
// of ordered fallback chains: each parser tries format families in a fixed
// priority order and returns the first success. Heading-row context (the
// running month and year) is carried in a Context value and acts as a
// fallback only; an explicit month in the row text always wins.
package parse
