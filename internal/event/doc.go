// Package event provides the talk event record and its calendar-facing
// formatting.
//
// Each event is assigned a deterministic SHA1-based ID generated from its
// title and start time, so re-importing a regenerated calendar file updates
// entries instead of duplicating them. The description text is assembled
// from the optional speaker/venue/link fields plus the computed duration,
// in a fixed line order.
package event
