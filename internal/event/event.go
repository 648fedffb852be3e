package event

import (
	"crypto/sha1"
	"fmt"
	"strings"
	"time"
)

// Event represents one talk extracted from the events table. Events are
// built once per successfully parsed row and never mutated afterwards.
type Event struct {
	ID      string    `json:"id"`
	Title   string    `json:"title"`
	Start   time.Time `json:"start"`
	End     time.Time `json:"end"`
	Speaker string    `json:"speaker,omitempty"`
	Venue   string    `json:"venue,omitempty"`
	Link    string    `json:"link,omitempty"`
}

// GenerateID creates a deterministic ID for an event based on stable fields
func GenerateID(title string, start time.Time) string {
	h := sha1.New()
	h.Write([]byte(strings.ToLower(strings.TrimSpace(title)) + "|" + start.Format(time.RFC3339)))
	return fmt.Sprintf("%x", h.Sum(nil))
}

// New creates a new Event with its ID populated
func New(title string, start, end time.Time, speaker, venue, link string) *Event {
	return &Event{
		ID:      GenerateID(title, start),
		Title:   title,
		Start:   start,
		End:     end,
		Speaker: speaker,
		Venue:   venue,
		Link:    link,
	}
}

// Duration returns the event's length.
func (e *Event) Duration() time.Duration {
	return e.End.Sub(e.Start)
}

// Description composes the calendar description text: one line each for
// speaker, venue, link and duration, in that order, skipping absent fields.
func (e *Event) Description() string {
	var lines []string
	if e.Speaker != "" {
		lines = append(lines, "Speaker: "+e.Speaker)
	}
	if e.Venue != "" {
		lines = append(lines, "Venue: "+e.Venue)
	}
	if e.Link != "" {
		lines = append(lines, "Link: "+e.Link)
	}
	lines = append(lines, "Duration: "+FormatDuration(e.Duration()))
	return strings.Join(lines, "\n")
}

// FormatDuration renders a duration as "2h", "1h 30m" or "45m". A zero
// duration still renders as "0m" so the description line is never empty.
func FormatDuration(d time.Duration) string {
	total := int(d.Minutes())
	hours, minutes := total/60, total%60

	var parts []string
	if hours != 0 {
		parts = append(parts, fmt.Sprintf("%dh", hours))
	}
	if minutes != 0 || len(parts) == 0 {
		parts = append(parts, fmt.Sprintf("%dm", minutes))
	}
	return strings.Join(parts, " ")
}
