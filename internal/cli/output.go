package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/pfrederiksen/talk-events/internal/table"
)

// skipPreviewLimit bounds how many skip reasons the text output shows.
const skipPreviewLimit = 5

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// OutputResult contains data to be output
type OutputResult struct {
	ExportedAt time.Time    `json:"exported_at"`
	EventCount int          `json:"event_count"`
	Output     string       `json:"output"`
	Skips      []table.Skip `json:"skips,omitempty"`
}

// WriteOutput writes the result in the specified format
func WriteOutput(w io.Writer, result *OutputResult, format OutputFormat) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, result)
	case FormatText:
		return writeText(w, result)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// writeJSON outputs results as JSON
func writeJSON(w io.Writer, result *OutputResult) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

// writeText outputs results as human-readable text: the export count plus a
// truncated preview of skip reasons.
func writeText(w io.Writer, result *OutputResult) error {
	fmt.Fprintf(w, "Exported %d events to %s\n", result.EventCount, result.Output)

	if len(result.Skips) == 0 {
		return nil
	}

	reasons := make([]string, 0, skipPreviewLimit)
	for _, skip := range result.Skips {
		if len(reasons) == skipPreviewLimit {
			break
		}
		reasons = append(reasons, skip.Reason)
	}

	more := ""
	if overflow := len(result.Skips) - skipPreviewLimit; overflow > 0 {
		more = fmt.Sprintf(" and %d more", overflow)
	}
	fmt.Fprintf(w, "Skipped %d rows: %s%s\n", len(result.Skips), strings.Join(reasons, "; "), more)

	return nil
}
