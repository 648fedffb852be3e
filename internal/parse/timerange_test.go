package parse

import (
	"errors"
	"testing"
	"time"
)

var testDay = time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)

func mustRange(t *testing.T, text string) (time.Time, time.Time) {
	t.Helper()
	start, end, err := TimeRange(text, testDay, time.UTC, time.Hour)
	if err != nil {
		t.Fatalf("TimeRange(%q) unexpected error: %v", text, err)
	}
	return start, end
}

func TestTimeRange(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantStart string
		wantEnd   string
	}{
		{
			name:      "24-hour range",
			text:      "14:00 - 15:30",
			wantStart: "2024-05-01T14:00",
			wantEnd:   "2024-05-01T15:30",
		},
		{
			name:      "Meridiem on end propagates to start",
			text:      "2 - 3pm",
			wantStart: "2024-05-01T14:00",
			wantEnd:   "2024-05-01T15:00",
		},
		{
			name:      "Meridiem on start propagates to end",
			text:      "2pm - 3",
			wantStart: "2024-05-01T14:00",
			wantEnd:   "2024-05-01T15:00",
		},
		{
			name:      "Wrap past midnight",
			text:      "11pm - 1",
			wantStart: "2024-05-01T23:00",
			wantEnd:   "2024-05-02T01:00",
		},
		{
			name:      "Wrap with explicit 24-hour times",
			text:      "23:00 - 0:30",
			wantStart: "2024-05-01T23:00",
			wantEnd:   "2024-05-02T00:30",
		},
		{
			name:      "Single time gets default duration",
			text:      "14:00",
			wantStart: "2024-05-01T14:00",
			wantEnd:   "2024-05-01T15:00",
		},
		{
			name:      "Single 12-hour time",
			text:      "2pm",
			wantStart: "2024-05-01T14:00",
			wantEnd:   "2024-05-01T15:00",
		},
		{
			name:      "Dotted meridiem spelling",
			text:      "2 p.m. - 4 p.m.",
			wantStart: "2024-05-01T14:00",
			wantEnd:   "2024-05-01T16:00",
		},
		{
			name:      "Word connector",
			text:      "2pm to 4pm",
			wantStart: "2024-05-01T14:00",
			wantEnd:   "2024-05-01T16:00",
		},
		{
			name:      "German connector and unit label",
			text:      "19 bis 21 Uhr",
			wantStart: "2024-05-01T19:00",
			wantEnd:   "2024-05-01T21:00",
		},
		{
			name:      "En dash with timezone label",
			text:      "14:00 – 16:00 CET",
			wantStart: "2024-05-01T14:00",
			wantEnd:   "2024-05-01T16:00",
		},
		{
			name:      "Hours label stripped",
			text:      "14:00 - 16:00 hrs",
			wantStart: "2024-05-01T14:00",
			wantEnd:   "2024-05-01T16:00",
		},
		{
			name:      "Noon",
			text:      "noon - 2pm",
			wantStart: "2024-05-01T12:00",
			wantEnd:   "2024-05-01T14:00",
		},
		{
			name:      "Midnight wraps to next day",
			text:      "11pm - midnight",
			wantStart: "2024-05-01T23:00",
			wantEnd:   "2024-05-02T00:00",
		},
		{
			name:      "12am maps to zero hour",
			text:      "12am",
			wantStart: "2024-05-01T00:00",
			wantEnd:   "2024-05-01T01:00",
		},
		{
			name:      "12pm stays noon",
			text:      "12pm",
			wantStart: "2024-05-01T12:00",
			wantEnd:   "2024-05-01T13:00",
		},
		{
			name:      "French-style hour separator",
			text:      "14h30 - 16h00",
			wantStart: "2024-05-01T14:30",
			wantEnd:   "2024-05-01T16:00",
		},
		{
			name:      "Dot minute separator",
			text:      "19.30 - 21.00",
			wantStart: "2024-05-01T19:30",
			wantEnd:   "2024-05-01T21:00",
		},
		{
			name:      "Ambiguous bare range passes through as 24-hour",
			text:      "2 - 3",
			wantStart: "2024-05-01T02:00",
			wantEnd:   "2024-05-01T03:00",
		},
		{
			name:      "Malformed oversized hour wraps modulo 24",
			text:      "25:00",
			wantStart: "2024-05-01T01:00",
			wantEnd:   "2024-05-01T02:00",
		},
		{
			name:      "Equal endpoints roll the end to next day",
			text:      "14:00 - 14:00",
			wantStart: "2024-05-01T14:00",
			wantEnd:   "2024-05-02T14:00",
		},
	}

	const layout = "2006-01-02T15:04"

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := mustRange(t, tt.text)
			if got := start.Format(layout); got != tt.wantStart {
				t.Errorf("TimeRange(%q) start = %s, want %s", tt.text, got, tt.wantStart)
			}
			if got := end.Format(layout); got != tt.wantEnd {
				t.Errorf("TimeRange(%q) end = %s, want %s", tt.text, got, tt.wantEnd)
			}
			if !end.After(start) {
				t.Errorf("TimeRange(%q) end %v not after start %v", tt.text, end, start)
			}
		})
	}
}

func TestTimeRange_Errors(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		wantErr error
	}{
		{
			name:    "Empty text",
			text:    "   ",
			wantErr: ErrEmptyRange,
		},
		{
			name:    "Only noise tokens",
			text:    "CET hrs",
			wantErr: ErrEmptyRange,
		},
		{
			name:    "Only dashes",
			text:    " - – ",
			wantErr: ErrEmptyRange,
		},
		{
			name:    "Three parts",
			text:    "1pm - 2pm - 3pm",
			wantErr: ErrUnexpectedRange,
		},
		{
			name:    "No recognizable hour",
			text:    "after lunch - evening",
			wantErr: ErrFragmentParse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := TimeRange(tt.text, testDay, time.UTC, time.Hour)
			if err == nil {
				t.Fatalf("TimeRange(%q) expected error", tt.text)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("TimeRange(%q) error = %v, want %v", tt.text, err, tt.wantErr)
			}
		})
	}
}

func TestTimeRange_DefaultDuration(t *testing.T) {
	start, end, err := TimeRange("9:15", testDay, time.UTC, 45*time.Minute)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := end.Sub(start); got != 45*time.Minute {
		t.Errorf("duration = %v, want 45m", got)
	}
}

func TestTimeRange_Timezone(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Berlin")
	if err != nil {
		t.Skip("tzdata unavailable")
	}

	start, _, rerr := TimeRange("14:00 - 15:00", testDay, loc, time.Hour)
	if rerr != nil {
		t.Fatalf("unexpected error: %v", rerr)
	}
	if start.Location() != loc {
		t.Errorf("start location = %v, want %v", start.Location(), loc)
	}
	if start.Hour() != 14 {
		t.Errorf("start hour = %d, want 14", start.Hour())
	}
}

func TestTimeRange_FloatingMode(t *testing.T) {
	start, _, err := TimeRange("14:00", testDay, nil, time.Hour)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if start.Location() != time.UTC {
		t.Errorf("floating start location = %v, want UTC", start.Location())
	}
}
