package table

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/pfrederiksen/talk-events/internal/event"
	"github.com/pfrederiksen/talk-events/internal/parse"
)

// PlaceholderTitle is used for data rows whose title cell is empty.
const PlaceholderTitle = "Untitled Event"

// Skip records one row that could not be turned into an event. Skips are
// diagnostics only; later rows never depend on them.
type Skip struct {
	Row    int    `json:"row"`
	Reason string `json:"reason"`
}

// Result holds the outcome of one extraction pass.
type Result struct {
	Events []*event.Event
	Skips  []Skip
}

// Extractor walks the event table and produces events. loc may be nil for
// floating (timezone-less) timestamps.
type Extractor struct {
	loc      *time.Location
	duration time.Duration
}

// New creates an Extractor with the given default timezone and
// single-event duration.
func New(loc *time.Location, defaultDuration time.Duration) *Extractor {
	return &Extractor{loc: loc, duration: defaultDuration}
}

// Extract parses the HTML document and processes the second table on the
// page, one row at a time. Per-row parse failures are recorded and skipped;
// only the absence of the expected table is an error.
func (x *Extractor) Extract(r io.Reader) (*Result, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	tbl := doc.Find("table").Eq(1)
	if tbl.Length() == 0 {
		return nil, fmt.Errorf("could not find the expected table with event data")
	}

	result := &Result{}
	ctx := parse.Context{Year: time.Now().Year()}

	tbl.Find("tr").Each(func(i int, row *goquery.Selection) {
		x.processRow(i, row, &ctx, result)
	})

	return result, nil
}

// processRow classifies one table row and, for data rows, extracts an event.
func (x *Extractor) processRow(i int, row *goquery.Selection, ctx *parse.Context, result *Result) {
	cells := row.Find("td")
	if cells.Length() == 0 {
		return
	}

	link := row.Find("a[href]").First()

	// Heading rows carry emphasized month/year text and no hyperlink.
	var headings []string
	row.Find("strong").Each(func(_ int, s *goquery.Selection) {
		if text := strings.TrimSpace(s.Text()); text != "" {
			headings = append(headings, text)
		}
	})
	if len(headings) > 0 && link.Length() == 0 {
		for _, text := range headings {
			ctx.Observe(text)
		}
		return
	}

	fragments := textFragments(cells.Eq(0))
	if len(fragments) == 0 {
		return
	}
	if !parse.ContainsDigit(strings.Join(fragments, " ")) {
		return
	}

	dateToken, dateIndex := fragments[0], 0
	for idx, fragment := range fragments {
		if parse.ContainsDigit(fragment) {
			dateToken, dateIndex = fragment, idx
			break
		}
	}

	day, err := parse.Date(dateToken, *ctx)
	if err != nil {
		result.Skips = append(result.Skips, Skip{Row: i, Reason: fmt.Sprintf("date parse failed for %q: %v", dateToken, err)})
		return
	}

	timeText := ""
	trailing := fragments[dateIndex+1:]
	for _, fragment := range trailing {
		if parse.LooksLikeTimeRange(fragment) {
			timeText = fragment
			break
		}
	}
	if timeText == "" {
		for _, fragment := range trailing {
			if parse.ContainsDigit(fragment) {
				timeText = fragment
				break
			}
		}
	}
	if timeText == "" {
		result.Skips = append(result.Skips, Skip{Row: i, Reason: fmt.Sprintf("missing time range for date %q", dateToken)})
		return
	}

	start, end, err := parse.TimeRange(timeText, day, x.loc, x.duration)
	if err != nil {
		result.Skips = append(result.Skips, Skip{Row: i, Reason: fmt.Sprintf("time parse failed for %q: %v", timeText, err)})
		return
	}

	title := cellText(cells, 2)
	if title == "" {
		title = PlaceholderTitle
	}
	speaker := cellText(cells, 4)
	venue := cellText(cells, 6)
	if cells.Length() <= 6 {
		venue = cellText(cells, cells.Length()-1)
	}
	href, _ := link.Attr("href")

	result.Events = append(result.Events, event.New(title, start, end, speaker, venue, href))
}

// cellText returns the whitespace-normalized text of the idx-th cell, or ""
// when the cell does not exist.
func cellText(cells *goquery.Selection, idx int) string {
	if idx < 0 || idx >= cells.Length() {
		return ""
	}
	return strings.Join(textFragments(cells.Eq(idx)), " ")
}

// textFragments collects the non-empty text nodes under a selection, each
// with its whitespace collapsed. Element boundaries (<br>, nested spans) keep
// fragments separate, which is what lets the date and time parts of a cell
// be told apart.
func textFragments(sel *goquery.Selection) []string {
	var out []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			if s := strings.Join(strings.Fields(n.Data), " "); s != "" {
				out = append(out, s)
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range sel.Nodes {
		walk(n)
	}
	return out
}
