package calendar

import (
	"time"

	ics "github.com/arran4/golang-ical"

	"github.com/pfrederiksen/talk-events/internal/event"
)

// ProductID identifies generated calendars.
const ProductID = "-//talk-events//talk-events//EN"

// icalFloatingFormat is the RFC 5545 local (floating) date-time form, used
// when no timezone could be resolved.
const icalFloatingFormat = "20060102T150405"

// Generate serializes the full event set to iCalendar text. With floating
// set, start/end times are written without a timezone designator (degraded
// mode for unresolvable timezones); otherwise they are written as absolute
// UTC instants.
func Generate(events []*event.Event, floating bool) string {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(ProductID)
	cal.SetCalscale("GREGORIAN")

	now := time.Now()
	for _, evt := range events {
		e := cal.AddEvent(evt.ID + "@talk-events")
		e.SetDtStampTime(now)
		e.SetSummary(evt.Title)
		e.SetDescription(evt.Description())
		if evt.Venue != "" {
			e.SetLocation(evt.Venue)
		}
		if evt.Link != "" {
			e.SetURL(evt.Link)
		}

		if floating {
			e.SetProperty(ics.ComponentPropertyDtStart, evt.Start.Format(icalFloatingFormat))
			e.SetProperty(ics.ComponentPropertyDtEnd, evt.End.Format(icalFloatingFormat))
		} else {
			e.SetStartAt(evt.Start)
			e.SetEndAt(evt.End)
		}
	}

	return cal.Serialize()
}
