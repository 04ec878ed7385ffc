// README: Trip summary prompt builder. Normalizes the trip, groups events by day and fills the instruction template.
package prompt

import (
	"fmt"
	"sort"
	"strings"

	"tripsummary/internal/trip"
)

// NoEventsText replaces the itinerary when a trip has no events.
const NoEventsText = "No specific events planned yet"

const summaryTemplate = `Write a travel summary of the following trip as a single continuous narrative.

Title: %s
Dates: %s
Owner: %s
Participants: %s

Events by day:
%s

Requirements:
%s`

// DayGroup holds the events that share one resolved start date, in input order.
type DayGroup struct {
	Date   string
	Events []trip.Event
}

// Build turns a trip record into the prompt sent to the generation service.
// It never fails.
func Build(rec trip.Record) string {
	return Render(trip.Normalize(rec))
}

// Render fills the template from an already normalized itinerary.
func Render(it trip.Itinerary) string {
	groups := GroupByDay(it.Events)
	return fmt.Sprintf(summaryTemplate,
		it.Title,
		dateRange(it.StartDate, it.EndDate),
		it.Owner,
		participants(it.Participants),
		renderGroups(groups),
		requirements(len(it.Events)),
	)
}

// GroupByDay buckets events by Date. Groups are sorted by ascending date
// string with trip.UnknownDate last; every input event lands in exactly one group.
func GroupByDay(events []trip.Event) []DayGroup {
	index := make(map[string]int)
	var groups []DayGroup
	for _, ev := range events {
		i, ok := index[ev.Date]
		if !ok {
			i = len(groups)
			index[ev.Date] = i
			groups = append(groups, DayGroup{Date: ev.Date})
		}
		groups[i].Events = append(groups[i].Events, ev)
	}
	sort.SliceStable(groups, func(a, b int) bool {
		aUnknown, bUnknown := groups[a].Date == trip.UnknownDate, groups[b].Date == trip.UnknownDate
		if aUnknown != bUnknown {
			return bUnknown
		}
		return groups[a].Date < groups[b].Date
	})
	return groups
}

// renderGroups numbers days 1..n over the sorted groups. A day with several
// events gets a header and indented bullets, a single-event day one inline bullet.
func renderGroups(groups []DayGroup) string {
	if len(groups) == 0 {
		return NoEventsText
	}
	lines := make([]string, 0, len(groups))
	for i, g := range groups {
		day := i + 1
		if len(g.Events) == 1 {
			lines = append(lines, fmt.Sprintf("- Day %d (%s): %s", day, dayLabel(g.Date), eventLine(g.Events[0])))
			continue
		}
		lines = append(lines, fmt.Sprintf("Day %d (%s):", day, dayLabel(g.Date)))
		for _, ev := range g.Events {
			lines = append(lines, "  - "+eventLine(ev))
		}
	}
	return strings.Join(lines, "\n")
}

func eventLine(ev trip.Event) string {
	var b strings.Builder
	title := ev.Title
	if title == "" {
		title = "Untitled event"
	}
	b.WriteString(title)
	if ev.TimeRange != "" {
		b.WriteString(" (" + ev.TimeRange + ")")
	}
	if ev.Location != "" {
		b.WriteString(" at " + ev.Location)
	}
	if ev.Description != "" {
		b.WriteString(" - " + ev.Description)
	}
	return b.String()
}

// requirements lists the writing rules. The event count is stated twice,
// once as a rule and once as a final self-check; both are dropped for empty trips.
func requirements(count int) string {
	rules := []string{
		"Write one continuous narrative in plain prose, without headings or lists.",
		mustInclude(count),
		"Do not open with an introductory sentence that previews the trip. Start directly with the first event.",
		"Do not end with a closing or summary paragraph. Stop after the last event.",
		`Refer to time only with day-relative words such as "in the morning", "that afternoon" or "the next day". Never mention clock times.`,
		"Keep strict chronological order: follow the days exactly as grouped above and never move an event to another day.",
		selfCheck(count),
	}
	var b strings.Builder
	for _, r := range rules {
		if r == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString("- " + r)
	}
	return b.String()
}

func mustInclude(count int) string {
	if count == 0 {
		return ""
	}
	return fmt.Sprintf("You must include all %d events listed above, without exception.", count)
}

func selfCheck(count int) string {
	if count == 0 {
		return ""
	}
	return fmt.Sprintf("Before you finish, verify that every one of the %d events appears in your narrative.", count)
}

func dateRange(start, end string) string {
	if start == "" && end == "" {
		return "N/A"
	}
	return start + " to " + end
}

func participants(names []string) string {
	if len(names) == 0 {
		return "N/A"
	}
	return strings.Join(names, ", ")
}

func dayLabel(date string) string {
	if date == trip.UnknownDate {
		return "date unknown"
	}
	return date
}
