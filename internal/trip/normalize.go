package trip

import (
	"strings"
	"time"
)

// Field precedence. Each list is ordered most preferred first: the current
// schema name, then the legacy name.
var (
	tripTitleFields = []func(Record) *string{
		func(r Record) *string { return r.TripTitle },
		func(r Record) *string { return r.Name },
	}
	tripStartFields = []func(Record) *string{
		func(r Record) *string { return durationField(r.TripDuration, func(d *DurationRecord) *string { return d.StartDate }) },
		func(r Record) *string { return durationField(r.Duration, func(d *DurationRecord) *string { return d.Start }) },
	}
	tripEndFields = []func(Record) *string{
		func(r Record) *string { return durationField(r.TripDuration, func(d *DurationRecord) *string { return d.EndDate }) },
		func(r Record) *string { return durationField(r.Duration, func(d *DurationRecord) *string { return d.End }) },
	}
	eventTitleFields = []func(EventRecord) *string{
		func(e EventRecord) *string { return e.EventTitle },
		func(e EventRecord) *string { return e.Title },
	}
	eventDescriptionFields = []func(EventRecord) *string{
		func(e EventRecord) *string { return e.EventDescription },
		func(e EventRecord) *string { return e.Description },
	}
)

// Normalize maps either schema into an Itinerary. It never fails; missing
// fields resolve to empty values or placeholders.
func Normalize(r Record) Itinerary {
	it := Itinerary{
		Title:        resolve(r, tripTitleFields),
		StartDate:    resolve(r, tripStartFields),
		EndDate:      resolve(r, tripEndFields),
		Owner:        resolveOwner(r),
		Participants: resolveParticipants(r.Users),
		Events:       make([]Event, 0, len(r.Events)),
	}
	for _, e := range r.Events {
		it.Events = append(it.Events, normalizeEvent(e))
	}
	return it
}

func normalizeEvent(e EventRecord) Event {
	return Event{
		Title:       resolve(e, eventTitleFields),
		Description: resolve(e, eventDescriptionFields),
		Location:    resolveLocation(e),
		TimeRange:   resolveTimeRange(e),
		Date:        resolveEventDate(e),
	}
}

// resolveOwner prefers the current user identifier ("User 7"), then the legacy owner name.
func resolveOwner(r Record) string {
	if r.UserID != nil {
		if id := strings.TrimSpace(string(*r.UserID)); id != "" {
			return "User " + id
		}
	}
	if owner := value(r.Owner); owner != "" {
		return owner
	}
	return "N/A"
}

func resolveParticipants(users []string) []string {
	out := make([]string, 0, len(users))
	for _, u := range users {
		if u = strings.TrimSpace(u); u != "" {
			out = append(out, u)
		}
	}
	return out
}

// resolveLocation returns the plain current-schema location, or the legacy
// coordinate pair as "(lat, lon)". Empty when neither is usable.
func resolveLocation(e EventRecord) string {
	if loc := value(e.EventLocation); loc != "" {
		return loc
	}
	if e.Location != nil && e.Location.Latitude != "" && e.Location.Longitude != "" {
		return "(" + e.Location.Latitude.String() + ", " + e.Location.Longitude.String() + ")"
	}
	return ""
}

// resolveTimeRange tries, in order: structured times, structured dates,
// legacy free-form strings.
func resolveTimeRange(e EventRecord) string {
	if d := e.EventDuration; d != nil {
		if start, end := value(d.StartTime), value(d.EndTime); start != "" && end != "" {
			return start + " - " + end
		}
		if start, end := value(d.StartDate), value(d.EndDate); start != "" && end != "" {
			return start + " - " + end
		}
	}
	if d := e.Duration; d != nil {
		start, end := value(d.Start), value(d.End)
		switch {
		case start != "" && end != "":
			return start + " - " + end
		case start != "":
			return start
		case end != "":
			return end
		}
	}
	return ""
}

// resolveEventDate is the grouping key: the structured start date, else the
// date part of the legacy start string, else UnknownDate.
func resolveEventDate(e EventRecord) string {
	if e.EventDuration != nil {
		if d := value(e.EventDuration.StartDate); d != "" {
			return d
		}
	}
	if e.Duration != nil {
		if d := datePart(value(e.Duration.Start)); d != "" {
			return d
		}
	}
	return UnknownDate
}

// datePart strips the time from "2025-11-03T10:00:00" or "2025-11-03 10:00".
// Any other free-form start is kept whole so distinct days stay distinct.
func datePart(s string) string {
	if i := strings.IndexAny(s, "T "); i > 0 {
		if _, err := time.Parse(time.DateOnly, s[:i]); err == nil {
			return s[:i]
		}
	}
	return s
}

func resolve[T any](rec T, fields []func(T) *string) string {
	for _, f := range fields {
		if v := value(f(rec)); v != "" {
			return v
		}
	}
	return ""
}

func durationField(d *DurationRecord, pick func(*DurationRecord) *string) *string {
	if d == nil {
		return nil
	}
	return pick(d)
}

func value(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}
