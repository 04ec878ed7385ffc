// README: Trip wire records. Both the app-layer (legacy) and database-layer (current) shapes decode into the same structs.
package trip

import (
	"encoding/json"
	"fmt"
)

// UnknownDate is the bucket for events whose start date cannot be resolved.
const UnknownDate = "Unknown"

// DurationRecord covers both duration shapes. The current schema splits date
// and time (startDate/startTime/endDate/endTime), the legacy schema carries
// free-form start/end strings such as "2025-11-03T10:00:00".
type DurationRecord struct {
	StartDate *string `json:"startDate,omitempty"`
	StartTime *string `json:"startTime,omitempty"`
	EndDate   *string `json:"endDate,omitempty"`
	EndTime   *string `json:"endTime,omitempty"`

	Start *string `json:"start,omitempty"`
	End   *string `json:"end,omitempty"`
}

// Coordinates is the legacy event location. json.Number keeps the caller's
// literal so "40.7128" renders exactly as sent.
type Coordinates struct {
	Latitude  json.Number `json:"latitude"`
	Longitude json.Number `json:"longitude"`
}

// EventRecord is a single itinerary entry in either schema.
type EventRecord struct {
	// Current schema.
	EventTitle       *string         `json:"event_title,omitempty"`
	EventDescription *string         `json:"event_description,omitempty"`
	EventLocation    *string         `json:"event_location,omitempty"`
	EventDuration    *DurationRecord `json:"event_duration,omitempty"`

	// Legacy schema.
	Title       *string         `json:"title,omitempty"`
	Description *string         `json:"description,omitempty"`
	Location    *Coordinates    `json:"location,omitempty"`
	Duration    *DurationRecord `json:"duration,omitempty"`
}

// Record is the trip object submitted for summarization.
type Record struct {
	// Current schema.
	TripTitle    *string         `json:"trip_title,omitempty"`
	UserID       *UserID         `json:"user_id,omitempty"`
	TripDuration *DurationRecord `json:"trip_duration,omitempty"`

	// Legacy schema.
	Name     *string         `json:"name,omitempty"`
	Owner    *string         `json:"owner,omitempty"`
	Users    []string        `json:"users,omitempty"`
	Duration *DurationRecord `json:"duration,omitempty"`

	// Shared key; element shape differs per schema.
	Events []EventRecord `json:"events,omitempty"`
}

// UserID accepts both numeric and string identifiers ("user_id": 7 or "7").
type UserID string

func (u *UserID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*u = UserID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("user_id must be a string or a number: %w", err)
	}
	*u = UserID(n.String())
	return nil
}

// Itinerary is the canonical, schema-independent view of a Record.
type Itinerary struct {
	Title        string
	StartDate    string
	EndDate      string
	Owner        string
	Participants []string
	Events       []Event
}

// Event is the canonical view of an EventRecord.
// Date is the resolved start date, or UnknownDate.
type Event struct {
	Title       string
	Description string
	Location    string
	TimeRange   string
	Date        string
}
