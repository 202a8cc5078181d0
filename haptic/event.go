package haptic

import (
	"encoding/json"
	"fmt"
)

// SchemaVersion is the persisted artifact schema revision.
const SchemaVersion = 3

// EventType is the categorical weight of a haptic event.
type EventType int

const (
	EventSoft EventType = iota
	EventLight
	EventMedium
	EventHeavy
)

// String returns the canonical lower-case name of the event type.
func (t EventType) String() string {
	switch t {
	case EventHeavy:
		return "heavy"
	case EventMedium:
		return "medium"
	case EventLight:
		return "light"
	case EventSoft:
		return "soft"
	}

	return "unknown"
}

// MarshalJSON encodes the event type as its name.
func (t EventType) MarshalJSON() ([]byte, error) {
	s := t.String()
	if s == "unknown" {
		return nil, fmt.Errorf("invalid event type: %d", int(t))
	}

	return json.Marshal(s)
}

// UnmarshalJSON decodes an event type from its name.
func (t *EventType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	switch s {
	case "heavy":
		*t = EventHeavy
	case "medium":
		*t = EventMedium
	case "light":
		*t = EventLight
	case "soft":
		*t = EventSoft
	default:
		return fmt.Errorf("invalid event type: %q", s)
	}

	return nil
}

// Event is a single haptic feedback event.
//
// Time is in seconds from stream start and is non-decreasing across a
// stream. Intensity and Sharpness are clamped into [0, 1].
type Event struct {
	Time      float64   `json:"time"`
	Intensity float64   `json:"intensity"`
	Sharpness float64   `json:"sharpness"`
	Type      EventType `json:"type"`
}

// Metadata describes a haptic stream.
type Metadata struct {
	Version     int     `json:"version"`
	FPS         int     `json:"fps"`
	Duration    float64 `json:"duration"`
	TotalFrames int     `json:"totalFrames"`
}

// Stream is the synthesized haptic event stream, the sole persisted
// artifact of the pipeline.
//
// The JSON event list key is "hapticEvents".
type Stream struct {
	Metadata Metadata `json:"metadata"`
	Events   []Event  `json:"hapticEvents"`
}
