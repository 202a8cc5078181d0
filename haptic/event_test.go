package haptic

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestEventTypeStrings(t *testing.T) {
	cases := map[EventType]string{
		EventHeavy:  "heavy",
		EventMedium: "medium",
		EventLight:  "light",
		EventSoft:   "soft",
	}

	for typ, want := range cases {
		if got := typ.String(); got != want {
			t.Fatalf("%d.String() = %q, want %q", int(typ), got, want)
		}
	}
}

func TestEventTypeJSONRoundTrip(t *testing.T) {
	for _, typ := range []EventType{EventHeavy, EventMedium, EventLight, EventSoft} {
		data, err := json.Marshal(typ)
		if err != nil {
			t.Fatalf("marshal %v: %v", typ, err)
		}

		var back EventType
		if err := json.Unmarshal(data, &back); err != nil {
			t.Fatalf("unmarshal %s: %v", data, err)
		}

		if back != typ {
			t.Fatalf("round trip changed %v to %v", typ, back)
		}
	}
}

func TestEventTypeJSONInvalid(t *testing.T) {
	if _, err := json.Marshal(EventType(42)); err == nil {
		t.Fatalf("expected marshal error for invalid type")
	}

	var typ EventType
	if err := json.Unmarshal([]byte(`"massive"`), &typ); err == nil {
		t.Fatalf("expected unmarshal error for unknown name")
	}
}

func TestStreamJSONShape(t *testing.T) {
	stream := &Stream{
		Metadata: Metadata{
			Version:     SchemaVersion,
			FPS:         60,
			Duration:    1.5,
			TotalFrames: 90,
		},
		Events: []Event{
			{Time: 0.25, Intensity: 0.8, Sharpness: 0.4, Type: EventMedium},
		},
	}

	data, err := json.Marshal(stream)
	if err != nil {
		t.Fatalf("marshal stream: %v", err)
	}

	s := string(data)
	for _, key := range []string{`"metadata"`, `"hapticEvents"`, `"version":3`, `"fps":60`, `"totalFrames":90`, `"type":"medium"`} {
		if !strings.Contains(s, key) {
			t.Fatalf("serialized stream missing %s: %s", key, s)
		}
	}

	var back Stream
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal stream: %v", err)
	}

	if back.Metadata != stream.Metadata {
		t.Fatalf("metadata round trip mismatch: %+v", back.Metadata)
	}

	if len(back.Events) != 1 || back.Events[0] != stream.Events[0] {
		t.Fatalf("events round trip mismatch: %+v", back.Events)
	}
}
