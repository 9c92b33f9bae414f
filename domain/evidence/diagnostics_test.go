package evidence

import (
	"encoding/json"
	"testing"
	"time"

	"denoise/domain/core"
)

func TestDiagnostic_JSONRoundTrip(t *testing.T) {
	observed := core.NewTimestamp(time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC))
	d := Diagnostic{
		ID:         core.NewID(),
		Kind:       DiagLambdaOutOfRange,
		Message:    "lambda 1.8 outside [0,1] after 1 substitutions",
		Value:      1.8,
		ObservedAt: observed,
	}

	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var back Diagnostic
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	if back.ID != d.ID || back.Kind != d.Kind || back.Message != d.Message || back.Value != d.Value {
		t.Errorf("round trip changed the event: %+v vs %+v", back, d)
	}
	if !back.ObservedAt.Time().Equal(observed.Time()) {
		t.Errorf("round trip changed the timestamp: %v vs %v", back.ObservedAt.Time(), observed.Time())
	}
}

func TestTimestamp_Ordering(t *testing.T) {
	earlier := core.NewTimestamp(time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC))
	later := core.NewTimestamp(time.Date(2026, 8, 30, 12, 0, 1, 0, time.UTC))

	if !earlier.Before(later) {
		t.Error("earlier.Before(later) = false")
	}
	if later.Before(earlier) {
		t.Error("later.Before(earlier) = true")
	}

	// Recorded diagnostics carry non-decreasing observation times.
	c := NewCollector()
	c.Record(DiagSelfUnderflow, "first", 0)
	c.Record(DiagSelfUnderflow, "second", 0)
	events := c.Events()
	if events[1].ObservedAt.Before(events[0].ObservedAt) {
		t.Error("second event observed before the first")
	}
}
