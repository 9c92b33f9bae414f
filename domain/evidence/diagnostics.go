package evidence

import (
	"sync"

	"denoise/domain/core"
)

// DiagnosticKind classifies a numeric anomaly observed during scoring.
type DiagnosticKind string

const (
	// DiagLambdaOutOfRange: a computed lambda fell outside [0,1], which is
	// impossible under a valid model.
	DiagLambdaOutOfRange DiagnosticKind = "lambda_out_of_range"
	// DiagLambdaUnderflow: lambda underflowed to exactly zero.
	DiagLambdaUnderflow DiagnosticKind = "lambda_underflow"
	// DiagSelfUnderflow: the self-transition product underflowed to zero.
	DiagSelfUnderflow DiagnosticKind = "self_underflow"
	// DiagDegenerateReads: a family carried no or negative reads.
	DiagDegenerateReads DiagnosticKind = "degenerate_read_count"
)

// Diagnostic is a structured, inspectable anomaly event. Anomalies are
// non-fatal: computation continues with the anomalous value, and tests can
// assert on the recorded events instead of console output.
type Diagnostic struct {
	ID         core.ID        `json:"id"`
	Kind       DiagnosticKind `json:"kind"`
	Message    string         `json:"message"`
	Value      float64        `json:"value"`
	ObservedAt core.Timestamp `json:"observed_at"`
}

// Collector accumulates diagnostics. A nil *Collector is valid and discards
// every event, so callers that do not care can pass nil. Record is safe for
// concurrent use.
type Collector struct {
	mu     sync.Mutex
	events []Diagnostic
}

// NewCollector creates an empty diagnostics collector.
func NewCollector() *Collector {
	return &Collector{}
}

// Record appends an anomaly event.
func (c *Collector) Record(kind DiagnosticKind, message string, value float64) {
	if c == nil {
		return
	}
	d := Diagnostic{
		ID:         core.NewID(),
		Kind:       kind,
		Message:    message,
		Value:      value,
		ObservedAt: core.Now(),
	}
	c.mu.Lock()
	c.events = append(c.events, d)
	c.mu.Unlock()
}

// Events returns a copy of the recorded diagnostics in observation order.
func (c *Collector) Events() []Diagnostic {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Diagnostic, len(c.events))
	copy(out, c.events)
	return out
}

// Count returns the number of events of the given kind.
func (c *Collector) Count(kind DiagnosticKind) int {
	if c == nil {
		return 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, d := range c.events {
		if d.Kind == kind {
			n++
		}
	}
	return n
}
