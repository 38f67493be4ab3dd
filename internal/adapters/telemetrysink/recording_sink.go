package telemetrysink

import (
	"context"
	"errors"
	"fmt"
	"route-refresh-service/internal/telemetry"
	"sync"
)

// RecordingSink accepts sealed reroute events and holds them in memory.
// It is the hand-off boundary only; the upload mechanism that drains
// emitted events lives outside this service.
type RecordingSink struct {
	mu     sync.Mutex
	events []*telemetry.RerouteEvent
}

func NewRecordingSink() *RecordingSink {
	return &RecordingSink{}
}

// Accept a sealed reroute event for delivery. Unsealed events are
// rejected: an event still open for mutation must not cross the
// hand-off boundary.
func (s *RecordingSink) SendReroute(ctx context.Context, event *telemetry.RerouteEvent) error {
	if event == nil {
		return errors.New("telemetry sink: event is nil")
	}
	if !event.Sealed() {
		return fmt.Errorf("telemetry sink: event %s is not sealed", event.EventID())
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	return nil
}

// Events returns the recorded events in arrival order.
func (s *RecordingSink) Events() []*telemetry.RerouteEvent {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*telemetry.RerouteEvent, len(s.events))
	copy(out, s.events)
	return out
}
