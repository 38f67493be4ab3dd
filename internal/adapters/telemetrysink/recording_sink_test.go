package telemetrysink

import (
	"context"
	"route-refresh-service/internal/domain"
	"route-refresh-service/internal/telemetry"
	"testing"
)

func TestRecordingSinkAcceptsSealedEvents(t *testing.T) {
	sink := NewRecordingSink()

	event := telemetry.NewRerouteEvent(domain.SessionState{SessionID: "s-1"})
	if err := event.AttachRoute("g", 60, 100); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	event.Seal()

	if err := sink.SendReroute(context.Background(), event); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	events := sink.Events()
	if len(events) != 1 || events[0].EventID() != event.EventID() {
		t.Fatalf("events = %v", events)
	}
}

func TestRecordingSinkRejectsUnsealedEvent(t *testing.T) {
	sink := NewRecordingSink()

	event := telemetry.NewRerouteEvent(domain.SessionState{SessionID: "s-1"})
	if err := sink.SendReroute(context.Background(), event); err == nil {
		t.Fatal("expected error for unsealed event")
	}

	if len(sink.Events()) != 0 {
		t.Fatal("unsealed event was recorded")
	}
}

func TestRecordingSinkRejectsNilEvent(t *testing.T) {
	sink := NewRecordingSink()

	if err := sink.SendReroute(context.Background(), nil); err == nil {
		t.Fatal("expected error for nil event")
	}
}
