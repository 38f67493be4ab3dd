package telemetry

import (
	"errors"
	"route-refresh-service/internal/domain"
	"testing"
	"time"
)

func TestNewRerouteEventGeneratesUniqueIDs(t *testing.T) {
	seen := make(map[string]struct{}, 1000)

	for i := 0; i < 1000; i++ {
		event := NewRerouteEvent(domain.SessionState{SessionID: "s-1"})

		id := event.EventID()
		if id == "" {
			t.Fatal("event id is empty")
		}
		if _, ok := seen[id]; ok {
			t.Fatalf("duplicate event id %q", id)
		}
		seen[id] = struct{}{}
	}
}

func TestNewRerouteEventCapturesSessionState(t *testing.T) {
	state := domain.SessionState{
		SessionID:    "s-1",
		StartedAt:    time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
		RerouteCount: 2,
	}

	event := NewRerouteEvent(state)

	if event.SessionState() != state {
		t.Fatalf("session state = %+v, want %+v", event.SessionState(), state)
	}
	if event.Attached() {
		t.Fatal("route fields should start unset")
	}
	if event.Sealed() {
		t.Fatal("new event should not be sealed")
	}
}

func TestAttachRouteRecordsPayloadOnce(t *testing.T) {
	event := NewRerouteEvent(domain.SessionState{SessionID: "s-1"})

	if err := event.AttachRoute("geom-abc", 1200, 8400); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if event.NewRouteGeometry() != "geom-abc" {
		t.Errorf("geometry = %q, want %q", event.NewRouteGeometry(), "geom-abc")
	}
	if event.NewDurationRemaining() != 1200 {
		t.Errorf("duration remaining = %d, want 1200", event.NewDurationRemaining())
	}
	if event.NewDistanceRemaining() != 8400 {
		t.Errorf("distance remaining = %d, want 8400", event.NewDistanceRemaining())
	}

	err := event.AttachRoute("geom-other", 1, 1)
	if !errors.Is(err, ErrRouteAlreadyAttached) {
		t.Fatalf("expected ErrRouteAlreadyAttached, got %v", err)
	}

	// First payload survives the rejected second attach.
	if event.NewRouteGeometry() != "geom-abc" {
		t.Errorf("geometry overwritten to %q", event.NewRouteGeometry())
	}
}

func TestAttachRouteRejectsNegativeFigures(t *testing.T) {
	event := NewRerouteEvent(domain.SessionState{SessionID: "s-1"})

	if err := event.AttachRoute("g", -1, 10); !errors.Is(err, ErrInvalidRemaining) {
		t.Fatalf("expected ErrInvalidRemaining for negative duration, got %v", err)
	}
	if err := event.AttachRoute("g", 10, -1); !errors.Is(err, ErrInvalidRemaining) {
		t.Fatalf("expected ErrInvalidRemaining for negative distance, got %v", err)
	}

	// A rejected attach does not consume the one-shot slot.
	if err := event.AttachRoute("g", 10, 10); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestUpdateSessionStateAllowedUntilSealed(t *testing.T) {
	event := NewRerouteEvent(domain.SessionState{SessionID: "s-1"})

	updated := domain.SessionState{SessionID: "s-1", RerouteCount: 3}
	if err := event.UpdateSessionState(updated); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if event.SessionState() != updated {
		t.Fatalf("session state = %+v, want %+v", event.SessionState(), updated)
	}

	event.Seal()

	if err := event.UpdateSessionState(domain.SessionState{}); !errors.Is(err, ErrEventSealed) {
		t.Fatalf("expected ErrEventSealed, got %v", err)
	}
	if event.SessionState() != updated {
		t.Fatalf("sealed event's session state changed")
	}
}

func TestSealForbidsAttach(t *testing.T) {
	event := NewRerouteEvent(domain.SessionState{SessionID: "s-1"})
	event.Seal()

	if err := event.AttachRoute("g", 1, 1); !errors.Is(err, ErrEventSealed) {
		t.Fatalf("expected ErrEventSealed, got %v", err)
	}
}
