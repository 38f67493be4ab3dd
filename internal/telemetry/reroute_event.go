package telemetry

import (
	"errors"
	"fmt"
	"route-refresh-service/internal/domain"

	"github.com/google/uuid"
)

// ErrRouteAlreadyAttached reports a second route attachment on an event
// whose replacement-route payload was already recorded. Attachment is a
// one-shot operation; a repeat call is a caller contract violation and
// is surfaced rather than silently overwritten.
var ErrRouteAlreadyAttached = errors.New("reroute event: route already attached")

// ErrEventSealed reports a mutation attempt after the event was handed
// off to the telemetry collaborator.
var ErrEventSealed = errors.New("reroute event: event is sealed")

// ErrInvalidRemaining reports negative remaining-distance or
// remaining-duration figures.
var ErrInvalidRemaining = errors.New("reroute event: remaining figures must be non-negative")

// RerouteEvent records a single route-replacement occurrence for
// telemetry.
//
// Construction is two-phase: identity (event id, initial session
// snapshot) is fixed by NewRerouteEvent the instant the reroute
// decision is made, and the replacement route's figures are attached
// exactly once when the new route becomes available. Seal marks the
// hand-off to the telemetry collaborator; afterwards every mutation
// fails. Each reroute produces a new event with a new identifier;
// events are never reused.
//
// The zero value is not usable; always construct via NewRerouteEvent.
type RerouteEvent struct {
	eventID      string
	sessionState domain.SessionState

	attached                 bool
	newRouteGeometry         string
	newDurationRemainingSec  int
	newDistanceRemainingMtrs int

	sealed bool
}

// NewRerouteEvent allocates an event with a freshly generated unique
// identifier and the given session snapshot. Route-derived fields start
// unset. Identifier generation is safe for concurrent use.
func NewRerouteEvent(sessionState domain.SessionState) *RerouteEvent {
	return &RerouteEvent{
		eventID:      uuid.NewString(),
		sessionState: sessionState,
	}
}

// AttachRoute records the replacement route's encoded geometry and the
// remaining duration (seconds) and distance (meters) at the moment of
// replacement. It succeeds at most once per event.
func (e *RerouteEvent) AttachRoute(geometry string, durationRemainingSec, distanceRemainingM int) error {
	if e.sealed {
		return fmt.Errorf("attach route: %w", ErrEventSealed)
	}
	if e.attached {
		return fmt.Errorf("attach route: %w", ErrRouteAlreadyAttached)
	}
	if durationRemainingSec < 0 || distanceRemainingM < 0 {
		return fmt.Errorf(
			"attach route: %w: duration=%d distance=%d",
			ErrInvalidRemaining, durationRemainingSec, distanceRemainingM,
		)
	}

	e.newRouteGeometry = geometry
	e.newDurationRemainingSec = durationRemainingSec
	e.newDistanceRemainingMtrs = distanceRemainingM
	e.attached = true
	return nil
}

// UpdateSessionState replaces the held session snapshot. The session
// collaborator may finalize its state after the event was created, so
// replacement is permitted any number of times until the event is
// sealed.
func (e *RerouteEvent) UpdateSessionState(sessionState domain.SessionState) error {
	if e.sealed {
		return fmt.Errorf("update session state: %w", ErrEventSealed)
	}
	e.sessionState = sessionState
	return nil
}

// Seal marks the event as handed off. Sealing is idempotent.
func (e *RerouteEvent) Seal() {
	e.sealed = true
}

func (e *RerouteEvent) EventID() string { return e.eventID }

func (e *RerouteEvent) SessionState() domain.SessionState { return e.sessionState }

// Attached reports whether the replacement route's payload was recorded.
func (e *RerouteEvent) Attached() bool { return e.attached }

func (e *RerouteEvent) Sealed() bool { return e.sealed }

func (e *RerouteEvent) NewRouteGeometry() string { return e.newRouteGeometry }

// NewDurationRemaining is the replacement route's remaining travel time
// in seconds at the moment of replacement.
func (e *RerouteEvent) NewDurationRemaining() int { return e.newDurationRemainingSec }

// NewDistanceRemaining is the replacement route's remaining travel
// distance in meters at the moment of replacement.
func (e *RerouteEvent) NewDistanceRemaining() int { return e.newDistanceRemainingMtrs }
