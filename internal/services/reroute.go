package services

import (
	"context"
	"errors"
	"fmt"
	"route-refresh-service/internal/domain"
	"route-refresh-service/internal/ports"
	"route-refresh-service/internal/telemetry"
)

// Reroute replaces the session's current route with a freshly computed
// one and emits a RerouteEvent describing the replacement.
//
// The event is created the instant the reroute is requested, before
// the new route is known, so its identifier and session snapshot
// capture the trigger moment. Once the replacement route arrives, its
// geometry and remaining figures are attached, the event is sealed and
// handed to the telemetry sink. The whole new route lies ahead of the
// traveler, so the remaining figures are the route's totals.
func Reroute(
	ctx context.Context,
	sessionID string,
	sessionState domain.SessionState,
	req ports.RouteRequest,
	repo ports.RouteRepository,
	provider ports.DirectionsProvider,
	sink ports.TelemetrySink,
) (domain.Route, *telemetry.RerouteEvent, error) {
	event := telemetry.NewRerouteEvent(sessionState)

	newRoute, err := provider.GetRoute(ctx, req)
	if err != nil {
		return domain.Route{}, nil, fmt.Errorf(
			"reroute: get route for session %q: %w",
			sessionID, errors.Join(ErrDirectionsUnavailable, err),
		)
	}
	if err := newRoute.Validate(); err != nil {
		return domain.Route{}, nil, fmt.Errorf("reroute: session %q: %w", sessionID, err)
	}

	if err := repo.PutRoute(ctx, sessionID, newRoute); err != nil {
		return domain.Route{}, nil, fmt.Errorf("reroute: store route for session %q: %w", sessionID, err)
	}

	if err := event.AttachRoute(newRoute.Geometry, newRoute.DurationSeconds, newRoute.DistanceMeters); err != nil {
		return domain.Route{}, nil, fmt.Errorf("reroute: session %q: %w", sessionID, err)
	}

	event.Seal()
	if err := sink.SendReroute(ctx, event); err != nil {
		// The route replacement already took effect; telemetry loss is
		// reported but does not roll it back.
		return newRoute, event, fmt.Errorf("reroute: send event %s: %w", event.EventID(), err)
	}

	return newRoute, event, nil
}
