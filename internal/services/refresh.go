package services

import (
	"context"
	"errors"
	"fmt"
	"route-refresh-service/internal/domain"
	"route-refresh-service/internal/ports"
)

// ErrDirectionsUnavailable tags failures of the remote directions
// service so callers can tell upstream unavailability apart from
// internal faults.
var ErrDirectionsUnavailable = errors.New("directions service unavailable")

// RefreshRoute fetches fresh annotations for the remaining legs of the
// session's current route and persists the reconciled result.
//
// On any failure, including an index mismatch against the stored
// route, the stored route is left untouched and remains the effective
// state. Trip-level retry policy belongs to the caller.
func RefreshRoute(
	ctx context.Context,
	sessionID string,
	currentLegIndex int,
	repo ports.RouteRepository,
	provider ports.DirectionsProvider,
) (domain.Route, error) {
	oldRoute, err := repo.GetRoute(ctx, sessionID)
	if err != nil {
		return domain.Route{}, fmt.Errorf("refresh route: get route for session %q: %w", sessionID, err)
	}

	// Validate the index before the remote call so an impossible
	// request never reaches the directions service.
	if currentLegIndex < 0 || currentLegIndex >= len(oldRoute.Legs) {
		return domain.Route{}, fmt.Errorf(
			"refresh route: %w: current leg index %d out of range [0, %d)",
			ErrIndexMismatch, currentLegIndex, len(oldRoute.Legs),
		)
	}

	refreshed, err := provider.RefreshAnnotations(ctx, oldRoute.RequestID, currentLegIndex)
	if err != nil {
		return domain.Route{}, fmt.Errorf(
			"refresh route: fetch annotations for session %q: %w",
			sessionID, errors.Join(ErrDirectionsUnavailable, err),
		)
	}

	newRoute, err := ReconcileAnnotations(oldRoute, refreshed, currentLegIndex)
	if err != nil {
		return domain.Route{}, fmt.Errorf("refresh route: session %q: %w", sessionID, err)
	}

	if err := repo.PutRoute(ctx, sessionID, newRoute); err != nil {
		return domain.Route{}, fmt.Errorf("refresh route: store route for session %q: %w", sessionID, err)
	}

	return newRoute, nil
}
