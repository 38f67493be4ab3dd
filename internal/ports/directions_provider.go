package ports

import (
	"context"
	"route-refresh-service/internal/domain"
)

// Parameters for requesting a route from the directions service.
// Coordinates are [lon, lat] pairs in waypoint order.
type RouteRequest struct {
	Origin      [2]float64
	Destination [2]float64
	Profile     string
}

// Contract for the remote directions service.
type DirectionsProvider interface {
	// Request a full route between the given waypoints.
	GetRoute(ctx context.Context, req RouteRequest) (domain.Route, error)

	// Fetch fresh per-leg annotations for the remaining legs of an
	// in-progress route, identified by the request id the service
	// assigned when the route was computed. The result is ordered:
	// element 0 belongs to the leg at currentLegIndex.
	RefreshAnnotations(ctx context.Context, requestID string, currentLegIndex int) ([]domain.Annotation, error)
}
