package ports

import (
	"context"
	"errors"
	"route-refresh-service/internal/domain"
)

// ErrRouteNotFound reports that no route is stored for the session.
var ErrRouteNotFound = errors.New("route repository: route not found")

// Port: a boundary for storing the route currently navigated by each
// session.
type RouteRepository interface {
	// Retrieve the session's current route, or ErrRouteNotFound.
	GetRoute(ctx context.Context, sessionID string) (domain.Route, error)

	// Install or replace the session's current route.
	PutRoute(ctx context.Context, sessionID string, route domain.Route) error
}
