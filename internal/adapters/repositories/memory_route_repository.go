package repositories

import (
	"context"
	"route-refresh-service/internal/domain"
	"route-refresh-service/internal/ports"
	"sync"
)

// MemoryRouteRepository keeps session routes in memory. Used in tests
// and for running the service without Postgres.
type MemoryRouteRepository struct {
	mu     sync.RWMutex
	routes map[string]domain.Route
}

func NewMemoryRouteRepository() *MemoryRouteRepository {
	return &MemoryRouteRepository{routes: make(map[string]domain.Route)}
}

func (r *MemoryRouteRepository) GetRoute(ctx context.Context, sessionID string) (domain.Route, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	route, ok := r.routes[sessionID]
	if !ok {
		return domain.Route{}, ports.ErrRouteNotFound
	}
	return route, nil
}

func (r *MemoryRouteRepository) PutRoute(ctx context.Context, sessionID string, route domain.Route) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.routes[sessionID] = route
	return nil
}
