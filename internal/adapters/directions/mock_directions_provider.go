package directions

import (
	"context"
	"fmt"
	"route-refresh-service/internal/domain"
	"route-refresh-service/internal/ports"
)

// MockDirectionsProvider serves canned routes and annotations for
// tests and offline wiring.
type MockDirectionsProvider struct {
	Route       domain.Route
	Annotations []domain.Annotation
	RouteErr    error
	RefreshErr  error
}

func (p *MockDirectionsProvider) GetRoute(ctx context.Context, req ports.RouteRequest) (domain.Route, error) {
	if p.RouteErr != nil {
		return domain.Route{}, p.RouteErr
	}
	return p.Route, nil
}

func (p *MockDirectionsProvider) RefreshAnnotations(ctx context.Context, requestID string, currentLegIndex int) ([]domain.Annotation, error) {
	if p.RefreshErr != nil {
		return nil, p.RefreshErr
	}
	if currentLegIndex < 0 || currentLegIndex > len(p.Annotations) {
		return nil, fmt.Errorf("mock directions: leg index %d out of range", currentLegIndex)
	}
	return p.Annotations[currentLegIndex:], nil
}
