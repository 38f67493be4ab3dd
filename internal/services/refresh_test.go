package services

import (
	"context"
	"errors"
	"reflect"
	"route-refresh-service/internal/adapters/directions"
	"route-refresh-service/internal/adapters/repositories"
	"route-refresh-service/internal/domain"
	"route-refresh-service/internal/ports"
	"testing"
)

func TestRefreshRoutePersistsReconciledRoute(t *testing.T) {
	ctx := context.Background()
	repo := repositories.NewMemoryRouteRepository()

	oldRoute := threeLegRoute()
	if err := repo.PutRoute(ctx, "s-1", oldRoute); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	provider := &directions.MockDirectionsProvider{
		Annotations: []domain.Annotation{
			{Congestion: []string{"a"}},
			{Congestion: []string{"b"}},
			{Congestion: []string{"c"}},
		},
	}

	newRoute, err := RefreshRoute(ctx, "s-1", 1, repo, provider)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(newRoute.Legs[0], oldRoute.Legs[0]) {
		t.Fatalf("completed leg changed")
	}
	if !reflect.DeepEqual(*newRoute.Legs[1].Annotation, provider.Annotations[1]) {
		t.Fatalf("leg 1 annotation = %+v", *newRoute.Legs[1].Annotation)
	}
	if !reflect.DeepEqual(*newRoute.Legs[2].Annotation, provider.Annotations[2]) {
		t.Fatalf("leg 2 annotation = %+v", *newRoute.Legs[2].Annotation)
	}

	stored, err := repo.GetRoute(ctx, "s-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(stored, newRoute) {
		t.Fatalf("stored route differs from returned route")
	}
}

func TestRefreshRouteKeepsStoredRouteOnMismatch(t *testing.T) {
	ctx := context.Background()
	repo := repositories.NewMemoryRouteRepository()

	oldRoute := threeLegRoute()
	if err := repo.PutRoute(ctx, "s-1", oldRoute); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	provider := &directions.MockDirectionsProvider{
		Annotations: []domain.Annotation{{}, {}, {}},
	}

	_, err := RefreshRoute(ctx, "s-1", 5, repo, provider)
	if !errors.Is(err, ErrIndexMismatch) {
		t.Fatalf("expected ErrIndexMismatch, got %v", err)
	}

	stored, err := repo.GetRoute(ctx, "s-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(stored, oldRoute) {
		t.Fatalf("stored route changed after failed refresh")
	}
}

func TestRefreshRouteUnknownSession(t *testing.T) {
	repo := repositories.NewMemoryRouteRepository()
	provider := &directions.MockDirectionsProvider{}

	_, err := RefreshRoute(context.Background(), "missing", 0, repo, provider)
	if !errors.Is(err, ports.ErrRouteNotFound) {
		t.Fatalf("expected ErrRouteNotFound, got %v", err)
	}
}

func TestRefreshRouteProviderFailureLeavesStoreUntouched(t *testing.T) {
	ctx := context.Background()
	repo := repositories.NewMemoryRouteRepository()

	oldRoute := threeLegRoute()
	if err := repo.PutRoute(ctx, "s-1", oldRoute); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	providerErr := errors.New("service unavailable")
	provider := &directions.MockDirectionsProvider{RefreshErr: providerErr}

	_, err := RefreshRoute(ctx, "s-1", 0, repo, provider)
	if !errors.Is(err, providerErr) {
		t.Fatalf("expected provider error, got %v", err)
	}
	if !errors.Is(err, ErrDirectionsUnavailable) {
		t.Fatalf("provider failure not tagged as directions unavailability: %v", err)
	}

	stored, _ := repo.GetRoute(ctx, "s-1")
	if !reflect.DeepEqual(stored, oldRoute) {
		t.Fatalf("stored route changed after provider failure")
	}
}
