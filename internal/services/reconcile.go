package services

import (
	"errors"
	"fmt"
	"route-refresh-service/internal/domain"
)

// ErrIndexMismatch reports a current-leg index or refreshed-annotation
// count that is inconsistent with the route's leg count. The caller
// should keep the prior route as the effective state and may re-fetch
// with corrected parameters.
var ErrIndexMismatch = errors.New("reconcile: index mismatch")

// ReconcileAnnotations merges freshly fetched per-leg annotations into
// an in-progress route.
//
// Legs before currentLegIndex are already traveled and are carried over
// unchanged. Each remaining leg keeps its geometry and metrics but takes
// the corresponding refreshed annotation (refreshed[0] belongs to the
// leg at currentLegIndex). The inputs are never mutated; the result is
// a fresh Route differing from oldRoute only in its leg sequence.
//
// Either a fully substituted route is returned or the call fails with
// ErrIndexMismatch before producing any output. Mismatched input is
// never truncated or padded.
func ReconcileAnnotations(
	oldRoute domain.Route,
	refreshed []domain.Annotation,
	currentLegIndex int,
) (domain.Route, error) {
	legCount := len(oldRoute.Legs)
	if legCount == 0 {
		return domain.Route{}, fmt.Errorf("%w: route has no legs", ErrIndexMismatch)
	}

	if currentLegIndex < 0 || currentLegIndex >= legCount {
		return domain.Route{}, fmt.Errorf(
			"%w: current leg index %d out of range [0, %d)",
			ErrIndexMismatch, currentLegIndex, legCount,
		)
	}

	if remaining := legCount - currentLegIndex; len(refreshed) != remaining {
		return domain.Route{}, fmt.Errorf(
			"%w: got %d refreshed annotations for %d remaining legs",
			ErrIndexMismatch, len(refreshed), remaining,
		)
	}

	legs := oldRoute.CloneLegs()
	for i := currentLegIndex; i < legCount; i++ {
		annotation := refreshed[i-currentLegIndex]
		legs[i].Annotation = &annotation
	}

	newRoute := oldRoute
	newRoute.Legs = legs
	return newRoute, nil
}
