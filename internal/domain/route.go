package domain

import (
	"errors"
	"fmt"
)

// Per-segment metrics aligned index-for-index with a leg's coordinate
// sequence. The directions service guarantees the parallel arrays share
// one length; this layer treats that as an upheld collaborator invariant.
type Annotation struct {
	DistanceMeters  []float64 `json:"distance,omitempty"`
	DurationSeconds []float64 `json:"duration,omitempty"`
	SpeedMPS        []float64 `json:"speed,omitempty"`
	Congestion      []string  `json:"congestion,omitempty"`
}

// Represents one segment of a route between two consecutive waypoints.
// Leg order is significant and matches the waypoint order established
// when the route was requested.
type RouteLeg struct {
	Summary         string      `json:"summary"`
	DistanceMeters  float64     `json:"distance_meters"`
	DurationSeconds float64     `json:"duration_seconds"`
	Annotation      *Annotation `json:"annotation,omitempty"`
}

// Represents a computed path from origin to destination as returned by
// the directions service. A Route is immutable trip data: it is produced
// once and thereafter only replaced wholesale, never mutated in place.
// Each transformation (annotation refresh, reroute) yields a new value.
type Route struct {
	RequestID       string     `json:"request_id,omitempty"`
	Geometry        string     `json:"geometry"`
	DistanceMeters  int        `json:"distance_meters"`
	DurationSeconds int        `json:"duration_seconds"`
	Profile         string     `json:"profile"`
	Legs            []RouteLeg `json:"legs"`
}

// Validate checks the invariants every route crossing the directions
// boundary must satisfy.
func (r Route) Validate() error {
	if len(r.Legs) == 0 {
		return errors.New("route: legs must be non-empty")
	}
	if r.DistanceMeters < 0 {
		return fmt.Errorf("route: distance must be non-negative, got %d", r.DistanceMeters)
	}
	if r.DurationSeconds < 0 {
		return fmt.Errorf("route: duration must be non-negative, got %d", r.DurationSeconds)
	}
	return nil
}

// CloneLegs returns an independent copy of the leg sequence so callers
// can build a replacement route without aliasing the original's backing
// array.
func (r Route) CloneLegs() []RouteLeg {
	legs := make([]RouteLeg, len(r.Legs))
	copy(legs, r.Legs)
	return legs
}
