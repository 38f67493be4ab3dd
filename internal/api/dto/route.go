package dto

import "route-refresh-service/internal/domain"

type InstallRouteRequest struct {
	Origin      []float64 `json:"origin"`
	Destination []float64 `json:"destination"`
	Profile     string    `json:"profile"`
}

type RefreshRequest struct {
	CurrentLegIndex int `json:"current_leg_index"`
}

type RerouteRequest struct {
	Origin       []float64     `json:"origin"`
	Destination  []float64     `json:"destination"`
	Profile      string        `json:"profile"`
	SessionState *SessionState `json:"session_state"`
}

type SessionState struct {
	RerouteCount             int    `json:"reroute_count"`
	DistanceCompletedMeters  int    `json:"distance_completed_meters"`
	DistanceRemainingMeters  int    `json:"distance_remaining_meters"`
	DurationRemainingSeconds int    `json:"duration_remaining_seconds"`
	CurrentGeometry          string `json:"current_geometry"`
}

type AnnotationResponse struct {
	DistanceMeters  []float64 `json:"distance,omitempty"`
	DurationSeconds []float64 `json:"duration,omitempty"`
	SpeedMPS        []float64 `json:"speed,omitempty"`
	Congestion      []string  `json:"congestion,omitempty"`
}

type LegResponse struct {
	Summary         string              `json:"summary"`
	DistanceMeters  float64             `json:"distance_meters"`
	DurationSeconds float64             `json:"duration_seconds"`
	Annotation      *AnnotationResponse `json:"annotation,omitempty"`
}

type RouteResponse struct {
	RequestID       string        `json:"request_id,omitempty"`
	Geometry        string        `json:"geometry"`
	DistanceMeters  int           `json:"distance_meters"`
	DurationSeconds int           `json:"duration_seconds"`
	Profile         string        `json:"profile"`
	Legs            []LegResponse `json:"legs"`
}

type RerouteResponse struct {
	EventID string        `json:"event_id"`
	Route   RouteResponse `json:"route"`
}

// FromDomainRoute maps a domain route onto the response shape.
func FromDomainRoute(r domain.Route) RouteResponse {
	legs := make([]LegResponse, 0, len(r.Legs))
	for _, leg := range r.Legs {
		lr := LegResponse{
			Summary:         leg.Summary,
			DistanceMeters:  leg.DistanceMeters,
			DurationSeconds: leg.DurationSeconds,
		}
		if leg.Annotation != nil {
			lr.Annotation = &AnnotationResponse{
				DistanceMeters:  leg.Annotation.DistanceMeters,
				DurationSeconds: leg.Annotation.DurationSeconds,
				SpeedMPS:        leg.Annotation.SpeedMPS,
				Congestion:      leg.Annotation.Congestion,
			}
		}
		legs = append(legs, lr)
	}

	return RouteResponse{
		RequestID:       r.RequestID,
		Geometry:        r.Geometry,
		DistanceMeters:  r.DistanceMeters,
		DurationSeconds: r.DurationSeconds,
		Profile:         r.Profile,
		Legs:            legs,
	}
}
