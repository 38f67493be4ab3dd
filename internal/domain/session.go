package domain

import "time"

// Snapshot of an in-progress navigation session at a point in time.
// The session-tracking collaborator owns the live trip context; this
// value is a copy captured at an event boundary and never reflects
// later session changes.
type SessionState struct {
	SessionID                string    `json:"session_id"`
	StartedAt                time.Time `json:"started_at"`
	RerouteCount             int       `json:"reroute_count"`
	DistanceCompletedMeters  int       `json:"distance_completed_meters"`
	DistanceRemainingMeters  int       `json:"distance_remaining_meters"`
	DurationRemainingSeconds int       `json:"duration_remaining_seconds"`
	CurrentGeometry          string    `json:"current_geometry"`
}
