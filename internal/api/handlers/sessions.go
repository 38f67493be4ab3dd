package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"route-refresh-service/internal/api/dto"
	"route-refresh-service/internal/domain"
	"route-refresh-service/internal/ports"
	"route-refresh-service/internal/services"
	"strings"
	"time"
)

type SessionHandler struct {
	Repo     ports.RouteRepository
	Provider ports.DirectionsProvider
	Sink     ports.TelemetrySink
}

// InstallRoute fetches a route for the session's waypoints and installs
// it as the session's current route.
func (h *SessionHandler) InstallRoute(w http.ResponseWriter, r *http.Request) {
	sessionID := strings.TrimSpace(r.PathValue("id"))
	if sessionID == "" {
		writeError(w, r, http.StatusBadRequest, "session id is required")
		return
	}

	var req dto.InstallRouteRequest
	if !decodeBody(w, r, &req) {
		return
	}

	origin, ok := toWaypoint(req.Origin)
	if !ok {
		writeError(w, r, http.StatusBadRequest, "origin must be a [lon, lat] pair")
		return
	}
	destination, ok := toWaypoint(req.Destination)
	if !ok {
		writeError(w, r, http.StatusBadRequest, "destination must be a [lon, lat] pair")
		return
	}

	ctx := r.Context()

	route, err := h.Provider.GetRoute(ctx, ports.RouteRequest{
		Origin:      origin,
		Destination: destination,
		Profile:     req.Profile,
	})
	if err != nil {
		log.Printf("install route failed: session=%s err=%v", sessionID, err)
		writeError(w, r, http.StatusBadGateway, "directions service unavailable")
		return
	}

	if err := h.Repo.PutRoute(ctx, sessionID, route); err != nil {
		log.Printf("install route failed: session=%s err=%v", sessionID, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.FromDomainRoute(route))
}

// Refresh reconciles freshly fetched annotations into the remaining
// legs of the session's current route.
func (h *SessionHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	sessionID := strings.TrimSpace(r.PathValue("id"))
	if sessionID == "" {
		writeError(w, r, http.StatusBadRequest, "session id is required")
		return
	}

	var req dto.RefreshRequest
	if !decodeBody(w, r, &req) {
		return
	}

	route, err := services.RefreshRoute(r.Context(), sessionID, req.CurrentLegIndex, h.Repo, h.Provider)
	if err != nil {
		switch {
		case errors.Is(err, ports.ErrRouteNotFound):
			writeError(w, r, http.StatusNotFound, "no route for session")
		case errors.Is(err, services.ErrIndexMismatch):
			writeError(w, r, http.StatusConflict, "leg index inconsistent with current route")
		case errors.Is(err, services.ErrDirectionsUnavailable):
			log.Printf("refresh failed: session=%s err=%v", sessionID, err)
			writeError(w, r, http.StatusBadGateway, "directions service unavailable")
		default:
			log.Printf("refresh failed: session=%s err=%v", sessionID, err)
			writeError(w, r, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	writeJSON(w, r, http.StatusOK, dto.FromDomainRoute(route))
}

// Reroute replaces the session's route and emits a reroute event.
func (h *SessionHandler) Reroute(w http.ResponseWriter, r *http.Request) {
	sessionID := strings.TrimSpace(r.PathValue("id"))
	if sessionID == "" {
		writeError(w, r, http.StatusBadRequest, "session id is required")
		return
	}

	var req dto.RerouteRequest
	if !decodeBody(w, r, &req) {
		return
	}

	origin, ok := toWaypoint(req.Origin)
	if !ok {
		writeError(w, r, http.StatusBadRequest, "origin must be a [lon, lat] pair")
		return
	}
	destination, ok := toWaypoint(req.Destination)
	if !ok {
		writeError(w, r, http.StatusBadRequest, "destination must be a [lon, lat] pair")
		return
	}

	state := domain.SessionState{
		SessionID: sessionID,
		StartedAt: time.Now().UTC(),
	}
	if req.SessionState != nil {
		state.RerouteCount = req.SessionState.RerouteCount
		state.DistanceCompletedMeters = req.SessionState.DistanceCompletedMeters
		state.DistanceRemainingMeters = req.SessionState.DistanceRemainingMeters
		state.DurationRemainingSeconds = req.SessionState.DurationRemainingSeconds
		state.CurrentGeometry = req.SessionState.CurrentGeometry
	}

	route, event, err := services.Reroute(
		r.Context(),
		sessionID,
		state,
		ports.RouteRequest{Origin: origin, Destination: destination, Profile: req.Profile},
		h.Repo,
		h.Provider,
		h.Sink,
	)
	if err != nil {
		log.Printf("reroute failed: session=%s err=%v", sessionID, err)
		if errors.Is(err, services.ErrDirectionsUnavailable) {
			writeError(w, r, http.StatusBadGateway, "directions service unavailable")
			return
		}
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.RerouteResponse{
		EventID: event.EventID(),
		Route:   dto.FromDomainRoute(route),
	})
}

// decodeBody decodes a single JSON object request body, writing a 400
// and returning false on malformed input.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return false
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return false
	}
	return true
}

func toWaypoint(coords []float64) ([2]float64, bool) {
	if len(coords) != 2 {
		return [2]float64{}, false
	}
	return [2]float64{coords[0], coords[1]}, true
}
