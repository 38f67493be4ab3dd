package api

import (
	"net/http"
	"route-refresh-service/internal/api/handlers"
	"route-refresh-service/internal/ports"
)

// NewRouter wires HTTP handlers with their dependencies and returns an
// http.Handler. This is the API composition root (handlers stay unaware
// of concrete adapters).
func NewRouter(repo ports.RouteRepository, provider ports.DirectionsProvider, sink ports.TelemetrySink) http.Handler {
	mux := http.NewServeMux()

	sessionHandler := &handlers.SessionHandler{
		Repo:     repo,
		Provider: provider,
		Sink:     sink,
	}

	mux.HandleFunc("GET /health", handlers.Health)
	mux.HandleFunc("PUT /sessions/{id}/route", sessionHandler.InstallRoute)
	mux.HandleFunc("POST /sessions/{id}/refresh", sessionHandler.Refresh)
	mux.HandleFunc("POST /sessions/{id}/reroute", sessionHandler.Reroute)

	return loggingMiddleware(mux)
}
