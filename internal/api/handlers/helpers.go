package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"route-refresh-service/internal/platform/obs"
)

// errorBody is the uniform error response shape: a human-readable
// message plus the HTTP status echoed for collaborators that only see
// the body.
type errorBody struct {
	Error string `json:"error"`
	Code  int    `json:"code"`
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		sessionID, _ := r.Context().Value(obs.SessionIDKey).(string)
		log.Printf("encode failed: method=%s path=%s session=%s err=%v", r.Method, r.URL.Path, sessionID, err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, errorBody{Error: msg, Code: status})
}
