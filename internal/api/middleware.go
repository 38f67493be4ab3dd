package api

import (
	"context"
	"log"
	"net/http"
	"route-refresh-service/internal/platform/obs"
	"strings"
	"time"
)

// statusWriter captures the final HTTP status code and number of bytes
// written, distinguishing "handler returned 200" from "client received
// a response".
type statusWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

// Record implicit 200 responses when handlers write without calling WriteHeader.
func (w *statusWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}

	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

// sessionFromPath extracts the session id segment from
// /sessions/{id}/... paths. Non-session routes yield "".
func sessionFromPath(path string) string {
	rest, ok := strings.CutPrefix(path, "/sessions/")
	if !ok {
		return ""
	}
	id, _, _ := strings.Cut(rest, "/")
	return id
}

// loggingMiddleware logs end-to-end request duration and response size,
// tagged with the navigation session id. The id is also placed on the
// request context under obs.SessionIDKey so downstream op timings
// correlate with the access log line.
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		sessionID := sessionFromPath(r.URL.Path)
		if sessionID != "" {
			r = r.WithContext(context.WithValue(r.Context(), obs.SessionIDKey, sessionID))
		}

		sw := &statusWriter{
			ResponseWriter: w,
			status:         0,
		}

		next.ServeHTTP(sw, r)

		duration := time.Since(start).Milliseconds()

		log.Printf(
			"method=%s path=%s session=%s status=%d bytes=%d dur=%dms",
			r.Method, r.URL.RequestURI(), sessionID, sw.status, sw.bytes, duration,
		)
	})
}
