package api

import (
	"bytes"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"route-refresh-service/internal/platform/obs"
	"strings"
	"testing"
)

func TestLoggingMiddlewareTagsSessionRequests(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	var gotSession string
	h := loggingMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSession, _ = r.Context().Value(obs.SessionIDKey).(string)
		w.WriteHeader(http.StatusNoContent)
	}))

	req := httptest.NewRequest(http.MethodPost, "/sessions/s-42/refresh", nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if gotSession != "s-42" {
		t.Fatalf("handler context session = %q, want %q", gotSession, "s-42")
	}
	if !strings.Contains(buf.String(), "session=s-42") {
		t.Fatalf("access log missing session tag: %q", buf.String())
	}
	if !strings.Contains(buf.String(), "status=204") {
		t.Fatalf("access log missing status: %q", buf.String())
	}
}

func TestLoggingMiddlewareNonSessionRoute(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	h := loggingMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := r.Context().Value(obs.SessionIDKey).(string); ok {
			t.Error("non-session route got a session id")
		}
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if !strings.Contains(buf.String(), "session= ") {
		t.Fatalf("access log should carry an empty session tag: %q", buf.String())
	}
}

func TestSessionFromPath(t *testing.T) {
	cases := []struct {
		path string
		want string
	}{
		{"/sessions/s-1/refresh", "s-1"},
		{"/sessions/s-1/route", "s-1"},
		{"/sessions/abc", "abc"},
		{"/health", ""},
		{"/sessions/", ""},
	}

	for _, tc := range cases {
		if got := sessionFromPath(tc.path); got != tc.want {
			t.Errorf("sessionFromPath(%q) = %q, want %q", tc.path, got, tc.want)
		}
	}
}
