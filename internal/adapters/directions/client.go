package directions

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Query defaults every navigation request must carry. Congestion and
// distance annotations feed the refresh cycle; the full overview
// geometry feeds reroute telemetry.
const (
	DefaultProfile     = "driving-traffic"
	defaultAnnotations = "congestion,distance"
	defaultOverview    = "full"
)

// Client implements DirectionsProvider against a Mapbox-style
// directions API.
//
// It coordinates:
//   - Navigation-grade request construction (profile, annotations,
//     overview, steps)
//   - Response decoding into the domain model with boundary validation
//   - External API calls with retry/backoff
//
// The client is safe for concurrent use.
type Client struct {
	session     *http.Client
	baseURL     string
	accessToken string
	profile     string
}

func NewClient(baseURL, accessToken string) (*Client, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, errors.New("directions client: baseURL must be non-empty")
	}
	if strings.TrimSpace(accessToken) == "" {
		return nil, errors.New("directions client: accessToken must be non-empty")
	}

	return &Client{
		session: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseURL:     strings.TrimRight(baseURL, "/"),
		accessToken: accessToken,
		profile:     DefaultProfile,
	}, nil
}

// routeURL builds the directions request URL for a waypoint pair.
// Coordinates are rendered lon,lat;lon,lat in waypoint order.
func (c *Client) routeURL(profile string, origin, destination [2]float64) string {
	coords := fmt.Sprintf("%f,%f;%f,%f", origin[0], origin[1], destination[0], destination[1])

	q := url.Values{}
	q.Set("access_token", c.accessToken)
	q.Set("annotations", defaultAnnotations)
	q.Set("overview", defaultOverview)
	q.Set("steps", "true")

	return fmt.Sprintf("%s/directions/v5/%s/%s?%s", c.baseURL, profile, coords, q.Encode())
}

// refreshURL builds the annotation-refresh request URL for a previously
// computed route.
func (c *Client) refreshURL(requestID string, currentLegIndex int) string {
	q := url.Values{}
	q.Set("access_token", c.accessToken)
	q.Set("annotations", defaultAnnotations)

	return fmt.Sprintf(
		"%s/directions-refresh/v1/%s/%s/0/%d?%s",
		c.baseURL, c.profile, url.PathEscape(requestID), currentLegIndex, q.Encode(),
	)
}
