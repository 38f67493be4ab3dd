package directions

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"route-refresh-service/internal/domain"
	"route-refresh-service/internal/platform/obs"
	"route-refresh-service/internal/ports"
)

type annotationResponse struct {
	Distance   []float64 `json:"distance"`
	Duration   []float64 `json:"duration"`
	Speed      []float64 `json:"speed"`
	Congestion []string  `json:"congestion"`
}

type legResponse struct {
	Summary    string              `json:"summary"`
	Distance   float64             `json:"distance"`
	Duration   float64             `json:"duration"`
	Annotation *annotationResponse `json:"annotation"`
}

type routeResponse struct {
	Geometry string        `json:"geometry"`
	Distance float64       `json:"distance"`
	Duration float64       `json:"duration"`
	Legs     []legResponse `json:"legs"`
}

type directionsResponse struct {
	Code   string          `json:"code"`
	UUID   string          `json:"uuid"`
	Routes []routeResponse `json:"routes"`
}

type refreshResponse struct {
	Code  string `json:"code"`
	Route struct {
		Legs []legResponse `json:"legs"`
	} `json:"route"`
}

// GetRoute requests a full route between the given waypoints and
// decodes the primary alternative into the domain model.
func (c *Client) GetRoute(ctx context.Context, req ports.RouteRequest) (_ domain.Route, err error) {
	defer obs.Time(ctx, "directions.GetRoute")(&err)

	profile := req.Profile
	if profile == "" {
		profile = c.profile
	}
	endpoint := c.routeURL(profile, req.Origin, req.Destination)

	resp, err := c.doWithRetry(ctx, func() (*http.Request, error) {
		return c.newRequest(ctx, http.MethodGet, endpoint)
	})
	if err != nil {
		return domain.Route{}, fmt.Errorf("get route: %w", err)
	}
	defer resp.Body.Close()

	var body directionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return domain.Route{}, fmt.Errorf("get route: decode response: %w", err)
	}

	if body.Code != "Ok" {
		return domain.Route{}, fmt.Errorf("get route: service returned code %q", body.Code)
	}
	if len(body.Routes) == 0 {
		return domain.Route{}, fmt.Errorf("get route: no routes in response")
	}

	route := toDomainRoute(body.Routes[0], body.UUID, profile)
	if err := route.Validate(); err != nil {
		return domain.Route{}, fmt.Errorf("get route: %w", err)
	}

	return route, nil
}

// RefreshAnnotations fetches fresh annotations for the remaining legs
// of a previously computed route. The service returns one leg per
// remaining leg, in leg order, starting at currentLegIndex.
func (c *Client) RefreshAnnotations(ctx context.Context, requestID string, currentLegIndex int) (_ []domain.Annotation, err error) {
	defer obs.Time(ctx, "directions.RefreshAnnotations")(&err)

	if requestID == "" {
		return nil, fmt.Errorf("refresh annotations: route has no request id")
	}
	if currentLegIndex < 0 {
		return nil, fmt.Errorf("refresh annotations: current leg index %d must be non-negative", currentLegIndex)
	}
	endpoint := c.refreshURL(requestID, currentLegIndex)

	resp, err := c.doWithRetry(ctx, func() (*http.Request, error) {
		return c.newRequest(ctx, http.MethodGet, endpoint)
	})
	if err != nil {
		return nil, fmt.Errorf("refresh annotations: %w", err)
	}
	defer resp.Body.Close()

	var body refreshResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("refresh annotations: decode response: %w", err)
	}

	if body.Code != "Ok" {
		return nil, fmt.Errorf("refresh annotations: service returned code %q", body.Code)
	}

	out := make([]domain.Annotation, 0, len(body.Route.Legs))
	for i, leg := range body.Route.Legs {
		if leg.Annotation == nil {
			return nil, fmt.Errorf("refresh annotations: leg %d has no annotation", i)
		}
		out = append(out, toDomainAnnotation(*leg.Annotation))
	}

	return out, nil
}

func toDomainRoute(r routeResponse, requestID, profile string) domain.Route {
	legs := make([]domain.RouteLeg, 0, len(r.Legs))
	for _, leg := range r.Legs {
		dl := domain.RouteLeg{
			Summary:         leg.Summary,
			DistanceMeters:  leg.Distance,
			DurationSeconds: leg.Duration,
		}
		if leg.Annotation != nil {
			a := toDomainAnnotation(*leg.Annotation)
			dl.Annotation = &a
		}
		legs = append(legs, dl)
	}

	return domain.Route{
		RequestID:       requestID,
		Geometry:        r.Geometry,
		DistanceMeters:  int(r.Distance),
		DurationSeconds: int(r.Duration),
		Profile:         profile,
		Legs:            legs,
	}
}

func toDomainAnnotation(a annotationResponse) domain.Annotation {
	return domain.Annotation{
		DistanceMeters:  a.Distance,
		DurationSeconds: a.Duration,
		SpeedMPS:        a.Speed,
		Congestion:      a.Congestion,
	}
}
