// README: OSRM and Mapbox driving-directions strategies (shared GeoJSON response shape).
package route

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"sairaj/internal/types"
)

type directionsResponse struct {
	Code   string `json:"code"`
	Routes []struct {
		Distance float64  `json:"distance"`
		Duration float64  `json:"duration"`
		Geometry Geometry `json:"geometry"`
	} `json:"routes"`
}

// DirectionsStrategy calls an OSRM-compatible driving endpoint.
type DirectionsStrategy struct {
	name     string
	client   *http.Client
	buildURL func(from, to types.Point) (string, error)
}

func (s *DirectionsStrategy) Name() string {
	return s.name
}

// NewOSRMStrategy targets an OSRM server, e.g. https://router.project-osrm.org.
func NewOSRMStrategy(client *http.Client, baseURL string) *DirectionsStrategy {
	return &DirectionsStrategy{
		name:   "OSRM",
		client: client,
		buildURL: func(from, to types.Point) (string, error) {
			return fmt.Sprintf("%s/route/v1/driving/%s?overview=full&geometries=geojson",
				baseURL, lngLatPair(from, to)), nil
		},
	}
}

// NewMapboxStrategy targets the Mapbox Directions API. Without a token the
// strategy reports itself unavailable on every call.
func NewMapboxStrategy(client *http.Client, baseURL, token string) *DirectionsStrategy {
	return &DirectionsStrategy{
		name:   "Mapbox",
		client: client,
		buildURL: func(from, to types.Point) (string, error) {
			if token == "" {
				return "", fmt.Errorf("mapbox token not configured: %w", ErrUnavailable)
			}
			return fmt.Sprintf("%s/directions/v5/mapbox/driving/%s?overview=full&geometries=geojson&access_token=%s",
				baseURL, lngLatPair(from, to), url.QueryEscape(token)), nil
		},
	}
}

func lngLatPair(from, to types.Point) string {
	return fmt.Sprintf("%f,%f;%f,%f", from.Lng, from.Lat, to.Lng, to.Lat)
}

func (s *DirectionsStrategy) Route(ctx context.Context, from, to types.Point) Outcome {
	endpoint, err := s.buildURL(from, to)
	if err != nil {
		return Unavailable(err.Error())
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Unavailable(fmt.Sprintf("building request: %v", err))
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return Unavailable(fmt.Sprintf("request failed: %v", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Unavailable(fmt.Sprintf("responded with status %d", resp.StatusCode))
	}

	var body directionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Unavailable(fmt.Sprintf("decoding response: %v", err))
	}
	if len(body.Routes) == 0 {
		return Unavailable("no route found")
	}

	r := body.Routes[0]
	return Available(Route{
		Provider:        s.name,
		DistanceMeters:  r.Distance,
		DurationSeconds: r.Duration,
		Geometry:        r.Geometry,
		Message:         "Routing via " + s.name,
	})
}
