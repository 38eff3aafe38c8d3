package route

import (
	"context"
	"fmt"

	"googlemaps.github.io/maps"

	"sairaj/internal/types"
)

// GoogleStrategy handles interactions with the Google Directions API.
type GoogleStrategy struct {
	client *maps.Client
}

// NewGoogleStrategy creates a GoogleStrategy with the given API Key.
func NewGoogleStrategy(apiKey string, opts ...maps.ClientOption) (*GoogleStrategy, error) {
	opts = append([]maps.ClientOption{maps.WithAPIKey(apiKey)}, opts...)
	client, err := maps.NewClient(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &GoogleStrategy{client: client}, nil
}

func (s *GoogleStrategy) Name() string {
	return "Google"
}

// Route asks for a driving route between two coordinates, biased to India.
func (s *GoogleStrategy) Route(ctx context.Context, from, to types.Point) Outcome {
	r := &maps.DirectionsRequest{
		Origin:      from.String(),
		Destination: to.String(),
		Mode:        maps.TravelModeDriving,
		Region:      "in",
	}

	routes, _, err := s.client.Directions(ctx, r)
	if err != nil {
		return Unavailable(fmt.Sprintf("maps api error: %v", err))
	}
	if len(routes) == 0 || len(routes[0].Legs) == 0 {
		return Unavailable("no route found")
	}

	var meters, seconds float64
	for _, leg := range routes[0].Legs {
		meters += float64(leg.Distance.Meters)
		seconds += leg.Duration.Seconds()
	}

	geometry := Geometry{Type: "LineString"}
	path, err := routes[0].OverviewPolyline.Decode()
	if err == nil {
		for _, p := range path {
			geometry.Coordinates = append(geometry.Coordinates, [2]float64{p.Lng, p.Lat})
		}
	} else {
		geometry.Coordinates = [][2]float64{{from.Lng, from.Lat}, {to.Lng, to.Lat}}
	}

	return Available(Route{
		Provider:        s.Name(),
		DistanceMeters:  meters,
		DurationSeconds: seconds,
		Geometry:        geometry,
		Message:         "Routing via Google",
	})
}
