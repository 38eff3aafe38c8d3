// README: Route result and strategy contract for the planner.
package route

import (
	"context"
	"errors"

	"sairaj/internal/types"
)

var ErrUnavailable = errors.New("routing unavailable")

// Geometry is a GeoJSON LineString; coordinates are [lng, lat] pairs.
type Geometry struct {
	Type        string       `json:"type"`
	Coordinates [][2]float64 `json:"coordinates"`
}

type Route struct {
	Provider        string   `json:"provider"`
	DistanceMeters  float64  `json:"distance"`
	DurationSeconds float64  `json:"duration"`
	Geometry        Geometry `json:"geometry"`
	Fallback        bool     `json:"fallback"`
	Message         string   `json:"message"`
}

func (r Route) DistanceKm() float64 {
	return r.DistanceMeters / 1000
}

func (r Route) DurationMinutes() float64 {
	return r.DurationSeconds / 60
}

// Outcome is what a single strategy produced: a route, or the reason none
// was available.
type Outcome struct {
	Route  *Route
	Reason string
}

func Available(r Route) Outcome {
	return Outcome{Route: &r}
}

func Unavailable(reason string) Outcome {
	return Outcome{Reason: reason}
}

func (o Outcome) Ok() bool {
	return o.Route != nil
}

// Strategy is one routing provider in the planner's ordered list.
type Strategy interface {
	Name() string
	Route(ctx context.Context, from, to types.Point) Outcome
}

// Cache stores provider results keyed by endpoint pair.
type Cache interface {
	Get(ctx context.Context, from, to types.Point) (*Route, error)
	Set(ctx context.Context, from, to types.Point, r Route) error
}
