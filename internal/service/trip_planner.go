package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"sairaj/internal/modules/route"
	"sairaj/internal/modules/trip"
	"sairaj/internal/modules/vehicle"
	"sairaj/internal/types"
)

// RoutePlanner is satisfied by *route.Planner.
type RoutePlanner interface {
	Plan(ctx context.Context, from, to types.Point) route.Route
}

// VehicleLoader is satisfied by *vehicle.Service.
type VehicleLoader interface {
	Load(ctx context.Context, id string) (vehicle.Details, error)
}

// TripPlanner orchestrates routing and vehicle lookup into a priced estimate.
type TripPlanner struct {
	routes   RoutePlanner
	vehicles VehicleLoader
	logger   *zap.Logger
	now      func() time.Time
}

// NewTripPlanner creates a TripPlanner with initialized dependencies.
func NewTripPlanner(routes RoutePlanner, vehicles VehicleLoader, logger *zap.Logger) *TripPlanner {
	return &TripPlanner{
		routes:   routes,
		vehicles: vehicles,
		logger:   logger,
		now:      time.Now,
	}
}

// Estimate plans the route and loads the selected vehicle concurrently, then
// prices the trip. Only missing endpoints fail; upstream problems degrade
// into a warning on the estimate.
func (p *TripPlanner) Estimate(ctx context.Context, s trip.State) (trip.Estimate, error) {
	if !s.HasEndpoints() {
		return trip.Estimate{}, trip.ErrMissingEndpoints
	}

	var (
		r route.Route
		v vehicle.Details
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		r = p.routes.Plan(gctx, s.Start.Coordinates, s.End.Coordinates)
		return nil
	})
	g.Go(func() error {
		var err error
		v, err = p.vehicles.Load(gctx, s.Details.VehicleID)
		if err != nil {
			return fmt.Errorf("vehicle %q: %w", s.Details.VehicleID, err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return trip.Estimate{}, err
	}

	e := trip.Assemble(s, r, v, p.now())
	p.logger.Info("trip estimated",
		zap.String("from", s.Start.Label),
		zap.String("to", s.End.Label),
		zap.String("provider", r.Provider),
		zap.Float64("distance_km", e.DistanceKm),
		zap.Float64("grand_total", e.GrandTotal.Float()),
		zap.Bool("fallback_rates", e.Fare.IsFallback),
	)
	return e, nil
}

// Route plans a route only, used by the map preview.
func (p *TripPlanner) Route(ctx context.Context, start, end *types.Endpoint) (route.Route, error) {
	if start == nil || end == nil {
		return route.Route{}, trip.ErrMissingEndpoints
	}
	return p.routes.Plan(ctx, start.Coordinates, end.Coordinates), nil
}
