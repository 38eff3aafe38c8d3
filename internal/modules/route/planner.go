// README: Route planner tries each strategy in order and degrades to a straight line.
package route

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"sairaj/internal/types"
)

type Planner struct {
	strategies []Strategy
	cache      Cache
	logger     *zap.Logger
}

// NewPlanner builds a planner over strategies in priority order. cache may be nil.
func NewPlanner(logger *zap.Logger, cache Cache, strategies ...Strategy) *Planner {
	return &Planner{
		strategies: strategies,
		cache:      cache,
		logger:     logger,
	}
}

// Plan never fails: when no strategy can route the trip it returns the
// straight-line estimate with Fallback set.
func (p *Planner) Plan(ctx context.Context, from, to types.Point) Route {
	if p.cache != nil {
		cached, err := p.cache.Get(ctx, from, to)
		if err != nil {
			p.logger.Warn("route cache read failed", zap.Error(err))
		} else if cached != nil {
			return *cached
		}
	}

	for _, s := range p.strategies {
		out := s.Route(ctx, from, to)
		if out.Ok() {
			if p.cache != nil {
				if err := p.cache.Set(ctx, from, to, *out.Route); err != nil {
					p.logger.Warn("route cache write failed", zap.Error(err))
				}
			}
			return *out.Route
		}
		p.logger.Warn("routing strategy unavailable",
			zap.String("strategy", s.Name()),
			zap.String("reason", out.Reason),
		)
		if ctx.Err() != nil {
			break
		}
	}

	p.logger.Info("all routing strategies unavailable, using straight line",
		zap.Stringer("from", from),
		zap.Stringer("to", to),
	)
	return StraightLine(from, to)
}

// StraightLine builds a two-point route from the road-distance estimate.
func StraightLine(from, to types.Point) Route {
	km := EstimateRoadDistance(&from, &to)
	return Route{
		Provider:        "straight-line",
		DistanceMeters:  km * 1000,
		DurationSeconds: km / fallbackSpeedKmh * 3600,
		Geometry: Geometry{
			Type: "LineString",
			Coordinates: [][2]float64{
				{from.Lng, from.Lat},
				{to.Lng, to.Lat},
			},
		},
		Fallback: true,
		Message:  fmt.Sprintf("Straight-line route (routing services unavailable), x%.2f road factor", RoadDistanceMultiplier),
	}
}
