// README: Vehicle service loads a vehicle with its pricing and charges concurrently.
package vehicle

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type Service struct {
	source Source
	logger *zap.Logger
}

func NewService(source Source, logger *zap.Logger) *Service {
	return &Service{source: source, logger: logger}
}

// Load fetches the vehicle record, its pricing tiers and its charge records
// in parallel. Any failure, an unknown vehicle included, is reported through
// Details.Warning with nil pricing so the fare falls back instead of blocking
// the quote.
func (s *Service) Load(ctx context.Context, id string) (Details, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Details{}, nil
	}

	var (
		v       *Vehicle
		tiers   []PricingTier
		charges []Charges
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		v, err = s.source.Vehicle(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		tiers, err = s.source.Pricing(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		charges, err = s.source.Charges(gctx, id)
		return err
	})

	if err := g.Wait(); err != nil {
		if errors.Is(err, ErrNotFound) {
			s.logger.Info("vehicle not found, using fallback rates", zap.String("vehicle_id", id))
			return Details{Warning: WarnLoadFailed}, nil
		}
		s.logger.Warn("loading vehicle details failed", zap.String("vehicle_id", id), zap.Error(err))
		return Details{Warning: WarnLoadFailed}, nil
	}

	d := Details{Vehicle: v}
	if len(tiers) > 0 {
		d.Pricing = &tiers[0]
	} else {
		d.Warning = WarnPricingMissing
	}
	if len(charges) > 0 {
		d.Charges = &charges[0]
	}
	return d, nil
}

// Types lists selectable vehicles, falling back to DefaultTypes when the
// source is unavailable or empty.
func (s *Service) Types(ctx context.Context) []Type {
	ts, err := s.source.Types(ctx)
	if err != nil {
		s.logger.Warn("listing vehicle types failed, using defaults", zap.Error(err))
		return DefaultTypes
	}
	if len(ts) == 0 {
		return DefaultTypes
	}
	return ts
}
