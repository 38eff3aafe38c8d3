// README: Geocode service merges Nominatim results with the built-in city table.
package geocode

import (
	"context"
	"fmt"
	"math"
	"strings"

	"go.uber.org/zap"

	"sairaj/internal/types"
)

// Places is the upstream lookup the service depends on.
type Places interface {
	Search(ctx context.Context, q string, limit int) ([]Place, error)
	Reverse(ctx context.Context, p types.Point) (*Place, error)
}

type Service struct {
	places Places
	cities []City
	logger *zap.Logger
}

func NewService(places Places, cities []City, logger *zap.Logger) *Service {
	return &Service{places: places, cities: cities, logger: logger}
}

// Search returns API matches first, then fallback cities, deduplicated by
// label. When the API fails only the fallback cities are returned.
func (s *Service) Search(ctx context.Context, q string) []Option {
	q = strings.TrimSpace(q)
	if len([]rune(q)) < MinQueryLength {
		return []Option{}
	}

	fallback := matchCities(s.cities, q, MaxOptions)

	places, err := s.places.Search(ctx, q, MaxOptions)
	if err != nil {
		s.logger.Warn("nominatim unavailable, using fallback cities", zap.String("query", q), zap.Error(err))
		if fallback == nil {
			return []Option{}
		}
		return fallback
	}

	seen := make(map[string]struct{}, len(places)+len(fallback))
	out := make([]Option, 0, MaxOptions)
	add := func(o Option) {
		if len(out) == MaxOptions {
			return
		}
		if _, dup := seen[o.Label]; dup {
			return
		}
		seen[o.Label] = struct{}{}
		out = append(out, o)
	}

	for _, p := range places {
		pt, err := p.Point()
		if err != nil {
			s.logger.Debug("skipping place with bad coordinates", zap.String("label", p.DisplayName), zap.Error(err))
			continue
		}
		add(Option{Label: p.DisplayName, Value: pt})
	}
	for _, o := range fallback {
		add(o)
	}
	return out
}

// Reverse labels a coordinate. It falls back to "lat, lng" so callers
// always get something displayable.
func (s *Service) Reverse(ctx context.Context, p types.Point) string {
	place, err := s.places.Reverse(ctx, p)
	if err != nil {
		s.logger.Warn("reverse geocode failed", zap.Stringer("point", p), zap.Error(err))
		return coordinateLabel(p)
	}
	return place.DisplayName
}

func coordinateLabel(p types.Point) string {
	return fmt.Sprintf("%.6f, %.6f", p.Lat, p.Lng)
}

var routableTypes = map[string]struct{}{
	"residential": {}, "service": {}, "road": {}, "tertiary": {}, "secondary": {}, "primary": {},
	"unclassified": {}, "track": {}, "footway": {}, "pedestrian": {}, "path": {},
}

func routable(p *Place) bool {
	if p == nil {
		return false
	}
	if p.Class == "highway" {
		return true
	}
	_, ok := routableTypes[p.Type]
	return ok
}

var snapRadiiMeters = []float64{100, 300, 600, 1000, 2000}

// Snap moves p onto the nearest routable place, probing eight compass
// bearings on growing rings. It returns p unchanged when nothing routable
// is found or the lookup fails.
func (s *Service) Snap(ctx context.Context, p types.Point) types.Point {
	place, err := s.places.Reverse(ctx, p)
	if err != nil {
		s.logger.Warn("snap lookup failed", zap.Stringer("point", p), zap.Error(err))
		return p
	}
	if routable(place) {
		return p
	}

	lngFactor := 111000.0 * math.Cos(p.Lat*math.Pi/180)
	for _, r := range snapRadiiMeters {
		for i := 0; i < 8; i++ {
			if ctx.Err() != nil {
				return p
			}
			angle := float64(i) * 45 * math.Pi / 180
			cand := types.Point{
				Lat: p.Lat + r*math.Sin(angle)/111000.0,
				Lng: p.Lng + r*math.Cos(angle)/lngFactor,
			}
			place, err := s.places.Reverse(ctx, cand)
			if err != nil || !routable(place) {
				continue
			}
			if snapped, err := place.Point(); err == nil {
				return snapped
			}
			return cand
		}
	}
	return p
}
