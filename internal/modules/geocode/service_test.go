package geocode

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"sairaj/internal/types"
)

type fakePlaces struct {
	results   []Place
	searchErr error
	reverse   func(p types.Point) (*Place, error)
	searches  int
}

func (f *fakePlaces) Search(_ context.Context, _ string, _ int) ([]Place, error) {
	f.searches++
	return f.results, f.searchErr
}

func (f *fakePlaces) Reverse(_ context.Context, p types.Point) (*Place, error) {
	if f.reverse == nil {
		return nil, errors.New("not configured")
	}
	return f.reverse(p)
}

func newTestService(t *testing.T, places Places) *Service {
	t.Helper()
	cities, err := LoadCities()
	require.NoError(t, err)
	return NewService(places, cities, zap.NewNop())
}

func TestSearch_ShortQuerySkipsLookup(t *testing.T) {
	places := &fakePlaces{}
	svc := newTestService(t, places)

	for _, q := range []string{"", "p", "  m  "} {
		assert.Empty(t, svc.Search(context.Background(), q), q)
	}
	assert.Equal(t, 0, places.searches)
}

func TestSearch_ApiFirstThenFallbackDeduped(t *testing.T) {
	places := &fakePlaces{results: []Place{
		{DisplayName: "Pune, Pune District, Maharashtra, India", Lat: "18.52", Lon: "73.85"},
		{DisplayName: "Pune, Maharashtra, India", Lat: "18.5204", Lon: "73.8567"},
		{DisplayName: "broken", Lat: "x", Lon: "73"},
	}}
	svc := newTestService(t, places)

	got := svc.Search(context.Background(), "pune")

	require.Len(t, got, 2)
	assert.Equal(t, "Pune, Pune District, Maharashtra, India", got[0].Label)
	assert.Equal(t, "Pune, Maharashtra, India", got[1].Label)
}

func TestSearch_ApiFailureUsesFallbackCities(t *testing.T) {
	svc := newTestService(t, &fakePlaces{searchErr: errors.New("HTTP 503")})

	got := svc.Search(context.Background(), "maharashtra")

	require.Len(t, got, MaxOptions)
	assert.Equal(t, "Pune, Maharashtra, India", got[0].Label)
	assert.Equal(t, types.Point{Lat: 18.5204, Lng: 73.8567}, got[0].Value)
	assert.Equal(t, "Mumbai, Maharashtra, India", got[1].Label)
}

func TestSearch_ApiFailureNoCityMatch(t *testing.T) {
	svc := newTestService(t, &fakePlaces{searchErr: errors.New("timeout")})
	got := svc.Search(context.Background(), "zzzz")
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestSearch_CapsMergedResults(t *testing.T) {
	var results []Place
	for i := 0; i < MaxOptions; i++ {
		results = append(results, Place{DisplayName: string(rune('A'+i)) + " Nagar", Lat: "19", Lon: "73"})
	}
	svc := newTestService(t, &fakePlaces{results: results})

	got := svc.Search(context.Background(), "mumbai")

	assert.Len(t, got, MaxOptions)
	assert.Equal(t, "A Nagar", got[0].Label)
}

func TestReverse(t *testing.T) {
	p := types.Point{Lat: 18.5204, Lng: 73.8567}

	t.Run("label from lookup", func(t *testing.T) {
		svc := newTestService(t, &fakePlaces{reverse: func(types.Point) (*Place, error) {
			return &Place{DisplayName: "Shivajinagar, Pune"}, nil
		}})
		assert.Equal(t, "Shivajinagar, Pune", svc.Reverse(context.Background(), p))
	})

	t.Run("coordinates on failure", func(t *testing.T) {
		svc := newTestService(t, &fakePlaces{})
		assert.Equal(t, "18.520400, 73.856700", svc.Reverse(context.Background(), p))
	})
}

func TestSnap(t *testing.T) {
	origin := types.Point{Lat: 18.5, Lng: 73.8}

	t.Run("already routable", func(t *testing.T) {
		calls := 0
		svc := newTestService(t, &fakePlaces{reverse: func(types.Point) (*Place, error) {
			calls++
			return &Place{Class: "highway", Type: "primary", Lat: "1", Lon: "1"}, nil
		}})
		assert.Equal(t, origin, svc.Snap(context.Background(), origin))
		assert.Equal(t, 1, calls)
	})

	t.Run("moves to first routable candidate", func(t *testing.T) {
		calls := 0
		svc := newTestService(t, &fakePlaces{reverse: func(types.Point) (*Place, error) {
			calls++
			if calls < 4 {
				return &Place{Class: "landuse", Type: "farmland"}, nil
			}
			return &Place{Class: "place", Type: "residential", Lat: "18.501", Lon: "73.801"}, nil
		}})
		assert.Equal(t, types.Point{Lat: 18.501, Lng: 73.801}, svc.Snap(context.Background(), origin))
		assert.Equal(t, 4, calls)
	})

	t.Run("nothing routable keeps the point", func(t *testing.T) {
		calls := 0
		svc := newTestService(t, &fakePlaces{reverse: func(types.Point) (*Place, error) {
			calls++
			return &Place{Class: "natural", Type: "water"}, nil
		}})
		assert.Equal(t, origin, svc.Snap(context.Background(), origin))
		assert.Equal(t, 1+len(snapRadiiMeters)*8, calls)
	})

	t.Run("lookup failure keeps the point", func(t *testing.T) {
		svc := newTestService(t, &fakePlaces{})
		assert.Equal(t, origin, svc.Snap(context.Background(), origin))
	})
}
