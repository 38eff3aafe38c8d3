package route

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const osrmBody = `{"code":"Ok","routes":[{"distance":154230.5,"duration":10800,
"geometry":{"type":"LineString","coordinates":[[73.8567,18.5204],[73.3,18.8],[72.8777,19.076]]}}]}`

func TestOSRMStrategy_ParsesRoute(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		assert.Equal(t, "geojson", r.URL.Query().Get("geometries"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(osrmBody))
	}))
	defer srv.Close()

	out := NewOSRMStrategy(srv.Client(), srv.URL).Route(context.Background(), pune, mumbai)

	require.True(t, out.Ok(), out.Reason)
	assert.Equal(t, "OSRM", out.Route.Provider)
	assert.InDelta(t, 154.2305, out.Route.DistanceKm(), 0.0001)
	assert.Equal(t, 180.0, out.Route.DurationMinutes())
	assert.Len(t, out.Route.Geometry.Coordinates, 3)
	assert.True(t, strings.HasPrefix(gotPath, "/route/v1/driving/73.856700,18.520400;72.877700,19.076000"), gotPath)
}

func TestOSRMStrategy_Unavailable(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantMsg string
	}{
		{name: "server error", status: http.StatusServiceUnavailable, body: `{}`, wantMsg: "status 503"},
		{name: "no routes", status: http.StatusOK, body: `{"code":"NoRoute","routes":[]}`, wantMsg: "no route found"},
		{name: "bad json", status: http.StatusOK, body: `not json`, wantMsg: "decoding response"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			out := NewOSRMStrategy(srv.Client(), srv.URL).Route(context.Background(), pune, mumbai)
			assert.False(t, out.Ok())
			assert.Contains(t, out.Reason, tt.wantMsg)
		})
	}
}

func TestMapboxStrategy_WithoutTokenIsUnavailable(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	out := NewMapboxStrategy(srv.Client(), srv.URL, "").Route(context.Background(), pune, mumbai)

	assert.False(t, out.Ok())
	assert.Contains(t, out.Reason, "token not configured")
	assert.False(t, called)
}

func TestMapboxStrategy_SendsToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "pk.test", r.URL.Query().Get("access_token"))
		assert.True(t, strings.HasPrefix(r.URL.Path, "/directions/v5/mapbox/driving/"))
		_, _ = w.Write([]byte(osrmBody))
	}))
	defer srv.Close()

	out := NewMapboxStrategy(srv.Client(), srv.URL, "pk.test").Route(context.Background(), pune, mumbai)

	require.True(t, out.Ok(), out.Reason)
	assert.Equal(t, "Mapbox", out.Route.Provider)
}
