package geocode

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sairaj/internal/types"
)

func TestNominatim_Search(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "json", r.URL.Query().Get("format"))
		assert.Equal(t, "6", r.URL.Query().Get("limit"))
		assert.Equal(t, "navi mumbai", r.URL.Query().Get("q"))
		assert.Equal(t, "in", r.URL.Query().Get("countrycodes"))
		assert.Equal(t, "test-agent", r.Header.Get("User-Agent"))
		_, _ = w.Write([]byte(`[{"display_name":"Navi Mumbai, Thane, Maharashtra, India","lat":"19.0330","lon":"73.0297"}]`))
	}))
	defer srv.Close()

	n := NewNominatim(srv.Client(), srv.URL, "test-agent", "in")
	places, err := n.Search(context.Background(), "navi mumbai", 6)

	require.NoError(t, err)
	require.Len(t, places, 1)
	pt, err := places[0].Point()
	require.NoError(t, err)
	assert.Equal(t, types.Point{Lat: 19.0330, Lng: 73.0297}, pt)
}

func TestNominatim_Reverse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/reverse", r.URL.Path)
		assert.Equal(t, "jsonv2", r.URL.Query().Get("format"))
		assert.Equal(t, "18.5204", r.URL.Query().Get("lat"))
		_, _ = w.Write([]byte(`{"display_name":"FC Road, Pune","lat":"18.52","lon":"73.84","class":"highway","type":"secondary"}`))
	}))
	defer srv.Close()

	n := NewNominatim(srv.Client(), srv.URL, "", "")
	place, err := n.Reverse(context.Background(), types.Point{Lat: 18.5204, Lng: 73.8567})

	require.NoError(t, err)
	assert.Equal(t, "FC Road, Pune", place.DisplayName)
	assert.True(t, routable(place))
}

func TestNominatim_Errors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{name: "http error", status: http.StatusTooManyRequests, body: `{}`},
		{name: "bad json", status: http.StatusOK, body: `<html>`},
		{name: "empty reverse", status: http.StatusOK, body: `{"error":"Unable to geocode"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := NewNominatim(srv.Client(), srv.URL, "", "").Reverse(context.Background(), types.Point{})
			assert.Error(t, err)
		})
	}
}

func TestLoadCities(t *testing.T) {
	cities, err := LoadCities()
	require.NoError(t, err)
	require.NotEmpty(t, cities)
	assert.Equal(t, City{Name: "Pune", State: "Maharashtra", Lat: 18.5204, Lng: 73.8567}, cities[0])

	got := matchCities(cities, "GUJ", 10)
	require.NotEmpty(t, got)
	assert.Equal(t, "Ahmedabad, Gujarat, India", got[0].Label)
}
