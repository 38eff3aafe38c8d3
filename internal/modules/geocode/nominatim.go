// README: Minimal Nominatim client for forward search and reverse lookup.
package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"sairaj/internal/types"
)

// Nominatim talks to an OpenStreetMap Nominatim instance. Its usage policy
// requires an identifying User-Agent.
type Nominatim struct {
	client       *http.Client
	baseURL      string
	userAgent    string
	countryCodes string
}

func NewNominatim(client *http.Client, baseURL, userAgent, countryCodes string) *Nominatim {
	return &Nominatim{
		client:       client,
		baseURL:      baseURL,
		userAgent:    userAgent,
		countryCodes: countryCodes,
	}
}

func (n *Nominatim) Search(ctx context.Context, q string, limit int) ([]Place, error) {
	params := url.Values{}
	params.Set("format", "json")
	params.Set("limit", strconv.Itoa(limit))
	params.Set("q", q)
	if n.countryCodes != "" {
		params.Set("countrycodes", n.countryCodes)
	}

	var places []Place
	if err := n.get(ctx, "/search", params, &places); err != nil {
		return nil, err
	}
	return places, nil
}

// Reverse returns the place nearest to p at street zoom.
func (n *Nominatim) Reverse(ctx context.Context, p types.Point) (*Place, error) {
	params := url.Values{}
	params.Set("format", "jsonv2")
	params.Set("lat", strconv.FormatFloat(p.Lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(p.Lng, 'f', -1, 64))
	params.Set("zoom", "18")
	params.Set("addressdetails", "1")

	var place Place
	if err := n.get(ctx, "/reverse", params, &place); err != nil {
		return nil, err
	}
	if place.DisplayName == "" {
		return nil, fmt.Errorf("nominatim reverse: empty result for %s", p)
	}
	return &place, nil
}

func (n *Nominatim) get(ctx context.Context, path string, params url.Values, dst any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, n.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("nominatim %s: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")
	if n.userAgent != "" {
		req.Header.Set("User-Agent", n.userAgent)
	}

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("nominatim %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("nominatim %s: HTTP %d", path, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("nominatim %s: decoding: %w", path, err)
	}
	return nil
}

func (p Place) Point() (types.Point, error) {
	lat, err := strconv.ParseFloat(p.Lat, 64)
	if err != nil {
		return types.Point{}, fmt.Errorf("parsing lat %q: %w", p.Lat, err)
	}
	lng, err := strconv.ParseFloat(p.Lon, 64)
	if err != nil {
		return types.Point{}, fmt.Errorf("parsing lon %q: %w", p.Lon, err)
	}
	return types.Point{Lat: lat, Lng: lng}, nil
}
