// README: REST client for the backend's vehicle endpoints.
package vehicle

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
)

type APIClient struct {
	client  *http.Client
	baseURL string
}

// NewAPIClient expects baseURL to include the /api prefix.
func NewAPIClient(client *http.Client, baseURL string) *APIClient {
	return &APIClient{client: client, baseURL: baseURL}
}

func (c *APIClient) Vehicle(ctx context.Context, id string) (*Vehicle, error) {
	var v Vehicle
	if err := c.get(ctx, "/vehicles/"+url.PathEscape(id), &v); err != nil {
		return nil, err
	}
	return &v, nil
}

func (c *APIClient) Pricing(ctx context.Context, id string) ([]PricingTier, error) {
	var tiers []PricingTier
	err := c.get(ctx, "/vehicle-pricing/vehicle/"+url.PathEscape(id), &tiers)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return tiers, nil
}

func (c *APIClient) Charges(ctx context.Context, id string) ([]Charges, error) {
	var charges []Charges
	err := c.get(ctx, "/vehicle-charges/vehicle/"+url.PathEscape(id), &charges)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return charges, nil
}

func (c *APIClient) Types(ctx context.Context) ([]Type, error) {
	var ts []Type
	if err := c.get(ctx, "/vehicles/types", &ts); err != nil {
		return nil, err
	}
	return ts, nil
}

func (c *APIClient) get(ctx context.Context, path string, dst any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("GET %s: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	// An empty pricing or charges list also comes back as 404.
	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("GET %s: HTTP %d", path, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("GET %s: decoding: %w", path, err)
	}
	return nil
}
