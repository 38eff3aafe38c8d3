package geocode

import (
	"bytes"
	_ "embed"
	"fmt"
	"strings"

	"github.com/jszwec/csvutil"
)

//go:embed cities.csv
var citiesCSV []byte

// LoadCities decodes the embedded fallback city table.
func LoadCities() ([]City, error) {
	var cities []City
	if err := csvutil.Unmarshal(bytes.TrimSpace(citiesCSV), &cities); err != nil {
		return nil, fmt.Errorf("decoding cities.csv: %w", err)
	}
	return cities, nil
}

// matchCities returns up to limit cities whose name or state contains q,
// case-insensitively, in table order.
func matchCities(cities []City, q string, limit int) []Option {
	q = strings.ToLower(q)
	var out []Option
	for _, c := range cities {
		if len(out) == limit {
			break
		}
		if strings.Contains(strings.ToLower(c.Name), q) || strings.Contains(strings.ToLower(c.State), q) {
			out = append(out, c.Option())
		}
	}
	return out
}
