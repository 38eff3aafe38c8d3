// README: Autocomplete options and the built-in city table.
package geocode

import (
	"fmt"

	"sairaj/internal/types"
)

// MinQueryLength is the shortest input that triggers a search.
const MinQueryLength = 2

// MaxOptions caps both the API and the merged result lists.
const MaxOptions = 6

type Option struct {
	Label string      `json:"label"`
	Value types.Point `json:"value"`
}

// City is one row of cities.csv.
type City struct {
	Name  string  `csv:"name"`
	State string  `csv:"state"`
	Lat   float64 `csv:"lat"`
	Lng   float64 `csv:"lng"`
}

func (c City) Option() Option {
	return Option{
		Label: fmt.Sprintf("%s, %s, India", c.Name, c.State),
		Value: types.Point{Lat: c.Lat, Lng: c.Lng},
	}
}

// Place is the subset of a Nominatim result the service reads.
type Place struct {
	DisplayName string `json:"display_name"`
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	Class       string `json:"class"`
	Type        string `json:"type"`
}
