package types

import "fmt"

// Point is a WGS84 coordinate in decimal degrees.
type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

func (p Point) String() string {
	return fmt.Sprintf("%.6f,%.6f", p.Lat, p.Lng)
}

// Endpoint is a user-selected origin or destination. It is replaced as a
// whole on reselection, never edited in place.
type Endpoint struct {
	Label       string `json:"label"`
	Coordinates Point  `json:"coordinates"`
}
