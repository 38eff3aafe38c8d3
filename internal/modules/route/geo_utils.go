// README: Pure geographic helpers for the straight-line road distance estimate.
package route

import (
	"math"

	"sairaj/internal/types"
)

const (
	// kmPerDegree is the length of one degree of latitude (and of longitude
	// at the equator).
	kmPerDegree = 111.32

	// RoadDistanceMultiplier converts straight-line distance into an
	// approximate driving distance.
	RoadDistanceMultiplier = 1.35

	// fallbackSpeedKmh is the assumed average speed for straight-line routes.
	fallbackSpeedKmh = 60.0
)

// straightLineKm returns the equirectangular distance in kilometres between
// two points specified in decimal degrees.
func straightLineKm(a, b types.Point) float64 {
	meanLat := degreesToRadians((a.Lat + b.Lat) / 2)
	dx := (b.Lng - a.Lng) * kmPerDegree * math.Cos(meanLat)
	dy := (b.Lat - a.Lat) * kmPerDegree
	return math.Sqrt(dx*dx + dy*dy)
}

// EstimateRoadDistance returns the straight-line distance scaled by
// RoadDistanceMultiplier. Either endpoint being unset yields 0.
func EstimateRoadDistance(a, b *types.Point) float64 {
	if a == nil || b == nil {
		return 0
	}
	return straightLineKm(*a, *b) * RoadDistanceMultiplier
}

func degreesToRadians(deg float64) float64 {
	return deg * math.Pi / 180.0
}
