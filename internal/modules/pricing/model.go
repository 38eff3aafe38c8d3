// README: Fare inputs, the fare breakdown, and the fallback rate card.
package pricing

import (
	"sairaj/internal/modules/vehicle"
	"sairaj/internal/types"
)

// Fallback rate card used when a vehicle has no pricing record.
const (
	FallbackRatePerKm       = 30
	FallbackMinKmPerDay     = 100
	FallbackExtraKmRate     = 30
	FallbackDriverAllowance = 500
	FallbackNightAllowance  = 300
)

// DateLayout is the wire format of departure and return dates.
const DateLayout = "2006-01-02"

type Input struct {
	DistanceKm      float64
	VehicleSelected bool
	Pricing         *vehicle.PricingTier
	Charges         *vehicle.Charges

	IncludeDriverAllowance bool
	IncludeNightStay       bool

	DepartureDate string
	ReturnDate    string
}

// Result is the fare breakdown. DriverAllowance and NightStayAllowance are
// the configured rates; the Final* fields are what was actually added.
type Result struct {
	BaseFare                types.Amount `json:"baseFare"`
	DriverAllowance         types.Amount `json:"driverAllowance"`
	NightStayAllowance      types.Amount `json:"nightStayAllowance"`
	FinalDriverAllowance    types.Amount `json:"finalDriverAllowance"`
	FinalNightStayAllowance types.Amount `json:"finalNightStayAllowance"`
	Nights                  int          `json:"nights"`
	RatePerKm               types.Amount `json:"ratePerKm"`
	MinKmPerDay             float64      `json:"minKmPerDay"`
	ExtraKmRate             types.Amount `json:"extraKmRate"`
	ExtraKm                 float64      `json:"extraKm"`
	TotalAmount             types.Amount `json:"totalAmount"`
	IsFallback              bool         `json:"isFallback"`
}
