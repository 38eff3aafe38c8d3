// README: Vehicle reference data read from the booking backend.
package vehicle

import (
	"context"
	"errors"

	"sairaj/internal/types"
)

var ErrNotFound = errors.New("vehicle not found")

const (
	WarnPricingMissing = "Vehicle pricing details not available. Please contact support."
	WarnLoadFailed     = "Unable to load vehicle details. Please try again or contact support."
)

type Vehicle struct {
	VehicleID   int    `json:"vehicleId"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	Capacity    int    `json:"capacity"`
	IsAC        bool   `json:"isAC"`
	Description string `json:"description"`
}

// Type is one entry of the vehicle picker.
type Type struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
	Type     string `json:"type,omitempty"`
	IsAC     bool   `json:"isAC"`
}

// PricingTier is one VehiclePricing record. Numeric fields tolerate null
// and string encodings from the backend.
type PricingTier struct {
	PricingID     int          `json:"pricingId"`
	VehicleID     int          `json:"vehicleId"`
	RateType      string       `json:"rateType"`
	RatePerKm     types.Amount `json:"ratePerKm"`
	MinKmPerDay   types.Amount `json:"minKmPerDay"`
	PackageHours  types.Amount `json:"packageHours"`
	PackageKm     types.Amount `json:"packageKm"`
	PackageRate   types.Amount `json:"packageRate"`
	ExtraKmRate   types.Amount `json:"extraKmRate"`
	ExtraHourRate types.Amount `json:"extraHourRate"`
}

type Charges struct {
	ChargeID        int          `json:"chargeId"`
	VehicleID       int          `json:"vehicleId"`
	DriverAllowance types.Amount `json:"driverAllowance"`
	NightCharge     types.Amount `json:"nightCharge"`
	FuelIncluded    bool         `json:"fuelIncluded"`
	TollIncluded    bool         `json:"tollIncluded"`
	ParkingIncluded bool         `json:"parkingIncluded"`
}

// Details is everything the fare calculator needs about one vehicle.
// Pricing and Charges are the first record of each list, or nil.
type Details struct {
	Vehicle *Vehicle     `json:"vehicle"`
	Pricing *PricingTier `json:"pricing"`
	Charges *Charges     `json:"charges"`
	Warning string       `json:"warning,omitempty"`
}

// Source reads vehicle reference data from either the REST backend or its
// database.
type Source interface {
	Vehicle(ctx context.Context, id string) (*Vehicle, error)
	Pricing(ctx context.Context, id string) ([]PricingTier, error)
	Charges(ctx context.Context, id string) ([]Charges, error)
	Types(ctx context.Context) ([]Type, error)
}

// DefaultTypes is offered when the backend cannot list vehicles.
var DefaultTypes = []Type{
	{ID: "urbania", Name: "Urbania (17-seater)", Capacity: 17},
	{ID: "sedan", Name: "Sedan (4-seater)", Capacity: 4},
	{ID: "suv", Name: "SUV (6-seater)", Capacity: 6},
	{ID: "bus", Name: "Bus (40+ seater)", Capacity: 40},
}
