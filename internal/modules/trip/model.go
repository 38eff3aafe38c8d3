// README: Trip planning state, customer validation, and the assembled estimate.
package trip

import (
	"errors"
	"time"

	"sairaj/internal/modules/expense"
	"sairaj/internal/modules/pricing"
	"sairaj/internal/modules/route"
	"sairaj/internal/modules/vehicle"
	"sairaj/internal/types"
)

var (
	ErrIncompleteCustomer = errors.New("customer details incomplete")
	ErrMissingEndpoints   = errors.New("start and end locations are required")
)

type Details struct {
	Passengers      int    `json:"passengers"`
	VehicleID       string `json:"vehicleType"`
	DepartureDate   string `json:"departureDate"`
	ReturnDate      string `json:"returnDate"`
	DepartureTime   string `json:"departureTime"`
	PickupLocation  string `json:"pickupLocation"`
	DropLocation    string `json:"dropLocation"`
	CustomerName    string `json:"customerName"`
	CustomerPhone   string `json:"customerPhone"`
	CustomerEmail   string `json:"customerEmail"`
	SpecialRequests string `json:"specialRequests"`
	RoundTrip       bool   `json:"roundTrip"`
}

type Toggles struct {
	IncludeDriverAllowance bool `json:"includeDriverAllowance"`
	IncludeNightStay       bool `json:"includeNightStay"`
}

type Customer struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// State is the whole trip form. It is a value: reducers return a modified
// copy and never touch the receiver.
type State struct {
	Start    *types.Endpoint `json:"start"`
	End      *types.Endpoint `json:"end"`
	Details  Details         `json:"details"`
	Toggles  Toggles         `json:"toggles"`
	Expenses expense.Sheet   `json:"expenses"`

	// VehicleGeneration increments on every vehicle selection so responses
	// for an earlier selection can be recognised and dropped.
	VehicleGeneration uint64 `json:"vehicleGeneration"`
}

// Estimate is the priced trip.
type Estimate struct {
	Route           route.Route     `json:"route"`
	DistanceKm      float64         `json:"distanceKm"`
	DurationMinutes float64         `json:"durationMinutes"`
	Vehicle         vehicle.Details `json:"vehicle"`
	Fare            pricing.Result  `json:"fare"`
	VehicleSubtotal types.Amount    `json:"vehicleSubtotal"`
	Expenses        []expense.Item  `json:"expenses"`
	ExpensesTotal   types.Amount    `json:"expensesTotal"`
	GrandTotal      types.Amount    `json:"grandTotal"`
	Warnings        []string        `json:"warnings,omitempty"`
	GeneratedAt     time.Time       `json:"generatedAt"`
}
