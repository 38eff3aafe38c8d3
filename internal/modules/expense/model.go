// README: Additional-expense sheet: seventeen fixed charges plus two custom lines.
package expense

import (
	"errors"

	"sairaj/internal/types"
)

var ErrUnknownField = errors.New("unknown expense field")

type Custom struct {
	Name   string       `json:"name"`
	Amount types.Amount `json:"amount"`
}

// Sheet holds the user-entered extras for a trip. Every field defaults to 0.
type Sheet struct {
	Fuel             types.Amount `json:"fuelCharges"`
	Toll             types.Amount `json:"tollCharges"`
	Parking          types.Amount `json:"parkingCharges"`
	InterstatePermit types.Amount `json:"interstatePermitCharges"`
	GreenTax         types.Amount `json:"greenTaxCharges"`
	DriverFood       types.Amount `json:"driverFoodExpenses"`
	HotelStay        types.Amount `json:"hotelStayCharges"`
	PassengerMeal    types.Amount `json:"passengerMealCharges"`
	Sightseeing      types.Amount `json:"sightseeingCharges"`
	Guide            types.Amount `json:"guideCharges"`
	AirportPickup    types.Amount `json:"airportPickupCharges"`
	LuggageHandling  types.Amount `json:"luggageHandlingCharges"`
	SpecialZone      types.Amount `json:"specialZoneCharges"`
	Emergency        types.Amount `json:"emergencyExpenses"`
	TravelInsurance  types.Amount `json:"travelInsuranceCharges"`
	Documentation    types.Amount `json:"documentationCharges"`
	Miscellaneous    types.Amount `json:"miscellaneousCharges"`

	Custom1 Custom `json:"custom1"`
	Custom2 Custom `json:"custom2"`
}

// Item is one labelled line of the breakdown.
type Item struct {
	Key    string       `json:"key"`
	Label  string       `json:"label"`
	Amount types.Amount `json:"amount"`
}

type field struct {
	key   string
	label string
	ptr   func(s *Sheet) *types.Amount
}

// fields is the display order used by quotes and emails.
var fields = []field{
	{"tollCharges", "Toll Charges", func(s *Sheet) *types.Amount { return &s.Toll }},
	{"parkingCharges", "Parking Charges", func(s *Sheet) *types.Amount { return &s.Parking }},
	{"fuelCharges", "Extra Fuel", func(s *Sheet) *types.Amount { return &s.Fuel }},
	{"passengerMealCharges", "Passenger Meals", func(s *Sheet) *types.Amount { return &s.PassengerMeal }},
	{"hotelStayCharges", "Hotel Stay", func(s *Sheet) *types.Amount { return &s.HotelStay }},
	{"sightseeingCharges", "Sightseeing", func(s *Sheet) *types.Amount { return &s.Sightseeing }},
	{"guideCharges", "Guide Charges", func(s *Sheet) *types.Amount { return &s.Guide }},
	{"airportPickupCharges", "Airport Pickup/Drop", func(s *Sheet) *types.Amount { return &s.AirportPickup }},
	{"emergencyExpenses", "Emergency Expenses", func(s *Sheet) *types.Amount { return &s.Emergency }},
	{"interstatePermitCharges", "Interstate Permit", func(s *Sheet) *types.Amount { return &s.InterstatePermit }},
	{"greenTaxCharges", "Green Tax", func(s *Sheet) *types.Amount { return &s.GreenTax }},
	{"driverFoodExpenses", "Driver Food", func(s *Sheet) *types.Amount { return &s.DriverFood }},
	{"luggageHandlingCharges", "Luggage Handling", func(s *Sheet) *types.Amount { return &s.LuggageHandling }},
	{"specialZoneCharges", "Special Zone", func(s *Sheet) *types.Amount { return &s.SpecialZone }},
	{"travelInsuranceCharges", "Travel Insurance", func(s *Sheet) *types.Amount { return &s.TravelInsurance }},
	{"documentationCharges", "Documentation", func(s *Sheet) *types.Amount { return &s.Documentation }},
	{"miscellaneousCharges", "Miscellaneous", func(s *Sheet) *types.Amount { return &s.Miscellaneous }},
}
