package trip

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sairaj/internal/modules/expense"
	"sairaj/internal/modules/route"
	"sairaj/internal/modules/vehicle"
	"sairaj/internal/types"
)

var now = time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

func pricedVehicle() vehicle.Details {
	return vehicle.Details{
		Vehicle: &vehicle.Vehicle{VehicleID: 3, Name: "Urbania", Capacity: 17},
		Pricing: &vehicle.PricingTier{RatePerKm: 30, MinKmPerDay: 100, ExtraKmRate: 30},
		Charges: &vehicle.Charges{DriverAllowance: 500, NightCharge: 300},
	}
}

func TestAssemble_GrandTotal(t *testing.T) {
	s := State{}.WithEndpoints(pune, mumbai)
	s, _ = s.SelectVehicle("3")
	s = s.WithToggles(Toggles{IncludeDriverAllowance: true})
	s = s.WithExpenses(expense.Sheet{Toll: 400, Custom1: expense.Custom{Name: "Decoration", Amount: 200}})

	r := route.Route{Provider: "OSRM", DistanceMeters: 154000, DurationSeconds: 3 * 3600}
	e := Assemble(s, r, pricedVehicle(), now)

	assert.InDelta(t, 154.0, e.DistanceKm, 1e-9)
	assert.InDelta(t, 180.0, e.DurationMinutes, 1e-9)
	assert.Equal(t, types.Amount(4620), e.Fare.BaseFare)
	assert.Equal(t, types.Amount(5120), e.VehicleSubtotal)
	assert.Equal(t, types.Amount(600), e.ExpensesTotal)
	assert.Equal(t, types.Amount(5720), e.GrandTotal)
	require.Len(t, e.Expenses, 2)
	assert.Empty(t, e.Warnings)
	assert.Equal(t, now, e.GeneratedAt)
}

func TestAssemble_RoundTripDoubles(t *testing.T) {
	s := State{Details: Details{VehicleID: "3", RoundTrip: true}}.WithEndpoints(pune, mumbai)
	r := route.Route{DistanceMeters: 154000, DurationSeconds: 3600}

	e := Assemble(s, r, pricedVehicle(), now)

	assert.InDelta(t, 308.0, e.DistanceKm, 1e-9)
	assert.InDelta(t, 120.0, e.DurationMinutes, 1e-9)
	assert.Equal(t, types.Amount(100*30+208*30), e.Fare.BaseFare)
}

func TestAssemble_FallbacksProduceWarnings(t *testing.T) {
	s := State{Details: Details{VehicleID: "3"}}.WithEndpoints(pune, mumbai)
	r := route.StraightLine(pune.Coordinates, mumbai.Coordinates)

	e := Assemble(s, r, vehicle.Details{Warning: vehicle.WarnLoadFailed}, now)

	assert.True(t, e.Fare.IsFallback)
	assert.Equal(t, []string{vehicle.WarnLoadFailed, WarnFallbackRates, WarnApproxRoute}, e.Warnings)
	assert.NotNil(t, e.Expenses)
}

func TestAssemble_ZeroDistanceUsesEstimator(t *testing.T) {
	s := State{Details: Details{VehicleID: "3"}}.WithEndpoints(pune, mumbai)

	e := Assemble(s, route.Route{}, pricedVehicle(), now)

	want := route.EstimateRoadDistance(&pune.Coordinates, &mumbai.Coordinates)
	assert.InDelta(t, want, e.DistanceKm, 1e-9)
	assert.Positive(t, e.GrandTotal.Float())
}

func TestAssemble_NoVehicleIsZeroFare(t *testing.T) {
	s := State{}.WithEndpoints(pune, mumbai).WithExpenses(expense.Sheet{Parking: 100})

	e := Assemble(s, route.Route{DistanceMeters: 50000}, vehicle.Details{}, now)

	assert.Zero(t, e.Fare.TotalAmount)
	assert.Equal(t, types.Amount(100), e.GrandTotal)
}
