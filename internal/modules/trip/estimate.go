package trip

import (
	"time"

	"sairaj/internal/modules/expense"
	"sairaj/internal/modules/pricing"
	"sairaj/internal/modules/route"
	"sairaj/internal/modules/vehicle"
)

const (
	WarnFallbackRates = "Using fallback rates. Final pricing may differ."
	WarnApproxRoute   = "Approximate Route. Actual route may differ due to road conditions."
)

// Assemble prices the trip from an already planned route and the loaded
// vehicle details. Round trips double distance and duration.
func Assemble(s State, r route.Route, v vehicle.Details, now time.Time) Estimate {
	km := r.DistanceKm()
	if km <= 0 && s.HasEndpoints() {
		km = route.EstimateRoadDistance(&s.Start.Coordinates, &s.End.Coordinates)
	}
	minutes := r.DurationMinutes()
	if s.Details.RoundTrip {
		km *= 2
		minutes *= 2
	}

	fare := pricing.Calculate(pricing.Input{
		DistanceKm:             km,
		VehicleSelected:        s.Details.VehicleID != "",
		Pricing:                v.Pricing,
		Charges:                v.Charges,
		IncludeDriverAllowance: s.Toggles.IncludeDriverAllowance,
		IncludeNightStay:       s.Toggles.IncludeNightStay,
		DepartureDate:          s.Details.DepartureDate,
		ReturnDate:             s.Details.ReturnDate,
	})

	subtotal := fare.BaseFare + fare.FinalDriverAllowance + fare.FinalNightStayAllowance
	extras := s.Expenses.Total()

	e := Estimate{
		Route:           r,
		DistanceKm:      km,
		DurationMinutes: minutes,
		Vehicle:         v,
		Fare:            fare,
		VehicleSubtotal: subtotal,
		Expenses:        s.Expenses.NonZero(),
		ExpensesTotal:   extras,
		GrandTotal:      fare.TotalAmount + extras,
		GeneratedAt:     now,
	}
	if e.Expenses == nil {
		e.Expenses = []expense.Item{}
	}
	if v.Warning != "" {
		e.Warnings = append(e.Warnings, v.Warning)
	}
	if fare.IsFallback {
		e.Warnings = append(e.Warnings, WarnFallbackRates)
	}
	if r.Fallback {
		e.Warnings = append(e.Warnings, WarnApproxRoute)
	}
	return e
}
