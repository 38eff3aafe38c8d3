package quote

import (
	"strings"
	"time"

	"sairaj/internal/config"
	"sairaj/internal/modules/expense"
	"sairaj/internal/modules/route"
	"sairaj/internal/modules/trip"
	"sairaj/internal/modules/vehicle"
	"sairaj/internal/types"
)

var (
	generated = time.Date(2024, 3, 1, 10, 35, 9, 0, time.UTC)
	company   = config.CompanyConfig{
		Name:    "SAIRAJ TRAVELS",
		Tagline: "Your Trusted Travel Partner",
		Phone:   "+91 98507 48273",
		Email:   "info@sairaj-travels.com",
	}
	pune   = &types.Endpoint{Label: "Pune, Maharashtra, India", Coordinates: types.Point{Lat: 18.5204, Lng: 73.8567}}
	mumbai = &types.Endpoint{Label: "Navi Mumbai, Maharashtra, India", Coordinates: types.Point{Lat: 19.033, Lng: 73.0297}}
)

func tripState() trip.State {
	s := trip.State{Details: trip.Details{Passengers: 2}}.WithEndpoints(pune, mumbai)
	s, _ = s.SelectVehicle("3")
	s = s.WithCustomer(trip.Customer{Name: "Asha Patil", Phone: "9850748273", Email: "asha@example.com"})
	s = s.WithToggles(trip.Toggles{IncludeDriverAllowance: true})
	s = s.WithExpenses(expense.Sheet{Toll: 400, Custom1: expense.Custom{Name: "Decoration", Amount: 200}})
	return s
}

func estimate(s trip.State) trip.Estimate {
	v := vehicle.Details{
		Vehicle: &vehicle.Vehicle{VehicleID: 3, Name: "Urbania", Capacity: 17},
		Pricing: &vehicle.PricingTier{RatePerKm: 30, MinKmPerDay: 100, ExtraKmRate: 30},
		Charges: &vehicle.Charges{DriverAllowance: 500, NightCharge: 300},
	}
	r := route.Route{Provider: "OSRM", DistanceMeters: 154000, DurationSeconds: 3 * 3600}
	return trip.Assemble(s, r, v, generated)
}

func input() Input {
	s := tripState()
	return Input{State: s, Estimate: estimate(s), Company: company, GeneratedAt: generated}
}

// fixedMeasurer wraps at two millimetres per character.
type fixedMeasurer struct{}

func (fixedMeasurer) LineHeight(style TextStyle) float64 { return style.Size * 0.5 }

func (fixedMeasurer) WrapLines(text string, width float64, _ TextStyle) []string {
	per := int(width / 2)
	if per <= 0 || len(text) <= per {
		return []string{text}
	}
	var lines []string
	for len(text) > per {
		lines = append(lines, text[:per])
		text = strings.TrimSpace(text[per:])
	}
	return append(lines, text)
}

// fixedBlock has a constant height.
type fixedBlock float64

func (b fixedBlock) Height(Measurer, float64) float64 { return float64(b) }

func sectionIDs(doc Document) []string {
	ids := make([]string, 0, len(doc.Sections))
	for _, s := range doc.Sections {
		ids = append(ids, s.ID)
	}
	return ids
}

func labels(sec Section) []string {
	var out []string
	for _, b := range sec.Blocks {
		switch b := b.(type) {
		case RowBlock:
			out = append(out, b.Label)
		case TextBlock:
			out = append(out, b.Text)
		}
	}
	return out
}
