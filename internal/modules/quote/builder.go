package quote

import (
	"fmt"
	"strings"
	"time"

	"sairaj/internal/modules/trip"
)

const (
	SectionHeader   = "header"
	SectionCustomer = "customer"
	SectionRoute    = "route"
	SectionVehicle  = "vehicle"
	SectionCost     = "cost"
	SectionTotal    = "total"
	SectionNotes    = "notes"
	SectionTravel   = "travel"
	SectionBooking  = "booking"
	SectionRequests = "requests"
	SectionMap      = "map"
	SectionTerms    = "terms"
)

var pricingNotes = []string{
	"* All prices are inclusive of applicable taxes where mentioned",
	"* Toll, parking, and permit charges are extra as per actual usage",
	"* Final amount may vary based on actual distance and additional services",
}

var terms = []string{
	"Actual distance, route, and travel time may vary significantly from this estimate.",
	"Final charges will be calculated based on actual kilometers traveled and time taken.",
	"Route calculations are approximate - actual route may differ due to road conditions.",
	"Toll charges, parking fees, interstate permits, and fuel surcharges are extra as per actual.",
	"Driver allowance includes food and accommodation for outstation trips.",
	"Cancellation charges apply as per company policy.",
	"Payment terms: 50% advance, balance on completion based on actual usage.",
	"Vehicle is subject to availability at the time of booking confirmation.",
	"%s reserves the right to adjust pricing based on actual trip requirements.",
}

const defaultValidFor = 7 * 24 * time.Hour

// Build turns a priced trip into the ordered quote sections. Rows with a
// zero amount and empty optional sections are left out.
func Build(in Input) Document {
	now := in.GeneratedAt
	if now.IsZero() {
		now = in.Estimate.GeneratedAt
	}
	validFor := in.ValidFor
	if validFor <= 0 {
		validFor = defaultValidFor
	}
	s, e := in.State, in.Estimate
	from, to := endpointLabels(s)
	ref := Reference(now)

	doc := Document{
		Company:     in.Company,
		GeneratedAt: now,
		Reference:   ref,
		FileName:    FileName(from, to, now),
	}
	add := func(sec Section) {
		if len(sec.Blocks) > 0 {
			doc.Sections = append(doc.Sections, sec)
		}
	}

	add(Section{ID: SectionHeader, Theme: ThemeBrand, Blocks: []Block{BrandBlock{Company: in.Company, Reference: ref}}})
	add(customerSection(s, now))
	add(routeSection(from, to, e))
	add(vehicleSection(s, e))
	add(costSection(e))
	add(Section{
		ID:           SectionTotal,
		Theme:        ThemeTotal,
		Blocks:       []Block{TotalBlock{Label: "GRAND TOTAL:", Value: e.GrandTotal.Rupees()}},
		KeepTogether: true,
	})
	add(notesSection())
	add(travelSection(s, e, from, to))
	add(bookingSection(now, validFor, ref))
	add(requestsSection(s))
	if len(in.MapImage) > 0 {
		add(Section{
			ID:     SectionMap,
			Title:  "ROUTE MAP",
			Theme:  ThemeGray,
			Blocks: []Block{ImageBlock{Name: "route-map", Data: in.MapImage}},
		})
	}
	add(termsSection(in.Company.Name))
	return doc
}

func field(label, value string) Block {
	return RowBlock{Label: label, Value: value, Style: RowField}
}

func customerSection(s trip.State, now time.Time) Section {
	d := s.Details
	return Section{
		ID:    SectionCustomer,
		Title: "CUSTOMER INFORMATION",
		Theme: ThemeBlue,
		Blocks: []Block{
			field("Customer Name:", d.CustomerName),
			field("Phone Number:", d.CustomerPhone),
			field("Email Address:", orDefault(d.CustomerEmail, "Not provided")),
			field("Quote Generated:", stamp(now)),
		},
	}
}

func routeSection(from, to string, e trip.Estimate) Section {
	return Section{
		ID:    SectionRoute,
		Title: "ROUTE INFORMATION",
		Theme: ThemeGray,
		Blocks: []Block{
			field("From:", from),
			field("To:", to),
			field("Distance:", fmt.Sprintf("%.1f km", e.DistanceKm)),
			field("Duration:", durationText(e.DurationMinutes)),
		},
	}
}

func vehicleSection(s trip.State, e trip.Estimate) Section {
	sec := Section{ID: SectionVehicle, Title: "VEHICLE & TRIP DETAILS", Theme: ThemeBlue}
	v := e.Vehicle.Vehicle
	if v == nil {
		return sec
	}
	tripType := "One Way"
	if s.Details.RoundTrip {
		tripType = "Round Trip"
	}
	rate, minKm := "N/A", "N/A"
	if p := e.Vehicle.Pricing; p != nil {
		if p.RatePerKm > 0 {
			rate = fmt.Sprintf("Rs %s/km", number(p.RatePerKm.Float()))
		}
		if p.MinKmPerDay > 0 {
			minKm = fmt.Sprintf("%s km", number(p.MinKmPerDay.Float()))
		}
	}
	sec.Blocks = []Block{
		field("Vehicle Type:", v.Name),
		field("Seating Capacity:", fmt.Sprintf("%d seater", v.Capacity)),
		field("Passengers Booked:", fmt.Sprint(s.Details.Passengers)),
		field("Trip Type:", tripType),
		field("Rate per KM:", rate),
		field("Minimum KM/Day:", minKm),
	}
	return sec
}

func costSection(e trip.Estimate) Section {
	sec := Section{ID: SectionCost, Title: "DETAILED COST BREAKDOWN", Theme: ThemeDark}
	f := e.Fare
	if e.VehicleSubtotal > 0 {
		sec.Blocks = append(sec.Blocks, RowBlock{Label: "VEHICLE CHARGES:", Style: RowHeading})
		for _, row := range []struct {
			label  string
			amount float64
		}{
			{"Base Fare (Distance + Time):", f.BaseFare.Float()},
			{"Driver Allowance:", f.FinalDriverAllowance.Float()},
			{"Night Stay Allowance:", f.FinalNightStayAllowance.Float()},
		} {
			if row.amount > 0 {
				sec.Blocks = append(sec.Blocks, RowBlock{Label: row.label, Value: fmt.Sprintf("Rs %.2f", row.amount), Style: RowAmount})
			}
		}
		sec.Blocks = append(sec.Blocks,
			RuleBlock{},
			RowBlock{Label: "Vehicle Subtotal:", Value: e.VehicleSubtotal.Rupees(), Style: RowSubtotal},
		)
	}
	if e.ExpensesTotal > 0 && len(e.Expenses) > 0 {
		sec.Blocks = append(sec.Blocks, RowBlock{Label: "ADDITIONAL EXPENSES:", Style: RowHeading})
		for _, it := range e.Expenses {
			sec.Blocks = append(sec.Blocks, RowBlock{Label: it.Label + ":", Value: it.Amount.Rupees(), Style: RowAmount})
		}
		sec.Blocks = append(sec.Blocks,
			RuleBlock{},
			RowBlock{Label: "Additional Subtotal:", Value: e.ExpensesTotal.Rupees(), Style: RowSubtotal},
		)
	}
	return sec
}

func notesSection() Section {
	sec := Section{ID: SectionNotes, Theme: ThemePlain}
	for _, n := range pricingNotes {
		sec.Blocks = append(sec.Blocks, TextBlock{Text: n, Style: styleNote})
	}
	return sec
}

func travelSection(s trip.State, e trip.Estimate, from, to string) Section {
	d := s.Details
	duration := "N/A"
	if e.DurationMinutes > 0 {
		duration = fmt.Sprintf("%d minutes (%.1f hours)", int(e.DurationMinutes+0.5), e.DurationMinutes/60)
	}
	return Section{
		ID:    SectionTravel,
		Title: "TRAVEL INFORMATION",
		Theme: ThemeBlue,
		Blocks: []Block{
			field("Departure Date:", orDefault(d.DepartureDate, "To be confirmed")),
			field("Return Date:", orDefault(d.ReturnDate, "To be confirmed")),
			field("Departure Time:", orDefault(d.DepartureTime, "To be confirmed")),
			field("Pickup Location:", orDefault(d.PickupLocation, orDefault(from, "As per route"))),
			field("Drop Location:", orDefault(d.DropLocation, orDefault(to, "As per route"))),
			field("Estimated Duration:", duration),
			field("Route Type:", routeType(e)),
		},
	}
}

func bookingSection(now time.Time, validFor time.Duration, ref string) Section {
	return Section{
		ID:    SectionBooking,
		Title: "BOOKING SUMMARY",
		Theme: ThemeGray,
		Blocks: []Block{
			field("Quote Generated:", day(now)),
			field("Quote Valid Until:", day(now.Add(validFor))),
			field("Booking Status:", "Quote/Estimate Only"),
			field("Payment Terms:", "50% Advance, 50% on Completion"),
			field("Quote Reference:", ref),
		},
	}
}

func requestsSection(s trip.State) Section {
	sec := Section{ID: SectionRequests, Title: "SPECIAL REQUESTS & NOTES", Theme: ThemeAmber}
	for _, line := range strings.Split(s.Details.SpecialRequests, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			sec.Blocks = append(sec.Blocks, TextBlock{Text: line, Style: styleBody})
		}
	}
	return sec
}

func termsSection(company string) Section {
	if company == "" {
		company = "Sairaj Travels"
	}
	sec := Section{
		ID:    SectionTerms,
		Title: "TERMS & CONDITIONS",
		Theme: ThemeRed,
		Blocks: []Block{
			TextBlock{Text: "IMPORTANT NOTICE:", Style: styleBodyBold},
			TextBlock{Text: "This quote is generated using free mapping services and is for estimation only.", Style: styleTerms},
		},
	}
	for _, t := range terms {
		if strings.Contains(t, "%s") {
			t = fmt.Sprintf(t, company)
		}
		sec.Blocks = append(sec.Blocks, TextBlock{Text: t, Style: styleTerms, Bullet: true})
	}
	return sec
}
