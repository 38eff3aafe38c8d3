package quote

import (
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"sairaj/internal/config"
	"sairaj/internal/modules/trip"
	"sairaj/internal/types"
)

var ErrEmptyImage = errors.New("map image is empty")

var india = loadIndia()

func loadIndia() *time.Location {
	loc, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		return time.FixedZone("IST", 5*3600+1800)
	}
	return loc
}

// stamp formats like the en-IN locale, e.g. "3/1/2024, 4:05:09 pm".
func stamp(t time.Time) string {
	return t.In(india).Format("2/1/2006, 3:04:05 pm")
}

func day(t time.Time) string {
	return t.In(india).Format("2/1/2006")
}

// Reference is "ST-" plus the last six digits of the Unix millisecond clock.
func Reference(t time.Time) string {
	ms := strconv.FormatInt(t.UnixMilli(), 10)
	if len(ms) > 6 {
		ms = ms[len(ms)-6:]
	}
	return "ST-" + ms
}

var whitespace = regexp.MustCompile(`\s+`)

// placeName is the first comma-separated part of an endpoint label.
func placeName(label string) string {
	name, _, _ := strings.Cut(label, ",")
	return name
}

// FileName is Sairaj_Travels_Trip_<From>_to_<To>_<YYYY-MM-DD>.pdf.
func FileName(from, to string, t time.Time) string {
	clean := func(label string) string {
		return whitespace.ReplaceAllString(placeName(label), "_")
	}
	return fmt.Sprintf("Sairaj_Travels_Trip_%s_to_%s_%s.pdf", clean(from), clean(to), t.UTC().Format("2006-01-02"))
}

// number prints like a JavaScript number: 30, 32.5.
func number(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func orDefault(v, fallback string) string {
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	return v
}

func durationText(minutes float64) string {
	if minutes <= 0 {
		return "N/A"
	}
	return fmt.Sprintf("%d minutes", int(minutes+0.5))
}

func routeType(e trip.Estimate) string {
	if e.Route.Fallback {
		return "Approximate Route"
	}
	return "Optimized Route"
}

func endpointLabels(s trip.State) (string, string) {
	var from, to string
	if s.Start != nil {
		from = s.Start.Label
	}
	if s.End != nil {
		to = s.End.Label
	}
	return from, to
}

// EmailSubject names the customer and the two places.
func EmailSubject(s trip.State) string {
	from, to := endpointLabels(s)
	return fmt.Sprintf("New Trip Inquiry - %s (%s to %s)", s.Details.CustomerName, placeName(from), placeName(to))
}

// EmailBody is the plaintext enquiry sent to the agency.
func EmailBody(s trip.State, e trip.Estimate, now time.Time) string {
	from, to := endpointLabels(s)
	d := s.Details
	var b strings.Builder

	b.WriteString("SAIRAJ TRAVELS - NEW TRIP INQUIRY\n\n")

	b.WriteString("CUSTOMER DETAILS:\n")
	fmt.Fprintf(&b, "Name: %s\nPhone: %s\nEmail: %s\n\n", d.CustomerName, d.CustomerPhone, d.CustomerEmail)

	b.WriteString("ROUTE DETAILS:\n")
	fmt.Fprintf(&b, "From: %s\nTo: %s\n", from, to)
	fmt.Fprintf(&b, "Distance: %.1f km\n", e.DistanceKm)
	fmt.Fprintf(&b, "Duration: %s\n", durationText(e.DurationMinutes))
	fmt.Fprintf(&b, "Route Type: %s\n\n", routeType(e))

	b.WriteString("VEHICLE DETAILS:\n")
	if v := e.Vehicle.Vehicle; v != nil {
		fmt.Fprintf(&b, "Vehicle: %s\nCapacity: %d seater\nPassengers: %d\n\n", v.Name, v.Capacity, d.Passengers)
	} else {
		b.WriteString("Not selected yet\n\n")
	}

	b.WriteString("COST BREAKDOWN:\n")
	f := e.Fare
	if f.BaseFare > 0 {
		fmt.Fprintf(&b, "Base Fare: %s\n", f.BaseFare.Rupees())
	}
	if f.FinalDriverAllowance > 0 {
		fmt.Fprintf(&b, "Driver Allowance: %s\n", f.FinalDriverAllowance.Rupees())
	}
	if f.FinalNightStayAllowance > 0 {
		fmt.Fprintf(&b, "Night Stay: %s\n", f.FinalNightStayAllowance.Rupees())
	}
	if e.ExpensesTotal > 0 {
		fmt.Fprintf(&b, "Additional Expenses: %s\n", e.ExpensesTotal.Rupees())
	}
	fmt.Fprintf(&b, "GRAND TOTAL: %s\n\n", e.GrandTotal.Rupees())

	b.WriteString("TRAVEL DATES:\n")
	fmt.Fprintf(&b, "Departure Date: %s\n", orDefault(d.DepartureDate, "Not specified"))
	fmt.Fprintf(&b, "Return Date: %s\n", orDefault(d.ReturnDate, "Not specified"))
	fmt.Fprintf(&b, "Departure Time: %s\n", orDefault(d.DepartureTime, "Not specified"))
	fmt.Fprintf(&b, "Pickup Location: %s\n", orDefault(d.PickupLocation, orDefault(from, "As per route")))
	fmt.Fprintf(&b, "Drop Location: %s\n\n", orDefault(d.DropLocation, orDefault(to, "As per route")))

	b.WriteString("SPECIAL REQUESTS:\n")
	b.WriteString(orDefault(d.SpecialRequests, "None"))
	b.WriteString("\n\n")

	b.WriteString("ADDITIONAL EXPENSES BREAKDOWN:\n")
	for _, it := range e.Expenses {
		fmt.Fprintf(&b, "- %s: Rs %s\n", it.Label, number(it.Amount.Float()))
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "INQUIRY GENERATED ON: %s\n\n", stamp(now))
	b.WriteString("Please confirm availability and provide final quote.\n\n")
	b.WriteString("Best regards,\nSairaj Travels Website System")
	return b.String()
}

// ClipboardText is the short summary handed back when nothing else worked.
func ClipboardText(s trip.State, grandTotal types.Amount, now time.Time) string {
	from, to := endpointLabels(s)
	d := s.Details
	return fmt.Sprintf("SAIRAJ TRAVELS INQUIRY\nCustomer: %s\nPhone: %s\nEmail: %s\nRoute: %s to %s\nTotal Cost: %s\nGenerated: %s",
		d.CustomerName, d.CustomerPhone, d.CustomerEmail, from, to, grandTotal.Rupees(), stamp(now))
}

// ShareText is a customer-facing summary for messaging apps.
func ShareText(s trip.State, e trip.Estimate, company config.CompanyConfig) string {
	from, to := endpointLabels(s)
	return fmt.Sprintf("Check out this trip from %s to %s!\n\nDistance: %.2f km\nDuration: %.2f hours\nTotal Cost: %s\n\nBook with %s: %s",
		from, to, e.DistanceKm, e.DurationMinutes/60, e.GrandTotal.Rupees(), company.Name, company.Phone)
}

// DecodeMapImage accepts plain base64 or a data URL and checks the payload
// is a JPEG or PNG.
func DecodeMapImage(encoded string) ([]byte, string, error) {
	encoded = strings.TrimSpace(encoded)
	if _, payload, ok := strings.Cut(encoded, ";base64,"); ok {
		encoded = payload
	}
	if encoded == "" {
		return nil, "", ErrEmptyImage
	}
	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, "", fmt.Errorf("decoding map image: %w", err)
	}
	kind, err := imageType(data)
	if err != nil {
		return nil, "", err
	}
	return data, kind, nil
}

func imageType(data []byte) (string, error) {
	switch ct := http.DetectContentType(data); ct {
	case "image/jpeg":
		return "JPG", nil
	case "image/png":
		return "PNG", nil
	default:
		return "", fmt.Errorf("unsupported map image type %q", ct)
	}
}
