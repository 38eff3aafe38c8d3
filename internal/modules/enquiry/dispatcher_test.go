package enquiry

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"sairaj/internal/config"
	"sairaj/internal/modules/route"
	"sairaj/internal/modules/trip"
	"sairaj/internal/modules/vehicle"
	"sairaj/internal/types"
)

var company = config.CompanyConfig{Name: "SAIRAJ TRAVELS", Phone: "+91 98507 48273", Email: "info@sairaj-travels.com"}

type fakePublisher struct {
	err  error
	sent []Message
}

func (f *fakePublisher) Publish(_ context.Context, msg Message) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, msg)
	return nil
}

func readyState() trip.State {
	s := trip.State{}.WithEndpoints(
		&types.Endpoint{Label: "Pune, Maharashtra, India", Coordinates: types.Point{Lat: 18.5204, Lng: 73.8567}},
		&types.Endpoint{Label: "Mumbai, Maharashtra, India", Coordinates: types.Point{Lat: 19.076, Lng: 72.8777}},
	)
	return s.WithCustomer(trip.Customer{Name: "Asha Patil", Phone: "9850748273", Email: "asha@example.com"})
}

func readyEstimate(s trip.State) trip.Estimate {
	r := route.Route{Provider: "OSRM", DistanceMeters: 150000, DurationSeconds: 3 * 3600}
	return trip.Assemble(s, r, vehicle.Details{}, time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC))
}

func newDispatcher(p Publisher, maxMailto int) *Dispatcher {
	d := NewDispatcher(p, "info@sairaj-travels.com", maxMailto, company, zap.NewNop())
	d.now = func() time.Time { return time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC) }
	d.newID = func() string { return "enq-1" }
	return d
}

func TestDispatch_ServiceTier(t *testing.T) {
	pub := &fakePublisher{}
	s := readyState()

	st, err := newDispatcher(pub, 8000).Dispatch(context.Background(), s, readyEstimate(s), Capabilities{Mailto: true, Clipboard: true})

	require.NoError(t, err)
	assert.Equal(t, TierService, st.Tier)
	assert.True(t, st.Delivered)
	assert.Equal(t, "Trip details sent successfully to Sairaj team via email! They will contact you soon.", st.Message)
	require.Len(t, pub.sent, 1)
	msg := pub.sent[0]
	assert.Equal(t, "enq-1", msg.ID)
	assert.Equal(t, "New Trip Inquiry - Asha Patil (Pune to Mumbai)", msg.Subject)
	assert.Equal(t, "asha@example.com", msg.Customer.Email)
	assert.Equal(t, "Pune, Maharashtra, India", msg.From)
}

func TestDispatch_FallsThroughTiers(t *testing.T) {
	down := &fakePublisher{err: errors.New("broker unreachable")}

	tests := []struct {
		name      string
		publisher Publisher
		maxMailto int
		caps      Capabilities
		tier      Tier
		delivered bool
		message   string
	}{
		{
			name:      "no service falls back to mailto",
			maxMailto: 8000,
			caps:      Capabilities{Mailto: true, Clipboard: true},
			tier:      TierMailto,
			delivered: true,
			message:   "Email client opened with trip details! Please send the email to complete your inquiry to Sairaj team.",
		},
		{
			name:      "service down falls back to mailto",
			publisher: down,
			maxMailto: 8000,
			caps:      Capabilities{Mailto: true},
			tier:      TierMailto,
			delivered: true,
		},
		{
			name:      "mailto too long falls back to clipboard",
			publisher: down,
			maxMailto: 100,
			caps:      Capabilities{Mailto: true, Clipboard: true},
			tier:      TierClipboard,
			delivered: true,
			message:   "Could not send email automatically. Trip details copied to clipboard! Please email them to info@sairaj-travels.com or call +91 98507 48273",
		},
		{
			name:      "nothing available",
			publisher: down,
			caps:      Capabilities{},
			tier:      TierNone,
			message:   "Could not send email. Please contact Sairaj team directly at +91 98507 48273 or info@sairaj-travels.com",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := readyState()
			st, err := newDispatcher(tt.publisher, tt.maxMailto).Dispatch(context.Background(), s, readyEstimate(s), tt.caps)

			require.NoError(t, err)
			assert.Equal(t, tt.tier, st.Tier)
			assert.Equal(t, tt.delivered, st.Delivered)
			assert.NotEmpty(t, st.Message)
			if tt.message != "" {
				assert.Equal(t, tt.message, st.Message)
			}
			switch tt.tier {
			case TierMailto:
				assert.True(t, strings.HasPrefix(st.Mailto, "mailto:info@sairaj-travels.com?subject="))
			case TierClipboard:
				assert.Contains(t, st.Clipboard, "SAIRAJ TRAVELS INQUIRY")
			}
		})
	}
}

func TestDispatch_RejectsIncompleteEnquiry(t *testing.T) {
	pub := &fakePublisher{}
	d := newDispatcher(pub, 8000)

	s := readyState().WithCustomer(trip.Customer{Name: "Asha", Phone: "12345", Email: "asha@example.com"})
	_, err := d.Dispatch(context.Background(), s, trip.Estimate{}, Capabilities{Mailto: true})
	assert.ErrorIs(t, err, trip.ErrIncompleteCustomer)

	_, err = d.Dispatch(context.Background(), trip.State{}, trip.Estimate{}, Capabilities{Mailto: true})
	assert.ErrorIs(t, err, trip.ErrMissingEndpoints)
	assert.Empty(t, pub.sent)
}

func TestMailtoURL(t *testing.T) {
	link, err := MailtoURL("info@sairaj-travels.com", "Trip A & B", "Line one\nTotal: Rs 5+1", 0)
	require.NoError(t, err)

	assert.Equal(t, "mailto:info@sairaj-travels.com?subject=Trip%20A%20%26%20B&body=Line%20one%0ATotal%3A%20Rs%205%2B1", link)
	u, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "Trip A & B", u.Query().Get("subject"))

	_, err = MailtoURL("a@b.co", "s", strings.Repeat("x", 200), 100)
	assert.ErrorIs(t, err, ErrMailtoTooLong)
}
