// README: Enquiry delivery model: tiers, status messages, and the published message.
package enquiry

import (
	"errors"
	"fmt"
	"time"

	"sairaj/internal/config"
	"sairaj/internal/modules/trip"
	"sairaj/internal/types"
)

var (
	ErrNotConfigured = errors.New("enquiry service not configured")
	ErrMailtoTooLong = errors.New("mailto link too long")
)

type Tier string

const (
	TierService   Tier = "service"
	TierMailto    Tier = "mailto"
	TierClipboard Tier = "clipboard"
	TierNone      Tier = "none"
)

// Capabilities are the client-side delivery channels the caller can use.
type Capabilities struct {
	Mailto    bool `json:"mailto"`
	Clipboard bool `json:"clipboard"`
}

// Status is what the user is told. Delivered is false only when every tier
// failed.
type Status struct {
	Tier      Tier   `json:"tier"`
	Delivered bool   `json:"delivered"`
	Message   string `json:"message"`
	ID        string `json:"id,omitempty"`
	Mailto    string `json:"mailto,omitempty"`
	Clipboard string `json:"clipboard,omitempty"`
}

// Message is the enquiry published to the agency topic.
type Message struct {
	ID         string        `json:"id"`
	Subject    string        `json:"subject"`
	Body       string        `json:"body"`
	Customer   trip.Customer `json:"customer"`
	From       string        `json:"from"`
	To         string        `json:"to"`
	GrandTotal types.Amount  `json:"grandTotal"`
	State      trip.State    `json:"state"`
	Estimate   trip.Estimate `json:"estimate"`
	CreatedAt  time.Time     `json:"createdAt"`
}

func messageFor(t Tier, c config.CompanyConfig) string {
	switch t {
	case TierService:
		return "Trip details sent successfully to Sairaj team via email! They will contact you soon."
	case TierMailto:
		return "Email client opened with trip details! Please send the email to complete your inquiry to Sairaj team."
	case TierClipboard:
		return fmt.Sprintf("Could not send email automatically. Trip details copied to clipboard! Please email them to %s or call %s", c.Email, c.Phone)
	default:
		return fmt.Sprintf("Could not send email. Please contact Sairaj team directly at %s or %s", c.Phone, c.Email)
	}
}
