package enquiry

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"sairaj/internal/config"
	"sairaj/internal/modules/quote"
	"sairaj/internal/modules/trip"
)

type Dispatcher struct {
	publisher Publisher
	recipient string
	maxMailto int
	company   config.CompanyConfig
	logger    *zap.Logger
	now       func() time.Time
	newID     func() string
}

// NewDispatcher builds the tiered dispatcher. publisher may be nil, in which
// case the service tier is skipped.
func NewDispatcher(publisher Publisher, recipient string, maxMailto int, company config.CompanyConfig, logger *zap.Logger) *Dispatcher {
	return &Dispatcher{
		publisher: publisher,
		recipient: recipient,
		maxMailto: maxMailto,
		company:   company,
		logger:    logger,
		now:       time.Now,
		newID:     uuid.NewString,
	}
}

// Dispatch validates the enquiry then tries the service, mailto and
// clipboard tiers in order. Only validation errors are returned; delivery
// failure is reported through the status.
func (d *Dispatcher) Dispatch(ctx context.Context, s trip.State, e trip.Estimate, caps Capabilities) (Status, error) {
	if err := s.ReadyForEnquiry(); err != nil {
		return Status{}, err
	}
	now := d.now()
	subject := quote.EmailSubject(s)
	body := quote.EmailBody(s, e, now)
	id := d.newID()
	log := d.logger.With(zap.String("enquiry_id", id))

	if err := d.publish(ctx, id, subject, body, s, e, now); err != nil {
		log.Warn("enquiry.service_failed", zap.Error(err))
	} else {
		log.Info("enquiry.sent", zap.String("tier", string(TierService)))
		return d.status(TierService, id), nil
	}

	if caps.Mailto {
		link, err := MailtoURL(d.recipient, subject, body, d.maxMailto)
		if err == nil {
			log.Info("enquiry.sent", zap.String("tier", string(TierMailto)))
			st := d.status(TierMailto, id)
			st.Mailto = link
			return st, nil
		}
		log.Warn("enquiry.mailto_failed", zap.Error(err))
	}

	if caps.Clipboard {
		log.Info("enquiry.sent", zap.String("tier", string(TierClipboard)))
		st := d.status(TierClipboard, id)
		st.Clipboard = quote.ClipboardText(s, e.GrandTotal, now)
		return st, nil
	}

	log.Warn("enquiry.undelivered")
	return Status{Tier: TierNone, Message: messageFor(TierNone, d.company), ID: id}, nil
}

func (d *Dispatcher) publish(ctx context.Context, id, subject, body string, s trip.State, e trip.Estimate, now time.Time) error {
	if d.publisher == nil {
		return ErrNotConfigured
	}
	from, to := "", ""
	if s.Start != nil {
		from = s.Start.Label
	}
	if s.End != nil {
		to = s.End.Label
	}
	return d.publisher.Publish(ctx, Message{
		ID:         id,
		Subject:    subject,
		Body:       body,
		Customer:   s.Customer(),
		From:       from,
		To:         to,
		GrandTotal: e.GrandTotal,
		State:      s,
		Estimate:   e,
		CreatedAt:  now,
	})
}

func (d *Dispatcher) status(t Tier, id string) Status {
	return Status{Tier: t, Delivered: true, Message: messageFor(t, d.company), ID: id}
}

// MailtoURL builds a mailto link with percent-encoded subject and body. A
// non-positive limit disables the length check.
func MailtoURL(recipient, subject, body string, limit int) (string, error) {
	link := "mailto:" + recipient + "?subject=" + encodeComponent(subject) + "&body=" + encodeComponent(body)
	if limit > 0 && len(link) > limit {
		return "", ErrMailtoTooLong
	}
	return link, nil
}

// encodeComponent escapes spaces as %20; mail clients do not decode '+'.
func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
