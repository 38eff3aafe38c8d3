// README: Trip handlers: routing, estimates, quote exports and enquiries.
package handlers

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"sairaj/internal/config"
	"sairaj/internal/modules/enquiry"
	"sairaj/internal/modules/quote"
	"sairaj/internal/modules/route"
	"sairaj/internal/modules/trip"
	"sairaj/internal/types"
)

// Estimator is satisfied by *service.TripPlanner.
type Estimator interface {
	Estimate(ctx context.Context, s trip.State) (trip.Estimate, error)
	Route(ctx context.Context, start, end *types.Endpoint) (route.Route, error)
}

// Enquirer is satisfied by *enquiry.Dispatcher.
type Enquirer interface {
	Dispatch(ctx context.Context, s trip.State, e trip.Estimate, caps enquiry.Capabilities) (enquiry.Status, error)
}

type TripHandler struct {
	trips    Estimator
	geocode  Geocoder
	enquiry  Enquirer
	company  config.CompanyConfig
	validFor time.Duration
	logger   *zap.Logger
}

func NewTripHandler(trips Estimator, geocode Geocoder, enq Enquirer, company config.CompanyConfig, validFor time.Duration, logger *zap.Logger) *TripHandler {
	return &TripHandler{
		trips:    trips,
		geocode:  geocode,
		enquiry:  enq,
		company:  company,
		validFor: validFor,
		logger:   logger,
	}
}

type routeReq struct {
	Start *types.Endpoint `json:"start"`
	End   *types.Endpoint `json:"end"`
	// Snap moves both endpoints onto the nearest road before routing.
	Snap bool `json:"snap"`
}

func (h *TripHandler) Route(c *gin.Context) {
	var req routeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if req.Start == nil || req.End == nil {
		writeTripError(c, trip.ErrMissingEndpoints)
		return
	}
	ctx := c.Request.Context()
	if req.Snap {
		req.Start.Coordinates = h.geocode.Snap(ctx, req.Start.Coordinates)
		req.End.Coordinates = h.geocode.Snap(ctx, req.End.Coordinates)
	}
	r, err := h.trips.Route(ctx, req.Start, req.End)
	if err != nil {
		writeTripError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, r)
}

func (h *TripHandler) Estimate(c *gin.Context) {
	req, ok := bindTrip(c)
	if !ok {
		return
	}
	e, err := h.trips.Estimate(c.Request.Context(), req.State)
	if err != nil {
		writeTripError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, e)
}

func (h *TripHandler) QuotePDF(c *gin.Context) {
	req, ok := bindTrip(c)
	if !ok {
		return
	}
	e, err := h.trips.Estimate(c.Request.Context(), req.State)
	if err != nil {
		writeTripError(c, err)
		return
	}

	in := quote.Input{
		State:       req.State,
		Estimate:    e,
		Company:     h.company,
		GeneratedAt: e.GeneratedAt,
		ValidFor:    h.validFor,
	}
	if req.MapImage != "" {
		img, _, err := quote.DecodeMapImage(req.MapImage)
		if err != nil {
			h.logger.Warn("quote.map_image_rejected", zap.Error(err))
		} else {
			in.MapImage = img
		}
	}

	doc := quote.Build(in)
	var buf bytes.Buffer
	if err := quote.RenderPDF(&buf, doc, h.logger); err != nil {
		writeTripError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, doc.FileName))
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}

type quoteTextResp struct {
	Subject   string `json:"subject"`
	Body      string `json:"body"`
	Clipboard string `json:"clipboard"`
	Share     string `json:"share"`
	FileName  string `json:"fileName"`
}

func (h *TripHandler) QuoteText(c *gin.Context) {
	req, ok := bindTrip(c)
	if !ok {
		return
	}
	e, err := h.trips.Estimate(c.Request.Context(), req.State)
	if err != nil {
		writeTripError(c, err)
		return
	}
	from, to := req.State.Start.Label, req.State.End.Label
	writeJSON(c, http.StatusOK, quoteTextResp{
		Subject:   quote.EmailSubject(req.State),
		Body:      quote.EmailBody(req.State, e, e.GeneratedAt),
		Clipboard: quote.ClipboardText(req.State, e.GrandTotal, e.GeneratedAt),
		Share:     quote.ShareText(req.State, e, h.company),
		FileName:  quote.FileName(from, to, e.GeneratedAt),
	})
}

func (h *TripHandler) Enquiry(c *gin.Context) {
	req, ok := bindTrip(c)
	if !ok {
		return
	}
	if err := req.State.ReadyForEnquiry(); err != nil {
		writeTripError(c, err)
		return
	}
	ctx := c.Request.Context()
	e, err := h.trips.Estimate(ctx, req.State)
	if err != nil {
		writeTripError(c, err)
		return
	}
	status, err := h.enquiry.Dispatch(ctx, req.State, e, req.Capabilities)
	if err != nil {
		writeTripError(c, err)
		return
	}
	code := http.StatusOK
	if !status.Delivered {
		code = http.StatusServiceUnavailable
	}
	writeJSON(c, code, status)
}

func Health(c *gin.Context) {
	c.String(http.StatusOK, "OK")
}
