// README: Base handler utilities (JSON helpers, error mapping, shared request types).
package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"sairaj/internal/modules/enquiry"
	"sairaj/internal/modules/trip"
	"sairaj/internal/modules/vehicle"
)

type errorResponse struct {
	Error string `json:"error"`
}

// tripRequest is the body of every /api/trips endpoint. MapImage and
// Capabilities are only read by the quote and enquiry endpoints.
type tripRequest struct {
	State        trip.State           `json:"state"`
	MapImage     string               `json:"mapImage"`
	Capabilities enquiry.Capabilities `json:"capabilities"`
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Error: msg})
}

func writeTripError(c *gin.Context, err error) {
	_ = c.Error(err)
	switch {
	case errors.Is(err, trip.ErrMissingEndpoints), errors.Is(err, trip.ErrIncompleteCustomer):
		writeError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, vehicle.ErrNotFound):
		writeError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		writeError(c, http.StatusGatewayTimeout, "upstream timeout")
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}

func bindTrip(c *gin.Context) (tripRequest, bool) {
	var req tripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return req, false
	}
	return req, true
}
