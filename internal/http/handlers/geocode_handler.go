// README: Geocoding handlers: autocomplete search and reverse lookup.
package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"sairaj/internal/modules/geocode"
	"sairaj/internal/types"
)

// Geocoder is satisfied by *geocode.Service.
type Geocoder interface {
	Search(ctx context.Context, q string) []geocode.Option
	Reverse(ctx context.Context, p types.Point) string
	Snap(ctx context.Context, p types.Point) types.Point
}

type GeocodeHandler struct {
	geocode Geocoder
}

func NewGeocodeHandler(g Geocoder) *GeocodeHandler {
	return &GeocodeHandler{geocode: g}
}

func (h *GeocodeHandler) Search(c *gin.Context) {
	writeJSON(c, http.StatusOK, h.geocode.Search(c.Request.Context(), c.Query("q")))
}

func (h *GeocodeHandler) Reverse(c *gin.Context) {
	p, ok := parsePoint(c.Query("lat"), c.Query("lng"))
	if !ok {
		writeError(c, http.StatusBadRequest, "lat and lng must be valid coordinates")
		return
	}
	label := h.geocode.Reverse(c.Request.Context(), p)
	writeJSON(c, http.StatusOK, geocode.Option{Label: label, Value: p})
}

func parsePoint(lat, lng string) (types.Point, bool) {
	la, err1 := strconv.ParseFloat(lat, 64)
	ln, err2 := strconv.ParseFloat(lng, 64)
	if err1 != nil || err2 != nil || la < -90 || la > 90 || ln < -180 || ln > 180 {
		return types.Point{}, false
	}
	return types.Point{Lat: la, Lng: ln}, true
}
