// README: Vehicle handlers: selectable types and per-vehicle pricing details.
package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"sairaj/internal/modules/vehicle"
)

// Vehicles is satisfied by *vehicle.Service.
type Vehicles interface {
	Load(ctx context.Context, id string) (vehicle.Details, error)
	Types(ctx context.Context) []vehicle.Type
}

type VehicleHandler struct {
	vehicles Vehicles
}

func NewVehicleHandler(v Vehicles) *VehicleHandler {
	return &VehicleHandler{vehicles: v}
}

func (h *VehicleHandler) Types(c *gin.Context) {
	writeJSON(c, http.StatusOK, h.vehicles.Types(c.Request.Context()))
}

func (h *VehicleHandler) Details(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		writeError(c, http.StatusBadRequest, "missing vehicle id")
		return
	}
	d, err := h.vehicles.Load(c.Request.Context(), id)
	if err != nil {
		writeTripError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, d)
}
