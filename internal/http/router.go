// README: HTTP router registration.
package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"sairaj/internal/config"
	"sairaj/internal/http/handlers"
	"sairaj/internal/http/middleware"
)

type RouterDeps struct {
	Geocode  handlers.Geocoder
	Vehicles handlers.Vehicles
	Trips    handlers.Estimator
	Enquiry  handlers.Enquirer
	Company  config.CompanyConfig
	ValidFor time.Duration
	Logger   *zap.Logger
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logging(deps.Logger), middleware.Recovery(deps.Logger))

	r.GET("/health", handlers.Health)

	api := r.Group("/api")

	geocodeHandler := handlers.NewGeocodeHandler(deps.Geocode)
	api.GET("/geocode/search", geocodeHandler.Search)
	api.GET("/geocode/reverse", geocodeHandler.Reverse)

	vehicleHandler := handlers.NewVehicleHandler(deps.Vehicles)
	api.GET("/vehicles/types", vehicleHandler.Types)
	api.GET("/vehicles/:id/details", vehicleHandler.Details)

	tripHandler := handlers.NewTripHandler(deps.Trips, deps.Geocode, deps.Enquiry, deps.Company, deps.ValidFor, deps.Logger)
	api.POST("/trips/route", tripHandler.Route)
	api.POST("/trips/estimate", tripHandler.Estimate)
	api.POST("/trips/quote.pdf", tripHandler.QuotePDF)
	api.POST("/trips/quote.txt", tripHandler.QuoteText)
	api.POST("/trips/enquiry", tripHandler.Enquiry)

	return r
}
