// README: Entry point; loads config, wires routing, vehicle, quote and enquiry services, starts the HTTP server.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"googlemaps.github.io/maps"

	"sairaj/internal/config"
	httptransport "sairaj/internal/http"
	"sairaj/internal/infra"
	"sairaj/internal/modules/enquiry"
	"sairaj/internal/modules/geocode"
	"sairaj/internal/modules/route"
	"sairaj/internal/modules/vehicle"
	"sairaj/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := infra.NewLogger(cfg.App.Env, "sairaj-api")
	if err != nil {
		log.Fatalf("logger init: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if cfg.App.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	routingClient := &http.Client{Timeout: cfg.Routing.Timeout}
	backendClient := &http.Client{Timeout: cfg.Backend.Timeout}

	// Vehicle data comes straight from Postgres when a DSN is set, otherwise
	// from the backend REST API.
	var source vehicle.Source
	if cfg.DB.DSN != "" {
		dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
		if err != nil {
			logger.Fatal("db init", zap.Error(err))
		}
		defer dbPool.Close()
		source = vehicle.NewStore(dbPool)
	} else {
		source = vehicle.NewAPIClient(backendClient, cfg.Backend.BaseURL)
	}
	vehicleSvc := vehicle.NewService(source, logger.Named("vehicle"))

	var cache route.Cache
	if cfg.Redis.Addr != "" {
		rdb := infra.NewRedis(cfg.Redis.Addr)
		defer rdb.Close()
		cache = route.NewRedisCache(rdb, cfg.Routing.CacheTTL)
	}

	var strategies []route.Strategy
	if cfg.Routing.GoogleAPIKey != "" {
		google, err := route.NewGoogleStrategy(cfg.Routing.GoogleAPIKey, maps.WithHTTPClient(routingClient))
		if err != nil {
			logger.Fatal("google maps init", zap.Error(err))
		}
		strategies = append(strategies, google)
	}
	strategies = append(strategies,
		route.NewOSRMStrategy(routingClient, cfg.Routing.OSRMURL),
		route.NewMapboxStrategy(routingClient, cfg.Routing.MapboxURL, cfg.Routing.MapboxToken),
	)
	planner := route.NewPlanner(logger.Named("route"), cache, strategies...)

	cities, err := geocode.LoadCities()
	if err != nil {
		logger.Fatal("fallback cities", zap.Error(err))
	}
	nominatim := geocode.NewNominatim(routingClient, cfg.Geocode.NominatimURL, cfg.Geocode.UserAgent, cfg.Geocode.CountryCodes)
	geocodeSvc := geocode.NewService(nominatim, cities, logger.Named("geocode"))

	var publisher enquiry.Publisher
	if kafkaPub, err := enquiry.NewKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic); err == nil {
		defer kafkaPub.Close()
		publisher = kafkaPub
	} else {
		logger.Warn("enquiry service tier disabled", zap.Error(err))
	}
	dispatcher := enquiry.NewDispatcher(publisher, cfg.Enquiry.Recipient, cfg.Enquiry.MaxMailtoLength, cfg.Company, logger.Named("enquiry"))

	tripPlanner := service.NewTripPlanner(planner, vehicleSvc, logger.Named("trip"))

	router := httptransport.NewRouter(httptransport.RouterDeps{
		Geocode:  geocodeSvc,
		Vehicles: vehicleSvc,
		Trips:    tripPlanner,
		Enquiry:  dispatcher,
		Company:  cfg.Company,
		ValidFor: cfg.Quote.ValidFor,
		Logger:   logger.Named("http"),
	})

	server := httptransport.NewServer(cfg.HTTP.Addr, router, cfg.HTTP.ShutdownTimeout, logger)
	if err := server.Run(ctx); err != nil {
		logger.Fatal("http server", zap.Error(err))
	}
}
