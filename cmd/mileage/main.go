package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"mileage/cfg"
	"mileage/internal/airport"
	"mileage/internal/httpserver"
	"mileage/internal/search"
	"mileage/pkg/idgen"
	"mileage/pkg/logger"
	"mileage/pkg/seatsaero"
	"mileage/pkg/telemetry"

	_ "mileage/cmd/mileage/docs" // swagger docs

	"github.com/gin-gonic/gin"
)

// @title           Mileage Search API
// @version         1.0
// @description     Award availability search over the seats.aero partner API, plus airport lookup.
// @BasePath        /
// @schemes         http
func main() {
	// ============
	// config
	// ============
	config, errCfg := cfg.Load()
	if errCfg != nil {
		log.Fatal(errCfg)
	}

	// ============
	// logger
	// ============
	zlogger := logger.NewZeroLog(config.AppEnv)

	// ============
	// Otel
	// ============
	shutdownOtel, err := telemetry.Init(context.Background(), &config.Observability, zlogger)
	if err != nil {
		zlogger.Warn("continuing without tracing/metrics", logger.Err(err))
	} else {
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := shutdownOtel(ctx); err != nil {
				zlogger.Error("failed to shutdown otel", logger.Err(err))
			}
		}()
	}

	// ============
	// ID generator
	// ============
	idGen, err := idgen.NewSnowflakeGenerator(config.SnowflakeNodeID)
	if err != nil {
		log.Fatalf("Failed to create id generator: %v", err)
	}

	// ============
	// External Service
	// ============
	httpClient := &http.Client{
		Timeout: config.SeatsAero.Timeout,
	}
	seatsClient := seatsaero.NewClient(httpClient, config.SeatsAero.BaseURL, config.SeatsAero.APIKey, zlogger).
		WithRateLimit(config.SeatsAero.RatePerSecond, config.SeatsAero.RateBurst)

	// ============
	// Internal Service
	// ============
	searchSvc := search.NewService(seatsClient, zlogger)
	mileageHandler := search.NewMileageHandler(searchSvc)

	airportSvc, err := airport.NewService()
	if err != nil {
		log.Fatalf("Failed to load airport dataset: %v", err)
	}
	airportHandler := airport.NewAirportHandler(airportSvc)

	// ============
	// HTTP
	// ============
	if config.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := httpserver.NewRouter(httpserver.Options{
		ServiceName: config.Observability.ServiceName,
		IDGenerator: idGen,
		Logger:      zlogger,
	}, mileageHandler, airportHandler)

	addr := fmt.Sprintf(":%s", config.AppPort)
	zlogger.Info("starting server", logger.Field{Key: "addr", Value: addr})
	if err := r.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
