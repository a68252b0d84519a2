package main

import (
	"fmt"

	"github.com/erin-james/ai-query-interface/internal/handler"
	mid "github.com/erin-james/ai-query-interface/internal/middleware"
	"github.com/erin-james/ai-query-interface/internal/store"
	"github.com/erin-james/ai-query-interface/pkg/config"
	"github.com/erin-james/ai-query-interface/pkg/logger"
	"github.com/erin-james/ai-query-interface/prometheus"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		// Can't use structured logger yet since it's not initialized
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	logger.InitLogger(appConfig)
	log := logger.GetLogger()
	defer log.Sync()

	log.Info("Starting csv-query-service",
		zap.String("environment", appConfig.Server.Env),
		zap.Int("port", appConfig.Server.Port))

	// Initialize Prometheus metrics
	prometheus.InitMetrics(appConfig)
	log.Info("Prometheus metrics initialized",
		zap.String("metrics_prefix", appConfig.Metrics.Prefix))

	// Load the datasets. This happens exactly once; the store is
	// read-only for the life of the process.
	dataStore, err := store.Load(appConfig.Data.Dir)
	if err != nil {
		log.Fatal("Failed to load datasets", zap.Error(err))
	}
	prometheus.SetDatasetRows("customers", len(dataStore.Customers))
	prometheus.SetDatasetRows("inventory", len(dataStore.Orders))
	prometheus.SetDatasetRows("detail", len(dataStore.Details))
	prometheus.SetDatasetRows("pricelist", len(dataStore.PriceList))
	log.Info("Datasets loaded",
		zap.String("data_dir", appConfig.Data.Dir),
		zap.Int("customers", len(dataStore.Customers)),
		zap.Int("orders", len(dataStore.Orders)),
		zap.Int("order_details", len(dataStore.Details)),
		zap.Int("pricelist_items", len(dataStore.PriceList)))

	// Initialize Echo instance
	e := echo.New()

	// Middleware
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(mid.RequestIDMiddleware)
	e.Use(mid.MetricsMiddleware)

	// Routes
	// Metrics endpoint
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Liveness and health endpoints
	e.GET("/", handler.Root)
	e.GET("/health", handler.HealthCheck)

	// Question-answering endpoint
	queryHandler := handler.NewQueryHandler(dataStore, appConfig.Query.PacingDelay)
	e.GET("/query", queryHandler.Query)

	// Start server
	addr := fmt.Sprintf(":%d", appConfig.Server.Port)
	log.Info("Starting server", zap.String("addr", addr))
	if err := e.Start(addr); err != nil {
		log.Fatal("Server error", zap.Error(err))
	}
}
