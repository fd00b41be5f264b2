package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/blinds123/simpleswap-realtime-test-sub001/internal/client/simpleswap"
	"github.com/blinds123/simpleswap-realtime-test-sub001/internal/config"
	"github.com/blinds123/simpleswap-realtime-test-sub001/internal/deeplink"
	"github.com/blinds123/simpleswap-realtime-test-sub001/internal/handlers"
	"github.com/blinds123/simpleswap-realtime-test-sub001/internal/logger"
	"github.com/blinds123/simpleswap-realtime-test-sub001/internal/metrics"
	"github.com/blinds123/simpleswap-realtime-test-sub001/internal/server"
	"github.com/blinds123/simpleswap-realtime-test-sub001/internal/services"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found: %v\n", err)
	}

	cfg := config.MustLoad()
	logger.InitLogger(cfg.Stage, cfg.Log.Level)
	defer logger.Sync()

	checkoutHandler := initializeHandlers(cfg)
	router := server.NewRouter(cfg, checkoutHandler)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler: router,
	}

	go func() {
		logger.Info("Server starting", zap.String("port", cfg.HTTPPort), zap.String("stage", cfg.Stage))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exiting")
}

func initializeHandlers(cfg *config.Config) *handlers.CheckoutHandler {
	overrides := deeplink.OverrideConfig{WidgetID: cfg.Mercuryo.WidgetID}
	if cfg.Checkout.ProviderOverrides {
		overrides = deeplink.DefaultOverrides(cfg.Mercuryo.WidgetID)
	}

	builder := deeplink.NewBuilder(deeplink.Config{
		MercuryoBaseURL: cfg.Mercuryo.BaseURL,
		ExchangeBaseURL: cfg.Exchange.BaseURL,
	}, overrides, logger.Log)

	checkoutMetrics := metrics.NewCheckoutMetrics(prometheus.DefaultRegisterer)
	checkoutService := services.NewCheckoutService(builder, cfg.Checkout, checkoutMetrics, logger.Log)

	var estimator handlers.Estimator
	if cfg.Exchange.APIKey != "" {
		estimator = simpleswap.NewClient(cfg.Exchange.APIBaseURL, cfg.Exchange.APIKey)
	}

	return handlers.NewCheckoutHandler(checkoutService, estimator)
}
