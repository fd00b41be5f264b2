package server

import (
	"net/http"
	"os"
	"strings"

	"github.com/blinds123/simpleswap-realtime-test-sub001/internal/config"
	"github.com/blinds123/simpleswap-realtime-test-sub001/internal/handlers"
	"github.com/blinds123/simpleswap-realtime-test-sub001/internal/middleware"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter assembles the gin engine: CORS, correlation IDs, health and
// metrics endpoints, and the checkout API routes.
func NewRouter(cfg *config.Config, checkoutHandler *handlers.CheckoutHandler) *gin.Engine {
	if cfg.Stage == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(configureCORS())
	router.Use(middleware.CorrelationID())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1")
	{
		checkout := v1.Group("/checkout")
		{
			checkout.POST("/links", checkoutHandler.CreateCheckoutLink)
			checkout.GET("/providers", checkoutHandler.ListProviders)
			checkout.GET("/estimate", checkoutHandler.GetEstimate)
		}
	}

	return router
}

// configureCORS returns a configured CORS middleware
func configureCORS() gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()

	originsEnv := os.Getenv("CORS_ALLOWED_ORIGINS")
	if originsEnv == "" {
		corsConfig.AllowOrigins = []string{"http://localhost:3000"}
	} else {
		origins := strings.Split(originsEnv, ",")
		for i, origin := range origins {
			origins[i] = strings.TrimSpace(origin)
		}
		corsConfig.AllowOrigins = origins
	}

	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", middleware.CorrelationIDHeader}
	corsConfig.AllowCredentials = os.Getenv("CORS_ALLOW_CREDENTIALS") == "true"

	return cors.New(corsConfig)
}
