package middleware

import (
	"context"

	"github.com/blinds123/simpleswap-realtime-test-sub001/internal/logger"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	CorrelationIDHeader = "X-Correlation-ID"
	correlationIDKey    = "correlationID"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const correlationIDContextKey contextKey = "correlationID"

// CorrelationID ensures every request carries a correlation ID so a link
// build can be tied back to the request that asked for it.
func CorrelationID() gin.HandlerFunc {
	return func(c *gin.Context) {
		correlationID := c.GetHeader(CorrelationIDHeader)
		if correlationID == "" {
			correlationID = uuid.New().String()
		}

		c.Set(correlationIDKey, correlationID)
		c.Header(CorrelationIDHeader, correlationID)

		ctx := WithCorrelationID(c.Request.Context(), correlationID)
		c.Request = c.Request.WithContext(ctx)

		if logger.Log != nil {
			logger.Log.Info("Request received",
				zap.String("correlation_id", correlationID),
				zap.String("method", c.Request.Method),
				zap.String("path", c.Request.URL.Path),
				zap.String("client_ip", c.ClientIP()),
			)
		}

		c.Next()
	}
}

// GetCorrelationID retrieves the correlation ID from the Gin context
func GetCorrelationID(c *gin.Context) string {
	if id, exists := c.Get(correlationIDKey); exists {
		if correlationID, ok := id.(string); ok {
			return correlationID
		}
	}
	return ""
}

// WithCorrelationID adds correlation ID to context
func WithCorrelationID(ctx context.Context, correlationID string) context.Context {
	return context.WithValue(ctx, correlationIDContextKey, correlationID)
}

// CorrelationIDFromContext retrieves correlation ID from context
func CorrelationIDFromContext(ctx context.Context) string {
	if id := ctx.Value(correlationIDContextKey); id != nil {
		if correlationID, ok := id.(string); ok {
			return correlationID
		}
	}
	return ""
}
