package handlers

import (
	"github.com/blinds123/simpleswap-realtime-test-sub001/internal/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorResponse represents a standard error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// SuccessResponse represents a standard success response
type SuccessResponse struct {
	Message string `json:"message"`
}

// sendError is a helper function that combines logging and error response
// It logs the error with the given message and sends a JSON error response
func sendError(c *gin.Context, statusCode int, message string, err error) {
	if logger.Log != nil {
		logger.Error(message,
			zap.Error(err),
			zap.String("path", c.Request.URL.Path),
			zap.String("method", c.Request.Method),
		)
	}
	c.JSON(statusCode, ErrorResponse{Error: message})
}

// sendSuccess is a helper function that sends a success response
func sendSuccess(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}
