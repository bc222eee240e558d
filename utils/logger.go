package utils

import (
	"net/http"
	"time"

	"dbgatewayapi/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader carries the per-request correlation id.
const RequestIDHeader = "X-Request-ID"

const requestIDKey = "request_id"

// LoggerMiddleware stamps a request id and logs every request with a level
// chosen by status class.
func LoggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(RequestIDHeader, id)

		start := time.Now()
		c.Next()
		elapsed := time.Since(start)
		status := c.Writer.Status()

		if status >= 500 {
			logger.Errorf("HTTP %s %s - Status: %d, Duration: %v, IP: %s, ID: %s",
				c.Request.Method, c.Request.URL.Path, status, elapsed, c.ClientIP(), id)
		} else if status >= 400 {
			logger.Warnf("HTTP %s %s - Status: %d, Duration: %v, IP: %s, ID: %s",
				c.Request.Method, c.Request.URL.Path, status, elapsed, c.ClientIP(), id)
		} else {
			logger.Infof("HTTP %s %s - Status: %d, Duration: %v, IP: %s, ID: %s",
				c.Request.Method, c.Request.URL.Path, status, elapsed, c.ClientIP(), id)
		}
	}
}

// RequestID returns the id stamped by LoggerMiddleware, or "-" outside it.
func RequestID(c *gin.Context) string {
	if id := c.GetString(requestIDKey); id != "" {
		return id
	}
	return "-"
}

// JSONResponse sends a JSON response with the specified HTTP status code.
func JSONResponse(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// ErrorResponse logs and rejects a malformed request with HTTP 400.
func ErrorResponse(c *gin.Context, err error) {
	logger.Warnf("Rejected request %s %s [id=%s]: %v", c.Request.Method, c.Request.URL.Path, RequestID(c), err)
	c.JSON(http.StatusBadRequest, gin.H{
		"success": false,
		"error":   "invalid request",
		"details": err.Error(),
	})
}
