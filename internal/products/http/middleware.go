package http

import (
	"log/slog"
	"net/http"
	"time"

	"product-catalog/internal/products"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	requestIDHeader    = "X-Request-ID"
	maxRequestIDLength = 128

	unhandledError = "Unhandled error"
)

type errorResponse struct {
	Status string `json:"status" example:"error"`
	Error  string `json:"error" example:"Invalid product data"`
	Cause  any    `json:"cause,omitempty" swaggertype:"object"`
}

func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(requestIDHeader)
		if requestID == "" || len(requestID) > maxRequestIDLength {
			requestID = uuid.NewString()
		}
		c.Header(requestIDHeader, requestID)
		c.Set(requestIDHeader, requestID)
		c.Next()
	}
}

func AccessLogMiddleware(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		level := slog.LevelInfo
		if status >= http.StatusInternalServerError {
			level = slog.LevelError
		}

		requestID, _ := c.Get(requestIDHeader)
		logger.Log(c.Request.Context(), level, "http request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"route", c.FullPath(),
			"status", status,
			"latency_ms", time.Since(start).Milliseconds(),
			"request_id", requestID,
			"client_ip", c.ClientIP(),
		)
	}
}

// ErrorHandler renders the last error a handler attached with c.Error.
// Structured catalog errors keep their name and cause; anything else is
// logged and reported as a generic 500.
func ErrorHandler(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		err := c.Errors.Last().Err
		requestID, _ := c.Get(requestIDHeader)

		e, ok := products.AsError(err)
		if !ok {
			logger.Error("unhandled error",
				"path", c.Request.URL.Path,
				"request_id", requestID,
				"error", err,
			)
			c.JSON(http.StatusInternalServerError, errorResponse{Status: statusError, Error: unhandledError})
			return
		}

		logger.Info("request rejected",
			"code", e.Code,
			"cause", e.Cause,
			"request_id", requestID,
		)
		c.JSON(statusFor(e.Code), errorResponse{Status: statusError, Error: e.Name, Cause: e.Cause})
	}
}

func statusFor(code products.Code) int {
	switch code {
	case products.CodeInvalidTypes, products.CodeInvalidParam, products.CodeDuplicateCode:
		return http.StatusBadRequest
	case products.CodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
