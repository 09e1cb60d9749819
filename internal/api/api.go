// Package api exposes the tracker over HTTP for a UI client.
package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Error is an HTTP error returned by an endpoint.
type Error struct {
	Code    int
	Message string
}

// HandlerFunc is an endpoint that returns a JSON body or an error.
type HandlerFunc func(ctx *gin.Context) (any, *Error)

// ResolveEndpoint adapts a HandlerFunc to gin.
func ResolveEndpoint(h HandlerFunc) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		result, apiErr := h(ctx)
		if apiErr != nil {
			ctx.JSON(apiErr.Code, gin.H{"error": apiErr.Message})
			return
		}
		ctx.JSON(http.StatusOK, result)
	}
}

func badRequest(msg string) *Error {
	return &Error{Code: http.StatusBadRequest, Message: msg}
}

func internalError(msg string) *Error {
	return &Error{Code: http.StatusInternalServerError, Message: msg}
}

// requestLogger logs one line per request.
func requestLogger(logger zerolog.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()

		event := logger.Info()
		if ctx.Writer.Status() >= http.StatusInternalServerError {
			event = logger.Error()
		}
		event.
			Str("method", ctx.Request.Method).
			Str("path", ctx.FullPath()).
			Int("status", ctx.Writer.Status()).
			Dur("latency", time.Since(start)).
			Msg("request")
	}
}
