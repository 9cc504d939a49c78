package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var (
	// ErrMissingToken is returned when no bearer token accompanies the request.
	ErrMissingToken = errors.New("missing bearer token")
	// ErrInvalidOrExpired covers bad signatures, malformed tokens and expiry.
	ErrInvalidOrExpired = errors.New("invalid or expired token")
	// ErrForbidden is returned when the caller's role or identity does not match.
	ErrForbidden = errors.New("forbidden")
	// ErrInvalidID is returned when a path id is not a well-formed ObjectID.
	ErrInvalidID = errors.New("invalid id")
	// ErrNotFound is returned when a single-document lookup matches nothing.
	// Handlers render it as a null body, so it has no status mapping.
	ErrNotFound = errors.New("document not found")
	// ErrInvalidBody is returned when a request body is not a JSON object.
	ErrInvalidBody = errors.New("invalid request body")
)

// ErrorResponse defines the structure of error responses
type ErrorResponse struct {
	Message string `json:"message"`
}

// ErrorHandler is a middleware to catch panics and return structured errors
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				GetLogger().Error("Unhandled panic",
					zap.Any("error", err),
					zap.String("path", c.Request.URL.Path),
				)
				c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{
					Message: "internal server error",
				})
			}
		}()
		c.Next()
	}
}

// StatusFor maps an error to the HTTP status and message sent to the client.
func StatusFor(err error) (int, string) {
	switch {
	case errors.Is(err, ErrMissingToken), errors.Is(err, ErrInvalidOrExpired):
		return http.StatusUnauthorized, "unauthorized access"
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden, "forbidden access"
	case errors.Is(err, ErrInvalidID):
		return http.StatusBadRequest, "invalid id"
	case errors.Is(err, ErrInvalidBody):
		return http.StatusBadRequest, "invalid request body"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// RespondError aborts the request with the status mapped from err.
// Server-side failures are logged; client errors only at debug level.
func RespondError(c *gin.Context, err error) {
	status, message := StatusFor(err)
	logger := RequestLogger(c)
	if status >= http.StatusInternalServerError {
		logger.Error(message, zap.Error(err))
	} else {
		logger.Debug(message, zap.Error(err), zap.Int("status", status))
	}
	c.AbortWithStatusJSON(status, ErrorResponse{Message: message})
}
