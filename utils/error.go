package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorResponse defines the structure of error responses
type ErrorResponse struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// ErrorHandler is a middleware to catch panics and return structured errors
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				Logger := GetLogger()
				Logger.Error("Unhandled panic", zap.Any("error", err))

				c.JSON(http.StatusInternalServerError, ErrorResponse{
					Message: "Internal Server Error",
					Details: "An unexpected error occurred. Please try again later.",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// JSONError sends a standardized JSON error response
func JSONError(c *gin.Context, status int, message string, details string) {
	Logger := GetLogger()
	Logger.Warn(message, zap.String("details", details))
	c.JSON(status, ErrorResponse{Message: message, Details: details})
}

// RespondError maps a service error to its HTTP status and writes the
// standard error body. Taxonomy codes travel in the response so clients can
// distinguish retryable concurrency conflicts from terminal ones.
func RespondError(c *gin.Context, err error) {
	status := HTTPStatus(err)
	resp := ErrorResponse{Message: err.Error()}

	var ae *AppError
	if errors.As(err, &ae) {
		resp.Message = ae.Message
		resp.Code = ae.Code
	}
	if status == http.StatusInternalServerError {
		GetLogger().Error("Unhandled service error", zap.Error(err))
		resp.Message = "Internal Server Error"
	}
	c.JSON(status, resp)
}
