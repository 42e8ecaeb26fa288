package utils

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// APIError carries the error half of the response envelope.
type APIError struct {
	Code      string    `json:"code"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	RequestID string    `json:"requestId"`
}

// Envelope is the uniform JSON response shape for every endpoint.
type Envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
}

// RespondOK writes a success envelope.
func RespondOK(c *gin.Context, status int, data interface{}) {
	c.JSON(status, Envelope{Success: true, Data: data})
}

// RespondError writes an error envelope, tagging it with the request ID set
// by the request-id middleware.
func RespondError(c *gin.Context, status int, code, message string) {
	GetLogger().Warn("request failed",
		zap.String("code", code),
		zap.String("message", message),
		zap.String("requestId", c.GetString("requestId")),
	)
	c.JSON(status, Envelope{
		Success: false,
		Error: &APIError{
			Code:      code,
			Message:   message,
			Timestamp: time.Now().UTC(),
			RequestID: c.GetString("requestId"),
		},
	})
}

// ErrorHandler is a middleware that catches panics and returns a structured
// envelope instead of dropping the connection.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				GetLogger().Error("Unhandled panic", zap.Any("error", err))
				RespondError(c, http.StatusInternalServerError, "INTERNAL_ERROR",
					"An unexpected error occurred. Please try again later.")
				c.Abort()
			}
		}()
		c.Next()
	}
}
