package models

import (
	"time"

	"github.com/gin-gonic/gin"
)

// ApiResponse is the uniform envelope returned by every route:
// {"success": true, "data": ...} or {"success": false, "error": "..."}.
type ApiResponse struct {
	Success bool           `json:"success"`
	Data    any            `json:"data,omitempty"`
	Error   string         `json:"error,omitempty"`
	Rate    *RateLimitInfo `json:"rate_limit,omitempty"`
}

// RateLimitInfo is attached to responses that passed through the rate
// limiter (admin login).
type RateLimitInfo struct {
	Limit          int       `json:"limit"`
	Remaining      int       `json:"remaining"`
	ResetAt        time.Time `json:"reset_at"`
	ResetInSeconds int       `json:"reset_in_seconds"`
}

// helper to fetch rate limiter info from Gin context
func getRateFromContext(c *gin.Context) *RateLimitInfo {
	if c == nil {
		return nil
	}
	if rate, exists := c.Get("rateLimiter"); exists {
		if rl, ok := rate.(*RateLimitInfo); ok {
			return rl
		}
	}
	return nil
}

func SuccessResponse(c *gin.Context, data any) ApiResponse {
	return ApiResponse{
		Success: true,
		Data:    data,
		Rate:    getRateFromContext(c),
	}
}

func ErrorResponse(c *gin.Context, message string) ApiResponse {
	return ApiResponse{
		Success: false,
		Error:   message,
		Rate:    getRateFromContext(c),
	}
}
