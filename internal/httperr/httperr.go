package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

func Forbidden(c *gin.Context, code, message string) {
	Write(c, http.StatusForbidden, code, message)
}

// Respond maps a use case error onto the wire: business errors keep their
// code and reason, store failures become a retryable 503.
func Respond(c *gin.Context, err error) {
	if be, ok := AsBusiness(err); ok {
		Write(c, statusFor(be.Code), be.Code, be.Message)
		return
	}

	if IsRetryable(err) {
		c.Header("Retry-After", "1")
		Write(c, http.StatusServiceUnavailable, ErrOperationFailed.Error(), "Temporary failure, please retry.")
		return
	}

	Internal(c, "internal_error", "Unexpected error.")
}

func statusFor(code string) int {
	switch code {
	case "appointment_not_found", "user_not_found", "reward_not_found", "location_not_found", "barber_not_found":
		return http.StatusNotFound
	case "slot_taken", "email_taken":
		return http.StatusConflict
	case "invalid_credentials":
		return http.StatusUnauthorized
	case "forbidden", "user_mismatch":
		return http.StatusForbidden
	case "payment_failed":
		return http.StatusPaymentRequired
	default:
		return http.StatusBadRequest
	}
}
