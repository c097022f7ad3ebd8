package httperr

import "errors"

// BusinessError is a rejected request carrying a stable code and a
// human-readable reason. It is never retried.
type BusinessError struct {
	Code    string
	Message string
}

func (e BusinessError) Error() string {
	if e.Message == "" {
		return e.Code
	}
	return e.Code + ": " + e.Message
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code, Message: defaultMessages[code]}
}

func ErrBusinessMsg(code, message string) error {
	return BusinessError{Code: code, Message: message}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// AsBusiness reports whether err carries a BusinessError of any code.
func AsBusiness(err error) (BusinessError, bool) {
	var be BusinessError
	ok := errors.As(err, &be)
	return be, ok
}

var defaultMessages = map[string]string{
	"non_business_day":        "non-business day",
	"insufficient_lead_time":  "insufficient lead time",
	"outside_booking_horizon": "date is beyond the booking horizon",
	"invalid_date_or_time":    "invalid date or time",
	"invalid_state":           "appointment is not in a valid state for this action",
	"appointment_not_found":   "appointment not found",
	"slot_taken":              "the selected slot is no longer available",
	"invalid_slot":            "time is not a bookable slot",
	"invalid_duration":        "appointments last 40 minutes",
	"missing_payment":         "a confirmed payment is required",
	"payment_failed":          "payment was not approved",
	"user_mismatch":           "appointment belongs to another user",
	"user_not_found":          "user not found",
	"reward_not_found":        "reward not found",
	"insufficient_points":     "insufficient points",
	"forbidden":               "not allowed",
	"email_taken":             "email already registered",
	"location_not_found":      "location not found",
	"barber_not_found":        "barber not found",
	"invalid_credentials":     "invalid credentials",
}
