package appointment

import "github.com/BruksfildServices01/salon-booking/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

// ActiveStatuses hold a slot: an appointment in one of these blocks the
// barber/date/time it was booked for.
var ActiveStatuses = []Status{StatusConfirmed, StatusPending}

func (s Status) IsActive() bool {
	for _, a := range ActiveStatuses {
		if s == a {
			return true
		}
	}
	return false
}

// ===============================
// Validations
// ===============================

// CanCancel only lets confirmed appointments be cancelled.
func CanCancel(current Status) error {
	if current != StatusConfirmed {
		return httperr.ErrBusinessMsg("invalid_state", "only confirmed appointments can be cancelled")
	}
	return nil
}

// CanComplete accepts a completed appointment again so a retried
// completion stays harmless.
func CanComplete(current Status) error {
	switch current {
	case StatusConfirmed, StatusPending, StatusCompleted:
		return nil
	default:
		return httperr.ErrBusinessMsg("invalid_state", "cancelled appointments cannot be completed")
	}
}

// InitialStatus is confirmed because payment precedes creation.
func InitialStatus() Status {
	return StatusConfirmed
}
