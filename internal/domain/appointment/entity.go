package appointment

import (
	"time"

	"github.com/BruksfildServices01/salon-booking/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func Cancel(ap *models.Appointment, w BookingWindow, now time.Time) error {
	if err := CanCancel(Status(ap.Status)); err != nil {
		return err
	}
	if err := w.CanCancelAt(ap.Date, ap.Time, now); err != nil {
		return err
	}

	ap.Status = string(StatusCancelled)
	ap.CancelledAt = &now
	return nil
}

// MarkServiceCompleted reports whether anything changed; completing twice
// leaves the first completedAt untouched.
func MarkServiceCompleted(ap *models.Appointment, now time.Time) (bool, error) {
	if err := CanComplete(Status(ap.Status)); err != nil {
		return false, err
	}
	if ap.ServiceCompleted && Status(ap.Status) == StatusCompleted {
		return false, nil
	}

	ap.ServiceCompleted = true
	ap.Status = string(StatusCompleted)
	ap.CompletedAt = &now
	return true, nil
}
