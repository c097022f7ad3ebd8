package appointment

import (
	"context"
	"errors"
	"time"

	"github.com/BruksfildServices01/salon-booking/internal/models"
)

// AppointmentPatch lists the fields an update may touch. Nil fields are
// left alone.
type AppointmentPatch struct {
	Status           *string
	ServiceCompleted *bool
	CompletedAt      *time.Time
	CancelledAt      *time.Time
}

func PatchFrom(ap *models.Appointment) AppointmentPatch {
	return AppointmentPatch{
		Status:           &ap.Status,
		ServiceCompleted: &ap.ServiceCompleted,
		CompletedAt:      ap.CompletedAt,
		CancelledAt:      ap.CancelledAt,
	}
}

type Repository interface {
	// -------- Appointment (create / conflict) --------
	// CreateAppointment fails with the slot_taken business error when an
	// active appointment already holds (barber, date, time).
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	ExistsActiveAppointment(
		ctx context.Context,
		barberID string,
		date string,
		hhmm string,
	) (bool, error)

	// -------- Appointment (state change) --------
	// GetAppointment fails with the appointment_not_found business error.
	GetAppointment(
		ctx context.Context,
		id string,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		id string,
		patch AppointmentPatch,
	) error

	// -------- Listing --------
	ListAppointmentsByUser(
		ctx context.Context,
		userID string,
	) ([]models.Appointment, error)

	// -------- Points --------
	// AwardPoints applies the award iff the appointment has not been
	// awarded yet and reports whether it did.
	AwardPoints(
		ctx context.Context,
		award PointsAward,
	) (bool, error)
}

var ErrLockHeld = errors.New("lock held by another caller")

// Locker serialises work on one key across callers.
type Locker interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) (release func(), err error)
}
