package appointment

import (
	"context"

	"github.com/BruksfildServices01/salon-booking/internal/audit"
	domain "github.com/BruksfildServices01/salon-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-booking/internal/httperr"
	"github.com/BruksfildServices01/salon-booking/internal/models"
	"github.com/BruksfildServices01/salon-booking/internal/timezone"
)

type CancelAppointmentInput struct {
	AppointmentID string
	UserID        string
	// Staff may cancel appointments of any user.
	Staff bool
}

type CancelAppointment struct {
	repo   domain.Repository
	window domain.BookingWindow
	clock  timezone.Clock
	audit  *audit.Dispatcher
}

func NewCancelAppointment(
	repo domain.Repository,
	window domain.BookingWindow,
	clock timezone.Clock,
	audit *audit.Dispatcher,
) *CancelAppointment {
	return &CancelAppointment{
		repo:   repo,
		window: window,
		clock:  clock,
		audit:  audit,
	}
}

func (uc *CancelAppointment) Execute(
	ctx context.Context,
	in CancelAppointmentInput,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, in.AppointmentID)
	if err != nil {
		return nil, httperr.Operation("get_appointment", err)
	}

	if !in.Staff && ap.UserID != in.UserID {
		return nil, httperr.ErrBusiness("forbidden")
	}

	now := uc.clock()
	if err := domain.Cancel(ap, uc.window, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap.ID, domain.PatchFrom(ap)); err != nil {
		return nil, httperr.Operation("update_appointment", err)
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   in.UserID,
		Action:   audit.ActionAppointmentCancelled,
		Entity:   "appointment",
		EntityID: ap.ID,
	})

	return ap, nil
}
