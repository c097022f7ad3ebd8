package appointment

import (
	"context"
	"slices"
	"strings"

	domain "github.com/BruksfildServices01/salon-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-booking/internal/dto"
	"github.com/BruksfildServices01/salon-booking/internal/httperr"
	"github.com/BruksfildServices01/salon-booking/internal/models"
	"github.com/BruksfildServices01/salon-booking/internal/timezone"
)

type ListUserAppointments struct {
	repo   domain.Repository
	window domain.BookingWindow
	clock  timezone.Clock
}

func NewListUserAppointments(
	repo domain.Repository,
	window domain.BookingWindow,
	clock timezone.Clock,
) *ListUserAppointments {
	return &ListUserAppointments{
		repo:   repo,
		window: window,
		clock:  clock,
	}
}

// Execute returns the user's appointments, latest date and time first.
func (uc *ListUserAppointments) Execute(
	ctx context.Context,
	userID string,
) ([]dto.AppointmentListDTO, error) {

	appointments, err := uc.repo.ListAppointmentsByUser(ctx, userID)
	if err != nil {
		return nil, httperr.Operation("list_user_appointments", err)
	}

	slices.SortStableFunc(appointments, func(a, b models.Appointment) int {
		return strings.Compare(b.Date+" "+b.Time, a.Date+" "+a.Time)
	})

	now := uc.clock()
	out := make([]dto.AppointmentListDTO, 0, len(appointments))
	for _, ap := range appointments {
		canCancel := domain.CanCancel(domain.Status(ap.Status)) == nil &&
			uc.window.CanCancelAt(ap.Date, ap.Time, now) == nil

		out = append(out, dto.FromAppointment(ap, canCancel))
	}

	return out, nil
}
