package appointment

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/salon-booking/internal/audit"
	domain "github.com/BruksfildServices01/salon-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-booking/internal/httperr"
	"github.com/BruksfildServices01/salon-booking/internal/models"
	"github.com/BruksfildServices01/salon-booking/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	UserID string

	BarberID     string
	BarberName   string
	LocationID   string
	LocationName string

	Date string
	Time string

	// Duration 0 means the standard duration.
	Duration int
	Amount   int64

	PaymentID     string
	PaymentStatus string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo   domain.Repository
	window domain.BookingWindow
	clock  timezone.Clock
	audit  *audit.Dispatcher
	log    *zap.Logger
}

func NewCreateAppointment(
	repo domain.Repository,
	window domain.BookingWindow,
	clock timezone.Clock,
	audit *audit.Dispatcher,
	log *zap.Logger,
) *CreateAppointment {
	return &CreateAppointment{
		repo:   repo,
		window: window,
		clock:  clock,
		audit:  audit,
		log:    log,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1. Payment reference
	// --------------------------------------------------
	if in.PaymentID == "" {
		return nil, httperr.ErrBusiness("missing_payment")
	}

	duration, now, err := uc.check(ctx, in)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 5. Insert
	// --------------------------------------------------
	ap := &models.Appointment{
		UserID:           in.UserID,
		BarberID:         in.BarberID,
		BarberName:       in.BarberName,
		LocationID:       in.LocationID,
		LocationName:     in.LocationName,
		Date:             in.Date,
		Time:             in.Time,
		Duration:         duration,
		Amount:           in.Amount,
		Status:           string(domain.InitialStatus()),
		ServiceCompleted: false,
		PointsAwarded:    false,
		PaymentID:        in.PaymentID,
		PaymentStatus:    in.PaymentStatus,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		if httperr.IsBusiness(err, "slot_taken") {
			uc.log.Warn("slot taken between check and insert",
				zap.String("barber_id", in.BarberID),
				zap.String("date", in.Date),
				zap.String("time", in.Time),
			)
		}
		return nil, httperr.Operation("create_appointment", err)
	}

	// --------------------------------------------------
	// 6. Audit
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		UserID:   in.UserID,
		Action:   audit.ActionAppointmentCreated,
		Entity:   "appointment",
		EntityID: ap.ID,
		Metadata: map[string]string{
			"barber_id": ap.BarberID,
			"date":      ap.Date,
			"time":      ap.Time,
		},
	})

	return ap, nil
}

// Precheck runs every Execute check except the payment reference, so the
// caller can turn a request away before charging for it.
func (uc *CreateAppointment) Precheck(ctx context.Context, in CreateAppointmentInput) error {
	_, _, err := uc.check(ctx, in)
	return err
}

func (uc *CreateAppointment) check(
	ctx context.Context,
	in CreateAppointmentInput,
) (int, time.Time, error) {

	if in.BarberID == "" || in.LocationID == "" || in.UserID == "" {
		return 0, time.Time{}, httperr.ErrBusinessMsg("invalid_request", "user, barber and location are required")
	}

	// --------------------------------------------------
	// 2. Duration
	// --------------------------------------------------
	duration := in.Duration
	if duration == 0 {
		duration = domain.AppointmentDuration
	}
	if duration != domain.AppointmentDuration {
		return 0, time.Time{}, httperr.ErrBusiness("invalid_duration")
	}

	// --------------------------------------------------
	// 3. Slot and booking window
	// --------------------------------------------------
	if !domain.IsCanonicalSlot(uc.window.Day, in.Time) {
		if _, err := domain.SlotInstant(in.Date, in.Time, uc.window.Location); err != nil {
			return 0, time.Time{}, httperr.ErrBusiness("invalid_date_or_time")
		}
		return 0, time.Time{}, httperr.ErrBusiness("invalid_slot")
	}

	now := uc.clock()
	if err := uc.window.IsSlotBookable(in.Date, in.Time, now); err != nil {
		return 0, time.Time{}, err
	}

	// --------------------------------------------------
	// 4. Availability
	// --------------------------------------------------
	taken, err := uc.repo.ExistsActiveAppointment(ctx, in.BarberID, in.Date, in.Time)
	if err != nil {
		return 0, time.Time{}, httperr.Operation("check_availability", err)
	}
	if taken {
		return 0, time.Time{}, httperr.ErrBusiness("slot_taken")
	}

	return duration, now, nil
}
