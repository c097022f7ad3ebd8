package appointment

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/salon-booking/internal/audit"
	domain "github.com/BruksfildServices01/salon-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-booking/internal/httperr"
	"github.com/BruksfildServices01/salon-booking/internal/models"
	"github.com/BruksfildServices01/salon-booking/internal/timezone"
)

const (
	completionLockTTL  = 30 * time.Second
	completionLockWait = 5 * time.Second
)

// CompleteAppointment marks the service as done and credits the loyalty
// points for it. Calling it again for the same appointment changes nothing.
type CompleteAppointment struct {
	repo   domain.Repository
	locker domain.Locker
	clock  timezone.Clock
	audit  *audit.Dispatcher
	log    *zap.Logger
}

func NewCompleteAppointment(
	repo domain.Repository,
	locker domain.Locker,
	clock timezone.Clock,
	audit *audit.Dispatcher,
	log *zap.Logger,
) *CompleteAppointment {
	return &CompleteAppointment{
		repo:   repo,
		locker: locker,
		clock:  clock,
		audit:  audit,
		log:    log,
	}
}

func (uc *CompleteAppointment) Execute(
	ctx context.Context,
	appointmentID string,
	userID string,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// Lock
	// --------------------------------------------------
	lockCtx, cancel := context.WithTimeout(ctx, completionLockWait)
	release, err := uc.locker.Acquire(lockCtx, "appointment:"+appointmentID, completionLockTTL)
	cancel()
	if err != nil {
		if errors.Is(err, domain.ErrLockHeld) {
			uc.log.Warn("completion already in progress", zap.String("appointment_id", appointmentID))
		}
		return nil, httperr.Operation("lock_appointment", err)
	}
	defer release()

	// --------------------------------------------------
	// Load
	// --------------------------------------------------
	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		if httperr.IsBusiness(err, "appointment_not_found") {
			uc.log.Error("completion requested for unknown appointment",
				zap.String("appointment_id", appointmentID),
				zap.String("user_id", userID),
			)
		}
		return nil, httperr.Operation("get_appointment", err)
	}

	if err := domain.CanComplete(domain.Status(ap.Status)); err != nil {
		return nil, err
	}

	if ap.UserID != userID {
		uc.log.Error("completion user does not own appointment",
			zap.String("appointment_id", appointmentID),
			zap.String("user_id", userID),
			zap.String("owner_id", ap.UserID),
		)
		return nil, httperr.ErrBusiness("user_mismatch")
	}

	// --------------------------------------------------
	// Mark completed
	// --------------------------------------------------
	now := uc.clock()
	changed, err := domain.MarkServiceCompleted(ap, now)
	if err != nil {
		return nil, err
	}
	if changed {
		if err := uc.repo.UpdateAppointment(ctx, ap.ID, domain.PatchFrom(ap)); err != nil {
			return nil, httperr.Operation("update_appointment", err)
		}
		uc.audit.Dispatch(audit.Event{
			UserID:   userID,
			Action:   audit.ActionAppointmentCompleted,
			Entity:   "appointment",
			EntityID: ap.ID,
		})
	}

	// --------------------------------------------------
	// Award points
	// --------------------------------------------------
	if ap.PointsAwarded {
		uc.log.Info("points already awarded", zap.String("appointment_id", ap.ID))
		return ap, nil
	}

	applied, err := uc.repo.AwardPoints(ctx, domain.NewPointsAward(ap, now))
	if err != nil {
		return nil, httperr.Operation("award_points", err)
	}
	ap.PointsAwarded = true

	if !applied {
		uc.log.Info("points already awarded", zap.String("appointment_id", ap.ID))
		return ap, nil
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   userID,
		Action:   audit.ActionPointsAwarded,
		Entity:   "appointment",
		EntityID: ap.ID,
		Metadata: map[string]int{"points": domain.PointsPerService},
	})

	return ap, nil
}
