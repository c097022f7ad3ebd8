package appointment

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	domain "github.com/BruksfildServices01/salon-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-booking/internal/httperr"
)

// GetAvailability reports which canonical slots of a barber's day have no
// active appointment. It does not apply the booking lead time.
type GetAvailability struct {
	repo   domain.Repository
	window domain.BookingWindow
	log    *zap.Logger
}

func NewGetAvailability(
	repo domain.Repository,
	window domain.BookingWindow,
	log *zap.Logger,
) *GetAvailability {
	return &GetAvailability{
		repo:   repo,
		window: window,
		log:    log,
	}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) ([]string, error) {

	if in.BarberID == "" {
		return nil, httperr.ErrBusinessMsg("invalid_request", "barber is required")
	}
	if _, err := domain.ParseDate(in.Date, uc.window.Location); err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	slots := domain.GenerateSlots(uc.window.Day)
	taken := make([]bool, len(slots))

	// one query per slot; the first failure cancels the rest
	g, gctx := errgroup.WithContext(ctx)
	for i, slot := range slots {
		g.Go(func() error {
			exists, err := uc.repo.ExistsActiveAppointment(gctx, in.BarberID, in.Date, slot)
			if err != nil {
				return err
			}
			taken[i] = exists
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		uc.log.Warn("availability check failed",
			zap.String("barber_id", in.BarberID),
			zap.String("date", in.Date),
			zap.Error(err),
		)
		return nil, httperr.Operation("get_availability", err)
	}

	available := make([]string, 0, len(slots))
	for i, slot := range slots {
		if !taken[i] {
			available = append(available, slot)
		}
	}
	return available, nil
}
