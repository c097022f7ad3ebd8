package repository

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v5"
	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/salon-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-booking/internal/domain/loyalty"
	"github.com/BruksfildServices01/salon-booking/internal/httperr"
	"github.com/BruksfildServices01/salon-booking/internal/models"
)

type RetryPolicy struct {
	MaxTries    uint
	Initial     time.Duration
	MaxInterval time.Duration
}

func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxTries:    4,
		Initial:     100 * time.Millisecond,
		MaxInterval: 2 * time.Second,
	}
}

// RetryingStore retries transient store failures with exponential backoff.
// Business errors and context cancellation are returned at once.
// CreateUser and RedeemPoints are not idempotent and run exactly once.
type RetryingStore struct {
	next   Store
	policy RetryPolicy
	log    *zap.Logger
}

func NewRetryingStore(next Store, policy RetryPolicy, log *zap.Logger) *RetryingStore {
	if policy.MaxTries == 0 {
		policy.MaxTries = 1
	}
	if policy.Initial <= 0 {
		policy.Initial = DefaultRetryPolicy().Initial
	}
	if policy.MaxInterval <= 0 {
		policy.MaxInterval = DefaultRetryPolicy().MaxInterval
	}
	return &RetryingStore{next: next, policy: policy, log: log}
}

func permanent(err error) bool {
	if _, ok := httperr.AsBusiness(err); ok {
		return true
	}
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

func retry[T any](ctx context.Context, s *RetryingStore, op string, fn func() (T, error)) (T, error) {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = s.policy.Initial
	b.MaxInterval = s.policy.MaxInterval

	attempt := 0
	v, err := backoff.Retry(ctx, func() (T, error) {
		attempt++
		v, err := fn()
		if err == nil {
			return v, nil
		}
		if permanent(err) {
			return v, backoff.Permanent(err)
		}
		s.log.Warn("store call failed",
			zap.String("op", op),
			zap.Int("attempt", attempt),
			zap.Error(err),
		)
		return v, err
	}, backoff.WithBackOff(b), backoff.WithMaxTries(s.policy.MaxTries))

	var pe *backoff.PermanentError
	if errors.As(err, &pe) {
		err = pe.Err
	}
	return v, err
}

func retryErr(ctx context.Context, s *RetryingStore, op string, fn func() error) error {
	_, err := retry(ctx, s, op, func() (struct{}, error) {
		return struct{}{}, fn()
	})
	return err
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

// CreateAppointment fixes the id up front so a retry after a lost
// acknowledgement can recognise its own insert.
func (s *RetryingStore) CreateAppointment(ctx context.Context, ap *models.Appointment) error {
	if ap.ID == "" {
		ap.ID = models.NewID()
	}

	attempt := 0
	return retryErr(ctx, s, "create_appointment", func() error {
		attempt++
		err := s.next.CreateAppointment(ctx, ap)
		if err != nil && attempt > 1 && httperr.IsBusiness(err, "slot_taken") {
			if existing, gerr := s.next.GetAppointment(ctx, ap.ID); gerr == nil && existing != nil {
				return nil
			}
		}
		return err
	})
}

func (s *RetryingStore) ExistsActiveAppointment(ctx context.Context, barberID, date, hhmm string) (bool, error) {
	return retry(ctx, s, "exists_active_appointment", func() (bool, error) {
		return s.next.ExistsActiveAppointment(ctx, barberID, date, hhmm)
	})
}

func (s *RetryingStore) GetAppointment(ctx context.Context, id string) (*models.Appointment, error) {
	return retry(ctx, s, "get_appointment", func() (*models.Appointment, error) {
		return s.next.GetAppointment(ctx, id)
	})
}

func (s *RetryingStore) UpdateAppointment(ctx context.Context, id string, patch domain.AppointmentPatch) error {
	return retryErr(ctx, s, "update_appointment", func() error {
		return s.next.UpdateAppointment(ctx, id, patch)
	})
}

func (s *RetryingStore) ListAppointmentsByUser(ctx context.Context, userID string) ([]models.Appointment, error) {
	return retry(ctx, s, "list_appointments_by_user", func() ([]models.Appointment, error) {
		return s.next.ListAppointmentsByUser(ctx, userID)
	})
}

// AwardPoints is conditional on the pointsAwarded flag, so replaying it
// cannot award twice.
func (s *RetryingStore) AwardPoints(ctx context.Context, award domain.PointsAward) (bool, error) {
	return retry(ctx, s, "award_points", func() (bool, error) {
		return s.next.AwardPoints(ctx, award)
	})
}

// --------------------------------------------------
// Loyalty
// --------------------------------------------------

func (s *RetryingStore) ListPointsHistory(ctx context.Context, userID string) ([]models.PointsHistory, error) {
	return retry(ctx, s, "list_points_history", func() ([]models.PointsHistory, error) {
		return s.next.ListPointsHistory(ctx, userID)
	})
}

func (s *RetryingStore) ListActiveRewards(ctx context.Context) ([]models.Reward, error) {
	return retry(ctx, s, "list_active_rewards", func() ([]models.Reward, error) {
		return s.next.ListActiveRewards(ctx)
	})
}

func (s *RetryingStore) GetReward(ctx context.Context, id string) (*models.Reward, error) {
	return retry(ctx, s, "get_reward", func() (*models.Reward, error) {
		return s.next.GetReward(ctx, id)
	})
}

func (s *RetryingStore) RedeemPoints(ctx context.Context, r loyalty.Redemption) (bool, error) {
	return s.next.RedeemPoints(ctx, r)
}

// --------------------------------------------------
// Accounts
// --------------------------------------------------

func (s *RetryingStore) CreateUser(ctx context.Context, u *models.User) error {
	return s.next.CreateUser(ctx, u)
}

func (s *RetryingStore) GetUser(ctx context.Context, id string) (*models.User, error) {
	return retry(ctx, s, "get_user", func() (*models.User, error) {
		return s.next.GetUser(ctx, id)
	})
}

func (s *RetryingStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return retry(ctx, s, "get_user_by_email", func() (*models.User, error) {
		return s.next.GetUserByEmail(ctx, email)
	})
}

// --------------------------------------------------
// Catalog
// --------------------------------------------------

func (s *RetryingStore) ListLocations(ctx context.Context) ([]models.Location, error) {
	return retry(ctx, s, "list_locations", func() ([]models.Location, error) {
		return s.next.ListLocations(ctx)
	})
}

func (s *RetryingStore) GetLocation(ctx context.Context, id string) (*models.Location, error) {
	return retry(ctx, s, "get_location", func() (*models.Location, error) {
		return s.next.GetLocation(ctx, id)
	})
}

func (s *RetryingStore) ListActiveBarbersByLocation(ctx context.Context, locationID string) ([]models.Barber, error) {
	return retry(ctx, s, "list_barbers", func() ([]models.Barber, error) {
		return s.next.ListActiveBarbersByLocation(ctx, locationID)
	})
}

func (s *RetryingStore) GetBarber(ctx context.Context, id string) (*models.Barber, error) {
	return retry(ctx, s, "get_barber", func() (*models.Barber, error) {
		return s.next.GetBarber(ctx, id)
	})
}

func (s *RetryingStore) CreateLocation(ctx context.Context, l *models.Location) error {
	if l.ID == "" {
		l.ID = models.NewID()
	}
	return retryErr(ctx, s, "create_location", func() error {
		return s.next.CreateLocation(ctx, l)
	})
}

func (s *RetryingStore) CreateBarber(ctx context.Context, b *models.Barber) error {
	if b.ID == "" {
		b.ID = models.NewID()
	}
	return retryErr(ctx, s, "create_barber", func() error {
		return s.next.CreateBarber(ctx, b)
	})
}

func (s *RetryingStore) CreateReward(ctx context.Context, r *models.Reward) error {
	if r.ID == "" {
		r.ID = models.NewID()
	}
	return retryErr(ctx, s, "create_reward", func() error {
		return s.next.CreateReward(ctx, r)
	})
}

func (s *RetryingStore) CreateAuditLog(ctx context.Context, entry *models.AuditLog) error {
	return retryErr(ctx, s, "create_audit_log", func() error {
		return s.next.CreateAuditLog(ctx, entry)
	})
}

var _ Store = (*RetryingStore)(nil)
