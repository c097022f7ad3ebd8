package repository

import (
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	domain "github.com/BruksfildServices01/salon-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-booking/internal/domain/loyalty"
	"github.com/BruksfildServices01/salon-booking/internal/httperr"
	"github.com/BruksfildServices01/salon-booking/internal/models"
)

// MemoryRepository is a process-local Store for development and tests. It
// enforces the same constraints as the database backends.
type MemoryRepository struct {
	mu sync.Mutex

	appointments map[string]models.Appointment
	users        map[string]models.User
	history      []models.PointsHistory
	locations    map[string]models.Location
	barbers      map[string]models.Barber
	rewards      map[string]models.Reward
	auditLogs    []models.AuditLog

	now func() time.Time
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		appointments: map[string]models.Appointment{},
		users:        map[string]models.User{},
		locations:    map[string]models.Location{},
		barbers:      map[string]models.Barber{},
		rewards:      map[string]models.Reward{},
		now:          time.Now,
	}
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

func (m *MemoryRepository) CreateAppointment(ctx context.Context, ap *models.Appointment) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if ap.ID == "" {
		ap.ID = models.NewID()
	}
	if _, dup := m.appointments[ap.ID]; dup {
		return httperr.ErrBusiness("slot_taken")
	}
	if domain.Status(ap.Status).IsActive() && m.activeLocked(ap.BarberID, ap.Date, ap.Time) {
		return httperr.ErrBusiness("slot_taken")
	}

	now := m.now()
	if ap.CreatedAt.IsZero() {
		ap.CreatedAt = now
	}
	ap.UpdatedAt = now
	m.appointments[ap.ID] = *ap
	return nil
}

func (m *MemoryRepository) activeLocked(barberID, date, hhmm string) bool {
	for _, a := range m.appointments {
		if a.BarberID == barberID && a.Date == date && a.Time == hhmm && domain.Status(a.Status).IsActive() {
			return true
		}
	}
	return false
}

func (m *MemoryRepository) ExistsActiveAppointment(ctx context.Context, barberID, date, hhmm string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.activeLocked(barberID, date, hhmm), nil
}

func (m *MemoryRepository) GetAppointment(ctx context.Context, id string) (*models.Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	ap, ok := m.appointments[id]
	if !ok {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}
	return &ap, nil
}

func (m *MemoryRepository) UpdateAppointment(ctx context.Context, id string, patch domain.AppointmentPatch) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	ap, ok := m.appointments[id]
	if !ok {
		return httperr.ErrBusiness("appointment_not_found")
	}
	if patch.Status != nil {
		ap.Status = *patch.Status
	}
	if patch.ServiceCompleted != nil {
		ap.ServiceCompleted = *patch.ServiceCompleted
	}
	if patch.CompletedAt != nil {
		t := *patch.CompletedAt
		ap.CompletedAt = &t
	}
	if patch.CancelledAt != nil {
		t := *patch.CancelledAt
		ap.CancelledAt = &t
	}
	ap.UpdatedAt = m.now()
	m.appointments[id] = ap
	return nil
}

func (m *MemoryRepository) ListAppointmentsByUser(ctx context.Context, userID string) ([]models.Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := []models.Appointment{}
	for _, a := range m.appointments {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	slices.SortFunc(out, func(a, b models.Appointment) int {
		return strings.Compare(b.Date+" "+b.Time, a.Date+" "+a.Time)
	})
	return out, nil
}

func (m *MemoryRepository) AwardPoints(ctx context.Context, award domain.PointsAward) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	ap, ok := m.appointments[award.AppointmentID]
	if !ok {
		return false, httperr.ErrBusiness("appointment_not_found")
	}
	if ap.PointsAwarded {
		return false, nil
	}
	user, ok := m.users[award.UserID]
	if !ok {
		return false, httperr.ErrBusiness("user_not_found")
	}

	ap.PointsAwarded = true
	m.appointments[ap.ID] = ap
	user.Points += award.Points
	m.users[user.ID] = user
	m.history = append(m.history, award.History)
	return true, nil
}

// --------------------------------------------------
// Loyalty
// --------------------------------------------------

func (m *MemoryRepository) ListPointsHistory(ctx context.Context, userID string) ([]models.PointsHistory, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := []models.PointsHistory{}
	for _, h := range m.history {
		if h.UserID == userID {
			out = append(out, h)
		}
	}
	slices.SortStableFunc(out, func(a, b models.PointsHistory) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return out, nil
}

func (m *MemoryRepository) ListActiveRewards(ctx context.Context) ([]models.Reward, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := []models.Reward{}
	for _, r := range m.rewards {
		if r.IsActive {
			out = append(out, r)
		}
	}
	slices.SortFunc(out, func(a, b models.Reward) int {
		return a.PointsCost - b.PointsCost
	})
	return out, nil
}

func (m *MemoryRepository) GetReward(ctx context.Context, id string) (*models.Reward, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	r, ok := m.rewards[id]
	if !ok {
		return nil, httperr.ErrBusiness("reward_not_found")
	}
	return &r, nil
}

func (m *MemoryRepository) RedeemPoints(ctx context.Context, r loyalty.Redemption) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.users[r.UserID]
	if !ok {
		return false, httperr.ErrBusiness("user_not_found")
	}
	if user.Points < r.Cost {
		return false, nil
	}
	user.Points -= r.Cost
	m.users[user.ID] = user
	m.history = append(m.history, r.History)
	return true, nil
}

// --------------------------------------------------
// Accounts
// --------------------------------------------------

func (m *MemoryRepository) CreateUser(ctx context.Context, u *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.users {
		if existing.Email == u.Email {
			return httperr.ErrBusiness("email_taken")
		}
	}
	if u.ID == "" {
		u.ID = models.NewID()
	}
	now := m.now()
	u.CreatedAt, u.UpdatedAt = now, now
	m.users[u.ID] = *u
	return nil
}

func (m *MemoryRepository) GetUser(ctx context.Context, id string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.users[id]
	if !ok {
		return nil, httperr.ErrBusiness("user_not_found")
	}
	return &u, nil
}

func (m *MemoryRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, httperr.ErrBusiness("user_not_found")
}

// --------------------------------------------------
// Catalog
// --------------------------------------------------

func (m *MemoryRepository) ListLocations(ctx context.Context) ([]models.Location, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]models.Location, 0, len(m.locations))
	for _, l := range m.locations {
		out = append(out, l)
	}
	slices.SortFunc(out, func(a, b models.Location) int {
		return strings.Compare(a.Name, b.Name)
	})
	return out, nil
}

func (m *MemoryRepository) GetLocation(ctx context.Context, id string) (*models.Location, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	l, ok := m.locations[id]
	if !ok {
		return nil, httperr.ErrBusiness("location_not_found")
	}
	return &l, nil
}

func (m *MemoryRepository) ListActiveBarbersByLocation(ctx context.Context, locationID string) ([]models.Barber, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := []models.Barber{}
	for _, b := range m.barbers {
		if b.LocationID == locationID && b.IsActive {
			out = append(out, b)
		}
	}
	slices.SortFunc(out, func(a, b models.Barber) int {
		return strings.Compare(a.Name, b.Name)
	})
	return out, nil
}

func (m *MemoryRepository) GetBarber(ctx context.Context, id string) (*models.Barber, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	b, ok := m.barbers[id]
	if !ok {
		return nil, httperr.ErrBusiness("barber_not_found")
	}
	return &b, nil
}

func (m *MemoryRepository) CreateLocation(ctx context.Context, l *models.Location) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if l.ID == "" {
		l.ID = models.NewID()
	}
	m.locations[l.ID] = *l
	return nil
}

func (m *MemoryRepository) CreateBarber(ctx context.Context, b *models.Barber) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if b.ID == "" {
		b.ID = models.NewID()
	}
	m.barbers[b.ID] = *b
	return nil
}

func (m *MemoryRepository) CreateReward(ctx context.Context, r *models.Reward) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if r.ID == "" {
		r.ID = models.NewID()
	}
	m.rewards[r.ID] = *r
	return nil
}

func (m *MemoryRepository) CreateAuditLog(ctx context.Context, entry *models.AuditLog) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.auditLogs = append(m.auditLogs, *entry)
	return nil
}

// AuditLogs returns a copy of the stored audit rows.
func (m *MemoryRepository) AuditLogs() []models.AuditLog {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.auditLogs)
}

var _ Store = (*MemoryRepository)(nil)
