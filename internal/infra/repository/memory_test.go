package repository

import (
	"context"
	"testing"
	"time"

	domain "github.com/BruksfildServices01/salon-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-booking/internal/domain/loyalty"
	"github.com/BruksfildServices01/salon-booking/internal/httperr"
	"github.com/BruksfildServices01/salon-booking/internal/models"
)

func confirmedAt(userID, barberID, date, hhmm string) *models.Appointment {
	return &models.Appointment{
		UserID:   userID,
		BarberID: barberID,
		Date:     date,
		Time:     hhmm,
		Status:   string(domain.StatusConfirmed),
	}
}

func TestMemoryRepository_ActiveSlotIsExclusive(t *testing.T) {
	m := NewMemoryRepository()
	ctx := context.Background()

	first := confirmedAt("u1", "b1", "2025-06-10", "14:00")
	if err := m.CreateAppointment(ctx, first); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := m.CreateAppointment(ctx, confirmedAt("u2", "b1", "2025-06-10", "14:00")); !httperr.IsBusiness(err, "slot_taken") {
		t.Fatalf("expected slot_taken, got %v", err)
	}
	if err := m.CreateAppointment(ctx, confirmedAt("u2", "b2", "2025-06-10", "14:00")); err != nil {
		t.Fatalf("other barber should be free: %v", err)
	}

	cancelled := string(domain.StatusCancelled)
	if err := m.UpdateAppointment(ctx, first.ID, domain.AppointmentPatch{Status: &cancelled}); err != nil {
		t.Fatalf("update: %v", err)
	}
	if err := m.CreateAppointment(ctx, confirmedAt("u2", "b1", "2025-06-10", "14:00")); err != nil {
		t.Fatalf("cancelled slot should be free again: %v", err)
	}
}

func TestMemoryRepository_ListByUserNewestFirst(t *testing.T) {
	m := NewMemoryRepository()
	ctx := context.Background()

	for _, slot := range [][2]string{
		{"2025-06-10", "10:00"},
		{"2025-06-12", "11:20"},
		{"2025-06-10", "16:00"},
	} {
		if err := m.CreateAppointment(ctx, confirmedAt("u1", "b1", slot[0], slot[1])); err != nil {
			t.Fatalf("create: %v", err)
		}
	}
	_ = m.CreateAppointment(ctx, confirmedAt("u2", "b2", "2025-06-11", "10:00"))

	list, err := m.ListAppointmentsByUser(ctx, "u1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	want := []string{"2025-06-12 11:20", "2025-06-10 16:00", "2025-06-10 10:00"}
	if len(list) != len(want) {
		t.Fatalf("expected %d, got %d", len(want), len(list))
	}
	for i, a := range list {
		if got := a.Date + " " + a.Time; got != want[i] {
			t.Fatalf("list[%d] = %s, want %s", i, got, want[i])
		}
	}
}

func TestMemoryRepository_AwardPointsOnce(t *testing.T) {
	m := NewMemoryRepository()
	ctx := context.Background()

	u := &models.User{Email: "ana@example.com", Name: "Ana"}
	if err := m.CreateUser(ctx, u); err != nil {
		t.Fatalf("create user: %v", err)
	}
	ap := confirmedAt(u.ID, "b1", "2025-06-10", "14:00")
	_ = m.CreateAppointment(ctx, ap)

	now := time.Date(2025, 6, 10, 15, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		applied, err := m.AwardPoints(ctx, domain.NewPointsAward(ap, now))
		if err != nil {
			t.Fatalf("award: %v", err)
		}
		if applied != (i == 0) {
			t.Fatalf("call %d: applied=%v", i, applied)
		}
	}

	got, _ := m.GetUser(ctx, u.ID)
	if got.Points != domain.PointsPerService {
		t.Fatalf("points = %d", got.Points)
	}
	hist, _ := m.ListPointsHistory(ctx, u.ID)
	if len(hist) != 1 || hist[0].AppointmentID != ap.ID {
		t.Fatalf("unexpected history %+v", hist)
	}
}

func TestMemoryRepository_RedeemNeedsBalance(t *testing.T) {
	m := NewMemoryRepository()
	ctx := context.Background()

	u := &models.User{Email: "ana@example.com", Points: 60}
	_ = m.CreateUser(ctx, u)
	reward := &models.Reward{Title: "Free cut", PointsCost: 50, IsActive: true}
	_ = m.CreateReward(ctx, reward)

	now := time.Now()
	ok, err := m.RedeemPoints(ctx, loyalty.NewRedemption(u.ID, reward, now))
	if err != nil || !ok {
		t.Fatalf("first redeem: ok=%v err=%v", ok, err)
	}
	ok, err = m.RedeemPoints(ctx, loyalty.NewRedemption(u.ID, reward, now))
	if err != nil || ok {
		t.Fatalf("second redeem should be refused: ok=%v err=%v", ok, err)
	}

	got, _ := m.GetUser(ctx, u.ID)
	if got.Points != 10 {
		t.Fatalf("points = %d", got.Points)
	}
}

func TestMemoryRepository_DuplicateEmail(t *testing.T) {
	m := NewMemoryRepository()
	ctx := context.Background()

	if err := m.CreateUser(ctx, &models.User{Email: "ana@example.com"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := m.CreateUser(ctx, &models.User{Email: "ana@example.com"}); !httperr.IsBusiness(err, "email_taken") {
		t.Fatalf("expected email_taken, got %v", err)
	}
}
