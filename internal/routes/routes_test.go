package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/salon-booking/internal/audit"
	"github.com/BruksfildServices01/salon-booking/internal/config"
	"github.com/BruksfildServices01/salon-booking/internal/infra/lock"
	"github.com/BruksfildServices01/salon-booking/internal/infra/repository"
	"github.com/BruksfildServices01/salon-booking/internal/middleware"
	"github.com/BruksfildServices01/salon-booking/internal/models"
	"github.com/BruksfildServices01/salon-booking/internal/payment"
	"github.com/BruksfildServices01/salon-booking/internal/timezone"
)

// countingProcessor records how many charges reached the gateway.
type countingProcessor struct {
	payment.Processor
	mu      sync.Mutex
	charges int
}

func (p *countingProcessor) ProcessPayment(ctx context.Context, in payment.PaymentInput) (*payment.PaymentResult, error) {
	p.mu.Lock()
	p.charges++
	p.mu.Unlock()
	return p.Processor.ProcessPayment(ctx, in)
}

func (p *countingProcessor) Charges() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.charges
}

type testServer struct {
	router   *gin.Engine
	store    *repository.MemoryRepository
	payments *countingProcessor
	audit  *audit.Dispatcher
	now    time.Time
	secret string
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		JWTSecret:           "test-secret",
		Timezone:            "UTC",
		DayStartHour:        10,
		DayEndHour:          18,
		SlotIntervalMinutes: 40,
		BookingHorizonDays:  30,
		AppointmentPrice:    5000,
		RateLimitPerMin:     10000,
	}

	store := repository.NewMemoryRepository()
	dispatcher := audit.NewDispatcher(audit.New(store), zap.NewNop())
	now := time.Now().UTC()
	payments := &countingProcessor{Processor: payment.NewMockProcessor(0)}

	r := gin.New()
	RegisterRoutes(r, Deps{
		Config:   cfg,
		Store:    store,
		Locker:   lock.NewLocalLocker(),
		Payments: payments,
		Audit:    dispatcher,
		Clock:    timezone.FixedClock(now),
		Log:      zap.NewNop(),
	})

	return &testServer{router: r, store: store, payments: payments, audit: dispatcher, now: now, secret: cfg.JWTSecret}
}

// nextWeekday returns the first date at least two days ahead falling on
// one of the given weekdays.
func (s *testServer) nextWeekday(days ...time.Weekday) string {
	return s.weekdayFrom(2, days...)
}

func (s *testServer) weekdayFrom(offset int, days ...time.Weekday) string {
	d := s.now.AddDate(0, 0, offset)
	for {
		for _, wd := range days {
			if d.Weekday() == wd {
				return d.Format("2006-01-02")
			}
		}
		d = d.AddDate(0, 0, 1)
	}
}

func (s *testServer) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode %s: %v", w.Body.String(), err)
	}
	return out
}

type listBody[T any] struct {
	Data  []T `json:"data"`
	Total int `json:"total"`
}

type errorBody struct {
	Code string `json:"error_code"`
}

func TestBookingFlow(t *testing.T) {
	s := newTestServer(t)
	defer s.audit.Close()
	ctx := context.Background()

	loc := &models.Location{Name: "Mitre", IsOpen: true}
	_ = s.store.CreateLocation(ctx, loc)
	barber := &models.Barber{LocationID: loc.ID, Name: "Juan", IsActive: true}
	_ = s.store.CreateBarber(ctx, barber)

	staff := &models.User{Name: "Front desk", Email: "desk@example.com", Role: models.RoleStaff}
	_ = s.store.CreateUser(ctx, staff)
	staffToken, _ := middleware.IssueToken(s.secret, staff, s.now)

	// register
	w := s.do(t, http.MethodPost, "/api/auth/register", "", map[string]string{
		"name": "Ana", "email": "ana@example.com", "password": "secret1",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("register: %d %s", w.Code, w.Body.String())
	}
	session := decode[struct {
		User  models.User `json:"user"`
		Token string      `json:"token"`
	}](t, w)
	token := session.Token

	// login
	w = s.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": "ana@example.com", "password": "secret1",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("login: %d %s", w.Code, w.Body.String())
	}

	date := s.nextWeekday(time.Tuesday, time.Wednesday, time.Thursday)
	availabilityPath := "/api/barbers/" + barber.ID + "/availability?date=" + date

	w = s.do(t, http.MethodGet, availabilityPath, "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("availability: %d %s", w.Code, w.Body.String())
	}
	avail := decode[struct {
		Slots []struct{ Start, End string } `json:"slots"`
	}](t, w)
	if len(avail.Slots) != 12 {
		t.Fatalf("expected 12 free slots, got %d", len(avail.Slots))
	}

	// book
	booking := map[string]string{
		"location_id": loc.ID,
		"barber_id":   barber.ID,
		"date":        date,
		"time":        "14:00",
	}
	w = s.do(t, http.MethodPost, "/api/me/appointments", token, booking)
	if w.Code != http.StatusCreated {
		t.Fatalf("create: %d %s", w.Code, w.Body.String())
	}
	created := decode[models.Appointment](t, w)
	if created.ID == "" || created.Status != "confirmed" || created.Amount != 5000 || created.LocationName != "Mitre" {
		t.Fatalf("unexpected appointment %+v", created)
	}

	w = s.do(t, http.MethodPost, "/api/me/appointments", token, booking)
	if w.Code != http.StatusConflict || decode[errorBody](t, w).Code != "slot_taken" {
		t.Fatalf("double booking: %d %s", w.Code, w.Body.String())
	}
	if got := s.payments.Charges(); got != 1 {
		t.Fatalf("taken slot was charged: %d charges", got)
	}

	farAhead := map[string]string{
		"location_id": loc.ID,
		"barber_id":   barber.ID,
		"date":        s.weekdayFrom(45, time.Tuesday, time.Wednesday, time.Thursday),
		"time":        "14:00",
	}
	w = s.do(t, http.MethodPost, "/api/me/appointments", token, farAhead)
	if w.Code != http.StatusBadRequest || decode[errorBody](t, w).Code != "outside_booking_horizon" {
		t.Fatalf("beyond horizon: %d %s", w.Code, w.Body.String())
	}
	if got := s.payments.Charges(); got != 1 {
		t.Fatalf("rejected booking was charged: %d charges", got)
	}

	w = s.do(t, http.MethodGet, availabilityPath, "", nil)
	avail = decode[struct {
		Slots []struct{ Start, End string } `json:"slots"`
	}](t, w)
	if len(avail.Slots) != 11 {
		t.Fatalf("expected 11 free slots, got %d", len(avail.Slots))
	}
	for _, slot := range avail.Slots {
		if slot.Start == "14:00" {
			t.Fatalf("booked slot still offered")
		}
	}

	w = s.do(t, http.MethodGet, "/api/me/appointments", token, nil)
	mine := decode[listBody[map[string]any]](t, w)
	if mine.Total != 1 || mine.Data[0]["id"] != created.ID {
		t.Fatalf("unexpected list %s", w.Body.String())
	}

	// complete
	completePath := "/api/staff/appointments/" + created.ID + "/complete"
	w = s.do(t, http.MethodPatch, completePath, token, map[string]string{"user_id": session.User.ID})
	if w.Code != http.StatusForbidden {
		t.Fatalf("client completing: %d", w.Code)
	}
	for i := 0; i < 2; i++ {
		w = s.do(t, http.MethodPatch, completePath, staffToken, map[string]string{"user_id": session.User.ID})
		if w.Code != http.StatusOK {
			t.Fatalf("complete %d: %d %s", i, w.Code, w.Body.String())
		}
	}
	w = s.do(t, http.MethodPatch, completePath, staffToken, map[string]string{"user_id": "someone-else"})
	if w.Code != http.StatusForbidden || decode[errorBody](t, w).Code != "user_mismatch" {
		t.Fatalf("user mismatch: %d %s", w.Code, w.Body.String())
	}

	w = s.do(t, http.MethodGet, "/api/me/points", token, nil)
	if got := decode[struct{ Points int }](t, w).Points; got != 20 {
		t.Fatalf("points = %d", got)
	}
	w = s.do(t, http.MethodGet, "/api/me/points/history", token, nil)
	if got := decode[listBody[models.PointsHistory]](t, w).Total; got != 1 {
		t.Fatalf("history entries = %d", got)
	}
}

func TestBookingWindowRoutes(t *testing.T) {
	s := newTestServer(t)
	defer s.audit.Close()

	saturday := s.nextWeekday(time.Saturday)
	w := s.do(t, http.MethodGet, "/api/booking-window/date?date="+saturday, "", nil)
	if w.Code != http.StatusBadRequest || decode[errorBody](t, w).Code != "non_business_day" {
		t.Fatalf("saturday: %d %s", w.Code, w.Body.String())
	}

	weekday := s.nextWeekday(time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday)
	w = s.do(t, http.MethodGet, "/api/booking-window/slot?date="+weekday+"&time=10:40", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("weekday slot: %d %s", w.Code, w.Body.String())
	}

	w = s.do(t, http.MethodGet, "/api/booking-window/slot?date="+weekday, "", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("missing time: %d", w.Code)
	}

	w = s.do(t, http.MethodGet, "/api/slots", "", nil)
	if got := decode[listBody[map[string]string]](t, w).Total; got != 12 {
		t.Fatalf("slots = %d", got)
	}
}

func TestPublicRoutes(t *testing.T) {
	s := newTestServer(t)
	defer s.audit.Close()

	w := s.do(t, http.MethodGet, "/health", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("health: %d", w.Code)
	}

	w = s.do(t, http.MethodPost, "/api/assistant/messages", "", map[string]string{"text": "What are your opening hours?"})
	reply := decode[struct{ Reply string }](t, w).Reply
	if w.Code != http.StatusOK || reply == "" {
		t.Fatalf("assistant: %d %s", w.Code, w.Body.String())
	}

	w = s.do(t, http.MethodGet, "/api/locations/missing/barbers", "", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("unknown location: %d", w.Code)
	}

	w = s.do(t, http.MethodGet, "/api/me", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("me without token: %d", w.Code)
	}
}
