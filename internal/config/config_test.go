package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SERVER_PORT", "")
	t.Setenv("DAY_START_HOUR", "")

	cfg := Load()

	if cfg.Addr() != ":8080" {
		t.Fatalf("Addr() = %q, want :8080", cfg.Addr())
	}
	if cfg.DayStartHour != 10 || cfg.DayEndHour != 18 || cfg.SlotIntervalMinutes != 40 {
		t.Fatalf("unexpected working day %d-%d/%d", cfg.DayStartHour, cfg.DayEndHour, cfg.SlotIntervalMinutes)
	}
	if cfg.BookingHorizonDays != 30 {
		t.Fatalf("BookingHorizonDays = %d, want 30", cfg.BookingHorizonDays)
	}
	if cfg.AppointmentPrice != 5000 {
		t.Fatalf("AppointmentPrice = %d, want 5000", cfg.AppointmentPrice)
	}
	if cfg.StoreRetryInitial != 100*time.Millisecond {
		t.Fatalf("StoreRetryInitial = %s", cfg.StoreRetryInitial)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("STORE_BACKEND", BackendMongo)
	t.Setenv("PAYMENT_DELAY_MS", "5")
	t.Setenv("ENV", "production")
	t.Setenv("BOOKING_HORIZON_DAYS", "14")

	cfg := Load()

	if cfg.Addr() != ":9090" {
		t.Fatalf("Addr() = %q", cfg.Addr())
	}
	if cfg.StoreBackend != BackendMongo {
		t.Fatalf("StoreBackend = %q", cfg.StoreBackend)
	}
	if cfg.PaymentDelay != 5*time.Millisecond {
		t.Fatalf("PaymentDelay = %s", cfg.PaymentDelay)
	}
	if cfg.BookingHorizonDays != 14 {
		t.Fatalf("BookingHorizonDays = %d, want 14", cfg.BookingHorizonDays)
	}
	if !cfg.IsProduction() {
		t.Fatalf("expected production")
	}
}

func TestCORSOriginsList(t *testing.T) {
	t.Setenv("CORS_ORIGINS", " https://a.example , ,https://b.example")

	cfg := Load()

	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[0] != "https://a.example" || cfg.CORSOrigins[1] != "https://b.example" {
		t.Fatalf("CORSOrigins = %v", cfg.CORSOrigins)
	}
}
