package appointment

import (
	"testing"

	"github.com/BruksfildServices01/salon-booking/internal/httperr"
	"github.com/BruksfildServices01/salon-booking/internal/models"
)

func TestCancel(t *testing.T) {
	w := testWindow()

	ap := &models.Appointment{Date: "2025-06-10", Time: "13:30", Status: string(StatusConfirmed)}
	if err := Cancel(ap, w, at("2025-06-10", "12:05")); !httperr.IsBusiness(err, "insufficient_lead_time") {
		t.Fatalf("expected insufficient_lead_time, got %v", err)
	}
	if ap.Status != string(StatusConfirmed) {
		t.Fatalf("status changed on rejection: %s", ap.Status)
	}

	now := at("2025-06-10", "10:00")
	if err := Cancel(ap, w, now); err != nil {
		t.Fatalf("Cancel error: %v", err)
	}
	if ap.Status != string(StatusCancelled) || ap.CancelledAt == nil || !ap.CancelledAt.Equal(now) {
		t.Fatalf("unexpected appointment after cancel: %+v", ap)
	}

	if err := Cancel(ap, w, now); !httperr.IsBusiness(err, "invalid_state") {
		t.Fatalf("expected invalid_state on second cancel, got %v", err)
	}
}

func TestMarkServiceCompleted(t *testing.T) {
	ap := &models.Appointment{Status: string(StatusConfirmed)}
	first := at("2025-06-10", "15:00")

	changed, err := MarkServiceCompleted(ap, first)
	if err != nil || !changed {
		t.Fatalf("first completion: changed=%v err=%v", changed, err)
	}
	if !ap.ServiceCompleted || ap.Status != string(StatusCompleted) {
		t.Fatalf("unexpected appointment: %+v", ap)
	}

	changed, err = MarkServiceCompleted(ap, at("2025-06-10", "16:00"))
	if err != nil || changed {
		t.Fatalf("second completion: changed=%v err=%v", changed, err)
	}
	if !ap.CompletedAt.Equal(first) {
		t.Fatalf("completedAt moved to %s", ap.CompletedAt)
	}

	cancelled := &models.Appointment{Status: string(StatusCancelled)}
	if _, err := MarkServiceCompleted(cancelled, first); !httperr.IsBusiness(err, "invalid_state") {
		t.Fatalf("expected invalid_state, got %v", err)
	}
}
