package appointment

import (
	domain "github.com/BruksfildServices01/salon-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-booking/internal/timezone"
)

// CheckBookingWindow runs the date check when hhmm is empty and the slot
// check otherwise.
type CheckBookingWindow struct {
	window domain.BookingWindow
	clock  timezone.Clock
}

func NewCheckBookingWindow(window domain.BookingWindow, clock timezone.Clock) *CheckBookingWindow {
	return &CheckBookingWindow{window: window, clock: clock}
}

func (uc *CheckBookingWindow) Execute(date, hhmm string) error {
	now := uc.clock()
	if hhmm == "" {
		return uc.window.IsDateBookable(date, now)
	}
	return uc.window.IsSlotBookable(date, hhmm, now)
}

// Slots lists the canonical slot starts of the working day.
func (uc *CheckBookingWindow) Slots() []domain.TimeSlot {
	return domain.ToTimeSlots(domain.GenerateSlots(uc.window.Day))
}
