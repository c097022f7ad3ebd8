package appointment

import (
	"time"

	"github.com/BruksfildServices01/salon-booking/internal/httperr"
)

// MinLeadTime applies to booking a slot and to cancelling one.
const MinLeadTime = 2 * time.Hour

// DefaultHorizonDays is how many calendar days, today included, are
// offered for booking.
const DefaultHorizonDays = 30

// BookingWindow decides which dates and times can be picked at all.
type BookingWindow struct {
	Day        WorkingDay
	LeadTime   time.Duration
	ClosedDays []time.Weekday
	Location   *time.Location

	// HorizonDays <= 0 disables the upper bound.
	HorizonDays int
}

func NewBookingWindow(day WorkingDay, loc *time.Location) BookingWindow {
	if loc == nil {
		loc = time.UTC
	}
	return BookingWindow{
		Day:        day,
		LeadTime:   MinLeadTime,
		ClosedDays: []time.Weekday{time.Saturday, time.Sunday},
		Location:   loc,

		HorizonDays: DefaultHorizonDays,
	}
}

func (w BookingWindow) isClosed(d time.Weekday) bool {
	for _, c := range w.ClosedDays {
		if c == d {
			return true
		}
	}
	return false
}

func (w BookingWindow) leadTimeOK(at, now time.Time) bool {
	return !at.Before(now.Add(w.LeadTime))
}

// withinHorizon compares calendar days in the salon zone, so DST shifts
// never move the boundary.
func (w BookingWindow) withinHorizon(day, now time.Time) bool {
	if w.HorizonDays <= 0 {
		return true
	}
	d := day.In(w.Location)
	n := now.In(w.Location)
	target := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
	today := time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, time.UTC)
	return target.Before(today.AddDate(0, 0, w.HorizonDays))
}

// IsDateBookable is the coarse check run when a date is picked: the
// business must be open that day, the day must fall inside the horizon and
// its last slot must still be at least LeadTime away.
func (w BookingWindow) IsDateBookable(date string, now time.Time) error {
	day, err := ParseDate(date, w.Location)
	if err != nil {
		return httperr.ErrBusiness("invalid_date_or_time")
	}

	if w.isClosed(day.Weekday()) {
		return httperr.ErrBusiness("non_business_day")
	}
	if !w.withinHorizon(day, now) {
		return httperr.ErrBusiness("outside_booking_horizon")
	}

	slots := GenerateSlots(w.Day)
	if len(slots) == 0 {
		return httperr.ErrBusiness("non_business_day")
	}

	last, err := SlotInstant(date, slots[len(slots)-1], w.Location)
	if err != nil {
		return httperr.ErrBusiness("invalid_date_or_time")
	}
	if !w.leadTimeOK(last, now) {
		return httperr.ErrBusiness("insufficient_lead_time")
	}
	return nil
}

// IsSlotBookable is the fine check run when a time is picked.
func (w BookingWindow) IsSlotBookable(date, hhmm string, now time.Time) error {
	at, err := SlotInstant(date, hhmm, w.Location)
	if err != nil {
		return httperr.ErrBusiness("invalid_date_or_time")
	}

	if w.isClosed(at.Weekday()) {
		return httperr.ErrBusiness("non_business_day")
	}
	if !w.withinHorizon(at, now) {
		return httperr.ErrBusiness("outside_booking_horizon")
	}
	if !w.leadTimeOK(at, now) {
		return httperr.ErrBusiness("insufficient_lead_time")
	}
	return nil
}

// CanCancelAt applies the booking lead time to a cancellation request.
func (w BookingWindow) CanCancelAt(date, hhmm string, now time.Time) error {
	at, err := SlotInstant(date, hhmm, w.Location)
	if err != nil {
		return httperr.ErrBusiness("invalid_date_or_time")
	}
	if !w.leadTimeOK(at, now) {
		return httperr.ErrBusinessMsg(
			"insufficient_lead_time",
			"appointments can only be cancelled at least 2 hours in advance",
		)
	}
	return nil
}
