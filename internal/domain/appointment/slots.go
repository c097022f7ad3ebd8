package appointment

import (
	"fmt"
	"time"
)

const (
	DefaultStartHour       = 10
	DefaultEndHour         = 18
	DefaultIntervalMinutes = 40

	// AppointmentDuration is the same for every service.
	AppointmentDuration = 40

	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// WorkingDay describes the bookable part of a day.
type WorkingDay struct {
	StartHour       int
	EndHour         int
	IntervalMinutes int
}

func DefaultWorkingDay() WorkingDay {
	return WorkingDay{
		StartHour:       DefaultStartHour,
		EndHour:         DefaultEndHour,
		IntervalMinutes: DefaultIntervalMinutes,
	}
}

func (d WorkingDay) valid() bool {
	return d.StartHour >= 0 &&
		d.EndHour <= 24 &&
		d.StartHour < d.EndHour &&
		d.IntervalMinutes > 0
}

// GenerateSlots lists the HH:MM slot starts from StartHour:00, every
// IntervalMinutes, keeping only slots that end by EndHour:00.
func GenerateSlots(d WorkingDay) []string {
	if !d.valid() {
		return []string{}
	}

	start := d.StartHour * 60
	end := d.EndHour * 60

	slots := make([]string, 0, (end-start)/d.IntervalMinutes)
	for m := start; m+d.IntervalMinutes <= end; m += d.IntervalMinutes {
		slots = append(slots, fmt.Sprintf("%02d:%02d", m/60, m%60))
	}
	return slots
}

func IsCanonicalSlot(d WorkingDay, hhmm string) bool {
	for _, s := range GenerateSlots(d) {
		if s == hhmm {
			return true
		}
	}
	return false
}

// ParseDate reads a YYYY-MM-DD calendar date as midnight in loc.
func ParseDate(date string, loc *time.Location) (time.Time, error) {
	if len(date) != len(DateLayout) {
		return time.Time{}, fmt.Errorf("invalid date %q", date)
	}
	return time.ParseInLocation(DateLayout, date, loc)
}

// SlotInstant combines a calendar date and an HH:MM time in loc.
func SlotInstant(date, hhmm string, loc *time.Location) (time.Time, error) {
	if len(hhmm) != len(TimeLayout) {
		return time.Time{}, fmt.Errorf("invalid time %q", hhmm)
	}
	if _, err := ParseDate(date, loc); err != nil {
		return time.Time{}, err
	}
	return time.ParseInLocation(DateLayout+" "+TimeLayout, date+" "+hhmm, loc)
}
