package appointment

import "time"

type AvailabilityInput struct {
	BarberID string
	Date     string
}

type TimeSlot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// ToTimeSlots pairs each HH:MM start with its end time.
func ToTimeSlots(starts []string) []TimeSlot {
	out := make([]TimeSlot, 0, len(starts))
	for _, s := range starts {
		t, err := time.Parse(TimeLayout, s)
		if err != nil {
			continue
		}
		out = append(out, TimeSlot{
			Start: s,
			End:   t.Add(AppointmentDuration * time.Minute).Format(TimeLayout),
		})
	}
	return out
}
