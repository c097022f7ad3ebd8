package appointment

import (
	"testing"
	"time"
)

func TestGenerateSlots_Defaults(t *testing.T) {
	slots := GenerateSlots(DefaultWorkingDay())

	want := []string{
		"10:00", "10:40", "11:20", "12:00", "12:40", "13:20",
		"14:00", "14:40", "15:20", "16:00", "16:40", "17:20",
	}
	if len(slots) != len(want) {
		t.Fatalf("expected %d slots, got %d (%v)", len(want), len(slots), slots)
	}
	for i := range want {
		if slots[i] != want[i] {
			t.Fatalf("slot[%d] = %s, want %s", i, slots[i], want[i])
		}
	}
}

func TestGenerateSlots_StrictlyIncreasingByInterval(t *testing.T) {
	days := []WorkingDay{
		{StartHour: 9, EndHour: 17, IntervalMinutes: 30},
		{StartHour: 0, EndHour: 24, IntervalMinutes: 45},
		{StartHour: 10, EndHour: 11, IntervalMinutes: 60},
		{StartHour: 8, EndHour: 20, IntervalMinutes: 25},
	}

	for _, d := range days {
		slots := GenerateSlots(d)
		if len(slots) == 0 {
			t.Fatalf("%+v: expected slots", d)
		}

		first, _ := time.Parse(TimeLayout, slots[0])
		if first.Hour() != d.StartHour || first.Minute() != 0 {
			t.Fatalf("%+v: first slot %s", d, slots[0])
		}

		for i := 1; i < len(slots); i++ {
			prev, _ := time.Parse(TimeLayout, slots[i-1])
			cur, _ := time.Parse(TimeLayout, slots[i])
			if cur.Sub(prev) != time.Duration(d.IntervalMinutes)*time.Minute {
				t.Fatalf("%+v: %s -> %s is not one interval", d, slots[i-1], slots[i])
			}
		}

		last, _ := time.Parse(TimeLayout, slots[len(slots)-1])
		endMin := last.Hour()*60 + last.Minute() + d.IntervalMinutes
		if endMin > d.EndHour*60 {
			t.Fatalf("%+v: last slot %s runs past end", d, slots[len(slots)-1])
		}
	}
}

func TestGenerateSlots_InvalidDefinitionIsEmpty(t *testing.T) {
	cases := []WorkingDay{
		{StartHour: 18, EndHour: 10, IntervalMinutes: 40},
		{StartHour: 10, EndHour: 10, IntervalMinutes: 40},
		{StartHour: 10, EndHour: 18, IntervalMinutes: 0},
		{StartHour: -1, EndHour: 18, IntervalMinutes: 40},
	}
	for _, d := range cases {
		if got := GenerateSlots(d); len(got) != 0 {
			t.Fatalf("%+v: expected no slots, got %v", d, got)
		}
	}
}

func TestIsCanonicalSlot(t *testing.T) {
	d := DefaultWorkingDay()
	if !IsCanonicalSlot(d, "14:00") {
		t.Fatalf("14:00 should be canonical")
	}
	if IsCanonicalSlot(d, "14:30") {
		t.Fatalf("14:30 should not be canonical")
	}
	if IsCanonicalSlot(d, "18:00") {
		t.Fatalf("18:00 should not be canonical")
	}
}

func TestSlotInstant_RejectsMalformed(t *testing.T) {
	for _, tc := range []struct{ date, hhmm string }{
		{"2025-6-10", "10:00"},
		{"2025-06-10", "9:00"},
		{"2025-06-10", "25:00"},
		{"not-a-date", "10:00"},
	} {
		if _, err := SlotInstant(tc.date, tc.hhmm, time.UTC); err == nil {
			t.Fatalf("expected error for %q %q", tc.date, tc.hhmm)
		}
	}
}

func TestToTimeSlots(t *testing.T) {
	got := ToTimeSlots([]string{"10:00", "17:20"})
	if len(got) != 2 || got[0].End != "10:40" || got[1].End != "18:00" {
		t.Fatalf("unexpected slots %+v", got)
	}
}
