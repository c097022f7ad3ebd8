package timezone

import (
	"testing"
	"time"
)

func TestLocationFallsBackOnInvalidZone(t *testing.T) {
	loc := Location("Not/AZone")
	if loc == nil {
		t.Fatalf("expected a location")
	}

	want := Location(DefaultTimezone)
	if loc.String() != want.String() {
		t.Fatalf("location = %s, want %s", loc, want)
	}
}

func TestIsValid(t *testing.T) {
	if IsValid("") {
		t.Fatalf("empty zone must be invalid")
	}
	if !IsValid("UTC") {
		t.Fatalf("UTC must be valid")
	}
}

func TestFixedClock(t *testing.T) {
	at := time.Date(2025, 6, 10, 12, 5, 0, 0, time.UTC)
	clock := FixedClock(at)
	if !clock().Equal(at) {
		t.Fatalf("clock() = %s, want %s", clock(), at)
	}
}
