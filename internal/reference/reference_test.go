package reference

import (
	"regexp"
	"testing"
)

func TestTrackingNumberFormat(t *testing.T) {
	pattern := regexp.MustCompile(`^[A-Z]{2}[A-Z0-9]{10}$`)
	for i := 0; i < 100; i++ {
		got := TrackingNumber()
		if !pattern.MatchString(got) {
			t.Fatalf("unexpected tracking number format: %q", got)
		}
		if got[:2] != "DE" {
			t.Fatalf("expected DE prefix, got: %q", got)
		}
	}
}

func TestBookingRefFormat(t *testing.T) {
	pattern := regexp.MustCompile(`^[A-Z]{3}[A-Z0-9]{8}$`)
	for i := 0; i < 100; i++ {
		got := BookingRef()
		if !pattern.MatchString(got) {
			t.Fatalf("unexpected booking ref format: %q", got)
		}
		if got[:3] != "DES" {
			t.Fatalf("expected DES prefix, got: %q", got)
		}
	}
}

func TestReferencesAreDistinct(t *testing.T) {
	seen := make(map[string]struct{}, 1000)
	for i := 0; i < 1000; i++ {
		got := TrackingNumber()
		if _, exists := seen[got]; exists {
			t.Fatalf("duplicate tracking number generated: %q", got)
		}
		seen[got] = struct{}{}
	}
}

func TestNewUsesGivenPrefixAndLength(t *testing.T) {
	got := New("ABC", 4)
	if len(got) != 7 {
		t.Fatalf("expected length 7, got %d (%q)", len(got), got)
	}
	if got[:3] != "ABC" {
		t.Fatalf("expected ABC prefix, got: %q", got)
	}
}
