package validation

import (
	"testing"

	"github.com/gvasquezjhon/granhotel/models"
)

func TestTerminalStatuses(t *testing.T) {
	terminal := []models.ReservationStatus{
		models.ReservationCancelled,
		models.ReservationCheckedOut,
	}
	for _, s := range terminal {
		if !IsTerminal(s) {
			t.Fatalf("%s should be terminal", s)
		}
		if CanEdit(s) {
			t.Fatalf("%s should not be editable", s)
		}
		if CanCancel(s) {
			t.Fatalf("%s should not be cancellable", s)
		}
	}

	open := []models.ReservationStatus{
		models.ReservationPending,
		models.ReservationConfirmed,
		models.ReservationCheckedIn,
		models.ReservationNoShow,
		models.ReservationWaitlist,
	}
	for _, s := range open {
		if IsTerminal(s) {
			t.Fatalf("%s should not be terminal", s)
		}
		if !CanEdit(s) {
			t.Fatalf("%s should be editable", s)
		}
	}
}

func TestCheckedInNotCancellable(t *testing.T) {
	if CanCancel(models.ReservationCheckedIn) {
		t.Fatal("a checked-in guest cannot be cancelled")
	}
	for _, s := range []models.ReservationStatus{
		models.ReservationPending,
		models.ReservationConfirmed,
		models.ReservationWaitlist,
		models.ReservationNoShow,
	} {
		if !CanCancel(s) {
			t.Fatalf("%s should be cancellable", s)
		}
	}
}

func TestTransitions(t *testing.T) {
	// Terminal states have no outgoing transitions.
	for _, from := range []models.ReservationStatus{models.ReservationCancelled, models.ReservationCheckedOut} {
		for _, to := range EditableStatuses() {
			if CanTransition(from, to) {
				t.Fatalf("transition %s -> %s must be forbidden", from, to)
			}
		}
	}

	// CHECKED_IN only moves forward to CHECKED_OUT.
	if !CanTransition(models.ReservationCheckedIn, models.ReservationCheckedOut) {
		t.Fatal("CHECKED_IN -> CHECKED_OUT must be permitted")
	}
	if CanTransition(models.ReservationCheckedIn, models.ReservationCancelled) {
		t.Fatal("CHECKED_IN -> CANCELLED must be forbidden")
	}

	// Early-stage reservations may take any edit-selectable status.
	for _, from := range []models.ReservationStatus{
		models.ReservationPending,
		models.ReservationConfirmed,
		models.ReservationWaitlist,
		models.ReservationNoShow,
	} {
		for _, to := range EditableStatuses() {
			if !CanTransition(from, to) {
				t.Fatalf("transition %s -> %s should be permitted", from, to)
			}
		}
		if CanTransition(from, models.ReservationCheckedOut) {
			t.Fatalf("%s -> CHECKED_OUT must go through the checkout action", from)
		}
	}
}

func TestStatusSubsets(t *testing.T) {
	if len(CreatableStatuses()) != 2 {
		t.Fatalf("creation allows exactly PENDING and CONFIRMED, got %v", CreatableStatuses())
	}
	for _, s := range EditableStatuses() {
		if s == models.ReservationCheckedOut {
			t.Fatal("CHECKED_OUT must not be edit-selectable")
		}
	}
}
