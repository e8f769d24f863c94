package validation

import (
	"golang.org/x/exp/slices"

	"github.com/gvasquezjhon/granhotel/models"
)

// CreatableStatuses is the subset a new reservation may start in. CHECKED_IN
// and later states are reached through actions, never through the create form.
func CreatableStatuses() []models.ReservationStatus {
	return []models.ReservationStatus{
		models.ReservationPending,
		models.ReservationConfirmed,
	}
}

// EditableStatuses is the subset assignable through the generic edit path.
// CHECKED_OUT is absent: it is only reached through the dedicated checkout
// action.
func EditableStatuses() []models.ReservationStatus {
	return []models.ReservationStatus{
		models.ReservationPending,
		models.ReservationConfirmed,
		models.ReservationCheckedIn,
		models.ReservationNoShow,
		models.ReservationCancelled,
		models.ReservationWaitlist,
	}
}

// IsTerminal reports whether no further transition is permitted from s.
func IsTerminal(s models.ReservationStatus) bool {
	return s == models.ReservationCancelled || s == models.ReservationCheckedOut
}

// CanEdit reports whether the reservation may still be modified.
func CanEdit(s models.ReservationStatus) bool {
	return !IsTerminal(s)
}

// CanCancel reports whether the cancel action applies. A checked-in guest
// cannot be cancelled, only checked out.
func CanCancel(s models.ReservationStatus) bool {
	return !IsTerminal(s) && s != models.ReservationCheckedIn
}

// CanTransition reports whether the status machine permits moving from one
// status to another through the modeled actions.
func CanTransition(from, to models.ReservationStatus) bool {
	if IsTerminal(from) {
		return false
	}
	if from == models.ReservationCheckedIn {
		return to == models.ReservationCheckedOut
	}
	return slices.Contains(EditableStatuses(), to)
}
