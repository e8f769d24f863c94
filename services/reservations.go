package services

import (
	"time"

	"github.com/gvasquezjhon/granhotel/models"
	"github.com/gvasquezjhon/granhotel/storage"
)

// blockingStatuses are the reservation states that make a room unavailable
// for an overlapping stay. PENDING holds no room.
var blockingStatuses = []models.ReservationStatus{
	models.ReservationConfirmed,
	models.ReservationCheckedIn,
}

// IsRoomAvailable reports whether the room has no blocking reservation
// overlapping [checkIn, checkOut). excludeReservationID skips the reservation
// being edited so it does not collide with itself.
func IsRoomAvailable(roomID uint, checkIn, checkOut time.Time, excludeReservationID uint) (bool, error) {
	q := storage.DB.Model(&models.Reservation{}).
		Where("room_id = ?", roomID).
		Where("status IN ?", blockingStatuses).
		Where("check_in_date < ?", checkOut).
		Where("check_out_date > ?", checkIn)
	if excludeReservationID != 0 {
		q = q.Where("id <> ?", excludeReservationID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count == 0, nil
}

// Nights returns the whole-night count of a stay. Validation guarantees
// checkOut is after checkIn by at least one day before this runs.
func Nights(checkIn, checkOut time.Time) int {
	nights := int(checkOut.Sub(checkIn).Hours() / 24)
	if nights < 1 {
		nights = 1
	}
	return nights
}

// StayPrice computes the total for a stay: nightly rate times nights.
// IGV (18%) is charged at billing, not here.
func StayPrice(room *models.Room, checkIn, checkOut time.Time) float64 {
	return room.Price * float64(Nights(checkIn, checkOut))
}
