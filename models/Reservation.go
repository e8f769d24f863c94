package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReservationStatus is the closed set of states a reservation moves through.
type ReservationStatus string

const (
	ReservationPending    ReservationStatus = "PENDING"
	ReservationConfirmed  ReservationStatus = "CONFIRMED"
	ReservationCheckedIn  ReservationStatus = "CHECKED_IN"
	ReservationCheckedOut ReservationStatus = "CHECKED_OUT"
	ReservationCancelled  ReservationStatus = "CANCELLED"
	ReservationNoShow     ReservationStatus = "NO_SHOW"
	ReservationWaitlist   ReservationStatus = "WAITLIST"
)

func ParseReservationStatus(s string) (ReservationStatus, error) {
	switch ReservationStatus(s) {
	case ReservationPending, ReservationConfirmed, ReservationCheckedIn,
		ReservationCheckedOut, ReservationCancelled, ReservationNoShow, ReservationWaitlist:
		return ReservationStatus(s), nil
	default:
		return "", fmt.Errorf("unknown reservation status: %s", s)
	}
}

type Reservation struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`

	GuestID uuid.UUID `json:"guest_id" gorm:"type:uuid;index;not null"`
	RoomID  uint      `json:"room_id" gorm:"index;not null"`

	CheckInDate     time.Time `json:"check_in_date" gorm:"type:date;not null"`
	CheckOutDate    time.Time `json:"check_out_date" gorm:"type:date;not null"`
	ReservationDate time.Time `json:"reservation_date" gorm:"autoCreateTime"`

	Status     ReservationStatus `json:"status" gorm:"type:varchar(20);default:'PENDING';index"`
	TotalPrice *float64          `json:"total_price"` // server-computed, nights x room price
	Notes      *string           `json:"notes" gorm:"size:500"`

	Guest *Guest `json:"guest,omitempty" gorm:"foreignKey:GuestID"`
	Room  *Room  `json:"room,omitempty" gorm:"foreignKey:RoomID"`
}

// Custom JSON marshaling so the stay dates go over the wire as plain
// YYYY-MM-DD strings, the shape the console sends back on edits.
func (r *Reservation) MarshalJSON() ([]byte, error) {
	type Alias Reservation
	aux := &struct {
		CheckInDate  string `json:"check_in_date"`
		CheckOutDate string `json:"check_out_date"`
		*Alias
	}{
		CheckInDate:  r.CheckInDate.Format("2006-01-02"),
		CheckOutDate: r.CheckOutDate.Format("2006-01-02"),
		Alias:        (*Alias)(r),
	}
	return json.Marshal(aux)
}
