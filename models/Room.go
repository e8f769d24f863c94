package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// RoomStatus is the closed set of housekeeping states a room can be in.
type RoomStatus string

const (
	RoomAvailable   RoomStatus = "Available"
	RoomOccupied    RoomStatus = "Occupied"
	RoomMaintenance RoomStatus = "Maintenance"
	RoomCleaning    RoomStatus = "Cleaning"
)

func ParseRoomStatus(s string) (RoomStatus, error) {
	switch RoomStatus(s) {
	case RoomAvailable, RoomOccupied, RoomMaintenance, RoomCleaning:
		return RoomStatus(s), nil
	default:
		return "", fmt.Errorf("unknown room status: %s", s)
	}
}

type Room struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`

	RoomNumber  string     `json:"room_number" gorm:"size:10;uniqueIndex;not null"`
	Name        string     `json:"name" gorm:"size:100;index;not null"`
	Description *string    `json:"description" gorm:"size:500"`
	Price       float64    `json:"price" gorm:"not null"`
	Type        string     `json:"type" gorm:"size:50;not null"` // Single, Double, Suite...
	Status      RoomStatus `json:"status" gorm:"type:varchar(20);default:'Available';index"`
	Floor       *int       `json:"floor"`
	Building    *string    `json:"building" gorm:"size:50"`
}
