package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// UserRole is the closed set of staff roles known to the console.
type UserRole string

const (
	RoleAdmin        UserRole = "ADMIN"
	RoleManager      UserRole = "MANAGER"
	RoleReceptionist UserRole = "RECEPTIONIST"
	RoleHousekeeper  UserRole = "HOUSEKEEPER"
)

func ParseUserRole(s string) (UserRole, error) {
	switch UserRole(s) {
	case RoleAdmin, RoleManager, RoleReceptionist, RoleHousekeeper:
		return UserRole(s), nil
	default:
		return "", fmt.Errorf("unknown user role: %s", s)
	}
}

// User is a staff account. Guests never log in; they are plain records.
type User struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`

	FirstName string   `json:"first_name" gorm:"size:100"`
	LastName  string   `json:"last_name" gorm:"size:100"`
	Email     string   `json:"email" gorm:"size:256;uniqueIndex;not null"`
	Password  string   `json:"-" gorm:"not null"` // bcrypt hash
	Role      UserRole `json:"role" gorm:"type:varchar(20);default:'RECEPTIONIST';index"`
	IsActive  *bool    `json:"is_active" gorm:"default:true"`
}
