package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DocumentType is the closed set of identity documents accepted at the front
// desk (Peruvian context).
type DocumentType string

const (
	DocumentDNI      DocumentType = "DNI"
	DocumentRUC      DocumentType = "RUC"
	DocumentPassport DocumentType = "PASSPORT"
	DocumentCE       DocumentType = "CE" // Carné de Extranjería
)

func ParseDocumentType(s string) (DocumentType, error) {
	switch DocumentType(s) {
	case DocumentDNI, DocumentRUC, DocumentPassport, DocumentCE:
		return DocumentType(s), nil
	default:
		return "", fmt.Errorf("unknown document type: %s", s)
	}
}

type Guest struct {
	ID        uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`

	FirstName string `json:"first_name" gorm:"size:100;index;not null"`
	LastName  string `json:"last_name" gorm:"size:100;index;not null"`

	DocumentType   *DocumentType `json:"document_type" gorm:"type:varchar(20)"`
	DocumentNumber *string       `json:"document_number" gorm:"size:20;uniqueIndex"`

	Email       *string `json:"email" gorm:"size:256;uniqueIndex"`
	PhoneNumber *string `json:"phone_number" gorm:"size:30"`

	AddressStreet        *string `json:"address_street" gorm:"size:200"`
	AddressCity          *string `json:"address_city" gorm:"size:100"`
	AddressStateProvince *string `json:"address_state_province" gorm:"size:100"`
	AddressPostalCode    *string `json:"address_postal_code" gorm:"size:20"`
	AddressCountry       *string `json:"address_country" gorm:"size:100;default:'Perú'"`

	Nationality *string `json:"nationality" gorm:"size:100;default:'Peruana'"`
	Preferences *string `json:"preferences" gorm:"size:500"`

	IsBlacklisted bool `json:"is_blacklisted" gorm:"default:false;index"`
}

func (g *Guest) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return nil
}
