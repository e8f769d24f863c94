package models

import (
	"time"

	"gorm.io/datatypes"
)

// AuditLog records staff mutations on sensitive resources (blacklist toggles,
// cancellations, room deletions) with before/after snapshots.
type AuditLog struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	UserID       uint           `json:"user_id" gorm:"index;not null"`
	Action       string         `json:"action" gorm:"size:64;index"`
	ResourceType string         `json:"resource_type" gorm:"size:64;index"`
	ResourceID   string         `json:"resource_id" gorm:"size:64;index"` // uint or uuid, stored as text
	Before       datatypes.JSON `json:"before"`
	After        datatypes.JSON `json:"after"`
	IPAddress    string         `json:"ip_address" gorm:"size:64"`
	CreatedAt    time.Time      `json:"created_at"`
}
