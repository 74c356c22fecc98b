package models

import (
	"time"

	"gorm.io/datatypes"
)

// Audit actions produced or reserved by the system. The action column is not
// constrained to this vocabulary.
const (
	AuditActionSignup     = "signup"
	AuditActionUnregister = "unregister"
	AuditActionUpload     = "upload"
	AuditActionCheckIn    = "check-in"
)

// AuditLog captures one signup or unregister event. Entries are append-only
// apart from age-based purging and keep only the denormalized activity name,
// so they survive activity deletion.
type AuditLog struct {
	ID           uint              `gorm:"primaryKey" json:"id"`
	Timestamp    time.Time         `gorm:"not null;index" json:"timestamp"`
	Action       string            `gorm:"size:64;not null" json:"action"`
	UserEmail    string            `gorm:"size:255;not null" json:"user_email"`
	ActivityName string            `gorm:"size:255" json:"activity_name,omitempty"`
	Details      string            `gorm:"type:text" json:"details,omitempty"`
	IPAddress    string            `gorm:"size:64" json:"ip_address,omitempty"`
	Metadata     datatypes.JSONMap `gorm:"type:json" json:"metadata,omitempty"`
}
