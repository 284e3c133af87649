package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// AlertDeviceModel mirrors the 'alert_devices' table. Muted is a JSONB array
// of alert kinds.
type AlertDeviceModel struct {
	ID             uuid.UUID                   `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID         uuid.UUID                   `gorm:"type:uuid;not null;index"`
	Label          string                      `gorm:"type:varchar(60);not null;default:''"`
	FCMToken       string                      `gorm:"type:varchar(255);not null"`
	InstallationID string                      `gorm:"type:varchar(255);not null"`
	Platform       string                      `gorm:"type:varchar(20);not null"`
	Muted          datatypes.JSONSlice[string] `gorm:"type:jsonb;not null"`
	IsActive       bool                        `gorm:"not null;default:true"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      gorm.DeletedAt `gorm:"index"`
}

func (AlertDeviceModel) TableName() string {
	return "alert_devices"
}
