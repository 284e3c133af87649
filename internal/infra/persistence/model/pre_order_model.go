package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// PreOrderModel mirrors the 'pre_orders' table. Items is a JSONB object of
// item id to quantity.
type PreOrderModel struct {
	ID              uuid.UUID                          `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	StudentName     string                             `gorm:"type:varchar(100);not null"`
	StudentClass    string                             `gorm:"type:varchar(50);not null;index"`
	Items           datatypes.JSONType[map[string]int] `gorm:"type:jsonb;not null"`
	PaymentProofURL string                             `gorm:"type:text;not null"`
	PaymentProofKey string                             `gorm:"type:text;not null"`
	Total           int64                              `gorm:"not null"`
	Status          string                             `gorm:"type:varchar(20);not null;index"`
	PickupDate      time.Time                          `gorm:"type:date;not null"`
	OrderedAt       time.Time                          `gorm:"not null;default:now()"`
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (PreOrderModel) TableName() string {
	return "pre_orders"
}
