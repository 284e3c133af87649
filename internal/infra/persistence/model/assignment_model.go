package model

import (
	"time"

	"github.com/google/uuid"
)

// AssignmentModel mirrors the 'volunteer_assignments' join table.
type AssignmentModel struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	ItemID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (AssignmentModel) TableName() string {
	return "volunteer_assignments"
}
