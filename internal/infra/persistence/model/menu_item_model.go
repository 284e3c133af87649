package model

import (
	"time"

	"github.com/google/uuid"
)

// MenuItemModel mirrors the 'menu_items' table. Stock carries a CHECK (stock >= 0).
type MenuItemModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name           string    `gorm:"type:varchar(100);not null;uniqueIndex"`
	Description    string    `gorm:"type:text;not null;default:''"`
	Price          int64     `gorm:"not null"`
	Stock          int       `gorm:"not null;default:0"`
	Availability   string    `gorm:"type:varchar(20);not null"`
	ImageRef       string    `gorm:"type:text;not null;default:''"`
	IsPreOrderOnly bool      `gorm:"not null;default:false;index"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (MenuItemModel) TableName() string {
	return "menu_items"
}
