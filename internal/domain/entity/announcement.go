package entity

import (
	"time"

	"github.com/google/uuid"
)

// Announcement is a notice shown to staff.
type Announcement struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}
