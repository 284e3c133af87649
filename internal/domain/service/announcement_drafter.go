package service

import (
	"context"
)

// AnnouncementDraft is a suggested announcement text.
type AnnouncementDraft struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// AnnouncementDrafter writes announcement drafts from a short topic.
type AnnouncementDrafter interface {
	Draft(ctx context.Context, topic string) (*AnnouncementDraft, error)
}
