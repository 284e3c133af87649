package service

import (
	"context"

	"cafe/internal/domain/entity"
)

// StaffAlertKind names the operational events that reach staff devices.
type StaffAlertKind = entity.AlertKind

const (
	StaffAlertLowStock          = entity.AlertLowStock
	StaffAlertRefillRequested   = entity.AlertRefillRequested
	StaffAlertPreOrderSubmitted = entity.AlertPreOrderSubmitted
)

// StaffAlertEvent represents an event to be processed by the notify worker
type StaffAlertEvent struct {
	ID        string            `json:"id"`
	RequestID string            `json:"request_id,omitempty"` // For distributed tracing
	Kind      StaffAlertKind    `json:"kind"`
	Title     string            `json:"title"`
	Body      string            `json:"body"`
	Data      map[string]string `json:"data,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishStaffAlert publishes a staff alert event for async delivery
	PublishStaffAlert(ctx context.Context, event *StaffAlertEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
