package service

import (
	"context"
	"time"
)

// MaxBatchTokens is the largest token set one Multicast accepts.
const MaxBatchTokens = 500

// PushMessage is one notification addressed to a batch of device tokens.
type PushMessage struct {
	Tokens []string
	Title  string
	Body   string
	Data   map[string]string
	// CollapseKey lets a newer message replace an undelivered one with the
	// same key on the device.
	CollapseKey string
	// TTL drops the message if the device stays offline longer. Zero keeps
	// the provider default.
	TTL time.Duration
}

// PushReport is the outcome of one Multicast. Stale lists tokens the
// provider will never accept again.
type PushReport struct {
	Sent   int
	Failed int
	Stale  []string
}

// NotificationService delivers push notifications to staff devices
type NotificationService interface {
	Multicast(ctx context.Context, msg *PushMessage) (*PushReport, error)
}
