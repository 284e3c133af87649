package notification

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"cafe/config"
	"cafe/internal/domain/service"

	"firebase.google.com/go/v4/messaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	multicast *messaging.MulticastMessage
	response  *messaging.BatchResponse
}

func (f *fakeSender) SendEachForMulticast(_ context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error) {
	f.multicast = message

	return f.response, nil
}

func TestFirebaseService_Multicast(t *testing.T) {
	sender := &fakeSender{response: &messaging.BatchResponse{
		SuccessCount: 2,
		Responses: []*messaging.SendResponse{
			{Success: true, MessageID: "a"},
			{Success: true, MessageID: "b"},
		},
	}}
	svc := &firebaseService{client: sender}

	report, err := svc.Multicast(context.Background(), &service.PushMessage{
		Tokens:      []string{"token-a", "token-b"},
		Title:       "Low stock",
		Body:        "Latte has 2 left",
		Data:        map[string]string{"kind": "low_stock"},
		CollapseKey: "low_stock:latte",
		TTL:         time.Hour,
	})

	require.NoError(t, err)
	assert.Equal(t, &service.PushReport{Sent: 2}, report)

	sent := sender.multicast
	assert.Equal(t, "Low stock", sent.Notification.Title)
	assert.Equal(t, "low_stock", sent.Data["kind"])
	assert.Equal(t, "high", sent.Android.Priority)
	assert.Equal(t, "low_stock:latte", sent.Android.CollapseKey)
	assert.Equal(t, alertChannelID, sent.Android.Notification.ChannelID)
	require.NotNil(t, sent.Android.TTL)
	assert.Equal(t, time.Hour, *sent.Android.TTL)
	assert.Equal(t, "low_stock:latte", sent.APNS.Headers["apns-collapse-id"])
	assert.NotEmpty(t, sent.APNS.Headers["apns-expiration"])
}

func TestFirebaseService_Multicast_NoCollapseOrTTL(t *testing.T) {
	sender := &fakeSender{response: &messaging.BatchResponse{SuccessCount: 1, Responses: []*messaging.SendResponse{{Success: true}}}}
	svc := &firebaseService{client: sender}

	_, err := svc.Multicast(context.Background(), &service.PushMessage{Tokens: []string{"t"}, Title: "Refill"})

	require.NoError(t, err)
	assert.Nil(t, sender.multicast.Android.TTL)
	assert.NotContains(t, sender.multicast.APNS.Headers, "apns-collapse-id")
	assert.NotContains(t, sender.multicast.APNS.Headers, "apns-expiration")
}

func TestFirebaseService_Multicast_Limits(t *testing.T) {
	sender := &fakeSender{}
	svc := &firebaseService{client: sender}

	report, err := svc.Multicast(context.Background(), &service.PushMessage{})
	require.NoError(t, err)
	assert.Equal(t, &service.PushReport{}, report)
	assert.Nil(t, sender.multicast)

	_, err = svc.Multicast(context.Background(), &service.PushMessage{Tokens: make([]string, service.MaxBatchTokens+1)})
	assert.ErrorContains(t, err, "token count exceeds limit")
}

func TestNewNotificationService_DisabledFallsBackToLog(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{Firebase: &config.FirebaseConfig{}}

	svc, err := NewNotificationService(context.Background(), cfg, nil, logger)
	require.NoError(t, err)

	report, err := svc.Multicast(context.Background(), &service.PushMessage{Tokens: []string{"a", "b", "c"}, Title: "t"})
	require.NoError(t, err)
	assert.Equal(t, &service.PushReport{Sent: 3}, report)
}
