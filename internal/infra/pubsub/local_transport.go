package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"time"

	deliverycontext "cafe/internal/delivery/context"
	"cafe/internal/errors"
)

// PushEnvelope is the body Pub/Sub posts to push subscribers. The local
// transport produces the same shape so the worker cannot tell them apart.
type PushEnvelope struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// localPushTransport posts straight to a worker in development.
type localPushTransport struct {
	endpoint     string
	subscription string
	client       *http.Client
	now          func() time.Time
}

func newLocalPushTransport(endpoint, topicID string) *localPushTransport {
	if topicID == "" {
		topicID = "staff-alerts"
	}

	return &localPushTransport{
		endpoint:     endpoint,
		subscription: "projects/local/subscriptions/" + topicID + "-push",
		client:       &http.Client{},
		now:          time.Now,
	}
}

func (t *localPushTransport) name() string { return "local" }

func (t *localPushTransport) send(ctx context.Context, msg *message) error {
	var envelope PushEnvelope
	envelope.Subscription = t.subscription
	envelope.Message.Data = base64.StdEncoding.EncodeToString(msg.data)
	envelope.Message.Attributes = msg.attributes
	envelope.Message.MessageID = msg.id
	envelope.Message.PublishTime = t.now().UTC().Format(time.RFC3339Nano)

	body, err := json.Marshal(&envelope)
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if requestID := msg.attributes["request_id"]; requestID != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, requestID)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return errors.WithStack(err)
	}
	defer resp.Body.Close()

	// Pub/Sub treats any 2xx as an ack.
	if resp.StatusCode/100 != 2 {
		return errors.Errorf("push endpoint answered %d", resp.StatusCode)
	}

	return nil
}

func (t *localPushTransport) close() error {
	t.client.CloseIdleConnections()

	return nil
}
