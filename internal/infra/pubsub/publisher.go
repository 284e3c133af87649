// Package pubsub publishes staff alerts for the notify worker. The transport
// is chosen by configuration: Google Pub/Sub, a direct push to a local worker,
// or none.
package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"cafe/config"
	deliverycontext "cafe/internal/delivery/context"
	"cafe/internal/domain/constants"
	"cafe/internal/domain/service"
	"cafe/internal/errors"

	"go.uber.org/fx"
)

const defaultPublishTimeout = 10 * time.Second

// message is one encoded event as every transport sees it.
type message struct {
	id         string
	data       []byte
	attributes map[string]string
}

type transport interface {
	name() string
	send(ctx context.Context, msg *message) error
	close() error
}

// Publisher encodes staff alerts and hands them to a transport. A nil
// transport drops events, which keeps alert producers free of nil checks.
type Publisher struct {
	transport transport
	timeout   time.Duration
	logger    *slog.Logger
}

// PublisherParams holds dependencies for the Publisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher builds the publisher for the configured provider and
// closes its transport with the app.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.PubSub
	if cfg == nil {
		cfg = &config.PubSubConfig{}
	}

	t, err := dialTransport(params.Ctx, cfg)
	if err != nil {
		return nil, err
	}

	p := newPublisher(t, cfg.PublishTimeout, params.Logger)
	if t == nil {
		params.Logger.Info("Pub/Sub disabled, staff alerts will be dropped")

		return p, nil
	}

	params.Logger.Info("Pub/Sub publisher ready", slog.String("transport", t.name()))
	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return p.Close()
		},
	})

	return p, nil
}

func dialTransport(ctx context.Context, cfg *config.PubSubConfig) (transport, error) {
	switch cfg.Provider {
	case "", constants.PubSubProviderNoop:
		return nil, nil
	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("pubsub.localEndpoint is required for the local provider")
		}

		return newLocalPushTransport(cfg.LocalEndpoint, cfg.TopicID), nil
	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" || cfg.TopicID == "" {
			return nil, errors.New("pubsub.projectId and pubsub.topicId are required for the google provider")
		}

		t, err := dialGoogleTransport(ctx, cfg.ProjectID, cfg.TopicID)
		if err != nil {
			return nil, err
		}

		return t, nil
	default:
		return nil, errors.Errorf("unknown pubsub provider %q", cfg.Provider)
	}
}

func newPublisher(t transport, timeout time.Duration, logger *slog.Logger) *Publisher {
	if timeout <= 0 {
		timeout = defaultPublishTimeout
	}

	return &Publisher{transport: t, timeout: timeout, logger: logger}
}

// PublishStaffAlert blocks until the transport accepts the event or the
// publish timeout passes.
func (p *Publisher) PublishStaffAlert(ctx context.Context, event *service.StaffAlertEvent) error {
	log := deliverycontext.GetLoggerOrDefault(ctx, p.logger).With(
		slog.String("event_id", event.ID),
		slog.String("kind", string(event.Kind)),
	)

	if p.transport == nil {
		log.Debug("Staff alert dropped")

		return nil
	}

	data, err := json.Marshal(event)
	if err != nil {
		return errors.Wrap(err, "failed to encode staff alert")
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	start := time.Now()
	msg := &message{id: event.ID, data: data, attributes: attributesFor(event)}
	if err := p.transport.send(ctx, msg); err != nil {
		return errors.Wrapf(err, "failed to publish staff alert over %s", p.transport.name())
	}

	log.Info("Staff alert published", slog.Duration("took", time.Since(start)))

	return nil
}

// Close flushes and releases the transport.
func (p *Publisher) Close() error {
	if p.transport == nil {
		return nil
	}

	return p.transport.close()
}

// attributesFor builds the message attributes used for filtering and tracing.
func attributesFor(event *service.StaffAlertEvent) map[string]string {
	attributes := map[string]string{
		"event_id": event.ID,
		"kind":     string(event.Kind),
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}
