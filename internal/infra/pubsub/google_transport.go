package pubsub

import (
	"context"

	"cafe/internal/errors"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
)

type googleTransport struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
}

// dialGoogleTransport requires the topic to exist already.
func dialGoogleTransport(ctx context.Context, projectID, topicID string) (*googleTransport, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Pub/Sub client")
	}

	topic := "projects/" + projectID + "/topics/" + topicID
	if _, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: topic}); err != nil {
		_ = client.Close()

		return nil, errors.Wrapf(err, "failed to get topic %s", topic)
	}

	return &googleTransport{client: client, publisher: client.Publisher(topicID)}, nil
}

func (t *googleTransport) name() string { return "google" }

func (t *googleTransport) send(ctx context.Context, msg *message) error {
	result := t.publisher.Publish(ctx, &pubsub.Message{Data: msg.data, Attributes: msg.attributes})
	if _, err := result.Get(ctx); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func (t *googleTransport) close() error {
	t.publisher.Stop()

	return errors.WithStack(t.client.Close())
}
