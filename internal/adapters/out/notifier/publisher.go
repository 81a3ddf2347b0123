// Package notifier provides the Watermill-based implementation of the
// notification publisher port. Status change notifications are serialized
// to JSON and handed to an in-process Pub/Sub channel, where the
// notification worker picks them up independently of the request that
// produced them.
package notifier

import (
	"context"
	"encoding/json"
	"fmt"

	"orders/internal/core/ports"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
)

// StatusChangedTopic is the Pub/Sub topic carrying order status change notifications.
const StatusChangedTopic = "order.status.changed"

// WatermillNotificationPublisher publishes status change notifications
// to a Watermill message bus.
type WatermillNotificationPublisher struct {
	publisher message.Publisher
}

// NewWatermillNotificationPublisher creates a publisher backed by the given
// Watermill publisher. The same Pub/Sub instance must back the subscriber
// side for messages to reach the notification worker.
func NewWatermillNotificationPublisher(publisher message.Publisher) *WatermillNotificationPublisher {
	return &WatermillNotificationPublisher{publisher: publisher}
}

// PublishStatusChanged serializes the notification and puts it on the bus.
// Returns an error only when the message could not be handed off; the caller
// decides whether that failure matters.
func (p *WatermillNotificationPublisher) PublishStatusChanged(
	ctx context.Context,
	notification ports.StatusChangedNotification,
) error {
	payload, err := json.Marshal(notification)
	if err != nil {
		return fmt.Errorf("marshal status change notification: %w", err)
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.SetContext(ctx)

	if err := p.publisher.Publish(StatusChangedTopic, msg); err != nil {
		return fmt.Errorf("publish status change notification: %w", err)
	}

	return nil
}
