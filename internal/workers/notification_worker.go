package workers

import (
	"context"
	"encoding/json"
	"log/slog"

	"orders/internal/adapters/out/notifier"
	"orders/internal/core/ports"

	"github.com/ThreeDotsLabs/watermill/message"
)

// NotificationWorker consumes order status change notifications from the
// message bus and delivers them to the customer channel. Delivery here is
// a structured log record; swapping in a real email or SMS sender only
// touches this worker.
type NotificationWorker struct {
	subscriber message.Subscriber
	logger     *slog.Logger
	cancel     context.CancelFunc
	done       chan struct{}
}

// NewNotificationWorker creates a worker reading from the given subscriber.
// The subscriber must be backed by the same Pub/Sub instance the command
// handlers publish to.
func NewNotificationWorker(subscriber message.Subscriber, logger *slog.Logger) *NotificationWorker {
	return &NotificationWorker{
		subscriber: subscriber,
		logger:     logger.With("component", "notification_worker"),
	}
}

// Start subscribes to the status change topic and begins consuming in a
// background goroutine. Returns an error if the subscription cannot be
// established.
func (w *NotificationWorker) Start() error {
	ctx, cancel := context.WithCancel(context.Background())

	messages, err := w.subscriber.Subscribe(ctx, notifier.StatusChangedTopic)
	if err != nil {
		cancel()
		return err
	}

	w.cancel = cancel
	w.done = make(chan struct{})

	go w.run(messages)

	w.logger.InfoContext(ctx, "Notification worker started")
	return nil
}

// Stop cancels the subscription and waits for in-flight messages to finish.
func (w *NotificationWorker) Stop() {
	if w.cancel == nil {
		return
	}

	w.cancel()
	<-w.done
	w.logger.InfoContext(context.Background(), "Notification worker stopped")
}

func (w *NotificationWorker) run(messages <-chan *message.Message) {
	defer close(w.done)

	for msg := range messages {
		w.process(msg)
		msg.Ack()
	}
}

func (w *NotificationWorker) process(msg *message.Message) {
	ctx := msg.Context()

	var notification ports.StatusChangedNotification
	if err := json.Unmarshal(msg.Payload, &notification); err != nil {
		w.logger.ErrorContext(ctx, "Customer notification failed",
			"event", "notification_failed",
			"message_id", msg.UUID,
			"error", err,
		)
		return
	}

	w.logger.InfoContext(ctx, "Customer notification sent",
		"event", "notification_sent",
		"order_id", notification.OrderID,
		"customer_reference", notification.CustomerReference,
		"status", notification.NewStatus,
	)
}
