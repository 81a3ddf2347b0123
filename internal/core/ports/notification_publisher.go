package ports

import (
	"context"
	"time"
)

// StatusChangedNotification is the message handed to the notification worker
// after an order status change has been committed.
type StatusChangedNotification struct {
	OrderID           string    `json:"order_id"`
	CustomerReference string    `json:"customer_reference"`
	NewStatus         string    `json:"new_status"`
	OccurredAt        time.Time `json:"occurred_at"`
}

// NotificationPublisher hands a status-changed notification to an independent
// worker. Delivery is best-effort: the message lives on an in-process queue,
// is not awaited by the caller, and is lost if the process terminates before
// the worker picks it up. Keeping the hop behind this port means delivery
// guarantees can be strengthened later without changing the command handlers.
type NotificationPublisher interface {
	PublishStatusChanged(ctx context.Context, notification StatusChangedNotification) error
}
