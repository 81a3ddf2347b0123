package commands

import (
	"context"
	"log/slog"
	"time"

	"orders/internal/core/domain/model/order"
	"orders/internal/core/domain/services"
	"orders/internal/core/ports"
	"orders/internal/pkg/errs"
)

// UpdateOrderStatusCommandHandler handles the business logic for order status
// updates: role gating, transition enforcement, persistence, and scheduling
// of the customer notification.
//
// The notification is published only after the unit of work has committed, so
// a notification that runs always reflects a state that was actually
// persisted. The publish is not awaited beyond the hand-off to the in-process
// queue, and a failed hand-off never fails the command.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	roleGate   services.RoleGate
	publisher  ports.NotificationPublisher
	logger     *slog.Logger
}

// NewUpdateOrderStatusCommandHandler creates a handler for status update operations.
func NewUpdateOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.NotificationPublisher,
	logger *slog.Logger,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		roleGate:   services.NewRoleGate(),
		publisher:  publisher,
		logger:     logger.With("component", "update_order_status_handler"),
	}
}

// Handle processes the status update command.
//
// Steps, in order:
//  1. Role gate check against the staff role.
//  2. Load the order; a missing id surfaces as ObjectNotFoundError.
//  3. Apply the transition on the aggregate; disallowed pairs surface as
//     InvalidTransitionError and nothing is written.
//  4. Persist and commit.
//  5. Emit the order_updated record, then hand the notification to the
//     detached worker.
//
// Returns the updated order on success.
func (h *UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if !h.roleGate.Authorize(services.RoleStaff, cmd.SuppliedRole()) {
		return nil, errs.NewAccessForbiddenError("staff role required")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	existingOrder, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = existingOrder.ChangeStatus(cmd.NewStatus()); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, existingOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.logger.InfoContext(ctx, "order updated",
		"event", "order_updated",
		"order_id", existingOrder.ID().String(),
		"customer_reference", existingOrder.CustomerReference(),
		"status", existingOrder.Status().String(),
	)

	h.scheduleNotification(ctx, existingOrder)

	return existingOrder, nil
}

// scheduleNotification hands the status change to the notification worker.
// Failures are logged and swallowed: the status change is already committed
// and must not be rolled back or surfaced because a best-effort side task
// could not be scheduled.
func (h *UpdateOrderStatusCommandHandler) scheduleNotification(ctx context.Context, updatedOrder *order.Order) {
	notification := ports.StatusChangedNotification{
		OrderID:           updatedOrder.ID().String(),
		CustomerReference: updatedOrder.CustomerReference(),
		NewStatus:         updatedOrder.Status().String(),
		OccurredAt:        time.Now().UTC(),
	}

	if err := h.publisher.PublishStatusChanged(ctx, notification); err != nil {
		h.logger.ErrorContext(ctx, "notification scheduling failed",
			"event", "notification_failed",
			"order_id", notification.OrderID,
			"customer_reference", notification.CustomerReference,
			"status", notification.NewStatus,
			"error", err,
		)
	}
}
