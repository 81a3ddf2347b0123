package commands

import (
	"context"
	"log/slog"

	"orders/internal/core/domain/model/order"
	"orders/internal/core/domain/services"
	"orders/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Orders are created in Pending status after the role gate admits the caller
// and the payload has been validated.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	roleGate   services.RoleGate
	logger     *slog.Logger
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires an OrderUoWFactory for transactional persistence and a logger for
// the order-created event record.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory, logger *slog.Logger) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		roleGate:   services.NewRoleGate(),
		logger:     logger.With("component", "create_order_handler"),
	}
}

// Handle processes the order creation command.
//
// Steps, in order:
//  1. Role gate check against the staff role; denial returns an
//     AccessForbiddenError before anything else happens.
//  2. Command construction already validated the payload, so a well-formed
//     command proceeds straight to persistence.
//  3. The new aggregate is persisted within a unit of work.
//  4. An order_created structured record is emitted after the commit.
//
// Returns the created order on success.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if !h.roleGate.Authorize(services.RoleStaff, cmd.SuppliedRole()) {
		return nil, errs.NewAccessForbiddenError("staff role required")
	}

	newOrder, err := order.NewOrder(cmd.OrderID(), cmd.CustomerReference(), cmd.Items())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.logger.InfoContext(ctx, "order created",
		"event", "order_created",
		"order_id", newOrder.ID().String(),
		"customer_reference", newOrder.CustomerReference(),
		"status", newOrder.Status().String(),
	)

	return newOrder, nil
}
