package commands

import (
	"errors"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/core/domain/services"
	"orders/internal/pkg/guard"
)

var (
	ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
		"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
	)
)

// UpdateOrderStatusCommand represents a request to move an existing order to
// a new lifecycle state. The requested status must be a recognized state;
// whether the transition is allowed from the currently stored status is
// decided by the aggregate when the handler loads it.
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	newStatus    order.Status
	suppliedRole services.Role

	guard guard.ConstructorGuard
}

// NewUpdateOrderStatusCommand creates a command to update an order's status.
// Validates that the order ID is valid and the requested status is a
// recognized lifecycle state.
func NewUpdateOrderStatusCommand(
	orderID kernel.UUID,
	newStatus order.Status,
	suppliedRole services.Role,
) (UpdateOrderStatusCommand, error) {
	statusCommand := UpdateOrderStatusCommand{
		suppliedRole: suppliedRole,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		statusCommand.setOrderID(orderID),
		statusCommand.setNewStatus(newStatus),
	); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	return statusCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateOrderStatusCommandIsNotConstructed if validation fails.
func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to update.
func (c UpdateOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// NewStatus returns the requested lifecycle state.
func (c UpdateOrderStatusCommand) NewStatus() order.Status {
	return c.newStatus
}

// SuppliedRole returns the caller-supplied role signal.
func (c UpdateOrderStatusCommand) SuppliedRole() services.Role {
	return c.suppliedRole
}

func (c *UpdateOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateOrderStatusCommand) setNewStatus(newStatus order.Status) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}

	c.newStatus = newStatus
	return nil
}
