package commands

import (
	"errors"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/core/domain/services"
	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand represents a request to create a new order.
// It carries the purchasing party's reference, the validated line items, and
// the caller-supplied role signal evaluated by the handler's role gate.
//
// All payload validation happens here, in the constructor, so a malformed
// request can never reach the store.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID           kernel.UUID
	customerReference string
	items             []order.Item
	suppliedRole      services.Role

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// Validates that the order ID is valid, the customer reference is not empty,
// and at least one properly constructed item is present. The supplied role is
// carried as-is; an empty role is legal here and denied later by the gate.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	customerReference string,
	items []order.Item,
	suppliedRole services.Role,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		suppliedRole: suppliedRole,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setCustomerReference(customerReference),
		orderCommand.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerReference returns the identifier of the purchasing party.
func (c CreateOrderCommand) CustomerReference() string {
	return c.customerReference
}

// Items returns the order's line entries.
func (c CreateOrderCommand) Items() []order.Item {
	return c.items
}

// SuppliedRole returns the caller-supplied role signal.
func (c CreateOrderCommand) SuppliedRole() services.Role {
	return c.suppliedRole
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomerReference(customerReference string) error {
	if customerReference == "" {
		return errs.NewValueIsRequiredError("customer_reference")
	}

	c.customerReference = customerReference
	return nil
}

func (c *CreateOrderCommand) setItems(items []order.Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	c.items = items
	return nil
}
