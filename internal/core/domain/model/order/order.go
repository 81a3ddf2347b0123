package order

import (
	"errors"
	"fmt"
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")
)

// Order represents a customer order. It is the aggregate root that manages
// the order lifecycle from creation through fulfillment or cancellation.
//
// Order follows these invariants:
//   - Must have a valid unique identifier
//   - Must have a non-empty customer reference
//   - Must have at least one valid line item
//   - Status transitions follow the explicit transition table (see Status)
//   - updated_at is never earlier than created_at
//   - Can only be created through NewOrder or RestoreOrder
//
// The struct uses private fields to ensure encapsulation; the customer
// reference and item list are immutable once the order exists, and the status
// only changes through ChangeStatus.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// customerReference is the opaque identifier of the purchasing party
	customerReference string

	// items is the ordered, non-empty list of line entries
	items []Item

	// status represents the current state in the order lifecycle
	status Status

	// createdAt is set once at creation
	createdAt time.Time

	// updatedAt is refreshed on every status mutation
	updatedAt time.Time

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order instance with validation. The order starts in
// Pending status with both timestamps set to the current UTC time.
//
// Parameters:
//   - id: Unique identifier for the order (must be valid)
//   - customerReference: Identifier of the purchasing party (must not be empty)
//   - items: Line entries (must be non-empty, each created via NewItem)
//
// Returns the created order, or a validation error if any parameter is invalid.
func NewOrder(id kernel.UUID, customerReference string, items []Item) (*Order, error) {
	now := time.Now().UTC()
	order := &Order{
		status:        Pending,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerReference(customerReference),
		order.setItems(items),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order from persisted state without resetting
// the lifecycle. Used by the repository layer when loading records.
//
// All invariants are re-checked: the status must be a valid lifecycle state
// and updatedAt must not precede createdAt.
func RestoreOrder(
	id kernel.UUID,
	customerReference string,
	items []Item,
	status Status,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	order := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerReference(customerReference),
		order.setItems(items),
		order.setStatus(status),
		order.setTimestamps(createdAt, updatedAt),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed through a factory method.
// This prevents bypassing validation by directly instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerReference returns the identifier of the purchasing party.
func (o *Order) CustomerReference() string {
	return o.customerReference
}

// Items returns a copy of the order's line entries.
// The copy keeps the aggregate's item list immutable from the outside.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the timestamp of the last status mutation.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// ChangeStatus transitions the order to the next lifecycle state and
// refreshes the updated_at timestamp.
//
// This method enforces the following business rules:
//   - The requested status must be a recognized lifecycle state
//   - The transition must be allowed by the transition table
//   - Terminal statuses (Delivered, Cancelled) accept no further changes
//
// Returns an InvalidTransitionError naming both statuses when the pair is
// not allowed; the stored status is left unchanged in that case.
func (o *Order) ChangeStatus(next Status) error {
	newStatus, err := o.status.TransitionTo(next)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.updatedAt = time.Now().UTC()
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerReference(customerReference string) error {
	if customerReference == "" {
		return errs.NewValueIsRequiredError("customer_reference")
	}
	o.customerReference = customerReference
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setTimestamps(createdAt, updatedAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("created_at")
	}
	if updatedAt.Before(createdAt) {
		return errs.NewValueIsInvalidErrorWithCause(
			"updated_at",
			fmt.Errorf("%s is earlier than created_at %s", updatedAt.Format(time.RFC3339Nano), createdAt.Format(time.RFC3339Nano)),
		)
	}
	o.createdAt = createdAt
	o.updatedAt = updatedAt
	return nil
}
