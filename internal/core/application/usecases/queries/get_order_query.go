// Package queries contains read operations over the persisted order state.
// Queries bypass the aggregate and read via SQL for the response shape they
// need; they never mutate anything.
package queries

import (
	"errors"
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// GetOrderQuery retrieves a single order with its line items by identifier.
// The read operation is open to all callers; no role signal is carried.
type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query to retrieve the order with the given id.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the requested order.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderQueryResponse carries the full order record for the API surface.
type GetOrderQueryResponse struct {
	ID                kernel.UUID
	CustomerReference string
	Items             []GetOrderQueryItem
	Status            string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// GetOrderQueryItem is a single line entry in a GetOrderQueryResponse.
type GetOrderQueryItem struct {
	ProductID string
	Quantity  int
	Price     decimal.Decimal
}
