package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves a single order with its line items from the
// database. Reads go straight to SQL rather than through the aggregate: the
// response is a flat record and no domain behavior is involved.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order lookups.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the lookup. Returns an ObjectNotFoundError when no order
// with the requested id exists.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	var (
		id                uuid.UUID
		customerReference string
		status            int
		createdAt         time.Time
		updatedAt         time.Time
	)

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_reference,
			status,
			created_at,
			updated_at
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row()

	err := row.Scan(&id, &customerReference, &status, &createdAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError(
			"orderId", query.OrderID().String())
	}
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	items, err := h.readItems(ctx, id)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	return GetOrderQueryResponse{
		ID:                orderID,
		CustomerReference: customerReference,
		Items:             items,
		Status:            order.Status(status).String(),
		CreatedAt:         createdAt,
		UpdatedAt:         updatedAt,
	}, nil
}

func (h GetOrderQueryHandler) readItems(
	ctx context.Context,
	orderID uuid.UUID,
) ([]GetOrderQueryItem, error) {
	items := make([]GetOrderQueryItem, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			product_id,
			quantity,
			price
		FROM order_items
		WHERE order_id = ?
		ORDER BY id
	`, orderID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item GetOrderQueryItem
		var price decimal.Decimal

		err = rows.Scan(&item.ProductID, &item.Quantity, &price)
		if err != nil {
			return nil, err
		}

		item.Price = price
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
