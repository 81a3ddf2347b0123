// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Line items live in a separate table and are loaded through the Items association.
type OrderDTO struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerReference string
	Status            int `gorm:"index"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
	Items             []ItemDTO `gorm:"foreignKey:OrderID"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO represents a single order line in the order_items table.
type ItemDTO struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	OrderID   uuid.UUID `gorm:"type:uuid;index"`
	ProductID string
	Quantity  int
	Price     decimal.Decimal `gorm:"type:numeric"`
}

// TableName specifies the database table name for order line items.
func (ItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	domainItems := aggregate.Items()
	items := make([]ItemDTO, 0, len(domainItems))
	for _, item := range domainItems {
		items = append(items, ItemDTO{
			OrderID:   aggregate.ID().Bytes(),
			ProductID: item.ProductID(),
			Quantity:  item.Quantity(),
			Price:     item.Price(),
		})
	}

	return OrderDTO{
		ID:                aggregate.ID().Bytes(),
		CustomerReference: aggregate.CustomerReference(),
		Status:            int(aggregate.Status()),
		CreatedAt:         aggregate.CreatedAt(),
		UpdatedAt:         aggregate.UpdatedAt(),
		Items:             items,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including status and timestamps using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := order.NewItem(itemDTO.ProductID, itemDTO.Quantity, itemDTO.Price)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id,
		dto.CustomerReference,
		items,
		order.Status(dto.Status),
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
