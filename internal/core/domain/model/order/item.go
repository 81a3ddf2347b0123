package order

import (
	"errors"
	"fmt"

	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	// ErrItemIsNotConstructed is returned when an Item instance was not created
	// through the NewItem factory method.
	ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")
)

// Item is a value object representing a single order line entry.
//
// Item follows these invariants:
//   - Product identifier must not be empty
//   - Quantity must be a positive integer
//   - Unit price must be non-negative
//
// Items are set at order creation and are immutable thereafter.
type Item struct {
	// productID is the opaque identifier of the ordered product
	productID string

	// quantity is the number of units ordered (always >= 1)
	quantity int

	// price is the non-negative unit price
	price decimal.Decimal

	guard guard.ConstructorGuard
}

// NewItem creates a validated order line entry.
// Returns an error if the product identifier is empty, the quantity is not
// positive, or the price is negative.
func NewItem(productID string, quantity int, price decimal.Decimal) (Item, error) {
	item := Item{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setProductID(productID),
		item.setQuantity(quantity),
		item.setPrice(price),
	); err != nil {
		return Item{}, err
	}

	return item, nil
}

// Validate ensures the Item instance was properly constructed through NewItem.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// ProductID returns the identifier of the ordered product.
func (i Item) ProductID() string {
	return i.productID
}

// Quantity returns the number of units ordered.
func (i Item) Quantity() int {
	return i.quantity
}

// Price returns the unit price.
func (i Item) Price() decimal.Decimal {
	return i.price
}

func (i *Item) setProductID(productID string) error {
	if productID == "" {
		return errs.NewValueIsRequiredError("product_id")
	}
	i.productID = productID
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%s is negative", price))
	}
	i.price = price
	return nil
}
