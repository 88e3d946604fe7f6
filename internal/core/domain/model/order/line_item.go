package order

import (
	"fmt"

	"orders/internal/pkg/errs"
)

// LineItem is a value object describing one product entry within an order:
// what was bought, how many, and at what unit price. Instances are immutable
// and must be created via NewLineItem.
type LineItem struct {
	productName string
	quantity    int
	unitPrice   float64

	isConstructed bool
}

// NewLineItem creates a validated line item.
// The product name must be non-empty, quantity at least 1 and unit price
// non-negative.
func NewLineItem(productName string, quantity int, unitPrice float64) (LineItem, error) {
	if productName == "" {
		return LineItem{}, errs.NewValueIsRequiredError("product_name")
	}

	if quantity < 1 {
		return LineItem{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than or equal to 1", quantity))
	}

	if unitPrice < 0 {
		return LineItem{}, errs.NewValueIsInvalidErrorWithCause("unit_price",
			fmt.Errorf("%.2f is negative", unitPrice))
	}

	return LineItem{
		productName:   productName,
		quantity:      quantity,
		unitPrice:     unitPrice,
		isConstructed: true,
	}, nil
}

// Validate ensures the line item was created via NewLineItem.
func (li LineItem) Validate() error {
	if !li.isConstructed {
		return errs.NewValueIsRequiredError("line item must be created via NewLineItem")
	}
	return nil
}

// ProductName returns the product description.
func (li LineItem) ProductName() string {
	return li.productName
}

// Quantity returns the number of units ordered.
func (li LineItem) Quantity() int {
	return li.quantity
}

// UnitPrice returns the price of a single unit.
func (li LineItem) UnitPrice() float64 {
	return li.unitPrice
}

// Subtotal returns quantity multiplied by unit price.
func (li LineItem) Subtotal() float64 {
	return float64(li.quantity) * li.unitPrice
}
