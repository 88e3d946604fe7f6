package commands

import (
	"errors"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

var (
	ErrUpdateOrderCommandIsNotConstructed = errors.New(
		"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
	)
)

// UpdateOrderCommand represents a full update of an order's line items and
// total amount by its owner. The order's status is never touched by this
// command; completed orders reject the update altogether.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	ownerID      kernel.UUID
	customerName string
	lineItems    []order.LineItem
	totalAmount  float64

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates a command replacing the line items and total
// of the owner's order. customerName is the owner's current display name,
// re-stamped onto the order on success.
func NewUpdateOrderCommand(
	orderID kernel.UUID,
	ownerID kernel.UUID,
	customerName string,
	lineItems []order.LineItem,
	totalAmount float64,
) (UpdateOrderCommand, error) {
	command := UpdateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setOwnerID(ownerID),
		command.setCustomerName(customerName),
		command.setLineItems(lineItems),
		command.setTotalAmount(totalAmount),
	); err != nil {
		return UpdateOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to update.
func (c UpdateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// OwnerID returns the identifier of the authenticated user.
func (c UpdateOrderCommand) OwnerID() kernel.UUID {
	return c.ownerID
}

// CustomerName returns the owner's current display name.
func (c UpdateOrderCommand) CustomerName() string {
	return c.customerName
}

// LineItems returns the replacement line items.
func (c UpdateOrderCommand) LineItems() []order.LineItem {
	return c.lineItems
}

// TotalAmount returns the replacement order total.
func (c UpdateOrderCommand) TotalAmount() float64 {
	return c.totalAmount
}

func (c *UpdateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateOrderCommand) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}

	c.ownerID = ownerID
	return nil
}

func (c *UpdateOrderCommand) setCustomerName(customerName string) error {
	if customerName == "" {
		return errs.NewValueIsRequiredError("customer_name")
	}

	c.customerName = customerName
	return nil
}

func (c *UpdateOrderCommand) setLineItems(lineItems []order.LineItem) error {
	if len(lineItems) == 0 {
		return errs.NewValueIsRequiredError("line_items")
	}

	c.lineItems = lineItems
	return nil
}

func (c *UpdateOrderCommand) setTotalAmount(totalAmount float64) error {
	if totalAmount < 0 {
		return errs.NewValueIsInvalidError("total_amount")
	}

	c.totalAmount = totalAmount
	return nil
}
