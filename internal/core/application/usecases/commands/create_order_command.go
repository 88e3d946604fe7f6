package commands

import (
	"errors"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand represents a request by an authenticated user to create
// a new order. The owner identity is an explicit parameter; there is no
// ambient current-user state. The line item / total consistency rule itself
// is enforced by the Order aggregate when the handler builds it.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	ownerID      kernel.UUID
	customerName string
	lineItems    []order.LineItem
	totalAmount  float64
	status       order.Status

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order for the
// given owner. status may be order.Unknown to request the default (pending).
func NewCreateOrderCommand(
	orderID kernel.UUID,
	ownerID kernel.UUID,
	customerName string,
	lineItems []order.LineItem,
	totalAmount float64,
	status order.Status,
) (CreateOrderCommand, error) {
	command := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setOwnerID(ownerID),
		command.setCustomerName(customerName),
		command.setLineItems(lineItems),
		command.setTotalAmount(totalAmount),
		command.setStatus(status),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier assigned to the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// OwnerID returns the identifier of the authenticated user creating the order.
func (c CreateOrderCommand) OwnerID() kernel.UUID {
	return c.ownerID
}

// CustomerName returns the owner's display name to stamp onto the order.
func (c CreateOrderCommand) CustomerName() string {
	return c.customerName
}

// LineItems returns the requested line items.
func (c CreateOrderCommand) LineItems() []order.LineItem {
	return c.lineItems
}

// TotalAmount returns the client-declared order total.
func (c CreateOrderCommand) TotalAmount() float64 {
	return c.totalAmount
}

// Status returns the requested initial status, defaulted to pending when the
// request did not name one.
func (c CreateOrderCommand) Status() order.Status {
	return c.status
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}

	c.ownerID = ownerID
	return nil
}

func (c *CreateOrderCommand) setCustomerName(customerName string) error {
	if customerName == "" {
		return errs.NewValueIsRequiredError("customer_name")
	}

	c.customerName = customerName
	return nil
}

func (c *CreateOrderCommand) setLineItems(lineItems []order.LineItem) error {
	if len(lineItems) == 0 {
		return errs.NewValueIsRequiredError("line_items")
	}

	c.lineItems = lineItems
	return nil
}

func (c *CreateOrderCommand) setTotalAmount(totalAmount float64) error {
	if totalAmount < 0 {
		return errs.NewValueIsInvalidError("total_amount")
	}

	c.totalAmount = totalAmount
	return nil
}

func (c *CreateOrderCommand) setStatus(status order.Status) error {
	if status == order.Unknown {
		c.status = order.Pending
		return nil
	}

	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}
