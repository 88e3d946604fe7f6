package order

import (
	"errors"
	"fmt"
	"math"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"
)

// TotalAmountTolerance is the maximum allowed absolute difference between an
// order's total amount and the sum of its line item subtotals.
const TotalAmountTolerance = 0.01

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrCompletedOrderImmutable rejects detail updates on completed orders.
	ErrCompletedOrderImmutable = errors.New("completed orders cannot be updated")
)

// Order is the aggregate root of the order model. It ties an owning user to
// a set of line items, a total amount and a lifecycle status.
//
// Invariants:
//   - id and ownerID are valid UUIDs; ownerID never changes after creation
//   - at least one line item, each valid per NewLineItem
//   - totalAmount is non-negative and matches the line item subtotals
//     within TotalAmountTolerance (checked at creation and detail updates,
//     never on status-only changes)
//   - status transitions follow the Status state machine
type Order struct {
	id           kernel.UUID
	ownerID      kernel.UUID
	customerName string
	lineItems    []LineItem
	totalAmount  float64
	status       Status

	isConstructed bool
}

// NewOrder creates a new order owned by ownerID. The customer name is the
// owner's display name at creation time. The status is usually Pending but
// callers may supply any valid status explicitly.
func NewOrder(
	id kernel.UUID,
	ownerID kernel.UUID,
	customerName string,
	lineItems []LineItem,
	totalAmount float64,
	status Status,
) (*Order, error) {
	order := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setOwnerID(ownerID),
		order.setCustomerName(customerName),
		order.setLineItems(lineItems, totalAmount),
		order.setStatus(status),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an order from persistence. Field shapes are
// validated, but the total/subtotal consistency rule is not re-evaluated:
// it was enforced when the row was written, and status-only updates must
// not fail on it.
func RestoreOrder(
	id kernel.UUID,
	ownerID kernel.UUID,
	customerName string,
	lineItems []LineItem,
	totalAmount float64,
	status Status,
) (*Order, error) {
	order := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setOwnerID(ownerID),
		order.setCustomerName(customerName),
		order.setStatus(status),
	); err != nil {
		return nil, err
	}

	for _, item := range lineItems {
		if err := item.Validate(); err != nil {
			return nil, err
		}
	}

	order.lineItems = lineItems
	order.totalAmount = totalAmount
	return order, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// OwnerID returns the identifier of the user owning the order.
func (o *Order) OwnerID() kernel.UUID {
	return o.ownerID
}

// CustomerName returns the owner's display name as captured at the last
// create or detail update.
func (o *Order) CustomerName() string {
	return o.customerName
}

// LineItems returns a copy of the order's line items.
func (o *Order) LineItems() []LineItem {
	items := make([]LineItem, len(o.lineItems))
	copy(items, o.lineItems)
	return items
}

// TotalAmount returns the order total.
func (o *Order) TotalAmount() float64 {
	return o.totalAmount
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// UpdateDetails replaces the order's line items and total amount, and
// refreshes the customer name from the owner's current display name.
// Completed orders reject the update with ErrCompletedOrderImmutable.
// The status is left untouched.
func (o *Order) UpdateDetails(customerName string, lineItems []LineItem, totalAmount float64) error {
	if o.status == Completed {
		return ErrCompletedOrderImmutable
	}

	if err := errors.Join(
		o.setCustomerName(customerName),
		o.setLineItems(lineItems, totalAmount),
	); err != nil {
		return err
	}

	return nil
}

// ChangeStatus requests a transition to the target status. Legality is
// decided by the Status state machine; on rejection the order is left
// unchanged and the transition error is returned.
func (o *Order) ChangeStatus(target Status) error {
	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}
	o.ownerID = ownerID
	return nil
}

func (o *Order) setCustomerName(customerName string) error {
	if customerName == "" {
		return errs.NewValueIsRequiredError("customer_name")
	}
	o.customerName = customerName
	return nil
}

// setLineItems validates the line items together with the total amount and
// stores both. The total must be non-negative and must match the sum of
// subtotals within TotalAmountTolerance; mismatches are tagged to the
// total_amount field.
func (o *Order) setLineItems(lineItems []LineItem, totalAmount float64) error {
	if len(lineItems) == 0 {
		return errs.NewValueIsRequiredError("line_items")
	}

	var subtotal float64
	for _, item := range lineItems {
		if err := item.Validate(); err != nil {
			return err
		}
		subtotal += item.Subtotal()
	}

	if totalAmount < 0 {
		return errs.NewValueIsInvalidErrorWithCause("total_amount",
			fmt.Errorf("%.2f is negative", totalAmount))
	}

	if math.Abs(totalAmount-subtotal) > TotalAmountTolerance {
		return errs.NewValueIsInvalidErrorWithCause("total_amount",
			fmt.Errorf("total %.2f does not match line item subtotals %.2f", totalAmount, subtotal))
	}

	items := make([]LineItem, len(lineItems))
	copy(items, lineItems)
	o.lineItems = items
	o.totalAmount = totalAmount
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
