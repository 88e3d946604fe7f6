// Package queries contains read-only operations in the CQRS split. Query
// handlers read the database directly and return plain response structs;
// they never load aggregates or open transactions.
package queries

import (
	"errors"
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/guard"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// GetOrderQuery retrieves a single order by identifier, scoped to its owner.
// Orders belonging to other users and soft-deleted orders are reported as
// not found, never as forbidden.
//
// Example:
//
//	query, err := queries.NewGetOrderQuery(orderID, ownerID)
//	if err != nil {
//	    return err
//	}
//
//	order, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // missing, foreign or deleted
//	}
type GetOrderQuery struct {
	orderID kernel.UUID
	ownerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for the owner's order with the given ID.
func NewGetOrderQuery(orderID, ownerID kernel.UUID) (GetOrderQuery, error) {
	if err := errors.Join(orderID.Validate(), ownerID.Validate()); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: orderID,
		ownerID: ownerID,
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

// OwnerID returns the identifier of the authenticated user.
func (q GetOrderQuery) OwnerID() kernel.UUID {
	return q.ownerID
}

// LineItemResponse is the read model of a single order line.
type LineItemResponse struct {
	ProductName string
	Quantity    int
	UnitPrice   float64
}

// OrderResponse is the read model of an order, shared by the single-order
// and list queries.
type OrderResponse struct {
	ID           kernel.UUID
	CustomerName string
	Status       string
	TotalAmount  float64
	LineItems    []LineItemResponse
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
