package ports

import (
	"context"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Every read and write is scoped to an owning user: an order belonging to a
// different owner is reported as not found, indistinguishable from a missing
// row. Soft-deleted orders are invisible to all methods.
type OrderRepository interface {
	// Add persists a new order aggregate.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate, replacing its
	// line items.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by identifier, scoped to the owner.
	Get(ctx context.Context, id, ownerID kernel.UUID) (*order.Order, error)

	// GetForUpdate retrieves an order like Get but takes a row lock so a
	// read-check-write sequence inside the surrounding transaction cannot
	// interleave with another writer.
	GetForUpdate(ctx context.Context, id, ownerID kernel.UUID) (*order.Order, error)

	// Delete soft-deletes an order, scoped to the owner. Deleting an order
	// that is missing, foreign or already soft-deleted reports not found.
	Delete(ctx context.Context, id, ownerID kernel.UUID) error
}
