package queries

import (
	"errors"

	"orders/internal/pkg/guard"
)

var (
	ErrGetOrderStatsQueryIsNotConstructed = errors.New(
		"GetOrderStatsQuery must be created via NewGetOrderStatsQuery constructor",
	)
)

// GetOrderStatsQuery counts live orders per status across all owners.
// Used by the periodic stats report; soft-deleted orders are excluded.
type GetOrderStatsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOrderStatsQuery creates a query for order counts by status.
func NewGetOrderStatsQuery() GetOrderStatsQuery {
	return GetOrderStatsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetOrderStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderStatsQueryIsNotConstructed)
}

// OrderStatusCount is the number of live orders in one status.
type OrderStatusCount struct {
	Status string
	Count  int64
}

// GetOrderStatsQueryResponse aggregates order counts by status.
type GetOrderStatsQueryResponse struct {
	Counts []OrderStatusCount
	Total  int64
}
