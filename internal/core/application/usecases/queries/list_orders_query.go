package queries

import (
	"errors"
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

// OrdersPerPage is the fixed page size of the order list.
const OrdersPerPage = 15

var (
	ErrListOrdersQueryIsNotConstructed = errors.New(
		"ListOrdersQuery must be created via NewListOrdersQuery constructor",
	)
)

// ListOrdersQuery retrieves a page of the owner's orders, newest first.
// Optional filters narrow the result by status and by creation date; the
// date bounds are inclusive calendar days.
type ListOrdersQuery struct {
	ownerID kernel.UUID
	status  *order.Status
	from    *time.Time
	to      *time.Time
	page    int

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a list query for the given owner. status, from
// and to may be nil to skip the corresponding filter; page is 1-based.
func NewListOrdersQuery(
	ownerID kernel.UUID,
	status *order.Status,
	from *time.Time,
	to *time.Time,
	page int,
) (ListOrdersQuery, error) {
	if err := ownerID.Validate(); err != nil {
		return ListOrdersQuery{}, err
	}

	if status != nil {
		if err := status.Validate(); err != nil {
			return ListOrdersQuery{}, err
		}
	}

	if page < 1 {
		return ListOrdersQuery{}, errs.NewValueIsOutOfRangeError("page", page, 1, nil)
	}

	return ListOrdersQuery{
		ownerID: ownerID,
		status:  status,
		from:    from,
		to:      to,
		page:    page,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// OwnerID returns the identifier of the authenticated user.
func (q ListOrdersQuery) OwnerID() kernel.UUID {
	return q.ownerID
}

// Status returns the status filter, or nil when unfiltered.
func (q ListOrdersQuery) Status() *order.Status {
	return q.status
}

// From returns the inclusive lower creation-date bound, or nil.
func (q ListOrdersQuery) From() *time.Time {
	return q.from
}

// To returns the inclusive upper creation-date bound, or nil.
func (q ListOrdersQuery) To() *time.Time {
	return q.to
}

// Page returns the requested 1-based page number.
func (q ListOrdersQuery) Page() int {
	return q.page
}

// ListOrdersQueryResponse is one page of orders plus pagination metadata.
// Total counts all rows matching the filters, not just the page.
type ListOrdersQueryResponse struct {
	Orders   []OrderResponse
	Total    int64
	Page     int
	PageSize int
	LastPage int
}
