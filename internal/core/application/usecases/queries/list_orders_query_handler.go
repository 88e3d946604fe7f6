package queries

import (
	"context"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListOrdersQueryHandler retrieves pages of an owner's orders.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersQueryHandler creates a handler for order list queries.
func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle executes the query. Results are ordered by creation time descending
// with the order ID as tiebreaker, and the total is counted before pagination
// is applied. A page past the end yields an empty page, not an error.
func (h ListOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListOrdersQuery,
) (ListOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListOrdersQueryResponse{}, err
	}

	// The filter set is applied twice, to the count and to the page read,
	// so it lives in a scope rather than a shared statement.
	filters := func(db *gorm.DB) *gorm.DB {
		db = db.Where("owner_id = ?", query.OwnerID().Bytes()).
			Where("deleted_at IS NULL")

		if status := query.Status(); status != nil {
			db = db.Where("status = ?", int(*status))
		}
		if from := query.From(); from != nil {
			db = db.Where("created_at >= ?", *from)
		}
		if to := query.To(); to != nil {
			db = db.Where("created_at < ?", to.AddDate(0, 0, 1))
		}

		return db
	}

	var total int64
	if err := h.db.WithContext(ctx).Table("orders").Scopes(filters).Count(&total).Error; err != nil {
		return ListOrdersQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Table("orders").Scopes(filters).
		Select("id, customer_name, total_amount, status, created_at, updated_at").
		Order("created_at DESC, id DESC").
		Limit(OrdersPerPage).
		Offset((query.Page() - 1) * OrdersPerPage).
		Rows()
	if err != nil {
		return ListOrdersQueryResponse{}, err
	}
	defer rows.Close()

	orders := make([]OrderResponse, 0)
	orderIDs := make([]uuid.UUID, 0)
	for rows.Next() {
		var resp OrderResponse
		var id uuid.UUID
		var status int

		err = rows.Scan(&id, &resp.CustomerName, &resp.TotalAmount, &status, &resp.CreatedAt, &resp.UpdatedAt)
		if err != nil {
			return ListOrdersQueryResponse{}, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return ListOrdersQueryResponse{}, idErr
		}
		resp.ID = orderID
		resp.Status = order.Status(status).String()

		orders = append(orders, resp)
		orderIDs = append(orderIDs, id)
	}

	if err = rows.Err(); err != nil {
		return ListOrdersQueryResponse{}, err
	}

	if err = h.attachLineItems(ctx, orders, orderIDs); err != nil {
		return ListOrdersQueryResponse{}, err
	}

	lastPage := int((total + OrdersPerPage - 1) / OrdersPerPage)
	if lastPage < 1 {
		lastPage = 1
	}

	return ListOrdersQueryResponse{
		Orders:   orders,
		Total:    total,
		Page:     query.Page(),
		PageSize: OrdersPerPage,
		LastPage: lastPage,
	}, nil
}

// attachLineItems loads the lines of every order on the page in one query
// and distributes them to their orders.
func (h ListOrdersQueryHandler) attachLineItems(
	ctx context.Context,
	orders []OrderResponse,
	orderIDs []uuid.UUID,
) error {
	if len(orderIDs) == 0 {
		return nil
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			order_id,
			product_name,
			quantity,
			unit_price
		FROM order_items
		WHERE order_id IN ?
		ORDER BY id
	`, orderIDs).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	itemsByOrder := make(map[uuid.UUID][]LineItemResponse, len(orderIDs))
	for rows.Next() {
		var orderID uuid.UUID
		var item LineItemResponse

		if err = rows.Scan(&orderID, &item.ProductName, &item.Quantity, &item.UnitPrice); err != nil {
			return err
		}
		itemsByOrder[orderID] = append(itemsByOrder[orderID], item)
	}

	if err = rows.Err(); err != nil {
		return err
	}

	for i := range orders {
		items := itemsByOrder[orders[i].ID.Bytes()]
		if items == nil {
			items = make([]LineItemResponse, 0)
		}
		orders[i].LineItems = items
	}

	return nil
}
