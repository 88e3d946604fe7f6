package queries

import (
	"context"
	"database/sql"
	"errors"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves a single order with its line items.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order queries.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query. Returns an ObjectNotFoundError when no live row
// matches both the order ID and the owner.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	var resp OrderResponse
	var id uuid.UUID
	var status int

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_name,
			total_amount,
			status,
			created_at,
			updated_at
		FROM orders
		WHERE id = ? AND owner_id = ? AND deleted_at IS NULL
	`, query.OrderID().Bytes(), query.OwnerID().Bytes()).Row()

	err := row.Scan(&id, &resp.CustomerName, &resp.TotalAmount, &status, &resp.CreatedAt, &resp.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return OrderResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}
	if err != nil {
		return OrderResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return OrderResponse{}, err
	}
	resp.ID = orderID
	resp.Status = order.Status(status).String()

	resp.LineItems, err = loadLineItems(ctx, h.db, id)
	if err != nil {
		return OrderResponse{}, err
	}

	return resp, nil
}

// loadLineItems reads the lines of one order, in insertion order.
func loadLineItems(ctx context.Context, db *gorm.DB, orderID uuid.UUID) ([]LineItemResponse, error) {
	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			product_name,
			quantity,
			unit_price
		FROM order_items
		WHERE order_id = ?
		ORDER BY id
	`, orderID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]LineItemResponse, 0)
	for rows.Next() {
		var item LineItemResponse
		if err = rows.Scan(&item.ProductName, &item.Quantity, &item.UnitPrice); err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
