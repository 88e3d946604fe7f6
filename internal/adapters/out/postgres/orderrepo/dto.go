// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. Implements the repository pattern for the order
// aggregate, converting between domain entities and database rows.
package orderrepo

import (
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderDTO represents the database structure for persisting order aggregates.
// DeletedAt drives soft deletion: deleted rows keep their data but drop out
// of every query.
type OrderDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID      uuid.UUID `gorm:"type:uuid;index"`
	CustomerName string
	TotalAmount  float64       `gorm:"type:decimal(10,2)"`
	Status       int           `gorm:"index"`
	Items        []LineItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt    time.Time     `gorm:"index"`
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// LineItemDTO represents one order line. Lines have no lifecycle of their
// own; they are replaced wholesale whenever the order's details change.
type LineItemDTO struct {
	ID          uint      `gorm:"primaryKey"`
	OrderID     uuid.UUID `gorm:"type:uuid;index"`
	ProductName string
	Quantity    int
	UnitPrice   float64 `gorm:"type:decimal(10,2)"`
}

// TableName specifies the database table name for order lines.
func (LineItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	lineItems := aggregate.LineItems()
	items := make([]LineItemDTO, 0, len(lineItems))
	for _, item := range lineItems {
		items = append(items, LineItemDTO{
			OrderID:     aggregate.ID().Bytes(),
			ProductName: item.ProductName(),
			Quantity:    item.Quantity(),
			UnitPrice:   item.UnitPrice(),
		})
	}

	return OrderDTO{
		ID:           aggregate.ID().Bytes(),
		OwnerID:      aggregate.OwnerID().Bytes(),
		CustomerName: aggregate.CustomerName(),
		TotalAmount:  aggregate.TotalAmount(),
		Status:       int(aggregate.Status()),
		Items:        items,
	}
}

// toDomain converts a database row to an order domain aggregate via
// RestoreOrder, which skips the total consistency re-check.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}

	items := make([]order.LineItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := order.NewLineItem(itemDTO.ProductName, itemDTO.Quantity, itemDTO.UnitPrice)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(id, ownerID, dto.CustomerName, items, dto.TotalAmount, order.Status(dto.Status))
}
