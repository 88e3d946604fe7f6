package commands

import (
	"context"
)

// UpdateOrderCommandHandler handles full updates of an order's details.
// The order is locked for the duration of the transaction so the
// completed-order check and the write cannot interleave with another writer.
type UpdateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateOrderCommandHandler creates a handler for order update operations.
func NewUpdateOrderCommandHandler(uowFactory OrderUoWFactory) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order update command.
// Orders that are missing, foreign or soft-deleted surface as not found;
// completed orders reject the update; otherwise the aggregate re-validates
// the line item / total consistency rule before the write.
func (h *UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.GetForUpdate(ctx, cmd.OrderID(), cmd.OwnerID())
	if err != nil {
		return err
	}

	if err = aggregate.UpdateDetails(cmd.CustomerName(), cmd.LineItems(), cmd.TotalAmount()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
