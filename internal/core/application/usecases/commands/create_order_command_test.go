package commands_test

import (
	"testing"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand(t *testing.T) {
	orderID := kernel.NewUUID()
	ownerID := kernel.NewUUID()

	t.Run("should create valid command", func(t *testing.T) {
		cmd, err := commands.NewCreateOrderCommand(orderID, ownerID, "Ada Lovelace", testLineItems(t), 250.00, order.Pending)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.True(t, cmd.OrderID().IsEqual(orderID))
		assert.True(t, cmd.OwnerID().IsEqual(ownerID))
		assert.Equal(t, "Ada Lovelace", cmd.CustomerName())
		assert.Len(t, cmd.LineItems(), 2)
		assert.InDelta(t, 250.00, cmd.TotalAmount(), 0.0001)
		assert.Equal(t, order.Pending, cmd.Status())
	})

	t.Run("should default omitted status to pending", func(t *testing.T) {
		cmd, err := commands.NewCreateOrderCommand(orderID, ownerID, "Ada", testLineItems(t), 250.00, order.Unknown)

		require.NoError(t, err)
		assert.Equal(t, order.Pending, cmd.Status())
	})

	t.Run("should accept explicit status", func(t *testing.T) {
		cmd, err := commands.NewCreateOrderCommand(orderID, ownerID, "Ada", testLineItems(t), 250.00, order.Completed)

		require.NoError(t, err)
		assert.Equal(t, order.Completed, cmd.Status())
	})

	t.Run("should reject missing identifiers", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(kernel.UUID{}, ownerID, "Ada", testLineItems(t), 250.00, order.Pending)
		require.Error(t, err)

		_, err = commands.NewCreateOrderCommand(orderID, kernel.UUID{}, "Ada", testLineItems(t), 250.00, order.Pending)
		require.Error(t, err)
	})

	t.Run("should reject empty customer name", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(orderID, ownerID, "", testLineItems(t), 250.00, order.Pending)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject empty line items", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(orderID, ownerID, "Ada", nil, 0, order.Pending)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject negative total", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(orderID, ownerID, "Ada", testLineItems(t), -1, order.Pending)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject invalid status values", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(orderID, ownerID, "Ada", testLineItems(t), 250.00, order.Status(42))

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero value command fails validation", func(t *testing.T) {
		var cmd commands.CreateOrderCommand
		require.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
	})
}
