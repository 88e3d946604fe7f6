package order_test

import (
	"fmt"
	"testing"

	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(order.Unknown))
		assert.Equal(t, 1, int(order.Pending))
		assert.Equal(t, 2, int(order.Processing))
		assert.Equal(t, 3, int(order.Completed))
		assert.Equal(t, 4, int(order.Cancelled))
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate valid statuses", func(t *testing.T) {
		validStatuses := []order.Status{
			order.Pending,
			order.Processing,
			order.Completed,
			order.Cancelled,
		}

		for _, status := range validStatuses {
			t.Run(fmt.Sprintf("should validate %s status", status.String()), func(t *testing.T) {
				require.NoError(t, status.Validate())
			})
		}
	})

	t.Run("should reject invalid status values", func(t *testing.T) {
		invalidStatuses := []order.Status{
			order.Unknown,
			order.Status(-1),
			order.Status(5),
			order.Status(100),
		}

		for _, status := range invalidStatuses {
			t.Run(fmt.Sprintf("should reject status value %d", int(status)), func(t *testing.T) {
				err := status.Validate()

				require.Error(t, err)
				assert.IsType(t, &errs.ValueIsInvalidError{}, err)
				assert.Contains(t, err.Error(), "status")
			})
		}
	})
}

func TestStatus_String(t *testing.T) {
	t.Run("should return lowercase names", func(t *testing.T) {
		assert.Equal(t, "pending", order.Pending.String())
		assert.Equal(t, "processing", order.Processing.String())
		assert.Equal(t, "completed", order.Completed.String())
		assert.Equal(t, "cancelled", order.Cancelled.String())
	})

	t.Run("should return unknown for invalid values", func(t *testing.T) {
		assert.Equal(t, "unknown", order.Unknown.String())
		assert.Equal(t, "unknown", order.Status(42).String())
	})
}

func TestParseStatus(t *testing.T) {
	t.Run("should parse valid status strings", func(t *testing.T) {
		testCases := map[string]order.Status{
			"pending":    order.Pending,
			"processing": order.Processing,
			"completed":  order.Completed,
			"cancelled":  order.Cancelled,
		}

		for input, expected := range testCases {
			status, err := order.ParseStatus(input)

			require.NoError(t, err)
			assert.Equal(t, expected, status)
		}
	})

	t.Run("should reject invalid status strings", func(t *testing.T) {
		for _, input := range []string{"", "unknown", "PENDING", "shipped"} {
			status, err := order.ParseStatus(input)

			require.Error(t, err)
			assert.IsType(t, &errs.ValueIsInvalidError{}, err)
			assert.Equal(t, order.Unknown, status)
		}
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.False(t, order.Pending.IsTerminal())
	assert.False(t, order.Processing.IsTerminal())
	assert.True(t, order.Completed.IsTerminal())
	assert.True(t, order.Cancelled.IsTerminal())
}

func TestStatus_TransitionTo(t *testing.T) {
	t.Run("should allow valid transitions", func(t *testing.T) {
		testCases := []struct {
			from order.Status
			to   order.Status
		}{
			{order.Pending, order.Processing},
			{order.Pending, order.Cancelled},
			{order.Processing, order.Completed},
		}

		for _, tc := range testCases {
			t.Run(fmt.Sprintf("%s to %s", tc.from, tc.to), func(t *testing.T) {
				newStatus, err := tc.from.TransitionTo(tc.to)

				require.NoError(t, err)
				assert.Equal(t, tc.to, newStatus)
			})
		}
	})

	t.Run("should reject invalid transitions", func(t *testing.T) {
		testCases := []struct {
			from order.Status
			to   order.Status
		}{
			{order.Pending, order.Completed},
			{order.Processing, order.Pending},
			{order.Processing, order.Cancelled},
			{order.Completed, order.Pending},
			{order.Completed, order.Processing},
			{order.Completed, order.Cancelled},
			{order.Cancelled, order.Pending},
			{order.Cancelled, order.Processing},
			{order.Cancelled, order.Completed},
		}

		for _, tc := range testCases {
			t.Run(fmt.Sprintf("%s to %s", tc.from, tc.to), func(t *testing.T) {
				newStatus, err := tc.from.TransitionTo(tc.to)

				require.Error(t, err)
				require.ErrorIs(t, err, order.ErrInvalidStatusTransition)
				assert.Equal(t, order.Unknown, newStatus)
				assert.Equal(t,
					fmt.Sprintf("Cannot change status from %s to %s.", tc.from, tc.to),
					err.Error())
			})
		}
	})

	t.Run("should reject transitions to invalid targets", func(t *testing.T) {
		_, err := order.Pending.TransitionTo(order.Unknown)

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
	})

	t.Run("should reject self transitions", func(t *testing.T) {
		for _, status := range []order.Status{order.Pending, order.Processing, order.Completed, order.Cancelled} {
			_, err := status.TransitionTo(status)
			require.Error(t, err, "self transition from %s must be rejected", status)
		}
	})
}
