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
		assert.Equal(t, 2, int(order.Confirmed))
		assert.Equal(t, 3, int(order.Shipped))
		assert.Equal(t, 4, int(order.Delivered))
		assert.Equal(t, 5, int(order.Cancelled))
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate valid statuses", func(t *testing.T) {
		validStatuses := []order.Status{
			order.Pending,
			order.Confirmed,
			order.Shipped,
			order.Delivered,
			order.Cancelled,
		}

		for _, status := range validStatuses {
			t.Run(fmt.Sprintf("should validate %s status", status.String()), func(t *testing.T) {
				require.NoError(t, status.Validate())
			})
		}
	})

	t.Run("should reject Unknown status", func(t *testing.T) {
		err := order.Unknown.Validate()

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		assert.Contains(t, err.Error(), "status")
		assert.Contains(t, err.Error(), "0 is not a valid status")
	})

	t.Run("should reject out-of-range status values", func(t *testing.T) {
		for _, status := range []order.Status{order.Status(-1), order.Status(6), order.Status(100)} {
			require.Error(t, status.Validate())
		}
	})
}

func TestStatus_String(t *testing.T) {
	t.Run("should return lowercase names", func(t *testing.T) {
		assert.Equal(t, "pending", order.Pending.String())
		assert.Equal(t, "confirmed", order.Confirmed.String())
		assert.Equal(t, "shipped", order.Shipped.String())
		assert.Equal(t, "delivered", order.Delivered.String())
		assert.Equal(t, "cancelled", order.Cancelled.String())
	})

	t.Run("should return unknown for invalid values", func(t *testing.T) {
		assert.Equal(t, "unknown", order.Unknown.String())
		assert.Equal(t, "unknown", order.Status(42).String())
	})
}

func TestStatusFromString(t *testing.T) {
	t.Run("should parse all valid statuses", func(t *testing.T) {
		cases := map[string]order.Status{
			"pending":   order.Pending,
			"confirmed": order.Confirmed,
			"shipped":   order.Shipped,
			"delivered": order.Delivered,
			"cancelled": order.Cancelled,
		}

		for raw, expected := range cases {
			parsed, err := order.StatusFromString(raw)

			require.NoError(t, err)
			assert.Equal(t, expected, parsed)
		}
	})

	t.Run("should reject unrecognized values", func(t *testing.T) {
		for _, raw := range []string{"", "Pending", "PENDING", "completed", "in-flight"} {
			_, err := order.StatusFromString(raw)

			require.Error(t, err, "value %q should not parse", raw)
			assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})
}

func TestStatus_TransitionTable(t *testing.T) {
	type pair struct {
		from order.Status
		to   order.Status
	}

	allowed := []pair{
		{order.Pending, order.Confirmed},
		{order.Pending, order.Cancelled},
		{order.Confirmed, order.Shipped},
		{order.Confirmed, order.Cancelled},
		{order.Shipped, order.Delivered},
		{order.Shipped, order.Cancelled},
	}

	t.Run("should allow every pair in the table", func(t *testing.T) {
		for _, p := range allowed {
			t.Run(fmt.Sprintf("%s to %s", p.from, p.to), func(t *testing.T) {
				assert.True(t, p.from.CanTransitionTo(p.to))

				next, err := p.from.TransitionTo(p.to)
				require.NoError(t, err)
				assert.Equal(t, p.to, next)
			})
		}
	})

	t.Run("should reject every pair outside the table", func(t *testing.T) {
		all := []order.Status{order.Pending, order.Confirmed, order.Shipped, order.Delivered, order.Cancelled}

		isAllowed := func(from, to order.Status) bool {
			for _, p := range allowed {
				if p.from == from && p.to == to {
					return true
				}
			}
			return false
		}

		for _, from := range all {
			for _, to := range all {
				if isAllowed(from, to) {
					continue
				}

				t.Run(fmt.Sprintf("%s to %s", from, to), func(t *testing.T) {
					assert.False(t, from.CanTransitionTo(to))

					_, err := from.TransitionTo(to)
					require.Error(t, err)

					var transitionErr *order.InvalidTransitionError
					require.ErrorAs(t, err, &transitionErr)
					assert.Equal(t, from, transitionErr.From)
					assert.Equal(t, to, transitionErr.To)
				})
			}
		}
	})

	t.Run("should reject unrecognized target statuses", func(t *testing.T) {
		_, err := order.Pending.TransitionTo(order.Unknown)

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	t.Run("delivered and cancelled are terminal", func(t *testing.T) {
		assert.True(t, order.Delivered.IsTerminal())
		assert.True(t, order.Cancelled.IsTerminal())
	})

	t.Run("active statuses are not terminal", func(t *testing.T) {
		assert.False(t, order.Pending.IsTerminal())
		assert.False(t, order.Confirmed.IsTerminal())
		assert.False(t, order.Shipped.IsTerminal())
	})

	t.Run("unknown status is not terminal", func(t *testing.T) {
		assert.False(t, order.Unknown.IsTerminal())
	})
}

func TestInvalidTransitionError(t *testing.T) {
	t.Run("names both statuses in the message", func(t *testing.T) {
		err := order.NewInvalidTransitionError(order.Delivered, order.Pending)

		assert.Equal(t, "status transition from delivered to pending is not allowed", err.Error())
	})

	t.Run("classifies as invalid input", func(t *testing.T) {
		err := order.NewInvalidTransitionError(order.Delivered, order.Pending)

		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
