package order_test

import (
	"fmt"
	"testing"
	"time"

	"quickdish/internal/core/domain/model/order"
	"quickdish/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFlag_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(order.StatusUnknown))
		assert.Equal(t, 1, int(order.StatusOrdered))
		assert.Equal(t, 2, int(order.StatusPreparing))
		assert.Equal(t, 3, int(order.StatusReady))
		assert.Equal(t, 4, int(order.StatusSettled))
		assert.Equal(t, 5, int(order.StatusCancelled))
	})
}

func TestStatusFlag_Validate(t *testing.T) {
	t.Run("should validate valid status flags", func(t *testing.T) {
		validFlags := []order.StatusFlag{
			order.StatusOrdered,
			order.StatusPreparing,
			order.StatusReady,
			order.StatusSettled,
			order.StatusCancelled,
		}

		for _, flag := range validFlags {
			t.Run(fmt.Sprintf("should validate %s", flag.String()), func(t *testing.T) {
				require.NoError(t, flag.Validate())
			})
		}
	})

	t.Run("should reject invalid status flag values", func(t *testing.T) {
		invalidFlags := []order.StatusFlag{
			order.StatusUnknown,
			order.StatusFlag(-1),
			order.StatusFlag(6),
			order.StatusFlag(100),
		}

		for _, flag := range invalidFlags {
			t.Run(fmt.Sprintf("should reject value %d", int(flag)), func(t *testing.T) {
				err := flag.Validate()

				require.Error(t, err)
				assert.IsType(t, &errs.ValueIsInvalidError{}, err)
				assert.Contains(t, err.Error(), "is not a valid order status")
			})
		}
	})
}

func TestStatusFlag_String(t *testing.T) {
	t.Run("should return wire representations", func(t *testing.T) {
		assert.Equal(t, "ORDERED", order.StatusOrdered.String())
		assert.Equal(t, "PREPARING", order.StatusPreparing.String())
		assert.Equal(t, "READY", order.StatusReady.String())
		assert.Equal(t, "SETTLED", order.StatusSettled.String())
		assert.Equal(t, "CANCELLED", order.StatusCancelled.String())
	})

	t.Run("should return UNKNOWN for invalid values", func(t *testing.T) {
		assert.Equal(t, "UNKNOWN", order.StatusUnknown.String())
		assert.Equal(t, "UNKNOWN", order.StatusFlag(42).String())
	})
}

func TestStatusFlagFromString(t *testing.T) {
	t.Run("should round-trip all valid flags", func(t *testing.T) {
		for _, flag := range []order.StatusFlag{
			order.StatusOrdered,
			order.StatusPreparing,
			order.StatusReady,
			order.StatusSettled,
			order.StatusCancelled,
		} {
			parsed, err := order.StatusFlagFromString(flag.String())

			require.NoError(t, err)
			assert.Equal(t, flag, parsed)
		}
	})

	t.Run("should reject unknown strings", func(t *testing.T) {
		_, err := order.StatusFlagFromString("DELIVERED")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatusFlag_IsTerminal(t *testing.T) {
	assert.False(t, order.StatusOrdered.IsTerminal())
	assert.False(t, order.StatusPreparing.IsTerminal())
	assert.False(t, order.StatusReady.IsTerminal())
	assert.True(t, order.StatusSettled.IsTerminal())
	assert.True(t, order.StatusCancelled.IsTerminal())
}

func TestStatusVariants_Flag(t *testing.T) {
	now := time.Now()

	t.Run("each variant carries its discriminant", func(t *testing.T) {
		testCases := []struct {
			status   order.Status
			expected order.StatusFlag
		}{
			{order.Ordered{}, order.StatusOrdered},
			{order.Preparing{PreparedAt: now}, order.StatusPreparing},
			{order.Ready{ReadyAt: now}, order.StatusReady},
			{order.Settled{SettledAt: now}, order.StatusSettled},
			{order.Cancelled{By: order.CancelledByCustomer, CancelledAt: now, Reason: "late"}, order.StatusCancelled},
		}

		for _, tc := range testCases {
			assert.Equal(t, tc.expected, tc.status.Flag())
		}
	})

	t.Run("cancelled payload carries its metadata", func(t *testing.T) {
		cancelled := order.Cancelled{
			By:          order.CancelledByMerchant,
			CancelledAt: now,
			Reason:      "out of stock",
		}

		assert.Equal(t, order.CancelledByMerchant, cancelled.By)
		assert.Equal(t, now, cancelled.CancelledAt)
		assert.Equal(t, "out of stock", cancelled.Reason)
	})
}

func TestCancelledBy(t *testing.T) {
	t.Run("should return wire representations", func(t *testing.T) {
		assert.Equal(t, "CUSTOMER", order.CancelledByCustomer.String())
		assert.Equal(t, "MERCHANT", order.CancelledByMerchant.String())
		assert.Equal(t, "UNKNOWN", order.CancelledByUnknown.String())
	})

	t.Run("should round-trip from string", func(t *testing.T) {
		by, err := order.CancelledByFromString("MERCHANT")

		require.NoError(t, err)
		assert.Equal(t, order.CancelledByMerchant, by)
	})

	t.Run("should reject unknown strings", func(t *testing.T) {
		_, err := order.CancelledByFromString("COURIER")
		require.Error(t, err)
	})
}

func TestRole(t *testing.T) {
	t.Run("should validate known roles", func(t *testing.T) {
		require.NoError(t, order.RoleCustomer.Validate())
		require.NoError(t, order.RoleMerchant.Validate())
	})

	t.Run("should reject unknown roles", func(t *testing.T) {
		require.Error(t, order.RoleUnknown.Validate())
		require.Error(t, order.Role(7).Validate())
	})

	t.Run("should round-trip from string", func(t *testing.T) {
		role, err := order.RoleFromString("CUSTOMER")

		require.NoError(t, err)
		assert.Equal(t, order.RoleCustomer, role)
		assert.Equal(t, "CUSTOMER", role.String())
	})

	t.Run("should reject unknown role strings", func(t *testing.T) {
		_, err := order.RoleFromString("ADMIN")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestUpdateKind(t *testing.T) {
	t.Run("should round-trip all kinds", func(t *testing.T) {
		for _, kind := range []order.UpdateKind{
			order.UpdateCancel,
			order.UpdateSettle,
			order.UpdateMarkPreparing,
			order.UpdateMarkReady,
		} {
			parsed, err := order.UpdateKindFromString(kind.String())

			require.NoError(t, err)
			assert.Equal(t, kind, parsed)
		}
	})

	t.Run("should reject unknown update strings", func(t *testing.T) {
		_, err := order.UpdateKindFromString("refund")
		require.Error(t, err)
	})
}

func TestStatusUpdate(t *testing.T) {
	t.Run("cancel update carries the reason verbatim", func(t *testing.T) {
		update := order.NewCancelUpdate("changed my mind\nactually")

		assert.Equal(t, order.UpdateCancel, update.Kind())
		assert.Equal(t, "changed my mind\nactually", update.Reason())
		require.NoError(t, update.Validate())
	})

	t.Run("non-cancel updates have no reason", func(t *testing.T) {
		assert.Empty(t, order.NewSettleUpdate().Reason())
		assert.Empty(t, order.NewMarkPreparingUpdate().Reason())
		assert.Empty(t, order.NewMarkReadyUpdate().Reason())
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var update order.StatusUpdate

		err := update.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrStatusUpdateIsNotConstructed, err)
	})
}
