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

func updateOfKind(kind order.UpdateKind) order.StatusUpdate {
	switch kind {
	case order.UpdateCancel:
		return order.NewCancelUpdate("test reason")
	case order.UpdateSettle:
		return order.NewSettleUpdate()
	case order.UpdateMarkPreparing:
		return order.NewMarkPreparingUpdate()
	case order.UpdateMarkReady:
		return order.NewMarkReadyUpdate()
	}
	panic("unknown update kind")
}

func TestNextStatus_LegalTransitions(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("customer cancels an ordered order", func(t *testing.T) {
		next, err := order.NextStatus(order.RoleCustomer, order.StatusOrdered,
			order.NewCancelUpdate("changed my mind"), now)

		require.NoError(t, err)
		cancelled, ok := next.(order.Cancelled)
		require.True(t, ok)
		assert.Equal(t, order.CancelledByCustomer, cancelled.By)
		assert.Equal(t, now, cancelled.CancelledAt)
		assert.Equal(t, "changed my mind", cancelled.Reason)
	})

	t.Run("customer settles a ready order", func(t *testing.T) {
		next, err := order.NextStatus(order.RoleCustomer, order.StatusReady,
			order.NewSettleUpdate(), now)

		require.NoError(t, err)
		settled, ok := next.(order.Settled)
		require.True(t, ok)
		assert.Equal(t, now, settled.SettledAt)
	})

	t.Run("merchant marks an ordered order as preparing", func(t *testing.T) {
		next, err := order.NextStatus(order.RoleMerchant, order.StatusOrdered,
			order.NewMarkPreparingUpdate(), now)

		require.NoError(t, err)
		preparing, ok := next.(order.Preparing)
		require.True(t, ok)
		assert.Equal(t, now, preparing.PreparedAt)
	})

	t.Run("merchant marks a preparing order as ready", func(t *testing.T) {
		next, err := order.NextStatus(order.RoleMerchant, order.StatusPreparing,
			order.NewMarkReadyUpdate(), now)

		require.NoError(t, err)
		ready, ok := next.(order.Ready)
		require.True(t, ok)
		assert.Equal(t, now, ready.ReadyAt)
	})

	t.Run("merchant cancels an ordered order", func(t *testing.T) {
		next, err := order.NextStatus(order.RoleMerchant, order.StatusOrdered,
			order.NewCancelUpdate("out of stock"), now)

		require.NoError(t, err)
		cancelled, ok := next.(order.Cancelled)
		require.True(t, ok)
		assert.Equal(t, order.CancelledByMerchant, cancelled.By)
		assert.Equal(t, "out of stock", cancelled.Reason)
	})

	t.Run("merchant cancels a preparing order", func(t *testing.T) {
		next, err := order.NextStatus(order.RoleMerchant, order.StatusPreparing,
			order.NewCancelUpdate("kitchen closed"), now)

		require.NoError(t, err)
		cancelled, ok := next.(order.Cancelled)
		require.True(t, ok)
		assert.Equal(t, order.CancelledByMerchant, cancelled.By)
	})
}

func TestNextStatus_IllegalTransitions(t *testing.T) {
	now := time.Now()

	testCases := []struct {
		role    order.Role
		current order.StatusFlag
		kind    order.UpdateKind
		reason  string
	}{
		{order.RoleCustomer, order.StatusPreparing, order.UpdateCancel, "order can't be cancelled anymore"},
		{order.RoleCustomer, order.StatusReady, order.UpdateCancel, "order can't be cancelled anymore"},
		{order.RoleCustomer, order.StatusSettled, order.UpdateCancel, "order can't be cancelled anymore"},
		{order.RoleCustomer, order.StatusCancelled, order.UpdateCancel, "order can't be cancelled anymore"},
		{order.RoleCustomer, order.StatusOrdered, order.UpdateSettle, "order can only be settled when it's ready"},
		{order.RoleCustomer, order.StatusPreparing, order.UpdateSettle, "order can only be settled when it's ready"},
		{order.RoleCustomer, order.StatusSettled, order.UpdateSettle, "order can only be settled when it's ready"},
		{order.RoleCustomer, order.StatusCancelled, order.UpdateSettle, "order can only be settled when it's ready"},
		{order.RoleCustomer, order.StatusOrdered, order.UpdateMarkPreparing, "only cancellation or settlement are allowed"},
		{order.RoleCustomer, order.StatusPreparing, order.UpdateMarkReady, "only cancellation or settlement are allowed"},
		{order.RoleMerchant, order.StatusReady, order.UpdateCancel, "order can't be cancelled anymore"},
		{order.RoleMerchant, order.StatusSettled, order.UpdateCancel, "order can't be cancelled anymore"},
		{order.RoleMerchant, order.StatusCancelled, order.UpdateCancel, "order can't be cancelled anymore"},
		{order.RoleMerchant, order.StatusReady, order.UpdateSettle, "order can't be settled by merchant"},
		{order.RoleMerchant, order.StatusPreparing, order.UpdateMarkPreparing, "order can be prepared only once"},
		{order.RoleMerchant, order.StatusReady, order.UpdateMarkPreparing, "order can be prepared only once"},
		{order.RoleMerchant, order.StatusOrdered, order.UpdateMarkReady, "order can be ready only after it's prepared"},
		{order.RoleMerchant, order.StatusReady, order.UpdateMarkReady, "order can be ready only after it's prepared"},
	}

	for _, tc := range testCases {
		name := fmt.Sprintf("should reject %s %s on %s order",
			tc.role, tc.kind, tc.current)
		t.Run(name, func(t *testing.T) {
			_, err := order.NextStatus(tc.role, tc.current, updateOfKind(tc.kind), now)

			require.Error(t, err)
			assert.IsType(t, &errs.ValueIsInvalidError{}, err)
			assert.Contains(t, err.Error(), tc.reason)
		})
	}
}

func TestNextStatus_TerminalStatuses(t *testing.T) {
	now := time.Now()

	t.Run("no update is accepted on a terminal order", func(t *testing.T) {
		for _, current := range []order.StatusFlag{order.StatusSettled, order.StatusCancelled} {
			for _, role := range []order.Role{order.RoleCustomer, order.RoleMerchant} {
				for _, kind := range []order.UpdateKind{
					order.UpdateCancel,
					order.UpdateSettle,
					order.UpdateMarkPreparing,
					order.UpdateMarkReady,
				} {
					_, err := order.NextStatus(role, current, updateOfKind(kind), now)

					assert.Error(t, err,
						"%s %s must be rejected on %s order", role, kind, current)
				}
			}
		}
	})
}

func TestNextStatus_ExactlyThreeActionsFromOrdered(t *testing.T) {
	now := time.Now()

	legal := 0
	for _, role := range []order.Role{order.RoleCustomer, order.RoleMerchant} {
		for _, kind := range []order.UpdateKind{
			order.UpdateCancel,
			order.UpdateSettle,
			order.UpdateMarkPreparing,
			order.UpdateMarkReady,
		} {
			if _, err := order.NextStatus(role, order.StatusOrdered, updateOfKind(kind), now); err == nil {
				legal++
			}
		}
	}

	// customer cancel, merchant cancel, merchant prepare
	assert.Equal(t, 3, legal)
}

func TestNextStatus_OnlyCustomerSettlesReady(t *testing.T) {
	now := time.Now()

	for _, role := range []order.Role{order.RoleCustomer, order.RoleMerchant} {
		for _, kind := range []order.UpdateKind{
			order.UpdateCancel,
			order.UpdateSettle,
			order.UpdateMarkPreparing,
			order.UpdateMarkReady,
		} {
			_, err := order.NextStatus(role, order.StatusReady, updateOfKind(kind), now)

			if role == order.RoleCustomer && kind == order.UpdateSettle {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		}
	}
}

func TestNextStatus_InvalidInputs(t *testing.T) {
	now := time.Now()

	t.Run("should reject unknown role", func(t *testing.T) {
		_, err := order.NextStatus(order.RoleUnknown, order.StatusOrdered,
			order.NewSettleUpdate(), now)

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
	})

	t.Run("should reject unknown status flag", func(t *testing.T) {
		_, err := order.NextStatus(order.RoleCustomer, order.StatusUnknown,
			order.NewSettleUpdate(), now)

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
	})

	t.Run("should reject unconstructed update", func(t *testing.T) {
		var update order.StatusUpdate

		_, err := order.NextStatus(order.RoleCustomer, order.StatusOrdered, update, now)

		require.Error(t, err)
		assert.Equal(t, order.ErrStatusUpdateIsNotConstructed, err)
	})
}
