package order_test

import (
	"testing"
	"time"

	"quickdish/internal/core/domain/model/kernel"
	"quickdish/internal/core/domain/model/order"
	"quickdish/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testItem(t *testing.T) order.Item {
	t.Helper()
	item, err := order.NewItem(kernel.NewUUID(), kernel.NewUUID(), 1, "", nil)
	require.NoError(t, err)
	return item
}

func testPrice(t *testing.T, s string) kernel.Money {
	t.Helper()
	price, err := kernel.MoneyFromString(s)
	require.NoError(t, err)
	return price
}

func TestNewOrder(t *testing.T) {
	t.Run("should create order in ordered status", func(t *testing.T) {
		id := kernel.NewUUID()
		customerID := kernel.NewUUID()
		restaurantID := kernel.NewUUID()
		orderedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
		price := testPrice(t, "10.25")
		items := []order.Item{testItem(t), testItem(t)}

		o, err := order.NewOrder(id, customerID, restaurantID, orderedAt, price, items)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(id))
		assert.True(t, o.CustomerID().IsEqual(customerID))
		assert.True(t, o.RestaurantID().IsEqual(restaurantID))
		assert.Equal(t, orderedAt, o.OrderedAt())
		assert.True(t, o.PricePaid().IsEqual(price))
		assert.Len(t, o.Items(), 2)
		assert.Equal(t, order.StatusOrdered, o.Status().Flag())
	})

	t.Run("should reject order with no items", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			time.Now(), testPrice(t, "5.00"), nil)

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrOrderHasNoItems)
	})

	t.Run("should reject unconstructed items", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			time.Now(), testPrice(t, "5.00"), []order.Item{{}})

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrItemIsNotConstructed)
	})

	t.Run("should reject invalid identifiers", func(t *testing.T) {
		_, err := order.NewOrder(kernel.UUID{}, kernel.NewUUID(), kernel.NewUUID(),
			time.Now(), testPrice(t, "5.00"), []order.Item{testItem(t)})

		require.Error(t, err)
	})

	t.Run("should reject unconstructed price", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			time.Now(), kernel.Money{}, []order.Item{testItem(t)})

		require.Error(t, err)
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("should restore order with its status payload", func(t *testing.T) {
		preparedAt := time.Date(2025, 6, 1, 12, 30, 0, 0, time.UTC)

		o, err := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			time.Now(), testPrice(t, "10.25"), order.Preparing{PreparedAt: preparedAt},
			[]order.Item{testItem(t)})

		require.NoError(t, err)
		preparing, ok := o.Status().(order.Preparing)
		require.True(t, ok)
		assert.Equal(t, preparedAt, preparing.PreparedAt)
	})

	t.Run("should reject nil status", func(t *testing.T) {
		_, err := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			time.Now(), testPrice(t, "10.25"), nil, []order.Item{testItem(t)})

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrOrderStatusIsRequired)
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("zero value fails validation", func(t *testing.T) {
		var o order.Order

		err := o.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrOrderIsNotConstructed, err)
	})

	t.Run("nil order fails validation", func(t *testing.T) {
		var o *order.Order

		assert.Error(t, o.Validate())
	})
}

func TestOrder_IsEqual(t *testing.T) {
	id := kernel.NewUUID()
	items := []order.Item{testItem(t)}

	first, err := order.NewOrder(id, kernel.NewUUID(), kernel.NewUUID(),
		time.Now(), testPrice(t, "1.00"), items)
	require.NoError(t, err)
	second, err := order.NewOrder(id, kernel.NewUUID(), kernel.NewUUID(),
		time.Now(), testPrice(t, "2.00"), items)
	require.NoError(t, err)
	third, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		time.Now(), testPrice(t, "1.00"), items)
	require.NoError(t, err)

	assert.True(t, first.IsEqual(second))
	assert.False(t, first.IsEqual(third))
	assert.False(t, first.IsEqual(nil))
}

func TestOrder_AuthorizeActor(t *testing.T) {
	customerID := kernel.NewUUID()
	merchantID := kernel.NewUUID()

	newOrder := func(t *testing.T) *order.Order {
		o, err := order.NewOrder(kernel.NewUUID(), customerID, kernel.NewUUID(),
			time.Now(), testPrice(t, "10.25"), []order.Item{testItem(t)})
		require.NoError(t, err)
		return o
	}

	t.Run("should allow the owning customer", func(t *testing.T) {
		o := newOrder(t)

		require.NoError(t, o.AuthorizeActor(customerID, order.RoleCustomer, merchantID))
	})

	t.Run("should reject another customer", func(t *testing.T) {
		o := newOrder(t)

		err := o.AuthorizeActor(kernel.NewUUID(), order.RoleCustomer, merchantID)

		require.Error(t, err)
		assert.IsType(t, &errs.UnauthorizedError{}, err)
		assert.Contains(t, err.Error(), "customer does not own the order")
	})

	t.Run("should allow the owning merchant", func(t *testing.T) {
		o := newOrder(t)

		require.NoError(t, o.AuthorizeActor(merchantID, order.RoleMerchant, merchantID))
	})

	t.Run("should reject another merchant", func(t *testing.T) {
		o := newOrder(t)

		err := o.AuthorizeActor(kernel.NewUUID(), order.RoleMerchant, merchantID)

		require.Error(t, err)
		assert.IsType(t, &errs.UnauthorizedError{}, err)
		assert.Contains(t, err.Error(), "merchant does not own the order")
	})

	t.Run("should reject unknown role", func(t *testing.T) {
		o := newOrder(t)

		err := o.AuthorizeActor(customerID, order.RoleUnknown, merchantID)

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
	})
}

func TestOrder_ApplyUpdate(t *testing.T) {
	newOrder := func(t *testing.T) *order.Order {
		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			time.Now(), testPrice(t, "10.25"), []order.Item{testItem(t)})
		require.NoError(t, err)
		return o
	}

	t.Run("should walk the full happy path", func(t *testing.T) {
		o := newOrder(t)
		base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

		require.NoError(t, o.ApplyUpdate(order.RoleMerchant, order.NewMarkPreparingUpdate(), base))
		assert.Equal(t, order.StatusPreparing, o.Status().Flag())

		require.NoError(t, o.ApplyUpdate(order.RoleMerchant, order.NewMarkReadyUpdate(), base.Add(10*time.Minute)))
		assert.Equal(t, order.StatusReady, o.Status().Flag())

		require.NoError(t, o.ApplyUpdate(order.RoleCustomer, order.NewSettleUpdate(), base.Add(20*time.Minute)))
		settled, ok := o.Status().(order.Settled)
		require.True(t, ok)
		assert.Equal(t, base.Add(20*time.Minute), settled.SettledAt)
	})

	t.Run("customer cannot cancel once preparation started", func(t *testing.T) {
		o := newOrder(t)
		now := time.Now()

		require.NoError(t, o.ApplyUpdate(order.RoleMerchant, order.NewMarkPreparingUpdate(), now))

		err := o.ApplyUpdate(order.RoleCustomer, order.NewCancelUpdate("too slow"), now)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "order can't be cancelled anymore")
		assert.Equal(t, order.StatusPreparing, o.Status().Flag())
	})

	t.Run("rejected update leaves the status untouched", func(t *testing.T) {
		o := newOrder(t)

		err := o.ApplyUpdate(order.RoleCustomer, order.NewSettleUpdate(), time.Now())

		require.Error(t, err)
		assert.Equal(t, order.StatusOrdered, o.Status().Flag())
	})

	t.Run("cancelled order records the canceller and reason", func(t *testing.T) {
		o := newOrder(t)
		now := time.Now()

		require.NoError(t, o.ApplyUpdate(order.RoleMerchant, order.NewCancelUpdate("out of stock"), now))

		cancelled, ok := o.Status().(order.Cancelled)
		require.True(t, ok)
		assert.Equal(t, order.CancelledByMerchant, cancelled.By)
		assert.Equal(t, "out of stock", cancelled.Reason)
		assert.Equal(t, now, cancelled.CancelledAt)
	})
}

func TestOrder_PricePaidIsExact(t *testing.T) {
	price, err := kernel.NewMoney(decimal.RequireFromString("8.00").
		Add(decimal.RequireFromString("1.50")).
		Add(decimal.RequireFromString("0.75")))
	require.NoError(t, err)

	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		time.Now(), price, []order.Item{testItem(t)})
	require.NoError(t, err)

	assert.True(t, o.PricePaid().Amount().Equal(decimal.RequireFromString("10.25")))
}
