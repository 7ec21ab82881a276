package order_test

import (
	"testing"

	"quickdish/internal/core/domain/model/kernel"
	"quickdish/internal/core/domain/model/order"
	"quickdish/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSelectedOption(t *testing.T) {
	t.Run("should create selected option with valid id", func(t *testing.T) {
		optionID := kernel.NewUUID()

		selected, err := order.NewSelectedOption(optionID)

		require.NoError(t, err)
		assert.True(t, selected.OptionID().IsEqual(optionID))
	})

	t.Run("should reject empty option id", func(t *testing.T) {
		_, err := order.NewSelectedOption(kernel.UUID{})

		require.Error(t, err)
	})
}

func TestNewItem(t *testing.T) {
	t.Run("should create item with valid parameters", func(t *testing.T) {
		id := kernel.NewUUID()
		menuID := kernel.NewUUID()
		selected, err := order.NewSelectedOption(kernel.NewUUID())
		require.NoError(t, err)

		item, err := order.NewItem(id, menuID, 2, "no onions", []order.SelectedOption{selected})

		require.NoError(t, err)
		assert.True(t, item.ID().IsEqual(id))
		assert.True(t, item.MenuID().IsEqual(menuID))
		assert.Equal(t, 2, item.Quantity())
		assert.Equal(t, "no onions", item.ExtraRequests())
		assert.Len(t, item.Options(), 1)
		require.NoError(t, item.Validate())
	})

	t.Run("should allow empty options and requests", func(t *testing.T) {
		item, err := order.NewItem(kernel.NewUUID(), kernel.NewUUID(), 1, "", nil)

		require.NoError(t, err)
		assert.Empty(t, item.Options())
		assert.Empty(t, item.ExtraRequests())
	})

	t.Run("should reject quantity below one", func(t *testing.T) {
		menuID := kernel.NewUUID()

		for _, quantity := range []int{0, -1, -10} {
			_, err := order.NewItem(kernel.NewUUID(), menuID, quantity, "", nil)

			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
			assert.Contains(t, err.Error(),
				"menu with id "+menuID.String()+" must have a quantity of at least 1")
		}
	})

	t.Run("should reject empty item id", func(t *testing.T) {
		_, err := order.NewItem(kernel.UUID{}, kernel.NewUUID(), 1, "", nil)

		require.Error(t, err)
	})

	t.Run("should reject empty menu id", func(t *testing.T) {
		_, err := order.NewItem(kernel.NewUUID(), kernel.UUID{}, 1, "", nil)

		require.Error(t, err)
	})

	t.Run("should collect all constructor errors", func(t *testing.T) {
		_, err := order.NewItem(kernel.UUID{}, kernel.UUID{}, 0, "", nil)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestItem_Validate(t *testing.T) {
	t.Run("zero value fails validation", func(t *testing.T) {
		var item order.Item

		err := item.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrItemIsNotConstructed, err)
	})
}

func TestItem_Options_Immutability(t *testing.T) {
	t.Run("mutating the returned slice does not affect the item", func(t *testing.T) {
		first, err := order.NewSelectedOption(kernel.NewUUID())
		require.NoError(t, err)
		second, err := order.NewSelectedOption(kernel.NewUUID())
		require.NoError(t, err)

		item, err := order.NewItem(kernel.NewUUID(), kernel.NewUUID(), 1, "",
			[]order.SelectedOption{first, second})
		require.NoError(t, err)

		options := item.Options()
		options[0] = second

		assert.True(t, item.Options()[0].OptionID().IsEqual(first.OptionID()))
	})
}
