package commands_test

import (
	"testing"

	"quickdish/internal/core/application/usecases/commands"
	"quickdish/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validItems() []commands.CreateOrderItem {
	return []commands.CreateOrderItem{{
		MenuID:        kernel.NewUUID(),
		Quantity:      2,
		ExtraRequests: "no onions",
		OptionIDs:     []kernel.UUID{kernel.NewUUID()},
	}}
}

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	orderID := kernel.NewUUID()
	customerID := kernel.NewUUID()
	restaurantID := kernel.NewUUID()
	items := validItems()

	cmd, err := commands.NewCreateOrderCommand(orderID, customerID, restaurantID, items)
	require.NoError(t, err)
	assert.Equal(t, orderID, cmd.OrderID())
	assert.Equal(t, customerID, cmd.CustomerID())
	assert.Equal(t, restaurantID, cmd.RestaurantID())
	assert.Equal(t, items, cmd.Items())
}

func TestNewCreateOrderCommand_InvalidOrderID(t *testing.T) {
	invalidID := kernel.UUID{} // zero value, should trigger validation error
	_, err := commands.NewCreateOrderCommand(invalidID, kernel.NewUUID(), kernel.NewUUID(), validItems())
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewCreateOrderCommand_NoItems(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrItemsAreRequired)
}

func TestNewCreateOrderCommand_InvalidMenuID(t *testing.T) {
	items := []commands.CreateOrderItem{{MenuID: kernel.UUID{}, Quantity: 1}}
	_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), items)
	require.Error(t, err)
}

func TestNewCreateOrderCommand_InvalidOptionID(t *testing.T) {
	items := []commands.CreateOrderItem{{
		MenuID:    kernel.NewUUID(),
		Quantity:  1,
		OptionIDs: []kernel.UUID{{}},
	}}
	_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), items)
	require.Error(t, err)
}

func TestCreateOrderCommand_NotConstructed(t *testing.T) {
	cmd := commands.CreateOrderCommand{}
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
}
