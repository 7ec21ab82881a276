package commands_test

import (
	"testing"

	"quickdish/internal/core/application/usecases/commands"
	"quickdish/internal/core/domain/model/kernel"
	"quickdish/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUpdateOrderStatusCommand_ValidInput(t *testing.T) {
	orderID := kernel.NewUUID()
	actorID := kernel.NewUUID()
	update := order.NewCancelUpdate("changed my mind")

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, actorID, order.RoleCustomer, update)
	require.NoError(t, err)
	assert.Equal(t, orderID, cmd.OrderID())
	assert.Equal(t, actorID, cmd.ActorID())
	assert.Equal(t, order.RoleCustomer, cmd.Role())
	assert.Equal(t, order.UpdateCancel, cmd.Update().Kind())
	assert.Equal(t, "changed my mind", cmd.Update().Reason())
}

func TestNewUpdateOrderStatusCommand_InvalidOrderID(t *testing.T) {
	_, err := commands.NewUpdateOrderStatusCommand(kernel.UUID{}, kernel.NewUUID(),
		order.RoleCustomer, order.NewSettleUpdate())
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewUpdateOrderStatusCommand_InvalidRole(t *testing.T) {
	_, err := commands.NewUpdateOrderStatusCommand(kernel.NewUUID(), kernel.NewUUID(),
		order.RoleUnknown, order.NewSettleUpdate())
	require.Error(t, err)
}

func TestNewUpdateOrderStatusCommand_UnconstructedUpdate(t *testing.T) {
	_, err := commands.NewUpdateOrderStatusCommand(kernel.NewUUID(), kernel.NewUUID(),
		order.RoleCustomer, order.StatusUpdate{})
	require.Error(t, err)
	assert.ErrorIs(t, err, order.ErrStatusUpdateIsNotConstructed)
}

func TestUpdateOrderStatusCommand_NotConstructed(t *testing.T) {
	cmd := commands.UpdateOrderStatusCommand{}
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrUpdateOrderStatusCommandIsNotConstructed)
}
