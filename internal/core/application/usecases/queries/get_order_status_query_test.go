package queries_test

import (
	"testing"

	"quickdish/internal/core/application/usecases/queries"
	"quickdish/internal/core/domain/model/kernel"
	"quickdish/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOrderStatusQuery_ValidInput(t *testing.T) {
	orderID := kernel.NewUUID()
	actorID := kernel.NewUUID()

	query, err := queries.NewGetOrderStatusQuery(orderID, actorID, order.RoleMerchant)
	require.NoError(t, err)
	assert.Equal(t, orderID, query.OrderID())
	assert.Equal(t, actorID, query.ActorID())
	assert.Equal(t, order.RoleMerchant, query.Role())
}

func TestNewGetOrderStatusQuery_InvalidOrderID(t *testing.T) {
	_, err := queries.NewGetOrderStatusQuery(kernel.UUID{}, kernel.NewUUID(), order.RoleCustomer)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewGetOrderStatusQuery_InvalidRole(t *testing.T) {
	_, err := queries.NewGetOrderStatusQuery(kernel.NewUUID(), kernel.NewUUID(), order.RoleUnknown)
	require.Error(t, err)
}

func TestGetOrderStatusQuery_NotConstructed(t *testing.T) {
	query := queries.GetOrderStatusQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetOrderStatusQueryIsNotConstructed)
}
