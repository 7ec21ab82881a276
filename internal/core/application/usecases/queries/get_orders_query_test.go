package queries_test

import (
	"testing"

	"quickdish/internal/core/application/usecases/queries"
	"quickdish/internal/core/domain/model/kernel"
	"quickdish/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOrdersQuery_ValidInput(t *testing.T) {
	actorID := kernel.NewUUID()
	restaurantID := kernel.NewUUID()
	status := order.StatusOrdered

	query, err := queries.NewGetOrdersQuery(actorID, order.RoleCustomer, &restaurantID, &status)
	require.NoError(t, err)
	assert.Equal(t, actorID, query.ActorID())
	assert.Equal(t, order.RoleCustomer, query.Role())
	require.NotNil(t, query.RestaurantFilter())
	assert.True(t, query.RestaurantFilter().IsEqual(restaurantID))
	require.NotNil(t, query.StatusFilter())
	assert.Equal(t, order.StatusOrdered, *query.StatusFilter())
}

func TestNewGetOrdersQuery_NoFilters(t *testing.T) {
	query, err := queries.NewGetOrdersQuery(kernel.NewUUID(), order.RoleMerchant, nil, nil)
	require.NoError(t, err)
	assert.Nil(t, query.RestaurantFilter())
	assert.Nil(t, query.StatusFilter())
}

func TestNewGetOrdersQuery_InvalidActorID(t *testing.T) {
	_, err := queries.NewGetOrdersQuery(kernel.UUID{}, order.RoleCustomer, nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewGetOrdersQuery_InvalidRole(t *testing.T) {
	_, err := queries.NewGetOrdersQuery(kernel.NewUUID(), order.RoleUnknown, nil, nil)
	require.Error(t, err)
}

func TestNewGetOrdersQuery_InvalidStatusFilter(t *testing.T) {
	status := order.StatusUnknown
	_, err := queries.NewGetOrdersQuery(kernel.NewUUID(), order.RoleCustomer, nil, &status)
	require.Error(t, err)
}

func TestGetOrdersQuery_NotConstructed(t *testing.T) {
	query := queries.GetOrdersQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetOrdersQueryIsNotConstructed)
}
