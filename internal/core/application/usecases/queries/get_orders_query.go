package queries

import (
	"errors"

	"quickdish/internal/core/domain/model/kernel"
	"quickdish/internal/core/domain/model/order"
	"quickdish/internal/pkg/guard"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// GetOrdersQuery retrieves the orders visible to one actor: a customer
// sees the orders they placed, a merchant sees the orders of the
// restaurants they own. Both can narrow the listing with optional
// equality filters on restaurant and status, applied conjunctively.
//
// Example:
//
//	status := order.StatusOrdered
//	query, _ := NewGetOrdersQuery(customerID, order.RoleCustomer, nil, &status)
//	handler := NewGetOrdersQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list orders: %w", err)
//	}
//	fmt.Printf("Found %d open orders\n", len(orders))
type GetOrdersQuery struct { //nolint:recvcheck //using for validation
	actorID          kernel.UUID
	role             order.Role
	restaurantFilter *kernel.UUID
	statusFilter     *order.StatusFlag

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a query to list an actor's orders. The filter
// arguments may be nil, meaning no filter on that dimension.
func NewGetOrdersQuery(
	actorID kernel.UUID,
	role order.Role,
	restaurantFilter *kernel.UUID,
	statusFilter *order.StatusFlag,
) (GetOrdersQuery, error) {
	query := GetOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		query.setActorID(actorID),
		query.setRole(role),
		query.setRestaurantFilter(restaurantFilter),
		query.setStatusFilter(statusFilter),
	); err != nil {
		return GetOrdersQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrdersQueryIsNotConstructed if validation fails.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// ActorID returns the identity of the requesting party.
func (q GetOrdersQuery) ActorID() kernel.UUID {
	return q.actorID
}

// Role returns whether the actor acts as customer or merchant.
func (q GetOrdersQuery) Role() order.Role {
	return q.role
}

// RestaurantFilter returns the optional restaurant filter, nil when absent.
func (q GetOrdersQuery) RestaurantFilter() *kernel.UUID {
	return q.restaurantFilter
}

// StatusFilter returns the optional status filter, nil when absent.
func (q GetOrdersQuery) StatusFilter() *order.StatusFlag {
	return q.statusFilter
}

func (q *GetOrdersQuery) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	q.actorID = actorID
	return nil
}

func (q *GetOrdersQuery) setRole(role order.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	q.role = role
	return nil
}

func (q *GetOrdersQuery) setRestaurantFilter(restaurantFilter *kernel.UUID) error {
	if restaurantFilter != nil {
		if err := restaurantFilter.Validate(); err != nil {
			return err
		}
	}

	q.restaurantFilter = restaurantFilter
	return nil
}

func (q *GetOrdersQuery) setStatusFilter(statusFilter *order.StatusFlag) error {
	if statusFilter != nil {
		if err := statusFilter.Validate(); err != nil {
			return err
		}
	}

	q.statusFilter = statusFilter
	return nil
}
