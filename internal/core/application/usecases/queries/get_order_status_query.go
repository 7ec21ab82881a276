package queries

import (
	"errors"

	"quickdish/internal/core/domain/model/kernel"
	"quickdish/internal/core/domain/model/order"
	"quickdish/internal/pkg/guard"
)

var ErrGetOrderStatusQueryIsNotConstructed = errors.New(
	"GetOrderStatusQuery must be created via NewGetOrderStatusQuery constructor",
)

// GetOrderStatusQuery retrieves the current status payload of one order,
// on behalf of an actor who must own it (customer) or own its restaurant
// (merchant).
//
// Example:
//
//	query, _ := NewGetOrderStatusQuery(orderID, customerID, order.RoleCustomer)
//	handler := NewGetOrderStatusQueryHandler(db)
//
//	status, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get order status: %w", err)
//	}
//	fmt.Printf("Order is %s\n", status.Flag)
type GetOrderStatusQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actorID kernel.UUID
	role    order.Role

	guard guard.ConstructorGuard
}

// NewGetOrderStatusQuery creates a query for one order's status.
func NewGetOrderStatusQuery(
	orderID kernel.UUID,
	actorID kernel.UUID,
	role order.Role,
) (GetOrderStatusQuery, error) {
	query := GetOrderStatusQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		query.setOrderID(orderID),
		query.setActorID(actorID),
		query.setRole(role),
	); err != nil {
		return GetOrderStatusQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderStatusQueryIsNotConstructed if validation fails.
func (q GetOrderStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderStatusQueryIsNotConstructed)
}

// OrderID returns the order whose status is requested.
func (q GetOrderStatusQuery) OrderID() kernel.UUID {
	return q.orderID
}

// ActorID returns the identity of the requesting party.
func (q GetOrderStatusQuery) ActorID() kernel.UUID {
	return q.actorID
}

// Role returns whether the actor acts as customer or merchant.
func (q GetOrderStatusQuery) Role() order.Role {
	return q.role
}

func (q *GetOrderStatusQuery) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	q.orderID = orderID
	return nil
}

func (q *GetOrderStatusQuery) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	q.actorID = actorID
	return nil
}

func (q *GetOrderStatusQuery) setRole(role order.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	q.role = role
	return nil
}
