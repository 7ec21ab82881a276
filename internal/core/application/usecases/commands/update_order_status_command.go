package commands

import (
	"errors"

	"quickdish/internal/core/domain/model/kernel"
	"quickdish/internal/core/domain/model/order"
	"quickdish/internal/pkg/guard"
)

var ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
	"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
)

// UpdateOrderStatusCommand represents a request by a customer or merchant
// to move an order to its next status. Whether the transition is legal is
// decided by the domain's transition table, not here.
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actorID kernel.UUID
	role    order.Role
	update  order.StatusUpdate

	guard guard.ConstructorGuard
}

// NewUpdateOrderStatusCommand creates a command to update an order's status.
// Validates identifiers, the actor's role, and the update itself.
func NewUpdateOrderStatusCommand(
	orderID kernel.UUID,
	actorID kernel.UUID,
	role order.Role,
	update order.StatusUpdate,
) (UpdateOrderStatusCommand, error) {
	statusCommand := UpdateOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		statusCommand.setOrderID(orderID),
		statusCommand.setActorID(actorID),
		statusCommand.setRole(role),
		statusCommand.setUpdate(update),
	); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	return statusCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateOrderStatusCommandIsNotConstructed if validation fails.
func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

// OrderID returns the order to update.
func (c UpdateOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ActorID returns the identity of the requesting party.
func (c UpdateOrderStatusCommand) ActorID() kernel.UUID {
	return c.actorID
}

// Role returns whether the actor acts as customer or merchant.
func (c UpdateOrderStatusCommand) Role() order.Role {
	return c.role
}

// Update returns the requested status transition.
func (c UpdateOrderStatusCommand) Update() order.StatusUpdate {
	return c.update
}

func (c *UpdateOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateOrderStatusCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}

func (c *UpdateOrderStatusCommand) setRole(role order.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	c.role = role
	return nil
}

func (c *UpdateOrderStatusCommand) setUpdate(update order.StatusUpdate) error {
	if err := update.Validate(); err != nil {
		return err
	}

	c.update = update
	return nil
}
